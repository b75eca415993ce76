// Package parser provides ECMAScript/TypeScript module parsing into an AST.
//
// The grammar is the subset a bundler's rename passes need: every
// import/export form, the declaration statements whose names can collide
// (const/let/var, function, class, enum, interface, type alias), and a
// conventional expression grammar. TypeScript type annotations are
// consumed and discarded; interface bodies and aliased types are skipped
// as balanced token runs, since only their declared names matter here.
//
// The parser does not recover: the first syntax error fails the module.
// A partially-parsed module is useless to the rename pipeline, which must
// see every reference to keep a cross-file rename set consistent.
package parser

import (
	"fmt"
	"log/slog"

	"github.com/suseejs/duplicates/internal/ast"
	"github.com/suseejs/duplicates/internal/lexer"
	"github.com/suseejs/duplicates/internal/types"
)

// Parser converts a token stream into an AST program.
type Parser struct {
	source []byte
	tokens []lexer.Token
	pos    int
	noIn   bool // suppress the 'in' operator while parsing a for-statement head
	err    error
	types.Logger
}

// New returns a Parser that lexes the source and prepares for parsing.
// Pass nil for logger to disable logging.
func New(source []byte, logger *slog.Logger) *Parser {
	var lexLogger *slog.Logger
	if logger != nil {
		lexLogger = logger.With(slog.String("component", "lexer"))
	}
	lex := lexer.New(source, lexLogger)
	tokens, diags := lex.Tokenize()
	p := &Parser{
		source: source,
		tokens: tokens,
		Logger: types.Logger{L: logger},
	}
	if len(diags) > 0 {
		p.err = p.positioned(diags[0].Span, diags[0].Message)
	}
	p.Log(slog.LevelDebug, "parser initialized", slog.Int("tokens", len(tokens)))
	return p
}

// Parse parses the whole module. It returns the first syntax error
// encountered, positioned as "line:col: message".
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{End: types.ByteOffset(len(p.source))}
	for p.err == nil && !p.at(lexer.TokEOF) {
		stmt := p.parseStmt()
		if stmt != nil {
			prog.Stmts = append(prog.Stmts, stmt)
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	p.Log(slog.LevelDebug, "parse complete", slog.Int("statements", len(prog.Stmts)))
	return prog, nil
}

// --- token plumbing ---

func (p *Parser) cur() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[idx]
}

func (p *Parser) at(kind lexer.TokenKind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if tok.Kind != lexer.TokEOF {
		p.pos++
	}
	return tok
}

func (p *Parser) accept(kind lexer.TokenKind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(kind lexer.TokenKind, what string) lexer.Token {
	if p.at(kind) {
		return p.advance()
	}
	p.fail(p.cur().Span, "expected %s, found %q", what, p.text(p.cur()))
	return p.cur()
}

// text returns the source text of a token.
func (p *Parser) text(tok lexer.Token) string {
	if tok.Kind == lexer.TokEOF {
		return "end of file"
	}
	return string(p.source[tok.Span.Start:tok.Span.End])
}

// atContextual reports whether the current token is an identifier with
// the given text (used for from/as/of/type/async/static and friends,
// which are not reserved words).
func (p *Parser) atContextual(text string) bool {
	return p.at(lexer.TokIdent) && p.text(p.cur()) == text
}

func (p *Parser) acceptContextual(text string) bool {
	if p.atContextual(text) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectContextual(text string) {
	if !p.acceptContextual(text) {
		p.fail(p.cur().Span, "expected %q, found %q", text, p.text(p.cur()))
	}
}

// newlineBefore reports whether a line terminator occurs between the
// previous token and the current one, for automatic semicolon insertion.
func (p *Parser) newlineBefore() bool {
	if p.pos == 0 {
		return false
	}
	prevEnd := p.tokens[p.pos-1].Span.End
	curStart := p.cur().Span.Start
	for _, b := range p.source[prevEnd:curStart] {
		if b == '\n' {
			return true
		}
	}
	return false
}

// expectSemi consumes an explicit semicolon or applies automatic
// semicolon insertion: a closing brace, end of file, or a preceding
// line terminator all end the statement.
func (p *Parser) expectSemi() {
	if p.accept(lexer.TokSemicolon) {
		return
	}
	if p.at(lexer.TokRBrace) || p.at(lexer.TokEOF) || p.newlineBefore() {
		return
	}
	p.fail(p.cur().Span, "expected ';', found %q", p.text(p.cur()))
}

func (p *Parser) fail(span types.Span, format string, args ...any) {
	if p.err != nil {
		return
	}
	p.err = p.positioned(span, fmt.Sprintf(format, args...))
	// Jump to EOF so parse loops terminate.
	p.pos = len(p.tokens) - 1
}

func (p *Parser) positioned(span types.Span, message string) error {
	line, col := types.Position(p.source, span.Start)
	return fmt.Errorf("%d:%d: %s", line, col, message)
}

func spanBetween(start, end types.Span) types.Span {
	return types.NewSpan(start.Start, end.End)
}

func (p *Parser) prevEnd() types.ByteOffset {
	if p.pos == 0 {
		return 0
	}
	return p.tokens[p.pos-1].Span.End
}

func (p *Parser) ident() *ast.Ident {
	tok := p.cur()
	if tok.Kind != lexer.TokIdent {
		p.fail(tok.Span, "expected identifier, found %q", p.text(tok))
		return ast.NewIdent("", tok.Span)
	}
	p.advance()
	return ast.NewIdent(p.text(tok), tok.Span)
}

// identName accepts an identifier or a reserved word in name position
// (property names, import/export specifiers may be keywords).
func (p *Parser) identName() *ast.Ident {
	tok := p.cur()
	if tok.Kind != lexer.TokIdent && !tok.Kind.IsKeyword() {
		p.fail(tok.Span, "expected name, found %q", p.text(tok))
		return ast.NewIdent("", tok.Span)
	}
	p.advance()
	return ast.NewIdent(p.text(tok), tok.Span)
}

func (p *Parser) stringLit(what string) *ast.StringLit {
	tok := p.expect(lexer.TokString, what)
	raw := p.text(tok)
	value := raw
	if len(raw) >= 2 {
		value = unescape(raw[1 : len(raw)-1])
	}
	return &ast.StringLit{Value: value, Loc: tok.Span}
}

func unescape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			default:
				out = append(out, s[i])
			}
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

// skipType consumes a TypeScript type expression without modeling it.
// It stops at any of the stop kinds encountered at bracket depth zero.
// '<' and '>' are counted as generics brackets here; the subset grammar
// does not place comparison operators inside type positions.
func (p *Parser) skipType(stop ...lexer.TokenKind) {
	depth := 0
	for p.err == nil {
		tok := p.cur()
		switch tok.Kind {
		case lexer.TokEOF:
			return
		case lexer.TokLParen, lexer.TokLBrace, lexer.TokLBracket, lexer.TokLt:
			if depth == 0 {
				for _, s := range stop {
					if tok.Kind == s {
						return
					}
				}
			}
			depth++
		case lexer.TokRParen, lexer.TokRBrace, lexer.TokRBracket, lexer.TokGt:
			if depth == 0 {
				for _, s := range stop {
					if tok.Kind == s {
						return
					}
				}
				return
			}
			depth--
		default:
			if depth == 0 {
				for _, s := range stop {
					if tok.Kind == s {
						return
					}
				}
				// Statement boundary via ASI inside a type is possible
				// for aliases; a newline before a token that cannot
				// continue a type ends the skip.
				if tok.Kind == lexer.TokSemicolon || tok.Kind == lexer.TokComma || tok.Kind == lexer.TokAssign || tok.Kind == lexer.TokArrow {
					return
				}
			}
		}
		p.advance()
	}
}
