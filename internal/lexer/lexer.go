package lexer

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/suseejs/duplicates/internal/types"
)

// Lexer tokenizes ECMAScript/TypeScript module source text.
//
// The lexer is deliberately permissive: malformed constructs produce a
// TokError token plus a diagnostic and scanning continues, so the parser
// can report a positioned error instead of the lexer aborting the module.
type Lexer struct {
	source      []byte
	pos         int
	diagnostics []types.SpanDiagnostic
	types.Logger
}

// New returns a Lexer that tokenizes the given source bytes.
func New(source []byte, logger *slog.Logger) *Lexer {
	l := &Lexer{
		source: source,
		Logger: types.Logger{L: logger},
	}
	l.Log(slog.LevelDebug, "lexer initialized", slog.Int("bytes", len(source)))
	return l
}

// Diagnostics returns a copy of all collected diagnostics.
func (l *Lexer) Diagnostics() []types.SpanDiagnostic {
	return slices.Clone(l.diagnostics)
}

// Tokenize consumes all source text and returns the token stream
// along with any diagnostics generated during lexing.
func (l *Lexer) Tokenize() ([]Token, []types.SpanDiagnostic) {
	estimatedTokens := max(len(l.source)/4, 64)
	tokens := make([]Token, 0, estimatedTokens)
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			break
		}
	}
	l.Log(slog.LevelDebug, "tokenization complete",
		slog.Int("tokens", len(tokens)),
		slog.Int("diagnostics", len(l.diagnostics)))
	return tokens, l.diagnostics
}

// NextToken advances the lexer and returns the next token.
// Returns TokEOF when all input is consumed.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	start := l.pos
	b, ok := l.peek()
	if !ok {
		return l.token(TokEOF, start)
	}

	switch {
	case isIdentStart(b):
		return l.scanIdentOrKeyword(start)
	case isDigit(b):
		return l.scanNumber(start)
	case b == '\'' || b == '"':
		return l.scanString(start, b)
	case b == '`':
		return l.scanTemplate(start)
	}

	// Fractional literal with no leading digit, e.g. ".5".
	if b == '.' {
		if next, ok := l.peekAt(1); ok && isDigit(next) {
			return l.scanNumber(start)
		}
	}

	return l.scanOperator(start, b)
}

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	return l.source[l.pos], true
}

func (l *Lexer) peekAt(offset int) (byte, bool) {
	idx := l.pos + offset
	if idx >= len(l.source) {
		return 0, false
	}
	return l.source[idx], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	b := l.source[l.pos]
	l.pos++
	return b, true
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		b, ok := l.peek()
		if !ok {
			return
		}
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			l.advance()
		case b == '/':
			next, ok := l.peekAt(1)
			if !ok {
				return
			}
			switch next {
			case '/':
				l.skipLineComment()
			case '*':
				l.skipBlockComment()
			default:
				return
			}
		default:
			return
		}
	}
}

func (l *Lexer) skipLineComment() {
	for {
		b, ok := l.advance()
		if !ok || b == '\n' {
			return
		}
	}
}

func (l *Lexer) skipBlockComment() {
	start := l.pos
	l.advance() // '/'
	l.advance() // '*'
	for {
		b, ok := l.advance()
		if !ok {
			l.error(l.spanFrom(start), "unterminated block comment")
			return
		}
		if b == '*' {
			if next, ok := l.peek(); ok && next == '/' {
				l.advance()
				return
			}
		}
	}
}

func (l *Lexer) error(span types.Span, message string) {
	l.diagnostics = append(l.diagnostics, types.SpanDiagnostic{
		Span:    span,
		Message: message,
	})
}

func (l *Lexer) spanFrom(start int) types.Span {
	return types.Span{
		Start: types.ByteOffset(start),
		End:   types.ByteOffset(l.pos),
	}
}

func (l *Lexer) token(kind TokenKind, start int) Token {
	tok := Token{
		Kind: kind,
		Span: l.spanFrom(start),
	}
	if l.TraceEnabled() {
		l.Trace("token",
			slog.Int("kind", int(tok.Kind)),
			slog.Int("start", int(tok.Span.Start)),
			slog.Int("end", int(tok.Span.End)))
	}
	return tok
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (l *Lexer) scanIdentOrKeyword(start int) Token {
	for {
		b, ok := l.peek()
		if !ok || !isIdentPart(b) {
			break
		}
		l.advance()
	}
	text := string(l.source[start:l.pos])
	if kind, ok := LookupKeyword(text); ok {
		return l.token(kind, start)
	}
	return l.token(TokIdent, start)
}

func (l *Lexer) scanNumber(start int) Token {
	b, _ := l.peek()
	if b == '0' {
		if next, ok := l.peekAt(1); ok && (next == 'x' || next == 'X' || next == 'b' || next == 'B' || next == 'o' || next == 'O') {
			l.advance()
			l.advance()
			for {
				b, ok := l.peek()
				if !ok || !(isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F') || b == '_') {
					break
				}
				l.advance()
			}
			return l.token(TokNumber, start)
		}
	}
	l.scanDigits()
	if b, ok := l.peek(); ok && b == '.' {
		l.advance()
		l.scanDigits()
	}
	if b, ok := l.peek(); ok && (b == 'e' || b == 'E') {
		l.advance()
		if b, ok := l.peek(); ok && (b == '+' || b == '-') {
			l.advance()
		}
		l.scanDigits()
	}
	return l.token(TokNumber, start)
}

func (l *Lexer) scanDigits() {
	for {
		b, ok := l.peek()
		if !ok || !(isDigit(b) || b == '_') {
			return
		}
		l.advance()
	}
}

func (l *Lexer) scanString(start int, quote byte) Token {
	l.advance() // opening quote
	for {
		b, ok := l.advance()
		if !ok || b == '\n' {
			l.error(l.spanFrom(start), "unterminated string literal")
			return l.token(TokError, start)
		}
		if b == '\\' {
			l.advance()
			continue
		}
		if b == quote {
			return l.token(TokString, start)
		}
	}
}

// scanTemplate scans a backtick template literal as one opaque token.
// Interpolations are brace-balanced so a '}' inside "${...}" does not end
// the scan early; identifiers inside interpolations are not tokenized.
func (l *Lexer) scanTemplate(start int) Token {
	l.advance() // opening backtick
	depth := 0
	for {
		b, ok := l.advance()
		if !ok {
			l.error(l.spanFrom(start), "unterminated template literal")
			return l.token(TokError, start)
		}
		switch {
		case b == '\\':
			l.advance()
		case b == '$' && depth == 0:
			if next, ok := l.peek(); ok && next == '{' {
				l.advance()
				depth++
			}
		case b == '{' && depth > 0:
			depth++
		case b == '}' && depth > 0:
			depth--
		case b == '`' && depth == 0:
			return l.token(TokTemplate, start)
		}
	}
}

func (l *Lexer) scanOperator(start int, b byte) Token {
	two := func(kind TokenKind) Token {
		l.advance()
		l.advance()
		return l.token(kind, start)
	}
	three := func(kind TokenKind) Token {
		l.advance()
		l.advance()
		l.advance()
		return l.token(kind, start)
	}
	one := func(kind TokenKind) Token {
		l.advance()
		return l.token(kind, start)
	}

	n1, _ := l.peekAt(1)
	n2, _ := l.peekAt(2)

	switch b {
	case '(':
		return one(TokLParen)
	case ')':
		return one(TokRParen)
	case '{':
		return one(TokLBrace)
	case '}':
		return one(TokRBrace)
	case '[':
		return one(TokLBracket)
	case ']':
		return one(TokRBracket)
	case ';':
		return one(TokSemicolon)
	case ',':
		return one(TokComma)
	case ':':
		return one(TokColon)
	case '~':
		return one(TokTilde)
	case '^':
		return one(TokCaret)
	case '.':
		if n1 == '.' && n2 == '.' {
			return three(TokSpread)
		}
		return one(TokDot)
	case '?':
		switch n1 {
		case '?':
			return two(TokNullish)
		case '.':
			return two(TokOptionalChain)
		}
		return one(TokQuestion)
	case '=':
		if n1 == '=' {
			if n2 == '=' {
				return three(TokStrictEq)
			}
			return two(TokEq)
		}
		if n1 == '>' {
			return two(TokArrow)
		}
		return one(TokAssign)
	case '!':
		if n1 == '=' {
			if n2 == '=' {
				return three(TokStrictNotEq)
			}
			return two(TokNotEq)
		}
		return one(TokNot)
	case '<':
		if n1 == '=' {
			return two(TokLtEq)
		}
		return one(TokLt)
	case '>':
		if n1 == '=' {
			return two(TokGtEq)
		}
		return one(TokGt)
	case '+':
		switch n1 {
		case '+':
			return two(TokPlusPlus)
		case '=':
			return two(TokPlusAssign)
		}
		return one(TokPlus)
	case '-':
		switch n1 {
		case '-':
			return two(TokMinusMinus)
		case '=':
			return two(TokMinusAssign)
		}
		return one(TokMinus)
	case '*':
		if n1 == '=' {
			return two(TokStarAssign)
		}
		return one(TokStar)
	case '/':
		if n1 == '=' {
			return two(TokSlashAssign)
		}
		return one(TokSlash)
	case '%':
		return one(TokPercent)
	case '&':
		if n1 == '&' {
			return two(TokAndAnd)
		}
		return one(TokAmp)
	case '|':
		if n1 == '|' {
			return two(TokOrOr)
		}
		return one(TokPipe)
	}

	l.advance()
	l.error(l.spanFrom(start), fmt.Sprintf("unexpected character %q", b))
	return l.token(TokError, start)
}
