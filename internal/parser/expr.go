package parser

import (
	"github.com/suseejs/duplicates/internal/ast"
	"github.com/suseejs/duplicates/internal/lexer"
	"github.com/suseejs/duplicates/internal/types"
)

// binaryPrec maps operator tokens to precedence levels. Zero means the
// token is not a binary operator.
func (p *Parser) binaryPrec(kind lexer.TokenKind) int {
	switch kind {
	case lexer.TokOrOr, lexer.TokNullish:
		return 1
	case lexer.TokAndAnd:
		return 2
	case lexer.TokPipe:
		return 3
	case lexer.TokCaret:
		return 4
	case lexer.TokAmp:
		return 5
	case lexer.TokEq, lexer.TokNotEq, lexer.TokStrictEq, lexer.TokStrictNotEq:
		return 6
	case lexer.TokLt, lexer.TokGt, lexer.TokLtEq, lexer.TokGtEq, lexer.TokKwInstanceof:
		return 7
	case lexer.TokKwIn:
		if p.noIn {
			return 0
		}
		return 7
	case lexer.TokPlus, lexer.TokMinus:
		return 8
	case lexer.TokStar, lexer.TokSlash, lexer.TokPercent:
		return 9
	default:
		return 0
	}
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssign()
}

func (p *Parser) parseAssign() ast.Expr {
	if arrow := p.tryArrow(); arrow != nil {
		return arrow
	}

	left := p.parseConditional()

	switch p.cur().Kind {
	case lexer.TokAssign, lexer.TokPlusAssign, lexer.TokMinusAssign,
		lexer.TokStarAssign, lexer.TokSlashAssign:
		op := p.advance().Kind
		return &ast.AssignExpr{Op: op, Target: left, Value: p.parseAssign()}
	}
	return left
}

func (p *Parser) parseConditional() ast.Expr {
	cond := p.parseBinary(1)
	if !p.at(lexer.TokQuestion) {
		return cond
	}
	p.advance()
	then := p.parseAssign()
	p.expect(lexer.TokColon, "':'")
	return &ast.CondExpr{Cond: cond, Then: then, Else: p.parseAssign()}
}

func (p *Parser) parseBinary(minPrec int) ast.Expr {
	x := p.parseUnary()
	for {
		prec := p.binaryPrec(p.cur().Kind)
		if prec == 0 || prec < minPrec {
			return x
		}
		op := p.advance().Kind
		y := p.parseBinary(prec + 1)
		x = &ast.BinaryExpr{Op: op, X: x, Y: y}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	tok := p.cur()
	switch tok.Kind {
	case lexer.TokNot, lexer.TokMinus, lexer.TokPlus, lexer.TokTilde,
		lexer.TokKwTypeof, lexer.TokKwVoid, lexer.TokKwDelete:
		p.advance()
		x := p.parseUnary()
		return &ast.UnaryExpr{Op: tok.Kind, X: x, Loc: types.NewSpan(tok.Span.Start, x.Span().End)}
	case lexer.TokPlusPlus, lexer.TokMinusMinus:
		p.advance()
		x := p.parseUnary()
		return &ast.UpdateExpr{Op: tok.Kind, X: x, Prefix: true, Loc: types.NewSpan(tok.Span.Start, x.Span().End)}
	}
	// "await expr" with await as a contextual word.
	if p.atContextual("await") && p.startsExpr(p.peekAt(1).Kind) {
		p.advance()
		x := p.parseUnary()
		return &ast.UnaryExpr{Op: lexer.TokIdent, X: x, Loc: types.NewSpan(tok.Span.Start, x.Span().End)}
	}

	x := p.parsePostfix()
	return x
}

// startsExpr reports whether a token can begin an expression; used only
// to disambiguate the contextual "await" operator from an identifier.
func (p *Parser) startsExpr(kind lexer.TokenKind) bool {
	switch kind {
	case lexer.TokIdent, lexer.TokNumber, lexer.TokString, lexer.TokTemplate,
		lexer.TokLParen, lexer.TokLBracket, lexer.TokLBrace,
		lexer.TokKwNew, lexer.TokKwThis, lexer.TokKwFunction,
		lexer.TokKwTrue, lexer.TokKwFalse, lexer.TokKwNull,
		lexer.TokNot, lexer.TokTilde:
		return true
	}
	return false
}

func (p *Parser) parsePostfix() ast.Expr {
	x := p.parseCallChain(p.parsePrimary())
	if (p.at(lexer.TokPlusPlus) || p.at(lexer.TokMinusMinus)) && !p.newlineBefore() {
		op := p.advance()
		return &ast.UpdateExpr{Op: op.Kind, X: x, Loc: types.NewSpan(x.Span().Start, op.Span.End)}
	}
	return x
}

// parseCallChain parses call, member, and optional-chain suffixes.
func (p *Parser) parseCallChain(x ast.Expr) ast.Expr {
	for p.err == nil {
		switch p.cur().Kind {
		case lexer.TokLParen:
			args, end := p.parseArgs()
			x = &ast.CallExpr{Callee: x, Args: args, Loc: types.NewSpan(x.Span().Start, end)}
		case lexer.TokDot:
			p.advance()
			prop := p.identName()
			x = &ast.MemberExpr{Object: x, Property: prop, Loc: types.NewSpan(x.Span().Start, prop.Span().End)}
		case lexer.TokOptionalChain:
			p.advance()
			switch p.cur().Kind {
			case lexer.TokLParen:
				args, end := p.parseArgs()
				x = &ast.CallExpr{Callee: x, Args: args, Optional: true, Loc: types.NewSpan(x.Span().Start, end)}
			case lexer.TokLBracket:
				p.advance()
				idx := p.parseExpr()
				end := p.expect(lexer.TokRBracket, "']'").Span
				x = &ast.MemberExpr{Object: x, Index: idx, Computed: true, Optional: true, Loc: types.NewSpan(x.Span().Start, end.End)}
			default:
				prop := p.identName()
				x = &ast.MemberExpr{Object: x, Property: prop, Optional: true, Loc: types.NewSpan(x.Span().Start, prop.Span().End)}
			}
		case lexer.TokLBracket:
			p.advance()
			idx := p.parseExpr()
			end := p.expect(lexer.TokRBracket, "']'").Span
			x = &ast.MemberExpr{Object: x, Index: idx, Computed: true, Loc: types.NewSpan(x.Span().Start, end.End)}
		default:
			return x
		}
	}
	return x
}

func (p *Parser) parseArgs() ([]ast.Expr, types.ByteOffset) {
	p.expect(lexer.TokLParen, "'('")
	var args []ast.Expr
	for p.err == nil && !p.at(lexer.TokRParen) {
		if p.at(lexer.TokSpread) {
			start := p.advance().Span
			x := p.parseAssign()
			args = append(args, &ast.SpreadExpr{X: x, Loc: types.NewSpan(start.Start, x.Span().End)})
		} else {
			args = append(args, p.parseAssign())
		}
		if !p.accept(lexer.TokComma) {
			break
		}
	}
	end := p.expect(lexer.TokRParen, "')'").Span
	return args, end.End
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur()
	switch tok.Kind {
	case lexer.TokIdent:
		p.advance()
		return ast.NewIdent(p.text(tok), tok.Span)
	case lexer.TokNumber:
		p.advance()
		return &ast.Literal{Kind: ast.LitNumber, Raw: p.text(tok), Loc: tok.Span}
	case lexer.TokString:
		p.advance()
		raw := p.text(tok)
		value := raw
		if len(raw) >= 2 {
			value = unescape(raw[1 : len(raw)-1])
		}
		return &ast.StringLit{Value: value, Loc: tok.Span}
	case lexer.TokTemplate:
		p.advance()
		return &ast.Literal{Kind: ast.LitTemplate, Raw: p.text(tok), Loc: tok.Span}
	case lexer.TokKwTrue, lexer.TokKwFalse:
		p.advance()
		return &ast.Literal{Kind: ast.LitBool, Raw: p.text(tok), Loc: tok.Span}
	case lexer.TokKwNull:
		p.advance()
		return &ast.Literal{Kind: ast.LitNull, Raw: p.text(tok), Loc: tok.Span}
	case lexer.TokKwThis:
		p.advance()
		return &ast.ThisExpr{Loc: tok.Span}
	case lexer.TokKwNew:
		return p.parseNew()
	case lexer.TokKwFunction:
		return p.parseFuncExpr(false)
	case lexer.TokLParen:
		p.advance()
		x := p.parseExpr()
		end := p.expect(lexer.TokRParen, "')'").Span
		return &ast.ParenExpr{X: x, Loc: spanBetween(tok.Span, end)}
	case lexer.TokLBracket:
		return p.parseArrayLit()
	case lexer.TokLBrace:
		return p.parseObjectLit()
	}

	if p.atContextual("async") && p.peekAt(1).Kind == lexer.TokKwFunction {
		p.advance()
		return p.parseFuncExpr(true)
	}

	p.fail(tok.Span, "unexpected %q in expression", p.text(tok))
	return ast.NewIdent("", tok.Span)
}

// parseNew parses "new Callee(args)". Member accesses bind tighter than
// the construction, so "new a.B()" constructs a.B.
func (p *Parser) parseNew() ast.Expr {
	start := p.expect(lexer.TokKwNew, "'new'").Span

	callee := p.parsePrimary()
	for p.err == nil && p.at(lexer.TokDot) {
		p.advance()
		prop := p.identName()
		callee = &ast.MemberExpr{Object: callee, Property: prop, Loc: types.NewSpan(callee.Span().Start, prop.Span().End)}
	}

	expr := &ast.NewExpr{Callee: callee}
	end := callee.Span().End
	if p.at(lexer.TokLParen) {
		expr.Args, end = p.parseArgs()
	}
	expr.Loc = types.NewSpan(start.Start, end)
	return expr
}

func (p *Parser) parseFuncExpr(async bool) ast.Expr {
	start := p.expect(lexer.TokKwFunction, "'function'").Span
	p.accept(lexer.TokStar)
	expr := &ast.FuncExpr{Async: async}
	if p.at(lexer.TokIdent) {
		expr.Name = p.ident()
	}
	expr.Params = p.parseParams()
	if p.accept(lexer.TokColon) {
		p.skipType(lexer.TokLBrace)
	}
	expr.Body = p.parseBlock()
	expr.Loc = types.NewSpan(start.Start, p.prevEnd())
	return expr
}

// tryArrow attempts to parse an arrow function at the current position.
// It returns nil (with the position restored) when the tokens ahead are
// not an arrow: the '(' of a parenthesized expression and the '(' of an
// arrow parameter list are indistinguishable without scanning for '=>'
// past the matching close paren.
func (p *Parser) tryArrow() ast.Expr {
	mark := p.pos
	start := p.cur().Span
	async := false

	if p.atContextual("async") {
		next := p.peekAt(1)
		if next.Kind == lexer.TokLParen || (next.Kind == lexer.TokIdent && p.peekAt(2).Kind == lexer.TokArrow) {
			p.advance()
			async = true
		}
	}

	switch {
	case p.at(lexer.TokIdent) && p.peekAt(1).Kind == lexer.TokArrow:
		param := &ast.Param{Target: p.ident()}
		p.expect(lexer.TokArrow, "'=>'")
		return p.finishArrow(start, []*ast.Param{param}, async)

	case p.at(lexer.TokLParen) && p.arrowAhead():
		params := p.parseParams()
		if p.accept(lexer.TokColon) {
			p.skipType(lexer.TokArrow)
		}
		p.expect(lexer.TokArrow, "'=>'")
		return p.finishArrow(start, params, async)
	}

	p.pos = mark
	return nil
}

// arrowAhead scans past the parenthesized group starting at the current
// '(' and reports whether '=>' follows (optionally after a return-type
// annotation introduced by ':').
func (p *Parser) arrowAhead() bool {
	depth := 0
	i := p.pos
	for ; i < len(p.tokens); i++ {
		switch p.tokens[i].Kind {
		case lexer.TokLParen:
			depth++
		case lexer.TokRParen:
			depth--
			if depth == 0 {
				next := p.peekAt(i + 1 - p.pos)
				return next.Kind == lexer.TokArrow || next.Kind == lexer.TokColon
			}
		case lexer.TokEOF:
			return false
		}
	}
	return false
}

func (p *Parser) finishArrow(start types.Span, params []*ast.Param, async bool) ast.Expr {
	arrow := &ast.ArrowFunc{Params: params, Async: async}
	if p.at(lexer.TokLBrace) {
		arrow.Body = p.parseBlock()
	} else {
		arrow.Body = p.parseAssign()
	}
	arrow.Loc = types.NewSpan(start.Start, p.prevEnd())
	return arrow
}

func (p *Parser) parseArrayLit() ast.Expr {
	start := p.expect(lexer.TokLBracket, "'['").Span
	lit := &ast.ArrayLit{}
	for p.err == nil && !p.at(lexer.TokRBracket) {
		if p.at(lexer.TokComma) {
			lit.Elems = append(lit.Elems, nil) // hole
			p.advance()
			continue
		}
		if p.at(lexer.TokSpread) {
			sp := p.advance().Span
			x := p.parseAssign()
			lit.Elems = append(lit.Elems, &ast.SpreadExpr{X: x, Loc: types.NewSpan(sp.Start, x.Span().End)})
		} else {
			lit.Elems = append(lit.Elems, p.parseAssign())
		}
		if !p.accept(lexer.TokComma) {
			break
		}
	}
	end := p.expect(lexer.TokRBracket, "']'").Span
	lit.Loc = spanBetween(start, end)
	return lit
}

func (p *Parser) parseObjectLit() ast.Expr {
	start := p.expect(lexer.TokLBrace, "'{'").Span
	lit := &ast.ObjectLit{}
	for p.err == nil && !p.at(lexer.TokRBrace) {
		lit.Props = append(lit.Props, p.parseObjectProp())
		if !p.accept(lexer.TokComma) {
			break
		}
	}
	end := p.expect(lexer.TokRBrace, "'}'").Span
	lit.Loc = spanBetween(start, end)
	return lit
}

func (p *Parser) parseObjectProp() *ast.ObjectProp {
	if p.at(lexer.TokSpread) {
		p.advance()
		return &ast.ObjectProp{Spread: p.parseAssign()}
	}

	prop := &ast.ObjectProp{}
	switch p.cur().Kind {
	case lexer.TokString:
		prop.Key = p.stringLit("property name")
	case lexer.TokNumber:
		tok := p.advance()
		prop.Key = &ast.Literal{Kind: ast.LitNumber, Raw: p.text(tok), Loc: tok.Span}
	case lexer.TokLBracket:
		p.advance()
		prop.Key = p.parseAssign()
		prop.Computed = true
		p.expect(lexer.TokRBracket, "']'")
	default:
		prop.Key = p.identName()
	}

	switch p.cur().Kind {
	case lexer.TokColon:
		p.advance()
		prop.Value = p.parseAssign()
	case lexer.TokLParen:
		// Shorthand method: key(params) { ... }.
		fn := &ast.FuncExpr{Params: p.parseParams()}
		fn.Body = p.parseBlock()
		fn.Loc = types.NewSpan(prop.Key.Span().Start, p.prevEnd())
		prop.Value = fn
	default:
		// Shorthand property: the key identifier is also the reference.
	}
	return prop
}
