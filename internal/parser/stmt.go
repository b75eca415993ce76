package parser

import (
	"github.com/suseejs/duplicates/internal/ast"
	"github.com/suseejs/duplicates/internal/lexer"
	"github.com/suseejs/duplicates/internal/types"
)

func (p *Parser) parseStmt() ast.Stmt {
	tok := p.cur()
	switch tok.Kind {
	case lexer.TokKwImport:
		return p.parseImport()
	case lexer.TokKwExport:
		return p.parseExport()
	case lexer.TokKwConst, lexer.TokKwLet, lexer.TokKwVar:
		decl := p.parseVarDecl()
		p.expectSemi()
		return decl
	case lexer.TokKwFunction:
		return p.parseFuncDecl(false)
	case lexer.TokKwClass:
		return p.parseClassDecl()
	case lexer.TokKwEnum:
		return p.parseEnumDecl()
	case lexer.TokKwInterface:
		return p.parseInterfaceDecl()
	case lexer.TokLBrace:
		return p.parseBlock()
	case lexer.TokKwIf:
		return p.parseIf()
	case lexer.TokKwFor:
		return p.parseFor()
	case lexer.TokKwWhile:
		return p.parseWhile()
	case lexer.TokKwReturn:
		return p.parseReturn()
	case lexer.TokKwThrow:
		return p.parseThrow()
	case lexer.TokKwTry:
		return p.parseTry()
	case lexer.TokKwSwitch:
		return p.parseSwitch()
	case lexer.TokKwBreak:
		p.advance()
		p.expectSemi()
		return &ast.BreakStmt{Loc: tok.Span}
	case lexer.TokKwContinue:
		p.advance()
		p.expectSemi()
		return &ast.ContinueStmt{Loc: tok.Span}
	case lexer.TokSemicolon:
		p.advance()
		return &ast.EmptyStmt{Loc: tok.Span}
	}

	// Contextual statement keywords.
	if p.atContextual("async") && p.peekAt(1).Kind == lexer.TokKwFunction {
		p.advance()
		return p.parseFuncDecl(true)
	}
	if p.atContextual("type") && p.peekAt(1).Kind == lexer.TokIdent {
		return p.parseTypeAlias()
	}

	x := p.parseExpr()
	p.expectSemi()
	return &ast.ExprStmt{X: x}
}

// --- module statements ---

func (p *Parser) parseImport() ast.Stmt {
	start := p.expect(lexer.TokKwImport, "'import'").Span
	decl := &ast.ImportDecl{}

	if p.at(lexer.TokString) {
		// Bare side-effect import: import './x'.
		decl.Source = p.stringLit("module specifier")
		p.expectSemi()
		decl.Loc = types.NewSpan(start.Start, p.prevEnd())
		return decl
	}

	switch {
	case p.at(lexer.TokStar):
		p.advance()
		p.expectContextual("as")
		decl.Namespace = p.ident()
	case p.at(lexer.TokLBrace):
		decl.Named = p.parseImportSpecs()
	default:
		decl.Default = p.ident()
		if p.accept(lexer.TokComma) {
			if p.accept(lexer.TokStar) {
				p.expectContextual("as")
				decl.Namespace = p.ident()
			} else {
				decl.Named = p.parseImportSpecs()
			}
		}
	}

	p.expectContextual("from")
	decl.Source = p.stringLit("module specifier")
	p.expectSemi()
	decl.Loc = types.NewSpan(start.Start, p.prevEnd())
	return decl
}

func (p *Parser) parseImportSpecs() []*ast.ImportSpec {
	p.expect(lexer.TokLBrace, "'{'")
	var specs []*ast.ImportSpec
	for p.err == nil && !p.at(lexer.TokRBrace) {
		imported := p.identName()
		spec := &ast.ImportSpec{Imported: imported, Local: imported}
		if p.acceptContextual("as") {
			spec.Local = p.ident()
		}
		specs = append(specs, spec)
		if !p.accept(lexer.TokComma) {
			break
		}
	}
	p.expect(lexer.TokRBrace, "'}'")
	return specs
}

func (p *Parser) parseExport() ast.Stmt {
	start := p.expect(lexer.TokKwExport, "'export'").Span

	switch p.cur().Kind {
	case lexer.TokStar:
		p.advance()
		if p.acceptContextual("as") {
			p.ident() // namespace re-export alias; not a rename site
		}
		p.expectContextual("from")
		src := p.stringLit("module specifier")
		p.expectSemi()
		return &ast.ExportAllDecl{Source: src, Loc: types.NewSpan(start.Start, p.prevEnd())}

	case lexer.TokLBrace:
		decl := &ast.ExportNamedDecl{}
		p.advance()
		for p.err == nil && !p.at(lexer.TokRBrace) {
			local := p.identName()
			spec := &ast.ExportSpec{Local: local, Exported: local}
			if p.acceptContextual("as") {
				spec.Exported = p.identName()
			}
			decl.Specs = append(decl.Specs, spec)
			if !p.accept(lexer.TokComma) {
				break
			}
		}
		p.expect(lexer.TokRBrace, "'}'")
		if p.acceptContextual("from") {
			decl.Source = p.stringLit("module specifier")
		}
		p.expectSemi()
		decl.Loc = types.NewSpan(start.Start, p.prevEnd())
		return decl

	case lexer.TokKwDefault:
		p.advance()
		decl := &ast.ExportDefaultDecl{}
		switch {
		case p.at(lexer.TokKwFunction):
			decl.Decl = p.parseFuncDecl(false)
		case p.atContextual("async") && p.peekAt(1).Kind == lexer.TokKwFunction:
			p.advance()
			decl.Decl = p.parseFuncDecl(true)
		case p.at(lexer.TokKwClass):
			decl.Decl = p.parseClassDecl()
		default:
			decl.Expr = p.parseAssign()
			p.expectSemi()
		}
		decl.Loc = types.NewSpan(start.Start, p.prevEnd())
		return decl

	case lexer.TokKwConst, lexer.TokKwLet, lexer.TokKwVar,
		lexer.TokKwFunction, lexer.TokKwClass, lexer.TokKwEnum, lexer.TokKwInterface:
		inner := p.parseStmt()
		return &ast.ExportDecl{Decl: inner, Loc: types.NewSpan(start.Start, p.prevEnd())}
	}

	if p.atContextual("async") || p.atContextual("type") {
		inner := p.parseStmt()
		return &ast.ExportDecl{Decl: inner, Loc: types.NewSpan(start.Start, p.prevEnd())}
	}

	p.fail(p.cur().Span, "expected declaration after 'export', found %q", p.text(p.cur()))
	return nil
}

// --- declarations ---

func (p *Parser) parseVarDecl() *ast.VarDecl {
	tok := p.advance()
	var kind ast.VarKind
	switch tok.Kind {
	case lexer.TokKwConst:
		kind = ast.VarConst
	case lexer.TokKwLet:
		kind = ast.VarLet
	default:
		kind = ast.VarVar
	}

	decl := &ast.VarDecl{Kind: kind}
	for p.err == nil {
		d := &ast.Declarator{Target: p.parsePattern()}
		if p.accept(lexer.TokColon) {
			p.skipType(lexer.TokAssign, lexer.TokComma, lexer.TokSemicolon)
		}
		if p.accept(lexer.TokAssign) {
			d.Init = p.parseAssign()
		}
		decl.Decls = append(decl.Decls, d)
		if !p.accept(lexer.TokComma) {
			break
		}
	}
	decl.Loc = types.NewSpan(tok.Span.Start, p.prevEnd())
	return decl
}

func (p *Parser) parsePattern() ast.Pattern {
	switch p.cur().Kind {
	case lexer.TokLBrace:
		return p.parseObjectPattern()
	case lexer.TokLBracket:
		return p.parseArrayPattern()
	default:
		return p.ident()
	}
}

func (p *Parser) parseObjectPattern() *ast.ObjectPattern {
	start := p.expect(lexer.TokLBrace, "'{'").Span
	pat := &ast.ObjectPattern{}
	for p.err == nil && !p.at(lexer.TokRBrace) {
		if p.accept(lexer.TokSpread) {
			rest := p.ident()
			pat.Props = append(pat.Props, &ast.PatternProp{Value: rest})
		} else {
			key := p.identName()
			prop := &ast.PatternProp{Key: key, Value: key}
			if p.accept(lexer.TokColon) {
				prop.Value = p.parsePattern()
			}
			if p.accept(lexer.TokAssign) {
				prop.Default = p.parseAssign()
			}
			pat.Props = append(pat.Props, prop)
		}
		if !p.accept(lexer.TokComma) {
			break
		}
	}
	end := p.expect(lexer.TokRBrace, "'}'").Span
	pat.Loc = spanBetween(start, end)
	return pat
}

func (p *Parser) parseArrayPattern() *ast.ArrayPattern {
	start := p.expect(lexer.TokLBracket, "'['").Span
	pat := &ast.ArrayPattern{}
	for p.err == nil && !p.at(lexer.TokRBracket) {
		if p.at(lexer.TokComma) {
			pat.Elems = append(pat.Elems, nil) // hole
			p.advance()
			continue
		}
		if p.accept(lexer.TokSpread) {
			pat.Elems = append(pat.Elems, p.parsePattern())
		} else {
			elem := p.parsePattern()
			if p.accept(lexer.TokAssign) {
				p.parseAssign() // default value; bound name is what matters
			}
			pat.Elems = append(pat.Elems, elem)
		}
		if !p.accept(lexer.TokComma) {
			break
		}
	}
	end := p.expect(lexer.TokRBracket, "']'").Span
	pat.Loc = spanBetween(start, end)
	return pat
}

func (p *Parser) parseFuncDecl(async bool) *ast.FuncDecl {
	start := p.expect(lexer.TokKwFunction, "'function'").Span
	p.accept(lexer.TokStar) // generator
	decl := &ast.FuncDecl{
		Name:  p.ident(),
		Async: async,
	}
	decl.Params = p.parseParams()
	if p.accept(lexer.TokColon) {
		p.skipType(lexer.TokLBrace)
	}
	decl.Body = p.parseBlock()
	decl.Loc = types.NewSpan(start.Start, p.prevEnd())
	return decl
}

func (p *Parser) parseParams() []*ast.Param {
	p.expect(lexer.TokLParen, "'('")
	var params []*ast.Param
	for p.err == nil && !p.at(lexer.TokRParen) {
		param := &ast.Param{}
		if p.accept(lexer.TokSpread) {
			param.Rest = true
		}
		param.Target = p.parsePattern()
		p.accept(lexer.TokQuestion) // optional marker
		if p.accept(lexer.TokColon) {
			p.skipType(lexer.TokAssign, lexer.TokComma, lexer.TokRParen)
		}
		if p.accept(lexer.TokAssign) {
			param.Default = p.parseAssign()
		}
		params = append(params, param)
		if !p.accept(lexer.TokComma) {
			break
		}
	}
	p.expect(lexer.TokRParen, "')'")
	return params
}

func (p *Parser) parseClassDecl() *ast.ClassDecl {
	start := p.expect(lexer.TokKwClass, "'class'").Span
	decl := &ast.ClassDecl{Name: p.ident()}
	if p.accept(lexer.TokKwExtends) {
		decl.Super = p.parseCallChain(p.parsePrimary())
	}
	if p.atContextual("implements") {
		p.advance()
		p.skipType(lexer.TokLBrace)
	}
	p.expect(lexer.TokLBrace, "'{'")
	for p.err == nil && !p.at(lexer.TokRBrace) {
		if p.accept(lexer.TokSemicolon) {
			continue
		}
		decl.Members = append(decl.Members, p.parseClassMember())
	}
	end := p.expect(lexer.TokRBrace, "'}'").Span
	decl.Loc = spanBetween(start, end)
	return decl
}

func (p *Parser) parseClassMember() *ast.ClassMember {
	start := p.cur().Span
	member := &ast.ClassMember{}
	if p.atContextual("static") && p.peekAt(1).Kind != lexer.TokLParen && p.peekAt(1).Kind != lexer.TokAssign {
		p.advance()
		member.Static = true
	}
	// Accessor and async markers; names like "get" followed by '(' are
	// ordinary methods, so only treat them as markers before another name.
	for _, marker := range []string{"async", "get", "set"} {
		if p.atContextual(marker) && (p.peekAt(1).Kind == lexer.TokIdent || p.peekAt(1).Kind.IsKeyword()) {
			p.advance()
			break
		}
	}
	member.Name = p.identName()
	if p.at(lexer.TokLParen) {
		member.Params = p.parseParams()
		if p.accept(lexer.TokColon) {
			p.skipType(lexer.TokLBrace)
		}
		member.Body = p.parseBlock()
	} else {
		p.accept(lexer.TokQuestion)
		if p.accept(lexer.TokColon) {
			p.skipType(lexer.TokAssign, lexer.TokSemicolon)
		}
		if p.accept(lexer.TokAssign) {
			member.Value = p.parseAssign()
		}
		p.expectSemi()
	}
	member.Loc = types.NewSpan(start.Start, p.prevEnd())
	return member
}

func (p *Parser) parseEnumDecl() *ast.EnumDecl {
	start := p.expect(lexer.TokKwEnum, "'enum'").Span
	decl := &ast.EnumDecl{Name: p.ident()}
	p.expect(lexer.TokLBrace, "'{'")
	for p.err == nil && !p.at(lexer.TokRBrace) {
		member := &ast.EnumMember{Name: p.identName()}
		if p.accept(lexer.TokAssign) {
			member.Init = p.parseAssign()
		}
		decl.Members = append(decl.Members, member)
		if !p.accept(lexer.TokComma) {
			break
		}
	}
	end := p.expect(lexer.TokRBrace, "'}'").Span
	decl.Loc = spanBetween(start, end)
	return decl
}

func (p *Parser) parseInterfaceDecl() *ast.InterfaceDecl {
	start := p.expect(lexer.TokKwInterface, "'interface'").Span
	decl := &ast.InterfaceDecl{Name: p.ident()}
	if p.accept(lexer.TokKwExtends) {
		p.skipType(lexer.TokLBrace)
	}
	p.skipBalancedBraces()
	decl.Loc = types.NewSpan(start.Start, p.prevEnd())
	return decl
}

func (p *Parser) parseTypeAlias() *ast.TypeAliasDecl {
	start := p.cur().Span
	p.expectContextual("type")
	decl := &ast.TypeAliasDecl{Name: p.ident()}
	if p.accept(lexer.TokLt) {
		// Generic parameter list.
		depth := 1
		for p.err == nil && depth > 0 && !p.at(lexer.TokEOF) {
			switch p.cur().Kind {
			case lexer.TokLt:
				depth++
			case lexer.TokGt:
				depth--
			}
			p.advance()
		}
	}
	p.expect(lexer.TokAssign, "'='")
	p.skipType(lexer.TokSemicolon)
	p.expectSemi()
	decl.Loc = types.NewSpan(start.Start, p.prevEnd())
	return decl
}

// skipBalancedBraces consumes a brace-delimited body without parsing it.
func (p *Parser) skipBalancedBraces() {
	p.expect(lexer.TokLBrace, "'{'")
	depth := 1
	for p.err == nil && depth > 0 {
		switch p.cur().Kind {
		case lexer.TokEOF:
			p.fail(p.cur().Span, "unexpected end of file in braced body")
			return
		case lexer.TokLBrace:
			depth++
		case lexer.TokRBrace:
			depth--
		}
		p.advance()
	}
}

// --- control flow ---

func (p *Parser) parseBlock() *ast.BlockStmt {
	start := p.expect(lexer.TokLBrace, "'{'").Span
	block := &ast.BlockStmt{}
	for p.err == nil && !p.at(lexer.TokRBrace) && !p.at(lexer.TokEOF) {
		stmt := p.parseStmt()
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}
	end := p.expect(lexer.TokRBrace, "'}'").Span
	block.Loc = spanBetween(start, end)
	return block
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.expect(lexer.TokKwIf, "'if'").Span
	p.expect(lexer.TokLParen, "'('")
	cond := p.parseExpr()
	p.expect(lexer.TokRParen, "')'")
	stmt := &ast.IfStmt{Cond: cond, Then: p.parseStmt()}
	if p.accept(lexer.TokKwElse) {
		stmt.Else = p.parseStmt()
	}
	stmt.Loc = types.NewSpan(start.Start, p.prevEnd())
	return stmt
}

func (p *Parser) parseFor() ast.Stmt {
	start := p.expect(lexer.TokKwFor, "'for'").Span
	p.expect(lexer.TokLParen, "'('")

	var init ast.Stmt
	switch {
	case p.at(lexer.TokSemicolon):
		// no init
	case p.at(lexer.TokKwConst) || p.at(lexer.TokKwLet) || p.at(lexer.TokKwVar):
		p.noIn = true
		init = p.parseVarDecl()
		p.noIn = false
	default:
		p.noIn = true
		init = &ast.ExprStmt{X: p.parseExpr()}
		p.noIn = false
	}

	if p.at(lexer.TokKwIn) || p.atContextual("of") {
		of := p.atContextual("of")
		p.advance()
		object := p.parseAssign()
		p.expect(lexer.TokRParen, "')'")
		body := p.parseStmt()
		return &ast.ForInOfStmt{
			Decl: init, Of: of, Object: object, Body: body,
			Loc: types.NewSpan(start.Start, p.prevEnd()),
		}
	}

	stmt := &ast.ForStmt{Init: init}
	p.expect(lexer.TokSemicolon, "';'")
	if !p.at(lexer.TokSemicolon) {
		stmt.Cond = p.parseExpr()
	}
	p.expect(lexer.TokSemicolon, "';'")
	if !p.at(lexer.TokRParen) {
		stmt.Post = p.parseExpr()
	}
	p.expect(lexer.TokRParen, "')'")
	stmt.Body = p.parseStmt()
	stmt.Loc = types.NewSpan(start.Start, p.prevEnd())
	return stmt
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.expect(lexer.TokKwWhile, "'while'").Span
	p.expect(lexer.TokLParen, "'('")
	cond := p.parseExpr()
	p.expect(lexer.TokRParen, "')'")
	return &ast.WhileStmt{
		Cond: cond, Body: p.parseStmt(),
		Loc: types.NewSpan(start.Start, p.prevEnd()),
	}
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.expect(lexer.TokKwReturn, "'return'").Span
	stmt := &ast.ReturnStmt{}
	if !p.at(lexer.TokSemicolon) && !p.at(lexer.TokRBrace) && !p.at(lexer.TokEOF) && !p.newlineBefore() {
		stmt.X = p.parseExpr()
	}
	p.expectSemi()
	stmt.Loc = types.NewSpan(start.Start, p.prevEnd())
	return stmt
}

func (p *Parser) parseThrow() ast.Stmt {
	start := p.expect(lexer.TokKwThrow, "'throw'").Span
	stmt := &ast.ThrowStmt{X: p.parseExpr()}
	p.expectSemi()
	stmt.Loc = types.NewSpan(start.Start, p.prevEnd())
	return stmt
}

func (p *Parser) parseTry() ast.Stmt {
	start := p.expect(lexer.TokKwTry, "'try'").Span
	stmt := &ast.TryStmt{Block: p.parseBlock()}
	if p.accept(lexer.TokKwCatch) {
		if p.accept(lexer.TokLParen) {
			stmt.CatchParam = p.parsePattern()
			p.expect(lexer.TokRParen, "')'")
		}
		stmt.Catch = p.parseBlock()
	}
	if p.accept(lexer.TokKwFinally) {
		stmt.Finally = p.parseBlock()
	}
	if stmt.Catch == nil && stmt.Finally == nil {
		p.fail(p.cur().Span, "expected 'catch' or 'finally' after try block")
	}
	stmt.Loc = types.NewSpan(start.Start, p.prevEnd())
	return stmt
}

func (p *Parser) parseSwitch() ast.Stmt {
	start := p.expect(lexer.TokKwSwitch, "'switch'").Span
	p.expect(lexer.TokLParen, "'('")
	stmt := &ast.SwitchStmt{Disc: p.parseExpr()}
	p.expect(lexer.TokRParen, "')'")
	p.expect(lexer.TokLBrace, "'{'")
	for p.err == nil && !p.at(lexer.TokRBrace) {
		c := &ast.SwitchCase{}
		if p.accept(lexer.TokKwCase) {
			c.Test = p.parseExpr()
		} else {
			p.expect(lexer.TokKwDefault, "'case' or 'default'")
		}
		p.expect(lexer.TokColon, "':'")
		for p.err == nil && !p.at(lexer.TokKwCase) && !p.at(lexer.TokKwDefault) && !p.at(lexer.TokRBrace) {
			s := p.parseStmt()
			if s != nil {
				c.Body = append(c.Body, s)
			}
		}
		stmt.Cases = append(stmt.Cases, c)
	}
	p.expect(lexer.TokRBrace, "'}'")
	stmt.Loc = types.NewSpan(start.Start, p.prevEnd())
	return stmt
}
