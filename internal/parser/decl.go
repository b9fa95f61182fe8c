package parser

import (
	"github.com/coda-lang/coda/internal/ast"
	"github.com/coda-lang/coda/internal/token"
)

// parseModule parses a complete compilation unit into mod:
//
//	module IDENT ';' include* decl*
//
// Declarations are appended as they complete so a fatal error leaves the
// finished part in place.
func (p *Parser) parseModule(mod *ast.Module) {
	if p.tok.Kind == token.MODULE {
		start := p.pos
		before := p.errors.Len()
		p.next()
		mod.Name, _ = p.expectIdent()
		p.expect(token.SEMICOLON)
		if p.errors.Len() > before {
			p.syncDecl(start)
		}
	} else {
		p.errorf("expected 'module'")
	}

	for p.tok.Kind == token.INCLUDE {
		start := p.pos
		before := p.errors.Len()
		mod.Includes = append(mod.Includes, p.parseInclude())
		if p.errors.Len() > before {
			p.syncDecl(start)
		}
	}

	for p.tok.Kind != token.EOF {
		start := p.pos
		before := p.errors.Len()

		switch p.tok.Kind {
		case token.AT, token.FN:
			mod.Decls = append(mod.Decls, p.parseFnDecl())
		case token.INCLUDE:
			p.errorf("include must come before declarations")
			mod.Includes = append(mod.Includes, p.parseInclude())
		default:
			p.errorf("expected declaration")
		}

		if p.errors.Len() > before {
			p.syncDecl(start)
		}
	}
}

// parseInclude parses: include IDENT ('::' IDENT)* ';'
func (p *Parser) parseInclude() *ast.Include {
	inc := newNode[ast.Include](p)
	start := p.tok.Pos
	p.next() // include

	if name, ok := p.expectIdent(); ok {
		inc.Path = append(inc.Path, name)
		for p.tok.Kind == token.DOUBLECOLON {
			p.next()
			name, ok := p.expectIdent()
			if !ok {
				break
			}
			inc.Path = append(inc.Path, name)
		}
	}
	p.expect(token.SEMICOLON)
	inc.Span = p.spanFrom(start)
	return inc
}

// parseFnDecl parses:
//
//	attribute* 'fn' type IDENT '(' params? ')' (block | ';')?
//
// Without a block the declaration is a signature.
func (p *Parser) parseFnDecl() *ast.FnDecl {
	fn := newNode[ast.FnDecl](p)
	start := p.tok.Pos
	fn.Attributes = p.parseAttributes()

	if !p.expect(token.FN) {
		fn.Span = p.spanFrom(start)
		return fn
	}
	fn.Return = p.parseType()
	fn.Name, _ = p.expectIdent()

	if p.expect(token.LPAREN) {
		fn.Params = p.parseParams()
		// A '{' here is read as the missing ')' so the body still parses.
		p.expect(token.RPAREN)
	}

	switch p.tok.Kind {
	case token.LBRACE:
		fn.Body = p.parseBlock()
	case token.SEMICOLON:
		p.next()
	case token.EOF, token.AT, token.FN:
		// signature followed by the end of input or the next declaration
	default:
		p.errorf("expected '{' or ';' after function signature")
	}

	fn.Span = p.spanFrom(start)
	return fn
}

// parseParams parses a comma-separated parameter list up to ')' or '{'.
func (p *Parser) parseParams() []*ast.Param {
	if p.match(token.RPAREN, token.LBRACE) {
		return nil
	}
	var params []*ast.Param
	for {
		params = append(params, p.parseParam())
		if p.tok.Kind != token.COMMA {
			return params
		}
		p.next()
	}
}

// parseParam parses: attribute* type IDENT
func (p *Parser) parseParam() *ast.Param {
	param := newNode[ast.Param](p)
	start := p.tok.Pos
	param.Attributes = p.parseAttributes()
	param.Type = p.parseType()
	if param.Type != nil {
		param.Name, _ = p.expectIdent()
	}
	param.Span = p.spanFrom(start)
	return param
}

// parseAttributes parses zero or more attributes.
func (p *Parser) parseAttributes() []*ast.Attribute {
	var attrs []*ast.Attribute
	for p.tok.Kind == token.AT {
		attrs = append(attrs, p.parseAttribute())
	}
	return attrs
}

// parseAttribute parses: '@' IDENT ('(' arg (',' arg)* ')')?
// Each argument is a single identifier or literal token.
func (p *Parser) parseAttribute() *ast.Attribute {
	attr := newNode[ast.Attribute](p)
	start := p.tok.Pos
	p.next() // @

	attr.Name, _ = p.expectIdent()
	if attr.Name != "" && p.tok.Kind == token.LPAREN {
		p.next()
		for {
			arg, ok := p.attributeArg()
			if !ok {
				p.errorf("malformed attribute argument list")
				p.skipAttributeArgs()
				break
			}
			attr.Args = append(attr.Args, arg)
			if p.tok.Kind == token.COMMA {
				p.next()
				continue
			}
			if !p.expect(token.RPAREN) {
				p.skipAttributeArgs()
			}
			break
		}
	}

	attr.Span = p.spanFrom(start)
	return attr
}

// attributeArg consumes one attribute argument and returns its text.
func (p *Parser) attributeArg() (string, bool) {
	var text string
	switch p.tok.Kind {
	case token.IDENT, token.NUMBER, token.STRING, token.CHAR:
		text = p.tok.Text
	case token.TRUE, token.FALSE, token.T_NULL:
		text = p.tok.Kind.String()
	default:
		return "", false
	}
	p.next()
	return text, true
}

// skipAttributeArgs drops tokens through the closing ')' of a broken
// argument list. It gives up at a token that cannot be inside one.
func (p *Parser) skipAttributeArgs() {
	for !p.match(token.EOF, token.FN, token.AT, token.LBRACE, token.SEMICOLON) {
		if p.tok.Kind == token.RPAREN {
			p.next()
			return
		}
		p.next()
	}
}
