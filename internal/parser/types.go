package parser

import (
	"github.com/coda-lang/coda/internal/ast"
	"github.com/coda-lang/coda/internal/token"
)

// parseType parses a type expression:
//
//	'mut'* base (('mut'* '*' | 'mut'* '[' ']') '?'?)*
//	base = builtin | IDENT | '(' type ')'
//
// Leading mut marks the base type. A mut before a postfix operator marks
// the level that operator creates, and '?' makes that level optional.
// Returns nil when no base type is present.
func (p *Parser) parseType() ast.TypeRef {
	p.enter()
	defer p.leave()

	start := p.tok.Pos
	mutable := p.skipMut()

	var typ ast.TypeRef
	switch {
	case p.tok.Kind == token.IDENT || p.tok.Kind.IsBuiltinType():
		named := newNode[ast.NamedType](p)
		if p.tok.Kind == token.IDENT {
			named.Name = p.tok.Text
		} else {
			named.Name = p.tok.Kind.BuiltinName()
			named.Builtin = true
		}
		named.Mutable = mutable
		p.next()
		named.Span = p.spanFrom(start)
		typ = named

	case p.tok.Kind == token.LPAREN:
		p.next()
		inner := p.parseType()
		if inner == nil {
			return nil
		}
		p.expect(token.RPAREN)
		base := inner.Base()
		base.Mutable = base.Mutable || mutable
		base.Span = p.spanFrom(start)
		typ = inner

	default:
		p.errorf("expected type")
		return nil
	}

	for {
		opStart := p.pos
		levelMut := p.skipMut()

		switch p.tok.Kind {
		case token.MUL:
			p.next()
			ptr := newNode[ast.PointerType](p)
			ptr.Pointee = typ
			ptr.Mutable = levelMut
			ptr.Optional = p.skipOptional()
			ptr.Span = p.spanFrom(start)
			typ = ptr

		case token.LBRACKET:
			p.next()
			if p.tok.Kind == token.RBRACKET {
				p.next()
			} else {
				p.errorf("expected ']'")
				p.skipTo(token.RBRACKET)
			}
			slice := newNode[ast.SliceType](p)
			slice.Elem = typ
			slice.Mutable = levelMut
			slice.Optional = p.skipOptional()
			slice.Span = p.spanFrom(start)
			typ = slice

		default:
			if p.pos > opStart {
				p.errorf("expected '*' or '[' after 'mut'")
			}
			return typ
		}
	}
}

// skipMut consumes any run of mut keywords and reports whether there was one.
func (p *Parser) skipMut() bool {
	found := false
	for p.tok.Kind == token.MUT {
		found = true
		p.next()
	}
	return found
}

func (p *Parser) skipOptional() bool {
	if p.tok.Kind == token.QUESTION {
		p.next()
		return true
	}
	return false
}

// skipTo drops tokens up to and including the next one of the given kind.
func (p *Parser) skipTo(kind token.Kind) {
	for p.tok.Kind != token.EOF {
		if p.tok.Kind == kind {
			p.next()
			return
		}
		p.next()
	}
}
