package parser

import (
	"github.com/coda-lang/coda/internal/ast"
	"github.com/coda-lang/coda/internal/token"
)

// parseStmt parses one statement. It returns nil when nothing usable was
// parsed; the error is already recorded in that case.
func (p *Parser) parseStmt() ast.Stmt {
	p.enter()
	defer p.leave()

	start := p.tok.Pos
	switch p.tok.Kind {
	case token.RETURN:
		return p.parseReturn()
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.WHILE:
		return p.parseWhile()
	case token.LBRACE:
		return p.parseBlock()

	case token.BREAK:
		p.next()
		p.expect(token.SEMICOLON)
		s := newNode[ast.BreakStmt](p)
		s.Span = p.spanFrom(start)
		return s

	case token.CONTINUE:
		p.next()
		p.expect(token.SEMICOLON)
		s := newNode[ast.ContinueStmt](p)
		s.Span = p.spanFrom(start)
		return s

	case token.SEMICOLON:
		p.next()
		s := newNode[ast.EmptyStmt](p)
		s.Span = p.spanFrom(start)
		return s
	}

	if p.startsVarDecl() {
		s := p.parseVarStmt()
		if s == nil {
			return nil
		}
		p.expect(token.SEMICOLON)
		s.Span = p.spanFrom(start)
		return s
	}

	s := p.parseExprStmt()
	if s == nil {
		return nil
	}
	p.expect(token.SEMICOLON)
	s.Span = p.spanFrom(start)
	return s
}

// startsVarDecl reports whether the current token begins a variable
// declaration. User-defined type names are not recognized here: an
// identifier always starts an expression.
func (p *Parser) startsVarDecl() bool {
	return p.tok.Kind == token.MUT || (p.tok.Kind.IsBuiltinType() && p.tok.Kind != token.T_NULL)
}

// parseVarStmt parses: type IDENT ('=' expr)?
// The terminating ';' is left to the caller.
func (p *Parser) parseVarStmt() *ast.VarStmt {
	start := p.tok.Pos
	typ := p.parseType()
	if typ == nil {
		return nil
	}
	decl := newNode[ast.VarDecl](p)
	decl.Type = typ
	decl.Name, _ = p.expectIdent()
	if decl.Name != "" && p.tok.Kind == token.ASSIGN {
		p.next()
		decl.Init = p.parseExpr()
	}
	decl.Span = p.spanFrom(start)

	s := newNode[ast.VarStmt](p)
	s.Decl = decl
	s.Span = decl.Span
	return s
}

func (p *Parser) parseExprStmt() *ast.ExprStmt {
	expr := p.parseExpr()
	if expr == nil {
		return nil
	}
	s := newNode[ast.ExprStmt](p)
	s.Expr = expr
	s.Span = ast.SpanOf(expr)
	return s
}

// parseReturn parses: 'return' expr? ';'
func (p *Parser) parseReturn() *ast.ReturnStmt {
	start := p.tok.Pos
	p.next()
	s := newNode[ast.ReturnStmt](p)
	if p.tok.Kind != token.SEMICOLON {
		s.Value = p.parseExpr()
	}
	p.expect(token.SEMICOLON)
	s.Span = p.spanFrom(start)
	return s
}

// parseIf parses: 'if' '(' expr ')' block ('else' (if | block))?
func (p *Parser) parseIf() *ast.IfStmt {
	start := p.tok.Pos
	p.next()
	s := newNode[ast.IfStmt](p)
	s.Cond = p.parseCond()
	s.Then = p.parseBlock()

	if p.tok.Kind == token.ELSE {
		p.next()
		if p.tok.Kind == token.IF {
			p.enter()
			s.Else = p.parseIf()
			p.leave()
		} else {
			s.Else = p.parseBlock()
		}
	}
	s.Span = p.spanFrom(start)
	return s
}

// parseWhile parses: 'while' '(' expr ')' block
func (p *Parser) parseWhile() *ast.WhileStmt {
	start := p.tok.Pos
	p.next()
	s := newNode[ast.WhileStmt](p)
	s.Cond = p.parseCond()
	s.Body = p.parseBlock()
	s.Span = p.spanFrom(start)
	return s
}

// parseCond parses a parenthesized condition.
func (p *Parser) parseCond() ast.Expr {
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	return cond
}

// parseFor parses: 'for' '(' init? ';' expr? ';' expr? ')' block
// where init is a variable declaration or an expression.
func (p *Parser) parseFor() *ast.ForStmt {
	start := p.tok.Pos
	p.next()
	s := newNode[ast.ForStmt](p)
	p.expect(token.LPAREN)

	if p.tok.Kind != token.SEMICOLON {
		if p.startsVarDecl() {
			if init := p.parseVarStmt(); init != nil {
				s.Init = init
			}
		} else if init := p.parseExprStmt(); init != nil {
			s.Init = init
		}
	}
	p.expect(token.SEMICOLON)

	if p.tok.Kind != token.SEMICOLON {
		s.Cond = p.parseExpr()
	}
	p.expect(token.SEMICOLON)

	if p.tok.Kind != token.RPAREN {
		s.Post = p.parseExpr()
	}
	p.expect(token.RPAREN)

	s.Body = p.parseBlock()
	s.Span = p.spanFrom(start)
	return s
}

// parseBlock parses: '{' stmt* '}'
// A missing '{' is reported and yields an empty block. Each statement that
// records an error is followed by resynchronization.
func (p *Parser) parseBlock() *ast.BlockStmt {
	start := p.tok.Pos
	block := newNode[ast.BlockStmt](p)
	if !p.expect(token.LBRACE) {
		block.Span = token.Span{Start: start, End: start}
		return block
	}

	for p.tok.Kind != token.RBRACE {
		if p.tok.Kind == token.EOF {
			p.errorf("expected '}'")
		}
		pos := p.pos
		before := p.errors.Len()
		if s := p.parseStmt(); s != nil {
			block.Stmts = append(block.Stmts, s)
		}
		if p.errors.Len() > before {
			p.syncStmt(pos)
		}
	}
	p.next() // }
	block.Span = p.spanFrom(start)
	return block
}
