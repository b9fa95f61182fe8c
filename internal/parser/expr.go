package parser

import (
	"strconv"
	"unicode/utf8"

	"github.com/coda-lang/coda/internal/ast"
	"github.com/coda-lang/coda/internal/token"
)

// Binding powers. Higher binds tighter.
const (
	bpNone   = 0
	bpAssign = 5 // = += -= *= /= <<= >>=, right-associative
	bpLOr    = 10
	bpLAnd   = 15
	bpOr     = 24
	bpXor    = 28
	bpAnd    = 32
	bpEqual  = 35
	bpCmp    = 40
	bpShift  = 45
	bpAdd    = 50
	bpMul    = 60
	bpUnary  = 80
)

// infixBP returns the binding power of a binary operator, or bpNone for
// tokens that cannot continue an expression.
func infixBP(k token.Kind) int {
	switch k {
	case token.MUL, token.DIV, token.MOD:
		return bpMul
	case token.ADD, token.SUB:
		return bpAdd
	case token.SHL, token.SHR:
		return bpShift
	case token.LSS, token.LEQ, token.GTR, token.GEQ:
		return bpCmp
	case token.EQL, token.NEQ:
		return bpEqual
	case token.AMP:
		return bpAnd
	case token.XOR:
		return bpXor
	case token.OR:
		return bpOr
	case token.LAND:
		return bpLAnd
	case token.LOR:
		return bpLOr
	}
	if k.IsAssign() {
		return bpAssign
	}
	return bpNone
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseExprBP(bpNone)
}

// parseExprBP parses an expression whose operators all bind tighter than
// minBP. Returns nil when no expression could be parsed.
func (p *Parser) parseExprBP(minBP int) ast.Expr {
	p.enter()
	defer p.leave()

	left := p.parsePrefix()
	if left == nil {
		return nil
	}
	left = p.parsePostfix(left)

	for {
		op := p.tok.Kind
		bp := infixBP(op)
		if bp == bpNone || bp <= minBP {
			return left
		}
		p.next()

		rbp := bp
		if op.IsAssign() {
			rbp = bp - 1
		}
		right := p.parseExprBP(rbp)
		if right == nil {
			return left
		}

		bin := newNode[ast.BinaryExpr](p)
		bin.Op = op
		bin.Left = left
		bin.Right = right
		bin.Span = ast.SpanOf(left).Cover(ast.SpanOf(right))
		left = p.parsePostfix(bin)
	}
}

// parsePrefix parses a literal, a name, a parenthesized expression or a
// unary operation.
func (p *Parser) parsePrefix() ast.Expr {
	start := p.tok.Pos

	switch p.tok.Kind {
	case token.NUMBER:
		lit := newNode[ast.Literal](p)
		lit.Kind = ast.LitInt
		lit.Raw = p.tok.Raw
		v, err := strconv.ParseUint(p.tok.Text, 10, 64)
		if err != nil {
			p.errorf("integer literal %s out of range", p.tok.Text)
		}
		lit.Int = v
		p.next()
		lit.Span = p.spanFrom(start)
		return lit

	case token.STRING:
		lit := newNode[ast.Literal](p)
		lit.Kind = ast.LitString
		lit.Str = p.tok.Text
		lit.Raw = p.tok.Raw
		p.next()
		lit.Span = p.spanFrom(start)
		return lit

	case token.CHAR:
		lit := newNode[ast.Literal](p)
		lit.Kind = ast.LitChar
		lit.Raw = p.tok.Raw
		r, size := utf8.DecodeRuneInString(p.tok.Text)
		if r == utf8.RuneError && size <= 1 {
			p.errorf("invalid UTF-8 in char literal")
		}
		lit.Char = r
		p.next()
		lit.Span = p.spanFrom(start)
		return lit

	case token.TRUE, token.FALSE:
		lit := newNode[ast.Literal](p)
		lit.Kind = ast.LitBool
		lit.Bool = p.tok.Kind == token.TRUE
		lit.Raw = p.tok.Kind.String()
		p.next()
		lit.Span = p.spanFrom(start)
		return lit

	case token.T_NULL:
		lit := newNode[ast.Literal](p)
		lit.Kind = ast.LitNull
		lit.Raw = "null"
		p.next()
		lit.Span = p.spanFrom(start)
		return lit

	case token.IDENT:
		return p.parseName()

	case token.LPAREN:
		p.next()
		expr := p.parseExpr()
		if expr == nil {
			return nil
		}
		p.expect(token.RPAREN)
		return expr

	case token.SUB, token.NOT, token.MUL, token.AMP:
		var op ast.UnaryOp
		switch p.tok.Kind {
		case token.SUB:
			op = ast.Neg
		case token.NOT:
			op = ast.Not
		case token.MUL:
			op = ast.Deref
		case token.AMP:
			op = ast.Addr
		}
		p.next()
		operand := p.parseExprBP(bpUnary)
		if operand == nil {
			return nil
		}
		un := newNode[ast.UnaryExpr](p)
		un.Op = op
		un.Operand = operand
		un.Span = p.spanFrom(start)
		return un
	}

	p.errorf("expected expression")
	return nil
}

// parseName parses IDENT ('::' IDENT)*. One segment is an Ident, more make
// a Path.
func (p *Parser) parseName() ast.Expr {
	start := p.tok.Pos
	segments := []string{p.tok.Text}
	p.next()
	for p.tok.Kind == token.DOUBLECOLON {
		p.next()
		name, ok := p.expectIdent()
		if !ok {
			break
		}
		segments = append(segments, name)
	}

	if len(segments) == 1 {
		id := newNode[ast.Ident](p)
		id.Name = segments[0]
		id.Span = p.spanFrom(start)
		return id
	}
	path := newNode[ast.Path](p)
	path.Segments = segments
	path.Span = p.spanFrom(start)
	return path
}

// parsePostfix applies calls, index operations and member accesses to expr.
func (p *Parser) parsePostfix(expr ast.Expr) ast.Expr {
	start := expr.Pos()
	for {
		switch p.tok.Kind {
		case token.LPAREN:
			p.next()
			call := newNode[ast.CallExpr](p)
			call.Callee = expr
			before := p.errors.Len()
			call.Args = p.parseArgs()
			if p.tok.Kind == token.RPAREN {
				p.next()
			} else if p.errors.Len() == before {
				p.errorf("expected ')' after arguments")
			}
			call.Span = p.spanFrom(start)
			expr = call

		case token.LBRACKET:
			p.next()
			idx := newNode[ast.IndexExpr](p)
			idx.Target = expr
			idx.Index = p.parseExpr()
			p.expect(token.RBRACKET)
			if idx.Index == nil {
				return expr
			}
			idx.Span = p.spanFrom(start)
			expr = idx

		case token.DOT:
			p.next()
			name, ok := p.expectIdent()
			if !ok {
				return expr
			}
			mem := newNode[ast.MemberExpr](p)
			mem.Target = expr
			mem.Name = name
			mem.Span = p.spanFrom(start)
			expr = mem

		default:
			return expr
		}
	}
}

// parseArgs parses a comma-separated argument list up to ')'.
func (p *Parser) parseArgs() []ast.Expr {
	if p.tok.Kind == token.RPAREN {
		return nil
	}
	var args []ast.Expr
	for {
		arg := p.parseExpr()
		if arg == nil {
			return args
		}
		args = append(args, arg)
		if p.tok.Kind != token.COMMA {
			return args
		}
		p.next()
	}
}
