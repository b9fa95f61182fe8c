// Package parser implements the coda parser: recursive descent for
// declarations and statements, binding powers for expressions.
//
// The parser never stops at the first syntax error. It records a diagnostic,
// skips the rest of the broken statement and carries on, so one run reports
// as many independent errors as possible. Running out of input, nesting past
// the depth limit and arena exhaustion end the parse immediately.
package parser

import (
	"github.com/coda-lang/coda/internal/arena"
	"github.com/coda-lang/coda/internal/ast"
	"github.com/coda-lang/coda/internal/diag"
	"github.com/coda-lang/coda/internal/lexer"
	"github.com/coda-lang/coda/internal/token"
)

// DefaultMaxDepth bounds the nesting of expressions, types and statements.
const DefaultMaxDepth = 256

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth sets the nesting limit. Non-positive values are ignored.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// Parser holds the state of one parse. It reads a finished token sequence
// with a cursor that only moves forward.
type Parser struct {
	tokens []lexer.Token
	pos    int         // Index of tok
	tok    lexer.Token // Current token
	prev   lexer.Token // Last consumed token

	arena  *arena.Arena
	errors diag.List

	depth    int
	maxDepth int
}

func newParser(tokens []lexer.Token, a *arena.Arena, opts []Option) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != token.EOF {
		var end token.Position
		if n > 0 {
			end = tokens[n-1].End
		} else {
			end = token.Position{Line: 1, Column: 1}
		}
		tokens = append(tokens[:n:n], lexer.Token{Kind: token.EOF, Pos: end, End: end})
	}
	if a == nil {
		a = arena.New()
	}
	p := &Parser{
		tokens:   tokens,
		tok:      tokens[0],
		arena:    a,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse builds the module for a token sequence. Every node is allocated from
// a; a nil arena gets a private one.
//
// The module is returned even when diagnostics were recorded. It then holds
// everything parsed before the last error, and callers should treat the
// unit as failed.
func Parse(tokens []lexer.Token, a *arena.Arena, opts ...Option) (*ast.Module, diag.List) {
	p := newParser(tokens, a, opts)
	var mod *ast.Module
	p.run(func() {
		mod = newNode[ast.Module](p)
		p.parseModule(mod)
	})
	if mod == nil {
		mod = &ast.Module{}
	}
	mod.Span = p.spanFrom(p.tokens[0].Pos)
	return mod, p.errors
}

// ParseExpr parses tokens as a single expression.
func ParseExpr(tokens []lexer.Token, a *arena.Arena, opts ...Option) (ast.Expr, diag.List) {
	p := newParser(tokens, a, opts)
	var expr ast.Expr
	p.run(func() {
		expr = p.parseExpr()
		p.expectEnd()
	})
	return expr, p.errors
}

// ParseType parses tokens as a single type expression.
func ParseType(tokens []lexer.Token, a *arena.Arena, opts ...Option) (ast.TypeRef, diag.List) {
	p := newParser(tokens, a, opts)
	var typ ast.TypeRef
	p.run(func() {
		typ = p.parseType()
		p.expectEnd()
	})
	return typ, p.errors
}

// ParseStmt parses tokens as a single statement.
func ParseStmt(tokens []lexer.Token, a *arena.Arena, opts ...Option) (ast.Stmt, diag.List) {
	p := newParser(tokens, a, opts)
	var stmt ast.Stmt
	p.run(func() {
		stmt = p.parseStmt()
		p.expectEnd()
	})
	return stmt, p.errors
}

// newNode allocates a zero node from the parser's arena.
func newNode[T any](p *Parser) *T {
	return arena.Make[T](p.arena)
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// next advances to the next token. The cursor stops on EOF.
func (p *Parser) next() {
	if p.tok.Kind == token.EOF {
		return
	}
	p.prev = p.tok
	p.pos++
	p.tok = p.tokens[p.pos]
}

// expect consumes the current token if it has the given kind. Otherwise it
// records an error and leaves the token in place.
func (p *Parser) expect(kind token.Kind) bool {
	if p.tok.Kind == kind {
		p.next()
		return true
	}
	p.errorf("expected %s", describe(kind))
	return false
}

// expectIdent consumes an identifier and returns its name.
func (p *Parser) expectIdent() (string, bool) {
	if p.tok.Kind != token.IDENT {
		p.errorf("expected identifier")
		return "", false
	}
	name := p.tok.Text
	p.next()
	return name, true
}

// expectEnd checks that the whole input was consumed.
func (p *Parser) expectEnd() {
	if p.tok.Kind != token.EOF {
		p.errorf("expected end of input")
	}
}

// match returns true if current token matches any of the given kinds.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.tok.Kind == k {
			return true
		}
	}
	return false
}

// spanFrom returns the span from start to the end of the last consumed token.
func (p *Parser) spanFrom(start token.Position) token.Span {
	end := p.prev.End
	if end.Offset < start.Offset || !end.IsValid() {
		end = start
	}
	return token.Span{Start: start, End: end}
}

// enter tracks recursion. Every call must be paired with leave.
func (p *Parser) enter() {
	p.depth++
	if p.depth > p.maxDepth {
		p.fatalf(diag.Structural, "too deeply nested")
	}
}

func (p *Parser) leave() {
	p.depth--
}

// -----------------------------------------------------------------------------
// Synchronization
// -----------------------------------------------------------------------------

// syncStmt skips the rest of a statement that recorded an error. Nothing is
// skipped when the statement consumed input and ended on ';' or '}'.
// Otherwise tokens are dropped up to and including the next ';', stopping
// before '}' or EOF so the enclosing block can close.
func (p *Parser) syncStmt(start int) {
	if p.pos > start && (p.prev.Kind == token.SEMICOLON || p.prev.Kind == token.RBRACE) {
		return
	}
	for !p.match(token.EOF, token.RBRACE) {
		if p.tok.Kind == token.SEMICOLON {
			p.next()
			return
		}
		p.next()
	}
}

// syncDecl is syncStmt for the top level, where no block is open: a stray
// '}' is dropped and the next '@' or 'fn' starts over.
func (p *Parser) syncDecl(start int) {
	if p.pos > start && (p.prev.Kind == token.SEMICOLON || p.prev.Kind == token.RBRACE) {
		return
	}
	if p.pos == start && p.tok.Kind != token.EOF {
		p.next()
	}
	for !p.match(token.EOF, token.AT, token.FN) {
		if p.tok.Kind == token.SEMICOLON {
			p.next()
			return
		}
		p.next()
	}
}
