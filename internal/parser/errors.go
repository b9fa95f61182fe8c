package parser

import (
	"errors"
	"fmt"

	"github.com/coda-lang/coda/internal/arena"
	"github.com/coda-lang/coda/internal/diag"
	"github.com/coda-lang/coda/internal/token"
)

// bailout is the panic value that unwinds the parser after a fatal
// diagnostic has been recorded.
type bailout struct{}

// run calls fn and turns fatal conditions into diagnostics.
func (p *Parser) run(fn func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(bailout); ok {
			return
		}
		if err, ok := r.(error); ok && (errors.Is(err, arena.ErrExhausted) || errors.Is(err, arena.ErrDestroyed)) {
			p.errors.Add(diag.Parsef(diag.Resource, p.tok.Pos, p.tok.Kind, "%v", err))
			return
		}
		panic(r)
	}()
	fn()
}

// errorf records a syntax error at the current token.
func (p *Parser) errorf(format string, args ...any) {
	if p.tok.Kind == token.EOF {
		p.fatalf(diag.Structural, "unexpected end of input")
	}
	p.errors.Add(diag.Parsef(diag.Syntax, p.tok.Pos, p.tok.Kind, format, args...))
}

// fatalf records a fatal diagnostic at the current token and stops the parse.
func (p *Parser) fatalf(kind diag.Kind, format string, args ...any) {
	p.errors.Add(diag.Parsef(kind, p.tok.Pos, p.tok.Kind, format, args...))
	panic(bailout{})
}

// describe returns how a token kind is named in messages.
func describe(k token.Kind) string {
	if k.IsOperator() || k.IsKeyword() || k.IsBuiltinType() {
		return fmt.Sprintf("'%s'", k)
	}
	return k.String()
}
