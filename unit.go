package coda

import (
	"io"

	"github.com/coda-lang/coda/internal/arena"
	"github.com/coda-lang/coda/internal/ast"
	"github.com/coda-lang/coda/internal/lexer"
)

// Module is the root of a parsed source file.
type Module = ast.Module

// Token is one lexical token with its source range.
type Token = lexer.Token

// Unit is the result of compiling one source file. Every tree node is owned
// by the unit's arena: after Release the Module must not be used.
//
// A Unit is not safe for concurrent use. Independent units can be compiled
// in parallel.
type Unit struct {
	Filename    string
	Module      *Module // nil when lexing failed
	Tokens      []Token
	Diagnostics Diagnostics

	arena *arena.Arena
}

// Err returns the diagnostics as an error, or nil if there were none.
func (u *Unit) Err() error {
	return u.Diagnostics.Err()
}

// Dump writes an indented dump of the module to w. Spans are included
// when spans is true.
func (u *Unit) Dump(w io.Writer, spans bool) error {
	if u.Module == nil {
		return nil
	}
	p := ast.NewPrinter(w)
	p.SetSpans(spans)
	return p.Print(u.Module)
}

// Release frees the memory held by the unit's tree. It is safe to call
// more than once.
func (u *Unit) Release() {
	if u.arena != nil {
		u.arena.Destroy()
		u.arena = nil
	}
	u.Module = nil
}
