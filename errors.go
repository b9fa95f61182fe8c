package coda

import (
	"errors"

	"github.com/coda-lang/coda/internal/diag"
)

// Diagnostic is one error found in a source file, with its position.
type Diagnostic = diag.Diagnostic

// Diagnostics is an ordered list of diagnostics. It implements error.
type Diagnostics = diag.List

// Diagnostic kinds. Every kind except Syntax stops the compilation unit.
const (
	Lexical    = diag.Lexical
	Syntax     = diag.Syntax
	Structural = diag.Structural
	Resource   = diag.Resource
)

// AsDiagnostics reports whether err carries diagnostics and returns them.
func AsDiagnostics(err error) (Diagnostics, bool) {
	var list Diagnostics
	if errors.As(err, &list) {
		return list, true
	}
	return nil, false
}
