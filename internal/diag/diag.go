// Package diag defines the diagnostics produced by the lexer and parser.
package diag

import (
	"fmt"

	"github.com/coda-lang/coda/internal/token"
)

// Stage identifies which phase produced a diagnostic.
type Stage string

const (
	StageLex   Stage = "lex"
	StageParse Stage = "parse"
)

// Kind classifies a diagnostic by how it affects the compilation unit.
type Kind uint8

const (
	// Lexical errors: bad characters and unterminated literals or comments.
	Lexical Kind = iota
	// Syntax errors: expected-token mismatches. Parsing resynchronizes and continues.
	Syntax
	// Structural errors: premature end of input or nesting past the depth bound.
	Structural
	// Resource errors: the arena could not grow.
	Resource
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntax:
		return "syntax"
	case Structural:
		return "structural"
	case Resource:
		return "resource"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Fatal reports whether a diagnostic of this kind aborts the compilation unit.
func (k Kind) Fatal() bool {
	return k != Syntax
}

// Diagnostic is a single error with its source location.
type Diagnostic struct {
	Stage   Stage
	Kind    Kind
	Pos     token.Position
	Message string
	Got     string // Kind of the offending token, parse diagnostics only
}

// Error formats the diagnostic the way it is shown to users:
//
//	Lex error at line 3, column 7: unterminated string
//	Parse error at line 1, column 18: expected ')' (got {)
func (d *Diagnostic) Error() string {
	prefix := "Parse error"
	if d.Stage == StageLex {
		prefix = "Lex error"
	}
	msg := fmt.Sprintf("%s at line %d, column %d: %s", prefix, d.Pos.Line, d.Pos.Column, d.Message)
	if d.Got != "" {
		msg += " (got " + d.Got + ")"
	}
	return msg
}

// Lexf returns a lexical diagnostic at pos.
func Lexf(pos token.Position, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Stage:   StageLex,
		Kind:    Lexical,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// Parsef returns a parse diagnostic of the given kind at pos.
func Parsef(kind Kind, pos token.Position, got token.Kind, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Stage:   StageParse,
		Kind:    kind,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
		Got:     got.String(),
	}
}

// List is an ordered list of diagnostics.
type List []*Diagnostic

// Error returns a combined error message for all diagnostics.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
	}
}

// Add appends a diagnostic to the list.
func (l *List) Add(d *Diagnostic) {
	*l = append(*l, d)
}

// Len returns the number of diagnostics.
func (l List) Len() int {
	return len(l)
}

// Err returns the list as an error if it is non-empty, nil otherwise.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// HasFatal reports whether any diagnostic aborts the compilation unit.
func (l List) HasFatal() bool {
	for _, d := range l {
		if d.Kind.Fatal() {
			return true
		}
	}
	return false
}

// Count returns the number of diagnostics of the given kind.
func (l List) Count(kind Kind) int {
	n := 0
	for _, d := range l {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
