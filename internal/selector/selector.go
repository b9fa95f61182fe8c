// Package selector picks declarations out of a module by name pattern.
package selector

import (
	"strings"

	"github.com/coregx/coregex"

	"github.com/coda-lang/coda/internal/ast"
)

// Selector matches declaration names against a pattern. Patterns use RE2
// syntax and are unanchored, so "init" selects both init and reinit.
// Patterns without metacharacters are matched as plain substrings.
type Selector struct {
	pattern string
	re      *coregex.Regexp
	literal bool
}

// Compile creates a Selector from pattern. An empty pattern selects
// everything.
func Compile(pattern string) (*Selector, error) {
	s := &Selector{pattern: pattern}
	if isLiteral(pattern) {
		s.literal = true
		return s, nil
	}

	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	// Report the longest name match so FindIndex spans whole identifiers.
	re.Longest()
	s.re = re
	return s, nil
}

// MustCompile creates a Selector, panicking on error.
func MustCompile(pattern string) *Selector {
	s, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

// Pattern returns the original pattern string.
func (s *Selector) Pattern() string {
	return s.pattern
}

// Match reports whether name is selected.
func (s *Selector) Match(name string) bool {
	if s.literal {
		return strings.Contains(name, s.pattern)
	}
	return s.re.MatchString(name)
}

// FindIndex returns the start and end of the matched part of name, or nil.
// The CLI uses it to highlight the match.
func (s *Selector) FindIndex(name string) []int {
	if s.literal {
		i := strings.Index(name, s.pattern)
		if i < 0 {
			return nil
		}
		return []int{i, i + len(s.pattern)}
	}
	return s.re.FindStringIndex(name)
}

// Functions returns the functions of mod whose names match, in source order.
func (s *Selector) Functions(mod *ast.Module) []*ast.FnDecl {
	var out []*ast.FnDecl
	for _, fn := range mod.Functions() {
		if s.Match(fn.Name) {
			out = append(out, fn)
		}
	}
	return out
}

// Filter returns a shallow copy of mod that keeps only the selected
// declarations. Includes are kept as they are. mod itself is not modified.
func (s *Selector) Filter(mod *ast.Module) *ast.Module {
	out := *mod
	out.Decls = nil
	for _, d := range mod.Decls {
		if fn, ok := d.(*ast.FnDecl); ok && !s.Match(fn.Name) {
			continue
		}
		out.Decls = append(out.Decls, d)
	}
	return &out
}

// isLiteral reports whether pattern has no regexp metacharacters.
func isLiteral(pattern string) bool {
	return !strings.ContainsAny(pattern, `\.+*?()|[]{}^$`)
}
