package coda

import (
	"github.com/sirupsen/logrus"

	"github.com/coda-lang/coda/internal/arena"
	"github.com/coda-lang/coda/internal/ast"
	"github.com/coda-lang/coda/internal/lexer"
	"github.com/coda-lang/coda/internal/parser"
)

// Version is the coda version string.
const Version = "0.1.0"

// Compile lexes and parses one source file into a Unit.
//
// Parameters:
//   - filename: name used in log entries; it is not opened
//   - src: the complete source text; a NUL byte ends it early
//   - config: compile configuration (can be nil for defaults)
//
// Lexical errors stop the unit before parsing; syntax errors are collected
// and parsing continues. When any diagnostic was recorded the error is the
// Diagnostics list and the returned Unit still holds whatever was built, so
// callers can inspect both.
//
// Example:
//
//	unit, err := coda.Compile("main.coda", src, nil)
//	if err != nil {
//	    for _, d := range unit.Diagnostics {
//	        fmt.Println(d)
//	    }
//	    return
//	}
//	defer unit.Release()
func Compile(filename string, src []byte, config *Config) (*Unit, error) {
	var cfg Config
	if config != nil {
		cfg = *config
	}
	cfg.applyDefaults()
	logger := cfg.Logger.WithField("file", filename)

	unit := &Unit{Filename: filename}

	tokens, lexErrs := lexer.Lex(src)
	unit.Tokens = tokens
	logger.WithField("tokens", len(tokens)).Debug("Lexed source")
	if lexErrs.Len() > 0 {
		unit.Diagnostics = lexErrs
		logger.WithField("diagnostics", lexErrs.Len()).Debug("Lexical errors, not parsing")
		return unit, unit.Err()
	}

	a := arena.New(arena.WithBlockSize(cfg.ArenaBlockSize), arena.WithLimit(cfg.ArenaLimit))
	mod, errs := parser.Parse(tokens, a, parser.WithMaxDepth(cfg.MaxDepth))
	unit.Module = mod
	unit.Diagnostics = errs
	unit.arena = a

	stats := a.Stats()
	logger.WithFields(logrus.Fields{
		"module":         mod.Name,
		"decls":          len(mod.Decls),
		"nodes":          countNodes(mod),
		"diagnostics":    errs.Len(),
		"syntax_errors":  errs.Count(Syntax),
		"fatal":          errs.HasFatal(),
		"arena_blocks":   stats.Blocks,
		"arena_used":     stats.Used,
		"arena_reserved": stats.Reserved,
	}).Debug("Parsed module")

	return unit, unit.Err()
}

func countNodes(mod *ast.Module) int {
	n := 0
	ast.Walk(mod, func(ast.Node) bool {
		n++
		return true
	})
	return n
}

// MustCompile is like Compile but panics if the source has any diagnostic.
// It simplifies tests and embedded fixtures.
func MustCompile(filename string, src []byte) *Unit {
	unit, err := Compile(filename, src, nil)
	if err != nil {
		panic(err)
	}
	return unit
}

// Tokens lexes src and returns the whole token sequence, which always ends
// with one EOF token. The error lists any lexical diagnostics.
func Tokens(src []byte) ([]Token, error) {
	tokens, errs := lexer.Lex(src)
	return tokens, errs.Err()
}
