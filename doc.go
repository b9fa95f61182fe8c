// Package coda is the front end of the coda programming language: it turns
// source text into a syntax tree.
//
// The pipeline has two stages:
//   - A hand-written lexer producing tokens with line, column and offset
//   - A recursive descent parser with binding-power expressions that builds
//     the tree in a per-unit arena
//
// # Quick Start
//
//	unit, err := coda.Compile("main.coda", src, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer unit.Release()
//
//	for _, fn := range unit.Module.Functions() {
//	    fmt.Println(fn.Name)
//	}
//
// # Configuration
//
// The [Config] type bounds the work done for one unit:
//   - MaxDepth limits nesting
//   - ArenaBlockSize and ArenaLimit size the arena
//   - Logger receives debug entries
//
// # Error Handling
//
// Errors are [Diagnostics], a list of [Diagnostic] values:
//
//	Parse error at line 3, column 12: expected ';' (got identifier)
//
// The parser reports every independent syntax error in one run. Lexical
// errors, running out of input, nesting too deep and arena exhaustion end
// the unit at once. Use [AsDiagnostics] to get the list back from an error.
//
// # Memory
//
// Tree nodes live in an arena owned by the [Unit]. [Unit.Release] frees
// them together; the tree must not be used afterwards.
package coda
