package ast

import "github.com/coda-lang/coda/internal/token"

// SymbolKind defines the category of a symbol.
type SymbolKind int

const (
	SymbolModule SymbolKind = iota // Included module
	SymbolFunc                     // Function declaration
	SymbolParam                    // Function parameter
	SymbolVar                      // Local variable
	SymbolType                     // Named type
)

// Symbol is a declared name. The parser leaves every Symbol slot in the tree
// nil; symbols are created by name resolution.
type Symbol struct {
	Name string
	Kind SymbolKind
	Decl Node // Declaring node
	Pos  token.Position
}

// Scope is a lexical scope. Functions and blocks carry a Scope slot that
// the parser leaves nil.
type Scope struct {
	Parent  *Scope
	Name    string
	Symbols map[string]*Symbol
}
