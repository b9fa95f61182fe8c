package ast

import "github.com/coda-lang/coda/internal/token"

// Module is a parsed compilation unit.
//
//	module name;
//	include a::b;
//	fn int main() { ... }
type Module struct {
	Name     string
	Includes []*Include
	Decls    []Decl
	Span     token.Span
}

func (m *Module) Pos() token.Position { return m.Span.Start }
func (m *Module) End() token.Position { return m.Span.End }

// Functions returns the function declarations of the module in source order.
func (m *Module) Functions() []*FnDecl {
	var fns []*FnDecl
	for _, d := range m.Decls {
		if fn, ok := d.(*FnDecl); ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

// Include imports another module by path. Alias is reserved; the grammar
// has no syntax that sets it.
type Include struct {
	Path  []string
	Alias string
	Span  token.Span
}

func (i *Include) Pos() token.Position { return i.Span.Start }
func (i *Include) End() token.Position { return i.Span.End }

// Attribute annotates a function or parameter. Args hold the source text of
// each argument.
// Examples: @inline, @align(16), @section("text")
type Attribute struct {
	Name string
	Args []string
	Span token.Span
}

func (a *Attribute) Pos() token.Position { return a.Span.Start }
func (a *Attribute) End() token.Position { return a.Span.End }

// Param is a function parameter.
type Param struct {
	Attributes []*Attribute
	Type       TypeRef
	Name       string
	Span       token.Span
}

func (p *Param) Pos() token.Position { return p.Span.Start }
func (p *Param) End() token.Position { return p.Span.End }

// VarDecl is a typed variable with an optional initializer.
type VarDecl struct {
	Type TypeRef
	Name string
	Init Expr
	Span token.Span
}

func (v *VarDecl) Pos() token.Position { return v.Span.Start }
func (v *VarDecl) End() token.Position { return v.Span.End }

// FnDecl is a function declaration. Body is nil for a signature without a
// definition. Export, Extern and Unsafe are reserved: no syntax sets them.
type FnDecl struct {
	BaseDecl
	Attributes []*Attribute
	Export     bool
	Extern     bool
	Unsafe     bool
	Return     TypeRef
	Name       string
	Params     []*Param
	Body       *BlockStmt
	Scope      *Scope // Reserved for a resolver pass
}
