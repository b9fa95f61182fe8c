package ast

import (
	"strings"

	"github.com/coda-lang/coda/internal/token"
)

// TypeRef is the interface for parsed type expressions.
type TypeRef interface {
	Node
	IsMutable() bool
	IsOptional() bool
	Base() *BaseType
	typeNode() // marker method to prevent external implementations
}

// BaseType provides the modifiers and position shared by all type nodes.
// Mutable and Optional apply to this level only: in int*?, the pointer is
// optional and the int is not.
type BaseType struct {
	Mutable  bool
	Optional bool
	Span     token.Span
	Symbol   *Symbol // Reserved for a resolver pass
}

func (b *BaseType) Pos() token.Position { return b.Span.Start }
func (b *BaseType) End() token.Position { return b.Span.End }
func (b *BaseType) IsMutable() bool     { return b.Mutable }
func (b *BaseType) IsOptional() bool    { return b.Optional }
func (b *BaseType) Base() *BaseType     { return b }
func (b *BaseType) typeNode()           {}

// NamedType is a builtin or user-defined type name.
// Examples: int, uint8, Point
type NamedType struct {
	BaseType
	Name    string
	Builtin bool // Name is one of the builtin type keywords
}

// PointerType is a pointer to another type.
// Examples: int*, char**
type PointerType struct {
	BaseType
	Pointee TypeRef
}

// SliceType is a slice of another type.
// Examples: int[], char*[]
type SliceType struct {
	BaseType
	Elem TypeRef
}

// TypeString renders t in source syntax. The result parses back to an
// equivalent type.
func TypeString(t TypeRef) string {
	var sb strings.Builder
	writeType(&sb, t)
	return sb.String()
}

func writeType(sb *strings.Builder, t TypeRef) {
	switch t := t.(type) {
	case *NamedType:
		if t.Mutable {
			sb.WriteString("mut ")
		}
		sb.WriteString(t.Name)
	case *PointerType:
		writeType(sb, t.Pointee)
		writeSuffix(sb, &t.BaseType, "*")
	case *SliceType:
		writeType(sb, t.Elem)
		writeSuffix(sb, &t.BaseType, "[]")
	case nil:
		sb.WriteString("<nil>")
	}
}

func writeSuffix(sb *strings.Builder, b *BaseType, op string) {
	if b.Mutable {
		sb.WriteString(" mut")
	}
	sb.WriteString(op)
	if b.Optional {
		sb.WriteByte('?')
	}
}
