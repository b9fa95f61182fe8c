package ast

import "github.com/coda-lang/coda/internal/token"

// -----------------------------------------------------------------------------
// Terms
// -----------------------------------------------------------------------------

// LitKind identifies the value type of a literal.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitChar
	LitBool
	LitNull
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitString:
		return "string"
	case LitChar:
		return "char"
	case LitBool:
		return "bool"
	case LitNull:
		return "null"
	default:
		return "unknown"
	}
}

// Literal is a constant in source. Raw keeps the source spelling, escapes
// included; only the value field matching Kind is set. The lexer has no float syntax, so
// LitFloat is never produced by the parser.
// Examples: 42, "hi\n", 'x', true, null
type Literal struct {
	BaseExpr
	Kind  LitKind
	Raw   string
	Int   uint64
	Float float64
	Str   string
	Char  rune
	Bool  bool
}

// Ident is a single-segment name.
// Examples: x, main
type Ident struct {
	BaseExpr
	Name string
}

// Path is a name with two or more segments joined by ::.
// Examples: io::print, a::b::c
type Path struct {
	BaseExpr
	Segments []string
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// UnaryOp is a prefix operator.
type UnaryOp uint8

const (
	Neg   UnaryOp = iota // -x
	Not                  // !x
	Deref                // *p
	Addr                 // &x
)

func (op UnaryOp) String() string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "!"
	case Deref:
		return "*"
	case Addr:
		return "&"
	default:
		return "?"
	}
}

// UnaryExpr is a prefix operation.
// Examples: -x, !ok, *p, &v
type UnaryExpr struct {
	BaseExpr
	Op      UnaryOp
	Operand Expr
}

// BinaryExpr is an infix operation, including assignment.
// Examples: a + b, x == y, a = b, n <<= 1
type BinaryExpr struct {
	BaseExpr
	Op    token.Kind
	Left  Expr
	Right Expr
}

// IsAssign reports whether the expression is = or a compound assignment.
func (b *BinaryExpr) IsAssign() bool {
	return b.Op.IsAssign()
}

// -----------------------------------------------------------------------------
// Postfix
// -----------------------------------------------------------------------------

// CallExpr is a function call.
// Examples: f(), io::print(x, 1)
type CallExpr struct {
	BaseExpr
	Callee Expr
	Args   []Expr
}

// IndexExpr is a subscript.
// Examples: xs[i], m[0][1]
type IndexExpr struct {
	BaseExpr
	Target Expr
	Index  Expr
}

// MemberExpr is a field access.
// Examples: p.x, a.b.c
type MemberExpr struct {
	BaseExpr
	Target Expr
	Name   string
}

// CastExpr converts Expr to Type. The node exists for a future cast syntax
// and is never produced by the parser.
type CastExpr struct {
	BaseExpr
	Type TypeRef
	Expr Expr
}
