// Package ast defines the abstract syntax tree for coda programs.
//
// Every node of a compilation unit is allocated from that unit's arena and
// must not be used after the arena is destroyed. Trees are singly owned: a
// node has exactly one parent.
//
// Node hierarchy:
//
//	Node (interface)
//	├── TypeRef (interface) - type expressions
//	│   └── NamedType, PointerType, SliceType
//	├── Expr (interface) - expressions that produce values
//	│   ├── Literal, Ident, Path - terms
//	│   ├── UnaryExpr, BinaryExpr - operations
//	│   ├── CallExpr, IndexExpr, MemberExpr - postfix
//	│   └── CastExpr - reserved, never produced by the parser
//	├── Stmt (interface) - statements
//	│   ├── VarStmt, ExprStmt, EmptyStmt - simple
//	│   ├── IfStmt, ForStmt, WhileStmt - control
//	│   ├── ReturnStmt, BreakStmt, ContinueStmt - jumps
//	│   └── BlockStmt - compound
//	├── Decl (interface) - top-level declarations
//	│   └── FnDecl
//	└── Module, Include, Param, VarDecl, Attribute - supporting nodes
package ast

import "github.com/coda-lang/coda/internal/token"

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Pos returns the position of the first character belonging to this node.
	Pos() token.Position

	// End returns the position of the first character immediately after this node.
	End() token.Position
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// Decl is the interface for top-level declarations.
type Decl interface {
	Node
	declNode() // marker method to prevent external implementations
}

// BaseExpr provides common fields for all expression nodes.
// ResolvedType, Symbol and IsConstant are reserved for a resolver pass and
// are never set by the parser.
type BaseExpr struct {
	Span         token.Span
	ResolvedType TypeRef
	Symbol       *Symbol
	IsConstant   bool
}

func (b *BaseExpr) Pos() token.Position { return b.Span.Start }
func (b *BaseExpr) End() token.Position { return b.Span.End }
func (b *BaseExpr) exprNode()           {}

// BaseStmt provides common fields for all statement nodes.
type BaseStmt struct {
	Span token.Span
}

func (b *BaseStmt) Pos() token.Position { return b.Span.Start }
func (b *BaseStmt) End() token.Position { return b.Span.End }
func (b *BaseStmt) stmtNode()           {}

// BaseDecl provides common fields for declaration nodes.
type BaseDecl struct {
	Span token.Span
}

func (b *BaseDecl) Pos() token.Position { return b.Span.Start }
func (b *BaseDecl) End() token.Position { return b.Span.End }
func (b *BaseDecl) declNode()           {}

// SpanOf returns the source range of n.
func SpanOf(n Node) token.Span {
	return token.Span{Start: n.Pos(), End: n.End()}
}
