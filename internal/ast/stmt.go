package ast

// VarStmt declares a local variable.
// Examples: int x;  mut char* p = &c;
type VarStmt struct {
	BaseStmt
	Decl *VarDecl
}

// ExprStmt is an expression evaluated for its effect.
// Examples: f(x);  a = b;
type ExprStmt struct {
	BaseStmt
	Expr Expr
}

// BlockStmt is a braced statement list.
type BlockStmt struct {
	BaseStmt
	Stmts []Stmt
	Scope *Scope // Reserved for a resolver pass
}

// ReturnStmt returns from a function. Value is nil for a bare return.
type ReturnStmt struct {
	BaseStmt
	Value Expr
}

// IfStmt is a conditional. Else is nil, a *BlockStmt, or an *IfStmt for
// an else if chain.
type IfStmt struct {
	BaseStmt
	Cond Expr
	Then *BlockStmt
	Else Stmt
}

// ForStmt is a C-style loop. Init is nil, a *VarStmt, or an *ExprStmt;
// Cond and Post may be nil.
// Example: for (int i = 0; i < n; i += 1) { ... }
type ForStmt struct {
	BaseStmt
	Init Stmt
	Cond Expr
	Post Expr
	Body *BlockStmt
}

// WhileStmt loops while Cond holds.
type WhileStmt struct {
	BaseStmt
	Cond Expr
	Body *BlockStmt
}

// EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	BaseStmt
}

// BreakStmt exits the innermost loop.
type BreakStmt struct {
	BaseStmt
}

// ContinueStmt starts the next iteration of the innermost loop.
type ContinueStmt struct {
	BaseStmt
}
