package ast

// Walk traverses an AST in depth-first source order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: Count all identifiers
//
//	count := 0
//	ast.Walk(module, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.Ident); ok {
//	        count++
//	    }
//	    return true // continue traversal
//	})
func Walk(node Node, fn func(Node) bool) {
	Inspect(node, func(n, _ Node) bool { return fn(n) })
}

// Inspect traverses an AST with parent tracking.
// For each node, it calls fn(node, parent). The parent is nil for the root node.
// If fn returns false, the children of that node are not visited.
//
// Example: Find calls made directly as statements
//
//	ast.Inspect(module, func(n, parent ast.Node) bool {
//	    if call, ok := n.(*ast.CallExpr); ok {
//	        if _, stmt := parent.(*ast.ExprStmt); stmt {
//	            fmt.Println(call.Pos())
//	        }
//	    }
//	    return true
//	})
func Inspect(node Node, fn func(node, parent Node) bool) {
	inspect(node, nil, fn)
}

func inspect(node, parent Node, fn func(node, parent Node) bool) {
	if isNil(node) || !fn(node, parent) {
		return
	}

	switch n := node.(type) {
	case *Module:
		for _, inc := range n.Includes {
			inspect(inc, n, fn)
		}
		for _, d := range n.Decls {
			inspect(d, n, fn)
		}

	case *Include, *Attribute:
		// no children

	case *FnDecl:
		for _, a := range n.Attributes {
			inspect(a, n, fn)
		}
		inspect(n.Return, n, fn)
		for _, p := range n.Params {
			inspect(p, n, fn)
		}
		inspect(n.Body, n, fn)

	case *Param:
		for _, a := range n.Attributes {
			inspect(a, n, fn)
		}
		inspect(n.Type, n, fn)

	case *VarDecl:
		inspect(n.Type, n, fn)
		inspect(n.Init, n, fn)

	// Types
	case *NamedType:
		// no children

	case *PointerType:
		inspect(n.Pointee, n, fn)

	case *SliceType:
		inspect(n.Elem, n, fn)

	// Expressions
	case *Literal, *Ident, *Path:
		// no children

	case *UnaryExpr:
		inspect(n.Operand, n, fn)

	case *BinaryExpr:
		inspect(n.Left, n, fn)
		inspect(n.Right, n, fn)

	case *CallExpr:
		inspect(n.Callee, n, fn)
		for _, arg := range n.Args {
			inspect(arg, n, fn)
		}

	case *IndexExpr:
		inspect(n.Target, n, fn)
		inspect(n.Index, n, fn)

	case *MemberExpr:
		inspect(n.Target, n, fn)

	case *CastExpr:
		inspect(n.Type, n, fn)
		inspect(n.Expr, n, fn)

	// Statements
	case *VarStmt:
		inspect(n.Decl, n, fn)

	case *ExprStmt:
		inspect(n.Expr, n, fn)

	case *BlockStmt:
		for _, s := range n.Stmts {
			inspect(s, n, fn)
		}

	case *ReturnStmt:
		inspect(n.Value, n, fn)

	case *IfStmt:
		inspect(n.Cond, n, fn)
		inspect(n.Then, n, fn)
		inspect(n.Else, n, fn)

	case *ForStmt:
		inspect(n.Init, n, fn)
		inspect(n.Cond, n, fn)
		inspect(n.Post, n, fn)
		inspect(n.Body, n, fn)

	case *WhileStmt:
		inspect(n.Cond, n, fn)
		inspect(n.Body, n, fn)

	case *EmptyStmt, *BreakStmt, *ContinueStmt:
		// no children
	}
}

// isNil reports whether n is nil or a typed nil pointer, such as the Body of
// a signature-only FnDecl passed as a Node.
func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *BlockStmt:
		return n == nil
	case *VarDecl:
		return n == nil
	}
	return false
}
