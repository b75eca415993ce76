package ast

// Visitor has its Visit method invoked for each node encountered by Walk.
// If the result visitor w is non-nil, Walk visits each child of the node
// with w, followed by a call of w.Visit(nil).
//
// Returning a different visitor for a subtree is how passes thread
// per-scope state (for example, a top-level flag that flips to false on
// entry to a scope-introducing construct) without mutation.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order: it starts by calling
// v.Visit(node); node must not be nil. If the returned visitor is
// non-nil, Walk is invoked recursively with that visitor for each
// non-nil child of node, followed by a call of w.Visit(nil).
func Walk(v Visitor, node Node) {
	w := v.Visit(node)
	if w == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(w, s)
		}

	case *Ident, *StringLit, *Literal, *ThisExpr,
		*BreakStmt, *ContinueStmt, *EmptyStmt:
		// no children

	case *InterfaceDecl:
		Walk(w, n.Name)

	case *TypeAliasDecl:
		Walk(w, n.Name)

	case *VarDecl:
		for _, d := range n.Decls {
			Walk(w, d.Target)
			if d.Init != nil {
				Walk(w, d.Init)
			}
		}

	case *ObjectPattern:
		for _, prop := range n.Props {
			if prop.Key != nil {
				Walk(w, prop.Key)
			}
			Walk(w, prop.Value)
			if prop.Default != nil {
				Walk(w, prop.Default)
			}
		}

	case *ArrayPattern:
		for _, elem := range n.Elems {
			if elem != nil {
				Walk(w, elem)
			}
		}

	case *FuncDecl:
		Walk(w, n.Name)
		walkParams(w, n.Params)
		Walk(w, n.Body)

	case *ClassDecl:
		Walk(w, n.Name)
		if n.Super != nil {
			Walk(w, n.Super)
		}
		for _, m := range n.Members {
			Walk(w, m.Name)
			walkParams(w, m.Params)
			if m.Body != nil {
				Walk(w, m.Body)
			}
			if m.Value != nil {
				Walk(w, m.Value)
			}
		}

	case *EnumDecl:
		Walk(w, n.Name)
		for _, m := range n.Members {
			Walk(w, m.Name)
			if m.Init != nil {
				Walk(w, m.Init)
			}
		}

	case *ImportDecl:
		if n.Default != nil {
			Walk(w, n.Default)
		}
		if n.Namespace != nil {
			Walk(w, n.Namespace)
		}
		for _, spec := range n.Named {
			Walk(w, spec.Imported)
			if spec.Local != spec.Imported {
				Walk(w, spec.Local)
			}
		}
		Walk(w, n.Source)

	case *ExportNamedDecl:
		for _, spec := range n.Specs {
			Walk(w, spec.Local)
			if spec.Exported != spec.Local {
				Walk(w, spec.Exported)
			}
		}
		if n.Source != nil {
			Walk(w, n.Source)
		}

	case *ExportDefaultDecl:
		if n.Decl != nil {
			Walk(w, n.Decl)
		}
		if n.Expr != nil {
			Walk(w, n.Expr)
		}

	case *ExportDecl:
		Walk(w, n.Decl)

	case *ExportAllDecl:
		Walk(w, n.Source)

	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(w, s)
		}

	case *ExprStmt:
		Walk(w, n.X)

	case *ReturnStmt:
		if n.X != nil {
			Walk(w, n.X)
		}

	case *IfStmt:
		Walk(w, n.Cond)
		Walk(w, n.Then)
		if n.Else != nil {
			Walk(w, n.Else)
		}

	case *ForStmt:
		if n.Init != nil {
			Walk(w, n.Init)
		}
		if n.Cond != nil {
			Walk(w, n.Cond)
		}
		if n.Post != nil {
			Walk(w, n.Post)
		}
		Walk(w, n.Body)

	case *ForInOfStmt:
		Walk(w, n.Decl)
		Walk(w, n.Object)
		Walk(w, n.Body)

	case *WhileStmt:
		Walk(w, n.Cond)
		Walk(w, n.Body)

	case *ThrowStmt:
		Walk(w, n.X)

	case *TryStmt:
		Walk(w, n.Block)
		if n.CatchParam != nil {
			Walk(w, n.CatchParam)
		}
		if n.Catch != nil {
			Walk(w, n.Catch)
		}
		if n.Finally != nil {
			Walk(w, n.Finally)
		}

	case *SwitchStmt:
		Walk(w, n.Disc)
		for _, c := range n.Cases {
			if c.Test != nil {
				Walk(w, c.Test)
			}
			for _, s := range c.Body {
				Walk(w, s)
			}
		}

	case *CallExpr:
		Walk(w, n.Callee)
		for _, a := range n.Args {
			Walk(w, a)
		}

	case *MemberExpr:
		Walk(w, n.Object)
		if n.Computed {
			Walk(w, n.Index)
		} else {
			Walk(w, n.Property)
		}

	case *NewExpr:
		Walk(w, n.Callee)
		for _, a := range n.Args {
			Walk(w, a)
		}

	case *ArrowFunc:
		walkParams(w, n.Params)
		Walk(w, n.Body)

	case *FuncExpr:
		if n.Name != nil {
			Walk(w, n.Name)
		}
		walkParams(w, n.Params)
		Walk(w, n.Body)

	case *UnaryExpr:
		Walk(w, n.X)

	case *UpdateExpr:
		Walk(w, n.X)

	case *BinaryExpr:
		Walk(w, n.X)
		Walk(w, n.Y)

	case *CondExpr:
		Walk(w, n.Cond)
		Walk(w, n.Then)
		Walk(w, n.Else)

	case *AssignExpr:
		Walk(w, n.Target)
		Walk(w, n.Value)

	case *ObjectLit:
		for _, prop := range n.Props {
			if prop.Spread != nil {
				Walk(w, prop.Spread)
				continue
			}
			if prop.Key != nil {
				Walk(w, prop.Key)
			}
			if prop.Value != nil {
				Walk(w, prop.Value)
			}
		}

	case *ArrayLit:
		for _, elem := range n.Elems {
			if elem != nil {
				Walk(w, elem)
			}
		}

	case *SpreadExpr:
		Walk(w, n.X)

	case *ParenExpr:
		Walk(w, n.X)
	}

	w.Visit(nil)
}

func walkParams(w Visitor, params []*Param) {
	for _, p := range params {
		Walk(w, p.Target)
		if p.Default != nil {
			Walk(w, p.Default)
		}
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if node == nil {
		return nil
	}
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order: it starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
