package ast

import (
	"github.com/suseejs/duplicates/internal/lexer"
	"github.com/suseejs/duplicates/internal/types"
)

// CallExpr is a call expression: callee(args).
type CallExpr struct {
	Callee   Expr
	Args     []Expr
	Optional bool // callee?.(args)
	Loc      types.Span
}

// Span returns the expression's source span.
func (e *CallExpr) Span() types.Span { return e.Loc }

func (e *CallExpr) exprNode() {}

// MemberExpr is a property access: obj.prop, obj?.prop, or obj[index].
type MemberExpr struct {
	Object   Expr
	Property *Ident // nil when Computed
	Index    Expr   // nil unless Computed
	Computed bool
	Optional bool
	Loc      types.Span
}

// Span returns the expression's source span.
func (e *MemberExpr) Span() types.Span { return e.Loc }

func (e *MemberExpr) exprNode() {}

// NewExpr is a constructor invocation: new Callee(args).
type NewExpr struct {
	Callee Expr
	Args   []Expr
	Loc    types.Span
}

// Span returns the expression's source span.
func (e *NewExpr) Span() types.Span { return e.Loc }

func (e *NewExpr) exprNode() {}

// ArrowFunc is an arrow function. Body is either a *BlockStmt or an Expr.
type ArrowFunc struct {
	Params []*Param
	Body   Node
	Async  bool
	Loc    types.Span
}

// Span returns the expression's source span.
func (e *ArrowFunc) Span() types.Span { return e.Loc }

func (e *ArrowFunc) exprNode() {}

// FuncExpr is a function expression, optionally named.
type FuncExpr struct {
	Name   *Ident // nil for anonymous
	Params []*Param
	Body   *BlockStmt
	Async  bool
	Loc    types.Span
}

// Span returns the expression's source span.
func (e *FuncExpr) Span() types.Span { return e.Loc }

func (e *FuncExpr) exprNode() {}

// UnaryExpr is a prefix unary expression: !x, -x, typeof x, etc.
type UnaryExpr struct {
	Op  lexer.TokenKind
	X   Expr
	Loc types.Span
}

// Span returns the expression's source span.
func (e *UnaryExpr) Span() types.Span { return e.Loc }

func (e *UnaryExpr) exprNode() {}

// UpdateExpr is ++x, x++, --x, or x--.
type UpdateExpr struct {
	Op     lexer.TokenKind
	X      Expr
	Prefix bool
	Loc    types.Span
}

// Span returns the expression's source span.
func (e *UpdateExpr) Span() types.Span { return e.Loc }

func (e *UpdateExpr) exprNode() {}

// BinaryExpr covers arithmetic, comparison, and logical operators.
type BinaryExpr struct {
	Op lexer.TokenKind
	X  Expr
	Y  Expr
}

// Span returns the expression's source span.
func (e *BinaryExpr) Span() types.Span {
	return types.NewSpan(e.X.Span().Start, e.Y.Span().End)
}

func (e *BinaryExpr) exprNode() {}

// CondExpr is the ternary conditional: cond ? then : else.
type CondExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Span returns the expression's source span.
func (e *CondExpr) Span() types.Span {
	return types.NewSpan(e.Cond.Span().Start, e.Else.Span().End)
}

func (e *CondExpr) exprNode() {}

// AssignExpr is an assignment: target = value (or +=, -=, etc.).
type AssignExpr struct {
	Op     lexer.TokenKind
	Target Expr
	Value  Expr
}

// Span returns the expression's source span.
func (e *AssignExpr) Span() types.Span {
	return types.NewSpan(e.Target.Span().Start, e.Value.Span().End)
}

func (e *AssignExpr) exprNode() {}

// ObjectLit is an object literal.
type ObjectLit struct {
	Props []*ObjectProp
	Loc   types.Span
}

// Span returns the expression's source span.
func (e *ObjectLit) Span() types.Span { return e.Loc }

func (e *ObjectLit) exprNode() {}

// ObjectProp is one property of an object literal. Shorthand properties
// have Value == nil (the key identifier is also the value reference).
// Spread entries have a nil Key and a non-nil Spread.
type ObjectProp struct {
	Key      Expr // *Ident, *StringLit, or computed expression
	Computed bool
	Value    Expr // nil for shorthand
	Spread   Expr // non-nil for "...expr"
}

// ArrayLit is an array literal. Holes are nil elements.
type ArrayLit struct {
	Elems []Expr
	Loc   types.Span
}

// Span returns the expression's source span.
func (e *ArrayLit) Span() types.Span { return e.Loc }

func (e *ArrayLit) exprNode() {}

// SpreadExpr is "...expr" in call arguments or array literals.
type SpreadExpr struct {
	X   Expr
	Loc types.Span
}

// Span returns the expression's source span.
func (e *SpreadExpr) Span() types.Span { return e.Loc }

func (e *SpreadExpr) exprNode() {}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	X   Expr
	Loc types.Span
}

// Span returns the expression's source span.
func (e *ParenExpr) Span() types.Span { return e.Loc }

func (e *ParenExpr) exprNode() {}

// ThisExpr is the "this" keyword.
type ThisExpr struct {
	Loc types.Span
}

// Span returns the expression's source span.
func (e *ThisExpr) Span() types.Span { return e.Loc }

func (e *ThisExpr) exprNode() {}
