// Package ast provides Abstract Syntax Tree types for parsed ECMAScript
// modules, plus a generic traversal facility (Walk/Inspect) that the
// rewrite passes use as their tree-transformation primitive.
//
// Nodes carry byte spans into the original source. Rewrites never
// restructure the tree; they set Ident.NewName, and the printer splices
// the replacement text at the identifier's span.
package ast

import (
	"github.com/suseejs/duplicates/internal/types"
)

// Node is implemented by all AST nodes.
type Node interface {
	Span() types.Span
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Pattern is implemented by binding-pattern nodes (identifier,
// object destructuring, array destructuring).
type Pattern interface {
	Node
	patternNode()
}

// Program is a parsed module body.
type Program struct {
	Stmts []Stmt
	End   types.ByteOffset // one past the last byte of source
}

// Span returns the full source span of the program.
func (p *Program) Span() types.Span { return types.NewSpan(0, p.End) }

// Ident is an identifier with source location.
// NewName, when non-empty, is the replacement the printer emits
// in place of the original text at Loc.
type Ident struct {
	Name    string
	NewName string
	Loc     types.Span
}

// NewIdent creates a new identifier.
func NewIdent(name string, span types.Span) *Ident {
	return &Ident{Name: name, Loc: span}
}

// Span returns the identifier's source span.
func (i *Ident) Span() types.Span { return i.Loc }

// Effective returns the name the identifier will print as.
func (i *Ident) Effective() string {
	if i.NewName != "" {
		return i.NewName
	}
	return i.Name
}

func (i *Ident) exprNode()    {}
func (i *Ident) patternNode() {}

// StringLit is a string literal (import/export sources, object keys).
type StringLit struct {
	Value string // unquoted, unescaped value
	Loc   types.Span
}

// Span returns the literal's source span, including quotes.
func (s *StringLit) Span() types.Span { return s.Loc }

func (s *StringLit) exprNode() {}

// LiteralKind distinguishes basic literal forms.
type LiteralKind int

// Literal kinds.
const (
	LitNumber LiteralKind = iota
	LitBool
	LitNull
	LitTemplate
)

// Literal is a number, boolean, null, or template literal.
// Template literals are opaque: interpolations are not parsed.
type Literal struct {
	Kind LiteralKind
	Raw  string
	Loc  types.Span
}

// Span returns the literal's source span.
func (l *Literal) Span() types.Span { return l.Loc }

func (l *Literal) exprNode() {}

// --- Declarations ---

// VarKind is the binding keyword of a variable declaration.
type VarKind int

// Variable declaration kinds.
const (
	VarConst VarKind = iota
	VarLet
	VarVar
)

// String returns the source keyword.
func (k VarKind) String() string {
	switch k {
	case VarConst:
		return "const"
	case VarLet:
		return "let"
	default:
		return "var"
	}
}

// VarDecl is a const/let/var declaration statement.
type VarDecl struct {
	Kind  VarKind
	Decls []*Declarator
	Loc   types.Span
}

// Span returns the declaration's source span.
func (d *VarDecl) Span() types.Span { return d.Loc }

func (d *VarDecl) stmtNode() {}

// Declarator is one binding in a variable declaration.
type Declarator struct {
	Target Pattern // *Ident, *ObjectPattern, or *ArrayPattern
	Init   Expr    // nil when absent
}

// Span returns the declarator's source span.
func (d *Declarator) Span() types.Span {
	s := d.Target.Span()
	if d.Init != nil {
		s.End = d.Init.Span().End
	}
	return s
}

// BoundIdents returns every identifier bound by the declarator's target
// pattern, in source order.
func (d *Declarator) BoundIdents() []*Ident {
	return PatternIdents(d.Target)
}

// PatternIdents returns the identifiers bound by a pattern.
func PatternIdents(p Pattern) []*Ident {
	var out []*Ident
	collectPatternIdents(p, &out)
	return out
}

func collectPatternIdents(p Pattern, out *[]*Ident) {
	switch pat := p.(type) {
	case *Ident:
		*out = append(*out, pat)
	case *ObjectPattern:
		for _, prop := range pat.Props {
			collectPatternIdents(prop.Value, out)
		}
	case *ArrayPattern:
		for _, elem := range pat.Elems {
			if elem != nil {
				collectPatternIdents(elem, out)
			}
		}
	}
}

// ObjectPattern is an object destructuring target: { a, b: c, ...rest }.
type ObjectPattern struct {
	Props []*PatternProp
	Loc   types.Span
}

// Span returns the pattern's source span.
func (p *ObjectPattern) Span() types.Span { return p.Loc }

func (p *ObjectPattern) patternNode() {}

// PatternProp is one property of an object pattern. For shorthand
// properties Key == Value. Rest properties have a nil Key.
type PatternProp struct {
	Key     *Ident  // nil for rest elements
	Value   Pattern // the bound target
	Default Expr    // nil when absent
}

// ArrayPattern is an array destructuring target: [a, , b = 1, ...rest].
// Holes are nil elements.
type ArrayPattern struct {
	Elems []Pattern
	Loc   types.Span
}

// Span returns the pattern's source span.
func (p *ArrayPattern) Span() types.Span { return p.Loc }

func (p *ArrayPattern) patternNode() {}

// Param is one function parameter.
type Param struct {
	Target  Pattern
	Default Expr // nil when absent
	Rest    bool
}

// FuncDecl is a function declaration statement.
type FuncDecl struct {
	Name   *Ident
	Params []*Param
	Body   *BlockStmt
	Async  bool
	Loc    types.Span
}

// Span returns the declaration's source span.
func (d *FuncDecl) Span() types.Span { return d.Loc }

func (d *FuncDecl) stmtNode() {}

// ClassDecl is a class declaration statement.
type ClassDecl struct {
	Name    *Ident
	Super   Expr // nil when absent
	Members []*ClassMember
	Loc     types.Span
}

// Span returns the declaration's source span.
func (d *ClassDecl) Span() types.Span { return d.Loc }

func (d *ClassDecl) stmtNode() {}

// ClassMember is a method or field of a class body.
// Methods have a non-nil Body; fields have a nil Body and an optional Value.
type ClassMember struct {
	Name   *Ident
	Params []*Param
	Body   *BlockStmt
	Value  Expr // field initializer
	Static bool
	Loc    types.Span
}

// Span returns the member's source span.
func (m *ClassMember) Span() types.Span { return m.Loc }

// EnumDecl is a TypeScript enum declaration.
type EnumDecl struct {
	Name    *Ident
	Members []*EnumMember
	Loc     types.Span
}

// Span returns the declaration's source span.
func (d *EnumDecl) Span() types.Span { return d.Loc }

func (d *EnumDecl) stmtNode() {}

// EnumMember is one name of an enum, with an optional initializer.
type EnumMember struct {
	Name *Ident
	Init Expr
}

// InterfaceDecl is a TypeScript interface declaration. The body is not
// modeled; only the declared name participates in collision resolution.
type InterfaceDecl struct {
	Name *Ident
	Loc  types.Span // covers the whole declaration including body
}

// Span returns the declaration's source span.
func (d *InterfaceDecl) Span() types.Span { return d.Loc }

func (d *InterfaceDecl) stmtNode() {}

// TypeAliasDecl is a TypeScript type alias. The aliased type is not
// modeled; only the declared name participates in collision resolution.
type TypeAliasDecl struct {
	Name *Ident
	Loc  types.Span
}

// Span returns the declaration's source span.
func (d *TypeAliasDecl) Span() types.Span { return d.Loc }

func (d *TypeAliasDecl) stmtNode() {}

// --- Modules ---

// ImportDecl is an import statement in any of its forms:
// default, namespace, named, mixed, or bare ("import './x'").
type ImportDecl struct {
	Default   *Ident        // nil when absent
	Namespace *Ident        // nil when absent ("* as ns")
	Named     []*ImportSpec // nil when absent
	Source    *StringLit
	Loc       types.Span
}

// Span returns the statement's source span.
func (d *ImportDecl) Span() types.Span { return d.Loc }

func (d *ImportDecl) stmtNode() {}

// ImportSpec is one named import: "foo" or "foo as bar".
// For the unaliased form Imported == Local.
type ImportSpec struct {
	Imported *Ident
	Local    *Ident
}

// ExportNamedDecl is "export { a, b as c }" with an optional
// re-export source: "export { a } from './x'".
type ExportNamedDecl struct {
	Specs  []*ExportSpec
	Source *StringLit // nil for local exports
	Loc    types.Span
}

// Span returns the statement's source span.
func (d *ExportNamedDecl) Span() types.Span { return d.Loc }

func (d *ExportNamedDecl) stmtNode() {}

// ExportSpec is one export specifier: "foo" or "foo as bar".
// For the unaliased form Local == Exported.
type ExportSpec struct {
	Local    *Ident
	Exported *Ident
}

// ExportDefaultDecl is "export default <expr>" or
// "export default function/class ...".
type ExportDefaultDecl struct {
	Decl Stmt // non-nil for function/class forms
	Expr Expr // non-nil for expression forms
	Loc  types.Span
}

// Span returns the statement's source span.
func (d *ExportDefaultDecl) Span() types.Span { return d.Loc }

func (d *ExportDefaultDecl) stmtNode() {}

// ExportDecl is a declaration-wrapping export: "export const x = 1",
// "export function f() {}", etc.
type ExportDecl struct {
	Decl Stmt
	Loc  types.Span
}

// Span returns the statement's source span.
func (d *ExportDecl) Span() types.Span { return d.Loc }

func (d *ExportDecl) stmtNode() {}

// ExportAllDecl is "export * from './x'".
type ExportAllDecl struct {
	Source *StringLit
	Loc    types.Span
}

// Span returns the statement's source span.
func (d *ExportAllDecl) Span() types.Span { return d.Loc }

func (d *ExportAllDecl) stmtNode() {}

// --- Statements ---

// BlockStmt is a braced statement list. Blocks introduce a new scope.
type BlockStmt struct {
	Stmts []Stmt
	Loc   types.Span
}

// Span returns the block's source span.
func (s *BlockStmt) Span() types.Span { return s.Loc }

func (s *BlockStmt) stmtNode() {}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	X Expr
}

// Span returns the statement's source span.
func (s *ExprStmt) Span() types.Span { return s.X.Span() }

func (s *ExprStmt) stmtNode() {}

// ReturnStmt is a return statement with an optional argument.
type ReturnStmt struct {
	X   Expr // nil when absent
	Loc types.Span
}

// Span returns the statement's source span.
func (s *ReturnStmt) Span() types.Span { return s.Loc }

func (s *ReturnStmt) stmtNode() {}

// IfStmt is an if statement with an optional else branch.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil when absent
	Loc  types.Span
}

// Span returns the statement's source span.
func (s *IfStmt) Span() types.Span { return s.Loc }

func (s *IfStmt) stmtNode() {}

// ForStmt is a classic three-clause for loop. Any clause may be nil.
type ForStmt struct {
	Init Stmt // *VarDecl or *ExprStmt
	Cond Expr
	Post Expr
	Body Stmt
	Loc  types.Span
}

// Span returns the statement's source span.
func (s *ForStmt) Span() types.Span { return s.Loc }

func (s *ForStmt) stmtNode() {}

// ForInOfStmt is a for-in or for-of loop.
type ForInOfStmt struct {
	Decl   Stmt // *VarDecl binding the loop variable, or *ExprStmt
	Of     bool // true for for-of, false for for-in
	Object Expr
	Body   Stmt
	Loc    types.Span
}

// Span returns the statement's source span.
func (s *ForInOfStmt) Span() types.Span { return s.Loc }

func (s *ForInOfStmt) stmtNode() {}

// WhileStmt is a while loop.
type WhileStmt struct {
	Cond Expr
	Body Stmt
	Loc  types.Span
}

// Span returns the statement's source span.
func (s *WhileStmt) Span() types.Span { return s.Loc }

func (s *WhileStmt) stmtNode() {}

// ThrowStmt is a throw statement.
type ThrowStmt struct {
	X   Expr
	Loc types.Span
}

// Span returns the statement's source span.
func (s *ThrowStmt) Span() types.Span { return s.Loc }

func (s *ThrowStmt) stmtNode() {}

// TryStmt is a try statement with optional catch and finally clauses.
type TryStmt struct {
	Block      *BlockStmt
	CatchParam Pattern // nil for param-less catch
	Catch      *BlockStmt
	Finally    *BlockStmt
	Loc        types.Span
}

// Span returns the statement's source span.
func (s *TryStmt) Span() types.Span { return s.Loc }

func (s *TryStmt) stmtNode() {}

// SwitchStmt is a switch statement.
type SwitchStmt struct {
	Disc  Expr
	Cases []*SwitchCase
	Loc   types.Span
}

// Span returns the statement's source span.
func (s *SwitchStmt) Span() types.Span { return s.Loc }

func (s *SwitchStmt) stmtNode() {}

// SwitchCase is one case (or default, with nil Test) clause.
type SwitchCase struct {
	Test Expr // nil for default
	Body []Stmt
}

// BreakStmt is a break statement.
type BreakStmt struct {
	Loc types.Span
}

// Span returns the statement's source span.
func (s *BreakStmt) Span() types.Span { return s.Loc }

func (s *BreakStmt) stmtNode() {}

// ContinueStmt is a continue statement.
type ContinueStmt struct {
	Loc types.Span
}

// Span returns the statement's source span.
func (s *ContinueStmt) Span() types.Span { return s.Loc }

func (s *ContinueStmt) stmtNode() {}

// EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	Loc types.Span
}

// Span returns the statement's source span.
func (s *EmptyStmt) Span() types.Span { return s.Loc }

func (s *EmptyStmt) stmtNode() {}
