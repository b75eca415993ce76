package parser

import (
	"testing"

	"github.com/suseejs/duplicates/internal/ast"
	"github.com/suseejs/duplicates/internal/testutil"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := New([]byte(src), nil).Parse()
	testutil.NoError(t, err, "parse failed")
	return prog
}

func parseErr(t *testing.T, src string) error {
	t.Helper()
	_, err := New([]byte(src), nil).Parse()
	testutil.Error(t, err, "parse should fail")
	return err
}

func boundNames(decl *ast.VarDecl) []string {
	var names []string
	for _, d := range decl.Decls {
		for _, id := range d.BoundIdents() {
			names = append(names, id.Name)
		}
	}
	return names
}

func TestParseVarDecls(t *testing.T) {
	prog := parse(t, "const a = 1, b = 2;\nlet c;\nvar d = a + b;\n")
	testutil.Len(t, prog.Stmts, 3)

	decl := prog.Stmts[0].(*ast.VarDecl)
	testutil.Equal(t, ast.VarConst, decl.Kind)
	testutil.SliceEqual(t, []string{"a", "b"}, boundNames(decl))

	testutil.Equal(t, ast.VarLet, prog.Stmts[1].(*ast.VarDecl).Kind)
	testutil.Equal(t, ast.VarVar, prog.Stmts[2].(*ast.VarDecl).Kind)
}

func TestParseDestructuring(t *testing.T) {
	prog := parse(t, "const { a, b: renamed, c: [first, , second] } = source;\nconst [x, ...rest] = list;\n")

	testutil.SliceEqual(t, []string{"a", "renamed", "first", "second"},
		boundNames(prog.Stmts[0].(*ast.VarDecl)))
	testutil.SliceEqual(t, []string{"x", "rest"},
		boundNames(prog.Stmts[1].(*ast.VarDecl)))
}

func TestParseImportForms(t *testing.T) {
	prog := parse(t, `import './side-effect';
import def from './a';
import * as ns from './b';
import { one, two as alias } from './c';
import main, { extra } from './d';
`)
	testutil.Len(t, prog.Stmts, 5)

	bare := prog.Stmts[0].(*ast.ImportDecl)
	testutil.Equal(t, "./side-effect", bare.Source.Value)
	testutil.True(t, bare.Default == nil && bare.Named == nil)

	def := prog.Stmts[1].(*ast.ImportDecl)
	testutil.Equal(t, "def", def.Default.Name)

	ns := prog.Stmts[2].(*ast.ImportDecl)
	testutil.Equal(t, "ns", ns.Namespace.Name)

	named := prog.Stmts[3].(*ast.ImportDecl)
	testutil.Len(t, named.Named, 2)
	testutil.Equal(t, "one", named.Named[0].Imported.Name)
	// Unaliased specifiers share one node.
	testutil.True(t, named.Named[0].Imported == named.Named[0].Local)
	testutil.Equal(t, "two", named.Named[1].Imported.Name)
	testutil.Equal(t, "alias", named.Named[1].Local.Name)

	mixed := prog.Stmts[4].(*ast.ImportDecl)
	testutil.Equal(t, "main", mixed.Default.Name)
	testutil.Len(t, mixed.Named, 1)
}

func TestParseExportForms(t *testing.T) {
	prog := parse(t, `export { a, b as c };
export { d } from './other';
export * from './star';
export default compute;
export function helper() {}
export const answer = 42;
`)
	testutil.Len(t, prog.Stmts, 6)

	named := prog.Stmts[0].(*ast.ExportNamedDecl)
	testutil.Len(t, named.Specs, 2)
	testutil.True(t, named.Specs[0].Local == named.Specs[0].Exported)
	testutil.Equal(t, "b", named.Specs[1].Local.Name)
	testutil.Equal(t, "c", named.Specs[1].Exported.Name)
	testutil.True(t, named.Source == nil)

	reexport := prog.Stmts[1].(*ast.ExportNamedDecl)
	testutil.NotNil(t, reexport.Source)
	testutil.Equal(t, "./other", reexport.Source.Value)

	star := prog.Stmts[2].(*ast.ExportAllDecl)
	testutil.Equal(t, "./star", star.Source.Value)

	def := prog.Stmts[3].(*ast.ExportDefaultDecl)
	testutil.Equal(t, "compute", def.Expr.(*ast.Ident).Name)

	fn := prog.Stmts[4].(*ast.ExportDecl)
	testutil.Equal(t, "helper", fn.Decl.(*ast.FuncDecl).Name.Name)

	v := prog.Stmts[5].(*ast.ExportDecl)
	testutil.SliceEqual(t, []string{"answer"}, boundNames(v.Decl.(*ast.VarDecl)))
}

func TestParseFunctionDecl(t *testing.T) {
	prog := parse(t, "async function fetchAll(first, second = 1, ...rest) { return first; }\n")

	fn := prog.Stmts[0].(*ast.FuncDecl)
	testutil.Equal(t, "fetchAll", fn.Name.Name)
	testutil.True(t, fn.Async)
	testutil.Len(t, fn.Params, 3)
	testutil.True(t, fn.Params[2].Rest)
	testutil.NotNil(t, fn.Params[1].Default.(*ast.Literal))
}

func TestParseClassDecl(t *testing.T) {
	prog := parse(t, `class Widget extends Base {
  constructor(name) { this.name = name; }
  static create() { return new Widget('w'); }
  get label() { return this.name; }
  size = 0;
}
`)
	cls := prog.Stmts[0].(*ast.ClassDecl)
	testutil.Equal(t, "Widget", cls.Name.Name)
	testutil.Equal(t, "Base", cls.Super.(*ast.Ident).Name)
	testutil.Len(t, cls.Members, 4)
}

func TestParseTypeScriptDecls(t *testing.T) {
	prog := parse(t, `enum Color { Red, Green = 2 }
interface Shape { area(): number; }
type Alias = { x: number } | string;
`)
	testutil.Equal(t, "Color", prog.Stmts[0].(*ast.EnumDecl).Name.Name)
	testutil.Equal(t, "Shape", prog.Stmts[1].(*ast.InterfaceDecl).Name.Name)
	testutil.Equal(t, "Alias", prog.Stmts[2].(*ast.TypeAliasDecl).Name.Name)
}

func TestParseTypeAnnotationsSkipped(t *testing.T) {
	prog := parse(t, `function area(w: number, h: Array<Map<string, number>>): number {
  const result: number = w * h;
  return result;
}
`)
	fn := prog.Stmts[0].(*ast.FuncDecl)
	testutil.Len(t, fn.Params, 2)
	testutil.Equal(t, "w", fn.Params[0].Target.(*ast.Ident).Name)
	testutil.Len(t, fn.Body.Stmts, 2)
}

func TestParseASI(t *testing.T) {
	prog := parse(t, "const a = 1\nconst b = 2\na\n")
	testutil.Len(t, prog.Stmts, 3)
}

func TestParseReturnASI(t *testing.T) {
	prog := parse(t, "function f() {\n  return\n  1\n}\n")
	fn := prog.Stmts[0].(*ast.FuncDecl)
	// The newline terminates the return; 1 is its own statement.
	testutil.Len(t, fn.Body.Stmts, 2)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	testutil.True(t, ret.X == nil)
}

func TestParseForVariants(t *testing.T) {
	prog := parse(t, `for (let i = 0; i < 10; i++) { work(i); }
for (const key in table) { work(key); }
for (const item of items) { work(item); }
`)
	testutil.Len(t, prog.Stmts, 3)
	if _, ok := prog.Stmts[0].(*ast.ForStmt); !ok {
		t.Errorf("stmt 0 = %T, want *ast.ForStmt", prog.Stmts[0])
	}
	if _, ok := prog.Stmts[1].(*ast.ForInOfStmt); !ok {
		t.Errorf("stmt 1 = %T, want *ast.ForInOfStmt", prog.Stmts[1])
	}
}

func TestParseInOperatorOutsideForHead(t *testing.T) {
	prog := parse(t, "const present = 'key' in table;\n")
	decl := prog.Stmts[0].(*ast.VarDecl)
	if _, ok := decl.Decls[0].Init.(*ast.BinaryExpr); !ok {
		t.Errorf("init = %T, want *ast.BinaryExpr", decl.Decls[0].Init)
	}
}

func TestParseArrowFuncs(t *testing.T) {
	prog := parse(t, `const id = x => x;
const add = (a, b) => a + b;
const run = async () => { return 1; };
const obj = (x) => ({ value: x });
`)
	testutil.Len(t, prog.Stmts, 4)
	for i, stmt := range prog.Stmts {
		decl := stmt.(*ast.VarDecl)
		if _, ok := decl.Decls[0].Init.(*ast.ArrowFunc); !ok {
			t.Errorf("stmt %d init = %T, want *ast.ArrowFunc", i, decl.Decls[0].Init)
		}
	}
}

func TestParseCallChains(t *testing.T) {
	prog := parse(t, "app.router.get('/')(handler)?.finish();\n")
	testutil.Len(t, prog.Stmts, 1)
	if _, ok := prog.Stmts[0].(*ast.ExprStmt).X.(*ast.CallExpr); !ok {
		t.Errorf("stmt = %T, want call chain", prog.Stmts[0].(*ast.ExprStmt).X)
	}
}

func TestParseTemplateLiteral(t *testing.T) {
	prog := parse(t, "const msg = `count: ${total + 1} of ${limit}`;\n")
	decl := prog.Stmts[0].(*ast.VarDecl)
	lit := decl.Decls[0].Init.(*ast.Literal)
	testutil.Equal(t, ast.LitTemplate, lit.Kind)
}

func TestParseConditionalAndPrecedence(t *testing.T) {
	prog := parse(t, "const v = a ?? b || c && d ? x + y * z : w;\n")
	decl := prog.Stmts[0].(*ast.VarDecl)
	if _, ok := decl.Decls[0].Init.(*ast.CondExpr); !ok {
		t.Errorf("init = %T, want *ast.CondExpr", decl.Decls[0].Init)
	}
}

func TestParseErrorHasPosition(t *testing.T) {
	err := parseErr(t, "const a = ;\n")
	testutil.Contains(t, err.Error(), "1:")
}

func TestParseUnterminatedBlock(t *testing.T) {
	parseErr(t, "function f() {\n")
}
