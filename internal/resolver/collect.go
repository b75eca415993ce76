package resolver

import (
	"log/slog"

	"github.com/suseejs/duplicates/internal/ast"
)

// collectDeclarations is the collection phase entry point: it walks
// every module and records each top-level declared name in the shared
// declaration index.
func collectDeclarations(ctx *resolverContext) {
	for _, mod := range ctx.modules {
		count := 0
		forEachTopLevelDecl(mod.Prog, func(name *ast.Ident) {
			ctx.addDeclaration(name.Name, mod.Path)
			count++
		})
		if ctx.TraceEnabled() {
			ctx.Trace("collected declarations",
				slog.String("module", mod.Path),
				slog.Int("count", count))
		}
	}
}

// TopLevelNames returns the effective names declared at the top level
// of mod, in source order.
func TopLevelNames(mod *Module) []string {
	var names []string
	forEachTopLevelDecl(mod.Prog, func(name *ast.Ident) {
		names = append(names, name.Effective())
	})
	return names
}

// declVisitor walks a module and emits every top-level declared name.
//
// The visitor carries an immutable top-level flag per recursion: any
// scope-introducing construct (a function, method, or arrow body, a
// class body, a block) flips it to false for the whole subtree, so
// nested declarations are never emitted no matter how deep. Traversal
// still descends into local scopes; it just collects nothing there.
// The visitor never mutates the tree.
type declVisitor struct {
	topLevel bool
	emit     func(*ast.Ident)
}

// forEachTopLevelDecl calls emit for each name declared in the module
// body: variable/constant bindings (including every name bound by a
// destructuring pattern), functions, classes, enums, interfaces, and
// type aliases. Names inside export-wrapped declarations count; the
// declaration is still top level.
func forEachTopLevelDecl(prog *ast.Program, emit func(*ast.Ident)) {
	ast.Walk(&declVisitor{topLevel: true, emit: emit}, prog)
}

func (v *declVisitor) Visit(n ast.Node) ast.Visitor {
	if n == nil {
		return nil
	}

	nested := v
	if v.topLevel {
		nested = &declVisitor{topLevel: false, emit: v.emit}
	}

	switch node := n.(type) {
	case *ast.VarDecl:
		if v.topLevel {
			for _, d := range node.Decls {
				for _, id := range d.BoundIdents() {
					v.emit(id)
				}
			}
		}
		// Initializers cannot contain declaration statements outside a
		// scope-introducing construct, which flips the flag on its own.
		return v

	case *ast.FuncDecl:
		if v.topLevel {
			v.emit(node.Name)
		}
		return nested

	case *ast.ClassDecl:
		if v.topLevel {
			v.emit(node.Name)
		}
		return nested

	case *ast.EnumDecl:
		if v.topLevel {
			v.emit(node.Name)
		}
		return nested

	case *ast.InterfaceDecl:
		if v.topLevel {
			v.emit(node.Name)
		}
		return v

	case *ast.TypeAliasDecl:
		if v.topLevel {
			v.emit(node.Name)
		}
		return v

	case *ast.BlockStmt, *ast.ArrowFunc, *ast.FuncExpr:
		return nested
	}

	return v
}
