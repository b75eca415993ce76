package resolver

import (
	"log/slog"

	"github.com/suseejs/duplicates/internal/ast"
	"github.com/suseejs/duplicates/internal/modkey"
)

// rewriteExports is the export-rewrite phase: it propagates renames
// into each module's public surface, keyed by canonical module key.
//
// Resolution order per export site: a call-site-map match rewrites the
// specifier and publishes the rename in the export map, which is how a
// genuinely renamed declaration becomes visible to importers. An
// import-map-only match rewrites the specifier but publishes nothing;
// propagation through such transitive chains relies on the repeated
// rewrite cycle.
func rewriteExports(ctx *resolverContext) {
	for _, mod := range ctx.modules {
		key := mod.Key()
		for _, stmt := range mod.Prog.Stmts {
			switch node := stmt.(type) {
			case *ast.ExportNamedDecl:
				for _, spec := range node.Specs {
					rewriteExportName(ctx, mod, spec.Local, key)
				}

			case *ast.ExportDefaultDecl:
				// Export assignment of a bare identifier:
				// "export default foo".
				if id, ok := node.Expr.(*ast.Ident); ok {
					rewriteExportName(ctx, mod, id, key)
				}

			case *ast.ExportDecl:
				// Export-wrapped declarations were renamed at the
				// declaration site; publish those renames so importers
				// can find them.
				forEachTopLevelDecl(&ast.Program{Stmts: []ast.Stmt{node.Decl}}, func(name *ast.Ident) {
					if newName, ok := ctx.lookupCallSite(name.Name, mod.Path); ok {
						if _, published := ctx.lookupExport(name.Name, key); !published {
							ctx.addExport(name.Name, key, newName)
						}
					}
				})
			}
		}
		if ctx.TraceEnabled() {
			ctx.Trace("exports rewritten", slog.String("module", mod.Path))
		}
	}
}

// rewriteExportName applies the per-site resolution order to one
// exported base name.
func rewriteExportName(ctx *resolverContext, mod *Module, id *ast.Ident, key modkey.Key) {
	if newName, ok := ctx.lookupCallSite(id.Name, mod.Path); ok {
		id.NewName = newName
		if _, published := ctx.lookupExport(id.Name, key); !published {
			ctx.addExport(id.Name, key, newName)
		}
		return
	}
	if newName, ok := ctx.lookupImport(id.Name, mod.Path); ok {
		// The exported name was itself imported and renamed an earlier
		// hop upstream; rewrite it. The bounded schedule does not
		// publish from this branch; the fixpoint schedule does, which
		// is what lets renames cross more than one re-export hop.
		id.NewName = newName
		if ctx.publishTransitive {
			if _, published := ctx.lookupExport(id.Name, key); !published {
				ctx.addExport(id.Name, key, newName)
			}
		}
	}
}
