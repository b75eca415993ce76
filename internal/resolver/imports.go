package resolver

import (
	"log/slog"

	"github.com/suseejs/duplicates/internal/ast"
	"github.com/suseejs/duplicates/internal/modkey"
)

// rewriteImports is the import-rewrite phase: it pulls renames across
// the module boundary. Each import source resolves to a canonical key;
// a hit in the export map rewrites the bound identifier and registers
// the rename in the import map for the importer's local use, making it
// visible to subsequent reference and export rewriting.
func rewriteImports(ctx *resolverContext) {
	for _, mod := range ctx.modules {
		for _, stmt := range mod.Prog.Stmts {
			imp, ok := stmt.(*ast.ImportDecl)
			if !ok || imp.Source == nil {
				continue
			}
			key := modkey.ResolveSpecifier(imp.Source.Value, mod.Path)

			if imp.Default != nil {
				rewriteImportBinding(ctx, mod, imp.Default, key)
			}
			for _, spec := range imp.Named {
				// The imported name addresses the exporter; rewriting
				// it also rewrites the local binding when the specifier
				// is unaliased (they are the same node).
				rewriteImportBinding(ctx, mod, spec.Imported, key)
			}

			if ctx.TraceEnabled() {
				ctx.Trace("import visited",
					slog.String("module", mod.Path),
					slog.String("specifier", imp.Source.Value),
					slog.String("key", string(key)))
			}
		}
	}
}

func rewriteImportBinding(ctx *resolverContext, mod *Module, id *ast.Ident, key modkey.Key) {
	newName, ok := ctx.lookupExport(id.Name, key)
	if !ok {
		return
	}
	id.NewName = newName
	if _, registered := ctx.lookupImport(id.Name, mod.Path); !registered {
		ctx.addImport(id.Name, mod.Path, newName)
	}
	if ctx.TraceEnabled() {
		ctx.Trace("import binding rewritten",
			slog.String("module", mod.Path),
			slog.String("base", id.Name),
			slog.String("new", newName))
	}
}
