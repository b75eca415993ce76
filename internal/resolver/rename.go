package resolver

import (
	"log/slog"

	"github.com/suseejs/duplicates/internal/ast"
)

// renameDeclarations is the declaration-update phase: every top-level
// declaration whose name the index maps to two or more modules gets a
// fresh name at its declaration site, and the rename is recorded in the
// call-site map for the declaring module.
//
// Modules are processed in batch order and declarations in source
// order, so the generator's global suffix sequence is deterministic.
func renameDeclarations(ctx *resolverContext) {
	for _, mod := range ctx.modules {
		renamed := 0
		forEachTopLevelDecl(mod.Prog, func(name *ast.Ident) {
			if !ctx.colliding(name.Name) {
				return
			}
			newName := ctx.gen.Next(name.Name)
			name.NewName = newName
			ctx.addCallSite(name.Name, mod.Path, newName)
			renamed++
			if ctx.TraceEnabled() {
				ctx.Trace("renamed declaration",
					slog.String("module", mod.Path),
					slog.String("base", name.Name),
					slog.String("new", newName))
			}
		})
		if renamed > 0 {
			ctx.Log(slog.LevelDebug, "module declarations renamed",
				slog.String("module", mod.Path),
				slog.Int("renamed", renamed))
		}
	}
}
