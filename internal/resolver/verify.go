package resolver

import (
	"log/slog"
	"sort"

	"github.com/suseejs/duplicates/bundle"
	"github.com/suseejs/duplicates/internal/ast"
)

// Verify runs an independent collection pass over the module batch and
// reports every top-level name still declared in two or more modules.
// It rewrites nothing and returns data; whether a collision is fatal is
// the caller's decision.
func Verify(mods []*Module, logger *slog.Logger) []bundle.Collision {
	ctx := newResolverContext(mods, nil, logger)

	for _, mod := range ctx.modules {
		forEachTopLevelDecl(mod.Prog, func(name *ast.Ident) {
			// Verification runs after printing would apply renames, so
			// judge the effective name, not the original.
			ctx.addDeclaration(name.Effective(), mod.Path)
		})
	}

	var collisions []bundle.Collision
	for name, paths := range ctx.index {
		if len(paths) > 1 {
			collisions = append(collisions, bundle.Collision{Name: name, Modules: paths})
		}
	}
	sort.Slice(collisions, func(i, j int) bool {
		return collisions[i].Name < collisions[j].Name
	})

	ctx.Log(slog.LevelDebug, "verification complete",
		slog.Int("modules", len(mods)),
		slog.Int("collisions", len(collisions)))
	return collisions
}
