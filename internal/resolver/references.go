package resolver

import (
	"log/slog"

	"github.com/suseejs/duplicates/internal/ast"
)

// rewriteReferences is the expression-rewrite phase: calls, property
// accesses, and constructions whose target is a bare identifier are
// rewritten when the identifier matches a rename recorded for this
// module. The call-site map wins over the import map for the same
// (base, module) pair. This phase extends no map.
func rewriteReferences(ctx *resolverContext) {
	for _, mod := range ctx.modules {
		rewritten := 0
		ast.Inspect(mod.Prog, func(n ast.Node) bool {
			var target *ast.Ident
			switch node := n.(type) {
			case *ast.CallExpr:
				target, _ = node.Callee.(*ast.Ident)
			case *ast.MemberExpr:
				// Only the leading identifier; property names are
				// never renamed.
				target, _ = node.Object.(*ast.Ident)
			case *ast.NewExpr:
				target, _ = node.Callee.(*ast.Ident)
			default:
				return true
			}
			if target == nil {
				return true
			}
			if newName, ok := ctx.lookupLocal(target.Name, mod.Path); ok && target.NewName == "" {
				target.NewName = newName
				rewritten++
			}
			return true
		})
		if rewritten > 0 && ctx.TraceEnabled() {
			ctx.Trace("references rewritten",
				slog.String("module", mod.Path),
				slog.Int("count", rewritten))
		}
	}
}
