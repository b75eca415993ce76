package resolver

import (
	"github.com/suseejs/duplicates/internal/ast"
	"github.com/suseejs/duplicates/internal/graph"
	"github.com/suseejs/duplicates/internal/modkey"
)

// ImportGraph builds the batch's import graph over canonical module
// keys. Import declarations and re-exports both contribute edges.
// Only edges to modules present in the batch are recorded; bare
// (package) specifiers point outside the bundle and are skipped.
func ImportGraph(mods []*Module) *graph.Graph {
	g := graph.New()

	keys := make(map[modkey.Key]struct{}, len(mods))
	for _, mod := range mods {
		keys[mod.Key()] = struct{}{}
		g.AddNode(string(mod.Key()))
	}

	for _, mod := range mods {
		from := mod.Key()
		for _, stmt := range mod.Prog.Stmts {
			var source *ast.StringLit
			switch node := stmt.(type) {
			case *ast.ImportDecl:
				source = node.Source
			case *ast.ExportNamedDecl:
				source = node.Source
			case *ast.ExportAllDecl:
				source = node.Source
			}
			if source == nil {
				continue
			}
			to := modkey.ResolveSpecifier(source.Value, mod.Path)
			if _, ok := keys[to]; ok {
				g.AddEdge(string(from), string(to))
			}
		}
	}
	return g
}
