// Package printer turns a syntax tree back into module text.
//
// Rewrite passes never restructure the tree; they only assign new names
// to identifier nodes. Printing therefore splices each renamed
// identifier into the original source at its span, leaving every other
// byte untouched. A module with no renamed identifiers prints
// byte-identical to its input.
package printer

import (
	"sort"
	"strings"

	"github.com/suseejs/duplicates/internal/ast"
)

// Print returns the module text for the program, substituting renamed
// identifiers at their original spans.
func Print(prog *ast.Program, source []byte) string {
	idents := renamedIdents(prog)
	if len(idents) == 0 {
		return string(source)
	}

	sort.Slice(idents, func(i, j int) bool {
		return idents[i].Loc.Start < idents[j].Loc.Start
	})

	var b strings.Builder
	b.Grow(len(source) + len(idents)*8)
	var pos int
	for _, id := range idents {
		start := int(id.Loc.Start)
		if start < pos {
			// Overlapping spans would mean the same identifier node was
			// spliced twice; skip rather than corrupt the output.
			continue
		}
		b.Write(source[pos:start])
		b.WriteString(id.NewName)
		pos = int(id.Loc.End)
	}
	b.Write(source[pos:])
	return b.String()
}

// Changed reports whether any identifier in the program was renamed.
func Changed(prog *ast.Program) bool {
	return len(renamedIdents(prog)) > 0
}

func renamedIdents(prog *ast.Program) []*ast.Ident {
	var idents []*ast.Ident
	seen := make(map[*ast.Ident]bool)
	ast.Inspect(prog, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && id.NewName != "" && !seen[id] {
			seen[id] = true
			idents = append(idents, id)
		}
		return true
	})
	return idents
}
