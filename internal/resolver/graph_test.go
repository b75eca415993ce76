package resolver

import (
	"testing"

	"github.com/suseejs/duplicates/internal/testutil"
)

func TestImportGraphEdges(t *testing.T) {
	a := parseTestModule(t, "lib/a.js", "export const x = 1;\n")
	b := parseTestModule(t, "b.js", "import { x } from './lib/a';\nexport * from './lib/a';\n")
	c := parseTestModule(t, "c.js", "import fs from 'fs';\nimport { x } from './b';\n")

	g := ImportGraph(mods(a, b, c))

	testutil.Equal(t, 3, g.Len())
	testutil.SliceEqual(t, []string{"lib/a"}, g.Imports("b"))
	// The bare "fs" specifier points outside the bundle.
	testutil.SliceEqual(t, []string{"b"}, g.Imports("c"))
	testutil.Len(t, g.Imports("lib/a"), 0)
}

func TestImportGraphBundleOrder(t *testing.T) {
	a := parseTestModule(t, "a.js", "export const x = 1;\n")
	b := parseTestModule(t, "b.js", "import { x } from './a';\nexport const y = x;\n")
	c := parseTestModule(t, "c.js", "import { y } from './b';\n")

	order, cyclic := ImportGraph(mods(a, b, c)).BundleOrder()

	testutil.Len(t, cyclic, 0)
	testutil.SliceEqual(t, []string{"a", "b", "c"}, order)
}
