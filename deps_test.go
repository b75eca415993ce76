package duplicates

import (
	"testing"

	"github.com/suseejs/duplicates/internal/testutil"
)

func TestDependencyOrder(t *testing.T) {
	mods := []Module{
		{Path: "app.js", Text: "import { x } from './feature';\n"},
		{Path: "feature.js", Text: "import { util } from './lib/util';\nexport const x = util();\n"},
		{Path: "lib/util.js", Text: "export function util() { return 1; }\n"},
	}

	order, err := DependencyOrder(mods)
	if err != nil {
		t.Fatalf("DependencyOrder failed: %v", err)
	}

	testutil.Len(t, order.Cycles, 0)
	testutil.SliceEqual(t, []string{"lib/util.js", "feature.js", "app.js"}, order.Order)
}

func TestDependencyOrderReportsCycles(t *testing.T) {
	mods := []Module{
		{Path: "a.js", Text: "import { b } from './b';\nexport const a = 1;\n"},
		{Path: "b.js", Text: "import { a } from './a';\nexport const b = 2;\n"},
		{Path: "standalone.js", Text: "export const s = 3;\n"},
	}

	order, err := DependencyOrder(mods)
	if err != nil {
		t.Fatalf("DependencyOrder failed: %v", err)
	}

	testutil.Len(t, order.Cycles, 1)
	testutil.Len(t, order.Cycles[0], 2)
	testutil.SliceEqual(t, []string{"standalone.js"}, order.Order)
}
