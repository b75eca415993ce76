package duplicates

import (
	"errors"
	"strings"
	"testing"

	"github.com/suseejs/duplicates/internal/testutil"
)

func TestResolveEmptyBatch(t *testing.T) {
	_, err := Resolve(nil)
	if !errors.Is(err, ErrNoModules) {
		t.Fatalf("err = %v, want ErrNoModules", err)
	}
}

func TestResolveRenamesAcrossModules(t *testing.T) {
	mods := []Module{
		{Path: "a.js", Text: "export function foo() { return 1; }\n"},
		{Path: "b.js", Text: "export function foo() { return 2; }\n"},
		{Path: "main.js", Text: "import { foo } from './a';\nfoo();\n"},
	}

	resolved, err := Resolve(mods)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	testutil.Len(t, resolved, 3)
	testutil.Equal(t, "a.js", resolved[0].Path)
	testutil.Equal(t, "export function d_foo_1() { return 1; }\n", resolved[0].Text)
	testutil.Equal(t, "export function d_foo_2() { return 2; }\n", resolved[1].Text)
	testutil.Equal(t, "import { d_foo_1 } from './a';\nd_foo_1();\n", resolved[2].Text)
}

func TestResolveKeepsUntouchedText(t *testing.T) {
	clean := "const answer = 42;   // spacing preserved\nexport { answer };\n"
	mods := []Module{
		{Path: "clean.js", Text: clean},
		{Path: "x.js", Text: "const dup = 1;\n"},
		{Path: "y.js", Text: "const dup = 2;\n"},
	}

	resolved, err := Resolve(mods)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	testutil.Equal(t, clean, resolved[0].Text)
}

func TestResolveWithPrefix(t *testing.T) {
	mods := []Module{
		{Path: "a.js", Text: "function foo() {}\n"},
		{Path: "b.js", Text: "function foo() {}\n"},
	}

	resolved, err := Resolve(mods, WithPrefix("x_"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	testutil.Equal(t, "function x_foo_1() {}\n", resolved[0].Text)
	testutil.Equal(t, "function x_foo_2() {}\n", resolved[1].Text)
}

func TestResolveParseErrorFailsBatch(t *testing.T) {
	mods := []Module{
		{Path: "ok.js", Text: "const a = 1;\n"},
		{Path: "broken.js", Text: "function (\n"},
	}

	_, err := Resolve(mods)
	testutil.Error(t, err)
	testutil.Contains(t, err.Error(), "broken.js")
}

func TestVerifyReportsCollisions(t *testing.T) {
	mods := []Module{
		{Path: "a.js", Text: "function foo() {}\n"},
		{Path: "b.js", Text: "function foo() {}\n"},
	}

	collisions, err := Verify(mods)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	testutil.Len(t, collisions, 1)
	testutil.Equal(t, "foo", collisions[0].Name)
	testutil.SliceEqual(t, []string{"a.js", "b.js"}, collisions[0].Modules)
	testutil.Contains(t, collisions[0].String(), `duplicate declaration "foo"`)
}

func TestVerifyCleanAfterResolve(t *testing.T) {
	mods := []Module{
		{Path: "a.js", Text: "export function foo() {}\n"},
		{Path: "b.js", Text: "export function foo() {}\n"},
	}

	resolved, err := Resolve(mods)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	collisions, err := Verify(resolved)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	testutil.Len(t, collisions, 0)
}

func TestResolveFixpointOption(t *testing.T) {
	mods := []Module{
		{Path: "a.js", Text: "export function shared() {}\n"},
		{Path: "b.js", Text: "export function shared() {}\n"},
		{Path: "mid.js", Text: "import { shared } from './a';\nexport { shared };\n"},
		{Path: "top.js", Text: "import { shared } from './mid';\nshared();\n"},
	}

	resolved, err := Resolve(mods, WithFixpoint())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !strings.Contains(resolved[3].Text, "d_shared_1()") {
		t.Errorf("fixpoint should propagate through the re-export chain, got %q", resolved[3].Text)
	}
}
