package graph

import (
	"slices"
	"testing"
)

func TestGraphBasic(t *testing.T) {
	g := New()

	g.AddNode("app")
	g.AddNode("lib/util")
	g.AddEdge("app", "lib/util")

	if !g.HasNode("app") {
		t.Error("graph should have node app")
	}
	if !g.HasNode("lib/util") {
		t.Error("graph should have node lib/util")
	}
	if len(g.Imports("app")) != 1 {
		t.Errorf("app imports = %d, want 1", len(g.Imports("app")))
	}
	if g.Imports("app")[0] != "lib/util" {
		t.Errorf("app imports %q, want %q", g.Imports("app")[0], "lib/util")
	}
}

func TestAddEdgeCreatesNodes(t *testing.T) {
	g := New()

	// No AddNode calls, only AddEdge.
	g.AddEdge("app", "lib")

	if !g.HasNode("app") {
		t.Error("AddEdge should create 'from' node")
	}
	if !g.HasNode("lib") {
		t.Error("AddEdge should create 'to' node")
	}
	if g.Len() != 2 {
		t.Errorf("Len = %d, want 2", g.Len())
	}
}

func TestDuplicateEdges(t *testing.T) {
	g := New()

	g.AddEdge("a", "b")
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")

	if len(g.Imports("a")) != 1 {
		t.Errorf("imports = %d, want 1 (duplicate edges deduplicated)", len(g.Imports("a")))
	}
}

func TestBundleOrder(t *testing.T) {
	g := New()
	g.AddEdge("app", "feature")
	g.AddEdge("feature", "lib/util")
	g.AddEdge("app", "lib/util")

	order, cyclic := g.BundleOrder()
	if len(cyclic) != 0 {
		t.Fatalf("cyclic = %v, want none", cyclic)
	}

	pos := make(map[string]int, len(order))
	for i, key := range order {
		pos[key] = i
	}
	if pos["lib/util"] > pos["feature"] {
		t.Error("lib/util should come before feature")
	}
	if pos["feature"] > pos["app"] {
		t.Error("feature should come before app")
	}
}

func TestTopologicalOrderReportsCyclic(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")
	g.AddEdge("c", "a")

	order, cyclic := g.TopologicalOrder()
	if !slices.Contains(order, "c") {
		t.Error("acyclic module c should appear in order")
	}
	if !slices.Contains(cyclic, "a") || !slices.Contains(cyclic, "b") {
		t.Errorf("cyclic = %v, want a and b", cyclic)
	}
}

func TestFindCycles(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")
	g.AddEdge("d", "a")

	cycles := g.FindCycles()
	if len(cycles) != 1 {
		t.Fatalf("cycles = %d, want 1", len(cycles))
	}
	if len(cycles[0]) != 3 {
		t.Errorf("cycle size = %d, want 3", len(cycles[0]))
	}
	if g.HasCycles() != true {
		t.Error("HasCycles should be true")
	}
}

func TestSelfImportIsCycle(t *testing.T) {
	g := New()
	g.AddEdge("a", "a")

	cycles := g.FindCycles()
	if len(cycles) != 1 || len(cycles[0]) != 1 {
		t.Fatalf("cycles = %v, want single self-cycle", cycles)
	}
}

func TestEmptyGraph(t *testing.T) {
	g := New()
	if g.HasCycles() {
		t.Error("empty graph should have no cycles")
	}
	order, cyclic := g.BundleOrder()
	if len(order) != 0 || len(cyclic) != 0 {
		t.Error("empty graph should produce empty orders")
	}
}
