// Package graph provides import graph construction and analysis for
// module bundles. Nodes are canonical module keys.
package graph

import (
	"slices"
	"sort"
)

// Graph is a module import graph with forward edges from importer to
// imported module.
type Graph struct {
	nodes map[string]struct{}
	edges map[string][]string
}

// New returns a graph with no nodes or edges.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		edges: make(map[string][]string),
	}
}

// AddNode registers a module. Duplicate calls are no-ops.
func (g *Graph) AddNode(key string) {
	g.nodes[key] = struct{}{}
}

// AddEdge records that "from" imports "to". Missing nodes are created
// implicitly. Duplicate edges are ignored.
func (g *Graph) AddEdge(from, to string) {
	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}

	if slices.Contains(g.edges[from], to) {
		return
	}
	g.edges[from] = append(g.edges[from], to)
}

// Imports returns the modules that key imports (forward edges).
func (g *Graph) Imports(key string) []string {
	return g.edges[key]
}

// HasNode reports whether the module exists in the graph.
func (g *Graph) HasNode(key string) bool {
	_, ok := g.nodes[key]
	return ok
}

// Len returns the number of modules in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// sortedNodes returns every node in lexical order, so traversals that
// iterate all nodes are deterministic.
func (g *Graph) sortedNodes() []string {
	nodes := make([]string, 0, len(g.nodes))
	for key := range g.nodes {
		nodes = append(nodes, key)
	}
	sort.Strings(nodes)
	return nodes
}
