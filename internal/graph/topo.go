package graph

import "slices"

// TopologicalOrder returns modules ordered so that importers come
// before the modules they import (Kahn's algorithm). Modules involved
// in cycles are returned separately in the second slice.
func (g *Graph) TopologicalOrder() (order []string, cyclic []string) {
	inDegree := make(map[string]int)
	for _, deps := range g.edges {
		for _, dep := range deps {
			inDegree[dep]++
		}
	}

	var queue []string
	for _, key := range g.sortedNodes() {
		if inDegree[key] == 0 {
			queue = append(queue, key)
		}
	}

	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		order = append(order, key)

		for _, dep := range g.edges[key] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	for _, key := range g.sortedNodes() {
		if inDegree[key] > 0 {
			cyclic = append(cyclic, key)
		}
	}

	return order, cyclic
}

// BundleOrder returns modules with imported modules before their
// importers, the reverse of TopologicalOrder. This is the order a
// bundler would concatenate them in.
func (g *Graph) BundleOrder() (order []string, cyclic []string) {
	order, cyclic = g.TopologicalOrder()
	slices.Reverse(order)
	return order, cyclic
}
