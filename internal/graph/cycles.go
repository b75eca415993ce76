package graph

// FindCycles returns all strongly connected components with more than
// one module (or a single module importing itself), found via Tarjan's
// algorithm. Modules are visited in lexical order, so the result is
// deterministic for a given graph.
func (g *Graph) FindCycles() [][]string {
	var (
		index    int
		stack    []string
		onStack  = make(map[string]bool)
		indices  = make(map[string]int)
		lowlinks = make(map[string]int)
		sccs     [][]string
	)

	var strongConnect func(key string)
	strongConnect = func(key string) {
		indices[key] = index
		lowlinks[key] = index
		index++
		stack = append(stack, key)
		onStack[key] = true

		for _, dep := range g.edges[key] {
			if _, visited := indices[dep]; !visited {
				strongConnect(dep)
				lowlinks[key] = min(lowlinks[key], lowlinks[dep])
			} else if onStack[dep] {
				lowlinks[key] = min(lowlinks[key], indices[dep])
			}
		}

		if lowlinks[key] == indices[key] {
			var scc []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == key {
					break
				}
			}
			if len(scc) > 1 {
				sccs = append(sccs, scc)
			} else if len(scc) == 1 {
				// Check for self-import.
				for _, dep := range g.edges[scc[0]] {
					if dep == scc[0] {
						sccs = append(sccs, scc)
						break
					}
				}
			}
		}
	}

	for _, key := range g.sortedNodes() {
		if _, visited := indices[key]; !visited {
			strongConnect(key)
		}
	}

	return sccs
}

// HasCycles reports whether the graph contains any import cycles.
func (g *Graph) HasCycles() bool {
	return len(g.FindCycles()) > 0
}
