package duplicates

import (
	"github.com/suseejs/duplicates/internal/resolver"
)

// ModuleOrder describes the import structure of a bundle.
type ModuleOrder struct {
	// Order lists module paths with imported modules before their
	// importers, the order a bundler would concatenate them in.
	// Modules inside import cycles are excluded.
	Order []string

	// Cycles lists import cycles by canonical module key.
	Cycles [][]string
}

// DependencyOrder parses the batch and returns its import structure.
// Specifiers pointing outside the batch contribute no edges.
func DependencyOrder(modules []Module, opts ...Option) (*ModuleOrder, error) {
	cfg := newConfig(opts)
	if len(modules) == 0 {
		return nil, ErrNoModules
	}

	parsed, err := parseAll(modules, cfg)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]string, len(parsed))
	for _, mod := range parsed {
		key := string(mod.Key())
		if _, ok := byKey[key]; !ok {
			byKey[key] = mod.Path
		}
	}

	g := resolver.ImportGraph(parsed)
	order, _ := g.BundleOrder()
	cycles := g.FindCycles()

	result := &ModuleOrder{Cycles: cycles}
	cyclic := make(map[string]struct{})
	for _, cycle := range cycles {
		for _, key := range cycle {
			cyclic[key] = struct{}{}
		}
	}
	for _, key := range order {
		if _, ok := cyclic[key]; ok {
			continue
		}
		result.Order = append(result.Order, byKey[key])
	}
	return result, nil
}
