package duplicates

import (
	"github.com/suseejs/duplicates/internal/resolver"
)

// ModuleDeclarations lists the top-level declared names of one module,
// in source order.
type ModuleDeclarations struct {
	Path  string   `json:"path"`
	Names []string `json:"names"`
}

// Declarations parses the batch and returns the top-level declarations
// of every module, in batch order. It rewrites nothing.
func Declarations(modules []Module, opts ...Option) ([]ModuleDeclarations, error) {
	cfg := newConfig(opts)
	if len(modules) == 0 {
		return nil, ErrNoModules
	}

	parsed, err := parseAll(modules, cfg)
	if err != nil {
		return nil, err
	}

	decls := make([]ModuleDeclarations, len(parsed))
	for i, mod := range parsed {
		decls[i] = ModuleDeclarations{Path: mod.Path, Names: resolver.TopLevelNames(mod)}
	}
	return decls, nil
}
