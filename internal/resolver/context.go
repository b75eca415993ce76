package resolver

import (
	"log/slog"

	"github.com/suseejs/duplicates/internal/ast"
	"github.com/suseejs/duplicates/internal/modkey"
	"github.com/suseejs/duplicates/internal/namegen"
	"github.com/suseejs/duplicates/internal/types"
)

// Module is one parsed module flowing through the pipeline. Path is the
// raw module identity (collision detection keys on it, pre-normalization);
// the tree is mutated in place by the rewrite stages.
type Module struct {
	Path   string
	Source []byte
	Prog   *ast.Program
}

// Key returns the module's canonical logical identity, used only for
// export/import resolution.
func (m *Module) Key() modkey.Key {
	return modkey.Resolve(m.Path)
}

// renameEntry records one rename visible to expression rewriting:
// the original base name, the module it applies in, and the fresh name.
type renameEntry struct {
	base    string
	module  string // raw module path
	newName string
}

// exportEntry records a rename visible to importers. It is keyed by
// canonical module key rather than raw path because importers address
// modules by specifier, not by the declaring module's own path.
type exportEntry struct {
	base    string
	key     modkey.Key
	newName string
}

type renameKey struct {
	base   string
	module string
}

type exportKey struct {
	base string
	key  modkey.Key
}

// resolverContext carries the declaration index and the three
// append-only rename maps across pipeline stages. All state lives for
// one Resolve invocation.
type resolverContext struct {
	modules []*Module
	gen     *namegen.Generator

	// publishTransitive, set by the fixpoint schedule, lets the export
	// rewriter publish import-map-sourced renames so chains deeper than
	// one re-export hop converge.
	publishTransitive bool

	// index maps a declared name to the distinct module paths declaring
	// it at top level, in first-seen order. Populated by the collect
	// stage and never mutated afterward.
	index map[string][]string

	callSite    []renameEntry
	callSiteIdx map[renameKey]string

	imports   []renameEntry
	importIdx map[renameKey]string

	exports   []exportEntry
	exportIdx map[exportKey]string

	types.Logger
}

func newResolverContext(mods []*Module, gen *namegen.Generator, logger *slog.Logger) *resolverContext {
	return &resolverContext{
		modules:     mods,
		gen:         gen,
		index:       make(map[string][]string),
		callSiteIdx: make(map[renameKey]string),
		importIdx:   make(map[renameKey]string),
		exportIdx:   make(map[exportKey]string),
		Logger:      types.Logger{L: logger},
	}
}

// addDeclaration records a top-level declaration in the index, keeping
// one entry per declaring module even when a module declares the same
// name more than once (var redeclaration).
func (ctx *resolverContext) addDeclaration(name, modulePath string) {
	for _, p := range ctx.index[name] {
		if p == modulePath {
			return
		}
	}
	ctx.index[name] = append(ctx.index[name], modulePath)
}

// colliding reports whether a name is declared at top level in two or
// more distinct modules.
func (ctx *resolverContext) colliding(name string) bool {
	return len(ctx.index[name]) > 1
}

func (ctx *resolverContext) addCallSite(base, modulePath, newName string) {
	ctx.callSite = append(ctx.callSite, renameEntry{base: base, module: modulePath, newName: newName})
	k := renameKey{base: base, module: modulePath}
	if _, ok := ctx.callSiteIdx[k]; !ok {
		ctx.callSiteIdx[k] = newName
	}
}

func (ctx *resolverContext) addImport(base, modulePath, newName string) {
	ctx.imports = append(ctx.imports, renameEntry{base: base, module: modulePath, newName: newName})
	k := renameKey{base: base, module: modulePath}
	if _, ok := ctx.importIdx[k]; !ok {
		ctx.importIdx[k] = newName
	}
}

func (ctx *resolverContext) addExport(base string, key modkey.Key, newName string) {
	ctx.exports = append(ctx.exports, exportEntry{base: base, key: key, newName: newName})
	k := exportKey{base: base, key: key}
	if _, ok := ctx.exportIdx[k]; !ok {
		ctx.exportIdx[k] = newName
	}
}

// lookupLocal resolves a rename for expression rewriting within a
// module. The call-site map is always preferred over the import map
// when both match the same (base, module) pair.
func (ctx *resolverContext) lookupLocal(base, modulePath string) (string, bool) {
	k := renameKey{base: base, module: modulePath}
	if newName, ok := ctx.callSiteIdx[k]; ok {
		return newName, true
	}
	if newName, ok := ctx.importIdx[k]; ok {
		return newName, true
	}
	return "", false
}

func (ctx *resolverContext) lookupCallSite(base, modulePath string) (string, bool) {
	newName, ok := ctx.callSiteIdx[renameKey{base: base, module: modulePath}]
	return newName, ok
}

func (ctx *resolverContext) lookupImport(base, modulePath string) (string, bool) {
	newName, ok := ctx.importIdx[renameKey{base: base, module: modulePath}]
	return newName, ok
}

func (ctx *resolverContext) lookupExport(base string, key modkey.Key) (string, bool) {
	newName, ok := ctx.exportIdx[exportKey{base: base, key: key}]
	return newName, ok
}

// mapSizes returns the lengths of the three rename maps; the fixpoint
// schedule repeats rewrite cycles until these stop growing.
func (ctx *resolverContext) mapSizes() (callSite, imports, exports int) {
	return len(ctx.callSite), len(ctx.imports), len(ctx.exports)
}
