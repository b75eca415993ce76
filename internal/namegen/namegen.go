// Package namegen produces fresh, collision-free identifiers.
//
// Numbering is global: one counter serves every base name, so the first
// two renames of a run get suffixes _1 and _2 in generation order even
// when they rename different names. The suffix sequence is an observable
// contract, which is why the counter is a single serialized sequence.
package namegen

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
)

// DefaultPrefix is the conventional rename prefix.
const DefaultPrefix = "d_"

// ErrDuplicateConfiguration is returned when a namespace key is
// configured twice on the same generator.
var ErrDuplicateConfiguration = errors.New("namespace already configured")

// Generator produces unique names from a fixed prefix and a single
// monotonically increasing counter. One Generator serves one resolve
// run; create a fresh one per run unless cross-run uniqueness is wanted.
type Generator struct {
	mu         sync.Mutex
	prefix     string
	counter    uint64
	namespaces map[string]bool
}

// New returns an unconfigured Generator.
func New() *Generator {
	return &Generator{namespaces: make(map[string]bool)}
}

// Configure registers a namespace key and sets the generation prefix,
// resetting the counter. Configuring the same key twice fails with
// ErrDuplicateConfiguration; callers configure exactly once per run.
func (g *Generator) Configure(namespaceKey, prefix string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.namespaces[namespaceKey] {
		return fmt.Errorf("namegen: %w: %q", ErrDuplicateConfiguration, namespaceKey)
	}
	g.namespaces[namespaceKey] = true
	g.prefix = prefix
	g.counter = 0
	return nil
}

// Next consumes one unit of the counter and returns the fresh name
// prefix + originalName + "_" + counter. Generation is never
// idempotent: calling twice for the same base yields distinct names.
func (g *Generator) Next(originalName string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return g.prefix + originalName + "_" + strconv.FormatUint(g.counter, 10)
}
