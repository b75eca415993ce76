// Package bundle defines the public model for module batches and
// collision reports.
package bundle

import (
	"fmt"
	"strings"
)

// Module is one source file in a batch: an opaque path plus its text.
// Path is the module's identity and is never rewritten; Text is replaced
// by Resolve with the rewritten source.
type Module struct {
	Path string
	Text string
}

// Collision reports a name declared at top level by two or more modules.
type Collision struct {
	Name    string   // the colliding top-level name
	Modules []string // paths of every module declaring it
}

// String returns a human-readable representation of the collision.
// Format: "duplicate declaration \"name\" in: a.js, b.js".
func (c Collision) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "duplicate declaration %q in: ", c.Name)
	b.WriteString(strings.Join(c.Modules, ", "))
	return b.String()
}
