// Package duplicates renames colliding top-level declarations across a
// bundle of modules and rewrites every reference, export, and import
// that the renames touch.
package duplicates

import (
	"github.com/suseejs/duplicates/bundle"
	"github.com/suseejs/duplicates/internal/namegen"
)

// Type aliases for public API - all types come from the bundle subpackage.

// Module is one source module of a bundle: its path and its text.
type Module = bundle.Module

// Collision is a top-level name declared by two or more modules.
type Collision = bundle.Collision

// DefaultPrefix is the prefix of generated names when WithPrefix is
// not used.
const DefaultPrefix = namegen.DefaultPrefix
