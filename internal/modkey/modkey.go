// Package modkey normalizes file paths and import specifiers into
// canonical logical-module identities.
//
// Two paths that denote the same logical module ("./a" and "./a/index",
// with or without an extension) must yield the same key, because export
// sites are recorded under the declaring module's key and import sites
// look them up by resolved specifier. Keys are used only for
// export/import resolution; collision detection uses raw module paths.
package modkey

import (
	"path"
	"strings"
)

// indexBasename is the conventional directory-entry module name.
const indexBasename = "index"

// Key is a canonical logical-module identity.
type Key string

// Resolve normalizes a module path into its canonical key: directory
// separators unified, extension stripped, and a trailing "index"
// basename collapsed into its directory.
func Resolve(p string) Key {
	normalized := strings.ReplaceAll(p, "\\", "/")
	normalized = path.Clean(normalized)

	if ext := path.Ext(normalized); ext != "" {
		normalized = normalized[:len(normalized)-len(ext)]
	}

	if path.Base(normalized) == indexBasename {
		normalized = path.Dir(normalized)
	}
	return Key(normalized)
}

// ResolveSpecifier normalizes an import specifier as seen from the
// module at fromPath. Relative specifiers resolve against fromPath's
// directory; absolute specifiers resolve directly. Bare specifiers
// (package imports) are returned unchanged: they never match an
// in-bundle export key, which is the correct behavior for external
// dependencies.
func ResolveSpecifier(specifier, fromPath string) Key {
	if strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") {
		from := strings.ReplaceAll(fromPath, "\\", "/")
		return Resolve(path.Join(path.Dir(from), specifier))
	}
	if strings.HasPrefix(specifier, "/") {
		return Resolve(specifier)
	}
	return Key(specifier)
}
