// Package integration provides integration tests against a realistic
// module bundle.
//
// These tests load the full testdata/webapp/ folder and make
// assertions against the resolved output. The fixture bundle mixes
// plain JavaScript and TypeScript modules and declares "log" and
// "normalize" in more than one module on purpose.
package integration

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/suseejs/duplicates"
)

const webappPath = "testdata/webapp"

var (
	webappOnce     sync.Once
	webappResolved []duplicates.Module
	webappErr      error
)

// loadWebapp resolves the fixture bundle once and caches the result.
// All tests share the same resolved output.
func loadWebapp(t *testing.T) map[string]string {
	t.Helper()
	webappOnce.Do(func() {
		src, err := duplicates.DirTree(webappPath)
		if err != nil {
			webappErr = err
			return
		}
		webappResolved, webappErr = duplicates.Load(src)
	})
	require.NoError(t, webappErr, "failed to load webapp bundle")

	byPath := make(map[string]string, len(webappResolved))
	for _, mod := range webappResolved {
		byPath[mod.Path] = mod.Text
	}
	return byPath
}

func TestWebappLoads(t *testing.T) {
	bundle := loadWebapp(t)
	require.Len(t, bundle, 5)
	require.Contains(t, bundle, "app.js")
	require.Contains(t, bundle, "api/client.js")
	require.Contains(t, bundle, "state.ts")
	require.Contains(t, bundle, "util/parse.js")
	require.Contains(t, bundle, "util/text.js")
}
