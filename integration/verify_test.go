package integration

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/suseejs/duplicates"
)

func TestVerifyBeforeAndAfterResolve(t *testing.T) {
	src := duplicates.MustDirTree(webappPath)

	collisions, err := duplicates.LoadVerify(src)
	require.NoError(t, err)
	require.Len(t, collisions, 2)
	require.Equal(t, "log", collisions[0].Name)
	require.Equal(t, []string{"api/client.js", "util/text.js"}, collisions[0].Modules)
	require.Equal(t, "normalize", collisions[1].Name)
	require.Equal(t, []string{"util/parse.js", "util/text.js"}, collisions[1].Modules)

	resolved, err := duplicates.Load(src)
	require.NoError(t, err)
	clean, err := duplicates.Verify(resolved)
	require.NoError(t, err)
	require.Empty(t, clean)
}

func TestResolveIsStableOnCleanBundle(t *testing.T) {
	resolved, err := duplicates.Load(duplicates.MustDirTree(webappPath))
	require.NoError(t, err)

	// A second resolve over the already-clean output changes nothing:
	// no name collides anymore, so no module is rewritten.
	again, err := duplicates.Resolve(resolved)
	require.NoError(t, err)
	require.Equal(t, resolved, again)
}
