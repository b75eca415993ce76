package integration

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/suseejs/duplicates"
)

func TestWebappDependencyOrder(t *testing.T) {
	mods, err := duplicates.ReadModules(duplicates.MustDirTree(webappPath))
	require.NoError(t, err)

	order, err := duplicates.DependencyOrder(mods)
	require.NoError(t, err)
	require.Empty(t, order.Cycles)
	require.Len(t, order.Order, 5)

	pos := make(map[string]int, len(order.Order))
	for i, path := range order.Order {
		pos[path] = i
	}
	// app.js imports everything else and must come last.
	require.Equal(t, len(order.Order)-1, pos["app.js"])
	// client.js depends on parse.js.
	require.Less(t, pos["util/parse.js"], pos["api/client.js"])
}
