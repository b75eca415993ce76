package namegen

import (
	"errors"
	"testing"

	"github.com/suseejs/duplicates/internal/testutil"
)

func TestGlobalCounter(t *testing.T) {
	g := New()
	testutil.NoError(t, g.Configure("run", "d_"), "configure")

	// One counter across distinct base names.
	testutil.Equal(t, "d_foo_1", g.Next("foo"), "first")
	testutil.Equal(t, "d_bar_2", g.Next("bar"), "second")
	testutil.Equal(t, "d_foo_3", g.Next("foo"), "third")
}

func TestNeverIdempotent(t *testing.T) {
	g := New()
	testutil.NoError(t, g.Configure("run", "d_"), "configure")
	a := g.Next("x")
	b := g.Next("x")
	testutil.True(t, a != b, "repeated Next for one base must differ: %q vs %q", a, b)
}

func TestDuplicateConfiguration(t *testing.T) {
	g := New()
	testutil.NoError(t, g.Configure("run", "d_"), "first configure")
	err := g.Configure("run", "e_")
	testutil.Error(t, err, "second configure")
	testutil.True(t, errors.Is(err, ErrDuplicateConfiguration), "sentinel")

	// A distinct namespace key is fine and resets the counter.
	testutil.NoError(t, g.Configure("other", "p_"), "other namespace")
	testutil.Equal(t, "p_foo_1", g.Next("foo"), "counter reset")
}
