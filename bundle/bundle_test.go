package bundle

import "testing"

func TestCollisionString(t *testing.T) {
	c := Collision{
		Name:    "foo",
		Modules: []string{"src/a.js", "src/b.js"},
	}
	want := `duplicate declaration "foo" in: src/a.js, src/b.js`
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
