package unionfind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnionFind(t *testing.T) {
	u := New()
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		u.Add(k)
	}
	require.False(t, u.Same("a", "b"))

	u.Union("c", "d")
	u.Union("b", "d")
	u.Union("e", "a")
	require.True(t, u.Same("b", "c"))
	require.True(t, u.Same("a", "e"))
	require.False(t, u.Same("a", "b"))

	root, ok := u.Find("d")
	require.True(t, ok)
	require.Equal(t, "b", root)
	root, _ = u.Find("e")
	require.Equal(t, "a", root)

	_, ok = u.Find("zzz")
	require.False(t, ok)
	require.False(t, u.Same("zzz", "a"))

	u.Union("x", "y")
	_, ok = u.Find("x")
	require.True(t, ok)
	require.True(t, u.Same("x", "y"))
}
