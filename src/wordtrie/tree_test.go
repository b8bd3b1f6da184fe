package wordtrie

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wordset.io/wordset/src/wordpat"
	"wordset.io/wordset/src/wordset"
)

func TestInsertRemove(t *testing.T) {
	tr := New()
	require.True(t, tr.IsEmpty())
	tr.Insert(wordpat.MustParse("ca[rt]"))
	tr.Insert(wordpat.MustParse("dog"))
	require.Equal(t, 3, tr.Len())
	require.True(t, tr.Has("car"))
	require.False(t, tr.Has("ca"))
	require.False(t, tr.Has("CAR"))

	tr.Remove(wordpat.MustParse("c.."))
	require.Equal(t, "{dog}", tr.String())
	require.False(t, tr.IsLeaf())
	tr.Prune()
	_, ok := tr.Child(2)
	require.False(t, ok)
}

func TestCloneIsDeep(t *testing.T) {
	a := MustParse("[ab]c")
	b := a.Clone()
	b.Remove(wordpat.MustParse("ac"))
	require.Equal(t, "{ac bc}", a.String())
	require.Equal(t, "{bc}", b.String())

	// FromWord gives every symbol its own subtree
	x, _ := a.Child(0)
	y, _ := a.Child(1)
	require.NotSame(t, x, y)
}

func TestSetOps(t *testing.T) {
	type testCase struct {
		A, B string
		Op   func(a, b *Tree)
		Want string
	}
	tcs := []testCase{
		{"ca[rt]", "c[ao]t", (*Tree).UnionWith, "{car cat cot}"},
		{"ca[rt]", "c[ao]t", (*Tree).IntersectWith, "{cat}"},
		{"ca[rt]", "c[ao]t", (*Tree).SubtractWith, "{car}"},
		{"ca[rt]", "dog", (*Tree).IntersectWith, "{}"},
		{"", "a", (*Tree).UnionWith, "{ a}"},
	}
	for _, tc := range tcs {
		a := MustParse(tc.A)
		tc.Op(a, MustParse(tc.B))
		require.Equal(t, tc.Want, a.String(), "%s %s", tc.A, tc.B)
	}
}

func TestAll(t *testing.T) {
	require.Equal(t, 26*26, All(2).Len())
	require.Equal(t, []int{0, 0, 676}, wordset.Widths(All(2)))
	require.True(t, All(0).IsEnd())
}

func TestClear(t *testing.T) {
	tr := MustParse("...")
	tr.Clear()
	require.True(t, tr.IsEmpty())
	require.True(t, tr.IsLeaf())
}

func TestParseError(t *testing.T) {
	_, err := Parse("ab]")
	require.Error(t, err)
	require.Panics(t, func() { MustParse("[ab") })
}
