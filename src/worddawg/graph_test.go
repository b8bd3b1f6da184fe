package worddawg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wordset.io/wordset/src/internal/testutil"
	"wordset.io/wordset/src/wordpat"
	"wordset.io/wordset/src/wordset"
	"wordset.io/wordset/src/wordtrie"
)

func sym(c byte) Symbol {
	s, err := wordpat.SymbolOf(c)
	if err != nil {
		panic(err)
	}
	return s
}

func readWords(t testing.TB, g *Graph, words ...string) Node {
	proto := g.New()
	defer proto.Release()
	n, err := wordset.ReadWords(strings.NewReader(strings.Join(words, "\n")), proto, nil)
	require.NoError(t, err)
	return n
}

func TestEmpty(t *testing.T) {
	g := NewGraph()
	n := g.New()
	require.False(t, n.IsEnd())
	require.True(t, wordset.IsLeaf(n))
	require.Equal(t, 1, g.Live())
	n.Release()
	require.Equal(t, 0, g.Live())
}

func TestSetEnd(t *testing.T) {
	g := NewGraph()
	n := g.New()
	n.SetEnd(true)
	n.SetEnd(true)
	require.True(t, n.IsEnd())
	// the terminal is held by the graph and by n
	require.Equal(t, 2, g.slots[EndID].refs)
	n.SetEnd(false)
	require.False(t, n.IsEnd())
	require.Equal(t, 1, g.slots[EndID].refs)
}

func TestFromWordShares(t *testing.T) {
	g := NewGraph()
	n := MustParse(g, "[abc]d")
	// root, the shared node for "d", and the leaf
	require.Equal(t, 3, g.Live())
	a, ok := n.Child(sym('a'))
	require.True(t, ok)
	b, _ := n.Child(sym('b'))
	require.True(t, Same(a, b))
	require.Equal(t, 3, a.Refs())
	require.Len(t, a.Parents(), 1)
	require.Equal(t, []string{"ad", "bd", "cd"}, collect(t, n))
}

func TestMutateShared(t *testing.T) {
	g := NewGraph()
	n := MustParse(g, "[ab]c")
	a, _ := n.Child(sym('a'))
	require.Panics(t, func() { a.SetEnd(true) })
	require.Panics(t, func() { a.ClearChild(sym('c')) })

	c := n.Clone()
	require.Panics(t, func() { n.SetEnd(true) })
	c.Release()
	require.NotPanics(t, func() { n.SetEnd(true) })
}

func TestMutChildCopies(t *testing.T) {
	g := NewGraph()
	n := MustParse(g, "[ab]c")
	a, _ := n.Child(sym('a'))
	require.Equal(t, 2, a.Refs())
	d, ok := n.MutChild(sym('a'))
	require.True(t, ok)
	require.False(t, Same(a, d))
	require.Equal(t, 1, a.Refs())
	require.Equal(t, 1, d.Refs())
	d.SetEnd(true)
	require.Equal(t, []string{"a", "ac", "bc"}, collect(t, n))

	// the leaf below is now shared by a and d
	leaf, _ := d.Child(sym('c'))
	require.Equal(t, 2, leaf.Refs())
	require.Len(t, leaf.Parents(), 2)

	c := n.Clone()
	defer c.Release()
	require.Panics(t, func() { n.MutChild(sym('b')) })
}

func TestStaleHandle(t *testing.T) {
	g := NewGraph()
	n := g.New()
	n.Release()
	require.Panics(t, func() { n.IsEnd() })
	// the slot is reused, the old handle is still invalid
	m := g.New()
	require.Equal(t, n.ID(), m.ID())
	require.Panics(t, func() { n.IsEnd() })
	require.False(t, m.IsEnd())
}

func TestOtherGraph(t *testing.T) {
	n := New()
	m := New()
	require.Panics(t, func() { n.SetChild(sym('a'), m) })
}

func TestReleaseFreesChildren(t *testing.T) {
	g := NewGraph()
	n := readWords(t, g, "cat", "car", "dog")
	require.Greater(t, g.Live(), 0)
	n.Release()
	require.Equal(t, 0, g.Live())
	require.Equal(t, 1, g.slots[EndID].refs)
}

func TestReleaseParentDropsBackRef(t *testing.T) {
	g := NewGraph()
	leaf := g.New()
	leaf.SetEnd(true)
	p := g.New()
	p.SetChild(sym('a'), leaf.Clone())
	require.Len(t, leaf.Parents(), 1)
	p.Release()
	require.Empty(t, leaf.Parents())
	require.Equal(t, 1, leaf.Refs())
}

func TestWeakParentGone(t *testing.T) {
	g := NewGraph()
	leaf := g.New()
	leaf.SetEnd(true)
	p := g.New()
	p.SetChild(sym('a'), leaf.Clone())
	// forge a stale back reference to check that it is skipped
	g.slots[leaf.id].parents[p.id] = p.gen + 1
	require.Empty(t, leaf.Parents())
	_, ok := g.slots[leaf.id].parents[p.id]
	require.False(t, ok)
}

func TestFindEq(t *testing.T) {
	g := NewGraph()
	n := readWords(t, g, "at", "bt")
	a, _ := n.Child(sym('a'))
	b, _ := n.Child(sym('b'))
	require.False(t, Same(a, b))
	ta, _ := a.Child(sym('t'))
	tb, _ := b.Child(sym('t'))
	// both leaves point only at the terminal
	twin, ok := g.FindEq(tb)
	require.True(t, ok)
	require.True(t, Same(twin, ta))

	empty := g.New()
	_, ok = g.FindEq(empty)
	require.False(t, ok)
}

func TestMerge(t *testing.T) {
	g := NewGraph()
	n := readWords(t, g, "cat", "car")
	// root, c, a, r, t
	require.Equal(t, 5, g.Live())
	before := wordset.FingerprintOf(n)

	count := g.Merge(n)
	require.Equal(t, 1, count)
	require.Equal(t, 4, g.Live())
	require.Equal(t, before, wordset.FingerprintOf(n))
	require.Equal(t, []string{"car", "cat"}, collect(t, n))

	a, _ := n.Child(sym('c'))
	a, _ = a.Child(sym('a'))
	r, _ := a.Child(sym('r'))
	tt, _ := a.Child(sym('t'))
	require.True(t, Same(r, tt))

	require.Equal(t, 0, g.Merge(n))
}

func TestMergeSuffixes(t *testing.T) {
	g := NewGraph()
	words := []string{"bat", "cat", "hat", "bit", "cit", "hit"}
	n := readWords(t, g, words...)
	tree := wordtrie.New()
	for _, w := range words {
		tree.Insert(wordpat.MustParse(w))
	}
	g.Merge(n)
	// root, then one node for each remaining length
	require.Equal(t, 4, g.Live())
	testutil.RequireSameSet(t, n, tree)
}

func TestMergeRandom(t *testing.T) {
	rng := testutil.Rand(t)
	for i := 0; i < 20; i++ {
		g := NewGraph()
		proto := g.New()
		n := testutil.RandomNode(rng, proto, 0.15, 4)
		proto.Release()
		tree := wordset.Convert(wordtrie.New(), n)
		live := g.Live()
		g.Merge(n)
		require.LessOrEqual(t, g.Live(), live)
		testutil.RequireSameSet(t, n, tree)

		// merging is idempotent
		live = g.Live()
		require.Equal(t, 0, g.Merge(n))
		require.Equal(t, live, g.Live())

		n.Release()
		require.Equal(t, 0, g.Live())
	}
}

func TestMergeMinimal(t *testing.T) {
	g := NewGraph()
	// every string of length 3 over {a, b}
	n := readWords(t, g, "[ab][ab][ab]")
	require.Equal(t, 15, g.Live())
	require.Equal(t, 11, g.Merge(n))
	require.Equal(t, 4, g.Live())
	require.Equal(t, 8, wordset.Len(n))
}

func TestPruneKeepsSharing(t *testing.T) {
	g := NewGraph()
	n := MustParse(g, strings.Repeat("[ab]", 10))
	g.Merge(n)
	live := g.Live()
	wordset.Prune(n)
	require.Equal(t, live, g.Live())
	require.Equal(t, 1<<10, wordset.Len(n))

	// an empty branch is cut without copying its shared sibling
	a, _ := n.Child(sym('a'))
	n.SetChild(sym('c'), g.New())
	wordset.Prune(n)
	_, ok := n.Child(sym('c'))
	require.False(t, ok)
	a2, _ := n.Child(sym('a'))
	require.True(t, Same(a, a2))
	require.Equal(t, live, g.Live())

	n.Release()
	require.Equal(t, 0, g.Live())
}

func collect(t testing.TB, n Node) []string {
	var ret []string
	ctx := testutil.Context(t)
	it := wordset.Strings(n)
	var x string
	for it.Next(ctx, &x) == nil {
		ret = append(ret, x)
	}
	return ret
}
