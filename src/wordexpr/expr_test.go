package wordexpr

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordset.io/wordset/src/internal/testutil"
	"wordset.io/wordset/src/worddawg"
	"wordset.io/wordset/src/wordpat"
	"wordset.io/wordset/src/wordset"
	"wordset.io/wordset/src/wordtrie"
)

func P(s string) Pattern {
	return MustPattern(s)
}

// dead matches nothing, its second position is empty
var dead = Pattern{wordpat.All(), {}}

func TestParse(t *testing.T) {
	tcs := []struct {
		In   string
		Want Expr
	}{
		{"cat", P("cat")},
		{"ca[rt]", P("ca[rt]")},
		{"∅", Empty{}},
		{"a|b", Or{P("a"), P("b")}},
		{"a | b & c", Or{P("a"), And{P("b"), P("c")}}},
		{"a - b | c", Or{Diff{P("a"), P("b")}, P("c")}},
		{"a - (b | c)", Diff{P("a"), Or{P("b"), P("c")}}},
		{"[a-c]x-[b-d]x", Diff{P("[a-c]x"), P("[b-d]x")}},
		{" ( a ) ", P("a")},
	}
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			x, err := Parse(tc.In)
			require.NoError(t, err)
			require.Equal(t, tc.Want, x)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for i, in := range []string{"", "a|", "(a", "a)", "&a", "[ab", "a b"} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err, "%q", in)
		})
	}
}

func TestString(t *testing.T) {
	tcs := []struct {
		X    Expr
		Want string
	}{
		{P("ca[r-t]"), "ca[r-t]"},
		{Empty{}, "∅"},
		{Or{P("a"), Or{P("b"), P("c")}}, "(a | b | c)"},
		{And{Or{P("a"), P("b")}, P("c")}, "((a | b) & c)"},
		{Diff{P("a"), Diff{P("b"), P("c")}}, "(a - (b - c))"},
		{dead, "∅"},
		{And{P("ab"), Or{dead, P("[eqs]")}}, "(ab & (∅ | [eqs]))"},
	}
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Equal(t, tc.Want, tc.X.String())
			// printed expressions parse back to the same set
			y, err := Parse(tc.X.String())
			require.NoError(t, err)
			require.True(t, Equals(tc.X, y))
		})
	}
}

func TestContains(t *testing.T) {
	x := MustParse("(ca[rt] | d.g) - dig")
	for _, s := range []string{"car", "cat", "dog", "dug"} {
		assert.True(t, x.Contains(s), s)
	}
	for _, s := range []string{"dig", "ca", "cab", "dogs"} {
		assert.False(t, x.Contains(s), s)
	}
}

func TestIntersects(t *testing.T) {
	type testCase struct {
		A, B       Expr
		Intersects bool
	}
	tcs := []testCase{
		{P("cat"), Empty{}, false},
		{P("cat"), P("cat"), true},
		{P("cat"), P("car"), false},
		{P("ca."), P("c.t"), true},
		{P("ca"), P("cat"), false},
		{Or{P("a"), P("b")}, P("b"), true},
		{And{P("[ab]"), P("[bc]")}, P("b"), true},
		{And{P("[ab]"), P("[bc]")}, P("a"), false},
		{Diff{P("[ab]"), P("a")}, P("a"), false},
		{Diff{P("[ab]"), P("a")}, P("b"), true},
		{Diff{P("[ab]c"), P("a.")}, P("[ab][cd]"), true},
	}
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if tc.Intersects {
				assert.True(t, Intersects(tc.A, tc.B), "%v should intersect %v", tc.A, tc.B)
			} else {
				assert.False(t, Intersects(tc.A, tc.B), "%v should not intersect %v", tc.A, tc.B)
			}
		})
	}
}

func TestSuperset(t *testing.T) {
	type testCase struct {
		Super, Sub Expr
		Superset   bool
	}
	tcs := []testCase{
		{P("ca."), P("cat"), true},
		{P("cat"), P("ca."), false},
		{P("ca."), Empty{}, true},
		{Empty{}, P("a"), false},
		{Empty{}, dead, true},
		{Or{P("[ab]"), P("c")}, P("[a-c]"), true},
		{Or{P("a"), P("c")}, P("b"), false},
		{P("."), Diff{P("[ab]"), P("a")}, true},
		{Diff{P("."), P("a")}, P("[bc]"), true},
		{Diff{P("."), P("a")}, P("[ab]"), false},
	}
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, tc.Superset, Superset(tc.Super, tc.Sub), "superset(%v, %v)", tc.Super, tc.Sub)
			assert.Equal(t, tc.Superset, Subset(tc.Sub, tc.Super))
		})
	}
}

func TestSimplify(t *testing.T) {
	type testCase struct {
		In, Out Expr
	}
	tcs := []testCase{
		{dead, Empty{}},
		{And{P("ca."), P("c.t")}, P("cat")},
		{And{P("ab"), P("a")}, Empty{}},
		{Or{P("cat"), P("car")}, P("ca[rt]")},
		{Or{P("ca."), P("cat")}, P("ca.")},
		{Or{Empty{}, P("a")}, P("a")},
		{Diff{P("a"), P("a")}, Empty{}},
		{Diff{P("a"), P("b")}, P("a")},
		{Diff{P("[ab]"), P("a")}, Diff{P("[ab]"), P("a")}},
		{Or{Or{P("a"), P("b")}, P("c")}, P("[a-c]")},
	}
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			out := Simplify(tc.In)
			require.Equal(t, tc.Out, out, "simplify(%v) = %v", tc.In, out)
			require.True(t, Equals(tc.In, out))
		})
	}
}

func TestSimplifyKeepsSet(t *testing.T) {
	xs := []string{
		"(ca[rt] | d.g) - dig",
		"a & (b | a)",
		"[a-m]. - [h-z]a | zz",
		"(a | b) & (b | c) & (a | c)",
		"... & [ab][ab][ab] - a.. ",
	}
	for i, s := range xs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			x := MustParse(s)
			before := wordset.FingerprintOf(Eval(wordtrie.New(), x))
			after := wordset.FingerprintOf(Eval(wordtrie.New(), Simplify(x)))
			require.Equal(t, before, after, "%v => %v", x, Simplify(x))
		})
	}
}

func TestEval(t *testing.T) {
	x := MustParse("(ca[rt] | d.g) - d[a-t]g")
	tree := Eval(wordtrie.New(), x)
	require.Equal(t, "{car cat dug dvg dwg dxg dyg dzg}", wordset.Describe(tree))

	g := worddawg.NewGraph()
	proto := g.New()
	dawg := Eval(proto, x)
	proto.Release()
	testutil.RequireSameSet(t, tree, dawg)
	dawg.Release()
	require.Equal(t, 0, g.Live())
}

func TestUnion(t *testing.T) {
	require.Equal(t, Empty{}, Union())
	x := Union(P("a"), P("b"), P("c"), P("d"))
	require.Equal(t, P("[a-d]"), Simplify(x))
	require.Equal(t, P("b"), Simplify(Intersection(P("[ab]"), P("[bc]"), P("[bd]"))))
	require.Panics(t, func() { Intersection() })
}
