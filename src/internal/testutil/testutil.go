package testutil

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"wordset.io/wordset/src/wordpat"
	"wordset.io/wordset/src/wordset"
)

type testKey struct {
	T *testing.T
	B *testing.B
}

func newTestKey(x testing.TB) testKey {
	switch x := x.(type) {
	case *testing.T:
		return testKey{T: x}
	case *testing.B:
		return testKey{B: x}
	default:
		panic(x)
	}
}

var ctxs = map[testKey]context.Context{}

func Context(t testing.TB) context.Context {
	k := newTestKey(t)
	ctx, exists := ctxs[k]
	if !exists {
		ctx = context.Background()
		var cf context.CancelFunc
		ctx, cf = context.WithCancel(ctx)
		t.Cleanup(cf)
		ctxs[k] = ctx
	}
	return ctx
}

// Rand returns a deterministic random source seeded from the test name.
func Rand(t testing.TB) *rand.Rand {
	var seed uint64
	for _, c := range t.Name() {
		seed = seed*31 + uint64(c)
	}
	return rand.New(rand.NewPCG(seed, 0))
}

// TempPath returns a path named name in a directory removed after the test.
func TempPath(t testing.TB, name string) string {
	return filepath.Join(t.TempDir(), name)
}

// RandomNode builds a random set in the representation of proto.
// Each branch is present with probability branchP, and no string is longer
// than depth.
func RandomNode[N wordset.Node[N]](rng *rand.Rand, proto N, branchP float64, depth int) N {
	n := proto.Empty()
	n.SetEnd(rng.IntN(2) == 0)
	if depth == 0 {
		return n
	}
	for s := wordset.Symbol(0); s < wordpat.AlphabetSize; s++ {
		if rng.Float64() >= branchP {
			continue
		}
		n.SetChild(s, RandomNode(rng, proto, branchP, depth-1))
	}
	return n
}

// RandomWords returns count random patterns.
func RandomWords(rng *rand.Rand, count, maxLen int) []wordpat.Word {
	ret := make([]wordpat.Word, count)
	for i := range ret {
		ret[i] = wordpat.RandomWord(rng, 0.2, 0.3, maxLen)
	}
	return ret
}

// RequireSameSet fails the test if a and b hold different strings.
func RequireSameSet[A wordset.Reader[A], B wordset.Reader[B]](t testing.TB, a A, b B) {
	t.Helper()
	require.Equal(t, wordset.Describe(a), wordset.Describe(b))
	require.True(t, wordset.Equal(a, b), "%v != %v", wordset.Describe(a), wordset.Describe(b))
	require.Equal(t, wordset.FingerprintOf(a), wordset.FingerprintOf(b))
}
