package wordfile

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"wordset.io/wordset/src/internal/testutil"
	"wordset.io/wordset/src/worddawg"
	"wordset.io/wordset/src/wordset"
	"wordset.io/wordset/src/wordtrie"
)

func TestDetect(t *testing.T) {
	tcs := []struct {
		Path   string
		Format Format
		Comp   Compression
		Err    bool
	}{
		{Path: "a.tre", Format: Binary},
		{Path: "dir/a.txt", Format: Words},
		{Path: "a.txt.zst", Format: Words, Comp: Zstd},
		{Path: "a.TRE.xz", Format: Binary, Comp: XZ},
		{Path: "a.tre.gz", Format: Binary, Comp: Gzip},
		{Path: "a.zst", Err: true},
		{Path: "a.json", Err: true},
		{Path: "cat", Err: true},
	}
	for _, tc := range tcs {
		f, c, err := Detect(tc.Path)
		if tc.Err {
			require.ErrorIs(t, err, ErrUnsupportedFormat, tc.Path)
			require.False(t, IsPath(tc.Path))
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.Format, f, tc.Path)
		require.Equal(t, tc.Comp, c, tc.Path)
		require.True(t, IsPath(tc.Path))
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := testutil.Context(t)
	x := wordtrie.MustParse("ca[rt]")
	x.UnionWith(wordtrie.MustParse("d[ou]g"))
	x.SetEnd(true)
	for _, name := range []string{"x.tre", "x.txt", "x.tre.zst", "x.txt.zst", "x.tre.xz", "x.txt.gz"} {
		t.Run(name, func(t *testing.T) {
			p := testutil.TempPath(t, name)
			require.NoError(t, Save(ctx, x, p))

			tree, err := Load(ctx, wordtrie.New(), p)
			require.NoError(t, err)
			testutil.RequireSameSet(t, x, tree)

			dawg, err := Load(ctx, worddawg.New(), p)
			require.NoError(t, err)
			testutil.RequireSameSet(t, x, dawg)
		})
	}
}

func TestLoadWordList(t *testing.T) {
	ctx := testutil.Context(t)
	p := testutil.TempPath(t, "in.txt")
	require.NoError(t, os.WriteFile(p, []byte("c.t\nd[o-u]g\n"), 0o644))
	n, err := Load(ctx, wordtrie.New(), p)
	require.NoError(t, err)
	require.Equal(t, 26+7, wordset.Len(n))
	require.True(t, wordset.Contains(n, "dug"))
}

func TestLoadErrors(t *testing.T) {
	ctx := testutil.Context(t)

	_, err := Load(ctx, wordtrie.New(), testutil.TempPath(t, "missing.tre"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(ctx, wordtrie.New(), testutil.TempPath(t, "x.csv"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	p := testutil.TempPath(t, "bad.txt")
	require.NoError(t, os.WriteFile(p, []byte("cat\n[ab\n"), 0o644))
	_, err = Load(ctx, wordtrie.New(), p)
	require.ErrorContains(t, err, "line 2")

	p = testutil.TempPath(t, "short.tre")
	require.NoError(t, os.WriteFile(p, []byte{0, 0, 0, 4}, 0o644))
	_, err = Load(ctx, wordtrie.New(), p)
	require.Error(t, err)
}
