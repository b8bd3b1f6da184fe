package wordsdb

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"wordset.io/wordset/src/internal/dbutil"
	"wordset.io/wordset/src/internal/testutil"
	"wordset.io/wordset/src/worddawg"
	"wordset.io/wordset/src/wordset"
	"wordset.io/wordset/src/wordtrie"
)

func TestSetup(t *testing.T) {
	ctx := testutil.Context(t)

	for _, mkdb := range []func() *sqlx.DB{
		NewMemory,
		func() *sqlx.DB {
			tmpDB, err := Open(filepath.Join(t.TempDir(), "test.db"))
			require.NoError(t, err)
			return tmpDB
		},
	} {
		db := mkdb()
		require.NoError(t, Setup(ctx, db))
		// running it again is a no-op
		require.NoError(t, Setup(ctx, db))
		require.NoError(t, db.Close())
	}
}

func TestPutGet(t *testing.T) {
	ctx := testutil.Context(t)
	db := setup(t)
	x := wordtrie.MustParse("ca[rt]")

	info, err := dbutil.DoTx1(ctx, db, func(tx *sqlx.Tx) (*Info, error) {
		return Put(tx, "cats", x)
	})
	require.NoError(t, err)
	require.Equal(t, "cats", info.Name)
	require.EqualValues(t, 2, info.WordCount)
	require.Equal(t, wordset.FingerprintOf(x), info.Fingerprint)

	tree, err := dbutil.ROTx1(ctx, db, func(tx *sqlx.Tx) (*wordtrie.Tree, error) {
		return Get(tx, wordtrie.New(), "cats")
	})
	require.NoError(t, err)
	testutil.RequireSameSet(t, x, tree)

	dawg, err := dbutil.ROTx1(ctx, db, func(tx *sqlx.Tx) (worddawg.Node, error) {
		return Get(tx, worddawg.New(), "cats")
	})
	require.NoError(t, err)
	testutil.RequireSameSet(t, x, dawg)

	got, err := dbutil.ROTx1(ctx, db, func(tx *sqlx.Tx) (*Info, error) {
		return Inspect(tx, "cats")
	})
	require.NoError(t, err)
	require.Equal(t, info.Fingerprint, got.Fingerprint)
	require.Equal(t, info.CreatedAt.GoTime().Unix(), got.CreatedAt.GoTime().Unix())
}

func TestReplace(t *testing.T) {
	ctx := testutil.Context(t)
	db := setup(t)
	require.NoError(t, dbutil.DoTx(ctx, db, func(tx *sqlx.Tx) error {
		if _, err := Put(tx, "x", wordtrie.MustParse("a")); err != nil {
			return err
		}
		_, err := Put(tx, "x", wordtrie.MustParse("[a-c]"))
		return err
	}))
	infos, err := dbutil.ROTx1(ctx, db, List)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.EqualValues(t, 3, infos[0].WordCount)
}

func TestListFindDrop(t *testing.T) {
	ctx := testutil.Context(t)
	db := setup(t)
	require.NoError(t, dbutil.DoTx(ctx, db, func(tx *sqlx.Tx) error {
		for _, kv := range [][2]string{{"b", "cat"}, {"a", "dog"}, {"c", "c[a]t"}} {
			if _, err := Put(tx, kv[0], wordtrie.MustParse(kv[1])); err != nil {
				return err
			}
		}
		return nil
	}))

	infos, err := dbutil.ROTx1(ctx, db, List)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	require.Equal(t, "a", infos[0].Name)
	require.Equal(t, "c", infos[2].Name)

	names, err := dbutil.ROTx1(ctx, db, func(tx *sqlx.Tx) ([]string, error) {
		return FindByFingerprint(tx, wordset.FingerprintOf(wordtrie.MustParse("cat")))
	})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, names)

	require.NoError(t, dbutil.DoTx(ctx, db, func(tx *sqlx.Tx) error {
		return Drop(tx, "b")
	}))
	err = dbutil.DoTx(ctx, db, func(tx *sqlx.Tx) error {
		return Drop(tx, "b")
	})
	require.ErrorIs(t, err, ErrNotFound)
	_, err = dbutil.ROTx1(ctx, db, func(tx *sqlx.Tx) (*wordtrie.Tree, error) {
		return Get(tx, wordtrie.New(), "b")
	})
	require.ErrorIs(t, err, ErrNotFound)
	_, err = dbutil.ROTx1(ctx, db, func(tx *sqlx.Tx) (*Info, error) {
		return Inspect(tx, "b")
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func setup(t testing.TB) *sqlx.DB {
	db := NewMemory()
	require.NoError(t, Setup(testutil.Context(t), db))
	t.Cleanup(func() { db.Close() })
	return db
}
