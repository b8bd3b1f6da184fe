package wordcmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"

	"wordset.io/wordset/src/internal/dbutil"
	"wordset.io/wordset/src/internal/wordsdb"
	"wordset.io/wordset/src/wordfile"
	"wordset.io/wordset/src/wordset"
	"wordset.io/wordset/src/wordtrie"
)

var dbCmd = star.NewDir(star.Metadata{Short: "manage the catalog of named sets"},
	map[star.Symbol]star.Command{
		"put":  dbPutCmd,
		"get":  dbGetCmd,
		"ls":   dbLsCmd,
		"find": dbFindCmd,
		"drop": dbDropCmd,
	},
)

var dbPutCmd = star.Command{
	Metadata: star.Metadata{Short: "store a set under a name"},
	Flags:    []star.IParam{dbParam},
	Pos:      []star.IParam{nameParam, inputParam},
	F: func(c star.Context) error {
		ctx := c.Context
		db := dbParam.Load(c)
		defer db.Close()
		t, err := Load(ctx, wordtrie.New(), inputParam.Load(c))
		if err != nil {
			return err
		}
		info, err := dbutil.DoTx1(ctx, db, func(tx *sqlx.Tx) (*wordsdb.Info, error) {
			return wordsdb.Put(tx, nameParam.Load(c), t)
		})
		if err != nil {
			return err
		}
		logctx.Infof(ctx, "stored %d strings as %s", info.WordCount, info.Name)
		c.Printf("%v\n", info.Fingerprint)
		return c.StdOut.Flush()
	},
}

var dbGetCmd = star.Command{
	Metadata: star.Metadata{Short: "write a stored set to a word file, or list it"},
	Flags:    []star.IParam{dbParam},
	Pos:      []star.IParam{nameParam, optOutputParam},
	F: func(c star.Context) error {
		ctx := c.Context
		db := dbParam.Load(c)
		defer db.Close()
		name := nameParam.Load(c)
		t, err := dbutil.ROTx1(ctx, db, func(tx *sqlx.Tx) (*wordtrie.Tree, error) {
			return wordsdb.Get(tx, wordtrie.New(), name)
		})
		if err != nil {
			return err
		}
		if out := optOutputParam.Load(c); out != "" {
			return wordfile.Save(ctx, t, out)
		}
		if err := wordset.WriteWords(ctx, c.StdOut, t); err != nil {
			return err
		}
		return c.StdOut.Flush()
	},
}

var optOutputParam = star.Param[string]{
	Name:    "output",
	Default: star.Ptr(""),
	Parse:   star.ParseString,
}

var dbLsCmd = star.Command{
	Metadata: star.Metadata{Short: "list the stored sets"},
	Flags:    []star.IParam{dbParam},
	F: func(c star.Context) error {
		db := dbParam.Load(c)
		defer db.Close()
		infos, err := dbutil.ROTx1(c.Context, db, wordsdb.List)
		if err != nil {
			return err
		}
		w := c.StdOut
		fmtStr := "%-16s %-10v %-20v %v\n"
		fmt.Fprintf(w, fmtStr, "NAME", "STRINGS", "CREATED_AT", "FINGERPRINT")
		for _, info := range infos {
			createdAt := info.CreatedAt.GoTime().Local().Format("2006-01-02 15:04:05")
			fmt.Fprintf(w, fmtStr, info.Name, info.WordCount, createdAt, info.Fingerprint)
		}
		return w.Flush()
	},
}

var dbFindCmd = star.Command{
	Metadata: star.Metadata{Short: "list the stored sets holding the same strings as a set"},
	Flags:    []star.IParam{dbParam},
	Pos:      []star.IParam{inputParam},
	F: func(c star.Context) error {
		ctx := c.Context
		db := dbParam.Load(c)
		defer db.Close()
		t, err := Load(ctx, wordtrie.New(), inputParam.Load(c))
		if err != nil {
			return err
		}
		names, err := dbutil.ROTx1(ctx, db, func(tx *sqlx.Tx) ([]string, error) {
			return wordsdb.FindByFingerprint(tx, wordset.FingerprintOf(t))
		})
		if err != nil {
			return err
		}
		for _, name := range names {
			c.Printf("%s\n", name)
		}
		return c.StdOut.Flush()
	},
}

var dbDropCmd = star.Command{
	Metadata: star.Metadata{Short: "remove a stored set"},
	Flags:    []star.IParam{dbParam},
	Pos:      []star.IParam{nameParam},
	F: func(c star.Context) error {
		db := dbParam.Load(c)
		defer db.Close()
		return dbutil.DoTx(c.Context, db, func(tx *sqlx.Tx) error {
			return wordsdb.Drop(tx, nameParam.Load(c))
		})
	},
}
