package wordcmd

import (
	"context"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/star"

	"wordset.io/wordset/src/internal/wordsdb"
)

// Root
func Root() star.Command {
	return rootCmd
}

var rootCmd = star.NewDir(star.Metadata{Short: "word set engine"},
	map[star.Symbol]star.Command{
		"count":       countCmd,
		"has":         hasCmd,
		"ls":          lsCmd,
		"print":       printCmd,
		"widths":      widthsCmd,
		"fingerprint": fingerprintCmd,
		"extract":     extractCmd,

		"convert":  convertCmd,
		"union":    unionCmd,
		"simplify": simplifyCmd,
		"dawg":     dawgCmd,

		"db":  dbCmd,
		"env": envCmd,
	},
)

var envCmd = star.Command{
	Metadata: star.Metadata{Short: "print the environment variables and defaults"},
	F: func(c star.Context) error {
		m := map[string]string{
			"WORDSET_DB": getDBPath(),
		}
		ks := slices.Collect(maps.Keys(m))
		slices.Sort(ks)
		for _, k := range ks {
			c.Printf("%s=%s\n", k, m[k])
		}
		return c.StdOut.Flush()
	},
}

var inputParam = star.Param[string]{
	Name:  "input",
	Parse: star.ParseString,
}

var inputsParam = star.Param[string]{
	Name:     "input",
	Repeated: true,
	Parse:    star.ParseString,
}

var outputParam = star.Param[string]{
	Name:  "output",
	Parse: star.ParseString,
}

var wordsParam = star.Param[string]{
	Name:     "word",
	Repeated: true,
	Parse:    star.ParseString,
}

var nameParam = star.Param[string]{
	Name:  "name",
	Parse: star.ParseString,
}

var dbParam = star.Param[*sqlx.DB]{
	Name:    "db",
	Default: star.Ptr(""),
	Parse: func(p string) (*sqlx.DB, error) {
		if p == "" {
			p = getDBPath()
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, err
		}
		db, err := wordsdb.Open(p)
		if err != nil {
			return nil, err
		}
		if err := wordsdb.Setup(context.Background(), db); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	},
}

func getDBPath() string {
	p := os.Getenv("WORDSET_DB")
	if p == "" {
		p = filepath.Join(os.TempDir(), "wordset", "wordset.db")
	}
	return p
}
