package wordcmd

import (
	"fmt"

	"go.brendoncarroll.net/exp/streams"
	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"

	"wordset.io/wordset/src/wordexpr"
	"wordset.io/wordset/src/wordfile"
	"wordset.io/wordset/src/wordset"
	"wordset.io/wordset/src/wordtrie"
)

var countCmd = star.Command{
	Metadata: star.Metadata{Short: "print the number of strings in a set"},
	Pos:      []star.IParam{inputParam},
	F: func(c star.Context) error {
		t, err := Load(c.Context, wordtrie.New(), inputParam.Load(c))
		if err != nil {
			return err
		}
		c.Printf("%d\n", t.Len())
		return c.StdOut.Flush()
	},
}

var hasCmd = star.Command{
	Metadata: star.Metadata{Short: "report which words are in a set"},
	Pos:      []star.IParam{inputParam, wordsParam},
	F: func(c star.Context) error {
		t, err := Load(c.Context, wordtrie.New(), inputParam.Load(c))
		if err != nil {
			return err
		}
		w := c.StdOut
		for _, x := range wordsParam.LoadAll(c) {
			fmt.Fprintf(w, "%-5v %s\n", t.Has(x), x)
		}
		return w.Flush()
	},
}

var lsCmd = star.Command{
	Metadata: star.Metadata{Short: "list the strings in a set, one per line"},
	Pos:      []star.IParam{inputParam},
	F: func(c star.Context) error {
		t, err := Load(c.Context, wordtrie.New(), inputParam.Load(c))
		if err != nil {
			return err
		}
		if err := wordset.WriteWords(c.Context, c.StdOut, t); err != nil {
			return err
		}
		return c.StdOut.Flush()
	},
}

var printCmd = star.Command{
	Metadata: star.Metadata{Short: "draw a set as an indented tree"},
	Pos:      []star.IParam{inputParam},
	F: func(c star.Context) error {
		t, err := Load(c.Context, wordtrie.New(), inputParam.Load(c))
		if err != nil {
			return err
		}
		w := c.StdOut
		if err := wordset.Fprint(w, t); err != nil {
			return err
		}
		return w.Flush()
	},
}

var widthsCmd = star.Command{
	Metadata: star.Metadata{Short: "print how many strings there are of each length"},
	Pos:      []star.IParam{inputParam},
	F: func(c star.Context) error {
		t, err := Load(c.Context, wordtrie.New(), inputParam.Load(c))
		if err != nil {
			return err
		}
		w := c.StdOut
		fmtStr := "%-6v %v\n"
		fmt.Fprintf(w, fmtStr, "LENGTH", "COUNT")
		for l, n := range wordset.Widths(t) {
			if n == 0 {
				continue
			}
			fmt.Fprintf(w, fmtStr, l, n)
		}
		return w.Flush()
	},
}

var fingerprintCmd = star.Command{
	Metadata: star.Metadata{Short: "print the fingerprint of each set"},
	Pos:      []star.IParam{inputsParam},
	F: func(c star.Context) error {
		w := c.StdOut
		for _, arg := range inputsParam.LoadAll(c) {
			t, err := Load(c.Context, wordtrie.New(), arg)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%v %s\n", wordset.FingerprintOf(t), arg)
		}
		return w.Flush()
	},
}

var extractCmd = star.Command{
	Metadata: star.Metadata{Short: "print what follows each string of a query in a set"},
	Pos:      []star.IParam{inputParam, queryParam},
	F: func(c star.Context) error {
		ctx := c.Context
		t, err := Load(ctx, wordtrie.New(), inputParam.Load(c))
		if err != nil {
			return err
		}
		q, err := Load(ctx, wordtrie.New(), queryParam.Load(c))
		if err != nil {
			return err
		}
		w := c.StdOut
		it := wordset.Extract(t, q)
		var x wordset.Extracted[*wordtrie.Tree]
		for {
			if err := it.Next(ctx, &x); err != nil {
				if streams.IsEOS(err) {
					break
				}
				return err
			}
			if x.Err != nil {
				fmt.Fprintf(w, "%-12s !%v\n", x.Path, x.Err)
				continue
			}
			fmt.Fprintf(w, "%-12s %s\n", x.Path, wordset.Describe(x.Node))
		}
		return w.Flush()
	},
}

var queryParam = star.Param[string]{
	Name:  "query",
	Parse: star.ParseString,
}

var convertCmd = star.Command{
	Metadata: star.Metadata{Short: "write a set to a word file"},
	Pos:      []star.IParam{inputParam, outputParam},
	F: func(c star.Context) error {
		ctx := c.Context
		t, err := Load(ctx, wordtrie.New(), inputParam.Load(c))
		if err != nil {
			return err
		}
		out := outputParam.Load(c)
		if err := wordfile.Save(ctx, t, out); err != nil {
			return err
		}
		logctx.Infof(ctx, "wrote %d strings to %s", t.Len(), out)
		return nil
	},
}

var unionCmd = star.Command{
	Metadata: star.Metadata{Short: "write the union of several sets to a word file"},
	Pos:      []star.IParam{outputParam, inputsParam},
	F: func(c star.Context) error {
		ctx := c.Context
		t, err := LoadAll(ctx, inputsParam.LoadAll(c))
		if err != nil {
			return err
		}
		return wordfile.Save(ctx, t, outputParam.Load(c))
	},
}

var simplifyCmd = star.Command{
	Metadata: star.Metadata{Short: "print an expression in simplest form"},
	Pos:      []star.IParam{exprParam},
	F: func(c star.Context) error {
		x, err := wordexpr.Parse(exprParam.Load(c))
		if err != nil {
			return err
		}
		c.Printf("%v\n", wordexpr.Simplify(x))
		return c.StdOut.Flush()
	},
}

var exprParam = star.Param[string]{
	Name:  "expr",
	Parse: star.ParseString,
}

var dawgCmd = star.Command{
	Metadata: star.Metadata{Short: "minimize a set and report the node counts"},
	Pos:      []star.IParam{inputParam},
	F: func(c star.Context) error {
		n, st, err := BuildDAWG(c.Context, inputParam.Load(c))
		if err != nil {
			return err
		}
		defer n.Release()
		w := c.StdOut
		fmtStr := "%-8v %-8v %-8v %v\n"
		fmt.Fprintf(w, fmtStr, "STRINGS", "BEFORE", "AFTER", "REDIRECTED")
		fmt.Fprintf(w, fmtStr, st.Strings, st.Before, st.After, st.Redirected)
		return w.Flush()
	},
}
