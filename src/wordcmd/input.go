package wordcmd

import (
	"context"

	"github.com/pkg/errors"
	"go.brendoncarroll.net/stdctx/logctx"
	"golang.org/x/sync/errgroup"

	"wordset.io/wordset/src/worddawg"
	"wordset.io/wordset/src/wordexpr"
	"wordset.io/wordset/src/wordfile"
	"wordset.io/wordset/src/wordset"
	"wordset.io/wordset/src/wordtrie"
)

// Load returns the set named by arg in the representation of proto.
// An argument with a word file extension is read from disk, anything else is
// parsed as an expression, e.g. "ca[rt] | d.g".
func Load[N wordset.Node[N]](ctx context.Context, proto N, arg string) (N, error) {
	if wordfile.IsPath(arg) {
		return wordfile.Load(ctx, proto, arg)
	}
	x, err := wordexpr.Parse(arg)
	if err != nil {
		var zero N
		return zero, errors.Wrapf(err, "%q is neither a word file nor an expression", arg)
	}
	x = wordexpr.Simplify(x)
	logctx.Debugf(ctx, "evaluating %v", x)
	return wordexpr.Eval(proto, x), nil
}

// LoadAll loads every argument concurrently and returns their union.
func LoadAll(ctx context.Context, args []string) (*wordtrie.Tree, error) {
	trees := make([]*wordtrie.Tree, len(args))
	eg, ctx := errgroup.WithContext(ctx)
	for i, arg := range args {
		eg.Go(func() error {
			t, err := Load(ctx, wordtrie.New(), arg)
			if err != nil {
				return err
			}
			trees[i] = t
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	ret := wordtrie.New()
	for _, t := range trees {
		ret.UnionWith(t)
	}
	return ret, nil
}

// DAWGStats describes the effect of minimizing a set.
type DAWGStats struct {
	Strings int
	// Before and After are the live node counts around the merge.
	Before, After int
	// Redirected is the number of edges pointed at a twin.
	Redirected int
}

// BuildDAWG loads arg into a fresh graph and minimizes it.
// The caller owns the returned node.
func BuildDAWG(ctx context.Context, arg string) (worddawg.Node, DAWGStats, error) {
	g := worddawg.NewGraph()
	proto := g.New()
	n, err := Load(ctx, proto, arg)
	proto.Release()
	if err != nil {
		return worddawg.Node{}, DAWGStats{}, err
	}
	st := DAWGStats{
		Strings: wordset.Len(n),
		Before:  g.Live(),
	}
	st.Redirected = g.Merge(n)
	st.After = g.Live()
	logctx.Infof(ctx, "merged %s: %d -> %d nodes", arg, st.Before, st.After)
	return n, st, nil
}
