package wordset

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.brendoncarroll.net/exp/maybe"
	"go.brendoncarroll.net/exp/streams"

	"wordset.io/wordset/src/wordpat"
)

// Event is emitted by a depth first traversal.
// Symbol is set when the traversal descends into Node through that symbol,
// and unset when the traversal leaves Node.
type Event[N any] struct {
	Node   N
	Symbol maybe.Maybe[Symbol]
}

type dfsFrame[N any] struct {
	node N
	next int
}

// DFSIter walks a node depth first, visiting children in ascending symbol order.
type DFSIter[N Reader[N]] struct {
	stack []dfsFrame[N]
}

// DFS returns a depth first traversal of n.
// Each child is entered with an event carrying its symbol and left with one
// carrying none. The last event leaves n, so a leaf yields only that one.
func DFS[N Reader[N]](n N) *DFSIter[N] {
	return &DFSIter[N]{stack: []dfsFrame[N]{{node: n}}}
}

func (it *DFSIter[N]) Next(ctx context.Context, dst *Event[N]) error {
	if len(it.stack) == 0 {
		return streams.EOS()
	}
	top := &it.stack[len(it.stack)-1]
	for top.next < wordpat.AlphabetSize {
		s := Symbol(top.next)
		top.next++
		if c, ok := top.node.Child(s); ok {
			it.stack = append(it.stack, dfsFrame[N]{node: c})
			*dst = Event[N]{Node: c, Symbol: maybe.Just(s)}
			return nil
		}
	}
	*dst = Event[N]{Node: top.node, Symbol: maybe.Nothing[Symbol]()}
	it.stack = it.stack[:len(it.stack)-1]
	return nil
}

// StringIter emits the strings held by a node in ascending order.
// It cannot be restarted, call Strings again for a fresh traversal.
type StringIter[N Reader[N]] struct {
	root    N
	started bool
	dfs     *DFSIter[N]
	prefix  []byte
}

// Strings returns an iterator over every string in n.
func Strings[N Reader[N]](n N) *StringIter[N] {
	return &StringIter[N]{root: n, dfs: DFS(n)}
}

func (it *StringIter[N]) Next(ctx context.Context, dst *string) error {
	if !it.started {
		it.started = true
		if it.root.IsEnd() {
			*dst = ""
			return nil
		}
	}
	var ev Event[N]
	for {
		if err := it.dfs.Next(ctx, &ev); err != nil {
			return err
		}
		if !ev.Symbol.Ok {
			if len(it.prefix) > 0 {
				it.prefix = it.prefix[:len(it.prefix)-1]
			}
			continue
		}
		it.prefix = append(it.prefix, ev.Symbol.X.Char())
		if ev.Node.IsEnd() {
			*dst = string(it.prefix)
			return nil
		}
	}
}

// ErrMissingBranch is wrapped by every MissingBranchError.
var ErrMissingBranch = errors.New("wordset: missing branch")

// MissingBranchError is produced by Extract when the query needs a branch
// the target does not have.
type MissingBranchError struct {
	// Path is the prefix leading to the missing branch, including its symbol.
	Path   string
	Symbol Symbol
}

func (e *MissingBranchError) Error() string {
	return fmt.Sprintf("wordset: cannot find child for %q at %q", e.Symbol.Char(), e.Path)
}

func (e *MissingBranchError) Unwrap() error {
	return ErrMissingBranch
}

// Extracted is one result of Extract. Exactly one of Node and Err is meaningful.
type Extracted[N any] struct {
	Path string
	Node N
	Err  error
}

type extractFrame[N, Q any] struct {
	node    N
	query   Q
	next    int
	visited bool
}

// ExtractIter walks a node in lockstep with a query.
type ExtractIter[N Reader[N], Q Reader[Q]] struct {
	stack []extractFrame[N, Q]
	// path holds the symbols leading to stack[1:]
	path []byte
}

// Extract returns, for every string the query accepts, the sub-node of n
// reached by that string. Branches the query needs but n lacks are reported
// as results with a *MissingBranchError, and the traversal continues.
func Extract[N Reader[N], Q Reader[Q]](n N, query Q) *ExtractIter[N, Q] {
	return &ExtractIter[N, Q]{
		stack: []extractFrame[N, Q]{{node: n, query: query}},
	}
}

func (it *ExtractIter[N, Q]) Next(ctx context.Context, dst *Extracted[N]) error {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if !top.visited {
			top.visited = true
			if top.query.IsEnd() {
				*dst = Extracted[N]{Path: string(it.path), Node: top.node}
				return nil
			}
		}
		if top.next >= wordpat.AlphabetSize {
			it.stack = it.stack[:len(it.stack)-1]
			if len(it.path) > 0 {
				it.path = it.path[:len(it.path)-1]
			}
			continue
		}
		s := Symbol(top.next)
		top.next++
		qc, ok := top.query.Child(s)
		if !ok || IsEmpty(qc) {
			continue
		}
		nc, ok := top.node.Child(s)
		if !ok {
			path := string(it.path) + s.String()
			*dst = Extracted[N]{Path: path, Err: &MissingBranchError{Path: path, Symbol: s}}
			return nil
		}
		it.stack = append(it.stack, extractFrame[N, Q]{node: nc, query: qc})
		it.path = append(it.path, s.Char())
	}
	return streams.EOS()
}
