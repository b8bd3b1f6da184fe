package worddawg

import (
	"fmt"

	"wordset.io/wordset/src/wordpat"
	"wordset.io/wordset/src/wordset"
)

type Symbol = wordpat.Symbol

var _ wordset.Node[Node] = Node{}

// Node is a handle to a node in a Graph.
// Handles are only valid until the node is freed. Using a handle after that
// panics.
type Node struct {
	g   *Graph
	id  NodeID
	gen uint32
}

// New returns an empty node in a new Graph.
func New() Node {
	return NewGraph().New()
}

// FromWord returns a node in g holding every string matched by w.
// The node for the rest of the word is shared under every symbol of a
// position.
func FromWord(g *Graph, w wordpat.Word) Node {
	proto := g.New()
	defer proto.Release()
	return wordset.FromWord(proto, w)
}

// Parse returns a node in g holding every string matched by the pattern.
func Parse(g *Graph, pattern string) (Node, error) {
	w, err := wordpat.ParseWord(pattern)
	if err != nil {
		return Node{}, err
	}
	return FromWord(g, w), nil
}

// MustParse is Parse but panics on error.
func MustParse(g *Graph, pattern string) Node {
	n, err := Parse(g, pattern)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Node) slot() *slot {
	return n.g.get(n.id, n.gen)
}

// Graph returns the arena n lives in.
func (n Node) Graph() *Graph {
	return n.g
}

// ID returns the slot n occupies.
func (n Node) ID() NodeID {
	return n.id
}

// Refs returns the number of owners n has.
func (n Node) Refs() int {
	return n.slot().refs
}

// IsShared returns true if more than one parent or handle owns n.
func (n Node) IsShared() bool {
	return n.Refs() > 1
}

// Same returns true if a and b are the same node.
func Same(a, b Node) bool {
	return a.g == b.g && a.id == b.id && a.gen == b.gen
}

// Parents returns the live parents of n. The caller does not own them.
func (n Node) Parents() []Node {
	n.slot()
	ids := n.g.parentsOf(n.id)
	ret := make([]Node, len(ids))
	for i, id := range ids {
		ret[i] = n.g.handle(id)
	}
	return ret
}

func (n Node) mustOwn() *slot {
	s := n.slot()
	if s.refs > 1 {
		panic(fmt.Sprintf("worddawg: mutation of shared node %d", n.id))
	}
	return s
}

func (n Node) Empty() Node {
	return n.g.New()
}

func (n Node) IsEnd() bool {
	return n.slot().children[endSlot] != nilID
}

// SetEnd marks n as accepting or not by linking it to the terminal.
func (n Node) SetEnd(end bool) {
	s := n.mustOwn()
	if !end {
		n.g.link(n.id, endSlot, nilID)
		return
	}
	if s.children[endSlot] != nilID {
		return
	}
	t, ok := n.g.upgrade(s.end)
	if !ok {
		panic("worddawg: terminal node is gone")
	}
	n.g.retain(t)
	n.g.link(n.id, endSlot, t)
}

// Child returns the child reached by s. The caller does not own it,
// use Clone to keep it past changes to n.
func (n Node) Child(s Symbol) (Node, bool) {
	id := n.slot().children[s]
	if id == nilID {
		return Node{}, false
	}
	return n.g.handle(id), true
}

// MutChild is Child for in place mutation. A shared child is first replaced
// by a private copy, so mutating it leaves the other owners alone.
// MutChild panics if n itself is shared.
func (n Node) MutChild(s Symbol) (Node, bool) {
	n.mustOwn()
	c, ok := n.Child(s)
	if ok && c.IsShared() {
		c = n.g.handle(n.g.unshare(n.id, int(s)))
	}
	return c, ok
}

// SetChild makes child the node reached by s.
// n takes over the caller's ownership of child.
func (n Node) SetChild(s Symbol, child Node) {
	n.mustOwn()
	if child.g != n.g {
		panic("worddawg: child belongs to another graph")
	}
	child.slot()
	n.g.link(n.id, int(s), child.id)
}

func (n Node) ClearChild(s Symbol) {
	n.mustOwn()
	n.g.link(n.id, int(s), nilID)
}

// Clone adds an owner to n and returns n. The node itself is shared.
func (n Node) Clone() Node {
	n.slot()
	n.g.retain(n.id)
	return n
}

// Release gives up the caller's ownership of n.
func (n Node) Release() {
	n.slot()
	n.g.release(n.id)
}

func (n Node) String() string {
	return wordset.Describe(n)
}
