// Package worddawg is a minimized word graph (DAWG) representation of a word set.
//
// Nodes live in a Graph arena and are reference counted. Structurally
// identical nodes can be shared between parents, so a node may be owned by
// many parents at once. Every node also keeps weak back references to its
// parents, which Merge follows to find twins without scanning the graph.
//
// A single terminal node is shared by every accepting node in a Graph: a
// node accepts when its terminal slot points at EndID.
package worddawg

import (
	"fmt"

	"wordset.io/wordset/src/wordpat"
)

// NodeID addresses a slot in a Graph.
type NodeID uint32

const (
	nilID NodeID = 0
	// EndID is the slot of the terminal node. It is never freed.
	EndID NodeID = 1
)

const (
	// endSlot is the child slot that points at the terminal.
	endSlot  = wordpat.AlphabetSize
	numSlots = wordpat.AlphabetSize + 1
)

type children = [numSlots]NodeID

// weakRef refers to a slot without keeping it alive.
// It is gone once the slot has been freed, which bumps the generation.
type weakRef struct {
	id  NodeID
	gen uint32
}

type slot struct {
	live bool
	gen  uint32
	// refs counts parent slots and handles that own this node.
	refs     int
	end      weakRef
	children children
	// parents maps parent id to the parent's generation when it was linked.
	parents map[NodeID]uint32
}

// Graph is an arena of nodes.
type Graph struct {
	slots []slot
	free  []NodeID
	live  int
}

// NewGraph returns a Graph holding only the terminal node.
func NewGraph() *Graph {
	g := &Graph{slots: make([]slot, EndID+1)}
	g.slots[EndID] = slot{
		live:    true,
		refs:    1,
		end:     weakRef{id: EndID},
		parents: map[NodeID]uint32{},
	}
	return g
}

// New returns a new empty node owned by the caller.
func (g *Graph) New() Node {
	return g.handle(g.alloc())
}

// Live returns the number of live nodes, not counting the terminal.
func (g *Graph) Live() int {
	return g.live
}

func (g *Graph) alloc() NodeID {
	var id NodeID
	if n := len(g.free); n > 0 {
		id = g.free[n-1]
		g.free = g.free[:n-1]
	} else {
		id = NodeID(len(g.slots))
		g.slots = append(g.slots, slot{})
	}
	s := &g.slots[id]
	s.live = true
	s.refs = 1
	s.end = weakRef{id: EndID, gen: g.slots[EndID].gen}
	s.children = children{}
	s.parents = map[NodeID]uint32{}
	g.live++
	return id
}

func (g *Graph) handle(id NodeID) Node {
	return Node{g: g, id: id, gen: g.slots[id].gen}
}

// get returns the slot for a handle, panicking if it has been freed.
func (g *Graph) get(id NodeID, gen uint32) *slot {
	if int(id) >= len(g.slots) || id == nilID {
		panic(fmt.Sprintf("worddawg: invalid node id %d", id))
	}
	s := &g.slots[id]
	if !s.live || s.gen != gen {
		panic(fmt.Sprintf("worddawg: use of released node %d", id))
	}
	return s
}

// upgrade returns the id of a weak reference's slot if it is still alive.
func (g *Graph) upgrade(ref weakRef) (NodeID, bool) {
	if ref.id == nilID || int(ref.id) >= len(g.slots) {
		return nilID, false
	}
	s := &g.slots[ref.id]
	if !s.live || s.gen != ref.gen {
		return nilID, false
	}
	return ref.id, true
}

func (g *Graph) retain(id NodeID) {
	g.slots[id].refs++
}

// release drops one reference to id, freeing it and releasing its children
// when none are left.
func (g *Graph) release(id NodeID) {
	s := &g.slots[id]
	if s.refs <= 0 {
		panic(fmt.Sprintf("worddawg: release of unowned node %d", id))
	}
	s.refs--
	if s.refs > 0 || id == EndID {
		return
	}
	kids := s.children
	s.live = false
	s.gen++
	s.children = children{}
	s.parents = nil
	g.free = append(g.free, id)
	g.live--
	for _, c := range kids {
		if c == nilID {
			continue
		}
		delete(g.slots[c].parents, id)
		g.release(c)
	}
}

// references returns true if any slot of p points at c.
func (g *Graph) references(p, c NodeID) bool {
	for _, x := range g.slots[p].children {
		if x == c {
			return true
		}
	}
	return false
}

// link points slot i of p at c, taking over one reference to c from the
// caller and dropping p's reference to the previous child.
func (g *Graph) link(p NodeID, i int, c NodeID) {
	old := g.slots[p].children[i]
	g.slots[p].children[i] = c
	if c != nilID {
		g.slots[c].parents[p] = g.slots[p].gen
	}
	if old != nilID {
		if !g.references(p, old) {
			delete(g.slots[old].parents, p)
		}
		g.release(old)
	}
}

// unshare points slot i of p at a private copy of its shared child.
// The copy has the same children as the original.
func (g *Graph) unshare(p NodeID, i int) NodeID {
	c := g.slots[p].children[i]
	d := g.alloc()
	for j, k := range g.slots[c].children {
		if k != nilID {
			g.retain(k)
			g.link(d, j, k)
		}
	}
	g.link(p, i, d)
	return d
}

// parentsOf returns the live parents of id, dropping any that are gone.
func (g *Graph) parentsOf(id NodeID) []NodeID {
	var ret []NodeID
	for pid, gen := range g.slots[id].parents {
		if p, ok := g.upgrade(weakRef{id: pid, gen: gen}); ok {
			ret = append(ret, p)
		} else {
			delete(g.slots[id].parents, pid)
		}
	}
	return ret
}

// findEq looks for a node other than id with exactly the same child slots,
// among the parents of id's first child. Only candidates accepted by ok are
// considered; the lowest such id wins.
func (g *Graph) findEq(id NodeID, ok func(NodeID) bool) (NodeID, bool) {
	kids := g.slots[id].children
	var first NodeID
	for _, c := range kids {
		if c != nilID {
			first = c
			break
		}
	}
	if first == nilID {
		return nilID, false
	}
	best := nilID
	for _, p := range g.parentsOf(first) {
		if p == id || g.slots[p].children != kids {
			continue
		}
		if ok != nil && !ok(p) {
			continue
		}
		if best == nilID || p < best {
			best = p
		}
	}
	return best, best != nilID
}

// FindEq returns a live node with the same children as n, by identity, if
// there is one in the graph. The caller does not own the result.
func (g *Graph) FindEq(n Node) (Node, bool) {
	g.get(n.id, n.gen)
	id, ok := g.findEq(n.id, nil)
	if !ok {
		return Node{}, false
	}
	return g.handle(id), true
}

// Merge shares structurally identical nodes reachable from root.
// Children are merged before their parents, so comparing child slots by
// identity finds every twin. It returns the number of edges redirected.
//
// Merge may rewrite nodes that are shared, since a twin holds the same set
// as the node it replaces.
func (g *Graph) Merge(root Node) int {
	g.get(root.id, root.gen)
	m := merger{
		g:     g,
		canon: map[NodeID]NodeID{},
		rep:   map[NodeID]bool{},
	}
	m.merge(root.id)
	return m.count
}

type merger struct {
	g *Graph
	// canon maps every visited node to the node that should replace it.
	canon map[NodeID]NodeID
	// rep holds the nodes that represent their class.
	rep   map[NodeID]bool
	count int
}

func (m *merger) merge(id NodeID) NodeID {
	if c, ok := m.canon[id]; ok {
		return c
	}
	g := m.g
	for i := 0; i < wordpat.AlphabetSize; i++ {
		c := g.slots[id].children[i]
		if c == nilID {
			continue
		}
		if twin := m.merge(c); twin != c {
			g.retain(twin)
			g.link(id, i, twin)
			m.count++
		}
	}
	if twin, ok := g.findEq(id, func(p NodeID) bool { return m.rep[p] }); ok {
		m.canon[id] = twin
		return twin
	}
	m.rep[id] = true
	m.canon[id] = id
	return id
}
