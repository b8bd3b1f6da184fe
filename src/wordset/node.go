// Package wordset implements set algebra, membership and enumeration over
// sets of strings stored as prefix trees.
//
// The algorithms are written once against the Node interface and work with
// any representation of a node, see wordtrie and worddawg.
package wordset

import (
	"wordset.io/wordset/src/wordpat"
)

type Symbol = wordpat.Symbol

// Reader is the read only part of a node.
type Reader[N any] interface {
	// IsEnd returns true if a string ends at this node.
	IsEnd() bool
	// Child returns the child reached by s, if there is one.
	Child(s Symbol) (N, bool)
}

// Node is the capability set every node representation provides.
//
// Ownership: SetChild takes ownership of the child it is given. Clone
// returns a separately owned node with the same contents, which may share
// structure with the receiver. Release gives up the caller's ownership.
type Node[N any] interface {
	Reader[N]

	// Empty returns a new empty node of the same representation.
	Empty() N
	SetEnd(bool)
	SetChild(s Symbol, child N)
	ClearChild(s Symbol)
	// MutChild returns the child reached by s for in place mutation.
	// Representations that share nodes panic if the child is shared.
	MutChild(s Symbol) (N, bool)
	Clone() N
	Release()
}

// IsLeaf returns true if n has no children.
func IsLeaf[N Reader[N]](n N) bool {
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		if _, ok := n.Child(s); ok {
			return false
		}
	}
	return true
}

// Symbols returns the symbols n has children for, ascending.
func Symbols[N Reader[N]](n N) []Symbol {
	var ret []Symbol
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		if _, ok := n.Child(s); ok {
			ret = append(ret, s)
		}
	}
	return ret
}

// FromWord returns a node holding every string matched by w, in the
// representation of proto.
// Each accepted symbol at a position gets its own clone of the node for the
// rest of the word.
func FromWord[N Node[N]](proto N, w wordpat.Word) N {
	n := proto.Empty()
	head, tail, ok := w.Split()
	if !ok {
		n.SetEnd(true)
		return n
	}
	syms := head.Symbols()
	if len(syms) == 0 {
		return n
	}
	sub := FromWord(proto, tail)
	for i, s := range syms {
		if i == len(syms)-1 {
			n.SetChild(s, sub)
		} else {
			n.SetChild(s, sub.Clone())
		}
	}
	return n
}

// FromString returns a node holding only x.
func FromString[N Node[N]](proto N, x string) (N, error) {
	w, err := wordpat.WordOf(x)
	if err != nil {
		var zero N
		return zero, err
	}
	return FromWord(proto, w), nil
}

// IsEmpty returns true if n holds no strings.
func IsEmpty[N Reader[N]](n N) bool {
	if n.IsEnd() {
		return false
	}
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		if c, ok := n.Child(s); ok && !IsEmpty(c) {
			return false
		}
	}
	return true
}

// Contains returns true if the concrete string x is in n.
func Contains[N Reader[N]](n N, x string) bool {
	for i := 0; i < len(x); i++ {
		s, err := wordpat.SymbolOf(x[i])
		if err != nil {
			return false
		}
		c, ok := n.Child(s)
		if !ok {
			return false
		}
		n = c
	}
	return n.IsEnd()
}

// Len returns the number of strings in n.
func Len[N Reader[N]](n N) int {
	l := 0
	if n.IsEnd() {
		l++
	}
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		if c, ok := n.Child(s); ok {
			l += Len(c)
		}
	}
	return l
}

// Widths returns the number of strings of each length held in n,
// indexed by length.
func Widths[N Reader[N]](n N) []int {
	var ret []int
	var walk func(n N, depth int)
	walk = func(n N, depth int) {
		if n.IsEnd() {
			for len(ret) <= depth {
				ret = append(ret, 0)
			}
			ret[depth]++
		}
		for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
			if c, ok := n.Child(s); ok {
				walk(c, depth+1)
			}
		}
	}
	walk(n, 0)
	return ret
}

// Prune removes every empty branch below n.
// It mutates n in place. Only children leading to an empty branch are
// fetched with MutChild, so shared structure without empty branches is left
// as it is.
func Prune[N Node[N]](n N) {
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		c, ok := n.Child(s)
		if !ok {
			continue
		}
		if IsEmpty(c) {
			n.ClearChild(s)
			continue
		}
		if !hasEmptyBranch(c) {
			continue
		}
		mc, _ := n.MutChild(s)
		Prune(mc)
	}
}

func hasEmptyBranch[N Reader[N]](n N) bool {
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		c, ok := n.Child(s)
		if !ok {
			continue
		}
		if IsEmpty(c) || hasEmptyBranch(c) {
			return true
		}
	}
	return false
}
