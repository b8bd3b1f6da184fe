package wordset

import (
	"wordset.io/wordset/src/wordpat"
)

// HasAny returns true if any string in other is also in n.
func HasAny[A Reader[A], B Reader[B]](n A, other B) bool {
	if n.IsEnd() && other.IsEnd() {
		return true
	}
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		oc, ok := other.Child(s)
		if !ok {
			continue
		}
		nc, ok := n.Child(s)
		if !ok {
			continue
		}
		if HasAny(nc, oc) {
			return true
		}
	}
	return false
}

// HasAll returns true if every string in other is also in n.
func HasAll[A Reader[A], B Reader[B]](n A, other B) bool {
	if other.IsEnd() && !n.IsEnd() {
		return false
	}
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		oc, ok := other.Child(s)
		if !ok || IsEmpty(oc) {
			continue
		}
		nc, ok := n.Child(s)
		if !ok {
			return false
		}
		if !HasAll(nc, oc) {
			return false
		}
	}
	return true
}

// HasWord returns true if every string matched by w is in n.
func HasWord[N Reader[N]](n N, w wordpat.Word) bool {
	head, tail, ok := w.Split()
	if !ok {
		return n.IsEnd()
	}
	for _, s := range head.Symbols() {
		c, ok := n.Child(s)
		if !ok || !HasWord(c, tail) {
			return false
		}
	}
	return true
}

// And returns the intersection of a and b in the representation of a.
// A child exists in the result exactly where both a and b have one.
func And[A Node[A], B Reader[B]](a A, b B) A {
	ret := a.Empty()
	ret.SetEnd(a.IsEnd() && b.IsEnd())
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		ac, aok := a.Child(s)
		bc, bok := b.Child(s)
		if aok && bok {
			ret.SetChild(s, And(ac, bc))
		}
	}
	return ret
}

// Or returns the union of a and b in the representation of a.
// A child that only one side has is unioned with an empty node, so the
// result is always made of fresh nodes in a's representation.
func Or[A Node[A], B Reader[B]](a A, b B) A {
	ret := a.Empty()
	ret.SetEnd(a.IsEnd() || b.IsEnd())
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		ac, aok := a.Child(s)
		bc, bok := b.Child(s)
		switch {
		case aok && bok:
			ret.SetChild(s, Or(ac, bc))
		case aok:
			ret.SetChild(s, orEmpty(ac))
		case bok:
			empty := a.Empty()
			ret.SetChild(s, Or(empty, bc))
			empty.Release()
		}
	}
	return ret
}

func orEmpty[A Node[A]](a A) A {
	empty := a.Empty()
	defer empty.Release()
	return Or(a, empty)
}

// Diff returns the strings in a that are not in b, in the representation of a.
// Children of a that b has no counterpart for are cloned.
func Diff[A Node[A], B Reader[B]](a A, b B) A {
	ret := a.Empty()
	ret.SetEnd(a.IsEnd() && !b.IsEnd())
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		ac, aok := a.Child(s)
		if !aok {
			continue
		}
		if bc, bok := b.Child(s); bok {
			ret.SetChild(s, Diff(ac, bc))
		} else {
			ret.SetChild(s, ac.Clone())
		}
	}
	return ret
}

// Add returns n with every string matched by w added.
func Add[N Node[N]](n N, w wordpat.Word) N {
	x := FromWord(n, w)
	defer x.Release()
	return Or(n, x)
}

// Sub returns n with every string matched by w removed.
func Sub[N Node[N]](n N, w wordpat.Word) N {
	x := FromWord(n, w)
	defer x.Release()
	return Diff(n, x)
}

// Equal returns true if a and b hold the same strings.
func Equal[A Reader[A], B Reader[B]](a A, b B) bool {
	return HasAll(a, b) && HasAll(b, a)
}

// Convert copies n into the representation of proto.
func Convert[N Node[N], M Reader[M]](proto N, n M) N {
	empty := proto.Empty()
	defer empty.Release()
	return Or(empty, n)
}
