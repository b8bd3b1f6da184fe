// Package wordexpr is a small language of set expressions over patterns,
// like "(ca[rt] | d.g) - dig".
//
// Expressions can be compared symbolically without building them, which
// answers many questions about patterns cheaply. When the symbolic answer is
// unknown the expression is evaluated into a node.
package wordexpr

import (
	"go.brendoncarroll.net/exp/maybe"

	"wordset.io/wordset/src/wordpat"
	"wordset.io/wordset/src/wordset"
	"wordset.io/wordset/src/wordtrie"
)

type Expr interface {
	String() string
	Contains(x string) bool

	intersects(Expr) maybe.Maybe[bool]
	superset(Expr) maybe.Maybe[bool]
	simplify() Expr
}

// Intersects returns true if some string is in both a and b.
func Intersects(a, b Expr) bool {
	if yes := intersects(a, b); yes.Ok {
		return yes.X
	}
	return !wordset.IsEmpty(Eval(wordtrie.New(), And{a, b}))
}

func intersects(a, b Expr) maybe.Maybe[bool] {
	if yes := a.intersects(b); yes.Ok {
		return yes
	}
	if yes := b.intersects(a); yes.Ok {
		return yes
	}
	return maybe.Nothing[bool]()
}

// Superset returns true if every string in sub is in super.
func Superset(super, sub Expr) bool {
	if yes := superset(super, sub); yes.Ok {
		return yes.X
	}
	return wordset.IsEmpty(Eval(wordtrie.New(), Diff{sub, super}))
}

func superset(a, b Expr) maybe.Maybe[bool] {
	if yes := a.superset(b); yes.Ok {
		return yes
	}
	return maybe.Nothing[bool]()
}

func Subset(sub, super Expr) bool {
	return Superset(super, sub)
}

// Equals returns true if a and b hold the same strings.
func Equals(a, b Expr) bool {
	a, b = Simplify(a), Simplify(b)
	if equal(a, b) {
		return true
	}
	return wordset.FingerprintOf(Eval(wordtrie.New(), a)) == wordset.FingerprintOf(Eval(wordtrie.New(), b))
}

// Union returns an expression for the strings in any of xs.
func Union(xs ...Expr) Expr {
	l := len(xs)
	switch l {
	case 0:
		return Empty{}
	case 1:
		return xs[0]
	case 2:
		return Or{xs[0], xs[1]}
	default:
		return Or{
			Union(xs[:l/2]...),
			Union(xs[l/2:]...),
		}
	}
}

// Intersection returns an expression for the strings in all of xs.
// It panics if xs is empty, there is no expression for every string.
func Intersection(xs ...Expr) Expr {
	l := len(xs)
	switch l {
	case 0:
		panic("wordexpr: intersection of nothing")
	case 1:
		return xs[0]
	case 2:
		return And{xs[0], xs[1]}
	default:
		return And{
			Intersection(xs[:l/2]...),
			Intersection(xs[l/2:]...),
		}
	}
}

// Eval builds the set e describes in the representation of proto.
func Eval[N wordset.Node[N]](proto N, e Expr) N {
	switch e := e.(type) {
	case Empty:
		return proto.Empty()
	case Pattern:
		return wordset.FromWord(proto, wordpat.Word(e))
	case And:
		return eval2(proto, e.L, e.R, wordset.And[N, N])
	case Or:
		return eval2(proto, e.L, e.R, wordset.Or[N, N])
	case Diff:
		return eval2(proto, e.L, e.R, wordset.Diff[N, N])
	default:
		panic(e)
	}
}

func eval2[N wordset.Node[N]](proto N, l, r Expr, fn func(N, N) N) N {
	ln := Eval(proto, l)
	defer ln.Release()
	rn := Eval(proto, r)
	defer rn.Release()
	return fn(ln, rn)
}

func isTrue(x maybe.Maybe[bool]) bool {
	return x.Ok && x.X
}

func isFalse(x maybe.Maybe[bool]) bool {
	return x.Ok && !x.X
}
