package wordexpr

import (
	"reflect"

	"go.brendoncarroll.net/exp/maybe"

	"wordset.io/wordset/src/wordpat"
)

func equal(a, b Expr) bool {
	return reflect.DeepEqual(a, b)
}

type Empty struct{}

func (Empty) Contains(string) bool              { return false }
func (Empty) intersects(Expr) maybe.Maybe[bool] { return maybe.Just(false) }
func (Empty) String() string                    { return "∅" }
func (Empty) simplify() Expr                    { return Empty{} }

func (Empty) superset(x Expr) maybe.Maybe[bool] {
	switch x := x.(type) {
	case Empty:
		return maybe.Just(true)
	case Pattern:
		return maybe.Just(x.isDead())
	default:
		return maybe.Nothing[bool]()
	}
}

// Pattern is the set of strings matched by a Word.
type Pattern wordpat.Word

// MustPattern parses a pattern, panicking on error.
func MustPattern(s string) Pattern {
	return Pattern(wordpat.MustParse(s))
}

func (p Pattern) isDead() bool {
	return wordpat.Word(p).IsDead()
}

func (p Pattern) Contains(x string) bool {
	return wordpat.Word(p).Matches(x)
}

// String unparses p. A pattern that matches nothing is written as the empty set.
func (p Pattern) String() string {
	if p.isDead() {
		return emptySym
	}
	return wordpat.Word(p).String()
}

func (p Pattern) intersects(x Expr) maybe.Maybe[bool] {
	switch x := x.(type) {
	case Empty:
		return maybe.Just(false)
	case Pattern:
		if p.isDead() || x.isDead() || len(p) != len(x) {
			return maybe.Just(false)
		}
		for i := range p {
			if !p[i].Intersects(x[i]) {
				return maybe.Just(false)
			}
		}
		return maybe.Just(true)
	default:
		return maybe.Nothing[bool]()
	}
}

func (p Pattern) superset(x Expr) maybe.Maybe[bool] {
	switch x := x.(type) {
	case Empty:
		return maybe.Just(true)
	case Pattern:
		if x.isDead() {
			return maybe.Just(true)
		}
		if p.isDead() || len(p) != len(x) {
			return maybe.Just(false)
		}
		for i := range p {
			if !p[i].Superset(x[i]) {
				return maybe.Just(false)
			}
		}
		return maybe.Just(true)
	case And:
		if isTrue(superset(p, x.L)) || isTrue(superset(p, x.R)) {
			return maybe.Just(true)
		}
	case Or:
		if isTrue(superset(p, x.L)) && isTrue(superset(p, x.R)) {
			return maybe.Just(true)
		}
	case Diff:
		if isTrue(superset(p, x.L)) {
			return maybe.Just(true)
		}
	}
	return maybe.Nothing[bool]()
}

func (p Pattern) simplify() Expr {
	if p.isDead() {
		return Empty{}
	}
	return p
}

// intersect returns the pattern for the strings in both p and x,
// which must have the same length.
func (p Pattern) intersect(x Pattern) Pattern {
	ret := make(Pattern, len(p))
	for i := range p {
		ret[i] = p[i]
		ret[i].Intersect(x[i])
	}
	return ret
}

// union returns the pattern for the strings in either p or x, if they have
// the same length and differ in at most one position.
func (p Pattern) union(x Pattern) (Pattern, bool) {
	if len(p) != len(x) {
		return nil, false
	}
	diff := -1
	for i := range p {
		if p[i] == x[i] {
			continue
		}
		if diff >= 0 {
			return nil, false
		}
		diff = i
	}
	ret := make(Pattern, len(p))
	copy(ret, p)
	if diff >= 0 {
		ret[diff].Union(x[diff])
	}
	return ret, true
}
