package wordexpr

import (
	"strings"

	"go.brendoncarroll.net/exp/maybe"
	"go.brendoncarroll.net/exp/slices2"
)

type And struct {
	L, R Expr
}

func (a And) Contains(x string) bool {
	return a.L.Contains(x) && a.R.Contains(x)
}

func (a And) intersects(x Expr) maybe.Maybe[bool] {
	li := intersects(a.L, x)
	ri := intersects(a.R, x)
	if isFalse(li) || isFalse(ri) {
		return maybe.Just(false)
	}
	return maybe.Nothing[bool]()
}

func (a And) superset(x Expr) maybe.Maybe[bool] {
	ls := superset(a.L, x)
	rs := superset(a.R, x)
	if isFalse(ls) || isFalse(rs) {
		return maybe.Just(false)
	}
	if isTrue(ls) && isTrue(rs) {
		return maybe.Just(true)
	}
	return maybe.Nothing[bool]()
}

func (a And) String() string {
	return join(a.operands(), " & ")
}

func (a And) operands() []Expr {
	return flatten(a, func(x Expr) (Expr, Expr, bool) {
		y, ok := x.(And)
		return y.L, y.R, ok
	})
}

func (a And) simplify() Expr {
	l, r := a.L.simplify(), a.R.simplify()
	lp, lok := l.(Pattern)
	rp, rok := r.(Pattern)
	switch {
	case equal(l, r):
		return l
	case isFalse(intersects(l, r)):
		return Empty{}
	case isTrue(superset(r, l)):
		return l
	case isTrue(superset(l, r)):
		return r
	case lok && rok && len(lp) == len(rp):
		return lp.intersect(rp).simplify()
	default:
		return And{L: l, R: r}
	}
}

type Or struct {
	L, R Expr
}

func (o Or) Contains(x string) bool {
	return o.L.Contains(x) || o.R.Contains(x)
}

func (o Or) intersects(x Expr) maybe.Maybe[bool] {
	li := intersects(o.L, x)
	ri := intersects(o.R, x)
	if isTrue(li) || isTrue(ri) {
		return maybe.Just(true)
	}
	if isFalse(li) && isFalse(ri) {
		return maybe.Just(false)
	}
	return maybe.Nothing[bool]()
}

func (o Or) superset(x Expr) maybe.Maybe[bool] {
	if isTrue(superset(o.L, x)) || isTrue(superset(o.R, x)) {
		return maybe.Just(true)
	}
	if isFalse(intersects(o, x)) && isFalse(superset(Empty{}, x)) {
		return maybe.Just(false)
	}
	return maybe.Nothing[bool]()
}

func (o Or) String() string {
	return join(o.operands(), " | ")
}

func (o Or) operands() []Expr {
	return flatten(o, func(x Expr) (Expr, Expr, bool) {
		y, ok := x.(Or)
		return y.L, y.R, ok
	})
}

func (o Or) simplify() Expr {
	l, r := o.L.simplify(), o.R.simplify()
	lp, lok := l.(Pattern)
	rp, rok := r.(Pattern)
	switch {
	case isTrue(superset(l, r)):
		return l
	case isTrue(superset(r, l)):
		return r
	case lok && rok:
		if u, ok := lp.union(rp); ok {
			return u
		}
	}
	return Or{L: l, R: r}
}

// Diff is the strings in L that are not in R.
type Diff struct {
	L, R Expr
}

func (d Diff) Contains(x string) bool {
	return d.L.Contains(x) && !d.R.Contains(x)
}

func (d Diff) intersects(x Expr) maybe.Maybe[bool] {
	li := intersects(d.L, x)
	switch {
	case isFalse(li):
		return maybe.Just(false)
	case isTrue(superset(d.R, x)):
		return maybe.Just(false)
	case isFalse(intersects(d.R, x)):
		return li
	}
	return maybe.Nothing[bool]()
}

func (d Diff) superset(x Expr) maybe.Maybe[bool] {
	ls := superset(d.L, x)
	switch {
	case isFalse(ls):
		return maybe.Just(false)
	case isTrue(ls) && isFalse(intersects(d.R, x)):
		return maybe.Just(true)
	}
	return maybe.Nothing[bool]()
}

func (d Diff) String() string {
	return join([]Expr{d.L, d.R}, " - ")
}

func (d Diff) simplify() Expr {
	l, r := d.L.simplify(), d.R.simplify()
	switch {
	case isTrue(superset(Empty{}, l)):
		return Empty{}
	case isTrue(superset(Empty{}, r)):
		return l
	case isTrue(superset(r, l)):
		return Empty{}
	case isFalse(intersects(l, r)):
		return l
	default:
		return Diff{L: l, R: r}
	}
}

func flatten(x Expr, split func(Expr) (Expr, Expr, bool)) []Expr {
	l, r, ok := split(x)
	if !ok {
		return []Expr{x}
	}
	return append(flatten(l, split), flatten(r, split)...)
}

func join(xs []Expr, sep string) string {
	return "(" + strings.Join(slices2.Map(xs, Expr.String), sep) + ")"
}
