package wordexpr

// Simplify rewrites x into an equivalent, usually smaller, expression.
func Simplify(x Expr) Expr {
	for i := 0; i < 8; i++ {
		x1 := x.simplify()
		if equal(x1, x) {
			break
		}
		x = x1
	}
	return x
}
