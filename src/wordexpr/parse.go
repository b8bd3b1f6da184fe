package wordexpr

import (
	"fmt"
	"strings"

	"wordset.io/wordset/src/wordpat"
)

const emptySym = "∅"

// ParseError is returned for an expression that cannot be parsed.
// Input is the rest of the expression at the point of failure.
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("wordexpr: %s at end of input", e.Msg)
	}
	return fmt.Sprintf("wordexpr: %s at %q", e.Msg, e.Input)
}

// Parse parses an expression.
//
//	expr   := term (('|' | '-') term)*
//	term   := factor ('&' factor)*
//	factor := pattern | '(' expr ')' | '∅'
//
// '|' is union, '&' intersection and '-' difference. Spaces between tokens
// are ignored.
func Parse(s string) (Expr, error) {
	p := parser{s: s}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skip()
	if p.s != "" {
		return nil, &ParseError{Input: p.s, Msg: "unexpected input"}
	}
	return e, nil
}

// MustParse is Parse but panics on error.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

type parser struct {
	s string
}

func (p *parser) skip() {
	p.s = strings.TrimLeft(p.s, " \t")
}

// accept consumes op if it is next.
func (p *parser) accept(op string) bool {
	p.skip()
	if strings.HasPrefix(p.s, op) {
		p.s = p.s[len(op):]
		return true
	}
	return false
}

func (p *parser) expr() (Expr, error) {
	x, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.accept("|"):
			y, err := p.term()
			if err != nil {
				return nil, err
			}
			x = Or{L: x, R: y}
		case p.accept("-"):
			y, err := p.term()
			if err != nil {
				return nil, err
			}
			x = Diff{L: x, R: y}
		default:
			return x, nil
		}
	}
}

func (p *parser) term() (Expr, error) {
	x, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.accept("&") {
		y, err := p.factor()
		if err != nil {
			return nil, err
		}
		x = And{L: x, R: y}
	}
	return x, nil
}

func (p *parser) factor() (Expr, error) {
	switch {
	case p.accept("("):
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		if !p.accept(")") {
			return nil, &ParseError{Input: p.s, Msg: "expected )"}
		}
		return x, nil
	case p.accept(emptySym):
		return Empty{}, nil
	}
	if p.s == "" || !wordpat.IsLetterStart(p.s[0]) {
		return nil, &ParseError{Input: p.s, Msg: "expected pattern"}
	}
	w, rest, err := wordpat.ParsePrefix(p.s)
	if err != nil {
		return nil, err
	}
	p.s = rest
	return Pattern(w), nil
}
