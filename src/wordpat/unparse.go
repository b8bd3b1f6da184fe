package wordpat

import (
	"strings"
)

// String unparses l.
// The empty Letter is written as "[]", which does not parse.
func (l Letter) String() string {
	var sb strings.Builder
	l.writeTo(&sb)
	return sb.String()
}

func (l Letter) writeTo(sb *strings.Builder) {
	switch {
	case l.IsAll():
		sb.WriteByte('.')
	case l.Len() == 1:
		sb.WriteByte(l.Peek().X.Char())
	default:
		sb.WriteByte('[')
		for _, r := range runs(l) {
			sb.WriteByte(r[0].Char())
			if r[1] != r[0] {
				sb.WriteByte('-')
				sb.WriteByte(r[1].Char())
			}
		}
		sb.WriteByte(']')
	}
}

// runs combines consecutive symbols into inclusive [start, end] pairs.
func runs(l Letter) [][2]Symbol {
	var ret [][2]Symbol
	for _, s := range l.Symbols() {
		if n := len(ret); n > 0 && ret[n-1][1]+1 == s {
			ret[n-1][1] = s
			continue
		}
		ret = append(ret, [2]Symbol{s, s})
	}
	return ret
}

// String unparses w.
func (w Word) String() string {
	var sb strings.Builder
	for _, l := range w {
		l.writeTo(&sb)
	}
	return sb.String()
}
