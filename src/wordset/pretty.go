package wordset

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kr/text"

	"wordset.io/wordset/src/wordpat"
)

// Fprint writes a drawing of n to w, one child per line indented under its
// parent. A '$' after a symbol marks the end of a string.
func Fprint[N Reader[N]](w io.Writer, n N) error {
	if _, err := fmt.Fprintf(w, "(%d strings)\n", Len(n)); err != nil {
		return err
	}
	return fprintChildren(w, n)
}

func fprintChildren[N Reader[N]](w io.Writer, n N) error {
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		c, ok := n.Child(s)
		if !ok {
			continue
		}
		mark := ""
		if c.IsEnd() {
			mark = "$"
		}
		if _, err := fmt.Fprintf(w, "%v%s\n", s, mark); err != nil {
			return err
		}
		w2 := text.NewIndentWriter(w, []byte("  "))
		if err := fprintChildren(w2, c); err != nil {
			return err
		}
	}
	return nil
}

const describeMax = 16

// Describe returns the strings in n as a single line like {car cat}.
// Sets with many strings are cut short.
func Describe[N Reader[N]](n N) string {
	ctx := context.Background()
	var sb strings.Builder
	sb.WriteByte('{')
	it := Strings(n)
	var x string
	for i := 0; it.Next(ctx, &x) == nil; i++ {
		if i == describeMax {
			sb.WriteString(" ...")
			break
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(x)
	}
	sb.WriteByte('}')
	return sb.String()
}
