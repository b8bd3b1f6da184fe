// Package wordpat implements a small pattern language for sets of
// fixed length strings over the alphabet a-z.
//
// A pattern is a sequence of letters, each of which is one of
//
//	a        a single character
//	.        any character
//	[abc]    a group of characters
//	[a-d]    a range, the same as [abcd]
//	[-f]     an open range, the same as [a-f]
//	[w-]     an open range, the same as [w-z]
//
// Groups may mix characters and ranges, e.g. [a-cxz].
// There are no quantifiers, every pattern matches strings of one length.
package wordpat

import (
	"context"
	"math/big"

	"go.brendoncarroll.net/exp/streams"
)

// Word is a sequence of Letters, one per position of the strings it matches.
type Word []Letter

// Push appends a Letter to the back of w.
func (w *Word) Push(l Letter) {
	*w = append(*w, l)
}

// PopFront removes and returns the first Letter.
func (w *Word) PopFront() (Letter, bool) {
	if len(*w) == 0 {
		return Letter{}, false
	}
	l := (*w)[0]
	*w = (*w)[1:]
	return l, true
}

// PopBack removes and returns the last Letter.
func (w *Word) PopBack() (Letter, bool) {
	n := len(*w)
	if n == 0 {
		return Letter{}, false
	}
	l := (*w)[n-1]
	*w = (*w)[:n-1]
	return l, true
}

// Split returns the first Letter and the remainder of w.
// ok is false if w has no Letters.
func (w Word) Split() (head Letter, tail Word, ok bool) {
	if len(w) == 0 {
		return Letter{}, nil, false
	}
	return w[0], w[1:], true
}

// IsDead returns true if any Letter in w is empty, meaning w matches nothing.
func (w Word) IsDead() bool {
	for _, l := range w {
		if l.IsEmpty() {
			return true
		}
	}
	return false
}

// Matches returns true if x is one of the strings described by w.
func (w Word) Matches(x string) bool {
	if len(x) != len(w) {
		return false
	}
	for i, l := range w {
		if !l.Contains(x[i]) {
			return false
		}
	}
	return true
}

// Count returns the number of strings described by w.
func (w Word) Count() *big.Int {
	ret := big.NewInt(1)
	for _, l := range w {
		ret.Mul(ret, big.NewInt(int64(l.Len())))
	}
	return ret
}

// WordOf returns the Word matching exactly the string x.
func WordOf(x string) (Word, error) {
	w := make(Word, len(x))
	for i := 0; i < len(x); i++ {
		s, err := SymbolOf(x[i])
		if err != nil {
			return nil, err
		}
		w[i] = Singleton(s)
	}
	return w, nil
}

// Strings returns an iterator over every string matched by w,
// in lexicographic order.
func (w Word) Strings() *StringIter {
	it := &StringIter{word: w}
	it.Reset()
	return it
}

var _ streams.Iterator[string] = &StringIter{}

// StringIter enumerates the strings of a Word like an odometer,
// one digit per Letter with the least significant digit at the back.
type StringIter struct {
	// word has no empty Letters unless done is set.
	word Word
	// digits[i] is the current symbol at position i.
	digits []Symbol
	// left[i] holds the symbols still to be tried at position i.
	left []Letter
	done bool
	// started is false until the first string is emitted.
	started bool
}

// Reset restarts the enumeration from the first string.
func (it *StringIter) Reset() {
	it.digits = it.digits[:0]
	it.left = it.left[:0]
	it.started = false
	it.done = it.word.IsDead()
	if it.done {
		return
	}
	it.fill()
}

// fill sets every position after the current digits to its first symbol.
func (it *StringIter) fill() {
	for i := len(it.digits); i < len(it.word); i++ {
		l := it.word[i]
		it.digits = append(it.digits, l.pop())
		it.left = append(it.left, l)
	}
}

func (it *StringIter) Next(ctx context.Context, dst *string) error {
	if it.done {
		return streams.EOS()
	}
	if it.started {
		// drop exhausted positions from the back, carrying into the previous one
		for len(it.left) > 0 && it.left[len(it.left)-1].IsEmpty() {
			it.left = it.left[:len(it.left)-1]
			it.digits = it.digits[:len(it.digits)-1]
		}
		if len(it.left) == 0 {
			it.done = true
			return streams.EOS()
		}
		last := len(it.left) - 1
		it.digits[last] = it.left[last].pop()
		it.fill()
	}
	it.started = true
	buf := make([]byte, len(it.digits))
	for i, s := range it.digits {
		buf[i] = s.Char()
	}
	*dst = string(buf)
	return nil
}
