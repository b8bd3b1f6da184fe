package wordpat

import (
	"fmt"
	"math/bits"

	"go.brendoncarroll.net/exp/maybe"
)

// AlphabetSize is the number of symbols a Letter can hold.
const AlphabetSize = 26

// Symbol is an index into the alphabet. 0 is 'a' and 25 is 'z'.
type Symbol uint8

// SymbolOf returns the Symbol for c.
func SymbolOf(c byte) (Symbol, error) {
	if c < 'a' || c > 'z' {
		return 0, &SymbolError{Char: rune(c)}
	}
	return Symbol(c - 'a'), nil
}

// Char returns the character for s.
func (s Symbol) Char() byte {
	return 'a' + byte(s)
}

func (s Symbol) String() string {
	return string(rune(s.Char()))
}

// SymbolError is returned when a character outside a-z is used as a symbol.
type SymbolError struct {
	Char rune
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("wordpat: %q is not in a-z", e.Char)
}

const allMask = 1<<AlphabetSize - 1

// Letter is the set of symbols accepted at one position of a pattern.
// The zero value is the empty Letter, which accepts nothing.
type Letter struct {
	mask uint32
}

// All returns the Letter containing every symbol.
func All() Letter {
	return Letter{mask: allMask}
}

// Singleton returns the Letter containing only s.
// It panics if s is out of range.
func Singleton(s Symbol) Letter {
	if s >= AlphabetSize {
		panic(fmt.Sprintf("wordpat: symbol %d out of range", s))
	}
	return Letter{mask: 1 << s}
}

// LetterOf returns the Letter containing every character in chars.
func LetterOf(chars string) (Letter, error) {
	var l Letter
	for i := 0; i < len(chars); i++ {
		s, err := SymbolOf(chars[i])
		if err != nil {
			return Letter{}, err
		}
		l.mask |= 1 << s
	}
	return l, nil
}

// rangeLetter returns the letter for the inclusive range [start, end].
// A reversed range is empty.
func rangeLetter(start, end Symbol) Letter {
	if start > end {
		return Letter{}
	}
	return Letter{mask: (1<<(end+1) - 1) &^ (1<<start - 1)}
}

func (l Letter) Len() int {
	return bits.OnesCount32(l.mask)
}

func (l Letter) IsEmpty() bool {
	return l.mask == 0
}

// IsAll returns true if l holds the whole alphabet.
func (l Letter) IsAll() bool {
	return l.mask == allMask
}

// Has returns true if the symbol at index i is in l.
// Indices outside the alphabet are never present.
func (l Letter) Has(i int) bool {
	if i < 0 || i >= AlphabetSize {
		return false
	}
	return l.has(Symbol(i))
}

// has is Has without a bounds check.
func (l Letter) has(s Symbol) bool {
	return l.mask&(1<<s) != 0
}

// Contains returns true if the character c is in l.
func (l Letter) Contains(c byte) bool {
	if c < 'a' || c > 'z' {
		return false
	}
	return l.has(Symbol(c - 'a'))
}

func (l Letter) Subset(other Letter) bool {
	return l.mask&^other.mask == 0
}

func (l Letter) Superset(other Letter) bool {
	return other.Subset(l)
}

// Intersects returns true if l and other have a symbol in common.
func (l Letter) Intersects(other Letter) bool {
	return l.mask&other.mask != 0
}

// Insert adds s and reports whether it was already present.
// Symbols outside the alphabet are ignored.
func (l *Letter) Insert(s Symbol) bool {
	if s >= AlphabetSize {
		return false
	}
	prev := l.has(s)
	l.mask |= 1 << s
	return prev
}

// Delete removes s and reports whether it was present.
func (l *Letter) Delete(s Symbol) bool {
	if s >= AlphabetSize {
		return false
	}
	prev := l.has(s)
	l.mask &^= 1 << s
	return prev
}

// Retain keeps only the symbols for which keep returns true.
func (l *Letter) Retain(keep func(Symbol) bool) {
	for _, s := range l.Symbols() {
		if !keep(s) {
			l.mask &^= 1 << s
		}
	}
}

func (l *Letter) Clear() {
	l.mask = 0
}

// Intersect keeps only the symbols that are also in other.
func (l *Letter) Intersect(other Letter) {
	l.mask &= other.mask
}

// Remove removes every symbol that is in other.
func (l *Letter) Remove(other Letter) {
	l.mask &^= other.mask
}

// Union adds every symbol that is in other.
func (l *Letter) Union(other Letter) {
	l.mask |= other.mask
}

// Peek returns the lowest symbol in l, if any.
func (l Letter) Peek() maybe.Maybe[Symbol] {
	if l.mask == 0 {
		return maybe.Nothing[Symbol]()
	}
	return maybe.Just(Symbol(bits.TrailingZeros32(l.mask)))
}

// pop removes and returns the lowest symbol in l.
// It must not be called on an empty Letter.
func (l *Letter) pop() Symbol {
	s := Symbol(bits.TrailingZeros32(l.mask))
	l.mask &= l.mask - 1
	return s
}

// Symbols returns the symbols in l in ascending order.
func (l Letter) Symbols() []Symbol {
	ret := make([]Symbol, 0, l.Len())
	for m := l.mask; m != 0; m &= m - 1 {
		ret = append(ret, Symbol(bits.TrailingZeros32(m)))
	}
	return ret
}

// Chars returns the characters in l in ascending order.
func (l Letter) Chars() string {
	ret := make([]byte, 0, l.Len())
	for _, s := range l.Symbols() {
		ret = append(ret, s.Char())
	}
	return string(ret)
}

// Mask returns the bitmask of l, bit i set for symbol i.
func (l Letter) Mask() uint32 {
	return l.mask
}

// LetterFromMask returns the Letter for the low 26 bits of mask.
func LetterFromMask(mask uint32) Letter {
	return Letter{mask: mask & allMask}
}
