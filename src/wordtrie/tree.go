// Package wordtrie is the plain prefix tree representation of a word set.
// Every node owns its children outright, nothing is shared.
package wordtrie

import (
	"wordset.io/wordset/src/wordpat"
	"wordset.io/wordset/src/wordset"
)

type Symbol = wordpat.Symbol

var _ wordset.Node[*Tree] = &Tree{}

// Tree is a node in a prefix tree.
// The zero value is an empty set.
type Tree struct {
	end      bool
	children [wordpat.AlphabetSize]*Tree
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

// FromWord returns a Tree holding every string matched by w.
func FromWord(w wordpat.Word) *Tree {
	return wordset.FromWord(New(), w)
}

// Parse returns a Tree holding every string matched by the pattern.
func Parse(pattern string) (*Tree, error) {
	w, err := wordpat.ParseWord(pattern)
	if err != nil {
		return nil, err
	}
	return FromWord(w), nil
}

// MustParse is Parse but panics on error.
func MustParse(pattern string) *Tree {
	t, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return t
}

// All returns a Tree holding every string of length n.
func All(n int) *Tree {
	w := make(wordpat.Word, n)
	for i := range w {
		w[i] = wordpat.All()
	}
	return FromWord(w)
}

func (t *Tree) Empty() *Tree {
	return New()
}

func (t *Tree) IsEnd() bool {
	return t.end
}

func (t *Tree) SetEnd(end bool) {
	t.end = end
}

func (t *Tree) Child(s Symbol) (*Tree, bool) {
	c := t.children[s]
	return c, c != nil
}

func (t *Tree) MutChild(s Symbol) (*Tree, bool) {
	return t.Child(s)
}

// SetChild makes child the subtree for s. t owns child afterwards.
func (t *Tree) SetChild(s Symbol, child *Tree) {
	t.children[s] = child
}

func (t *Tree) ClearChild(s Symbol) {
	t.children[s] = nil
}

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	ret := &Tree{end: t.end}
	for i, c := range t.children {
		if c != nil {
			ret.children[i] = c.Clone()
		}
	}
	return ret
}

// Release does nothing, trees are garbage collected.
func (t *Tree) Release() {}

func (t *Tree) IsLeaf() bool {
	for _, c := range t.children {
		if c != nil {
			return false
		}
	}
	return true
}

func (t *Tree) IsEmpty() bool {
	return wordset.IsEmpty(t)
}

// Len returns the number of strings in t.
func (t *Tree) Len() int {
	return wordset.Len(t)
}

// Has returns true if the string x is in t.
func (t *Tree) Has(x string) bool {
	return wordset.Contains(t, x)
}

// Insert adds every string matched by w.
func (t *Tree) Insert(w wordpat.Word) {
	t.UnionWith(FromWord(w))
}

// Remove removes every string matched by w.
func (t *Tree) Remove(w wordpat.Word) {
	t.SubtractWith(FromWord(w))
}

// UnionWith adds every string in other to t.
func (t *Tree) UnionWith(other *Tree) {
	wordset.UnionInto(t, other)
}

// IntersectWith removes every string from t that is not in other.
func (t *Tree) IntersectWith(other *Tree) {
	wordset.IntersectInto(t, other)
}

// SubtractWith removes every string in other from t.
func (t *Tree) SubtractWith(other *Tree) {
	wordset.DiffInto(t, other)
}

// Prune removes empty branches.
func (t *Tree) Prune() {
	wordset.Prune(t)
}

// Clear removes every string.
func (t *Tree) Clear() {
	*t = Tree{}
}

// String returns the strings in t as a single line, mostly for debugging.
func (t *Tree) String() string {
	return wordset.Describe(t)
}
