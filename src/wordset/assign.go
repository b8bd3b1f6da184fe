package wordset

import (
	"wordset.io/wordset/src/wordpat"
)

// UnionInto adds every string in src to dst, in place.
// Branches src has and dst lacks are copied into dst's representation.
func UnionInto[N Node[N], M Reader[M]](dst N, src M) {
	if src.IsEnd() && !dst.IsEnd() {
		dst.SetEnd(true)
	}
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		sc, ok := src.Child(s)
		if !ok {
			continue
		}
		if dc, ok := dst.MutChild(s); ok {
			UnionInto(dc, sc)
		} else {
			dst.SetChild(s, Convert(dst, sc))
		}
	}
}

// IntersectInto removes every string from dst that is not in src, in place.
func IntersectInto[N Node[N], M Reader[M]](dst N, src M) {
	if dst.IsEnd() && !src.IsEnd() {
		dst.SetEnd(false)
	}
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		if _, ok := dst.Child(s); !ok {
			continue
		}
		sc, ok := src.Child(s)
		if !ok {
			dst.ClearChild(s)
			continue
		}
		dc, _ := dst.MutChild(s)
		IntersectInto(dc, sc)
	}
}

// DiffInto removes every string in src from dst, in place.
func DiffInto[N Node[N], M Reader[M]](dst N, src M) {
	if dst.IsEnd() && src.IsEnd() {
		dst.SetEnd(false)
	}
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		sc, ok := src.Child(s)
		if !ok {
			continue
		}
		if _, ok := dst.Child(s); !ok {
			continue
		}
		dc, _ := dst.MutChild(s)
		DiffInto(dc, sc)
	}
}
