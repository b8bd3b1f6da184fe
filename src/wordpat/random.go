package wordpat

import (
	"math"
	"math/rand/v2"
)

// RandomLetter returns a Letter with each symbol included independently
// with probability p.
func RandomLetter(rng *rand.Rand, p float64) Letter {
	var l Letter
	for s := Symbol(0); s < AlphabetSize; s++ {
		if rng.Float64() < p {
			l.Insert(s)
		}
	}
	return l
}

// RandomWord returns a Word of geometrically distributed length, continuing
// with probability groupP and capped at maxLen, whose Letters are sampled
// with RandomLetter(rng, charP).
func RandomWord(rng *rand.Rand, charP, groupP float64, maxLen int) Word {
	n := int(math.Floor(math.Log(rng.Float64()) / math.Log(groupP)))
	if n > maxLen || n < 0 {
		n = maxLen
	}
	w := make(Word, n)
	for i := range w {
		w[i] = RandomLetter(rng, charP)
	}
	return w
}
