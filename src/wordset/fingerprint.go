package wordset

import (
	"bytes"
	"encoding/hex"

	"lukechampine.com/blake3"
)

// Fingerprint identifies a set of strings.
type Fingerprint [32]byte

func (fp Fingerprint) String() string {
	return hex.EncodeToString(fp[:])
}

// FingerprintOf hashes the binary encoding of n with its empty branches
// left out, so any two nodes holding the same strings have the same
// Fingerprint whatever their representation.
func FingerprintOf[N Reader[N]](n N) Fingerprint {
	var buf bytes.Buffer
	if err := writeNode(&buf, n, true); err != nil {
		panic(err)
	}
	return blake3.Sum256(buf.Bytes())
}
