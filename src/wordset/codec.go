package wordset

import (
	"bufio"
	"context"
	"encoding/binary"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.brendoncarroll.net/exp/streams"

	"wordset.io/wordset/src/wordpat"
)

// Binary format: one big endian uint32 per node in depth first pre-order.
// Bits 0-25 say which children follow, bit 26 says the node is an end.
// The children follow their parent in ascending symbol order.
const (
	endBit     = 1 << wordpat.AlphabetSize
	recordSize = 4
	// unusedBits must be zero in every record.
	unusedBits = ^uint32(endBit | (endBit - 1))
)

// ErrMalformedRecord is returned when a binary record sets unused bits.
var ErrMalformedRecord = errors.New("wordset: malformed record")

func record[N Reader[N]](n N, prune bool) uint32 {
	var rec uint32
	if n.IsEnd() {
		rec |= endBit
	}
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		c, ok := n.Child(s)
		if !ok || (prune && IsEmpty(c)) {
			continue
		}
		rec |= 1 << s
	}
	return rec
}

func writeNode[N Reader[N]](w io.Writer, n N, prune bool) error {
	rec := record(n, prune)
	var buf [recordSize]byte
	binary.BigEndian.PutUint32(buf[:], rec)
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		if rec&(1<<s) == 0 {
			continue
		}
		c, _ := n.Child(s)
		if err := writeNode(w, c, prune); err != nil {
			return err
		}
	}
	return nil
}

// WriteBinary writes n to w in the binary format.
func WriteBinary[N Reader[N]](w io.Writer, n N) error {
	bw := bufio.NewWriter(w)
	if err := writeNode(bw, n, false); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadBinary reads a node in the binary format, in the representation of proto.
// Input that ends before a required record is an io.ErrUnexpectedEOF.
func ReadBinary[N Node[N]](r io.Reader, proto N) (N, error) {
	var count int
	return readNode(bufio.NewReader(r), proto, &count)
}

func readNode[N Node[N]](r io.Reader, proto N, count *int) (N, error) {
	var zero N
	var buf [recordSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return zero, errors.Wrapf(err, "reading record %d", *count)
	}
	rec := binary.BigEndian.Uint32(buf[:])
	if rec&unusedBits != 0 {
		return zero, errors.Wrapf(ErrMalformedRecord, "record %d: %08x", *count, rec)
	}
	*count++
	n := proto.Empty()
	n.SetEnd(rec&endBit != 0)
	for s := Symbol(0); s < wordpat.AlphabetSize; s++ {
		if rec&(1<<s) == 0 {
			continue
		}
		c, err := readNode(r, proto, count)
		if err != nil {
			n.Release()
			return zero, err
		}
		n.SetChild(s, c)
	}
	return n, nil
}

// WriteWords writes every string in n to w, one per line.
func WriteWords[N Reader[N]](ctx context.Context, w io.Writer, n N) error {
	bw := bufio.NewWriter(w)
	it := Strings(n)
	var x string
	for {
		if err := it.Next(ctx, &x); err != nil {
			if streams.IsEOS(err) {
				break
			}
			return err
		}
		if _, err := bw.WriteString(x); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadWords reads one pattern per line and returns the union of them all,
// in the representation of proto. An empty line is the empty pattern.
// cache may be nil.
func ReadWords[N Node[N]](r io.Reader, proto N, cache *wordpat.Cache) (N, error) {
	parse := wordpat.ParseWord
	if cache != nil {
		parse = cache.Parse
	}
	ret := proto.Empty()
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		w, err := parse(strings.TrimSuffix(sc.Text(), "\r"))
		if err != nil {
			ret.Release()
			var zero N
			return zero, errors.Wrapf(err, "line %d", line)
		}
		x := FromWord(proto, w)
		UnionInto(ret, x)
		x.Release()
	}
	if err := sc.Err(); err != nil {
		ret.Release()
		var zero N
		return zero, err
	}
	return ret, nil
}
