// Package wordfile loads and saves word sets, choosing the format from the
// file extension.
//
//	.tre   binary
//	.txt   one pattern per line
//
// Either may be wrapped in compression by adding .zst, .xz or .gz,
// as in words.txt.zst.
package wordfile

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"wordset.io/wordset/src/wordpat"
	"wordset.io/wordset/src/wordset"
)

// ErrUnsupportedFormat is returned for a path without a known extension.
var ErrUnsupportedFormat = errors.New("wordfile: unsupported format")

// DefaultCacheSize is the number of parsed patterns kept while loading a word list.
const DefaultCacheSize = 1 << 12

type Format int

const (
	Binary Format = iota + 1
	Words
)

func (f Format) String() string {
	switch f {
	case Binary:
		return "binary"
	case Words:
		return "words"
	default:
		return "Format(?)"
	}
}

type Compression int

const (
	None Compression = iota
	Zstd
	XZ
	Gzip
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case XZ:
		return "xz"
	case Gzip:
		return "gzip"
	default:
		return "Compression(?)"
	}
}

var formatExts = map[string]Format{
	".tre": Binary,
	".txt": Words,
}

var compressionExts = map[string]Compression{
	".zst": Zstd,
	".xz":  XZ,
	".gz":  Gzip,
}

// Detect returns the format and compression of the file at p.
func Detect(p string) (Format, Compression, error) {
	ext := strings.ToLower(filepath.Ext(p))
	comp, ok := compressionExts[ext]
	if ok {
		p = strings.TrimSuffix(p, filepath.Ext(p))
		ext = strings.ToLower(filepath.Ext(p))
	}
	if f, ok := formatExts[ext]; ok {
		return f, comp, nil
	}
	return 0, 0, errors.Wrapf(ErrUnsupportedFormat, "%q", p)
}

// IsPath returns true if p has an extension Load understands.
func IsPath(p string) bool {
	_, _, err := Detect(p)
	return err == nil
}

// Load reads the file at p in the representation of proto.
func Load[N wordset.Node[N]](ctx context.Context, proto N, p string) (N, error) {
	var zero N
	format, comp, err := Detect(p)
	if err != nil {
		return zero, err
	}
	f, err := os.Open(p)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	r, err := decompress(f, comp)
	if err != nil {
		return zero, errors.Wrapf(err, "opening %s", p)
	}
	defer func() {
		if err := r.Close(); err != nil {
			logctx.Warn(ctx, "closing decompressor", zap.String("path", p), zap.Error(err))
		}
	}()
	logctx.Debugf(ctx, "loading %s: format=%v compression=%v", p, format, comp)
	var n N
	switch format {
	case Binary:
		n, err = wordset.ReadBinary(r, proto)
	case Words:
		n, err = wordset.ReadWords(r, proto, wordpat.NewCache(DefaultCacheSize))
	}
	if err != nil {
		return zero, errors.Wrapf(err, "loading %s", p)
	}
	return n, nil
}

// Save writes n to the file at p, replacing it.
func Save[N wordset.Reader[N]](ctx context.Context, n N, p string) error {
	format, comp, err := Detect(p)
	if err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return err
	}
	defer f.Close()
	w, err := compress(f, comp)
	if err != nil {
		return err
	}
	logctx.Debugf(ctx, "saving %s: format=%v compression=%v", p, format, comp)
	switch format {
	case Binary:
		err = wordset.WriteBinary(w, n)
	case Words:
		err = wordset.WriteWords(ctx, w, n)
	}
	if err != nil {
		w.Close()
		return errors.Wrapf(err, "saving %s", p)
	}
	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "saving %s", p)
	}
	return f.Close()
}

func decompress(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case XZ:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(xzr), nil
	case Gzip:
		return gzip.NewReader(r)
	default:
		return io.NopCloser(r), nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func compress(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case Zstd:
		return zstd.NewWriter(w)
	case XZ:
		return xz.NewWriter(w)
	case Gzip:
		return gzip.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}
