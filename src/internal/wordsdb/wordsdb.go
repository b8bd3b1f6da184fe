// Package wordsdb is a catalog of named word sets stored in SQLite.
package wordsdb

import (
	"bytes"
	"context"
	"database/sql"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.brendoncarroll.net/tai64"

	"wordset.io/wordset/src/internal/dbutil"
	"wordset.io/wordset/src/wordset"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no set has the requested name.
var ErrNotFound = errors.New("wordsdb: word set not found")

// Open opens a database in the file at p.
// It creates one if it does not exist
func Open(p string) (*sqlx.DB, error) {
	if p == "" {
		return nil, errors.New("wordsdb.Open: empty path")
	}
	// How To for PRAGMAs with the modernc.org/sqlite driver
	// https://pkg.go.dev/modernc.org/sqlite@v1.34.4#Driver.Open
	db, err := sqlx.Open("sqlite", "file:"+p+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// NewMemory creates an in memory database
func NewMemory() *sqlx.DB {
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}
	db.SetMaxOpenConns(1)
	return db
}

// migrations are applied in order, the database's user_version counts how
// many have been applied.
var migrations = []string{
	`CREATE TABLE word_sets (
		name TEXT NOT NULL PRIMARY KEY,
		data BLOB NOT NULL,
		fingerprint BLOB NOT NULL,
		word_count INTEGER NOT NULL,
		created_at BLOB NOT NULL
	) STRICT`,
	`CREATE INDEX word_sets_fingerprint ON word_sets (fingerprint)`,
}

// Setup brings the schema up to date.
func Setup(ctx context.Context, db *sqlx.DB) error {
	return dbutil.DoTx(ctx, db, func(tx *sqlx.Tx) error {
		version, err := dbutil.GetTx[int](tx, `PRAGMA user_version`)
		if err != nil {
			return err
		}
		if version > len(migrations) {
			return errors.Errorf("wordsdb: schema version %d is newer than this program (%d)", version, len(migrations))
		}
		for i := version; i < len(migrations); i++ {
			logctx.Debugf(ctx, "applying migration %d", i)
			if _, err := tx.Exec(migrations[i]); err != nil {
				return errors.Wrapf(err, "migration %d", i)
			}
		}
		// PRAGMA does not take parameters
		_, err = tx.Exec(`PRAGMA user_version = ` + strconv.Itoa(len(migrations)))
		return err
	})
}

// Info describes a stored set.
type Info struct {
	Name        string
	Fingerprint wordset.Fingerprint
	WordCount   int64
	CreatedAt   tai64.TAI64N
}

type infoRow struct {
	Name        string `db:"name"`
	Fingerprint []byte `db:"fingerprint"`
	WordCount   int64  `db:"word_count"`
	CreatedAt   []byte `db:"created_at"`
}

func (r infoRow) info() (*Info, error) {
	createdAt, err := tai64.ParseN(r.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(r.Fingerprint) != len(wordset.Fingerprint{}) {
		return nil, errors.Errorf("wordsdb: bad fingerprint for %q", r.Name)
	}
	return &Info{
		Name:        r.Name,
		Fingerprint: wordset.Fingerprint(r.Fingerprint),
		WordCount:   r.WordCount,
		CreatedAt:   createdAt,
	}, nil
}

var (
	encoder, _ = zstd.NewWriter(nil)
	decoder, _ = zstd.NewReader(nil)
)

// Put stores n under name, replacing any set already stored there.
func Put[N wordset.Reader[N]](tx *sqlx.Tx, name string, n N) (*Info, error) {
	if name == "" {
		return nil, errors.New("wordsdb.Put: empty name")
	}
	var buf bytes.Buffer
	if err := wordset.WriteBinary(&buf, n); err != nil {
		return nil, err
	}
	data := encoder.EncodeAll(buf.Bytes(), nil)
	fp := wordset.FingerprintOf(n)
	info := &Info{
		Name:        name,
		Fingerprint: fp,
		WordCount:   int64(wordset.Len(n)),
		CreatedAt:   tai64.Now(),
	}
	if _, err := tx.Exec(`INSERT INTO word_sets (name, data, fingerprint, word_count, created_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET data = excluded.data, fingerprint = excluded.fingerprint,
		word_count = excluded.word_count, created_at = excluded.created_at`,
		name, data, fp[:], info.WordCount, info.CreatedAt.Marshal()); err != nil {
		return nil, err
	}
	return info, nil
}

// Get loads the set stored under name in the representation of proto.
func Get[N wordset.Node[N]](tx *sqlx.Tx, proto N, name string) (N, error) {
	var zero N
	data, err := dbutil.GetTx[[]byte](tx, `SELECT data FROM word_sets WHERE name = ?`, name)
	if err != nil {
		return zero, notFound(err, name)
	}
	raw, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return zero, errors.Wrapf(err, "decompressing %q", name)
	}
	n, err := wordset.ReadBinary(bytes.NewReader(raw), proto)
	if err != nil {
		return zero, errors.Wrapf(err, "decoding %q", name)
	}
	return n, nil
}

// Inspect returns the Info for the set stored under name.
func Inspect(tx *sqlx.Tx, name string) (*Info, error) {
	var row infoRow
	if err := tx.Get(&row, `SELECT name, fingerprint, word_count, created_at FROM word_sets WHERE name = ?`, name); err != nil {
		return nil, notFound(err, name)
	}
	return row.info()
}

// List returns the Info for every stored set, ordered by name.
func List(tx *sqlx.Tx) ([]Info, error) {
	var rows []infoRow
	if err := tx.Select(&rows, `SELECT name, fingerprint, word_count, created_at FROM word_sets ORDER BY name`); err != nil {
		return nil, err
	}
	ret := make([]Info, 0, len(rows))
	for _, row := range rows {
		info, err := row.info()
		if err != nil {
			return nil, err
		}
		ret = append(ret, *info)
	}
	return ret, nil
}

// FindByFingerprint returns the names of every set holding the same strings as fp.
func FindByFingerprint(tx *sqlx.Tx, fp wordset.Fingerprint) ([]string, error) {
	var names []string
	if err := tx.Select(&names, `SELECT name FROM word_sets WHERE fingerprint = ? ORDER BY name`, fp[:]); err != nil {
		return nil, err
	}
	return names, nil
}

// Drop removes the set stored under name.
func Drop(tx *sqlx.Tx, name string) error {
	res, err := tx.Exec(`DELETE FROM word_sets WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrapf(ErrNotFound, "%q", name)
	}
	return nil
}

func notFound(err error, name string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errors.Wrapf(ErrNotFound, "%q", name)
	}
	return err
}
