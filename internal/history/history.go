// Package history persists the cmd/cas REPL's input/result pairs to a local
// bbolt database, grounded on elves-elvish's directory-history bucket
// pattern (pkg/store/dir.go: one bucket per concern, CreateBucketIfNotExists
// at open, a Cursor walk for listing) rather than reaching for a SQL
// dependency for what is a small ordered key/value log.
package history

import (
	"encoding/binary"
	"strings"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var bucketEntries = []byte("entries")

// Entry is one REPL turn: the raw input line and its rendered TeX result.
type Entry struct {
	Input  string
	Result string
}

// Store wraps a bbolt database holding the REPL's history bucket.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if absent) the history database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "history: open")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketEntries)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "history: initialize bucket")
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records one REPL turn, keyed by the bucket's auto-incrementing
// sequence number so All returns entries in insertion order.
func (s *Store) Append(input, result string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketEntries)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		value := input + "\x00" + result
		return b.Put(key, []byte(value))
	})
}

// All returns every recorded entry in insertion order.
func (s *Store) All() ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketEntries)
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			parts := strings.SplitN(string(v), "\x00", 2)
			e := Entry{Input: parts[0]}
			if len(parts) == 2 {
				e.Result = parts[1]
			}
			entries = append(entries, e)
		}
		return nil
	})
	return entries, err
}
