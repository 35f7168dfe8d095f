// Package boltiter exposes bolt bucket contents as type-erased sequences.
//
// Bolt cursors are bound to the transaction that created them, so a bucket is
// the textbook case for factory-based sequences: every traversal has to mint
// its own read transaction and cursor. The sequences returned here do exactly
// that, which makes their cursors independent across goroutines as well,
// within bolt's own one-writer-many-readers rules.
package boltiter

import (
	"github.com/boltdb/bolt"

	"go.llib.dev/anyiter"
)

// Entry is one key/value pair read out of a bucket.
// Both byte slices are copies, valid after the traversal's transaction ended.
type Entry struct {
	Key   []byte
	Value []byte
}

// Entries returns a sequence over every key/value pair of the named bucket,
// in bolt's byte-sorted key order.
//
// Each Iterate call begins its own read-only transaction, which is released
// when the cursor is exhausted. Abandoning a cursor midway keeps its
// transaction open, so either exhaust the cursor or consume the sequence
// through an exhausting operation such as Collect or ForEach.
//
// A missing bucket yields an empty traversal.
func Entries(db *bolt.DB, bucket []byte) *anyiter.AnySequence[Entry] {
	name := append([]byte(nil), bucket...)
	return anyiter.FromFactory[Entry](func() anyiter.Iterator[Entry] {
		tx, err := db.Begin(false)
		if err != nil {
			return anyiter.Empty[Entry]().Iterate()
		}
		b := tx.Bucket(name)
		if b == nil {
			_ = tx.Rollback()
			return anyiter.Empty[Entry]().Iterate()
		}
		return &cursorIter{tx: tx, cursor: b.Cursor()}
	})
}

// Keys returns a sequence over the keys of the named bucket.
// The transaction rules of Entries apply.
func Keys(db *bolt.DB, bucket []byte) *anyiter.AnySequence[[]byte] {
	entries := Entries(db, bucket)
	return anyiter.FromFactory[[]byte](func() anyiter.Iterator[[]byte] {
		return anyiter.Map(entries.Iterate(), func(e Entry) []byte { return e.Key })
	})
}

// Values returns a sequence over the values of the named bucket.
// The transaction rules of Entries apply.
func Values(db *bolt.DB, bucket []byte) *anyiter.AnySequence[[]byte] {
	entries := Entries(db, bucket)
	return anyiter.FromFactory[[]byte](func() anyiter.Iterator[[]byte] {
		return anyiter.Map(entries.Iterate(), func(e Entry) []byte { return e.Value })
	})
}

// cursorIter walks one bucket cursor within its own read transaction.
type cursorIter struct {
	tx      *bolt.Tx
	cursor  *bolt.Cursor
	started bool
	done    bool
}

func (i *cursorIter) Next() (Entry, bool) {
	if i.done {
		return Entry{}, false
	}
	var k, v []byte
	if !i.started {
		i.started = true
		k, v = i.cursor.First()
	} else {
		k, v = i.cursor.Next()
	}
	if k == nil {
		i.done = true
		_ = i.tx.Rollback()
		return Entry{}, false
	}
	// bolt memory is only valid inside the transaction
	return Entry{Key: clone(k), Value: clone(v)}, true
}

func clone(bs []byte) []byte {
	return append([]byte(nil), bs...)
}
