// Package boltdb stores cars, categories and customers in an embedded BoltDB
// file. Each record kind lives in its own bucket, keyed by record id, with
// the record encoded as JSON.
package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/rentacar/rentacar/internal/domain"
)

const (
	carsBucket       = "cars"
	categoriesBucket = "categories"
	customersBucket  = "customers"
)

// DB wraps a BoltDB database file.
type DB struct {
	db *bolt.DB
}

// Open opens (or creates) the database at path and ensures every bucket exists.
func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{carsBucket, categoriesBucket, customersBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db: db}, nil
}

// Close releases the database file lock.
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Cars() *Bucket[domain.Car] { return &Bucket[domain.Car]{db: d.db, name: carsBucket} }

func (d *DB) Categories() *Bucket[domain.CarCategory] {
	return &Bucket[domain.CarCategory]{db: d.db, name: categoriesBucket}
}

func (d *DB) Customers() *Bucket[domain.Customer] {
	return &Bucket[domain.Customer]{db: d.db, name: customersBucket}
}

// Bucket is a typed view over one bucket.
type Bucket[T domain.Record] struct {
	db   *bolt.DB
	name string
}

// Find returns the record stored under id.
func (b *Bucket[T]) Find(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rec T
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(b.name)).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("%s: id %q: %w", b.name, id, domain.ErrRecordNotFound)
		}
		return json.Unmarshal(v, &rec)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Put stores rec only if its id is not present yet. It reports whether a
// write happened.
func (b *Bucket[T]) Put(rec T) (bool, error) {
	created := false
	err := b.db.Update(func(tx *bolt.Tx) error {
		bk := tx.Bucket([]byte(b.name))
		key := []byte(rec.RecordID())
		if bk.Get(key) != nil {
			return nil
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		created = true
		return bk.Put(key, data)
	})
	return created, err
}

// Count returns the number of records in the bucket.
func (b *Bucket[T]) Count() (int, error) {
	n := 0
	err := b.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(b.name)).Stats().KeyN
		return nil
	})
	return n, err
}

// Import puts every record, skipping ids that already exist. It returns the
// number of records written.
func Import[T domain.Record](ctx context.Context, b *Bucket[T], records []T) (int, error) {
	written := 0
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		created, err := b.Put(rec)
		if err != nil {
			return written, fmt.Errorf("importing %s %q: %w", b.name, rec.RecordID(), err)
		}
		if created {
			written++
		}
	}
	return written, nil
}
