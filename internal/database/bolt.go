package database

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// openTimeout limits waiting for file lock held by another process.
const openTimeout = 5 * time.Second

// BoltKVStore provides simple kv store interface based on boltdb.
type BoltKVStore struct {
	db         *bbolt.DB
	bucketName []byte
}

// NewBoltKVStore opens (or creates) bolt database file and ensures bucket exists.
func NewBoltKVStore(dbPath string, bucketName string) (*BoltKVStore, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", dbPath, err)
	}

	if err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating database bucket: %w", err)
	}

	return &BoltKVStore{
		db:         db,
		bucketName: []byte(bucketName),
	}, nil
}

// ReadKey returns data saved for given key. Returns nil if there's no data stored.
func (s *BoltKVStore) ReadKey(key []byte) ([]byte, error) {
	var data []byte
	if err := s.db.View(func(tx *bbolt.Tx) error {
		// Value is only valid during the transaction.
		if v := tx.Bucket(s.bucketName).Get(key); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("reading from db: %w", err)
	}

	return data, nil
}

// UpdateKey stores given data under given key.
func (s *BoltKVStore) UpdateKey(key []byte, data []byte) error {
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucketName).Put(key, data)
	}); err != nil {
		return fmt.Errorf("writing to db: %w", err)
	}

	return nil
}

// Keys returns number of keys stored in bucket.
func (s *BoltKVStore) Keys() (int, error) {
	var n int
	if err := s.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(s.bucketName).Stats().KeyN
		return nil
	}); err != nil {
		return 0, fmt.Errorf("reading db stats: %w", err)
	}

	return n, nil
}

// Close closes database.
func (s *BoltKVStore) Close() error {
	return s.db.Close()
}
