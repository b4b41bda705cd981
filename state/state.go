// Package state is the local analysis store behind the trackd CLI.
// It keeps the original uploaded bytes verbatim, so a "download
// original" always returns exactly what was uploaded, alongside the
// serialized analysis result, both keyed by the content hash of the
// upload.
package state

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tourlog/trackd/api"
	"go.etcd.io/bbolt"
)

const storeDBName = "trackd.db"

var (
	bucketOriginals = []byte("originals")
	bucketResults   = []byte("results")
)

type Store struct {
	DB *bbolt.DB
}

// Open opens (creating if necessary) the store under datadir.
func Open(datadir string) (*Store, error) {
	if err := os.MkdirAll(datadir, 0700); err != nil {
		return nil, err
	}
	db, err := bbolt.Open(filepath.Join(datadir, storeDBName), 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketOriginals, bucketResults} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{DB: db}, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

// Key is the content hash of an upload, the store's primary key.
func Key(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// PutAnalysis stores the original upload bytes and its analysis result.
// The original is stored byte for byte; it is never rewritten.
func (s *Store) PutAnalysis(original []byte, res *api.Result) (key string, err error) {
	key = Key(original)
	encoded, err := json.Marshal(res)
	if err != nil {
		return "", err
	}
	err = s.DB.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketOriginals).Put([]byte(key), original); err != nil {
			return err
		}
		return tx.Bucket(bucketResults).Put([]byte(key), encoded)
	})
	return key, err
}

// Original returns the upload bytes for key, byte-identical to what was
// stored.
func (s *Store) Original(key string) ([]byte, error) {
	var out []byte
	err := s.DB.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketOriginals).Get([]byte(key))
		if v == nil {
			return fmt.Errorf("no original for key %s", key)
		}
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}

// Result returns the stored analysis for key.
func (s *Store) Result(key string) (*api.Result, error) {
	var res api.Result
	err := s.DB.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketResults).Get([]byte(key))
		if v == nil {
			return fmt.Errorf("no result for key %s", key)
		}
		return json.Unmarshal(v, &res)
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
