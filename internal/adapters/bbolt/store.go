// Package bbolt implements the ports storage interfaces using bbolt
// (embedded B+ tree). Ratings live in one bucket keyed by
// "fingerprint:id" with JSON values, watch-mode marks in another keyed
// by fingerprint alone. Writes are transactional; a crash mid-write
// cannot corrupt previously committed data.
package bbolt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/corey/haikus/internal/ports"
)

// Bucket keys
var (
	bucketRatings = []byte("ratings")
	bucketMarks   = []byte("marks")
)

// Store implements ports.RatingStore and ports.MarkStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ratingKey builds the bucket key for a rating. The fingerprint prefix
// keeps one haiku's ratings adjacent for cursor scans.
func ratingKey(fingerprint, id string) []byte {
	return []byte(fingerprint + ":" + id)
}

// SaveRating validates and persists r, filling in ID and CreatedAt.
func (s *Store) SaveRating(r *ports.Rating) error {
	if r == nil {
		return fmt.Errorf("nil rating")
	}
	if r.Fingerprint == "" {
		return fmt.Errorf("rating has no fingerprint")
	}
	if r.Stars < 1 || r.Stars > 5 {
		return fmt.Errorf("rating stars %d out of range 1-5", r.Stars)
	}

	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()

	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal rating: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketRatings)
		if err != nil {
			return err
		}
		return b.Put(ratingKey(r.Fingerprint, r.ID), data)
	})
}

// Ratings returns every stored rating, newest first.
func (s *Store) Ratings() ([]ports.Rating, error) {
	var out []ports.Rating

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRatings)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var r ports.Rating
			// Unmarshal copies, so the tx-scoped value slice is safe here.
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("unmarshal rating %q: %w", k, err)
			}
			out = append(out, r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(out)
	return out, nil
}

// RatingsFor returns the ratings recorded for one fingerprint, newest
// first. A fingerprint nobody has rated yields an empty slice.
func (s *Store) RatingsFor(fingerprint string) ([]ports.Rating, error) {
	prefix := []byte(fingerprint + ":")
	out := []ports.Rating{}

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRatings)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var r ports.Rating
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("unmarshal rating %q: %w", k, err)
			}
			out = append(out, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(ratings []ports.Rating) {
	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].CreatedAt.After(ratings[j].CreatedAt)
	})
}

// Mark records fingerprint in the marks bucket and reports whether it
// was new.
func (s *Store) Mark(fingerprint string) (bool, error) {
	if fingerprint == "" {
		return false, fmt.Errorf("empty fingerprint")
	}

	var fresh bool
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketMarks)
		if err != nil {
			return err
		}
		if b.Get([]byte(fingerprint)) != nil {
			return nil
		}
		fresh = true
		return b.Put([]byte(fingerprint), []byte(time.Now().UTC().Format(time.RFC3339)))
	})
	if err != nil {
		return false, err
	}
	return fresh, nil
}
