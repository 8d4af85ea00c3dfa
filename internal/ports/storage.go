// Package ports defines the interfaces (contracts) that adapters must
// implement. Domain and app code depend only on these interfaces, never
// on the concrete bbolt or fsnotify types behind them.
package ports

import "time"

// Rating is one human judgment of a haiku, keyed by the haiku's
// fingerprint so ratings survive re-scans of the same text.
type Rating struct {
	ID          string    `json:"id"`
	Fingerprint string    `json:"fingerprint"`
	Lines       [3]string `json:"lines"`
	Stars       int       `json:"stars"`
	Comment     string    `json:"comment,omitempty"`
	User        string    `json:"user"`
	CreatedAt   time.Time `json:"created_at"`
}

// RatingStore persists human ratings of haikus.
//
// Crash safety: SaveRating must be transactional. A crash mid-write
// must not corrupt previously committed ratings.
type RatingStore interface {
	// SaveRating validates and persists r, filling in ID and CreatedAt.
	// Stars must be between 1 and 5 and the fingerprint non-empty.
	SaveRating(r *Rating) error

	// Ratings returns every stored rating, newest first.
	Ratings() ([]Rating, error)

	// RatingsFor returns the ratings for one haiku fingerprint, newest
	// first. A fingerprint nobody has rated yields an empty slice.
	RatingsFor(fingerprint string) ([]Rating, error)
}

// MarkStore remembers which haikus have already been reported, so watch
// mode announces each discovery exactly once across restarts.
type MarkStore interface {
	// Mark records fingerprint and reports whether it was new.
	Mark(fingerprint string) (bool, error)
}
