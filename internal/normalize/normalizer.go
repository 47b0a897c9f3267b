// Package normalize turns decoded JSON request bodies into canonical rows.
//
// Normalization is pure: the only inputs besides the payload are the clock
// and the id generator held by Normalizer, so tests can pin both.
package normalize

import (
	"time"

	"github.com/google/uuid"
)

type Normalizer struct {
	Now   func() time.Time
	NewID func() string
}

func New() *Normalizer {
	return &Normalizer{
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

func (n *Normalizer) now() time.Time {
	if n.Now == nil {
		return time.Now().UTC()
	}
	return n.Now().UTC()
}

func (n *Normalizer) newID() string {
	if n.NewID == nil {
		return uuid.NewString()
	}
	return n.NewID()
}

// carryUnconsumed copies raw keys the normalizer did not read into row so the
// schema check can reject them by name.
func carryUnconsumed(row, raw map[string]any, consumed map[string]bool) {
	for key, value := range raw {
		if !consumed[key] {
			row[key] = value
		}
	}
}
