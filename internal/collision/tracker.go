// Package collision tracks golden vectors by name and token id, detecting
// duplicates and token id hash collisions.
package collision

import (
	"fmt"
	"slices"

	"github.com/arloliu/runeword/errs"
)

// Tracker records the vectors seen while loading a golden file.
//
// Note: Tracker is NOT thread-safe.
type Tracker struct {
	names     map[string]int      // name → position
	tokens    map[uint64][]string // token id → distinct tokens with that id
	count     int
	collision bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:  make(map[string]int),
		tokens: make(map[uint64][]string),
	}
}

// Track records one vector.
//
// Parameters:
//   - name: Vector name, must be non-empty and unique
//   - token: Vector token, must be unique
//   - id: Hash of the token
//
// Returns:
//   - error: ErrDuplicateVector for an empty or repeated name, or a repeated token
//
// Two different tokens with the same id are not an error; the collision flag is
// set instead and callers keying by id must fall back to the token itself.
func (t *Tracker) Track(name, token string, id uint64) error {
	if name == "" {
		return fmt.Errorf("%w: vector %d has no name", errs.ErrDuplicateVector, t.count)
	}
	if pos, exists := t.names[name]; exists {
		return fmt.Errorf("%w: name %q already used by vector %d", errs.ErrDuplicateVector, name, pos)
	}

	seen := t.tokens[id]
	if slices.Contains(seen, token) {
		return fmt.Errorf("%w: token of %q listed twice", errs.ErrDuplicateVector, name)
	}
	if len(seen) > 0 {
		t.collision = true
	}
	t.tokens[id] = append(seen, token)

	t.names[name] = t.count
	t.count++

	return nil
}

// HasCollision reports whether two distinct tokens shared an id.
func (t *Tracker) HasCollision() bool {
	return t.collision
}
