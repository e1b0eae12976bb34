// Package replacement defines the replacement policies that decide which
// cache line to evict when a set is full.
package replacement

import "fmt"

// A Mode selects a concrete recency-based policy variant.
type Mode int

const (
	// LRU evicts the least recently used line of a set.
	LRU Mode = iota

	// MRU evicts the most recently used line of a set.
	MRU
)

// ParseMode converts a policy name to a Mode. Accepted names are "lru" and
// "mru".
func ParseMode(name string) (Mode, error) {
	switch name {
	case "lru", "LRU":
		return LRU, nil
	case "mru", "MRU":
		return MRU, nil
	default:
		return LRU, fmt.Errorf("unknown replacement policy %q", name)
	}
}

func (m Mode) String() string {
	switch m {
	case LRU:
		return "lru"
	case MRU:
		return "mru"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// A Policy records line accesses and selects eviction victims. One policy
// instance serves all the sets of a cache; every operation is scoped to a
// set by its index and names a line by its way index within that set.
type Policy interface {
	// OnAccess records that a valid line was touched by a hit.
	OnAccess(setID, wayID int)

	// OnInsert records that a way was just filled. It must be called
	// exactly once per fill, after any eviction of the same way.
	OnInsert(setID, wayID int)

	// SelectVictim picks a currently tracked way to evict. It returns
	// false if the set tracks no ways, which indicates a bookkeeping bug
	// on the caller's side as victims are only requested from full sets.
	// The selection is deterministic given the access history and does
	// not modify any state.
	SelectVictim(setID int) (wayID int, ok bool)

	// OnEvict records that a way was vacated. It must be called before
	// the way is reused.
	OnEvict(setID, wayID int)

	// Reset drops all recency state of one set.
	Reset(setID int)
}
