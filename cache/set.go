package cache

import (
	"fmt"

	"github.com/sarchlab/cachesim/cache/replacement"
)

// An AllocationResult describes what Allocate did to make room for a line.
type AllocationResult struct {
	WayID        int
	Evicted      bool
	DirtyEvicted bool
	VictimTag    uint64
}

// A Set holds a fixed number of lines that the same group of addresses maps
// to. The number of lines equals the cache's way associativity. Lookups and
// evictions are resolved within the set.
type Set struct {
	id     int
	lines  []Line
	policy replacement.Policy

	// onDirtyEviction is called with the victim's tag before a dirty
	// line is overwritten. May be nil.
	onDirtyEviction func(victimTag uint64)
}

func newSet(id, numWays int, policy replacement.Policy) Set {
	return Set{
		id:     id,
		lines:  make([]Line, numWays),
		policy: policy,
	}
}

// Lookup scans the set for a valid line holding tag. On a hit it records
// the access with the replacement policy.
func (s *Set) Lookup(tag uint64) (wayID int, hit bool) {
	for i := range s.lines {
		if s.lines[i].Matches(tag) {
			s.policy.OnAccess(s.id, i)
			return i, true
		}
	}

	return 0, false
}

// Allocate makes a line hold tag after a miss. An invalid way is preferred;
// if all ways are valid, the replacement policy selects a victim, the
// dirty-eviction notification fires if the victim was modified, and the
// victim's way is refilled.
func (s *Set) Allocate(tag uint64) AllocationResult {
	for i := range s.lines {
		if !s.lines[i].Valid {
			s.lines[i].Fill(tag)
			s.policy.OnInsert(s.id, i)

			return AllocationResult{WayID: i}
		}
	}

	wayID, ok := s.policy.SelectVictim(s.id)
	if !ok {
		panic(fmt.Sprintf(
			"cache: no victim in full set %d, policy bookkeeping is broken",
			s.id))
	}

	victim := &s.lines[wayID]
	result := AllocationResult{
		WayID:        wayID,
		Evicted:      true,
		DirtyEvicted: victim.Dirty,
		VictimTag:    victim.Tag,
	}

	if victim.Dirty && s.onDirtyEviction != nil {
		s.onDirtyEviction(victim.Tag)
	}

	s.policy.OnEvict(s.id, wayID)
	victim.Invalidate()
	victim.Fill(tag)
	s.policy.OnInsert(s.id, wayID)

	return result
}

// Invalidate removes the line holding tag from the set. It reports whether
// a line was removed; invalidating an absent tag is a no-op.
func (s *Set) Invalidate(tag uint64) bool {
	for i := range s.lines {
		if s.lines[i].Matches(tag) {
			s.policy.OnEvict(s.id, i)
			s.lines[i].Invalidate()

			return true
		}
	}

	return false
}

// Reset invalidates every line and drops the set's replacement state.
func (s *Set) Reset() {
	for i := range s.lines {
		s.lines[i].Invalidate()
	}

	s.policy.Reset(s.id)
}

// ValidCount returns the number of lines currently holding valid data.
func (s *Set) ValidCount() int {
	count := 0
	for i := range s.lines {
		if s.lines[i].Valid {
			count++
		}
	}

	return count
}
