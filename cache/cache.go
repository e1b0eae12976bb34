// Package cache models an N-way set-associative cache. It decomposes
// addresses into tag, index, and offset fields, routes each access to the
// set the index names, and evicts lines under a configurable replacement
// policy when a set is full.
//
// The model tracks hit, miss, and eviction behavior only; it moves no data
// and models no timing. A Cache must not be used from multiple goroutines
// without external serialization.
package cache

import "github.com/sarchlab/cachesim/cache/replacement"

// Statistics counts the outcomes of all accesses since construction or the
// last Reset. Hits plus Misses equals the number of Read and Write calls.
type Statistics struct {
	Hits           uint64
	Misses         uint64
	Evictions      uint64
	DirtyEvictions uint64
}

// An EvictionHandler is notified synchronously before a dirty line is
// overwritten, so an external backing store can persist the evicted data.
type EvictionHandler interface {
	// OnDirtyEviction receives the base address of the evicted line and
	// its tag.
	OnDirtyEviction(addr, tag uint64)
}

// A Cache is a fixed-geometry set-associative cache. Construct one with a
// Builder; the geometry cannot change afterwards.
type Cache struct {
	numSets          int
	wayAssociativity int
	lineSize         int
	offsetBits       uint
	indexBits        uint
	addressWidth     uint

	sets   []Set
	policy replacement.Policy
	stats  Statistics
}

// Read accesses the line that addr maps to. A miss allocates the line,
// evicting a victim if the set is full.
func (c *Cache) Read(addr uint64) (hit bool, err error) {
	fields, err := c.Decompose(addr)
	if err != nil {
		return false, err
	}

	_, hit = c.accessLine(fields)

	return hit, nil
}

// Write accesses the line that addr maps to and marks it dirty. A miss
// allocates the line first (write-allocate).
func (c *Cache) Write(addr uint64) (hit bool, err error) {
	fields, err := c.Decompose(addr)
	if err != nil {
		return false, err
	}

	wayID, hit := c.accessLine(fields)

	if err := c.sets[fields.Index].lines[wayID].MarkDirty(); err != nil {
		return hit, err
	}

	return hit, nil
}

// Invalidate removes the line holding addr, if resident. It does not count
// as an access.
func (c *Cache) Invalidate(addr uint64) error {
	fields, err := c.Decompose(addr)
	if err != nil {
		return err
	}

	c.sets[fields.Index].Invalidate(fields.Tag)

	return nil
}

// Reset invalidates every line, drops all replacement state, and zeroes
// the statistics.
func (c *Cache) Reset() {
	for i := range c.sets {
		c.sets[i].Reset()
	}

	c.stats = Statistics{}
}

// Statistics returns a snapshot of the counters.
func (c *Cache) Statistics() Statistics {
	return c.stats
}

// NumSets returns the number of sets the cache is partitioned into.
func (c *Cache) NumSets() int {
	return c.numSets
}

// WayAssociativity returns the number of lines per set.
func (c *Cache) WayAssociativity() int {
	return c.wayAssociativity
}

// LineSize returns the line size in bytes.
func (c *Cache) LineSize() int {
	return c.lineSize
}

// TotalByteSize returns the capacity of the cache in bytes.
func (c *Cache) TotalByteSize() uint64 {
	return uint64(c.numSets) * uint64(c.wayAssociativity) * uint64(c.lineSize)
}

// Set returns the set at the given index, for inspection by tests and
// collaborating models.
func (c *Cache) Set(index int) *Set {
	return &c.sets[index]
}

// accessLine resolves one read or write access: a hit touches the resident
// line, a miss fills one, evicting a victim if the set is full. Counters
// are updated along the way.
func (c *Cache) accessLine(fields AddressFields) (wayID int, hit bool) {
	set := &c.sets[fields.Index]

	if wayID, hit := set.Lookup(fields.Tag); hit {
		c.stats.Hits++
		return wayID, true
	}

	c.stats.Misses++

	result := set.Allocate(fields.Tag)
	if result.Evicted {
		c.stats.Evictions++
		if result.DirtyEvicted {
			c.stats.DirtyEvictions++
		}
	}

	return result.WayID, false
}
