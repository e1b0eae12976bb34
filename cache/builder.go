package cache

import (
	"fmt"

	"github.com/sarchlab/cachesim/cache/replacement"
)

// A Builder configures and creates caches.
type Builder struct {
	totalByteSize    uint64
	lineSize         int
	wayAssociativity int
	mode             replacement.Mode
	addressWidth     int
	evictionHandler  EvictionHandler
}

// MakeBuilder creates a Builder with default parameters: a 16 KiB, 4-way
// cache with 64-byte lines, LRU replacement, and a 48-bit address space.
func MakeBuilder() Builder {
	return Builder{
		totalByteSize:    16 * 1024,
		lineSize:         64,
		wayAssociativity: 4,
		mode:             replacement.LRU,
		addressWidth:     48,
	}
}

// WithTotalByteSize sets the capacity of the cache in bytes.
func (b Builder) WithTotalByteSize(totalByteSize uint64) Builder {
	b.totalByteSize = totalByteSize
	return b
}

// WithLineSize sets the line size in bytes. It must be a power of two.
func (b Builder) WithLineSize(lineSize int) Builder {
	b.lineSize = lineSize
	return b
}

// WithWayAssociativity sets the number of lines per set.
func (b Builder) WithWayAssociativity(wayAssociativity int) Builder {
	b.wayAssociativity = wayAssociativity
	return b
}

// WithReplacementMode sets the replacement policy variant.
func (b Builder) WithReplacementMode(mode replacement.Mode) Builder {
	b.mode = mode
	return b
}

// WithAddressWidth sets the number of address bits. Accesses at or beyond
// 1<<width fail with ErrAddressRange.
func (b Builder) WithAddressWidth(addressWidth int) Builder {
	b.addressWidth = addressWidth
	return b
}

// WithEvictionHandler sets the collaborator that is notified before dirty
// lines are overwritten. A nil handler drops the notifications.
func (b Builder) WithEvictionHandler(handler EvictionHandler) Builder {
	b.evictionHandler = handler
	return b
}

// Build creates the cache. It returns ErrConfiguration if the geometry is
// not valid.
func (b Builder) Build() (*Cache, error) {
	numSets, err := b.validate()
	if err != nil {
		return nil, err
	}

	c := &Cache{
		numSets:          numSets,
		wayAssociativity: b.wayAssociativity,
		lineSize:         b.lineSize,
		offsetBits:       log2(uint64(b.lineSize)),
		indexBits:        log2(uint64(numSets)),
		addressWidth:     uint(b.addressWidth),
		policy: replacement.NewLRUMRU(
			b.mode, numSets, b.wayAssociativity),
	}

	c.sets = make([]Set, numSets)
	for i := range c.sets {
		c.sets[i] = newSet(i, b.wayAssociativity, c.policy)

		if b.evictionHandler != nil {
			index := uint64(i)
			handler := b.evictionHandler
			c.sets[i].onDirtyEviction = func(victimTag uint64) {
				handler.OnDirtyEviction(
					c.lineBaseAddress(victimTag, index),
					victimTag,
				)
			}
		}
	}

	return c, nil
}

func (b Builder) validate() (numSets int, err error) {
	if b.totalByteSize == 0 {
		return 0, fmt.Errorf("%w: total size must be positive",
			ErrConfiguration)
	}

	if b.wayAssociativity < 1 {
		return 0, fmt.Errorf("%w: way associativity must be at least 1",
			ErrConfiguration)
	}

	if b.lineSize < 1 || !isPowerOfTwo(uint64(b.lineSize)) {
		return 0, fmt.Errorf("%w: line size %d is not a power of two",
			ErrConfiguration, b.lineSize)
	}

	setSize := uint64(b.lineSize) * uint64(b.wayAssociativity)
	if b.totalByteSize%setSize != 0 {
		return 0, fmt.Errorf(
			"%w: %d bytes do not hold a whole number of %d-byte sets",
			ErrConfiguration, b.totalByteSize, setSize)
	}

	n := b.totalByteSize / setSize
	if !isPowerOfTwo(n) {
		return 0, fmt.Errorf("%w: number of sets %d is not a power of two",
			ErrConfiguration, n)
	}

	if b.addressWidth < 1 || b.addressWidth > 64 {
		return 0, fmt.Errorf("%w: address width %d is out of range",
			ErrConfiguration, b.addressWidth)
	}

	indexBits := int(log2(n))
	offsetBits := int(log2(uint64(b.lineSize)))
	if offsetBits+indexBits >= b.addressWidth {
		return 0, fmt.Errorf(
			"%w: geometry needs %d offset and %d index bits, "+
				"leaving no tag bits in a %d-bit address",
			ErrConfiguration, offsetBits, indexBits, b.addressWidth)
	}

	return int(n), nil
}
