package cache

import "fmt"

// AddressFields are the three bit-fields of a decomposed address. The
// offset names a byte within a line, the index names the set the address
// maps to, and the tag identifies the block within that set.
type AddressFields struct {
	Tag    uint64
	Index  uint64
	Offset uint64
}

// Decompose splits an address into its tag, index, and offset fields. It
// returns ErrAddressRange if the address does not fit in the cache's
// address width.
func (c *Cache) Decompose(addr uint64) (AddressFields, error) {
	if c.addressWidth < 64 && addr >= 1<<c.addressWidth {
		return AddressFields{}, fmt.Errorf(
			"%w: 0x%x exceeds %d-bit address space",
			ErrAddressRange, addr, c.addressWidth)
	}

	return AddressFields{
		Offset: addr & (1<<c.offsetBits - 1),
		Index:  addr >> c.offsetBits & (1<<c.indexBits - 1),
		Tag:    addr >> (c.offsetBits + c.indexBits),
	}, nil
}

// lineBaseAddress rebuilds the address of the first byte of the line that
// holds tag in the set named by index.
func (c *Cache) lineBaseAddress(tag, index uint64) uint64 {
	return tag<<(c.offsetBits+c.indexBits) | index<<c.offsetBits
}

func log2(v uint64) uint {
	bits := uint(0)
	for v > 1 {
		v >>= 1
		bits++
	}

	return bits
}

func isPowerOfTwo(v uint64) bool {
	return v > 0 && v&(v-1) == 0
}
