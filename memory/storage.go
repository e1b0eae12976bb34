// Package memory provides the backing store that receives the write-back
// traffic of a cache model.
package memory

import (
	"errors"
	"fmt"
)

// ErrCapacity is returned when an access reaches beyond the capacity of a
// Storage.
var ErrCapacity = errors.New("access beyond storage capacity")

// storageUnitSize is the granularity at which Storage allocates memory.
const storageUnitSize = 4096

// A Storage keeps the data of the modeled memory. Units are allocated
// lazily, so a large address space costs memory only where it is written.
type Storage struct {
	capacity uint64
	units    map[uint64][]byte
}

// NewStorage creates a Storage with the given capacity in bytes.
func NewStorage(capacity uint64) *Storage {
	return &Storage{
		capacity: capacity,
		units:    make(map[uint64][]byte),
	}
}

// Capacity returns the number of bytes the storage can hold.
func (s *Storage) Capacity() uint64 {
	return s.capacity
}

// Read copies n bytes starting at addr.
func (s *Storage) Read(addr, n uint64) ([]byte, error) {
	if addr+n > s.capacity {
		return nil, fmt.Errorf("%w: read of %d bytes at 0x%x",
			ErrCapacity, n, addr)
	}

	data := make([]byte, n)
	copied := uint64(0)

	for copied < n {
		unit, offset := s.unitFor(addr + copied)
		copied += uint64(copy(data[copied:], unit[offset:]))
	}

	return data, nil
}

// Write copies data into the storage starting at addr.
func (s *Storage) Write(addr uint64, data []byte) error {
	n := uint64(len(data))
	if addr+n > s.capacity {
		return fmt.Errorf("%w: write of %d bytes at 0x%x",
			ErrCapacity, n, addr)
	}

	written := uint64(0)
	for written < n {
		unit, offset := s.unitFor(addr + written)
		written += uint64(copy(unit[offset:], data[written:]))
	}

	return nil
}

// unitFor returns the unit that holds addr, allocating it on first touch,
// along with addr's offset within the unit.
func (s *Storage) unitFor(addr uint64) (unit []byte, offset uint64) {
	offset = addr % storageUnitSize
	base := addr - offset

	unit, ok := s.units[base]
	if !ok {
		unit = make([]byte, storageUnitSize)
		s.units[base] = unit
	}

	return unit, offset
}
