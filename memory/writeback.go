package memory

import (
	"encoding/binary"
	"log"
)

// A WritebackSink receives dirty-eviction notifications from a cache and
// lands them in a Storage. The model carries no line data, so the sink
// stamps each written-back line with its tag, which is enough for tests
// and collaborating models to see where write-backs went.
type WritebackSink struct {
	storage  *Storage
	lineSize int
	logger   *log.Logger

	writebacks uint64
}

// NewWritebackSink creates a sink that writes lineSize-byte records into
// storage. The logger may be nil.
func NewWritebackSink(
	storage *Storage,
	lineSize int,
	logger *log.Logger,
) *WritebackSink {
	return &WritebackSink{
		storage:  storage,
		lineSize: lineSize,
		logger:   logger,
	}
}

// OnDirtyEviction persists the evicted line before the cache overwrites it.
// Write-backs beyond the storage capacity are counted but dropped, as the
// modeled memory simply is not that large.
func (s *WritebackSink) OnDirtyEviction(addr, tag uint64) {
	s.writebacks++

	record := make([]byte, s.lineSize)
	if s.lineSize >= 8 {
		binary.LittleEndian.PutUint64(record, tag)
	}

	if err := s.storage.Write(addr, record); err != nil {
		if s.logger != nil {
			s.logger.Printf("writeback at 0x%x dropped: %v", addr, err)
		}

		return
	}

	if s.logger != nil {
		s.logger.Printf("writeback, 0x%x, tag 0x%x", addr, tag)
	}
}

// Writebacks returns the number of dirty evictions the sink has seen.
func (s *WritebackSink) Writebacks() uint64 {
	return s.writebacks
}
