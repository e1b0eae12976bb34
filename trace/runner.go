package trace

import (
	"fmt"

	"github.com/sarchlab/cachesim/cache"
)

// A Record describes the outcome of one replayed access.
type Record struct {
	Seq     int
	Kind    AccessKind
	Address uint64
	Hit     bool
}

// A Recorder receives a Record for every replayed access.
type Recorder interface {
	Record(r Record)
}

// A Runner feeds a trace into a cache.
type Runner struct {
	cache    *cache.Cache
	recorder Recorder
}

// NewRunner creates a Runner. The recorder may be nil, in which case the
// per-access outcomes are discarded and only the cache's own statistics
// remain.
func NewRunner(c *cache.Cache, recorder Recorder) *Runner {
	return &Runner{
		cache:    c,
		recorder: recorder,
	}
}

// Run replays the accesses in order and returns the cache's statistics
// after the last one. It stops at the first access the cache rejects.
func (r *Runner) Run(accesses []Access) (cache.Statistics, error) {
	for i, access := range accesses {
		hit, err := r.replay(access)
		if err != nil {
			return r.cache.Statistics(), fmt.Errorf(
				"access %d (%s 0x%x): %w",
				i, access.Kind, access.Address, err)
		}

		if r.recorder != nil {
			r.recorder.Record(Record{
				Seq:     i,
				Kind:    access.Kind,
				Address: access.Address,
				Hit:     hit,
			})
		}
	}

	return r.cache.Statistics(), nil
}

func (r *Runner) replay(access Access) (hit bool, err error) {
	switch access.Kind {
	case KindRead:
		return r.cache.Read(access.Address)
	case KindWrite:
		return r.cache.Write(access.Address)
	case KindInvalidate:
		return false, r.cache.Invalidate(access.Address)
	default:
		return false, fmt.Errorf("unknown access kind %d", access.Kind)
	}
}
