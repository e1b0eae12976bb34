package replacement

import (
	"fmt"

	"github.com/sarchlab/cachesim/cache/internal/recency"
)

// lruMRU implements both the LRU and the MRU policy. The two only differ in
// which end of the recency list the victim is read from.
type lruMRU struct {
	mode Mode
	sets []policySet
}

type policySet struct {
	list *recency.List

	// handles maps a way index to its entry in the recency list.
	// recency.NilHandle marks ways that are not tracked.
	handles []recency.Handle
}

// NewLRUMRU creates a policy that maintains one recency list per set. Every
// access or insertion moves the touched way to the most-recent end of its
// set's list. LRU mode selects the victim from the least-recent end, MRU
// mode from the most-recent end as it stands before the new line's
// insertion is recorded.
func NewLRUMRU(mode Mode, numSets, numWays int) Policy {
	p := &lruMRU{
		mode: mode,
		sets: make([]policySet, numSets),
	}

	for i := range p.sets {
		p.sets[i] = policySet{
			list:    recency.New(),
			handles: make([]recency.Handle, numWays),
		}
		for j := range p.sets[i].handles {
			p.sets[i].handles[j] = recency.NilHandle
		}
	}

	return p
}

func (p *lruMRU) OnAccess(setID, wayID int) {
	set := &p.sets[setID]

	h := set.handles[wayID]
	if h == recency.NilHandle {
		panic(fmt.Sprintf(
			"replacement: access to untracked way %d of set %d",
			wayID, setID))
	}

	set.list.MoveToFront(h)
}

func (p *lruMRU) OnInsert(setID, wayID int) {
	set := &p.sets[setID]

	if set.handles[wayID] != recency.NilHandle {
		panic(fmt.Sprintf(
			"replacement: way %d of set %d inserted twice",
			wayID, setID))
	}

	set.handles[wayID] = set.list.PushFront(wayID)
}

func (p *lruMRU) SelectVictim(setID int) (int, bool) {
	set := &p.sets[setID]

	var wayID int
	var ok bool
	switch p.mode {
	case MRU:
		wayID, ok = set.list.PeekFront()
	default:
		wayID, ok = set.list.PeekBack()
	}

	return wayID, ok
}

func (p *lruMRU) OnEvict(setID, wayID int) {
	set := &p.sets[setID]

	h := set.handles[wayID]
	if h == recency.NilHandle {
		panic(fmt.Sprintf(
			"replacement: eviction of untracked way %d of set %d",
			wayID, setID))
	}

	set.list.Remove(h)
	set.handles[wayID] = recency.NilHandle
}

func (p *lruMRU) Reset(setID int) {
	set := &p.sets[setID]

	set.list.Reset()
	for i := range set.handles {
		set.handles[i] = recency.NilHandle
	}
}
