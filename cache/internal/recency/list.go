// Package recency provides an ordered list that tracks how recently entries
// were touched. The front of the list is the most recently touched end.
//
// The list stores its nodes in a dense arena and hands out integer handles
// instead of node pointers. A handle stays valid until the entry it names is
// removed from the list.
package recency

// A Handle identifies an entry in a List. Use NilHandle for "no entry".
type Handle int

// NilHandle is the handle that refers to no entry.
const NilHandle Handle = -1

type node struct {
	value int
	prev  Handle
	next  Handle
	used  bool
}

// A List is a doubly linked list over an arena of node slots. All operations
// run in constant time.
type List struct {
	nodes []node
	free  []Handle
	head  Handle
	tail  Handle
	size  int
}

// New creates an empty List.
func New() *List {
	return &List{
		head: NilHandle,
		tail: NilHandle,
	}
}

func (l *List) alloc(v int) Handle {
	if n := len(l.free); n > 0 {
		h := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[h] = node{value: v, prev: NilHandle, next: NilHandle, used: true}

		return h
	}

	l.nodes = append(l.nodes, node{
		value: v,
		prev:  NilHandle,
		next:  NilHandle,
		used:  true,
	})

	return Handle(len(l.nodes) - 1)
}

// PushFront inserts a value at the front of the list and returns its handle.
func (l *List) PushFront(v int) Handle {
	h := l.alloc(v)

	l.nodes[h].next = l.head
	if l.head != NilHandle {
		l.nodes[l.head].prev = h
	} else {
		l.tail = h
	}
	l.head = h
	l.size++

	return h
}

// MoveToFront moves the entry named by h to the front of the list. It is a
// no-op if the entry is already at the front.
func (l *List) MoveToFront(h Handle) {
	l.mustBeUsed(h)

	if l.head == h {
		return
	}

	l.unlink(h)

	l.nodes[h].prev = NilHandle
	l.nodes[h].next = l.head
	if l.head != NilHandle {
		l.nodes[l.head].prev = h
	} else {
		l.tail = h
	}
	l.head = h
}

// Remove detaches the entry named by h from the list. The handle becomes
// invalid.
func (l *List) Remove(h Handle) {
	l.mustBeUsed(h)
	l.detach(h)
}

// PeekFront returns the value at the front of the list. The second return
// value is false if the list is empty.
func (l *List) PeekFront() (int, bool) {
	if l.head == NilHandle {
		return 0, false
	}

	return l.nodes[l.head].value, true
}

// PeekBack returns the value at the back of the list. The second return
// value is false if the list is empty.
func (l *List) PeekBack() (int, bool) {
	if l.tail == NilHandle {
		return 0, false
	}

	return l.nodes[l.tail].value, true
}

// RemoveBack removes and returns the value at the back of the list. The
// second return value is false if the list is empty.
func (l *List) RemoveBack() (int, bool) {
	if l.tail == NilHandle {
		return 0, false
	}

	v := l.nodes[l.tail].value
	l.detach(l.tail)

	return v, true
}

// Len returns the number of entries in the list.
func (l *List) Len() int {
	return l.size
}

// Empty returns true if the list has no entries.
func (l *List) Empty() bool {
	return l.size == 0
}

// Reset removes all entries. Outstanding handles become invalid.
func (l *List) Reset() {
	l.nodes = l.nodes[:0]
	l.free = l.free[:0]
	l.head = NilHandle
	l.tail = NilHandle
	l.size = 0
}

// unlink removes h from the chain without releasing its slot.
func (l *List) unlink(h Handle) {
	n := l.nodes[h]

	if n.prev != NilHandle {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}

	if n.next != NilHandle {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
}

func (l *List) detach(h Handle) {
	l.unlink(h)

	l.nodes[h] = node{prev: NilHandle, next: NilHandle}
	l.free = append(l.free, h)
	l.size--
}

func (l *List) mustBeUsed(h Handle) {
	if h < 0 || int(h) >= len(l.nodes) || !l.nodes[h].used {
		panic("recency: handle does not name a live entry")
	}
}
