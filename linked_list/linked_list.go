package linked_list

import "strconv"

// A singly linked chain of uint64 values with three operations: append at
// the tail, remove the first match, and traverse in order. The List owns
// the whole chain through head and every Node owns the rest of the chain
// through next, so what is reachable from head is always a finite acyclic
// path with exactly one nil-next node at its end (none when empty).
//
// The structure is not safe for concurrent use; a caller sharing a List
// across goroutines serializes access with its own mutex.

// Node is a single chain element: one stored value plus ownership of the
// remainder of the chain. Nodes are created by Append and detached by
// Remove; the tail's next is nil.
type Node struct {
	value uint64
	next  *Node
}

// List is the handle for a chain: just the optional first Node. All
// operations go through it.
type List struct {
	head *Node
}

// New returns an empty list.
func New() *List {
	return &List{}
}

// Append attaches value at the end of the chain: it becomes the new tail.
func (l *List) Append(value uint64) {
	n := &Node{value: value}
	if l.head == nil {
		l.head = n
		return
	}
	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n
}

// Remove detaches the first node holding value and reports whether one was
// found; false means the chain is unchanged. Later duplicates of value are
// left in place.
func (l *List) Remove(value uint64) bool {
	if l.head == nil {
		return false
	}
	if l.head.value == value {
		n := l.head
		l.head = n.next
		// the detached node no longer owns the remainder
		n.next = nil
		return true
	}
	prev := l.head
	for prev.next != nil {
		if prev.next.value == value {
			n := prev.next
			prev.next = n.next
			n.next = nil
			return true
		}
		prev = prev.next
	}
	return false
}

// ToSequence returns the chain's values in order, head to tail. Every call
// walks the chain anew and never modifies it.
func (l *List) ToSequence() []uint64 {
	seq := []uint64{}
	for n := l.head; n != nil; n = n.next {
		seq = append(seq, n.value)
	}
	return seq
}

// String renders the chain as "v1 -> v2 -> ... -> vn -> null"; an empty
// list renders as "null" alone.
func (l *List) String() string {
	return render(l.ToSequence())
}

func render(seq []uint64) string {
	var s string
	for _, v := range seq {
		s += strconv.FormatUint(v, 10) + " -> "
	}
	return s + "null"
}
