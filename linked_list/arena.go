package linked_list

import "github.com/goose-lang/primitive"

// ArenaList is the same chain contract as List with the nodes kept in one
// growable array and the links expressed as slot handles instead of
// pointers. Handles are 1-based and handle 0 means "no node", so an empty
// chain and a missing successor look the same as in the pointer rendition.
// Slots given up by Remove are chained through their own next field and
// handed back out by Append before the arena grows.
type ArenaList struct {
	nodes []arenaNode
	head  uint32
	free  uint32
}

type arenaNode struct {
	value uint64
	next  uint32
}

const noSlot = uint32(0)

// NewArenaList returns an empty arena-backed list.
func NewArenaList() *ArenaList {
	return &ArenaList{nodes: []arenaNode{}}
}

// at resolves a handle to its slot. Handles only ever come from alloc, so
// one outside the arena means the links are corrupted.
func (a *ArenaList) at(h uint32) *arenaNode {
	primitive.Assert(h != noSlot && uint64(h) <= uint64(len(a.nodes)))
	return &a.nodes[h-1]
}

func (a *ArenaList) alloc(value uint64) uint32 {
	if a.free != noSlot {
		h := a.free
		n := a.at(h)
		a.free = n.next
		n.value = value
		n.next = noSlot
		return h
	}
	a.nodes = append(a.nodes, arenaNode{value: value})
	return uint32(len(a.nodes))
}

// release pushes a slot onto the free list. The chain must already be
// spliced over it.
func (a *ArenaList) release(h uint32) {
	n := a.at(h)
	n.value = 0
	n.next = a.free
	a.free = h
}

// Append attaches value at the end of the chain: it becomes the new tail.
func (a *ArenaList) Append(value uint64) {
	h := a.alloc(value)
	if a.head == noSlot {
		a.head = h
		return
	}
	cur := a.head
	for a.at(cur).next != noSlot {
		cur = a.at(cur).next
	}
	a.at(cur).next = h
}

// Remove detaches the first node holding value and reports whether one was
// found; false means the chain is unchanged. Later duplicates of value are
// left in place.
func (a *ArenaList) Remove(value uint64) bool {
	if a.head == noSlot {
		return false
	}
	if a.at(a.head).value == value {
		h := a.head
		a.head = a.at(h).next
		a.release(h)
		return true
	}
	prev := a.head
	for a.at(prev).next != noSlot {
		cur := a.at(prev).next
		if a.at(cur).value == value {
			a.at(prev).next = a.at(cur).next
			a.release(cur)
			return true
		}
		prev = cur
	}
	return false
}

// ToSequence returns the chain's values in order, head to tail. A walk
// visiting more slots than the arena holds would mean a cycle, which the
// handle discipline rules out, so the bound is asserted.
func (a *ArenaList) ToSequence() []uint64 {
	seq := []uint64{}
	for h := a.head; h != noSlot; h = a.at(h).next {
		primitive.Assert(len(seq) < len(a.nodes))
		seq = append(seq, a.at(h).value)
	}
	return seq
}

// String renders the chain as "v1 -> v2 -> ... -> vn -> null"; an empty
// list renders as "null" alone.
func (a *ArenaList) String() string {
	return render(a.ToSequence())
}
