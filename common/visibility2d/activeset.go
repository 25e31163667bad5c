package visibility2d

import (
	"container/heap"
	"strconv"
)

// ActiveSet holds the segments currently crossed by the sweep ray, ordered
// by a Comparator. It is an indexed binary heap: a slice of segment indices
// plus the heap position of every member, so that any member can be removed
// in O(log n).
//
// The heap order is only checked against the comparator when members move,
// which is sound as long as no two active segments swap depth between two
// consecutive events.
type ActiveSet struct {
	members activeHeap
}

func NewActiveSet(cmp Comparator) *ActiveSet {
	return &ActiveSet{
		members: activeHeap{
			cmp:       cmp,
			positions: make(map[int]int),
		},
	}
}

func (set *ActiveSet) Len() int {
	return len(set.members.segments)
}

func (set *ActiveSet) Contains(segment int) bool {
	_, ok := set.members.positions[segment]
	return ok
}

func (set *ActiveSet) Insert(segment int) error {
	if set.Contains(segment) {
		return invariantViolation(segment, "segment entered the active set twice")
	}

	heap.Push(&set.members, segment)
	return nil
}

func (set *ActiveSet) Remove(segment int) error {
	position, ok := set.members.positions[segment]
	if !ok {
		return invariantViolation(segment, "segment left the active set without entering it")
	}

	heap.Remove(&set.members, position)
	return nil
}

// Nearest returns the front-most active segment.
func (set *ActiveSet) Nearest() (int, bool) {
	if set.Len() == 0 {
		return -1, false
	}

	return set.members.segments[0], true
}

func (set *ActiveSet) String() string {
	str := "["
	for i, segment := range set.members.segments {
		if i > 0 {
			str += " "
		}
		str += strconv.Itoa(segment)
	}

	return str + "]"
}

type activeHeap struct {
	cmp       Comparator
	segments  []int
	positions map[int]int
}

func (h activeHeap) Len() int { return len(h.segments) }

func (h activeHeap) Less(i, j int) bool {
	return h.cmp.Compare(h.segments[i], h.segments[j]) < 0
}

func (h activeHeap) Swap(i, j int) {
	h.segments[i], h.segments[j] = h.segments[j], h.segments[i]
	h.positions[h.segments[i]] = i
	h.positions[h.segments[j]] = j
}

func (h *activeHeap) Push(x interface{}) {
	segment := x.(int)
	h.positions[segment] = len(h.segments)
	h.segments = append(h.segments, segment)
}

func (h *activeHeap) Pop() interface{} {
	last := len(h.segments) - 1
	segment := h.segments[last]
	h.segments = h.segments[:last]
	delete(h.positions, segment)
	return segment
}
