package minheap

import "fmt"

// NotInHeap is the position reported for a vertex that is not currently
// enqueued.
const NotInHeap = -1

// entry is one slot of the backing array: the ordering value, the index of
// the graph vertex it stands for, and the child-presence flags for this
// slot of the implicit tree.
type entry struct {
	value    int64 // current ordering key (mirrors the vertex's distance)
	vertex   int   // back-reference into the owning graph's index space
	hasLeft  bool  // slot 2i+1 is occupied
	hasRight bool  // slot 2i+2 is occupied
}

// MinHeap is an indexed binary min-heap over the vertex indices
// 0..vertexCount-1. The zero value is not usable; construct with New.
type MinHeap struct {
	entries []entry
	pos     []int // vertex index → slot, or NotInHeap
}

// New returns an empty heap able to hold the vertices 0..vertexCount-1.
// Complexity: O(vertexCount).
func New(vertexCount int) *MinHeap {
	h := &MinHeap{
		entries: make([]entry, 0, vertexCount),
		pos:     make([]int, vertexCount),
	}
	for i := range h.pos {
		h.pos[i] = NotInHeap
	}

	return h
}

// Size returns the number of enqueued vertices.
func (h *MinHeap) Size() int { return len(h.entries) }

// IsEmpty reports whether no vertices are enqueued.
func (h *MinHeap) IsEmpty() bool { return len(h.entries) == 0 }

// Contains reports whether vertex is currently enqueued.
func (h *MinHeap) Contains(vertex int) bool {
	return vertex >= 0 && vertex < len(h.pos) && h.pos[vertex] != NotInHeap
}

// PositionOf returns vertex's current slot in the backing array, or
// NotInHeap if the vertex is not enqueued.
func (h *MinHeap) PositionOf(vertex int) int {
	h.checkVertex(vertex)

	return h.pos[vertex]
}

// ValueAt returns the ordering value stored at the given slot.
// The slot must be in [0, Size()).
func (h *MinHeap) ValueAt(slot int) int64 {
	if slot < 0 || slot >= len(h.entries) {
		panic(fmt.Sprintf("minheap: slot %d out of range [0,%d)", slot, len(h.entries)))
	}

	return h.entries[slot].value
}

// VertexAt returns the vertex index stored at the given slot.
// The slot must be in [0, Size()).
func (h *MinHeap) VertexAt(slot int) int {
	if slot < 0 || slot >= len(h.entries) {
		panic(fmt.Sprintf("minheap: slot %d out of range [0,%d)", slot, len(h.entries)))
	}

	return h.entries[slot].vertex
}

// Push enqueues vertex with the given ordering value: the entry is appended
// at the next free slot, the parent's child-presence flag is raised, and the
// entry is sifted upward until the min-heap order holds.
// Pushing an out-of-range or already-enqueued vertex is a contract
// violation and panics.
// Complexity: O(log n).
func (h *MinHeap) Push(vertex int, value int64) {
	h.checkVertex(vertex)
	if h.pos[vertex] != NotInHeap {
		panic(fmt.Sprintf("minheap: vertex %d already enqueued at slot %d", vertex, h.pos[vertex]))
	}

	// 1) Place the new entry at the furthest-right free slot.
	slot := len(h.entries)
	h.entries = append(h.entries, entry{value: value, vertex: vertex})
	h.pos[vertex] = slot

	// 2) The parent gained a child: odd slots are left children, even slots
	//    right children.
	if slot > 0 {
		parent := (slot - 1) / 2
		if slot%2 == 0 {
			h.entries[parent].hasRight = true
		} else {
			h.entries[parent].hasLeft = true
		}
	}

	// 3) Restore heap order upward.
	h.siftUp(slot)
}

// Pop removes and returns the vertex with the minimum value (slot 0).
// The last slot's entry is relocated to the root, the orphaned parent's
// child flag is cleared, and the relocated entry is sifted downward.
// Popping an empty heap is a contract violation and panics.
// Complexity: O(log n).
func (h *MinHeap) Pop() int {
	if len(h.entries) == 0 {
		panic("minheap: Pop on empty heap")
	}

	// 1) Slot 0 holds the global minimum.
	min := h.entries[0].vertex
	h.pos[min] = NotInHeap

	last := len(h.entries) - 1
	if last == 0 {
		h.entries = h.entries[:0]

		return min
	}

	// 2) Relocate the furthest-right entry to the root. Child-presence
	//    flags describe slots, not entries, so the root keeps its own.
	h.entries[0].value = h.entries[last].value
	h.entries[0].vertex = h.entries[last].vertex
	h.pos[h.entries[0].vertex] = 0

	// 3) The removed slot's parent lost a child: an odd last slot was its
	//    parent's left child, an even one its right child.
	parent := (last - 1) / 2
	if last%2 == 0 {
		h.entries[parent].hasRight = false
	} else {
		h.entries[parent].hasLeft = false
	}

	// 4) Shrink and restore heap order downward from the root.
	h.entries = h.entries[:last]
	h.siftDown(0)

	return min
}

// DecreaseKey lowers the ordering value of an already-enqueued vertex and
// sifts its entry upward from its recorded slot — the position table makes
// this O(log n) with no scan.
// Calling it for an absent vertex, or with a value greater than the entry's
// current value, is a contract violation and panics.
func (h *MinHeap) DecreaseKey(vertex int, value int64) {
	h.checkVertex(vertex)
	slot := h.pos[vertex]
	if slot == NotInHeap {
		panic(fmt.Sprintf("minheap: DecreaseKey on vertex %d which is not enqueued", vertex))
	}
	if value > h.entries[slot].value {
		panic(fmt.Sprintf("minheap: DecreaseKey would raise vertex %d from %d to %d",
			vertex, h.entries[slot].value, value))
	}

	h.entries[slot].value = value
	h.siftUp(slot)
}

// Reset empties the heap so it can be reused for another run over the same
// vertex index space. Complexity: O(vertexCount).
func (h *MinHeap) Reset() {
	h.entries = h.entries[:0]
	for i := range h.pos {
		h.pos[i] = NotInHeap
	}
}

// siftUp moves the entry at slot toward the root while its value is
// strictly less than its parent's value. Equal values never swap, so ties
// keep their existing order.
func (h *MinHeap) siftUp(slot int) {
	for slot > 0 {
		parent := (slot - 1) / 2
		if h.entries[slot].value >= h.entries[parent].value {
			break
		}
		h.swap(slot, parent)
		slot = parent
	}
}

// siftDown moves the entry at slot toward the leaves until the min-heap
// order holds, navigating by the slot-bound child-presence flags.
// With two children it swaps with the smaller one, preferring the right
// child when right ≤ left.
func (h *MinHeap) siftDown(slot int) {
	for {
		left := 2*slot + 1
		right := 2*slot + 2

		switch {
		case h.entries[slot].hasLeft && h.entries[slot].hasRight:
			leftValue := h.entries[left].value
			rightValue := h.entries[right].value
			if h.entries[slot].value < leftValue && h.entries[slot].value < rightValue {
				return // in correct position
			}
			if rightValue <= leftValue {
				h.swap(slot, right)
				slot = right
			} else {
				h.swap(slot, left)
				slot = left
			}

		case h.entries[slot].hasLeft:
			if h.entries[slot].value < h.entries[left].value {
				return
			}
			h.swap(slot, left)
			slot = left

		case h.entries[slot].hasRight:
			if h.entries[slot].value < h.entries[right].value {
				return
			}
			h.swap(slot, right)
			slot = right

		default:
			return // leaf
		}
	}
}

// swap exchanges the value and vertex back-reference of two slots and
// records both vertices' new positions. Child-presence flags stay with
// their slots: they describe the tree shape, which a swap does not change.
func (h *MinHeap) swap(i, j int) {
	h.entries[i].value, h.entries[j].value = h.entries[j].value, h.entries[i].value
	h.entries[i].vertex, h.entries[j].vertex = h.entries[j].vertex, h.entries[i].vertex
	h.pos[h.entries[i].vertex] = i
	h.pos[h.entries[j].vertex] = j
}

// checkVertex panics when vertex lies outside the index space this heap
// was constructed for.
func (h *MinHeap) checkVertex(vertex int) {
	if vertex < 0 || vertex >= len(h.pos) {
		panic(fmt.Sprintf("minheap: vertex %d out of range [0,%d)", vertex, len(h.pos)))
	}
}
