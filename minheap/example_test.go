package minheap_test

import (
	"fmt"

	"github.com/katalvlaran/cityroute/minheap"
)

// ExampleMinHeap_DecreaseKey shows the position-tracked decrease-key:
// lowering an enqueued vertex's key reorders it without any scan.
func ExampleMinHeap_DecreaseKey() {
	h := minheap.New(3)
	h.Push(0, 10)
	h.Push(1, 20)
	h.Push(2, 30)

	// Vertex 2 just got cheaper than everything else.
	h.DecreaseKey(2, 5)

	for !h.IsEmpty() {
		fmt.Println(h.Pop())
	}

	// Output:
	// 2
	// 0
	// 1
}
