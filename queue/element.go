package queue

import (
	"strings"

	"github.com/segmentio/queue/list"
)

// Element values hold the strings stored in a queue.
//
// Elements are created by InsertHead and InsertTail, which copy the string
// passed by the caller. An element removed from a queue with RemoveHead or
// RemoveTail belongs to the caller, which must call Release exactly once when
// it is done with it.
type Element struct {
	value string
	node  list.Node[Element]
	alloc Allocator
}

func newElement(alloc Allocator, s string) *Element {
	if !alloc.Alloc(elementSize) {
		return nil
	}
	if !alloc.Alloc(len(s)) {
		alloc.Free(elementSize)
		return nil
	}
	e := &Element{
		value: strings.Clone(s),
		alloc: alloc,
	}
	e.node.Init(e)
	return e
}

func elementOf(node *list.Node[Element]) *Element { return node.Owner() }

// Value returns the string held by e.
func (e *Element) Value() string { return e.value }

// Release returns the memory held by e to the allocator it was charged to.
// The element must not be used after being released, and must not be released
// more than once.
func (e *Element) Release() {
	e.alloc.Free(len(e.value))
	e.alloc.Free(elementSize)
	e.value = ""
}

func (e *Element) copyTo(buf []byte) {
	if len(buf) <= 1 {
		return
	}
	n := copy(buf[:len(buf)-1], e.value)
	for i := n; i < len(buf); i++ {
		buf[i] = 0
	}
}
