package list

// Sort reorders the nodes of the list anchored at n so that their owners are
// in ascending order according to cmp. The sort is stable: nodes whose owners
// compare equal retain their relative order.
//
// The sentinel n is never passed to cmp. Lists with less than two nodes are
// left untouched.
//
// The list is sorted with a top-down merge sort. While dividing and merging,
// only the next links are maintained; the prev links are rebuilt in a single
// pass once the chain is fully sorted. The recursion depth is O(log n) and no
// memory is allocated.
func (n *Node[T]) Sort(cmp func(a, b *T) int) {
	if n.Empty() || n.Singular() {
		return
	}

	first, last := n.next, n.prev
	// Detach the sentinel, then break the cycle so the chain ends on nil.
	n.UnlinkInit()
	last.next = nil
	first.prev = nil

	head := mergeSort(first, cmp)

	prev := n
	for x := head; x != nil; x = x.next {
		x.prev = prev
		prev = x
	}
	prev.next = n
	n.prev = prev
	n.next = head
}

func mergeSort[T any](head *Node[T], cmp func(a, b *T) int) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}
	mid := middle(head)
	right := mid.next
	mid.next = nil
	return merge(mergeSort(head, cmp), mergeSort(right, cmp), cmp)
}

// middle returns the last node of the first half of the nil terminated chain
// starting at head. For chains of even length both halves have the same size,
// otherwise the first half is the longer one.
func middle[T any](head *Node[T]) *Node[T] {
	slow := head
	for fast := head; fast.next != nil && fast.next.next != nil; fast = fast.next.next {
		slow = slow.next
	}
	return slow
}

// merge combines the sorted chains a and b. On ties the node from a is taken
// first, which is what makes Sort stable.
func merge[T any](a, b *Node[T], cmp func(a, b *T) int) *Node[T] {
	var head *Node[T]
	tail := &head

	for a != nil && b != nil {
		if cmp(a.owner, b.owner) <= 0 {
			*tail, a = a, a.next
		} else {
			*tail, b = b, b.next
		}
		tail = &(*tail).next
	}

	if a != nil {
		*tail = a
	} else {
		*tail = b
	}
	return head
}
