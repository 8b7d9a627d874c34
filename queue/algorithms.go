package queue

import "github.com/segmentio/queue/compare"

// DeleteMiddle deletes and releases the middle element of q. For a queue of n
// elements, the middle element is the one at the zero-based index (n-1)/2;
// with six elements, the third one is deleted.
//
// The method returns false if q is nil or empty.
func (q *Queue) DeleteMiddle() bool {
	if q == nil || q.list().Empty() {
		return false
	}
	head := &q.head
	mid := head.Next()
	for fast := head.Next(); fast.Next() != head && fast.Next().Next() != head; fast = fast.Next().Next() {
		mid = mid.Next()
	}
	q.delete(elementOf(mid))
	return true
}

// DeleteDuplicates deletes and releases all the elements of q whose value
// appears more than once, leaving only the values that were distinct in the
// queue.
//
// The queue must already be sorted: only runs of adjacent elements with equal
// values are detected. Calling the method on an unsorted queue leaves it in a
// valid but unspecified state.
//
// The method returns false if q is nil or empty.
func (q *Queue) DeleteDuplicates() bool {
	if q == nil || q.list().Empty() {
		return false
	}
	head := &q.head
	for x := head.Next(); x != head; {
		next := x.Next()
		if next == head || elementOf(x).value != elementOf(next).value {
			x = next
			continue
		}
		dup := elementOf(x).value
		for x != head && elementOf(x).value == dup {
			next = x.Next()
			q.delete(elementOf(x))
			x = next
		}
	}
	return true
}

// Swap exchanges the positions of every two adjacent elements of q. When the
// queue has an odd length, the last element stays in place.
func (q *Queue) Swap() {
	if q == nil || q.list().Empty() || q.head.Singular() {
		return
	}
	head := &q.head
	for x := head.Next(); x != head && x.Next() != head; x = x.Next() {
		x.MoveAfter(x.Next())
	}
}

// Reverse reverses the order of the elements of q.
func (q *Queue) Reverse() {
	if q == nil || q.list().Empty() || q.head.Singular() {
		return
	}
	head := &q.head
	for cursor := head; cursor.Next() != head; cursor = cursor.Next() {
		head.Prev().MoveAfter(cursor)
	}
}

// Sort sorts the elements of q in ascending order of their values, comparing
// them byte by byte. The sort is stable.
func (q *Queue) Sort() {
	if q == nil {
		return
	}
	q.list().Sort(compareElements)
}

// Shuffle reorders the elements of q in a uniformly random permutation, drawing
// random numbers from the source that q was configured with.
func (q *Queue) Shuffle() {
	if q == nil || q.list().Empty() {
		return
	}
	head := &q.head
	prng := q.random()

	result := q.shuffled.Init(nil)
	for n := head.Len(); n > 0; n-- {
		x := head.Next()
		for i := prng.Intn(n); i > 0; i-- {
			x = x.Next()
		}
		x.MoveBefore(result)
	}
	result.SpliceBefore(head)
}

var compareElements = compare.By(func(e *Element) string { return e.value })
