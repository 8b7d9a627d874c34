// Package list contains the implementation of a type-safe, intrusive,
// circular doubly-linked list.
//
// The standard library provides an implementation of a non-intrusive
// doubly-linked list in the container/list package. Non-intrusive means that
// the list tracks values via an intermediary object, which carries a reference
// to the actual values. The list in this package takes the other approach:
// values embed a field of type Node, and the list links those fields together
// without requiring an extra object per value.
//
// Lists are circular and anchored on a sentinel node which never carries a
// value. A list is empty when the sentinel's successor is the sentinel itself,
// which makes insertion and removal at either end constant time operations
// without special cases for the first or last element.
//
// To use the list, a program declares the type of values it will link, with a
// Node field parameterized on that same type:
//
//	type Object struct {
//		Data string
//		node list.Node[Object]
//	}
//
// Each node records the value that owns it when it is initialized, so the
// value can be recovered from the node without pointer arithmetic:
//
//	head := new(list.Node[Object]).Init(nil)
//
//	obj := &Object{Data: "A"}
//	obj.node.Init(obj)
//	obj.node.LinkBefore(head)
//
//	for n := head.Next(); n != head; n = n.Next() {
//		o := n.Owner()
//		...
//	}
//
// None of the operations verify their preconditions; linking a node which is
// already part of a list, or unlinking a node which is not, corrupts the lists
// involved.
package list

// Node values must be embedded as a struct field in the values linked in a
// list, or used on their own as list sentinels.
//
// The zero-value is not linked to anything; Init must be called before the
// node is used.
type Node[T any] struct {
	prev, next *Node[T]
	owner      *T
}

// Init turns n into a single node circular list and records owner as the value
// that n belongs to. Sentinels are initialized with a nil owner.
func (n *Node[T]) Init(owner *T) *Node[T] {
	n.prev = n
	n.next = n
	n.owner = owner
	return n
}

// Owner returns the value that n was initialized with.
func (n *Node[T]) Owner() *T { return n.owner }

// Next returns the node following n.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the node preceding n.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Empty returns true if the list anchored at n contains no other node.
func (n *Node[T]) Empty() bool { return n.next == n }

// Singular returns true if the list anchored at n contains exactly one other
// node.
func (n *Node[T]) Singular() bool { return n.next != n && n.next.next == n }

// Len returns the number of nodes in the list anchored at n, excluding n.
//
// NOTE: This is an O(n) operation.
func (n *Node[T]) Len() (count int) {
	for x := n.next; x != n; x = x.next {
		count++
	}
	return count
}

// LinkAfter inserts n in the list immediately after at.
func (n *Node[T]) LinkAfter(at *Node[T]) { link(n, at, at.next) }

// LinkBefore inserts n in the list immediately before at.
func (n *Node[T]) LinkBefore(at *Node[T]) { link(n, at.prev, at) }

// Unlink removes n from the list it is part of by connecting its neighbors to
// each other. The links of n itself are left unchanged.
func (n *Node[T]) Unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// UnlinkInit is like Unlink but also resets n to a single node list, so it can
// be reused as the sentinel of an independent list.
func (n *Node[T]) UnlinkInit() {
	n.Unlink()
	n.prev = n
	n.next = n
}

// MoveAfter removes n from its list and inserts it immediately after at.
func (n *Node[T]) MoveAfter(at *Node[T]) {
	n.Unlink()
	n.LinkAfter(at)
}

// MoveBefore removes n from its list and inserts it immediately before at.
func (n *Node[T]) MoveBefore(at *Node[T]) {
	n.Unlink()
	n.LinkBefore(at)
}

// SpliceBefore moves all the nodes of the list anchored at n, in order, to the
// position immediately before at. The operation runs in constant time and
// leaves n as an empty list.
func (n *Node[T]) SpliceBefore(at *Node[T]) {
	if n.Empty() {
		return
	}
	first, last := n.next, n.prev
	prev := at.prev

	prev.next = first
	first.prev = prev
	last.next = at
	at.prev = last

	n.prev = n
	n.next = n
}

func link[T any](node, prev, next *Node[T]) {
	next.prev = node
	node.next = next
	node.prev = prev
	prev.next = node
}
