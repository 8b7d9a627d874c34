// Package queue implements a double ended queue of strings on top of the
// intrusive circular list of package list.
//
// Besides insertion and removal at both ends, queues support a set of
// algorithms which rearrange the elements in place by rewiring their links:
// deletion of the middle element, deletion of duplicates in a sorted queue,
// swapping of adjacent pairs, reversal, stable merge sort and uniform
// shuffling. None of them allocate.
//
// All methods accept a nil *Queue, in which case they report failure (false,
// zero or nil) or do nothing.
//
// Queues are unsafe to use concurrently from multiple goroutines; programs
// which need to share a queue must serialize access to it.
package queue

import (
	"errors"
	"math/rand"

	"github.com/segmentio/queue/list"
)

var (
	// ErrNoMemory is returned when the allocator configured on a queue
	// refuses to provide the memory needed to create it.
	ErrNoMemory = errors.New("not enough memory to allocate the queue")
)

// Queue values are double ended queues of strings.
//
// The zero-value is a valid, empty queue using the DefaultAllocator and a
// time seeded source of randomness.
type Queue struct {
	head     list.Node[Element]
	shuffled list.Node[Element]
	alloc    Allocator
	rand     *rand.Rand
}

// New constructs a new empty Queue, using the list of options passed as
// arguments to configure it.
func New(options ...Option) (*Queue, error) {
	config := DefaultConfig()
	config.Apply(options...)
	return NewWithConfig(config)
}

// NewWithConfig is like New but uses a Config instance to pass the queue
// configuration instead of a list of options. A nil config is equivalent to
// DefaultConfig().
func NewWithConfig(config *Config) (*Queue, error) {
	if config == nil {
		config = DefaultConfig()
	}
	alloc := config.Allocator
	if alloc == nil {
		alloc = DefaultAllocator
	}
	if !alloc.Alloc(queueSize) {
		return nil, ErrNoMemory
	}
	q := &Queue{
		alloc: alloc,
		rand:  config.Rand,
	}
	q.head.Init(nil)
	return q, nil
}

// Free releases all the elements remaining in q, then the queue itself. The
// queue must not be used after being freed.
func (q *Queue) Free() {
	if q == nil {
		return
	}
	head := q.list()
	for !head.Empty() {
		q.delete(elementOf(head.Next()))
	}
	q.allocator().Free(queueSize)
}

// InsertHead inserts a copy of s at the head of q.
//
// The method returns false if q is nil or if the memory for the new element
// could not be allocated, in which case q is left unchanged.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}
	e := newElement(q.allocator(), s)
	if e == nil {
		return false
	}
	e.node.LinkAfter(q.list())
	return true
}

// InsertTail inserts a copy of s at the tail of q.
//
// The method returns false if q is nil or if the memory for the new element
// could not be allocated, in which case q is left unchanged.
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}
	e := newElement(q.allocator(), s)
	if e == nil {
		return false
	}
	e.node.LinkBefore(q.list())
	return true
}

// RemoveHead removes the element at the head of q and returns it, or returns
// nil if q is nil or empty.
//
// The element is not released: ownership is transferred to the caller, which
// must eventually call its Release method.
//
// When buf holds more than one byte, the value of the removed element is
// copied to it, truncated to len(buf)-1 bytes and followed by zero bytes up to
// the end of buf.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if q == nil || q.list().Empty() {
		return nil
	}
	return q.remove(elementOf(q.head.Next()), buf)
}

// RemoveTail is like RemoveHead but removes the element at the tail of q.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if q == nil || q.list().Empty() {
		return nil
	}
	return q.remove(elementOf(q.head.Prev()), buf)
}

// Size returns the number of elements in q.
//
// NOTE: This is an O(n) operation.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	return q.list().Len()
}

// Range calls f for each element of q, from head to tail. If f returns false,
// iteration stops. f must not modify q.
func (q *Queue) Range(f func(*Element) bool) {
	if q == nil {
		return
	}
	head := q.list()
	for x := head.Next(); x != head; x = x.Next() {
		if !f(elementOf(x)) {
			break
		}
	}
}

// Values returns the values of the elements of q, from head to tail.
func (q *Queue) Values() []string {
	values := make([]string, 0, q.Size())
	q.Range(func(e *Element) bool {
		values = append(values, e.Value())
		return true
	})
	return values
}

func (q *Queue) remove(e *Element, buf []byte) *Element {
	e.node.UnlinkInit()
	e.copyTo(buf)
	return e
}

func (q *Queue) delete(e *Element) {
	e.node.UnlinkInit()
	e.Release()
}

// list returns the sentinel of q, initializing it if q is a zero-value.
func (q *Queue) list() *list.Node[Element] {
	if q.head.Next() == nil {
		q.head.Init(nil)
	}
	return &q.head
}

func (q *Queue) allocator() Allocator {
	if q.alloc == nil {
		return DefaultAllocator
	}
	return q.alloc
}

func (q *Queue) random() *rand.Rand {
	if q.rand == nil {
		q.rand = newTimeSeededRand()
	}
	return q.rand
}
