package queue

import "unsafe"

var (
	queueSize   = int(unsafe.Sizeof(Queue{}))
	elementSize = int(unsafe.Sizeof(Element{}))
)

// Allocator is the interface used by queues to account for the memory that
// they hold.
//
// Queues charge the allocator for their sentinel when they are created, and
// for each element and its payload when values are inserted. The charges are
// returned when elements are released and when queues are freed.
//
// Alloc returns false when the memory cannot be obtained, in which case the
// operation that requested it fails without modifying the queue.
type Allocator interface {
	Alloc(size int) bool
	Free(size int)
}

// DefaultAllocator is the allocator used by queues which were not configured
// with one. It never fails and does not track usage.
var DefaultAllocator Allocator = heap{}

type heap struct{}

func (heap) Alloc(int) bool { return true }
func (heap) Free(int) {}

// BudgetStats contains counters tracking usage of a Budget.
type BudgetStats struct {
	Allocs   int64 // successful calls to Alloc
	Frees    int64 // calls to Free
	Failures int64 // calls to Alloc which exceeded the limit
	InUse    int64 // bytes currently held
}

// Budget is an Allocator which bounds the number of bytes held by the queues
// that it is shared with.
//
// The zero-value is a valid, unlimited budget which only tracks usage.
//
// Budget values are unsafe to use concurrently from multiple goroutines.
type Budget struct {
	// Limit is the maximum number of bytes that can be in use at any given
	// time. Zero or negative values mean no limit.
	Limit int64

	allocs   int64
	frees    int64
	failures int64
	inUse    int64
}

// Alloc satisfies the Allocator interface.
func (b *Budget) Alloc(size int) bool {
	if b.Limit > 0 && b.inUse+int64(size) > b.Limit {
		b.failures++
		return false
	}
	b.inUse += int64(size)
	b.allocs++
	return true
}

// Free satisfies the Allocator interface.
func (b *Budget) Free(size int) {
	b.inUse -= int64(size)
	b.frees++
}

// InUse returns the number of bytes currently held from b.
func (b *Budget) InUse() int64 { return b.inUse }

// Stats returns the current values of the budget counters.
func (b *Budget) Stats() BudgetStats {
	return BudgetStats{
		Allocs:   b.allocs,
		Frees:    b.frees,
		Failures: b.failures,
		InUse:    b.inUse,
	}
}
