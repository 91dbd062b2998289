package pool

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
)

var (
	// ErrQueueClosed is returned by Enqueue and Dequeue once Close has been
	// called (Dequeue only after the remaining items have drained).
	ErrQueueClosed = errors.New("queue is closed")
)

const (
	// Cache line size for padding to prevent false sharing
	cacheLinePadding = 128
	// Maximum spin attempts before parking on a notification channel
	maxSpinAttempts = 10
)

// queueSlot represents a single slot in the ring buffer
type queueSlot[T any] struct {
	// Sequence number for synchronization
	sequence uint64
	// The actual data
	value T
	// Padding to prevent false sharing between slots
	_ [cacheLinePadding - 16]byte
}

// MPMCQueue is a bounded multi-producer multi-consumer ring queue.
//
// Unlike a plain buffered channel it exposes TryDequeue and an approximate
// Len, which producer/consumer style benchmarks use to observe queue depth.
// Enqueue blocks while the queue is full and Dequeue blocks while it is
// empty; items are delivered to exactly one consumer.
type MPMCQueue[T any] struct {
	ring []queueSlot[T]
	// Capacity mask (capacity - 1) for fast modulo
	mask uint64

	// Head and tail positions with padding to prevent false sharing
	_    [cacheLinePadding]byte
	head uint64
	_    [cacheLinePadding - 8]byte
	tail uint64
	_    [cacheLinePadding - 8]byte

	// Closed flag
	closed atomic.Bool

	// Notification channel for data (BUFFERED, NEVER CLOSED)
	notifyData chan struct{}

	// Notification channel for freed slots (BUFFERED, NEVER CLOSED)
	notifySpace chan struct{}

	// Notification channel for shutdown (UNBUFFERED, CLOSED ON SHUTDOWN)
	closeC chan struct{}

	capacity int
}

// NewMPMCQueue creates a bounded queue that holds at most capacity items.
// Capacity is rounded up to the next power of two.
func NewMPMCQueue[T any](capacity int) *MPMCQueue[T] {
	if capacity <= 0 {
		capacity = 1
	}

	capacity = nextPowerOfTwo(capacity)
	ring := make([]queueSlot[T], capacity)

	for i := range ring {
		ring[i].sequence = uint64(i)
	}

	return &MPMCQueue[T]{
		ring:        ring,
		mask:        uint64(capacity - 1),
		capacity:    capacity,
		notifyData:  make(chan struct{}, 1),
		notifySpace: make(chan struct{}, 1),
		closeC:      make(chan struct{}),
	}
}

// Enqueue adds an item to the queue, blocking while the queue is full.
// Returns ErrQueueClosed if the queue has been closed, or the context error
// if ctx is cancelled while waiting for space.
func (q *MPMCQueue[T]) Enqueue(ctx context.Context, value T) error {
	spinCount := 0

	for {
		if q.closed.Load() {
			return ErrQueueClosed
		}

		_, tail, slot, diff := q.load(false)
		if diff == 0 {
			if atomic.CompareAndSwapUint64(&q.tail, tail, tail+1) {
				slot.value = value
				atomic.StoreUint64(&slot.sequence, tail+1)
				select {
				case q.notifyData <- struct{}{}:
				default:
				}
				return nil
			}
			continue
		}

		// diff < 0 means the slot still holds an unconsumed item: the
		// queue is full. Spin briefly, then park until a consumer frees
		// a slot.
		spinCount++
		if spinCount < maxSpinAttempts {
			runtime.Gosched()
			continue
		}

		if diff < 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-q.closeC:
				return ErrQueueClosed
			case <-q.notifySpace:
			}
		}
		spinCount = 0
	}
}

// Dequeue removes and returns an item from the queue, blocking while the
// queue is empty. Returns ErrQueueClosed once the queue is closed and
// drained, or the context error if ctx is cancelled while waiting.
func (q *MPMCQueue[T]) Dequeue(ctx context.Context) (T, error) {
	var zero T
	spinCount := 0

	for {
		if q.isDrained() {
			return zero, ErrQueueClosed
		}

		head, _, slot, diff := q.load(true)
		if diff == 0 {
			if val, ok := q.claim(head, slot); ok {
				return val, nil
			}
			continue
		}

		spinCount++
		if spinCount < maxSpinAttempts {
			runtime.Gosched()
			continue
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-q.closeC:
			// Re-check for a race between close and a final enqueue.
			if q.isDrained() {
				return zero, ErrQueueClosed
			}
		case <-q.notifyData:
		}
		spinCount = 0
	}
}

// TryDequeue attempts to dequeue an item without blocking.
// Returns (value, true) if successful, (zero, false) if the queue is empty.
func (q *MPMCQueue[T]) TryDequeue() (T, bool) {
	var zero T

	if q.isDrained() {
		return zero, false
	}

	head, _, slot, diff := q.load(true)
	if diff == 0 {
		return q.claim(head, slot)
	}

	return zero, false
}

// claim atomically takes ownership of the item at head. Exactly one caller
// wins the CAS, guaranteeing single-ownership dequeue.
func (q *MPMCQueue[T]) claim(head uint64, slot *queueSlot[T]) (T, bool) {
	var zero T
	if atomic.CompareAndSwapUint64(&q.head, head, head+1) {
		value := slot.value
		slot.value = zero
		// Release the slot to producers:
		// if head is N, the next sequence for this slot is N + capacity
		atomic.StoreUint64(&slot.sequence, head+q.mask+1)
		select {
		case q.notifySpace <- struct{}{}:
		default:
		}
		return value, true
	}
	return zero, false
}

// isDrained reports whether the queue is closed and empty.
func (q *MPMCQueue[T]) isDrained() bool {
	if q.closed.Load() {
		head := atomic.LoadUint64(&q.head)
		tail := atomic.LoadUint64(&q.tail)
		if head >= tail {
			return true
		}
	}
	return false
}

// load atomically loads head and tail positions and the corresponding slot.
// Also computes the difference between slot sequence and expected sequence.
func (q *MPMCQueue[T]) load(ishead bool) (head uint64, tail uint64, slot *queueSlot[T], diff int64) {
	head = atomic.LoadUint64(&q.head)
	tail = atomic.LoadUint64(&q.tail)

	pos := tail
	if ishead {
		pos = head
	}

	index := pos & q.mask
	slot = &q.ring[index]
	seq := atomic.LoadUint64(&slot.sequence)

	if ishead {
		diff = int64(seq) - int64(head+1)
	} else {
		diff = int64(seq) - int64(tail)
	}

	return
}

// Len returns the approximate number of items in the queue.
// This is an approximation due to concurrent operations.
func (q *MPMCQueue[T]) Len() int {
	head := atomic.LoadUint64(&q.head)
	tail := atomic.LoadUint64(&q.tail)

	if tail > head {
		return int(tail - head)
	}
	return 0
}

// Cap returns the capacity of the queue.
func (q *MPMCQueue[T]) Cap() int {
	return q.capacity
}

// Close marks the queue as closed. No new items can be enqueued after close;
// consumers drain the remaining items and then receive ErrQueueClosed.
func (q *MPMCQueue[T]) Close() {
	if q.closed.CompareAndSwap(false, true) {
		close(q.closeC)
	}
}

// IsClosed returns whether the queue is closed.
func (q *MPMCQueue[T]) IsClosed() bool {
	return q.closed.Load()
}
