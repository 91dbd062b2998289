package pool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestMPMCQueue_FIFO_SingleThreaded(t *testing.T) {
	q := NewMPMCQueue[int](8)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := q.Enqueue(ctx, i); err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
	}

	if q.Len() != 5 {
		t.Errorf("expected length 5, got %d", q.Len())
	}

	for i := 0; i < 5; i++ {
		v, err := q.Dequeue(ctx)
		if err != nil {
			t.Fatalf("dequeue %d: %v", i, err)
		}
		if v != i {
			t.Errorf("expected %d, got %d", i, v)
		}
	}
}

func TestMPMCQueue_CapacityRounding(t *testing.T) {
	q := NewMPMCQueue[int](5)
	if q.Cap() != 8 {
		t.Errorf("expected capacity rounded to 8, got %d", q.Cap())
	}

	q = NewMPMCQueue[int](0)
	if q.Cap() != 1 {
		t.Errorf("expected minimum capacity 1, got %d", q.Cap())
	}
}

func TestMPMCQueue_EnqueueBlocksWhenFull(t *testing.T) {
	q := NewMPMCQueue[int](2)
	ctx := context.Background()

	if err := q.Enqueue(ctx, 1); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := q.Enqueue(ctx, 2); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	unblocked := make(chan struct{})
	go func() {
		_ = q.Enqueue(ctx, 3)
		close(unblocked)
	}()

	select {
	case <-unblocked:
		t.Fatal("enqueue on a full queue should block")
	case <-time.After(50 * time.Millisecond):
	}

	if _, err := q.Dequeue(ctx); err != nil {
		t.Fatalf("dequeue: %v", err)
	}

	select {
	case <-unblocked:
	case <-time.After(time.Second):
		t.Fatal("enqueue did not resume after a slot was freed")
	}
}

func TestMPMCQueue_EnqueueRespectsContext(t *testing.T) {
	q := NewMPMCQueue[int](1)
	if err := q.Enqueue(context.Background(), 1); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := q.Enqueue(ctx, 2)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestMPMCQueue_DequeueBlocksWhenEmpty(t *testing.T) {
	q := NewMPMCQueue[int](4)
	ctx := context.Background()

	got := make(chan int, 1)
	go func() {
		v, err := q.Dequeue(ctx)
		if err == nil {
			got <- v
		}
	}()

	select {
	case <-got:
		t.Fatal("dequeue on an empty queue should block")
	case <-time.After(50 * time.Millisecond):
	}

	if err := q.Enqueue(ctx, 42); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	select {
	case v := <-got:
		if v != 42 {
			t.Errorf("expected 42, got %d", v)
		}
	case <-time.After(time.Second):
		t.Fatal("dequeue did not resume after an item arrived")
	}
}

func TestMPMCQueue_CloseDrainsThenFails(t *testing.T) {
	q := NewMPMCQueue[int](4)
	ctx := context.Background()

	if err := q.Enqueue(ctx, 7); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	q.Close()

	if err := q.Enqueue(ctx, 8); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("expected ErrQueueClosed on enqueue after close, got %v", err)
	}

	v, err := q.Dequeue(ctx)
	if err != nil {
		t.Fatalf("expected remaining item to drain, got %v", err)
	}
	if v != 7 {
		t.Errorf("expected 7, got %d", v)
	}

	if _, err := q.Dequeue(ctx); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("expected ErrQueueClosed on drained queue, got %v", err)
	}
}

func TestMPMCQueue_TryDequeue(t *testing.T) {
	q := NewMPMCQueue[int](4)

	if _, ok := q.TryDequeue(); ok {
		t.Error("TryDequeue on empty queue should report false")
	}

	if err := q.Enqueue(context.Background(), 9); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	v, ok := q.TryDequeue()
	if !ok || v != 9 {
		t.Errorf("expected (9, true), got (%d, %v)", v, ok)
	}
}

func TestMPMCQueue_ConcurrentConservation(t *testing.T) {
	const (
		producers   = 4
		consumers   = 4
		perProducer = 1000
	)

	q := NewMPMCQueue[int](16)
	ctx := context.Background()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				if err := q.Enqueue(ctx, 1); err != nil {
					t.Errorf("enqueue: %v", err)
					return
				}
			}
		}()
	}

	var consumed atomic.Int64
	perConsumer := producers * perProducer / consumers
	for c := 0; c < consumers; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perConsumer; i++ {
				v, err := q.Dequeue(ctx)
				if err != nil {
					t.Errorf("dequeue: %v", err)
					return
				}
				consumed.Add(int64(v))
			}
		}()
	}

	wg.Wait()

	// Every produced item was delivered to exactly one consumer.
	if got := consumed.Load(); got != producers*perProducer {
		t.Errorf("expected %d items consumed, got %d", producers*perProducer, got)
	}
	if q.Len() != 0 {
		t.Errorf("expected empty queue, got length %d", q.Len())
	}
}
