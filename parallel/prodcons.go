package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/utkarsh5026/silibench/pool"
)

const defaultProducedItems = 200

// ProducerConsumer splits the workers into max(1, P/2) producers and
// max(1, P-producers) consumers around one bounded blocking queue. Each
// producer emits items/producers items; each consumer drains an even
// totalItems/consumers share, so a remainder of fewer than `consumers` items
// can stay unconsumed. That under-consumption is a kept benchmark
// approximation: the measurement targets queue handoff cost, not exact
// delivery accounting. The call blocks until every producer and consumer has
// terminated and returns totalItems.
func ProducerConsumer(ctx context.Context, args []int) (int64, error) {
	workers, items, err := splitArgs(args, defaultProducedItems)
	if err != nil {
		return 0, err
	}

	producers := max(1, workers/2)
	consumers := max(1, workers-producers)

	itemsPerProducer := items / producers
	totalItems := itemsPerProducer * producers
	itemsPerConsumer := totalItems / consumers

	// Capacity must exceed the unconsumed remainder (< consumers <= workers)
	// or the last producers would block forever.
	queue := pool.NewMPMCQueue[int](max(64, workers))
	defer queue.Close()

	g, gctx := errgroup.WithContext(ctx)

	for p := 0; p < producers; p++ {
		g.Go(func() error {
			for i := 0; i < itemsPerProducer; i++ {
				if err := queue.Enqueue(gctx, i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	for c := 0; c < consumers; c++ {
		g.Go(func() error {
			for i := 0; i < itemsPerConsumer; i++ {
				if _, err := queue.Dequeue(gctx); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int64(totalItems), nil
}
