package simple

import (
	"context"
	"sync"
	"testing"
)

func TestGenerator_Unique(t *testing.T) {
	g := New()

	const workers = 8

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[int]struct{})
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				id, err := g.GetID(context.Background())
				if err != nil {
					t.Errorf("Expected no error, got %v", err)

					return
				}

				mu.Lock()
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if len(ids) != workers*100 {
		t.Errorf("Expected %d unique ids, got %d", workers*100, len(ids))
	}
}

func TestGenerator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New().GetID(ctx); err == nil {
		t.Error("Expected error for cancelled context")
	}
}
