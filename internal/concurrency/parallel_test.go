package concurrency

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.MaxWorkers != 0 {
		t.Errorf("Expected MaxWorkers to be 0, got %d", opts.MaxWorkers)
	}
}

func TestProcessParallel(t *testing.T) {
	ctx := context.Background()

	// Test with empty slice
	results, errs := ProcessParallel(ctx, []int{}, DefaultOptions(), func(ctx context.Context, index int, item int) (string, error) {
		return "", nil
	})
	if len(results) != 0 {
		t.Errorf("Expected empty results for empty input, got %d items", len(results))
	}
	if errs != nil {
		t.Errorf("Expected nil errors for empty input, got %v", errs)
	}

	// Test with normal operation
	input := []int{1, 2, 3, 4, 5}
	results, errs = ProcessParallel(ctx, input, DefaultOptions(), func(ctx context.Context, index int, item int) (string, error) {
		return string(rune('a' + item - 1)), nil
	})
	if len(results) != len(input) {
		t.Errorf("Expected %d results, got %d", len(input), len(results))
	}
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %d", len(errs))
	}
	expected := []string{"a", "b", "c", "d", "e"}
	for i, res := range results {
		if res != expected[i] {
			t.Errorf("Expected result at index %d to be %s, got %s", i, expected[i], res)
		}
	}

	// Test with errors
	results, errs = ProcessParallel(ctx, input, DefaultOptions(), func(ctx context.Context, index int, item int) (string, error) {
		if item%2 == 0 {
			return "", errors.New("even number error")
		}
		return string(rune('a' + item - 1)), nil
	})
	if len(results) != len(input) {
		t.Errorf("Expected %d results, got %d", len(input), len(results))
	}
	if len(errs) != 2 {
		t.Errorf("Expected 2 errors, got %d", len(errs))
	}

	// Test with bounded workers
	opts := ParallelOptions{MaxWorkers: 2}
	results, errs = ProcessParallel(ctx, input, opts, func(ctx context.Context, index int, item int) (string, error) {
		return string(rune('a' + item - 1)), nil
	})
	if len(results) != len(input) {
		t.Errorf("Expected %d results, got %d", len(input), len(results))
	}
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %d", len(errs))
	}
}

func TestProcessParallelBoundedWorkers(t *testing.T) {
	var inFlight, peak int32
	input := make([]int, 12)

	_, _ = ProcessParallel(context.Background(), input, ParallelOptions{MaxWorkers: 3}, func(ctx context.Context, index int, item int) (int, error) {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return index, nil
	})

	if peak > 3 {
		t.Errorf("Expected at most 3 concurrent calls, saw %d", peak)
	}
}

// Every call is issued before any of them finishes.
func TestProcessParallelUnboundedFanOut(t *testing.T) {
	const n = 10
	var started int32
	release := make(chan struct{})

	go func() {
		deadline := time.After(2 * time.Second)
		for atomic.LoadInt32(&started) < n {
			select {
			case <-deadline:
				close(release)
				return
			default:
				time.Sleep(time.Millisecond)
			}
		}
		close(release)
	}()

	_, _ = ProcessParallel(context.Background(), make([]int, n), DefaultOptions(), func(ctx context.Context, index int, item int) (int, error) {
		atomic.AddInt32(&started, 1)
		<-release
		return index, nil
	})

	if got := atomic.LoadInt32(&started); got != n {
		t.Errorf("Expected %d calls in flight together, got %d", n, got)
	}
}

func TestProcessParallelCancelledContext(t *testing.T) {
	cancelCtx, cancel := context.WithCancel(context.Background())
	cancel()

	input := []int{1, 2, 3}
	var calls int32
	results, errs := ProcessParallel(cancelCtx, input, DefaultOptions(), func(ctx context.Context, index int, item int) (int, error) {
		atomic.AddInt32(&calls, 1)
		if ctx.Err() == nil {
			t.Error("Expected cancelled context to be passed through")
		}
		return item * 10, nil
	})

	if calls != int32(len(input)) {
		t.Errorf("Expected every item to be visited, got %d calls", calls)
	}
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %d", len(errs))
	}
	if results[2] != 30 {
		t.Errorf("Expected result 30 at index 2, got %d", results[2])
	}
}

// Test to ensure results are returned in the correct order despite parallel execution
func TestProcessParallelOrder(t *testing.T) {
	ctx := context.Background()
	input := []int{5, 3, 1, 4, 2} // Unordered input

	results, errs := ProcessParallel(ctx, input, DefaultOptions(), func(ctx context.Context, index int, item int) (int, error) {
		// Simulate varying processing times
		time.Sleep(time.Duration(item) * 10 * time.Millisecond)
		return item, nil
	})

	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %d", len(errs))
	}

	// Results should match the original input order, not execution completion order
	for i, res := range results {
		if res != input[i] {
			t.Errorf("Expected result at index %d to be %d, got %d", i, input[i], res)
		}
	}
}
