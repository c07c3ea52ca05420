package infra

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDeduplicatorSingleCall(t *testing.T) {
	d := NewDeduplicator()

	result, shared, err := d.Do(context.Background(), "key", func() (any, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if shared {
		t.Error("single call should not be shared")
	}
	if result != 42 {
		t.Errorf("result = %v, want 42", result)
	}
}

func TestDeduplicatorCoalescesConcurrentCalls(t *testing.T) {
	d := NewDeduplicator()

	var executions atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, _, err := d.Do(context.Background(), "shared-key", func() (any, error) {
				executions.Add(1)
				time.Sleep(50 * time.Millisecond)
				return "result", nil
			})
			if err != nil {
				t.Errorf("Do failed: %v", err)
			}
			if result != "result" {
				t.Errorf("result = %v, want result", result)
			}
		}()
	}
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Errorf("fn executed %d times, want 1", got)
	}
}

func TestDeduplicatorDifferentKeys(t *testing.T) {
	d := NewDeduplicator()

	var executions atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		key := "key-" + string(rune('a'+i))
		go func(k string) {
			defer wg.Done()
			_, _, err := d.Do(context.Background(), k, func() (any, error) {
				executions.Add(1)
				time.Sleep(20 * time.Millisecond)
				return k, nil
			})
			if err != nil {
				t.Errorf("Do failed for %s: %v", k, err)
			}
		}(key)
	}
	wg.Wait()

	if got := executions.Load(); got != 5 {
		t.Errorf("fn executed %d times, want 5 (one per key)", got)
	}
}

func TestDeduplicatorPropagatesError(t *testing.T) {
	d := NewDeduplicator()
	wantErr := errors.New("upstream failed")

	_, _, err := d.Do(context.Background(), "key", func() (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}

	// The failed call is no longer in flight; a retry executes again.
	result, shared, err := d.Do(context.Background(), "key", func() (any, error) {
		return "ok", nil
	})
	if err != nil || shared || result != "ok" {
		t.Errorf("retry: result=%v shared=%v err=%v", result, shared, err)
	}
}

func TestDeduplicatorContextCancel(t *testing.T) {
	d := NewDeduplicator()

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_, _, _ = d.Do(context.Background(), "key", func() (any, error) {
			close(started)
			<-release
			return nil, nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := d.Do(ctx, "key", func() (any, error) {
		t.Error("fn should not execute for a canceled waiter")
		return nil, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}

	close(release)
}

func TestDeduplicatorInFlight(t *testing.T) {
	d := NewDeduplicator()
	if d.InFlight() != 0 {
		t.Errorf("InFlight = %d, want 0", d.InFlight())
	}
}
