package store

import (
	"context"
	"testing"
	"time"
)

func TestWatchEmitsKeyChanges(t *testing.T) {
	kv := setupKV(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := kv.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if ok := Set(kv, KeyTodos, []string{}); !ok {
		t.Fatalf("set failed")
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Key == "" || evt.Key == KeyTodos {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for change event")
		}
	}
}
