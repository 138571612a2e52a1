package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Watch when a stored value changes on disk, typically
// because another process (the backup tool, a second shell) wrote it.
type Event struct {
	// Key is the logical store key that changed. Empty means the change
	// could not be attributed to one key and callers should refresh fully.
	Key string
}

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel to avoid missing events. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (kv *KV) Watch(ctx context.Context) (<-chan Event, error) {
	if !kv.available {
		return nil, errors.New("store: persistence unavailable")
	}
	if err := os.MkdirAll(kv.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(kv.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", kv.basePath, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer lags; the next refresh
				// picks up the change and the watcher never stalls.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a full refresh so clients
				// stay in sync even when the change cannot be classified.
				throttle.Enqueue(Event{}, send)
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Key: kv.keyForPath(evt.Name)}, send)
			}
		}
	}()

	return events, nil
}

// keyForPath derives the logical store key from a filesystem path.
func (kv *KV) keyForPath(path string) string {
	rel, err := filepath.Rel(kv.basePath, path)
	if err != nil || rel == "." || strings.Contains(rel, string(os.PathSeparator)) {
		return ""
	}
	if rel == probeKey || strings.HasPrefix(rel, ".") {
		return ""
	}
	return rel
}

// eventThrottle coalesces rapid change notifications so consumers refresh
// once per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for key := range pending {
		send(Event{Key: key})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
