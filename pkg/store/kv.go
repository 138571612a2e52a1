package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/peterbourgon/diskv/v3"
)

const (
	probeKey = "__focus_probe__"

	// historyTrimLimit is how many focus-history entries survive the one
	// remediation pass taken when a write runs out of room.
	historyTrimLimit = 10

	// previewLimit bounds how much of a corrupted payload is echoed to the
	// log before the value is discarded.
	previewLimit = 100
)

// Options configures Open beyond the config file.
type Options struct {
	// MaxBytes caps the total size of the store directory, mirroring the
	// hard quota of browser-style storage. Zero means no explicit budget;
	// the filesystem itself still imposes one.
	MaxBytes int64
}

// KV is a durable string-keyed JSON store. Every value is one document under
// one flat key. All methods are safe to call when the backing directory is
// unavailable; operations then degrade to no-ops and reads return fallbacks.
type KV struct {
	d         *diskv.Diskv
	basePath  string
	maxBytes  int64
	available bool
	warnOnce  sync.Once
}

// Open creates a KV rooted at the configured base path. The store is probed
// with a throwaway write before use; if the probe fails the KV still opens,
// but in unavailable (memory-only) mode.
func Open(cfg Config, opts Options) (*KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	kv := &KV{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		maxBytes: opts.MaxBytes,
	}
	kv.available = kv.probe()
	return kv, nil
}

// probe verifies the backing directory is writable with a throwaway
// write+erase. A probe failure (read-only media, permission trouble) flips
// the store into memory-only mode and warns exactly once.
func (kv *KV) probe() bool {
	if err := kv.d.Write(probeKey, []byte("ok")); err != nil {
		kv.warnUnavailable(err)
		return false
	}
	if err := kv.d.Erase(probeKey); err != nil {
		kv.warnUnavailable(err)
		return false
	}
	return true
}

func (kv *KV) warnUnavailable(err error) {
	kv.warnOnce.Do(func() {
		fmt.Fprintf(os.Stderr, "store: persistence unavailable, changes will not be saved: %v\n", err)
	})
}

// Available reports whether writes actually reach disk.
func (kv *KV) Available() bool {
	return kv.available
}

// BasePath returns the store directory.
func (kv *KV) BasePath() string {
	return kv.basePath
}

// GetRaw returns the stored bytes for key. ok is false when the store is
// unavailable or the key is absent.
func (kv *KV) GetRaw(key string) ([]byte, bool) {
	if !kv.available {
		return nil, false
	}
	data, err := kv.d.Read(key)
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetRaw persists data under key and verifies the write by reading it back.
// A false return means the value is not durably stored; callers decide
// whether to surface that to the user. SetRaw never returns an error for
// expected storage failures.
func (kv *KV) SetRaw(key string, data []byte) bool {
	if !kv.available {
		return false
	}

	if kv.overBudget(key, int64(len(data))) {
		kv.trimHistory()
		if kv.overBudget(key, int64(len(data))) {
			fmt.Fprintf(os.Stderr, "store: quota exceeded writing %q, value dropped\n", key)
			return false
		}
	}

	if err := kv.d.Write(key, data); err != nil {
		if !isQuotaErr(err) {
			fmt.Fprintf(os.Stderr, "store: write %q: %v\n", key, err)
			return false
		}
		// One remediation, one retry.
		kv.trimHistory()
		if err := kv.d.Write(key, data); err != nil {
			fmt.Fprintf(os.Stderr, "store: quota exceeded writing %q, value dropped\n", key)
			return false
		}
	}

	saved, err := kv.d.Read(key)
	if err != nil || !bytes.Equal(saved, data) {
		fmt.Fprintf(os.Stderr, "store: write verification failed for %q\n", key)
		return false
	}
	return true
}

// Delete removes a key. Missing keys are not an error.
func (kv *KV) Delete(key string) error {
	if !kv.available {
		return nil
	}
	if err := kv.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Has reports whether key currently holds a value.
func (kv *KV) Has(key string) bool {
	if !kv.available {
		return false
	}
	return kv.d.Has(key)
}

// EraseAll wipes every key under the store's namespace. This is the
// last-resort recovery path for repeated catastrophic failures.
func (kv *KV) EraseAll() error {
	if !kv.available {
		return nil
	}
	return kv.d.EraseAll()
}

// overBudget reports whether replacing key's value with newSize bytes would
// exceed the configured budget.
func (kv *KV) overBudget(key string, newSize int64) bool {
	if kv.maxBytes <= 0 {
		return false
	}
	used := kv.usedBytes()
	var current int64
	if info, err := os.Stat(filepath.Join(kv.basePath, key)); err == nil {
		current = info.Size()
	}
	return used-current+newSize > kv.maxBytes
}

func (kv *KV) usedBytes() int64 {
	var total int64
	entries, err := os.ReadDir(kv.basePath)
	if err != nil {
		return 0
	}
	for _, e := range entries {
		if info, err := e.Info(); err == nil && !info.IsDir() {
			total += info.Size()
		}
	}
	return total
}

// trimHistory keeps only the most recent focus-history entries. History is
// the one collection that grows without bound, so it is the designated
// sacrifice when space runs out. The list is stored newest-first.
func (kv *KV) trimHistory() {
	raw, err := kv.d.Read(KeyFocusHistory)
	if err != nil {
		return
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return
	}
	if len(entries) <= historyTrimLimit {
		return
	}
	trimmed, err := json.Marshal(entries[:historyTrimLimit])
	if err != nil {
		return
	}
	if err := kv.d.Write(KeyFocusHistory, trimmed); err != nil {
		fmt.Fprintf(os.Stderr, "store: trim focus history: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "store: trimmed focus history to %d entries to free space\n", historyTrimLimit)
}

func isQuotaErr(err error) bool {
	return errors.Is(err, syscall.ENOSPC)
}

// Get decodes the value at key into T. The fallback is returned when the
// store is unavailable, the key is absent, or the stored value is corrupt.
// Corrupt values are deleted so they cannot fail on every subsequent read.
func Get[T any](kv *KV, key string, fallback T) T {
	raw, ok := kv.GetRaw(key)
	if !ok {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		preview := raw
		if len(preview) > previewLimit {
			preview = preview[:previewLimit]
		}
		fmt.Fprintf(os.Stderr, "store: corrupted value for %q (%s...): %v\n", key, preview, err)
		if derr := kv.Delete(key); derr != nil {
			fmt.Fprintf(os.Stderr, "store: remove corrupted %q: %v\n", key, derr)
		}
		return fallback
	}
	return v
}

// Set encodes v as JSON and persists it under key. The boolean mirrors
// SetRaw: false means the caller's change did not reach disk.
func Set[T any](kv *KV, key string, v T) bool {
	data, err := json.Marshal(v)
	if err != nil {
		// Only unmarshalable programmer-supplied types land here.
		fmt.Fprintf(os.Stderr, "store: encode %q: %v\n", key, err)
		return false
	}
	return kv.SetRaw(key, data)
}
