package entity

import (
	"crypto/md5"
	"fmt"
	"sync/atomic"
	"time"
)

var idSeq uint64

// NewID makes an identifier like "todo_9f2c41aa03b17d5e". The hash input mixes
// a process-wide sequence with the clock so two ids minted in the same
// nanosecond still differ.
func NewID(prefix string) string {
	n := atomic.AddUint64(&idSeq, 1)
	sum := md5.Sum([]byte(fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixNano(), n)))
	return fmt.Sprintf("%s_%x", prefix, sum[:8])
}
