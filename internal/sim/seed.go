package sim

import (
	"os"
	"time"
)

// DefaultSeed derives a run seed from the clock and pid, so concurrent
// processes started in the same instant still diverge.
func DefaultSeed() int64 {
	return time.Now().UnixNano() ^ int64(os.Getpid())
}
