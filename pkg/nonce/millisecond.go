package nonce

import (
	"strconv"
	"sync/atomic"
	"time"
)

// MillisecondNonce generates nonce values from the unix time in milliseconds.
// Values returned by one generator are strictly increasing, even when several
// goroutines ask for a nonce within the same millisecond.
type MillisecondNonce struct {
	current int64

	// now is replaced in tests
	now func() time.Time
}

func NewMillisecondNonce(now time.Time) *MillisecondNonce {
	return &MillisecondNonce{
		current: now.UnixMilli() - 1,
		now:     time.Now,
	}
}

// GetString returns the next nonce formatted in base 10.
func (ng *MillisecondNonce) GetString() string {
	return strconv.FormatInt(ng.GetInt64(), 10)
}

// GetInt64 returns the current time in milliseconds, or the last issued
// nonce + 1 when the clock has not moved forward since the previous call.
func (ng *MillisecondNonce) GetInt64() int64 {
	for {
		current := atomic.LoadInt64(&ng.current)
		next := ng.now().UnixMilli()
		if next <= current {
			next = current + 1
		}

		if atomic.CompareAndSwapInt64(&ng.current, current, next) {
			return next
		}
	}
}
