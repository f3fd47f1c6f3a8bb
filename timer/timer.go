package timer

import (
	"math/rand"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. Used to drive simulations step by step.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// ElectionTimer expires when no reset happened for base + uniform[0, jitter].
// The timeout is drawn again on every reset. Not safe for concurrent use.
type ElectionTimer struct {
	base   time.Duration
	jitter time.Duration
	rand   *rand.Rand

	lastReset time.Time
	timeout   time.Duration
}

func NewElectionTimer(base, jitter time.Duration, r *rand.Rand, now time.Time) *ElectionTimer {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	t := &ElectionTimer{
		base:   base,
		jitter: jitter,
		rand:   r,
	}
	t.Reset(now)
	return t
}

func (t *ElectionTimer) Reset(now time.Time) {
	t.lastReset = now
	t.timeout = t.base
	if t.jitter > 0 {
		t.timeout += time.Duration(t.rand.Int63n(int64(t.jitter) + 1))
	}
}

func (t *ElectionTimer) Expired(now time.Time) bool {
	return now.Sub(t.lastReset) > t.timeout
}

func (t *ElectionTimer) Timeout() time.Duration {
	return t.timeout
}

func (t *ElectionTimer) LastReset() time.Time {
	return t.lastReset
}

// HeartbeatTimer fires at a fixed interval while started.
type HeartbeatTimer struct {
	interval time.Duration
	next     time.Time
	active   bool
}

func NewHeartbeatTimer(interval time.Duration) *HeartbeatTimer {
	return &HeartbeatTimer{interval: interval}
}

// Start arms the timer so that the first beat is due immediately.
func (t *HeartbeatTimer) Start(now time.Time) {
	t.active = true
	t.next = now
}

func (t *HeartbeatTimer) Stop() {
	t.active = false
}

func (t *HeartbeatTimer) Active() bool {
	return t.active
}

func (t *HeartbeatTimer) Due(now time.Time) bool {
	return t.active && !now.Before(t.next)
}

// Fired schedules the next beat one interval after now.
func (t *HeartbeatTimer) Fired(now time.Time) {
	t.next = now.Add(t.interval)
}
