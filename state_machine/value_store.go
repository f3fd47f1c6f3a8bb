package state_machine

import (
	"log/slog"
	"sync"
)

const subscriptionBuffer = 16

// ValueStore holds the single replicated value. Subscribers are notified of
// every change; a subscriber that falls behind by more than its buffer misses
// events but can always read the latest value.
type ValueStore struct {
	mu          sync.RWMutex
	value       string
	subscribers []chan ValueChange
	closed      bool

	logger *slog.Logger
}

func NewValueStore(logger *slog.Logger) *ValueStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ValueStore{logger: logger}
}

func (s *ValueStore) Apply(value string, term uint64, leaderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.value == value {
		return false
	}
	s.value = value

	change := ValueChange{
		Value:       value,
		Fingerprint: Fingerprint(value),
		Term:        term,
		LeaderID:    leaderID,
	}
	for _, sub := range s.subscribers {
		select {
		case sub <- change:
		default:
			s.logger.Debug("value change subscriber is full, dropping event", "fingerprint", change.Fingerprint)
		}
	}
	return true
}

func (s *ValueStore) GetValue() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

func (s *ValueStore) Subscribe() <-chan ValueChange {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := make(chan ValueChange, subscriptionBuffer)
	if s.closed {
		close(sub)
		return sub
	}
	s.subscribers = append(s.subscribers, sub)
	return sub
}

// Close ends all subscriptions. The value stays readable.
func (s *ValueStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, sub := range s.subscribers {
		close(sub)
	}
	s.subscribers = nil
}
