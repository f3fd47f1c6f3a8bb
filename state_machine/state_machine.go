package state_machine

import "github.com/spaolacci/murmur3"

// ValueChange is emitted whenever the replicated value is replaced by a
// different one.
type ValueChange struct {
	Value       string `json:"value"`
	Fingerprint uint64 `json:"fingerprint"`
	Term        uint64 `json:"term"`
	LeaderID    string `json:"leader_id"`
}

type StateMachine interface {
	// Apply stores value and reports whether it differs from the previous one.
	Apply(value string, term uint64, leaderID string) bool
	GetValue() string
	Subscribe() <-chan ValueChange
	Close()
}

func Fingerprint(value string) uint64 {
	return murmur3.Sum64([]byte(value))
}
