package node

import (
	"fmt"

	"github.com/r-moraru/single-value-raft/state_machine"
)

type State uint64

const (
	Follower State = iota
	Candidate
	Leader
)

func (s State) String() string {
	switch s {
	case Follower:
		return "follower"
	case Candidate:
		return "candidate"
	case Leader:
		return "leader"
	default:
		return fmt.Sprintf("unknown(%d)", uint64(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "follower":
		*s = Follower
	case "candidate":
		*s = Candidate
	case "leader":
		*s = Leader
	default:
		return fmt.Errorf("node: unknown state %q", text)
	}
	return nil
}

type ReplicationStatus uint64

const (
	NotLeader ReplicationStatus = iota
	// Replicated means the leader stored the value and broadcast it. Delivery
	// to followers is best effort.
	Replicated
)

func (r ReplicationStatus) String() string {
	switch r {
	case NotLeader:
		return "not_leader"
	case Replicated:
		return "replicated"
	default:
		return fmt.Sprintf("unknown(%d)", uint64(r))
	}
}

func (r ReplicationStatus) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *ReplicationStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "not_leader":
		*r = NotLeader
	case "replicated":
		*r = Replicated
	default:
		return fmt.Errorf("node: unknown replication status %q", text)
	}
	return nil
}

type ReplicationResponse struct {
	ReplicationStatus ReplicationStatus `json:"replication_status"`
	LeaderID          string            `json:"leader_id"`
	Result            string            `json:"result"`
}

// Status is a consistent snapshot of a node's observable state.
type Status struct {
	ID               string `json:"id"`
	Incarnation      string `json:"incarnation"`
	State            State  `json:"state"`
	Term             uint64 `json:"term"`
	LeaderID         string `json:"leader_id"`
	VotedFor         string `json:"voted_for"`
	Value            string `json:"value"`
	ValueFingerprint uint64 `json:"value_fingerprint"`
}

type Node interface {
	GetId() string
	GetState() State
	GetCurrentTerm() uint64
	GetCurrentLeaderID() string
	GetValue() string
	Status() Status

	// SubmitValue replaces the replicated value. Only the leader accepts it;
	// other nodes return ErrNotLeader and callers should consult
	// GetCurrentLeaderID.
	SubmitValue(value string) error
	Subscribe() <-chan state_machine.ValueChange

	Shutdown()
}
