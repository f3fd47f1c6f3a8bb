package node

import "errors"

var (
	// ErrNotLeader is returned when a value is submitted to a non-leader node.
	ErrNotLeader = errors.New("raft: not the leader")

	// ErrNodeStopped is returned when an operation is attempted on a stopped node.
	ErrNodeStopped = errors.New("raft: node stopped")

	// ErrValueTooLarge is returned when a value does not fit in one heartbeat
	// datagram.
	ErrValueTooLarge = errors.New("raft: value too large")

	// ErrInvalidConfig is returned when the node configuration is invalid.
	ErrInvalidConfig = errors.New("raft: invalid configuration")
)
