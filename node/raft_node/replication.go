package raft_node

import (
	"fmt"
	"math"
	"time"

	"github.com/r-moraru/single-value-raft/network"
	"github.com/r-moraru/single-value-raft/node"
)

// heartbeat broadcasts the current value. Caller holds n.mu.
func (n *Node) heartbeat(now time.Time) []outbound {
	n.heartbeatTimer.Fired(now)
	return []outbound{{
		msg: network.NewAppendEntries(n.currentTerm, n.id, n.stateMachine.GetValue()),
	}}
}

// handleAppendEntries accepts heartbeats from the current or a newer term.
// Caller holds n.mu.
func (n *Node) handleAppendEntries(msg *network.Message, now time.Time) {
	if msg.Term < n.currentTerm {
		if n.timing.ResetOnStaleHeartbeat {
			n.electionTimer.Reset(now)
		}
		n.logger.Debug("ignoring heartbeat from stale term", "leader", msg.LeaderId, "term", msg.Term, "current_term", n.currentTerm)
		return
	}

	n.electionTimer.Reset(now)
	if n.state != node.Follower {
		n.logger.Info("stepping down, heartbeat from leader", "leader", msg.LeaderId, "term", msg.Term, "role", n.state)
	}
	n.state = node.Follower
	n.votes = nil
	n.heartbeatTimer.Stop()
	n.currentLeaderID = msg.LeaderId

	if n.stateMachine.Apply(msg.Value, msg.Term, msg.LeaderId) {
		n.logger.Info("updated value", "value", msg.Value, "leader", msg.LeaderId, "term", msg.Term)
	}
}

// SubmitValue sets the value on the leader and pushes it to the followers
// right away instead of waiting for the next heartbeat.
func (n *Node) SubmitValue(value string) error {
	now := n.clock.Now()

	n.mu.Lock()
	if n.stopped {
		n.mu.Unlock()
		return node.ErrNodeStopped
	}
	if n.state != node.Leader {
		leaderID := n.currentLeaderID
		n.mu.Unlock()
		return fmt.Errorf("%w: current leader is %q", node.ErrNotLeader, leaderID)
	}
	// A value that cannot be encoded would silence every later heartbeat. The
	// largest term is used so the value still fits once the term grows.
	if _, err := network.Marshal(network.NewAppendEntries(math.MaxUint64, n.id, value)); err != nil {
		n.mu.Unlock()
		return fmt.Errorf("%w: %d bytes: %w", node.ErrValueTooLarge, len(value), err)
	}
	if n.stateMachine.Apply(value, n.currentTerm, n.id) {
		n.logger.Info("leader setting value", "value", value, "term", n.currentTerm)
	}
	out := n.heartbeat(now)
	n.mu.Unlock()

	n.send(out)
	return nil
}
