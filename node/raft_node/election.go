package raft_node

import (
	"time"

	"github.com/r-moraru/single-value-raft/network"
	"github.com/r-moraru/single-value-raft/node"
)

// observeTerm applies the higher-term rule before any message-specific
// handling. Caller holds n.mu.
func (n *Node) observeTerm(term uint64, from string) {
	if term <= n.currentTerm {
		return
	}
	if n.state != node.Follower {
		n.logger.Info("stepping down, observed higher term", "term", term, "previous_term", n.currentTerm, "from", from, "role", n.state)
	}
	n.currentTerm = term
	n.state = node.Follower
	n.votedFor = nil
	n.votes = nil
	n.heartbeatTimer.Stop()
}

// startElection makes the node a candidate for the next term. Caller holds n.mu.
func (n *Node) startElection(now time.Time) []outbound {
	n.state = node.Candidate
	n.currentTerm++
	self := n.id
	n.votedFor = &self
	n.votes = map[string]struct{}{n.id: {}}
	n.electionTimer.Reset(now)

	n.logger.Info("starting election", "term", n.currentTerm, "election_timeout", n.electionTimer.Timeout())

	if n.hasMajority() {
		return n.becomeLeader(now)
	}
	return []outbound{{msg: network.NewRequestVote(n.currentTerm, n.id)}}
}

// hasMajority reports whether the votes form a strict majority of the whole
// cluster (peers plus self). Caller holds n.mu.
func (n *Node) hasMajority() bool {
	return 2*len(n.votes) > len(n.peers)+1
}

func (n *Node) becomeLeader(now time.Time) []outbound {
	n.state = node.Leader
	n.currentLeaderID = n.id
	n.logger.Info("elected leader", "term", n.currentTerm, "votes", len(n.votes))
	n.votes = nil
	n.heartbeatTimer.Start(now)
	return n.heartbeat(now)
}

// handleRequestVote grants at most one vote per term. Rejections are silent.
func (n *Node) handleRequestVote(msg *network.Message) []outbound {
	if msg.CandidateId == "" {
		n.logger.Debug("ignoring vote request without candidate", "term", msg.Term)
		return nil
	}
	if msg.Term < n.currentTerm {
		n.logger.Debug("rejecting vote request from stale term", "candidate", msg.CandidateId, "term", msg.Term, "current_term", n.currentTerm)
		return nil
	}
	if n.votedFor != nil && *n.votedFor != msg.CandidateId {
		n.logger.Debug("rejecting vote request, already voted", "candidate", msg.CandidateId, "voted_for", *n.votedFor, "term", n.currentTerm)
		return nil
	}

	candidate := msg.CandidateId
	n.votedFor = &candidate
	n.logger.Info("granting vote", "candidate", candidate, "term", n.currentTerm)
	return []outbound{{
		peerId: candidate,
		msg:    network.NewVoteResponse(n.currentTerm, n.id, true),
	}}
}

// handleVoteResponse counts each peer's grant once, and only for the term the
// node is campaigning in.
func (n *Node) handleVoteResponse(msg *network.Message, now time.Time) []outbound {
	if n.state != node.Candidate || !msg.Granted || msg.Term != n.currentTerm {
		return nil
	}
	if _, ok := n.peerSet[msg.From]; !ok {
		n.logger.Debug("ignoring vote from unknown node", "from", msg.From)
		return nil
	}

	n.votes[msg.From] = struct{}{}
	if n.hasMajority() {
		return n.becomeLeader(now)
	}
	return nil
}
