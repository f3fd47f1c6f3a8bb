package raft_node

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/r-moraru/single-value-raft/network"
	"github.com/r-moraru/single-value-raft/node"
	"github.com/r-moraru/single-value-raft/state_machine"
	"github.com/r-moraru/single-value-raft/timer"
)

var _ node.Node = (*Node)(nil)

// outbound is a message queued while the state lock is held and sent after it
// is released. An empty peerId means broadcast.
type outbound struct {
	peerId string
	msg    *network.Message
}

type Node struct {
	id          string
	peers       []string
	peerSet     map[string]struct{}
	timing      node.TimingConfig
	incarnation uuid.UUID

	network      network.Network
	stateMachine state_machine.StateMachine
	clock        timer.Clock
	logger       *slog.Logger

	// Everything below is guarded by mu.
	mu              sync.Mutex
	state           node.State
	currentTerm     uint64
	votedFor        *string
	currentLeaderID string
	votes           map[string]struct{}
	electionTimer   *timer.ElectionTimer
	heartbeatTimer  *timer.HeartbeatTimer
	stopped         bool

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

func New(cfg node.Config, net network.Network) (*Node, error) {
	if cfg.Timing == (node.TimingConfig{}) {
		cfg.Timing = node.DefaultTimingConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if net.GetId() != cfg.ID {
		return nil, fmt.Errorf("%w: transport id %s does not match node id %s", node.ErrInvalidConfig, net.GetId(), cfg.ID)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = timer.SystemClock{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	incarnation := uuid.New()
	logger = logger.With("node", cfg.ID, "incarnation", incarnation.String())

	peers := make([]string, len(cfg.Peers))
	copy(peers, cfg.Peers)
	peerSet := make(map[string]struct{}, len(peers))
	for _, peerId := range peers {
		peerSet[peerId] = struct{}{}
	}

	return &Node{
		id:             cfg.ID,
		peers:          peers,
		peerSet:        peerSet,
		timing:         cfg.Timing,
		incarnation:    incarnation,
		network:        net,
		stateMachine:   state_machine.NewValueStore(logger),
		clock:          clock,
		logger:         logger,
		state:          node.Follower,
		electionTimer:  timer.NewElectionTimer(cfg.Timing.ElectionTimeoutBase, cfg.Timing.ElectionJitter, cfg.Rand, clock.Now()),
		heartbeatTimer: timer.NewHeartbeatTimer(cfg.Timing.HeartbeatInterval),
	}, nil
}

// StartNode builds a node and starts its background loops.
func StartNode(ctx context.Context, cfg node.Config, net network.Network) (*Node, error) {
	n, err := New(cfg, net)
	if err != nil {
		return nil, err
	}
	if err := n.Start(ctx); err != nil {
		return nil, err
	}
	return n, nil
}

// Start launches the tick loop and the receive loop. Calling it more than
// once has no effect.
func (n *Node) Start(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stopped {
		return node.ErrNodeStopped
	}

	n.startOnce.Do(func() {
		runCtx, cancel := context.WithCancel(ctx)
		n.cancel = cancel
		n.wg.Add(2)
		go n.run(runCtx)
		go n.receive(runCtx)
		n.logger.Info("node started", "peers", n.peers, "election_timeout", n.electionTimer.Timeout())
	})
	return nil
}

// Shutdown stops both loops, closes the transport and ends value
// subscriptions. It is safe to call more than once.
func (n *Node) Shutdown() {
	n.stopOnce.Do(func() {
		n.mu.Lock()
		n.stopped = true
		n.heartbeatTimer.Stop()
		cancel := n.cancel
		n.mu.Unlock()

		if cancel != nil {
			cancel()
		}
		if err := n.network.Close(); err != nil {
			n.logger.Debug("closing transport", "error", err)
		}
		n.wg.Wait()
		n.stateMachine.Close()
		n.logger.Info("node stopped")
	})
}

func (n *Node) run(ctx context.Context) {
	defer n.wg.Done()
	ticker := time.NewTicker(n.timing.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.tick()
		}
	}
}

func (n *Node) receive(ctx context.Context) {
	defer n.wg.Done()
	for {
		msg, err := n.network.Receive(ctx)
		if err != nil {
			if errors.Is(err, network.ErrTransportClosed) || ctx.Err() != nil {
				return
			}
			n.logger.Debug("receive failed", "error", err)
			continue
		}
		n.handleMessage(msg)
	}
}

// tick fires whichever timer belongs to the current role.
func (n *Node) tick() {
	now := n.clock.Now()

	n.mu.Lock()
	var out []outbound
	if !n.stopped {
		switch n.state {
		case node.Follower, node.Candidate:
			if n.electionTimer.Expired(now) {
				out = n.startElection(now)
			}
		case node.Leader:
			if n.heartbeatTimer.Due(now) {
				out = n.heartbeat(now)
			}
		}
	}
	n.mu.Unlock()

	n.send(out)
}

func (n *Node) handleMessage(msg *network.Message) {
	now := n.clock.Now()

	n.mu.Lock()
	if n.stopped {
		n.mu.Unlock()
		return
	}
	n.observeTerm(msg.Term, msg.From)

	var out []outbound
	switch msg.Type {
	case network.RequestVote:
		out = n.handleRequestVote(msg)
	case network.VoteResponse:
		out = n.handleVoteResponse(msg, now)
	case network.AppendEntries:
		n.handleAppendEntries(msg, now)
	default:
		n.logger.Debug("ignoring message of unknown type", "type", msg.Type)
	}
	n.mu.Unlock()

	n.send(out)
}

func (n *Node) send(out []outbound) {
	for _, o := range out {
		if o.peerId == "" {
			network.Broadcast(n.network, n.peers, o.msg)
			continue
		}
		n.network.Send(o.peerId, o.msg)
	}
}

func (n *Node) GetId() string {
	return n.id
}

func (n *Node) Incarnation() uuid.UUID {
	return n.incarnation
}

func (n *Node) GetState() node.State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

func (n *Node) GetCurrentTerm() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.currentTerm
}

func (n *Node) GetCurrentLeaderID() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.currentLeaderID
}

// GetVotedFor reports the candidate voted for in the current term, if any.
func (n *Node) GetVotedFor() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.votedFor == nil {
		return "", false
	}
	return *n.votedFor, true
}

func (n *Node) GetValue() string {
	return n.stateMachine.GetValue()
}

func (n *Node) Subscribe() <-chan state_machine.ValueChange {
	return n.stateMachine.Subscribe()
}

func (n *Node) Status() node.Status {
	n.mu.Lock()
	defer n.mu.Unlock()
	value := n.stateMachine.GetValue()
	status := node.Status{
		ID:               n.id,
		Incarnation:      n.incarnation.String(),
		State:            n.state,
		Term:             n.currentTerm,
		LeaderID:         n.currentLeaderID,
		Value:            value,
		ValueFingerprint: state_machine.Fingerprint(value),
	}
	if n.votedFor != nil {
		status.VotedFor = *n.votedFor
	}
	return status
}
