package raft_node

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/r-moraru/single-value-raft/network"
	network_mocks "github.com/r-moraru/single-value-raft/network/mocks"
	"github.com/r-moraru/single-value-raft/node"
	"github.com/r-moraru/single-value-raft/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testTiming() node.TimingConfig {
	return node.TimingConfig{
		ElectionTimeoutBase: 2 * time.Second,
		ElectionJitter:      time.Second,
		HeartbeatInterval:   time.Second,
		TickInterval:        100 * time.Millisecond,
	}
}

func TestConstructor(t *testing.T) {
	network := network_mocks.NewNetwork(t)
	network.EXPECT().GetId().Return("n1")

	raftNode, err := New(node.Config{
		ID:     "n1",
		Peers:  []string{"n2", "n3"},
		Timing: testTiming(),
		Clock:  timer.NewManualClock(epoch),
	}, network)

	require.NoError(t, err, "Valid constructor call should not return error.")
	assert.Equal(t, node.Follower, raftNode.GetState())
	assert.Equal(t, uint64(0), raftNode.GetCurrentTerm())
	assert.Equal(t, "", raftNode.GetCurrentLeaderID())
	assert.Equal(t, "", raftNode.GetValue())
	_, voted := raftNode.GetVotedFor()
	assert.False(t, voted)
	assert.NotEmpty(t, raftNode.Incarnation().String())

	status := raftNode.Status()
	assert.Equal(t, "n1", status.ID)
	assert.Equal(t, raftNode.Incarnation().String(), status.Incarnation)
	assert.Equal(t, node.Follower, status.State)
}

func TestConstructorAppliesDefaultTiming(t *testing.T) {
	network := network_mocks.NewNetwork(t)
	network.EXPECT().GetId().Return("n1")

	raftNode, err := New(node.Config{ID: "n1", Peers: []string{"n2"}}, network)

	require.NoError(t, err)
	assert.Equal(t, node.DefaultTimingConfig(), raftNode.timing)
	assert.GreaterOrEqual(t, raftNode.electionTimer.Timeout(), 2*time.Second)
	assert.LessOrEqual(t, raftNode.electionTimer.Timeout(), 3*time.Second)
}

func TestConstructorRejectsInvalidConfig(t *testing.T) {
	network := network_mocks.NewNetwork(t)

	_, err := New(node.Config{ID: "n1", Peers: []string{"n1", "n2"}, Timing: testTiming()}, network)

	assert.ErrorIs(t, err, node.ErrInvalidConfig)
}

func TestConstructorRejectsMismatchedTransport(t *testing.T) {
	network := network_mocks.NewNetwork(t)
	network.EXPECT().GetId().Return("localhost:9999")

	_, err := New(node.Config{ID: "localhost:8000", Timing: testTiming()}, network)

	assert.ErrorIs(t, err, node.ErrInvalidConfig)
}

func TestStartAndShutdown(t *testing.T) {
	mockNetwork := network_mocks.NewNetwork(t)
	mockNetwork.EXPECT().GetId().Return("n1")
	mockNetwork.EXPECT().Receive(mock.Anything).RunAndReturn(func(ctx context.Context) (*network.Message, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	mockNetwork.EXPECT().Close().Return(nil).Once()

	raftNode, err := New(node.Config{
		ID:     "n1",
		Peers:  []string{"n2", "n3"},
		Timing: testTiming(),
		Clock:  timer.NewManualClock(epoch),
		Rand:   rand.New(rand.NewSource(1)),
	}, mockNetwork)
	require.NoError(t, err)
	sub := raftNode.Subscribe()

	require.NoError(t, raftNode.Start(context.Background()))
	require.NoError(t, raftNode.Start(context.Background()))

	done := make(chan struct{})
	go func() {
		raftNode.Shutdown()
		raftNode.Shutdown()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not return")
	}

	_, open := <-sub
	assert.False(t, open, "subscriptions end on shutdown")
	assert.ErrorIs(t, raftNode.Start(context.Background()), node.ErrNodeStopped)
	assert.ErrorIs(t, raftNode.SubmitValue("x"), node.ErrNodeStopped)
}

func TestShutdownWithoutStart(t *testing.T) {
	network := network_mocks.NewNetwork(t)
	network.EXPECT().GetId().Return("n1")
	network.EXPECT().Close().Return(nil).Once()

	raftNode, err := New(node.Config{ID: "n1", Timing: testTiming()}, network)
	require.NoError(t, err)

	raftNode.Shutdown()
	raftNode.Shutdown()
}
