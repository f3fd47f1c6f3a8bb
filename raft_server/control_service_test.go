package raft_server

import (
	"context"
	"fmt"
	"net"
	"testing"

	"github.com/r-moraru/single-value-raft/node"
	node_mocks "github.com/r-moraru/single-value-raft/node/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type ControlServiceTestSuite struct {
	suite.Suite

	node   *node_mocks.Node
	conn   *grpc.ClientConn
	cancel context.CancelFunc
	done   chan error
}

func (s *ControlServiceTestSuite) SetupTest() {
	s.node = node_mocks.NewNode(s.T())
	s.node.EXPECT().GetId().Return("localhost:8000")
	server := New(s.node, nil)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan error, 1)
	go func() {
		s.done <- server.ServeGRPC(ctx, lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
}

func (s *ControlServiceTestSuite) TearDownTest() {
	s.conn.Close()
	s.cancel()
	s.NoError(<-s.done)
}

func (s *ControlServiceTestSuite) TestSubmitValueOnLeader() {
	t := s.T()
	s.node.EXPECT().SubmitValue("x").Return(nil).Once()

	out := new(structpb.Struct)
	err := s.conn.Invoke(context.Background(), ControlSubmitValueMethod, wrapperspb.String("x"), out)

	require.NoError(t, err)
	assert.Equal(t, "replicated", out.GetFields()["replication_status"].GetStringValue())
	assert.Equal(t, "localhost:8000", out.GetFields()["leader_id"].GetStringValue())
	assert.Equal(t, "x", out.GetFields()["result"].GetStringValue())
}

func (s *ControlServiceTestSuite) TestSubmitValueOnFollower() {
	t := s.T()
	s.node.EXPECT().SubmitValue("x").Return(fmt.Errorf("%w", node.ErrNotLeader)).Once()
	s.node.EXPECT().GetCurrentLeaderID().Return("localhost:8002").Once()

	out := new(structpb.Struct)
	err := s.conn.Invoke(context.Background(), ControlSubmitValueMethod, wrapperspb.String("x"), out)

	require.NoError(t, err)
	assert.Equal(t, "not_leader", out.GetFields()["replication_status"].GetStringValue())
	assert.Equal(t, "localhost:8002", out.GetFields()["leader_id"].GetStringValue())
}

func (s *ControlServiceTestSuite) TestSubmitValueOnStoppedNode() {
	t := s.T()
	s.node.EXPECT().SubmitValue("x").Return(node.ErrNodeStopped).Once()

	err := s.conn.Invoke(context.Background(), ControlSubmitValueMethod, wrapperspb.String("x"), new(structpb.Struct))

	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func (s *ControlServiceTestSuite) TestSubmitValueTooLarge() {
	t := s.T()
	s.node.EXPECT().SubmitValue("x").Return(fmt.Errorf("%w: 1 bytes", node.ErrValueTooLarge)).Once()

	err := s.conn.Invoke(context.Background(), ControlSubmitValueMethod, wrapperspb.String("x"), new(structpb.Struct))

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func (s *ControlServiceTestSuite) TestStatus() {
	t := s.T()
	want := node.Status{
		ID:               "localhost:8000",
		Incarnation:      "0b0e0d3c-2c52-4bb4-9bd0-1b3c4a6f5e21",
		State:            node.Follower,
		Term:             1<<53 + 1,
		LeaderID:         "localhost:8001",
		VotedFor:         "localhost:8001",
		Value:            "v",
		ValueFingerprint: 18446744073709551615,
	}
	s.node.EXPECT().Status().Return(want).Once()

	out := new(structpb.Struct)
	err := s.conn.Invoke(context.Background(), ControlStatusMethod, &emptypb.Empty{}, out)
	require.NoError(t, err)

	got, err := StatusFromStruct(out)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestControlServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ControlServiceTestSuite))
}

func TestStatusFromStructRejectsBadFields(t *testing.T) {
	good, err := StatusToStruct(node.Status{ID: "a", State: node.Leader})
	require.NoError(t, err)
	_, err = StatusFromStruct(good)
	require.NoError(t, err)

	badState, err := structpb.NewStruct(map[string]any{"state": "king", "value_fingerprint": "0"})
	require.NoError(t, err)
	_, err = StatusFromStruct(badState)
	assert.Error(t, err)

	badTerm, err := structpb.NewStruct(map[string]any{"state": "leader", "term": 3.0, "value_fingerprint": "0"})
	require.NoError(t, err)
	_, err = StatusFromStruct(badTerm)
	assert.Error(t, err)

	badFingerprint, err := structpb.NewStruct(map[string]any{"state": "leader", "term": "3", "value_fingerprint": "x"})
	require.NoError(t, err)
	_, err = StatusFromStruct(badFingerprint)
	assert.Error(t, err)
}
