package udp_network

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/r-moraru/single-value-raft/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var _ network.Network = (*Network)(nil)

func getFreeAddr(t *testing.T) string {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer conn.Close()
	return conn.LocalAddr().String()
}

type UdpNetworkTestSuite struct {
	suite.Suite

	a *Network
	b *Network
}

func (s *UdpNetworkTestSuite) SetupTest() {
	var err error
	s.a, err = New(getFreeAddr(s.T()), nil)
	s.Require().NoError(err)
	s.b, err = New(getFreeAddr(s.T()), nil)
	s.Require().NoError(err)
}

func (s *UdpNetworkTestSuite) TearDownTest() {
	s.a.Close()
	s.b.Close()
}

func (s *UdpNetworkTestSuite) receive(n *Network) (*network.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return n.Receive(ctx)
}

func (s *UdpNetworkTestSuite) TestSendAndReceive() {
	t := s.T()

	sent := network.NewAppendEntries(4, s.a.GetId(), "hello")
	s.a.Send(s.b.GetId(), sent)

	msg, err := s.receive(s.b)
	require.NoError(t, err)
	assert.Equal(t, sent, msg)
}

func (s *UdpNetworkTestSuite) TestMalformedDatagramIsSkipped() {
	t := s.T()

	raw, err := net.DialUDP("udp", nil, s.b.LocalAddr().(*net.UDPAddr))
	require.NoError(t, err)
	defer raw.Close()
	_, err = raw.Write([]byte(`{"type": "request_vote"}`))
	require.NoError(t, err)

	s.a.Send(s.b.GetId(), network.NewVoteResponse(2, s.a.GetId(), true))

	msg, err := s.receive(s.b)
	require.NoError(t, err)
	assert.Equal(t, network.VoteResponse, msg.Type)
	assert.True(t, msg.Granted)
}

func (s *UdpNetworkTestSuite) TestSendToUnreachablePeerDoesNotPanic() {
	assert.NotPanics(s.T(), func() {
		s.a.Send("not a valid address", network.NewRequestVote(1, s.a.GetId()))
		s.a.Send(getFreeAddr(s.T()), network.NewRequestVote(1, s.a.GetId()))
	})
}

func (s *UdpNetworkTestSuite) TestReceiveHonoursContext() {
	t := s.T()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := s.a.Receive(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The forced deadline must not leak into the next call.
	s.b.Send(s.a.GetId(), network.NewRequestVote(3, s.b.GetId()))
	msg, err := s.receive(s.a)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), msg.Term)
}

func (s *UdpNetworkTestSuite) TestRepeatedCancellationAlwaysUnblocksReceive() {
	t := s.T()

	// Each round leaves a past deadline behind for the next call to clear.
	for i := range 20 {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(i%3+1)*time.Millisecond)
		errCh := make(chan error, 1)
		go func() {
			_, err := s.a.Receive(ctx)
			errCh <- err
		}()

		select {
		case err := <-errCh:
			assert.ErrorIs(t, err, context.DeadlineExceeded, "round %d", i)
		case <-time.After(2 * time.Second):
			cancel()
			t.Fatalf("receive ignored cancellation in round %d", i)
		}
		cancel()
	}

	s.b.Send(s.a.GetId(), network.NewRequestVote(9, s.b.GetId()))
	msg, err := s.receive(s.a)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), msg.Term)
}

func (s *UdpNetworkTestSuite) TestReceiveAfterCloseReturnsTransportClosed() {
	require.NoError(s.T(), s.a.Close())

	_, err := s.receive(s.a)
	assert.ErrorIs(s.T(), err, network.ErrTransportClosed)
}

func (s *UdpNetworkTestSuite) TestCloseUnblocksReceive() {
	t := s.T()

	errCh := make(chan error, 1)
	go func() {
		_, err := s.a.Receive(context.Background())
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, s.a.Close())
	assert.NoError(t, s.a.Close())

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, network.ErrTransportClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("receive did not return after close")
	}

	assert.NotPanics(t, func() {
		s.a.Send(s.b.GetId(), network.NewRequestVote(1, s.a.GetId()))
	})
}

func TestNewRejectsBadAddress(t *testing.T) {
	_, err := New("definitely:not:an:address", nil)
	assert.Error(t, err)
}

func TestUdpNetworkTestSuite(t *testing.T) {
	suite.Run(t, new(UdpNetworkTestSuite))
}
