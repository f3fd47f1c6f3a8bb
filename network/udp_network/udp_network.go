package udp_network

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/r-moraru/single-value-raft/network"
)

// Network sends each message as one UDP datagram. Node ids are host:port
// addresses; the local id is also the listen address.
type Network struct {
	id   string
	conn *net.UDPConn

	addrsLock sync.Mutex
	addrs     map[string]*net.UDPAddr

	closed    atomic.Bool
	closeOnce sync.Once
	logger    *slog.Logger
}

func New(id string, logger *slog.Logger) (*Network, error) {
	if logger == nil {
		logger = slog.Default()
	}
	localAddr, err := net.ResolveUDPAddr("udp", id)
	if err != nil {
		return nil, fmt.Errorf("resolve listen address %s: %w", id, err)
	}
	conn, err := net.ListenUDP("udp", localAddr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", id, err)
	}
	return &Network{
		id:     id,
		conn:   conn,
		addrs:  make(map[string]*net.UDPAddr),
		logger: logger.With("transport", "udp", "local", id),
	}, nil
}

func (n *Network) GetId() string {
	return n.id
}

func (n *Network) LocalAddr() net.Addr {
	return n.conn.LocalAddr()
}

func (n *Network) resolve(peerId string) (*net.UDPAddr, error) {
	n.addrsLock.Lock()
	defer n.addrsLock.Unlock()
	if addr, ok := n.addrs[peerId]; ok {
		return addr, nil
	}
	addr, err := net.ResolveUDPAddr("udp", peerId)
	if err != nil {
		return nil, err
	}
	n.addrs[peerId] = addr
	return addr, nil
}

func (n *Network) Send(peerId string, msg *network.Message) {
	if n.closed.Load() {
		return
	}
	data, err := network.Marshal(msg)
	if err != nil {
		n.logger.Debug("dropping unencodable message", "peer", peerId, "error", err)
		return
	}
	addr, err := n.resolve(peerId)
	if err != nil {
		n.logger.Debug("cannot resolve peer", "peer", peerId, "error", err)
		return
	}
	if _, err := n.conn.WriteToUDP(data, addr); err != nil {
		n.logger.Debug("send failed", "peer", peerId, "type", msg.Type, "error", err)
	}
}

func (n *Network) Receive(ctx context.Context) (*network.Message, error) {
	if n.closed.Load() {
		return nil, network.ErrTransportClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// A past deadline is the only way to interrupt a blocked read.
	if err := n.clearDeadline(); err != nil {
		return nil, err
	}
	stop := context.AfterFunc(ctx, func() {
		if err := n.conn.SetReadDeadline(time.Now()); err != nil {
			n.logger.Debug("cannot interrupt read", "error", err)
		}
	})
	defer stop()

	buf := make([]byte, network.MaxDatagramSize)
	for {
		size, from, err := n.conn.ReadFromUDP(buf)
		if err != nil {
			if n.closed.Load() || errors.Is(err, net.ErrClosed) {
				return nil, network.ErrTransportClosed
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				// Deadline left over from an earlier, cancelled call. Clearing
				// it may race with this call's own cancellation, so look at
				// ctx again afterwards.
				if err := n.clearDeadline(); err != nil {
					return nil, err
				}
				if ctxErr := ctx.Err(); ctxErr != nil {
					return nil, ctxErr
				}
				continue
			}
			n.logger.Debug("read failed", "error", err)
			continue
		}

		msg, err := network.Unmarshal(buf[:size])
		if err != nil {
			n.logger.Debug("discarding malformed datagram", "from", from, "size", size, "error", err)
			continue
		}
		return msg, nil
	}
}

func (n *Network) clearDeadline() error {
	if err := n.conn.SetReadDeadline(time.Time{}); err != nil {
		if n.closed.Load() || errors.Is(err, net.ErrClosed) {
			return network.ErrTransportClosed
		}
		return fmt.Errorf("clear read deadline: %w", err)
	}
	return nil
}

func (n *Network) Close() error {
	var err error
	n.closeOnce.Do(func() {
		n.closed.Store(true)
		err = n.conn.Close()
	})
	return err
}
