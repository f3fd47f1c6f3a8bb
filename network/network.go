package network

import (
	"context"
	"errors"
)

var (
	ErrTransportClosed  = errors.New("network: transport closed")
	ErrMalformedMessage = errors.New("network: malformed message")
	ErrMessageTooLarge  = errors.New("network: message exceeds datagram size")
)

// Network is a best-effort datagram transport between nodes.
type Network interface {
	GetId() string
	// Send never reports failure. Lost messages are recovered by the next
	// election or heartbeat.
	Send(peerId string, msg *Message)
	// Receive blocks until a well-formed message arrives, ctx is done or the
	// transport is closed. Malformed payloads are dropped.
	Receive(ctx context.Context) (*Message, error)
	Close() error
}

func Broadcast(n Network, peers []string, msg *Message) {
	for _, peerId := range peers {
		if peerId == n.GetId() {
			continue
		}
		n.Send(peerId, msg)
	}
}
