// Package mem_network is an in-process transport. Every message goes through
// the wire codec so that behaviour matches the UDP transport. Links can be
// blocked to simulate loss and partitions.
package mem_network

import (
	"context"
	"log/slog"
	"sync"

	"github.com/r-moraru/single-value-raft/network"
)

const inboxSize = 256

type link struct {
	from string
	to   string
}

type Hub struct {
	mu        sync.RWMutex
	endpoints map[string]*Endpoint
	blocked   map[link]struct{}
	isolated  map[string]struct{}

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		endpoints: make(map[string]*Endpoint),
		blocked:   make(map[link]struct{}),
		isolated:  make(map[string]struct{}),
		logger:    logger,
	}
}

// Join attaches a new endpoint for id, replacing any previous one.
func (h *Hub) Join(id string) *Endpoint {
	e := &Endpoint{
		hub:    h,
		id:     id,
		inbox:  make(chan []byte, inboxSize),
		done:   make(chan struct{}),
		logger: h.logger.With("endpoint", id),
	}
	h.mu.Lock()
	h.endpoints[id] = e
	h.mu.Unlock()
	return e
}

// Block drops every message sent from -> to until Unblock.
func (h *Hub) Block(from, to string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.blocked[link{from, to}] = struct{}{}
}

func (h *Hub) Unblock(from, to string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.blocked, link{from, to})
}

// Isolate cuts id off from everybody in both directions.
func (h *Hub) Isolate(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.isolated[id] = struct{}{}
}

func (h *Hub) Heal(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.isolated, id)
}

// InjectRaw delivers an arbitrary payload to id, bypassing the codec.
func (h *Hub) InjectRaw(to string, data []byte) bool {
	h.mu.RLock()
	target := h.endpoints[to]
	h.mu.RUnlock()
	if target == nil {
		return false
	}
	return target.push(data)
}

func (h *Hub) deliver(from, to string, data []byte) bool {
	h.mu.RLock()
	_, linkBlocked := h.blocked[link{from, to}]
	_, fromIsolated := h.isolated[from]
	_, toIsolated := h.isolated[to]
	target := h.endpoints[to]
	h.mu.RUnlock()

	if linkBlocked || fromIsolated || toIsolated || target == nil {
		return false
	}
	return target.push(data)
}

type Endpoint struct {
	hub       *Hub
	id        string
	inbox     chan []byte
	done      chan struct{}
	closeOnce sync.Once

	logger *slog.Logger
}

func (e *Endpoint) GetId() string {
	return e.id
}

func (e *Endpoint) Send(peerId string, msg *network.Message) {
	select {
	case <-e.done:
		return
	default:
	}

	data, err := network.Marshal(msg)
	if err != nil {
		e.logger.Debug("dropping unencodable message", "peer", peerId, "error", err)
		return
	}
	if !e.hub.deliver(e.id, peerId, data) {
		e.logger.Debug("message dropped", "peer", peerId, "type", msg.Type)
	}
}

func (e *Endpoint) push(data []byte) bool {
	select {
	case <-e.done:
		return false
	default:
	}
	select {
	case e.inbox <- data:
		return true
	default:
		return false
	}
}

func (e *Endpoint) Receive(ctx context.Context) (*network.Message, error) {
	for {
		select {
		case <-e.done:
			return nil, network.ErrTransportClosed
		default:
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-e.done:
			return nil, network.ErrTransportClosed
		case data := <-e.inbox:
			msg, err := network.Unmarshal(data)
			if err != nil {
				e.logger.Debug("discarding malformed datagram", "error", err)
				continue
			}
			return msg, nil
		}
	}
}

// TryReceive returns the next queued message without blocking.
func (e *Endpoint) TryReceive() (*network.Message, bool) {
	for {
		select {
		case data := <-e.inbox:
			msg, err := network.Unmarshal(data)
			if err != nil {
				e.logger.Debug("discarding malformed datagram", "error", err)
				continue
			}
			return msg, true
		default:
			return nil, false
		}
	}
}

func (e *Endpoint) Pending() int {
	return len(e.inbox)
}

func (e *Endpoint) Close() error {
	e.closeOnce.Do(func() {
		close(e.done)
	})
	return nil
}
