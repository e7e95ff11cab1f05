package notifications

import (
	"context"
	"errors"
	"sync"

	"forumapi/internal/observability"

	"github.com/gofiber/websocket/v2"
)

const (
	// Max live connections watching one thread
	maxConnsPerThread = 500
	// Max total connections
	maxTotalConns = 10000
)

var (
	ErrServerFull = errors.New("server connection limit reached")
	ErrThreadFull = errors.New("thread connection limit reached")
	ErrHubClosed  = errors.New("hub is shutting down")
)

// ThreadHub maps threadID -> websocket clients watching that thread.
type ThreadHub struct {
	mu         sync.RWMutex
	conns      map[string]map[*Client]struct{}
	totalConns int
	closed     bool
}

func NewThreadHub() *ThreadHub {
	return &ThreadHub{conns: make(map[string]map[*Client]struct{})}
}

// Register adds a connection watching threadID. Returns the Client or an error if limits are exceeded.
func (h *ThreadHub) Register(threadID, userID string, conn *websocket.Conn) (*Client, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}
	if h.totalConns >= maxTotalConns {
		return nil, ErrServerFull
	}

	m, ok := h.conns[threadID]
	if !ok {
		m = make(map[*Client]struct{})
		h.conns[threadID] = m
	}
	if len(m) >= maxConnsPerThread {
		return nil, ErrThreadFull
	}

	client := NewClient(h, conn, threadID, userID)
	m[client] = struct{}{}
	h.totalConns++
	observability.LiveConnections.Inc()
	return client, nil
}

// UnregisterClient removes the client and closes its send channel. Safe to call twice.
func (h *ThreadHub) UnregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	m, ok := h.conns[client.ThreadID]
	if !ok {
		return
	}
	if _, exists := m[client]; !exists {
		return
	}
	delete(m, client)
	close(client.Send)
	h.totalConns--
	observability.LiveConnections.Dec()
	if len(m) == 0 {
		delete(h.conns, client.ThreadID)
	}
}

// Broadcast sends message to every client watching threadID.
func (h *ThreadHub) Broadcast(threadID, message string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if clients, ok := h.conns[threadID]; ok {
		data := []byte(message)
		for c := range clients {
			c.TrySend(data)
		}
	}
}

// Watchers returns the number of clients watching threadID.
func (h *ThreadHub) Watchers(threadID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[threadID])
}

// StartWiring forwards every thread event published through n to the local watchers.
func (h *ThreadHub) StartWiring(ctx context.Context, n *Notifier) error {
	return n.StartThreadSubscriber(ctx, h.Broadcast)
}

// Shutdown closes every client's send channel. Each WritePump then sends a
// close frame and closes its connection.
func (h *ThreadHub) Shutdown(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true

	for _, clients := range h.conns {
		for client := range clients {
			close(client.Send)
			observability.LiveConnections.Dec()
		}
	}
	h.conns = make(map[string]map[*Client]struct{})
	h.totalConns = 0
	return nil
}
