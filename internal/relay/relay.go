// Package relay broadcasts decoded ring replies to WebSocket subscribers
// as JSON, for callers that want to watch a live feed (a dashboard, a
// second process) without linking against internal/protocol directly.
package relay

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/ringctl/colmi/internal/logging"
	"github.com/ringctl/colmi/internal/protocol"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Relay is meant for same-host or trusted-network tooling; callers
	// that expose it beyond that should wrap the handler with their own
	// origin check.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans out CommandReply events to every currently-connected
// WebSocket subscriber.
type Hub struct {
	mu   sync.Mutex
	subs map[*websocket.Conn]chan []byte
}

// NewHub constructs an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[*websocket.Conn]chan []byte)}
}

// ServeHTTP upgrades the request to a WebSocket and registers the
// connection as a subscriber until a write to it fails, which is how a
// closed connection is noticed.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("relay upgrade failed", zap.Error(err))
		return
	}

	out := make(chan []byte, 32)
	h.mu.Lock()
	h.subs[conn] = out
	h.mu.Unlock()

	logging.LogConnection(conn.RemoteAddr().String(), "relay_subscribed")

	defer func() {
		h.mu.Lock()
		delete(h.subs, conn)
		h.mu.Unlock()
		_ = conn.Close()
		logging.LogConnection(conn.RemoteAddr().String(), "relay_unsubscribed")
	}()

	// Drain and discard whatever the subscriber sends; this is a
	// publish-only feed, but we must keep reading to notice the
	// connection closing.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				_ = conn.Close()
				return
			}
		}
	}()

	for payload := range out {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

// Publish broadcasts one decoded reply to every connected subscriber.
// A subscriber whose outbound buffer is full misses this reply rather
// than blocking the publisher; it stays subscribed.
func (h *Hub) Publish(reply protocol.CommandReply) {
	data, err := protocol.MarshalReplyJSON(reply)
	if err != nil {
		logging.Error("relay: failed to marshal reply", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, out := range h.subs {
		select {
		case out <- data:
		default:
			logging.Warn("relay: subscriber buffer full, dropping", zap.String("remote_addr", conn.RemoteAddr().String()))
		}
	}
}

// Run consumes a protocol.Stream's Replies channel and publishes every
// successfully decoded reply until ctx is cancelled or the channel
// closes. Errors are logged, not published.
func (h *Hub) Run(ctx context.Context, replies <-chan protocol.Result) {
	for {
		select {
		case <-ctx.Done():
			return
		case result, ok := <-replies:
			if !ok {
				return
			}
			if result.Err != nil {
				logging.Warn("relay: dropping frame with decode error", zap.Error(result.Err))
				continue
			}
			h.Publish(result.Reply)
		}
	}
}
