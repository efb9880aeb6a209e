// Package websocket pushes live-reload notifications to preview pages over
// WebSocket connections.
package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/conneroisu/shelfpage/internal/logging"
)

const (
	sendBuffer   = 16
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
)

// Hub tracks connected clients and broadcasts messages to them. A single
// goroutine owns registration and fan-out.
type Hub struct {
	clients      map[string]*Client
	clientsMutex sync.RWMutex

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	originPatterns []string
	logger         logging.Logger

	ctx          context.Context
	cancel       context.CancelFunc
	done         chan struct{}
	shutdownOnce sync.Once
}

// NewHub starts a hub. originPatterns are host patterns accepted in
// addition to the request's own host.
func NewHub(originPatterns []string, logger logging.Logger) *Hub {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	ctx, cancel := context.WithCancel(context.Background())

	h := &Hub{
		clients:        make(map[string]*Client),
		broadcast:      make(chan []byte, 64),
		register:       make(chan *Client, 8),
		unregister:     make(chan *Client, 8),
		originPatterns: originPatterns,
		logger:         logger.WithComponent("websocket"),
		ctx:            ctx,
		cancel:         cancel,
		done:           make(chan struct{}),
	}
	go h.run()
	return h
}

// ServeHTTP upgrades the request and streams messages until the client
// leaves or the hub shuts down.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.ctx.Err() != nil {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns:  h.originPatterns,
		CompressionMode: websocket.CompressionDisabled,
	})
	if err != nil {
		h.logger.Warn(r.Context(), err, "WebSocket upgrade rejected", "remote", r.RemoteAddr)
		return
	}

	client := &Client{
		ID:          uuid.NewString(),
		ConnectedAt: time.Now(),
		RemoteAddr:  r.RemoteAddr,
		conn:        conn,
		send:        make(chan []byte, sendBuffer),
	}

	select {
	case h.register <- client:
	case <-h.ctx.Done():
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}
	defer func() {
		select {
		case h.unregister <- client:
		case <-h.ctx.Done():
		}
	}()

	// Browsers never send data; CloseRead handles control frames and ends
	// the context when the peer goes away. It must not follow the hub
	// context, or shutdown would drop the connection before the close frame.
	h.writePump(conn.CloseRead(r.Context()), client)
}

func (h *Hub) writePump(ctx context.Context, client *Client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			client.conn.Close(websocket.StatusGoingAway, "server shutting down")
			return

		case <-ctx.Done():
			client.conn.Close(websocket.StatusNormalClosure, "")
			return

		case msg := <-client.send:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := client.conn.Write(wctx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				h.logger.Debug(ctx, "WebSocket write failed", "client", client.ID, "error", err.Error())
				client.conn.Close(websocket.StatusInternalError, "write failed")
				return
			}

		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := client.conn.Ping(pctx)
			cancel()
			if err != nil {
				client.conn.Close(websocket.StatusPolicyViolation, "ping timeout")
				return
			}
		}
	}
}

func (h *Hub) run() {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.clientsMutex.Lock()
			h.clients[client.ID] = client
			total := len(h.clients)
			h.clientsMutex.Unlock()
			h.logger.Info(h.ctx, "WebSocket client connected", "client", client.ID, "total", total)

		case client := <-h.unregister:
			h.clientsMutex.Lock()
			delete(h.clients, client.ID)
			total := len(h.clients)
			h.clientsMutex.Unlock()
			h.logger.Info(h.ctx, "WebSocket client disconnected", "client", client.ID, "total", total)

		case msg := <-h.broadcast:
			h.fanOut(msg)

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *Hub) fanOut(msg []byte) {
	h.clientsMutex.RLock()
	defer h.clientsMutex.RUnlock()

	for _, client := range h.clients {
		select {
		case client.send <- msg:
		default:
			h.logger.Warn(h.ctx, nil, "WebSocket client too slow, message dropped", "client", client.ID)
		}
	}
}

// Broadcast queues msg for every connected client. It reports false when
// the hub is closed or its queue is full.
func (h *Hub) Broadcast(msg Message) bool {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error(h.ctx, err, "Failed to marshal broadcast message")
		return false
	}

	select {
	case <-h.ctx.Done():
		return false
	default:
	}

	select {
	case h.broadcast <- data:
		return true
	default:
		h.logger.Warn(h.ctx, nil, "Broadcast queue full, message dropped")
		return false
	}
}

// Reload asks every client to reload.
func (h *Hub) Reload() bool {
	return h.Broadcast(Message{Type: MessageTypeReload})
}

// ClientCount returns the number of registered clients.
func (h *Hub) ClientCount() int {
	h.clientsMutex.RLock()
	defer h.clientsMutex.RUnlock()
	return len(h.clients)
}

// Clients returns a snapshot of the registered clients.
func (h *Hub) Clients() []Client {
	h.clientsMutex.RLock()
	defer h.clientsMutex.RUnlock()

	out := make([]Client, 0, len(h.clients))
	for _, c := range h.clients {
		out = append(out, Client{ID: c.ID, ConnectedAt: c.ConnectedAt, RemoteAddr: c.RemoteAddr})
	}
	return out
}

// Shutdown stops the hub and disconnects every client. It waits for the
// hub goroutine or until ctx is done.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.shutdownOnce.Do(h.cancel)

	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
