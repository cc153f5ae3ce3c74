// Package transport realizes the bidirectional event transport spec.md
// names as an external collaborator, using gorilla/websocket. It is the
// one package in this repo that imports gorilla/websocket directly; the
// Session Router only sees the narrow Transport interface so it can be
// tested against a fake.
package transport

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ConnID identifies a single live connection. Per spec.md, a connection's
// id doubles as its User's UserId once it joins a room.
type ConnID string

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 20 // 1 MiB, generous for a stroke batch
	sendBufferSize = 32
)

// InboundHandler receives a decoded event name plus the raw JSON message
// it came from (so the specific action handler can unmarshal its own
// payload shape out of it) and the originating connection's identity.
type InboundHandler func(conn ConnID, event string, raw json.RawMessage)

// DisconnectHandler is invoked once a connection's read pump exits, for
// any reason (clean close, error, or server-side forced close).
type DisconnectHandler func(conn ConnID)

// Hub upgrades HTTP connections to WebSocket, tracks live clients, and
// implements Transport. Grounded on the teacher's
// internal/websocket/server.go (upgrader + client registry) and
// bribe/websocket/client.go (per-client read loop dispatch), with the
// JWT/Redis session-restoration machinery removed since this system has
// no authentication and no reconnection-with-identity.
type Hub struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader

	onInbound    InboundHandler
	onDisconnect DisconnectHandler

	mu      sync.RWMutex
	clients map[ConnID]*client
}

// NewHub builds a Hub that only accepts upgrade requests whose Origin
// header matches allowedOrigin (or accepts any origin when allowedOrigin
// is empty/"*", useful for local development).
func NewHub(logger *zap.Logger, allowedOrigin string) *Hub {
	h := &Hub{
		logger:  logger,
		clients: make(map[ConnID]*client),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" || allowedOrigin == "*" {
				return true
			}
			return r.Header.Get("Origin") == allowedOrigin
		},
	}
	return h
}

// SetInboundHandler registers the callback invoked for every decoded
// inbound message. Must be called before ServeWS starts accepting
// connections.
func (h *Hub) SetInboundHandler(fn InboundHandler) { h.onInbound = fn }

// SetDisconnectHandler registers the callback invoked when a connection
// drops.
func (h *Hub) SetDisconnectHandler(fn DisconnectHandler) { h.onDisconnect = fn }

// ServeWS upgrades r into a WebSocket connection and starts its read and
// write pumps. It mints a fresh ConnID for the new connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	id := ConnID(uuid.New().String())
	c := &client{id: id, conn: conn, send: make(chan []byte, sendBufferSize)}

	h.mu.Lock()
	h.clients[id] = c
	h.mu.Unlock()

	h.logger.Info("client connected", zap.String("connId", string(id)))

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) readPump(c *client) {
	defer h.removeClient(c)

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Info("websocket closed unexpectedly", zap.Error(err), zap.String("connId", string(c.id)))
			}
			return
		}

		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(data, &head); err != nil {
			h.logger.Warn("dropping malformed inbound message", zap.Error(err), zap.String("connId", string(c.id)))
			continue
		}
		if h.onInbound != nil {
			h.onInbound(c.id, head.Type, json.RawMessage(data))
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) removeClient(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		close(c.send)
	}
	h.mu.Unlock()

	h.logger.Info("client disconnected", zap.String("connId", string(c.id)))
	if h.onDisconnect != nil {
		h.onDisconnect(c.id)
	}
}

// EmitToOne implements Transport: it sends event+payload to a single
// connection, best-effort, dropping the message with a logged warning if
// the connection's outbound buffer is full rather than blocking the
// caller (the room actor goroutine).
func (h *Hub) EmitToOne(conn ConnID, event string, payload any) {
	msg, err := encodeEnvelope(event, payload)
	if err != nil {
		h.logger.Error("failed to encode outbound event", zap.String("event", event), zap.Error(err))
		return
	}

	// Held for the whole lookup-and-send: removeClient takes the write
	// lock to close c.send, so holding the read lock across the send
	// guarantees that close can never run concurrently with this send
	// (Lock() blocks until every outstanding RLock releases).
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.clients[conn]
	if !ok {
		return
	}

	select {
	case c.send <- msg:
	default:
		h.logger.Warn("dropping outbound event, send buffer full", zap.String("event", event), zap.String("connId", string(conn)))
	}
}

func encodeEnvelope(event string, payload any) ([]byte, error) {
	if payload == nil {
		return json.Marshal(map[string]string{"type": event})
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	typeRaw, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	fields["type"] = typeRaw
	return json.Marshal(fields)
}

type client struct {
	id   ConnID
	conn *websocket.Conn
	send chan []byte
}
