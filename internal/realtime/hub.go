// Package realtime pushes dashboard events to websocket clients of a user.
package realtime

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	pingPeriod = 25 * time.Second
	writeWait  = 10 * time.Second
)

type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type client struct {
	uid  uuid.UUID
	conn *websocket.Conn
	// gorilla connections support one concurrent writer
	writeMu sync.Mutex
}

func (c *client) write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(messageType, data)
}

type Hub struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu      sync.RWMutex
	clients map[uuid.UUID]map[*client]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			// Origins are checked by the CORS layer
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:  logger,
		clients: make(map[uuid.UUID]map[*client]struct{}),
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	if h.clients[c.uid] == nil {
		h.clients[c.uid] = make(map[*client]struct{})
	}
	h.clients[c.uid][c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if set := h.clients[c.uid]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.uid)
		}
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

// Connections returns the number of live connections of uid.
func (h *Hub) Connections(uid uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[uid])
}

func (h *Hub) Broadcast(uid uuid.UUID, event string, payload any) {
	msg, err := sonic.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		h.logger.Error("marshalling realtime event error", slog.String("event", event), slog.String("error", err.Error()))
		return
	}
	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients[uid]))
	for c := range h.clients[uid] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.write(websocket.TextMessage, msg); err != nil {
			h.logger.Warn("realtime write failed", slog.String("uid", uid.String()), slog.String("error", err.Error()))
			h.unregister(c)
		}
	}
}

// Serve upgrades the request and blocks until the client goes away.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, uid uuid.UUID) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	c := &client{uid: uid, conn: conn}
	h.register(c)

	done := make(chan struct{})
	defer close(done)
	go func() {
		t := time.NewTicker(pingPeriod)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := c.write(websocket.PingMessage, nil); err != nil {
					h.unregister(c)
					return
				}
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.unregister(c)
			return nil
		}
	}
}
