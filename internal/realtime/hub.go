package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const sendBuffer = 16

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub keeps per-user websocket registrations and fans pushed payloads out to
// every open connection the user holds. Emit is fire-and-forget: a user with
// no open sockets simply misses the push, the notification row is still there.
type Hub struct {
	mu     sync.RWMutex
	byUser map[string]map[*client]struct{}
	logger *zap.Logger
}

func NewHub(logger ...*zap.Logger) *Hub {
	l := zap.L().Named("realtime.hub")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("realtime.hub")
	}
	return &Hub{
		byUser: make(map[string]map[*client]struct{}),
		logger: l,
	}
}

func (h *Hub) register(userID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.byUser[userID] == nil {
		h.byUser[userID] = make(map[*client]struct{})
	}
	h.byUser[userID][c] = struct{}{}
	h.logger.Debug("client registered", zap.String("user_id", userID), zap.Int("connections", len(h.byUser[userID])))
}

func (h *Hub) unregister(userID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.byUser[userID]; ok {
		if _, ok := conns[c]; ok {
			delete(conns, c)
			close(c.send)
			if len(conns) == 0 {
				delete(h.byUser, userID)
			}
		}
	}
}

// Emit delivers payload to every open connection for userID. Connections that
// cannot keep up are dropped rather than allowed to block the hub. Sends are
// non-blocking and happen under the read lock so a concurrent unregister can
// never close a channel mid-send.
func (h *Hub) Emit(userID string, payload []byte) {
	var slow []*client

	h.mu.RLock()
	for c := range h.byUser[userID] {
		select {
		case c.send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("dropping slow websocket consumer", zap.String("user_id", userID))
		h.unregister(userID, c)
		if c.conn != nil {
			c.conn.Close()
		}
	}
}

// ConnectionCount reports how many sockets userID currently holds.
func (h *Hub) ConnectionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.byUser[userID])
}
