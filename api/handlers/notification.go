package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/youpower/youpower-api/api"
	"github.com/youpower/youpower-api/models"
)

const writeWait = 10 * time.Second

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// client is one websocket connection. gorilla/websocket allows a single
// concurrent writer, so writes go through mu.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NotificationHub keeps the connected users (userId -> connection) and pushes
// events to them
type NotificationHub struct {
	clients map[string]*client
	mutex   sync.Mutex
}

// NewNotificationHub returns an empty hub
func NewNotificationHub() *NotificationHub {
	return &NotificationHub{clients: make(map[string]*client)}
}

// HandleNotificationsWebSocket WebSocket handler for notifications of the
// authenticated user
func (h *NotificationHub) HandleNotificationsWebSocket(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r)
	if userID == "" {
		http.Error(w, `{"error": "unauthorized"}`, http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnw("websocket upgrade error", "error", err, "userId", userID)
		return
	}

	c := &client{conn: conn}
	h.mutex.Lock()
	if old, ok := h.clients[userID]; ok {
		old.conn.Close()
	}
	h.clients[userID] = c
	h.mutex.Unlock()
	zap.S().Debugf("User %s connected to /ws/notifications", userID)

	// Keep connection alive until the client goes away
	for {
		if _, _, err := conn.NextReader(); err != nil {
			break
		}
	}
	h.remove(userID, c)
	zap.S().Debugf("User %s disconnected from /ws/notifications", userID)
}

// Notify sends a notification to the user if they are connected
func (h *NotificationHub) Notify(userID string, n models.Notification) {
	h.mutex.Lock()
	c, exists := h.clients[userID]
	h.mutex.Unlock()
	if !exists {
		return
	}

	c.mu.Lock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	err := c.conn.WriteJSON(map[string]interface{}{
		"event": n.Type,
		"data":  n.Data,
	})
	c.mu.Unlock()
	if err != nil {
		zap.S().Warnw("error sending notification", "error", err, "userId", userID)
		h.remove(userID, c)
	}
}

// Connected reports whether the user has an open notification socket
func (h *NotificationHub) Connected(userID string) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	_, ok := h.clients[userID]
	return ok
}

func (h *NotificationHub) remove(userID string, c *client) {
	h.mutex.Lock()
	if h.clients[userID] == c {
		delete(h.clients, userID)
	}
	h.mutex.Unlock()
	c.conn.Close()
}
