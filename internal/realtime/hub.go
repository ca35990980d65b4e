package realtime

import (
	"encoding/json"
	"sync"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/logger"
)

// Hub is an in-memory fan-out over per-role and per-user rooms. Delivery is
// best-effort: a client whose send buffer is full is dropped rather than
// allowed to block the broadcast.
type Hub struct {
	mu sync.RWMutex
	// room name ("role:candidate", "user:<id>") -> connected clients
	rooms map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]struct{})}
}

func roleRoom(role string) string   { return "role:" + role }
func userRoom(userID string) string { return "user:" + userID }

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, room := range []string{roleRoom(c.role), userRoom(c.userID)} {
		if h.rooms[room] == nil {
			h.rooms[room] = make(map[*Client]struct{})
		}
		h.rooms[room][c] = struct{}{}
	}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *Client) {
	for _, room := range []string{roleRoom(c.role), userRoom(c.userID)} {
		if clients, ok := h.rooms[room]; ok {
			if _, member := clients[c]; member {
				delete(clients, c)
				if len(clients) == 0 {
					delete(h.rooms, room)
				}
				c.closeOnce()
			}
		}
	}
}

func (h *Hub) NotifyRole(role string, event domain.Event) {
	h.broadcast(roleRoom(role), event)
}

func (h *Hub) NotifyUser(userID string, event domain.Event) {
	h.broadcast(userRoom(userID), event)
}

// DisconnectUser closes every connection in the user's room
func (h *Hub) DisconnectUser(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.rooms[userRoom(userID)] {
		h.removeLocked(c)
	}
}

func (h *Hub) broadcast(room string, event domain.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Error("Failed to encode event", "event", event.Name, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.rooms[room] {
		select {
		case c.send <- data:
		default:
			// Slow consumer: drop the connection, never the broadcast
			h.removeLocked(c)
		}
	}
}

// RoomSize reports how many clients are joined to a user or role room
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
