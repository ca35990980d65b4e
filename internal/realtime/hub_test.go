package realtime

import (
	"encoding/json"
	"testing"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Init()
}

func joined(h *Hub, userID, role string) *Client {
	c := newClient(h, nil, userID, role)
	h.register(c)
	return c
}

func receive(t *testing.T, c *Client) domain.Event {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		require.True(t, ok, "send channel closed")
		var ev domain.Event
		require.NoError(t, json.Unmarshal(msg, &ev))
		return ev
	default:
		t.Fatal("no message queued")
		return domain.Event{}
	}
}

func TestHubUserRoom(t *testing.T) {
	h := NewHub()
	c1 := joined(h, "u1", domain.RoleCandidate)
	c2 := joined(h, "u2", domain.RoleCandidate)

	h.NotifyUser("u1", domain.Event{Name: domain.EventApplicationStatus, Payload: map[string]string{"status": "accepted"}})

	ev := receive(t, c1)
	assert.Equal(t, domain.EventApplicationStatus, ev.Name)
	assert.Empty(t, c2.send, "other user must not receive the event")
}

func TestHubRoleRoom(t *testing.T) {
	h := NewHub()
	cand1 := joined(h, "u1", domain.RoleCandidate)
	cand2 := joined(h, "u2", domain.RoleCandidate)
	emp := joined(h, "u3", domain.RoleEmployer)

	h.NotifyRole(domain.RoleCandidate, domain.Event{Name: domain.EventJobPosted})

	assert.Equal(t, domain.EventJobPosted, receive(t, cand1).Name)
	assert.Equal(t, domain.EventJobPosted, receive(t, cand2).Name)
	assert.Empty(t, emp.send, "employer must not receive candidate events")
}

func TestHubDisconnectUser(t *testing.T) {
	h := NewHub()
	c := joined(h, "u1", domain.RoleCandidate)
	require.Equal(t, 1, h.RoomSize("user:u1"))
	require.Equal(t, 1, h.RoomSize("role:candidate"))

	h.DisconnectUser("u1")

	assert.Equal(t, 0, h.RoomSize("user:u1"))
	assert.Equal(t, 0, h.RoomSize("role:candidate"))
	_, ok := <-c.send
	assert.False(t, ok, "send channel must be closed after disconnect")

	// Repeat disconnects and broadcasts are harmless
	h.DisconnectUser("u1")
	h.NotifyUser("u1", domain.Event{Name: domain.EventUserBanned})
}

func TestHubDropsSlowConsumer(t *testing.T) {
	h := NewHub()
	joined(h, "u1", domain.RoleCandidate)

	// Nobody drains the send buffer; once full the client is dropped
	// instead of blocking the broadcast.
	for i := 0; i <= sendBufferSize; i++ {
		h.NotifyUser("u1", domain.Event{Name: domain.EventJobPosted})
	}

	assert.Equal(t, 0, h.RoomSize("user:u1"))
}

func TestHubUnregisterTwiceIsSafe(t *testing.T) {
	h := NewHub()
	c := joined(h, "u1", domain.RoleCandidate)

	h.unregister(c)
	h.unregister(c)

	assert.Equal(t, 0, h.RoomSize("user:u1"))
}
