package domain

// Notification event names
const (
	EventJobPosted         = "job.posted"
	EventApplicationNew    = "application.received"
	EventApplicationStatus = "application.status"
	EventUserBanned        = "user.banned"
)

// Event is a named notification with a minimal denormalized payload.
// Delivery is advisory and at-most-once; the stored records stay the
// authoritative state.
type Event struct {
	Name    string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// Notifier fans events out to logical channels. Implementations address
// rooms (per role, per user), never individual connections.
type Notifier interface {
	NotifyRole(role string, event Event)
	NotifyUser(userID string, event Event)
	// DisconnectUser drops every live connection belonging to the user,
	// used after a ban so a banned session cannot keep listening.
	DisconnectUser(userID string)
}
