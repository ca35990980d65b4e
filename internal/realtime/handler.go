package realtime

import (
	"net/http"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ServeWS upgrades an authenticated request to a websocket and joins the
// principal's rooms. Must be mounted behind the auth middleware so banned
// or anonymous callers never reach the upgrade.
func ServeWS(hub *Hub, checkOrigin func(r *http.Request) bool) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin,
	}

	return func(c *gin.Context) {
		userID := c.GetString(string(domain.KeyUserID))
		role := c.GetString(string(domain.KeyUserRole))

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the HTTP error response
			logger.Log.Warn("Websocket upgrade failed", "user_id", userID, "error", err)
			return
		}

		client := newClient(hub, conn, userID, role)
		hub.register(client)

		go client.writePump()
		go client.readPump()
	}
}
