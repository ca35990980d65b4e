package middleware

import (
	"net/http"
	"strings"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// RequireRoles is the role gate, declared per route group. It must run
// behind AuthMiddleware: a request with no resolved principal is a 401
// (prove who you are), only a resolved principal with the wrong role is
// a 403 (you may not do this as who you are).
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
			c.Abort()
			return
		}
		if !allowed[role] {
			response.Error(c, http.StatusForbidden,
				"Requires role: "+strings.Join(roles, " or "), nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
