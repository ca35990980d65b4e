package middleware

import (
	"net/http"
	"strings"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is the identity resolver: it verifies the bearer token and
// loads the current user record. The role always comes from the database,
// never the token claim, so role or ban changes take effect on the next
// request even for still-valid tokens.
func AuthMiddleware(jwter *auth.JWTer, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if q := c.Query("token"); q != "" {
			// Browsers cannot set headers on websocket dials
			tokenString = q
		}

		if tokenString == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		claims, err := jwter.Parse(tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		// GetCurrentUser rejects banned and deleted users with 401
		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.Subject)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	response.Error(c, http.StatusUnauthorized, message, nil)
	c.Abort()
}

// PrincipalFrom rebuilds the resolved principal from the gin context
func PrincipalFrom(c *gin.Context) domain.Principal {
	return domain.Principal{
		ID:    c.GetString(string(domain.KeyUserID)),
		Email: c.GetString(string(domain.KeyUserEmail)),
		Role:  c.GetString(string(domain.KeyUserRole)),
	}
}
