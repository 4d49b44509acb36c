package middleware

import (
	"net/http"
	"strings"

	"github.com/alidemir/catalog/internal/models"
	"github.com/alidemir/catalog/internal/services"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// BearerAuth resolves the optional Authorization header into the current
// user. No header means anonymous. A present but malformed or invalid token
// rejects the request before any operation runs.
func BearerAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := auth.ResolveCurrentUser(strings.TrimSpace(header[len("bearer "):]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser retrieves the resolved user from the gin context, nil for
// anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}

	if user, ok := value.(*models.User); ok {
		return user
	}
	return nil
}
