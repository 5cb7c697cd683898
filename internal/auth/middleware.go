package auth

import (
	"net/http"
	"strings"

	"github.com/I4AN/MagnetWallet/internal/models"
	"github.com/gin-gonic/gin"
)

// contextUserKey is the gin context key the authenticated user is stored under.
const contextUserKey = "authenticatedUser"

// Middleware validates the bearer token and loads the authenticated user
// into the request context. Requests without a valid token are rejected
// with 401 and the handler chain is aborted.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrMissingToken.Error()})
			return
		}

		userID, err := ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		user, err := models.UserByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken.Error()})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by Middleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, ok := c.Get(contextUserKey)
	if !ok {
		return models.User{}, false
	}

	user, ok := value.(models.User)
	return user, ok
}
