package auth

import (
	"net/http"
	"strings"

	"videogamehub/backend/internal/database"
	"videogamehub/backend/internal/models"
	"videogamehub/backend/internal/session"
	"videogamehub/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a gin middleware that requires a valid Bearer
// token. On success the user ID is stored on the context and the principal
// is re-registered with the session registry, so sessions survive server
// restarts without a fresh login.
func AuthMiddleware(sessions *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := bearerUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		c.Set("userID", userID)
		ensureSession(sessions, userID)
		c.Next()
	}
}

// OptionalAuthMiddleware inspects for a token and sets the userID if present and valid,
// but does not fail if the token is missing or invalid.
func OptionalAuthMiddleware(sessions *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := bearerUserID(c); ok {
			c.Set("userID", userID)
			ensureSession(sessions, userID)
		}
		c.Next()
	}
}

func bearerUserID(c *gin.Context) (uint, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return 0, false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, false
	}
	userID, err := jwt.ParseUserID(parts[1])
	if err != nil {
		return 0, false
	}
	return userID, true
}

// ensureSession registers the principal with the registry if it is not
// already active. The user row is only loaded on the first sighting.
func ensureSession(sessions *session.Registry, userID uint) {
	if _, ok := sessions.Current(userID); ok {
		return
	}
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return
	}
	sessions.Ensure(session.Principal{UserID: user.ID, Email: user.Email})
}
