package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brightsprout/childcare-api/internal/auth"
	"github.com/brightsprout/childcare-api/internal/models"
)

const (
	ContextUserID   = "userID"
	ContextUserName = "userName"
	ContextUserRole = "userRole"
)

// AuthMiddleware resolves the bearer token to an identity: the token
// service checks signature and expiry, then the user is loaded so the
// role in force is the one stored now, not the one at token issue
// time. Every failure is a plain 401; the response never says whether
// the token was malformed, expired or pointing at a deleted user.
func AuthMiddleware(db *gorm.DB, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		subjectID, err := tokens.Validate(parts[1], time.Now())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		var user models.User
		if err := db.First(&user, subjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserName, user.Name)
		c.Set(ContextUserRole, user.Role)

		c.Next()
	}
}
