package middleware

import (
	"net/http"
	"strings"

	"artgallery-api/internal/auth"
	"artgallery-api/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CurrentUserKey is where RequireUser stores the resolved user in the
// request context.
const CurrentUserKey = "current_user"

// RequireUser validates the Bearer token and resolves its subject to a user
// record. Requests without a valid token, or whose subject no longer exists,
// are rejected with 401.
func RequireUser(db *gorm.DB, tokens *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token malformed"})
			return
		}

		claims, err := tokens.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		var user users.User
		if err := db.Where("username = ?", claims.Subject).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(CurrentUserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by RequireUser, if any.
func CurrentUser(c *gin.Context) (*users.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*users.User)
	return user, ok
}
