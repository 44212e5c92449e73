package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/auth"
	"portfolio-backend/internal/shared/server/respond"
)

const (
	adminIDKey      = "adminId"
	adminEmailKey   = "adminEmail"
	adminNameKey    = "adminName"
	adminPictureKey = "adminPicture"
)

// RequireAdmin validates the Bearer token and rejects non-admin identities.
// Content mutations all sit behind this; public reads do not.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		claims, err := auth.VerifyJWT(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		if !claims.Admin {
			respond.Error(c, http.StatusForbidden, "forbidden", "admin access required", nil)
			return
		}

		c.Set(adminIDKey, claims.Sub)
		if claims.Email != "" {
			c.Set(adminEmailKey, claims.Email)
		}
		if claims.Name != "" {
			c.Set(adminNameKey, claims.Name)
		}
		if claims.Picture != "" {
			c.Set(adminPictureKey, claims.Picture)
		}
		c.Next()
	}
}

// AdminIDFromContext fetches the admin ID set by RequireAdmin.
func AdminIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(adminIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// AdminEmailFromContext fetches the admin email set by RequireAdmin.
func AdminEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(adminEmailKey)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}

// AdminNameFromContext fetches the admin display name set by RequireAdmin.
func AdminNameFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(adminNameKey)
	if name, ok := val.(string); ok {
		return name
	}
	return ""
}

// AdminPictureFromContext fetches the admin picture set by RequireAdmin.
func AdminPictureFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(adminPictureKey)
	if picture, ok := val.(string); ok {
		return picture
	}
	return ""
}
