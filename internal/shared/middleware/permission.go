package middleware

import (
	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/user/model"
	"library-backend/internal/shared/response"
)

// RequirePermission gates a route on a named capability. It runs after
// AuthMiddleware and reads the role it stored in the context. Handlers
// behind this gate never see requests from callers without the capability.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok || !model.RoleHasPermission(model.Role(role), permission) {
			response.Forbidden(c, "missing required permission: "+permission)
			c.Abort()
			return
		}

		c.Next()
	}
}
