package middleware

import (
	"net/http"

	"doctospeech/models"
	"doctospeech/utils"

	"github.com/gin-gonic/gin"
)

// RequireCapability rejects callers whose role lacks cap. It must run after
// JWTAuthMiddleware.
func RequireCapability(cap models.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			return
		}
		if !actor.Can(cap) {
			utils.JSONError(c, http.StatusForbidden, "FORBIDDEN", "your account cannot perform this action")
			return
		}
		c.Next()
	}
}
