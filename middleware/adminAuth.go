package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"doctospeech/utils"

	"github.com/gin-gonic/gin"
)

// AdminKeyMiddleware guards content management with a static API key sent
// as X-Admin-Key or as a bearer token. An empty key disables the routes.
func AdminKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader("X-Admin-Key")
		if supplied == "" {
			supplied = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if key == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) != 1 {
			utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized admin access")
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
