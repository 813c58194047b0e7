package middleware

import (
	"context"
	"net/http"
	"strings"

	"doctospeech/models"
	"doctospeech/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const actorKey = "actor"

// RevocationChecker reports whether a token was logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
}

// JWTAuthMiddleware requires a valid, unrevoked bearer token and stores the
// resulting Actor in the context.
func JWTAuthMiddleware(secret string, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := authenticate(c, secret, revoked)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// OptionalJWTAuthMiddleware sets the Actor when a usable token is present and
// lets anonymous requests through otherwise.
func OptionalJWTAuthMiddleware(secret string, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			if actor, err := authenticate(c, secret, revoked); err == nil {
				c.Set(actorKey, actor)
			}
		}
		c.Next()
	}
}

type authError string

func (e authError) Error() string { return string(e) }

func authenticate(c *gin.Context, secret string, revoked RevocationChecker) (models.Actor, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return models.Actor{}, authError("Missing or invalid Authorization header")
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

	claims, err := utils.ValidateToken(secret, tokenString)
	if err != nil {
		return models.Actor{}, authError("Invalid token")
	}
	role := models.UserType(claims.UserType)
	if !role.Valid() {
		return models.Actor{}, authError("Invalid token")
	}

	if revoked != nil {
		isRevoked, err := revoked.IsRevoked(c.Request.Context(), utils.HashToken(tokenString))
		if err != nil {
			// Redis unavailable: signature and expiry still hold.
			loggerFrom(c).Warn("Revocation check failed", zap.Error(err))
		} else if isRevoked {
			return models.Actor{}, authError("Token has been revoked")
		}
	}
	return models.NewActor(claims.UserID, claims.Email, role), nil
}

// ActorFrom returns the authenticated caller, if any.
func ActorFrom(c *gin.Context) (models.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}
