package handlers

import (
	"net/http"

	"doctospeech/middleware"
	"doctospeech/models"
	"doctospeech/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped zap logger or falls back to the process logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(middleware.LoggerKey); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// currentActor returns the authenticated caller or writes a 401.
func currentActor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return models.Actor{}, false
	}
	return actor, true
}

// bindJSON decodes the body into v or writes a 400.
func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		getLogger(c).Warn("Invalid request payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload: "+err.Error())
		return false
	}
	return true
}

func fail(c *gin.Context, err error) {
	utils.RespondError(c, getLogger(c), err)
}

func ok(c *gin.Context, message string, data interface{}) {
	utils.JSONSuccess(c, http.StatusOK, message, data)
}

func created(c *gin.Context, message string, data interface{}) {
	utils.JSONSuccess(c, http.StatusCreated, message, data)
}

// bookingIDParam reads the booking id from either route spelling.
func bookingIDParam(c *gin.Context) string {
	if id := c.Param("bookingId"); id != "" {
		return id
	}
	return c.Param("id")
}
