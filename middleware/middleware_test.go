package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctospeech/metrics"
	"doctospeech/models"
	"doctospeech/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "mw-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func token(t *testing.T, userType string) string {
	t.Helper()
	tok, err := utils.GenerateToken(secret, "u1", "u1@example.com", userType, time.Hour)
	require.NoError(t, err)
	return tok
}

func echoActor(c *gin.Context) {
	actor, ok := ActorFrom(c)
	if !ok {
		c.String(http.StatusOK, "anonymous")
		return
	}
	c.String(http.StatusOK, actor.ID+":"+string(actor.Role))
}

func do(r http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	store := utils.NewTokenStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(secret, store), echoActor)

	w := do(r, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tok := token(t, "Therapist")
	w = do(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + tok})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1:Therapist", w.Body.String())

	// a logged-out token is refused
	require.NoError(t, store.Revoke(context.Background(), utils.HashToken(tok), time.Now().Add(time.Hour)))
	w = do(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + tok})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "revoked")
}

func TestJWTAuthRejectsUnknownRole(t *testing.T) {
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(secret, nil), echoActor)

	w := do(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + token(t, "Admin")})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type failingChecker struct{}

func (failingChecker) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func TestJWTAuthToleratesRevocationStoreFailure(t *testing.T) {
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(secret, failingChecker{}), echoActor)

	w := do(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + token(t, "User")})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalJWTAuth(t *testing.T) {
	r := gin.New()
	r.GET("/content", OptionalJWTAuthMiddleware(secret, nil), echoActor)

	assert.Equal(t, "anonymous", do(r, http.MethodGet, "/content", nil).Body.String())
	assert.Equal(t, "anonymous", do(r, http.MethodGet, "/content", map[string]string{"Authorization": "Bearer bad"}).Body.String())
	assert.Equal(t, "u1:User", do(r, http.MethodGet, "/content", map[string]string{"Authorization": "Bearer " + token(t, "User")}).Body.String())
}

func TestRequireCapability(t *testing.T) {
	r := gin.New()
	r.POST("/availability",
		JWTAuthMiddleware(secret, nil),
		RequireCapability(models.CanConfigureAvailability),
		func(c *gin.Context) { c.Status(http.StatusNoContent) },
	)
	r.POST("/unauthenticated", RequireCapability(models.CanReview), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := do(r, http.MethodPost, "/availability", map[string]string{"Authorization": "Bearer " + token(t, "User")})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodPost, "/availability", map[string]string{"Authorization": "Bearer " + token(t, "Therapist")})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodPost, "/unauthenticated", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminKeyMiddleware(t *testing.T) {
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	r := gin.New()
	r.POST("/resources", AdminKeyMiddleware("k3y"), ok)
	r.POST("/disabled", AdminKeyMiddleware(""), ok)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/resources", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/resources", map[string]string{"X-Admin-Key": "wrong"}).Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodPost, "/resources", map[string]string{"X-Admin-Key": "k3y"}).Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodPost, "/resources", map[string]string{"Authorization": "Bearer k3y"}).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/disabled", nil).Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimitMiddleware(2), func(c *gin.Context) { c.Status(http.StatusOK) })

	a := map[string]string{"X-Forwarded-For": "10.0.0.1, 172.16.0.1"}
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/", a).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/", a).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/", a).Code)

	// a different client has its own bucket
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/", map[string]string{"X-Real-IP": "10.0.0.2"}).Code)
}

func TestRequestLogger(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewHTTPMetrics(reg)

	r := gin.New()
	r.Use(RequestLogger(zap.NewNop(), m))
	r.GET("/items/:id", func(c *gin.Context) {
		_, ok := c.Get(LoggerKey)
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})

	w := do(r, http.MethodGet, "/items/42", map[string]string{"X-Request-ID": "req-1"})
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))

	w = do(r, http.MethodGet, "/missing", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	assert.Equal(t, 2, testutil.CollectAndCount(reg, "doctospeech_http_request_duration_seconds"))
}
