package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"doctospeech/middleware"
	"doctospeech/models"
	"doctospeech/services/user"
	"doctospeech/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers struct {
	user.UserService
	logoutToken  string
	logoutDevice string
	deletedWith  string
	login        user.LoginInput
}

func (s *stubUsers) Login(_ context.Context, in user.LoginInput) (*user.AuthResponse, error) {
	s.login = in
	return &user.AuthResponse{Message: "Please verify your email"}, nil
}

func (s *stubUsers) Logout(_ context.Context, token, deviceToken string) error {
	s.logoutToken, s.logoutDevice = token, deviceToken
	return nil
}

func (s *stubUsers) DeleteAccount(_ context.Context, _ models.Actor, token string) error {
	s.deletedWith = token
	return nil
}

func (s *stubUsers) VerifyOTP(context.Context, string, string) (*user.AuthResponse, error) {
	return nil, utils.Validationf("invalid verification code")
}

const handlerSecret = "handler-secret"

func authRouter(h *AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", h.Login)
	r.POST("/verify-otp", h.VerifyOTP)
	authed := r.Group("", middleware.JWTAuthMiddleware(handlerSecret, nil))
	authed.POST("/logout", h.Logout)
	authed.DELETE("/delete-account", h.DeleteAccount)
	return r
}

func send(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginPassesDevice(t *testing.T) {
	stub := &stubUsers{}
	r := authRouter(NewAuthHandler(stub))

	w := send(r, http.MethodPost, "/login", `{"email":"a@example.com","password":"longenough","deviceToken":"push-1","deviceType":"Android"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "push-1", stub.login.DeviceToken)
	assert.Equal(t, models.DeviceAndroid, stub.login.DeviceType)
	assert.NotContains(t, w.Body.String(), `"token"`)
}

func TestVerifyOTPRequiresCode(t *testing.T) {
	r := authRouter(NewAuthHandler(&stubUsers{}))

	w := send(r, http.MethodPost, "/verify-otp", `{"email":"a@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = send(r, http.MethodPost, "/verify-otp", `{"email":"a@example.com","otp":"000000"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestLogoutAndDeleteAccountPassBearer(t *testing.T) {
	stub := &stubUsers{}
	r := authRouter(NewAuthHandler(stub))
	tok, err := utils.GenerateToken(handlerSecret, "c1", "c@example.com", string(models.UserTypeClient), time.Hour)
	require.NoError(t, err)

	w := send(r, http.MethodPost, "/logout", "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, tok, stub.logoutToken)
	assert.Empty(t, stub.logoutDevice)

	w = send(r, http.MethodPost, "/logout", `{"deviceToken":"push-1"}`, tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "push-1", stub.logoutDevice)

	w = send(r, http.MethodDelete, "/delete-account", "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, tok, stub.deletedWith)
}
