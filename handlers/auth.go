package handlers

import (
	"strings"

	"doctospeech/models"
	"doctospeech/services/user"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves account, profile, kid and review endpoints.
type AuthHandler struct {
	Service user.UserService
}

func NewAuthHandler(s user.UserService) *AuthHandler {
	return &AuthHandler{Service: s}
}

type signupRequest struct {
	Email       string            `json:"email" binding:"required"`
	Password    string            `json:"password" binding:"required"`
	UserType    models.UserType   `json:"userType" binding:"required"`
	DeviceToken string            `json:"deviceToken"`
	DeviceType  models.DeviceType `json:"deviceType"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.Service.Signup(c.Request.Context(), user.SignupInput{
		Email:       req.Email,
		Password:    req.Password,
		UserType:    req.UserType,
		DeviceInput: models.DeviceInput{DeviceToken: req.DeviceToken, DeviceType: req.DeviceType},
	})
	if err != nil {
		fail(c, err)
		return
	}
	created(c, resp.Message, resp)
}

type loginRequest struct {
	Email       string            `json:"email" binding:"required"`
	Password    string            `json:"password" binding:"required"`
	DeviceToken string            `json:"deviceToken"`
	DeviceType  models.DeviceType `json:"deviceType"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.Service.Login(c.Request.Context(), user.LoginInput{
		Email:       req.Email,
		Password:    req.Password,
		DeviceInput: models.DeviceInput{DeviceToken: req.DeviceToken, DeviceType: req.DeviceType},
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, resp.Message, resp)
}

type sendOTPRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req sendOTPRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Service.SendOTP(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Verification code sent", nil)
}

type verifyOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.Service.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, resp.Message, resp)
}

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	var req resetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Service.ResetPassword(c.Request.Context(), actor, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Password reset", nil)
}

type logoutRequest struct {
	DeviceToken string `json:"deviceToken"`
}

// Logout revokes the bearer token used for this request. The body is
// optional and names the device to unlink.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req logoutRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	if err := h.Service.Logout(c.Request.Context(), bearerToken(c), req.DeviceToken); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Logged out", nil)
}

func bearerToken(c *gin.Context) string {
	return strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	u, err := h.Service.GetProfile(c.Request.Context(), actor)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Profile retrieved", u)
}

func (h *AuthHandler) GetUserByID(c *gin.Context) {
	p, err := h.Service.GetUserByID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Profile retrieved", p)
}

func (h *AuthHandler) CreateProfile(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	var in models.ProfileInput
	if !bindJSON(c, &in) {
		return
	}
	u, err := h.Service.CreateProfile(c.Request.Context(), actor, in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Profile created", u)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	var in models.ProfileInput
	if !bindJSON(c, &in) {
		return
	}
	u, err := h.Service.UpdateProfile(c.Request.Context(), actor, in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Profile updated", u)
}

func (h *AuthHandler) UpdateLocation(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	var in user.LocationInput
	if !bindJSON(c, &in) {
		return
	}
	u, err := h.Service.UpdateLocation(c.Request.Context(), actor, in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Location updated", u)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	var req changePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Service.ChangePassword(c.Request.Context(), actor, req.CurrentPassword, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Password changed", nil)
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	if err := h.Service.DeleteAccount(c.Request.Context(), actor, bearerToken(c)); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Account deleted", nil)
}

func (h *AuthHandler) ListKids(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	kids, err := h.Service.ListKids(c.Request.Context(), actor)
	if err != nil {
		fail(c, err)
		return
	}
	if kids == nil {
		kids = []models.Kid{}
	}
	ok(c, "Kids retrieved", kids)
}

func (h *AuthHandler) AddKid(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	var in models.KidInput
	if !bindJSON(c, &in) {
		return
	}
	kid, err := h.Service.AddKid(c.Request.Context(), actor, in)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "Kid added", kid)
}

func (h *AuthHandler) DeleteKid(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	if err := h.Service.DeleteKid(c.Request.Context(), actor, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Kid deleted", nil)
}

// Review serves both reviewTherapist and reviewUser. The service checks that
// the subject holds the opposite role.
func (h *AuthHandler) Review(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	var in models.ReviewInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Service.Review(c.Request.Context(), actor, in)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "Review submitted", r)
}
