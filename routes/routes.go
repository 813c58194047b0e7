package routes

import (
	"net/http"
	"time"

	"doctospeech/handlers"
	"doctospeech/middleware"
	"doctospeech/models"
	"doctospeech/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouteConfig carries what the route guards need.
type RouteConfig struct {
	JWTSecret string
	Revoked   middleware.RevocationChecker
	AdminKey  string
	// MetricsHandler serves /metrics; nil uses the default registry.
	MetricsHandler http.Handler
}

func (rc RouteConfig) auth() gin.HandlerFunc {
	return middleware.JWTAuthMiddleware(rc.JWTSecret, rc.Revoked)
}

func (rc RouteConfig) optionalAuth() gin.HandlerFunc {
	return middleware.OptionalJWTAuthMiddleware(rc.JWTSecret, rc.Revoked)
}

// RegisterAuthRoutes registers account and profile endpoints.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, rc RouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/signup", hb.Auth.Signup)
		auth.POST("/login", hb.Auth.Login)
		auth.POST("/send-otp", hb.Auth.SendOTP)
		auth.POST("/verify-otp", hb.Auth.VerifyOTP)

		// Protected routes (Require Authentication)
		protected := auth.Group("", rc.auth())
		protected.POST("/logout", hb.Auth.Logout)
		protected.GET("/profile", hb.Auth.GetProfile)
		protected.GET("/profile/:userId", hb.Auth.GetUserByID)
		protected.POST("/create-profile", hb.Auth.CreateProfile)
		protected.PUT("/update-profile", hb.Auth.UpdateProfile)
		protected.POST("/change-password", hb.Auth.ChangePassword)
		protected.POST("/reset-password", hb.Auth.ResetPassword)
		protected.DELETE("/delete-account", hb.Auth.DeleteAccount)
		protected.POST("/update-availability", middleware.RequireCapability(models.CanConfigureAvailability), hb.Therapist.ReplaceWeeklySchedule)
		protected.GET("/availability", hb.Therapist.GetWeeklySchedule)
	}
}

// RegisterPaymentRoutes registers the payment intent endpoint and the
// gateway webhooks, which authenticate themselves.
func RegisterPaymentRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, rc RouteConfig) {
	api.POST("/payment/intent", rc.auth(), middleware.RequireCapability(models.CanRequestBooking), hb.Payment.CreatePaymentIntent)
	api.POST("/stripe/webhook", hb.Webhooks.Stripe)
	api.POST("/revenuecat/webhook", hb.Webhooks.RevenueCat)
}

// RegisterResourceRoutes registers content management behind the admin key.
func RegisterResourceRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, rc RouteConfig) {
	resources := api.Group("/resources", middleware.AdminKeyMiddleware(rc.AdminKey))
	{
		resources.POST("", hb.Content.CreateResource)
		resources.POST("/ebook", hb.Content.CreateEbook)
	}
}

// RegisterHealthRoute reports the last dependency check.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "message": "Hi, I'm DoctoSpeech"})
	})
}

func RegisterMetricsRoute(r *gin.Engine, h http.Handler) {
	if h == nil {
		h = promhttp.Handler()
	}
	r.GET("/metrics", gin.WrapH(h))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, rc RouteConfig) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Admin-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterMetricsRoute(r, rc.MetricsHandler)

	api := r.Group("/api/v1")
	RegisterAuthRoutes(api, hb, rc)
	RegisterUserRoutes(api, hb, rc)
	RegisterTherapistRoutes(api, hb, rc)
	RegisterPaymentRoutes(api, hb, rc)
	RegisterResourceRoutes(api, hb, rc)
}
