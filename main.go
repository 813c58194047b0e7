package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctospeech/config"
	"doctospeech/database"
	"doctospeech/database/repository"
	"doctospeech/handlers"
	"doctospeech/metrics"
	"doctospeech/middleware"
	"doctospeech/routes"
	"doctospeech/services/booking"
	"doctospeech/services/content"
	"doctospeech/services/payment"
	"doctospeech/services/subscription"
	"doctospeech/services/therapist"
	"doctospeech/services/user"
	"doctospeech/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.InitDB(); err != nil {
		logger.Fatal("main: failed to initialize database", zap.Error(err))
	}
	authCache, err := utils.NewAuthCacheClient()
	if err != nil {
		logger.Fatal("main: failed to initialize auth cache", zap.Error(err))
	}
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	repos := repository.NewMongoRepositories(database.DB())
	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repos.EnsureIndexes(indexCtx); err != nil {
		logger.Fatal("main: failed to create indexes", zap.Error(err))
	}
	cancelIndexes()

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, authCache, database.MongoClient, 30*time.Second)

	// services.
	tokens := utils.NewTokenStore(authCache)
	tokenTTL := time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
	bookingService := booking.NewBookingService(repos, metrics.NewBookingMetrics(nil))
	userService := user.NewUserService(repos, tokens, utils.NewOTPStore(authCache), utils.LogOTPSender{}, config.AppConfig.JWTSecret, tokenTTL)
	therapistService := therapist.NewTherapistService(repos)
	paymentService := payment.NewPaymentService(
		repos.Bookings,
		repos.Users,
		bookingService,
		payment.StripeGateway{},
		config.AppConfig.StripeCurrency,
		config.AppConfig.StripeWebhookSecret,
	)
	subscriptionService := subscription.NewSubscriptionService(repos.Users, config.AppConfig.RevenueCatWebhookAuth)
	contentService := content.NewContentService(repos)

	handlerBundle := &handlers.HandlerBundle{
		Auth:      handlers.NewAuthHandler(userService),
		Therapist: handlers.NewTherapistHandler(therapistService),
		Booking:   handlers.NewBookingHandler(bookingService),
		Payment:   handlers.NewPaymentHandler(paymentService),
		Webhooks:  handlers.NewWebhookHandler(paymentService, subscriptionService),
		Content:   handlers.NewContentHandler(contentService),
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger, metrics.NewHTTPMetrics(nil)))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, routes.RouteConfig{
		JWTSecret: config.AppConfig.JWTSecret,
		Revoked:   tokens,
		AdminKey:  config.AppConfig.AdminAPIKey,
	})

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}
	if err := authCache.Close(); err != nil {
		logger.Warn("main: redis close failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
