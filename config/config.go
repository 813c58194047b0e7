package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	TokenTTLHours     int    `mapstructure:"TOKEN_TTL_HOURS"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// Stripe.
	StripeKey           string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	StripeCurrency      string `mapstructure:"STRIPE_CURRENCY"`

	// RevenueCat sends this value verbatim in the Authorization header.
	RevenueCatWebhookAuth string `mapstructure:"REVENUECAT_WEBHOOK_AUTH"`

	// Guards the content creation endpoints.
	AdminAPIKey string `mapstructure:"ADMIN_API_KEY"`
}

var AppConfig Config

var defaults = map[string]interface{}{
	"APP_PORT":                "8080",
	"ENV":                     "development",
	"LOG_LEVEL":               "info",
	"MAX_REQUESTS_PER_MIN":    200,
	"TOKEN_TTL_HOURS":         24 * 7,
	"REDIS_ADDR":              "localhost:6379",
	"REDIS_PASSWORD":          "",
	"REDIS_AUTH_DB":           1,
	"DATABASE_URL":            "mongodb://localhost:27017",
	"DATABASE_NAME":           "doctospeech",
	"JWT_SECRET":              "",
	"STRIPE_SECRET_KEY":       "",
	"STRIPE_WEBHOOK_SECRET":   "",
	"STRIPE_CURRENCY":         "usd",
	"REVENUECAT_WEBHOOK_AUTH": "",
	"ADMIN_API_KEY":           "",
}

// LoadConfig fills AppConfig from .env, config.yaml and the environment, in
// increasing precedence.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}
	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	ensureSecrets(&AppConfig)
}

func ensureSecrets(cfg *Config) {
	if cfg.JWTSecret != "" {
		return
	}
	if cfg.Env == "production" {
		log.Fatalf("JWT_SECRET must be set in production")
	}
	cfg.JWTSecret = "doctospeech-dev-secret"
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
