// Package config centralizes environment-driven configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/gourav02/acda-org/internal/core/domain"
)

type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Mongo      MongoConfig
	Limiter    LimiterConfig
	Redis      RedisConfig
	Upload     domain.UploadLimits
	Session    SessionConfig
	Cloudinary CloudinaryConfig
	Mail       MailConfig
}

type ServerConfig struct {
	Port string
}

type LogConfig struct {
	Level string
}

type MongoConfig struct {
	URI      string
	Database string
}

// LimiterConfig selects the rate-limit store and the contact form rule.
type LimiterConfig struct {
	Store       string // "memory" or "redis"
	ContactRule domain.RateLimitRule
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	Lifetime time.Duration
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

type MailConfig struct {
	ResendAPIKey string
	FromEmail    string
	AdminEmail   string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	contactRequests, err := intEnv("RATE_LIMIT_CONTACT_REQUESTS", 5)
	if err != nil {
		return Config{}, err
	}
	contactWindowMinutes, err := intEnv("RATE_LIMIT_CONTACT_WINDOW_MINUTES", 60)
	if err != nil {
		return Config{}, err
	}
	redisDB, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	sessionDays, err := intEnv("SESSION_LIFETIME_DAYS", 30)
	if err != nil {
		return Config{}, err
	}
	maxCount, err := intEnv("UPLOAD_MAX_COUNT", 0)
	if err != nil {
		return Config{}, err
	}

	upload := domain.DefaultUploadLimits()
	if maxCount > 0 {
		upload.MaxCount = maxCount
	}

	cfg := Config{
		Server: ServerConfig{Port: getEnv("SERVER_PORT", "8080")},
		Log:    LogConfig{Level: getEnv("LOG_LEVEL", "info")},
		Mongo: MongoConfig{
			URI:      os.Getenv("MONGODB_URI"),
			Database: getEnv("MONGODB_DATABASE", "acda"),
		},
		Limiter: LimiterConfig{
			Store: getEnv("LIMITER_STORE", "memory"),
			ContactRule: domain.RateLimitRule{
				Requests: contactRequests,
				Window:   time.Duration(contactWindowMinutes) * time.Minute,
			},
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Upload:  upload,
		Session: SessionConfig{Lifetime: time.Duration(sessionDays) * 24 * time.Hour},
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
			Folder:    getEnv("CLOUDINARY_FOLDER", "events"),
		},
		Mail: MailConfig{
			ResendAPIKey: os.Getenv("RESEND_API_KEY"),
			FromEmail:    os.Getenv("CONTACT_FROM_EMAIL"),
			AdminEmail:   os.Getenv("CONTACT_ADMIN_EMAIL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}

	switch c.Limiter.Store {
	case "memory":
	case "redis":
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required when LIMITER_STORE is redis")
		}
	default:
		return fmt.Errorf("unsupported limiter store: %s", c.Limiter.Store)
	}

	if c.Limiter.ContactRule.Requests <= 0 || c.Limiter.ContactRule.Window <= 0 {
		return fmt.Errorf("contact rate limit must have positive values")
	}

	if c.Cloudinary.CloudName == "" || c.Cloudinary.APIKey == "" || c.Cloudinary.APISecret == "" {
		return fmt.Errorf("CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET are required")
	}

	if c.Mail.ResendAPIKey == "" || c.Mail.FromEmail == "" || c.Mail.AdminEmail == "" {
		return fmt.Errorf("RESEND_API_KEY, CONTACT_FROM_EMAIL and CONTACT_ADMIN_EMAIL are required")
	}

	return nil
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func intEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
