package utils

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingJWTSecret is returned by LoadConfig when no signing secret is configured.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// ErrInvalidOTPExpiry is returned by LoadConfig when OTP_EXPIRY_MINUTES is not positive.
var ErrInvalidOTPExpiry = errors.New("OTP_EXPIRY_MINUTES must be positive")

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	OTP      OTPConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	MaxConns    int32
	AutoMigrate bool
}

// URL renders the connection settings as a postgres:// URL.
func (c DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// TTL is the lifetime of an issued access token.
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpiryHours) * time.Hour
}

type EmailConfig struct {
	SendGridAPIKey string
	SendGridHost   string
	From           string
	FromName       string
}

type OTPConfig struct {
	ExpiryMinutes int
}

// TTL is how long a freshly issued code stays consumable.
func (c OTPConfig) TTL() time.Duration {
	return time.Duration(c.ExpiryMinutes) * time.Minute
}

// LoadConfig reads settings from the given .env file (if it exists) and the
// process environment. Environment variables win over the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("APP_NAME", "yatri-auth")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("JWT_EXPIRY_HOURS", 24*7)
	v.SetDefault("SENDGRID_HOST", "https://api.sendgrid.com")
	v.SetDefault("SENDER_EMAIL", "noreply@yatri-q.com")
	v.SetDefault("SENDER_NAME", "YATRI-Q")
	v.SetDefault("OTP_EXPIRY_MINUTES", 10)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		JWT: JWTConfig{
			Secret:      v.GetString("JWT_SECRET"),
			ExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
		},
		Email: EmailConfig{
			SendGridAPIKey: v.GetString("SENDGRID_API_KEY"),
			SendGridHost:   v.GetString("SENDGRID_HOST"),
			From:           v.GetString("SENDER_EMAIL"),
			FromName:       v.GetString("SENDER_NAME"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: v.GetInt("OTP_EXPIRY_MINUTES"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	if config.OTP.ExpiryMinutes <= 0 {
		return nil, ErrInvalidOTPExpiry
	}

	return config, nil
}
