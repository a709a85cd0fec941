package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is loaded once at startup and passed by reference into the
// components that need it. Nothing here is mutated after Load returns.
type Config struct {
	DatabaseURL   string
	HTTPAddress   string
	PublicBaseURL string

	JWTSecret       string
	JWTIssuer       string
	SessionTokenTTL time.Duration
	VerifyTokenTTL  time.Duration

	AllowedOrigins   []string
	AllowCredentials bool

	SMTPHost     string
	SMTPPort     int
	SMTPSender   string
	SMTPPassword string

	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
}

var envKeys = []string{
	"DATABASE_URL",
	"HTTP_ADDRESS",
	"PUBLIC_BASE_URL",
	"JWT_SECRET",
	"JWT_ISSUER",
	"SESSION_TOKEN_TTL",
	"VERIFY_TOKEN_TTL",
	"ALLOWED_ORIGINS",
	"ALLOW_CREDENTIALS",
	"SMTP_HOST",
	"SMTP_PORT",
	"SMTP_SENDER",
	"SMTP_PASSWORD",
	"S3_ENDPOINT",
	"S3_REGION",
	"S3_BUCKET",
	"S3_ACCESS_KEY",
	"S3_SECRET_KEY",
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	for _, key := range envKeys {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	viper.SetDefault("HTTP_ADDRESS", ":8080")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	viper.SetDefault("JWT_ISSUER", "plateful")
	viper.SetDefault("SESSION_TOKEN_TTL", "24h")
	viper.SetDefault("VERIFY_TOKEN_TTL", "24h")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("S3_REGION", "us-east-1")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:      viper.GetString("DATABASE_URL"),
		HTTPAddress:      viper.GetString("HTTP_ADDRESS"),
		PublicBaseURL:    viper.GetString("PUBLIC_BASE_URL"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		JWTIssuer:        viper.GetString("JWT_ISSUER"),
		SessionTokenTTL:  viper.GetDuration("SESSION_TOKEN_TTL"),
		VerifyTokenTTL:   viper.GetDuration("VERIFY_TOKEN_TTL"),
		AllowedOrigins:   splitList(viper.GetString("ALLOWED_ORIGINS")),
		AllowCredentials: viper.GetBool("ALLOW_CREDENTIALS"),
		SMTPHost:         viper.GetString("SMTP_HOST"),
		SMTPPort:         viper.GetInt("SMTP_PORT"),
		SMTPSender:       viper.GetString("SMTP_SENDER"),
		SMTPPassword:     viper.GetString("SMTP_PASSWORD"),
		S3Endpoint:       viper.GetString("S3_ENDPOINT"),
		S3Region:         viper.GetString("S3_REGION"),
		S3Bucket:         viper.GetString("S3_BUCKET"),
		S3AccessKey:      viper.GetString("S3_ACCESS_KEY"),
		S3SecretKey:      viper.GetString("S3_SECRET_KEY"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.SessionTokenTTL <= 0 || cfg.VerifyTokenTTL <= 0 {
		return nil, fmt.Errorf("token TTLs must be positive")
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
