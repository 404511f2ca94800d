package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates runtime configuration for the gostore API.
type Config struct {
	Server  ServerConfig
	GCS     GCSConfig
	Auth    AuthConfig
	Metrics MetricsConfig
}

// ServerConfig parameterizes the HTTP server.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Address returns the listen address in host:port form.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// GCSConfig carries Google Cloud Storage connection and bucket details.
type GCSConfig struct {
	ProjectID               string
	CredentialsFile         string
	Bucket                  string
	DefaultUserID           string
	SignedURLTTL            time.Duration
	AllowPublicAccess       bool
	ValidateBucketOnStartup bool
}

// AuthConfig groups authentication-related settings. Auth is optional:
// with an empty secret the API runs unauthenticated and every request
// falls back to the default user scope.
type AuthConfig struct {
	AccessTokenSecret string
	AccessTokenTTL    time.Duration
}

// Enabled reports whether bearer-token auth should be enforced.
func (a AuthConfig) Enabled() bool {
	return a.AccessTokenSecret != ""
}

// MetricsConfig groups observability settings.
type MetricsConfig struct {
	PrometheusPath string
}

// Load reads configuration values from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:         getString("GOSTORE_API_HOST", "0.0.0.0"),
			Port:         getInt("GOSTORE_API_PORT", 8080),
			ReadTimeout:  getDuration("GOSTORE_API_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("GOSTORE_API_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("GOSTORE_API_IDLE_TIMEOUT", 60*time.Second),
		},
		GCS: GCSConfig{
			ProjectID:               getString("GCS_PROJECT_ID", ""),
			CredentialsFile:         getString("GCS_CREDENTIALS_FILE", ""),
			Bucket:                  getString("GCS_BUCKET", ""),
			DefaultUserID:           getString("GCS_DEFAULT_USER_ID", ""),
			SignedURLTTL:            getDuration("GCS_SIGNED_URL_TTL", 15*time.Minute),
			AllowPublicAccess:       getBool("GCS_ALLOW_PUBLIC_ACCESS", true),
			ValidateBucketOnStartup: getBool("GCS_VALIDATE_BUCKET_ON_STARTUP", true),
		},
		Auth: AuthConfig{
			AccessTokenSecret: getString("GOSTORE_JWT_SECRET", ""),
			AccessTokenTTL:    getDuration("GOSTORE_JWT_TTL", 15*time.Minute),
		},
		Metrics: MetricsConfig{
			PrometheusPath: getString("GOSTORE_METRICS_PATH", "/metrics"),
		},
	}

	if cfg.GCS.Bucket == "" {
		return Config{}, fmt.Errorf("GCS_BUCKET is required")
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.ToLower(strings.TrimSpace(val))
		switch val {
		case "1", "true", "t", "yes", "y":
			return true
		case "0", "false", "f", "no", "n":
			return false
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
