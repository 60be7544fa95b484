// ABOUTME: This file handles configuration management for youtube-trigger-sidecar
// ABOUTME: Loads environment variables and validates trigger and OAuth2 settings

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the youtube-trigger-sidecar service
type Config struct {
	// Service configuration
	ServiceName     string
	LogLevel        string
	ApplicationName string
	AdminPort       int

	// YouTube Data API configuration
	YouTube YouTubeConfig

	// OAuth2 configuration
	OAuth2 OAuth2Config

	// Trigger configuration
	VideoTrigger   VideoTriggerConfig
	CommentTrigger CommentTriggerConfig

	// Event store configuration
	EventStore EventStoreConfig

	// Kubernetes configuration
	Kubernetes KubernetesConfig
}

// YouTubeConfig holds YouTube Data API settings
type YouTubeConfig struct {
	BaseURL string
}

// OAuth2Config holds OAuth2 token settings. Either the refresh-token
// credentials or the service-account key must be configured.
type OAuth2Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	RefreshToken string

	ServiceAccountEmail      string
	ServiceAccountPrivateKey string
	ServiceAccountScopes     []string

	RefreshBuffer time.Duration
}

// VideoTriggerConfig holds the new-video trigger options.
// An empty ChannelIDs list disables the trigger.
type VideoTriggerConfig struct {
	ChannelIDs   []string
	PollInterval time.Duration
	MaxResults   int // 1-50
}

// CommentTriggerConfig holds the new-comment trigger options.
// An empty VideoIDs list disables the trigger.
type CommentTriggerConfig struct {
	VideoIDs     []string
	PollInterval time.Duration
	MaxResults   int    // 1-100
	Order        string // "time" or "relevance"
}

// EventStoreConfig holds the optional Postgres event store settings
type EventStoreConfig struct {
	DSN string
}

// KubernetesConfig holds the optional Secret-backed token storage settings
type KubernetesConfig struct {
	InCluster       bool
	Namespace       string
	TokenSecretName string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServiceName:     getEnvOrDefault("SERVICE_NAME", "youtube-trigger-sidecar"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		ApplicationName: getEnvOrDefault("APPLICATION_NAME", "youtube-trigger-sidecar"),
		AdminPort:       getEnvIntOrDefault("ADMIN_PORT", 8080),

		YouTube: YouTubeConfig{
			BaseURL: getEnvOrDefault("YOUTUBE_API_BASE_URL", "https://www.googleapis.com/youtube/v3"),
		},

		OAuth2: OAuth2Config{
			TokenURL:                 getEnvOrDefault("YOUTUBE_OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token"),
			ClientID:                 os.Getenv("YOUTUBE_CLIENT_ID"),     // Required from secret
			ClientSecret:             os.Getenv("YOUTUBE_CLIENT_SECRET"), // Required from secret
			RefreshToken:             os.Getenv("YOUTUBE_REFRESH_TOKEN"), // Required from secret
			ServiceAccountEmail:      os.Getenv("YOUTUBE_SA_EMAIL"),
			ServiceAccountPrivateKey: os.Getenv("YOUTUBE_SA_PRIVATE_KEY"),
			ServiceAccountScopes: splitCSV(getEnvOrDefault("YOUTUBE_SA_SCOPES",
				"https://www.googleapis.com/auth/youtube.readonly")),
		},

		VideoTrigger: VideoTriggerConfig{
			ChannelIDs:   splitCSV(os.Getenv("VIDEO_CHANNEL_IDS")),
			PollInterval: getEnvDurationOrDefault("VIDEO_POLL_INTERVAL", time.Hour),
			MaxResults:   getEnvIntOrDefault("VIDEO_MAX_RESULTS", 10),
		},

		CommentTrigger: CommentTriggerConfig{
			VideoIDs:     splitCSV(os.Getenv("COMMENT_VIDEO_IDS")),
			PollInterval: getEnvDurationOrDefault("COMMENT_POLL_INTERVAL", 30*time.Minute),
			MaxResults:   getEnvIntOrDefault("COMMENT_MAX_RESULTS", 20),
			Order:        getEnvOrDefault("COMMENT_ORDER", "time"),
		},

		EventStore: EventStoreConfig{
			DSN: os.Getenv("EVENT_STORE_DSN"),
		},

		Kubernetes: KubernetesConfig{
			InCluster:       getEnvOrDefault("KUBERNETES_IN_CLUSTER", "false") == "true",
			Namespace:       getEnvOrDefault("KUBERNETES_NAMESPACE", "default"),
			TokenSecretName: getEnvOrDefault("OAUTH2_TOKEN_SECRET_NAME", "youtube-trigger-sidecar-oauth2-token"),
		},
	}

	// Parse token refresh buffer (seconds)
	if buffer := os.Getenv("OAUTH2_TOKEN_REFRESH_BUFFER"); buffer != "" {
		if bufferSeconds, err := strconv.Atoi(buffer); err == nil {
			cfg.OAuth2.RefreshBuffer = time.Duration(bufferSeconds) * time.Second
		} else {
			cfg.OAuth2.RefreshBuffer = 5 * time.Minute // Default
		}
	} else {
		cfg.OAuth2.RefreshBuffer = 5 * time.Minute
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// HasServiceAccount reports whether the service-account grant is configured
func (c *OAuth2Config) HasServiceAccount() bool {
	return c.ServiceAccountEmail != "" && c.ServiceAccountPrivateKey != ""
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !c.OAuth2.HasServiceAccount() {
		if c.OAuth2.ClientID == "" {
			return fmt.Errorf("YOUTUBE_CLIENT_ID is required")
		}
		if c.OAuth2.ClientSecret == "" {
			return fmt.Errorf("YOUTUBE_CLIENT_SECRET is required")
		}
		if c.OAuth2.RefreshToken == "" {
			return fmt.Errorf("YOUTUBE_REFRESH_TOKEN is required")
		}
	}

	if len(c.VideoTrigger.ChannelIDs) == 0 && len(c.CommentTrigger.VideoIDs) == 0 {
		return fmt.Errorf("at least one of VIDEO_CHANNEL_IDS or COMMENT_VIDEO_IDS must be set")
	}

	if c.VideoTrigger.PollInterval <= 0 {
		return fmt.Errorf("VIDEO_POLL_INTERVAL must be positive")
	}
	if c.CommentTrigger.PollInterval <= 0 {
		return fmt.Errorf("COMMENT_POLL_INTERVAL must be positive")
	}

	if c.VideoTrigger.MaxResults < 1 || c.VideoTrigger.MaxResults > 50 {
		return fmt.Errorf("VIDEO_MAX_RESULTS must be between 1 and 50")
	}
	if c.CommentTrigger.MaxResults < 1 || c.CommentTrigger.MaxResults > 100 {
		return fmt.Errorf("COMMENT_MAX_RESULTS must be between 1 and 100")
	}

	if c.CommentTrigger.Order != "time" && c.CommentTrigger.Order != "relevance" {
		return fmt.Errorf("COMMENT_ORDER must be \"time\" or \"relevance\"")
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault parses an integer environment variable with a fallback
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDurationOrDefault parses a duration environment variable with a fallback
func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// splitCSV splits a comma-separated list, trimming whitespace and dropping empties
func splitCSV(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
