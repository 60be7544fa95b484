package repository

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"youtube-trigger-sidecar/models"
)

// EnvVarTokenRepository implements OAuth2TokenRepository using environment
// variables mounted from a deployment secret. The backing variables are
// read-only, so rotated refresh tokens survive only in memory.
type EnvVarTokenRepository struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// NewEnvVarTokenRepository creates a new environment variable-based token repository
func NewEnvVarTokenRepository(logger *slog.Logger) *EnvVarTokenRepository {
	if logger == nil {
		logger = slog.Default()
	}

	return &EnvVarTokenRepository{
		logger: logger,
	}
}

// GetCurrentToken loads OAuth2 credentials from environment variables
func (r *EnvVarTokenRepository) GetCurrentToken(ctx context.Context) (*models.OAuth2Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	refreshToken := os.Getenv("YOUTUBE_REFRESH_TOKEN")
	accessToken := os.Getenv("YOUTUBE_ACCESS_TOKEN")

	if refreshToken == "" {
		r.logger.Error("Missing OAuth2 environment variables",
			"has_refresh_token", false,
			"has_access_token", accessToken != "")
		return nil, fmt.Errorf("storage access error: YOUTUBE_REFRESH_TOKEN not found")
	}

	// With no pre-seeded access token the expiry is set in the past to force
	// a refresh on first use
	expiresAt := time.Now().Add(-1 * time.Hour)
	if accessToken != "" {
		expiresAt = time.Now().Add(time.Hour)
	}

	token := &models.OAuth2Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
		IssuedAt:     time.Now(),
	}

	r.logger.Info("Loaded OAuth2 token from environment variables",
		"has_access_token", accessToken != "",
		"expires_at", expiresAt)

	return token, nil
}

// SaveToken records the refreshed token state. Environment variables cannot
// be written back, so a rotated refresh token is logged as a warning for the
// operator to persist manually.
func (r *EnvVarTokenRepository) SaveToken(ctx context.Context, token *models.OAuth2Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if token.RefreshToken != "" && token.RefreshToken != os.Getenv("YOUTUBE_REFRESH_TOKEN") {
		r.logger.Warn("Refresh token was rotated but env-var storage is read-only; update the deployment secret",
			"expires_at", token.ExpiresAt)
	}

	r.logger.Info("OAuth2 token state updated in memory",
		"expires_at", token.ExpiresAt,
		"token_type", token.TokenType)

	return nil
}

// IsHealthy checks that the required environment variables are present
func (r *EnvVarTokenRepository) IsHealthy(ctx context.Context) error {
	if os.Getenv("YOUTUBE_REFRESH_TOKEN") == "" {
		return fmt.Errorf("OAuth2 environment variables not properly configured")
	}
	return nil
}

// GetStoragePath returns the storage description for logging
func (r *EnvVarTokenRepository) GetStoragePath() string {
	return "environment variables (YOUTUBE_REFRESH_TOKEN, YOUTUBE_ACCESS_TOKEN)"
}
