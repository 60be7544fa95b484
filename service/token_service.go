//go:generate mockgen -source=token_service.go -destination=../mocks/token_service_mock.go -package=mocks OAuth2Driver,TokenProvider

// ABOUTME: OAuth2 token lifecycle management for API polling
// ABOUTME: Refresh-if-needed with an expiry buffer and single-flight deduplication

package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"youtube-trigger-sidecar/models"
	"youtube-trigger-sidecar/repository"
)

// OAuth2Driver interface for token endpoint operations
type OAuth2Driver interface {
	RefreshToken(ctx context.Context, refreshToken string) (*models.GoogleTokenResponse, error)
	ExchangeServiceAccountJWT(ctx context.Context, saEmail, privateKeyPEM string, scopes []string) (*models.GoogleTokenResponse, error)
}

// TokenProvider supplies a valid bearer token to the polling triggers
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// TokenStatus summarizes the current token state for the admin API
type TokenStatus struct {
	HasAccessToken   bool      `json:"has_access_token"`
	HasRefreshToken  bool      `json:"has_refresh_token"`
	TokenType        string    `json:"token_type,omitempty"`
	ExpiresAt        time.Time `json:"expires_at,omitempty"`
	ExpiresInSeconds int64     `json:"expires_in_seconds,omitempty"`
	NeedsRefresh     bool      `json:"needs_refresh"`
}

// ServiceAccountCredentials configures the jwt-bearer grant used instead of
// the refresh-token grant when the sidecar runs with a service-account key
type ServiceAccountCredentials struct {
	Email         string
	PrivateKeyPEM string
	Scopes        []string
}

// TokenService manages the OAuth2 token used by all triggers. Refreshes are
// deduplicated through a single-flight group so concurrent cycles trigger at
// most one token exchange.
type TokenService struct {
	tokenRepo      repository.OAuth2TokenRepository
	oauth2Client   OAuth2Driver
	serviceAccount *ServiceAccountCredentials
	logger         *slog.Logger
	refreshBuffer  time.Duration

	refreshGroup singleflight.Group

	mu           sync.RWMutex
	currentToken *models.OAuth2Token
}

// NewTokenService creates a new token service
func NewTokenService(
	tokenRepo repository.OAuth2TokenRepository,
	oauth2Client OAuth2Driver,
	refreshBuffer time.Duration,
	logger *slog.Logger,
) *TokenService {
	if logger == nil {
		logger = slog.Default()
	}
	if refreshBuffer <= 0 {
		refreshBuffer = 5 * time.Minute // Refresh 5 minutes before expiry
	}

	return &TokenService{
		tokenRepo:     tokenRepo,
		oauth2Client:  oauth2Client,
		refreshBuffer: refreshBuffer,
		logger:        logger,
	}
}

// UseServiceAccount switches the service to the jwt-bearer grant
func (s *TokenService) UseServiceAccount(creds ServiceAccountCredentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serviceAccount = &creds
}

// Initialize loads the stored token. A missing token is not fatal when a
// service account is configured; the first AccessToken call mints one.
func (s *TokenService) Initialize(ctx context.Context) error {
	token, err := s.tokenRepo.GetCurrentToken(ctx)
	if err != nil {
		s.mu.RLock()
		hasServiceAccount := s.serviceAccount != nil
		s.mu.RUnlock()

		if hasServiceAccount {
			s.logger.Info("No stored token; will mint one via service account grant")
			return nil
		}
		return fmt.Errorf("failed to load OAuth2 token: %w", err)
	}

	s.mu.Lock()
	s.currentToken = token
	s.mu.Unlock()

	s.logger.Info("OAuth2 token loaded",
		"expires_at", token.ExpiresAt,
		"needs_refresh", token.NeedsRefresh(s.refreshBuffer))

	return nil
}

// AccessToken returns a valid bearer token, refreshing first when the token
// is missing or within the expiry buffer
func (s *TokenService) AccessToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	token := s.currentToken
	s.mu.RUnlock()

	if token != nil && !token.NeedsRefresh(s.refreshBuffer) {
		return token.AccessToken, nil
	}

	if err := s.refresh(ctx); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentToken == nil || !s.currentToken.IsValid() {
		return "", fmt.Errorf("token exchange did not yield a usable access token")
	}
	return s.currentToken.AccessToken, nil
}

// Status reports the current token state
func (s *TokenService) Status() TokenStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentToken == nil {
		return TokenStatus{NeedsRefresh: true}
	}

	return TokenStatus{
		HasAccessToken:   s.currentToken.AccessToken != "",
		HasRefreshToken:  s.currentToken.RefreshToken != "",
		TokenType:        s.currentToken.TokenType,
		ExpiresAt:        s.currentToken.ExpiresAt,
		ExpiresInSeconds: int64(s.currentToken.TimeUntilExpiry().Seconds()),
		NeedsRefresh:     s.currentToken.NeedsRefresh(s.refreshBuffer),
	}
}

// refresh performs one token exchange, deduplicated across concurrent callers
func (s *TokenService) refresh(ctx context.Context) error {
	_, err, shared := s.refreshGroup.Do("oauth2-refresh", func() (interface{}, error) {
		return nil, s.doRefresh(ctx)
	})

	if shared {
		s.logger.Debug("Token refresh deduplicated by single-flight group")
	}

	return err
}

func (s *TokenService) doRefresh(ctx context.Context) error {
	s.mu.RLock()
	token := s.currentToken
	serviceAccount := s.serviceAccount
	s.mu.RUnlock()

	// Another caller may have refreshed while we waited on the group
	if token != nil && !token.NeedsRefresh(s.refreshBuffer) {
		return nil
	}

	var response *models.GoogleTokenResponse
	var err error

	switch {
	case serviceAccount != nil:
		s.logger.Info("Minting access token via service account grant")
		response, err = s.oauth2Client.ExchangeServiceAccountJWT(
			ctx, serviceAccount.Email, serviceAccount.PrivateKeyPEM, serviceAccount.Scopes)
	case token != nil && token.RefreshToken != "":
		s.logger.Info("Refreshing OAuth2 access token",
			"expires_at", token.ExpiresAt,
			"buffer", s.refreshBuffer)
		response, err = s.oauth2Client.RefreshToken(ctx, token.RefreshToken)
	default:
		return fmt.Errorf("no refresh token or service account available")
	}

	if err != nil {
		s.logger.Error("OAuth2 token exchange failed", "error", err)
		return fmt.Errorf("OAuth2 token refresh failed: %w", err)
	}

	// Refresh responses usually omit the refresh token, so an existing token
	// is updated in place (on a copy, so readers of the old pointer never see
	// a partial write) and keeps its refresh token unless the response
	// rotated it.
	var newToken *models.OAuth2Token
	if token != nil {
		updated := *token
		updated.UpdateFromRefresh(*response)
		newToken = &updated
	} else {
		newToken = models.NewOAuth2Token(*response, "")
	}

	s.mu.Lock()
	s.currentToken = newToken
	s.mu.Unlock()

	// Persist so a rotated refresh token survives restarts
	if err := s.tokenRepo.SaveToken(ctx, newToken); err != nil {
		s.logger.Warn("Failed to persist refreshed token", "error", err)
	}

	s.logger.Info("OAuth2 token refreshed successfully",
		"expires_at", newToken.ExpiresAt,
		"token_type", newToken.TokenType)

	return nil
}
