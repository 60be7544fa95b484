//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mock.go -package=mocks OAuth2TokenRepository,EventRepository

// ABOUTME: This file defines repository interfaces and shared repository errors
// ABOUTME: Token storage backends and the emitted-event store implement these

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"youtube-trigger-sidecar/models"
)

// OAuth2TokenRepository defines the interface for OAuth2 token storage operations
type OAuth2TokenRepository interface {
	// GetCurrentToken retrieves the current OAuth2 token from storage
	GetCurrentToken(ctx context.Context) (*models.OAuth2Token, error)

	// SaveToken stores a new or refreshed OAuth2 token
	SaveToken(ctx context.Context, token *models.OAuth2Token) error

	// IsHealthy checks that the storage backend is reachable
	IsHealthy(ctx context.Context) error
}

// EventRepository defines the interface for persisting emitted trigger events.
// Records are write-only from the trigger core; nothing reads them back to
// influence detection, so this is not a dedup index.
type EventRepository interface {
	// SaveEvent persists one emitted trigger event and returns its handle
	SaveEvent(ctx context.Context, event *models.TriggerEvent) (uuid.UUID, error)
}

// Repository error definitions
var (
	ErrTokenNotFound = fmt.Errorf("OAuth2 token not found in storage")
	ErrInvalidToken  = fmt.Errorf("invalid OAuth2 token provided")
)
