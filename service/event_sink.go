//go:generate mockgen -source=event_sink.go -destination=../mocks/event_sink_mock.go -package=mocks EventSink

// ABOUTME: Event sink boundary between the trigger core and the workflow engine
// ABOUTME: Log-only and repository-backed implementations

package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"youtube-trigger-sidecar/models"
	"youtube-trigger-sidecar/repository"
)

// EventSink receives the single event a poll cycle may emit and turns it
// into a durable execution record, returning the execution handle.
type EventSink interface {
	Emit(ctx context.Context, event *models.TriggerEvent) (uuid.UUID, error)
}

// LogEventSink emits events to the log only. Used when no event store DSN is
// configured.
type LogEventSink struct {
	logger *slog.Logger
}

// NewLogEventSink creates a log-only event sink
func NewLogEventSink(logger *slog.Logger) *LogEventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogEventSink{logger: logger}
}

// Emit logs the event and returns its handle
func (s *LogEventSink) Emit(ctx context.Context, event *models.TriggerEvent) (uuid.UUID, error) {
	s.logger.Info("Trigger event emitted",
		"event_id", event.ID,
		"trigger_name", event.TriggerName,
		"representative_id", event.RepresentativeID,
		"new_item_count", event.NewItemCount)

	return event.ID, nil
}

// RepositoryEventSink persists emitted events through an EventRepository
type RepositoryEventSink struct {
	repo   repository.EventRepository
	logger *slog.Logger
}

// NewRepositoryEventSink creates an event sink backed by a repository
func NewRepositoryEventSink(repo repository.EventRepository, logger *slog.Logger) *RepositoryEventSink {
	if logger == nil {
		logger = slog.Default()
	}

	return &RepositoryEventSink{
		repo:   repo,
		logger: logger,
	}
}

// Emit persists the event and returns the stored execution handle
func (s *RepositoryEventSink) Emit(ctx context.Context, event *models.TriggerEvent) (uuid.UUID, error) {
	handle, err := s.repo.SaveEvent(ctx, event)
	if err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("Trigger event persisted",
		"event_id", handle,
		"trigger_name", event.TriggerName,
		"new_item_count", event.NewItemCount)

	return handle, nil
}
