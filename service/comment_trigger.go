//go:generate mockgen -source=comment_trigger.go -destination=../mocks/comment_trigger_mock.go -package=mocks CommentAPI

// ABOUTME: Poll cycle orchestrator for the new-comment trigger
// ABOUTME: Monitors videos for new top-level comments and emits one event per cycle

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"youtube-trigger-sidecar/models"
)

// CommentAPI is the slice of the YouTube driver the comment trigger consumes
type CommentAPI interface {
	FetchCommentThreads(ctx context.Context, accessToken, videoID string, maxResults int, order string) ([]models.Comment, error)
}

// CommentTriggerConfig holds the per-trigger options for comment monitoring
type CommentTriggerConfig struct {
	VideoIDs     []string
	PollInterval time.Duration
	MaxResults   int
	Order        string // "time" or "relevance"
}

// CommentTriggerService evaluates one poll cycle of the new-comment trigger.
// Stateless across cycles, same contract as the video trigger.
type CommentTriggerService struct {
	api    CommentAPI
	tokens TokenProvider
	sink   EventSink
	clock  Clock
	config CommentTriggerConfig
	logger *slog.Logger
}

// NewCommentTriggerService creates a new comment trigger service
func NewCommentTriggerService(
	api CommentAPI,
	tokens TokenProvider,
	sink EventSink,
	config CommentTriggerConfig,
	logger *slog.Logger,
) *CommentTriggerService {
	if logger == nil {
		logger = slog.Default()
	}
	if config.PollInterval <= 0 {
		config.PollInterval = 30 * time.Minute
	}
	if config.MaxResults <= 0 {
		config.MaxResults = 20
	}
	if config.Order == "" {
		config.Order = "time"
	}

	return &CommentTriggerService{
		api:    api,
		tokens: tokens,
		sink:   sink,
		clock:  time.Now,
		config: config,
		logger: logger,
	}
}

// SetClock injects a clock for tests
func (s *CommentTriggerService) SetClock(clock Clock) {
	s.clock = clock
}

// Name returns the trigger name used in events and the admin API
func (s *CommentTriggerService) Name() string {
	return "new_comments"
}

// Interval returns the configured poll interval
func (s *CommentTriggerService) Interval() time.Duration {
	return s.config.PollInterval
}

// Evaluate runs one poll cycle across all monitored videos. New-item sets
// are merged in configuration order and at most one event is emitted.
func (s *CommentTriggerService) Evaluate(ctx context.Context, scheduledRun *time.Time) (*models.TriggerEvent, error) {
	if len(s.config.VideoIDs) == 0 {
		return nil, ErrNoSources
	}

	accessToken, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain access token: %w", err)
	}

	watermark := Watermark(s.clock, scheduledRun, s.config.PollInterval)

	s.logger.Info("Checking videos for new comments",
		"video_count", len(s.config.VideoIDs),
		"watermark", watermark,
		"order", s.config.Order)

	perSource := make([][]models.Comment, len(s.config.VideoIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, videoID := range s.config.VideoIDs {
		g.Go(func() error {
			threads, err := s.api.FetchCommentThreads(gctx, accessToken, videoID, s.config.MaxResults, s.config.Order)
			if err != nil {
				return fmt.Errorf("video %s: %w", videoID, err)
			}

			perSource[i] = DetectNew(threads, watermark)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("comment poll cycle failed: %w", err)
	}

	result := MergeSources(perSource)
	if result == nil {
		s.logger.Info("No new comments found since last check")
		return nil, nil
	}

	latest := result.Representative
	payload := models.CommentEventPayload{
		VideoID:           latest.VideoID,
		CommentID:         latest.CommentID,
		TextDisplay:       latest.TextDisplay,
		AuthorDisplayName: latest.AuthorDisplayName,
		PublishedAt:       latest.CreatedAt(),
		NewCommentsCount:  result.Count,
		AllNewComments:    result.NewItems,
	}

	event := models.NewTriggerEvent(s.Name(), latest.CommentID, result.Count, payload)
	if _, err := s.sink.Emit(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to emit comment trigger event: %w", err)
	}

	s.logger.Info("New comments detected",
		"new_comments_count", result.Count,
		"representative_comment_id", latest.CommentID)

	return event, nil
}
