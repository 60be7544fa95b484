//go:generate mockgen -source=video_trigger.go -destination=../mocks/video_trigger_mock.go -package=mocks VideoAPI

// ABOUTME: Poll cycle orchestrator for the new-video trigger
// ABOUTME: Monitors channel uploads playlists and emits one event per cycle

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"youtube-trigger-sidecar/models"
)

// ErrNoSources is returned when a cycle is evaluated with an empty source list
var ErrNoSources = errors.New("no sources configured for trigger")

// VideoAPI is the slice of the YouTube driver the video trigger consumes
type VideoAPI interface {
	ResolveUploadsPlaylist(ctx context.Context, accessToken, channelID string) (string, error)
	FetchPlaylistItems(ctx context.Context, accessToken, playlistID string, maxResults int) ([]models.Video, error)
}

// VideoTriggerConfig holds the per-trigger options for video monitoring
type VideoTriggerConfig struct {
	ChannelIDs   []string
	PollInterval time.Duration
	MaxResults   int
}

// VideoTriggerService evaluates one poll cycle of the new-video trigger.
// Stateless across cycles: the watermark is recomputed from scheduler
// metadata every time and no item memory is carried over.
type VideoTriggerService struct {
	api    VideoAPI
	tokens TokenProvider
	sink   EventSink
	clock  Clock
	config VideoTriggerConfig
	logger *slog.Logger
}

// NewVideoTriggerService creates a new video trigger service
func NewVideoTriggerService(
	api VideoAPI,
	tokens TokenProvider,
	sink EventSink,
	config VideoTriggerConfig,
	logger *slog.Logger,
) *VideoTriggerService {
	if logger == nil {
		logger = slog.Default()
	}
	if config.PollInterval <= 0 {
		config.PollInterval = time.Hour
	}
	if config.MaxResults <= 0 {
		config.MaxResults = 10
	}

	return &VideoTriggerService{
		api:    api,
		tokens: tokens,
		sink:   sink,
		clock:  time.Now,
		config: config,
		logger: logger,
	}
}

// SetClock injects a clock for tests
func (s *VideoTriggerService) SetClock(clock Clock) {
	s.clock = clock
}

// Name returns the trigger name used in events and the admin API
func (s *VideoTriggerService) Name() string {
	return "new_videos"
}

// Interval returns the configured poll interval
func (s *VideoTriggerService) Interval() time.Duration {
	return s.config.PollInterval
}

// Evaluate runs one poll cycle. Returns the emitted event, or nil when the
// cycle found nothing new (the normal, expected case). Any fetch failure is
// fatal for this cycle only; the next scheduled cycle is unaffected.
func (s *VideoTriggerService) Evaluate(ctx context.Context, scheduledRun *time.Time) (*models.TriggerEvent, error) {
	if len(s.config.ChannelIDs) == 0 {
		return nil, ErrNoSources
	}

	accessToken, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain access token: %w", err)
	}

	// One watermark per cycle, shared across all monitored channels
	watermark := Watermark(s.clock, scheduledRun, s.config.PollInterval)

	s.logger.Info("Checking channels for new videos",
		"channel_count", len(s.config.ChannelIDs),
		"watermark", watermark)

	// Per-source fetches are independent and run in parallel, but results
	// land in a slice indexed by configuration order so the merge stays
	// deterministic regardless of completion order.
	perSource := make([][]models.Video, len(s.config.ChannelIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, channelID := range s.config.ChannelIDs {
		g.Go(func() error {
			playlistID, err := s.api.ResolveUploadsPlaylist(gctx, accessToken, channelID)
			if err != nil {
				return fmt.Errorf("channel %s: %w", channelID, err)
			}
			if playlistID == "" {
				s.logger.Info("Channel has no uploads playlist, skipping", "channel_id", channelID)
				return nil
			}

			items, err := s.api.FetchPlaylistItems(gctx, accessToken, playlistID, s.config.MaxResults)
			if err != nil {
				return fmt.Errorf("channel %s: %w", channelID, err)
			}
			if len(items) == 0 {
				s.logger.Info("No videos found in uploads playlist", "channel_id", channelID)
				return nil
			}

			perSource[i] = DetectNew(items, watermark)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("video poll cycle failed: %w", err)
	}

	result := MergeSources(perSource)
	if result == nil {
		s.logger.Info("No new videos found since last check")
		return nil, nil
	}

	latest := result.Representative
	payload := models.VideoEventPayload{
		VideoID:        latest.VideoID,
		Title:          latest.Title,
		Description:    latest.Description,
		ChannelID:      latest.ChannelID,
		ChannelTitle:   latest.ChannelTitle,
		PublishedAt:    latest.CreatedAt(),
		ThumbnailURL:   latest.ThumbnailURL,
		VideoURL:       latest.VideoURL,
		NewVideosCount: result.Count,
		AllNewVideos:   result.NewItems,
	}

	event := models.NewTriggerEvent(s.Name(), latest.VideoID, result.Count, payload)
	if _, err := s.sink.Emit(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to emit video trigger event: %w", err)
	}

	s.logger.Info("New videos detected",
		"new_videos_count", result.Count,
		"representative_video_id", latest.VideoID)

	return event, nil
}
