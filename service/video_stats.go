//go:generate mockgen -source=video_stats.go -destination=../mocks/video_stats_mock.go -package=mocks StatsAPI

// ABOUTME: Plain request/response task fetching video statistics
// ABOUTME: No temporal state; aggregates totals across the requested videos

package service

import (
	"context"
	"fmt"
	"log/slog"

	"youtube-trigger-sidecar/models"
)

// StatsAPI is the slice of the YouTube driver the stats task consumes
type StatsAPI interface {
	FetchVideoStats(ctx context.Context, accessToken string, videoIDs []string, includeSnippet, includeContentDetails bool, maxResults int) ([]models.VideoStats, error)
}

// VideoStatsRequest holds the options of one stats retrieval
type VideoStatsRequest struct {
	VideoIDs              []string
	IncludeSnippet        bool
	IncludeContentDetails bool
	MaxResults            int
}

// VideoStatsService retrieves and aggregates statistics for a set of videos
type VideoStatsService struct {
	api    StatsAPI
	tokens TokenProvider
	logger *slog.Logger
}

// NewVideoStatsService creates a new video stats service
func NewVideoStatsService(api StatsAPI, tokens TokenProvider, logger *slog.Logger) *VideoStatsService {
	if logger == nil {
		logger = slog.Default()
	}

	return &VideoStatsService{
		api:    api,
		tokens: tokens,
		logger: logger,
	}
}

// GetVideoStats fetches statistics for the requested videos and sums the totals
func (s *VideoStatsService) GetVideoStats(ctx context.Context, req VideoStatsRequest) (*models.VideoStatsReport, error) {
	if len(req.VideoIDs) == 0 {
		return nil, fmt.Errorf("no video IDs provided")
	}
	if req.MaxResults <= 0 {
		req.MaxResults = 5
	}

	accessToken, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain access token: %w", err)
	}

	videos, err := s.api.FetchVideoStats(ctx, accessToken, req.VideoIDs, req.IncludeSnippet, req.IncludeContentDetails, req.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("video stats fetch failed: %w", err)
	}

	report := &models.VideoStatsReport{
		Videos:      videos,
		TotalVideos: len(videos),
	}
	for _, video := range videos {
		report.TotalViews += video.ViewCount
		report.TotalLikes += video.LikeCount
		report.TotalComments += video.CommentCount
	}

	s.logger.Info("Fetched video statistics",
		"requested", len(req.VideoIDs),
		"returned", report.TotalVideos,
		"total_views", report.TotalViews)

	return report, nil
}
