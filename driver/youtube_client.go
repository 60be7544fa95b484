// ABOUTME: Low-level HTTP client for YouTube Data API v3 communication
// ABOUTME: One bounded request per call, no internal retries

package driver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"youtube-trigger-sidecar/models"
)

// YouTube Data API error types surfaced to the orchestrator
var (
	ErrAuthenticationFailed = errors.New("authentication failed: token may be expired or invalid")
	ErrQuotaExceeded        = errors.New("YouTube API quota exceeded")
	ErrNotFound             = errors.New("requested resource not found")
)

// Page size bounds per listing endpoint, per API documentation
const (
	MinPageSize        = 1
	MaxPlaylistResults = 50  // playlistItems.list and videos.list
	MaxCommentResults  = 100 // commentThreads.list
)

// YouTubeClient handles low-level HTTP communication with the YouTube Data API.
// The bearer token is supplied per call; this layer holds no credentials.
type YouTubeClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewYouTubeClient creates a new YouTube Data API client
func NewYouTubeClient(baseURL, applicationName string, logger *slog.Logger) *YouTubeClient {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = "https://www.googleapis.com/youtube/v3"
	}
	if applicationName == "" {
		applicationName = "youtube-trigger-sidecar"
	}

	return &YouTubeClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: applicationName,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				IdleConnTimeout:       90 * time.Second,
				MaxIdleConns:          10,
				MaxIdleConnsPerHost:   2,
			},
		},
	}
}

// ResolveUploadsPlaylist resolves a channel ID to its uploads playlist ID.
// Returns an empty string when the channel has no resolvable uploads playlist;
// that is a normal outcome, not an error.
func (c *YouTubeClient) ResolveUploadsPlaylist(ctx context.Context, accessToken, channelID string) (string, error) {
	params := map[string]string{
		"part": "contentDetails",
		"id":   channelID,
	}

	var response ChannelListResponse
	if err := c.doGet(ctx, accessToken, "/channels", params, &response); err != nil {
		return "", fmt.Errorf("channels.list call failed: %w", err)
	}

	if len(response.Items) == 0 {
		c.logger.Debug("channels.list returned no items", "channel_id", channelID)
		return "", nil
	}

	return response.Items[0].ContentDetails.RelatedPlaylists.Uploads, nil
}

// FetchPlaylistItems fetches one page of a playlist, newest uploads first.
// maxResults is clamped into the documented 1-50 range before the call.
func (c *YouTubeClient) FetchPlaylistItems(ctx context.Context, accessToken, playlistID string, maxResults int) ([]models.Video, error) {
	params := map[string]string{
		"part":       "snippet",
		"playlistId": playlistID,
		"maxResults": strconv.Itoa(clampPageSize(maxResults, MaxPlaylistResults)),
	}

	var response PlaylistItemListResponse
	if err := c.doGet(ctx, accessToken, "/playlistItems", params, &response); err != nil {
		return nil, fmt.Errorf("playlistItems.list call failed: %w", err)
	}

	videos := make([]models.Video, 0, len(response.Items))
	for _, item := range response.Items {
		video := models.Video{
			VideoID:      item.Snippet.ResourceID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelID:    item.Snippet.ChannelID,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  c.parseTimestamp(item.Snippet.PublishedAt, item.Snippet.ResourceID.VideoID),
			VideoURL:     models.WatchURL(item.Snippet.ResourceID.VideoID),
		}
		if item.Snippet.Thumbnails.Default != nil {
			video.ThumbnailURL = item.Snippet.Thumbnails.Default.URL
		}
		videos = append(videos, video)
	}

	c.logger.Debug("Fetched playlist items",
		"playlist_id", playlistID,
		"items_count", len(videos))

	return videos, nil
}

// FetchCommentThreads fetches one page of top-level comments for a video.
// maxResults is clamped into the documented 1-100 range before the call.
func (c *YouTubeClient) FetchCommentThreads(ctx context.Context, accessToken, videoID string, maxResults int, order string) ([]models.Comment, error) {
	if order != "time" && order != "relevance" {
		order = "time"
	}

	params := map[string]string{
		"part":       "snippet",
		"videoId":    videoID,
		"maxResults": strconv.Itoa(clampPageSize(maxResults, MaxCommentResults)),
		"order":      order,
	}

	var response CommentThreadListResponse
	if err := c.doGet(ctx, accessToken, "/commentThreads", params, &response); err != nil {
		return nil, fmt.Errorf("commentThreads.list call failed: %w", err)
	}

	comments := make([]models.Comment, 0, len(response.Items))
	for _, thread := range response.Items {
		snippet := thread.Snippet.TopLevelComment.Snippet
		comments = append(comments, models.Comment{
			VideoID:           videoID,
			CommentID:         thread.ID,
			TextDisplay:       snippet.TextDisplay,
			AuthorDisplayName: snippet.AuthorDisplayName,
			PublishedAt:       c.parseTimestamp(snippet.PublishedAt, thread.ID),
		})
	}

	c.logger.Debug("Fetched comment threads",
		"video_id", videoID,
		"items_count", len(comments),
		"order", order)

	return comments, nil
}

// FetchVideoStats fetches statistics (and optional parts) for a set of video IDs
func (c *YouTubeClient) FetchVideoStats(ctx context.Context, accessToken string, videoIDs []string, includeSnippet, includeContentDetails bool, maxResults int) ([]models.VideoStats, error) {
	parts := []string{"statistics"}
	if includeSnippet {
		parts = append(parts, "snippet")
	}
	if includeContentDetails {
		parts = append(parts, "contentDetails")
	}

	params := map[string]string{
		"part":       strings.Join(parts, ","),
		"id":         strings.Join(videoIDs, ","),
		"maxResults": strconv.Itoa(clampPageSize(maxResults, MaxPlaylistResults)),
	}

	var response VideoListResponse
	if err := c.doGet(ctx, accessToken, "/videos", params, &response); err != nil {
		return nil, fmt.Errorf("videos.list call failed: %w", err)
	}

	results := make([]models.VideoStats, 0, len(response.Items))
	for _, item := range response.Items {
		stats := models.VideoStats{VideoID: item.ID}

		if item.Statistics != nil {
			stats.ViewCount = parseCount(item.Statistics.ViewCount)
			stats.LikeCount = parseCount(item.Statistics.LikeCount)
			stats.CommentCount = parseCount(item.Statistics.CommentCount)
			stats.FavoriteCount = parseCount(item.Statistics.FavoriteCount)
		}

		if includeSnippet && item.Snippet != nil {
			stats.Title = item.Snippet.Title
			stats.Description = item.Snippet.Description
			stats.ChannelID = item.Snippet.ChannelID
			stats.ChannelTitle = item.Snippet.ChannelTitle
			stats.PublishedAt = item.Snippet.PublishedAt
			if item.Snippet.Thumbnails.Default != nil {
				stats.ThumbnailURL = item.Snippet.Thumbnails.Default.URL
			}
		}

		if includeContentDetails && item.ContentDetails != nil {
			stats.Duration = item.ContentDetails.Duration
			stats.Dimension = item.ContentDetails.Dimension
			stats.Definition = item.ContentDetails.Definition
		}

		results = append(results, stats)
	}

	return results, nil
}

// doGet performs one authenticated GET against the API and decodes the response
func (c *YouTubeClient) doGet(ctx context.Context, accessToken, endpoint string, params map[string]string, target any) error {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		values := url.Values{}
		for key, value := range params {
			values.Set(key, value)
		}
		reqURL += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create authenticated request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute authenticated request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		var apiErr APIErrorResponse
		reason := ""
		if err := json.Unmarshal(body, &apiErr); err == nil && len(apiErr.Error.Errors) > 0 {
			reason = apiErr.Error.Errors[0].Reason
		}

		c.logger.Error("YouTube API request failed",
			"endpoint", endpoint,
			"status_code", resp.StatusCode,
			"reason", reason)

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return ErrAuthenticationFailed
		case http.StatusForbidden:
			if reason == "quotaExceeded" || reason == "rateLimitExceeded" {
				return fmt.Errorf("%w: %s", ErrQuotaExceeded, apiErr.Error.Message)
			}
			return fmt.Errorf("API request forbidden: %s", apiErr.Error.Message)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: retry after %s", ErrQuotaExceeded, resp.Header.Get("Retry-After"))
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrNotFound, endpoint)
		default:
			return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}

	return nil
}

// parseTimestamp parses an RFC 3339 publishedAt value. Returns nil on
// missing or unparseable input so the item is excluded by detection instead
// of failing the cycle.
func (c *YouTubeClient) parseTimestamp(value, itemID string) *time.Time {
	if value == "" {
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		c.logger.Debug("Dropping unparseable publishedAt value",
			"item_id", itemID,
			"published_at", value)
		return nil
	}

	return &parsed
}

// parseCount parses the string-encoded counters of the statistics part
func parseCount(value string) int64 {
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// clampPageSize clamps a requested page size into the endpoint's valid range
func clampPageSize(requested, max int) int {
	if requested < MinPageSize {
		return MinPageSize
	}
	if requested > max {
		return max
	}
	return requested
}

// SetHTTPClient allows injecting a custom HTTP client for tests
func (c *YouTubeClient) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
