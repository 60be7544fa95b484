// ABOUTME: This file defines domain models for the video statistics task
// ABOUTME: Plain request/response data with no temporal state

package models

// VideoStats holds the statistics (and optional snippet/content details) for one video
type VideoStats struct {
	VideoID       string `json:"video_id"`
	ViewCount     int64  `json:"view_count"`
	LikeCount     int64  `json:"like_count"`
	CommentCount  int64  `json:"comment_count"`
	FavoriteCount int64  `json:"favorite_count"`

	// Populated when snippet data was requested
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	ChannelID    string `json:"channel_id,omitempty"`
	ChannelTitle string `json:"channel_title,omitempty"`
	PublishedAt  string `json:"published_at,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`

	// Populated when content details were requested
	Duration   string `json:"duration,omitempty"`
	Dimension  string `json:"dimension,omitempty"`
	Definition string `json:"definition,omitempty"`
}

// VideoStatsReport aggregates statistics across the requested videos
type VideoStatsReport struct {
	Videos        []VideoStats `json:"videos"`
	TotalVideos   int          `json:"total_videos"`
	TotalViews    int64        `json:"total_views"`
	TotalLikes    int64        `json:"total_likes"`
	TotalComments int64        `json:"total_comments"`
}
