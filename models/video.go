// ABOUTME: This file defines domain models for YouTube video metadata
// ABOUTME: Represents uploads discovered while monitoring a channel

package models

import (
	"time"
)

// Video represents one upload discovered in a channel's uploads playlist.
// PublishedAt is a pointer because the API may omit it; items without a
// publication time are never considered new.
type Video struct {
	VideoID      string     `json:"video_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ChannelID    string     `json:"channel_id"`
	ChannelTitle string     `json:"channel_title"`
	PublishedAt  *time.Time `json:"published_at"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	VideoURL     string     `json:"video_url"`
}

// CreatedAt returns the publication time, or the zero time when unknown.
func (v Video) CreatedAt() time.Time {
	if v.PublishedAt == nil {
		return time.Time{}
	}
	return *v.PublishedAt
}

// WatchURL builds the public watch URL for a video ID
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
