// ABOUTME: This file defines domain models for YouTube comment metadata
// ABOUTME: Represents top-level comments discovered while monitoring a video

package models

import (
	"time"
)

// Comment represents the top-level comment of a comment thread on a monitored video
type Comment struct {
	VideoID           string     `json:"video_id"`
	CommentID         string     `json:"comment_id"`
	TextDisplay       string     `json:"text_display"`
	AuthorDisplayName string     `json:"author_display_name"`
	PublishedAt       *time.Time `json:"published_at"`
}

// CreatedAt returns the publication time, or the zero time when unknown.
func (c Comment) CreatedAt() time.Time {
	if c.PublishedAt == nil {
		return time.Time{}
	}
	return *c.PublishedAt
}
