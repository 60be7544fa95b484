// ABOUTME: This file defines the trigger event emitted once per poll cycle
// ABOUTME: Payload carries the representative item plus the full new-item set

package models

import (
	"time"

	"github.com/google/uuid"
)

// VideoEventPayload is the output of one video trigger cycle that found new uploads.
// The representative fields mirror the first new video in fetch order.
type VideoEventPayload struct {
	VideoID        string    `json:"video_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ChannelID      string    `json:"channel_id"`
	ChannelTitle   string    `json:"channel_title"`
	PublishedAt    time.Time `json:"published_at"`
	ThumbnailURL   string    `json:"thumbnail_url,omitempty"`
	VideoURL       string    `json:"video_url"`
	NewVideosCount int       `json:"new_videos_count"`
	AllNewVideos   []Video   `json:"all_new_videos"`
}

// CommentEventPayload is the output of one comment trigger cycle that found new comments
type CommentEventPayload struct {
	VideoID           string    `json:"video_id"`
	CommentID         string    `json:"comment_id"`
	TextDisplay       string    `json:"text_display"`
	AuthorDisplayName string    `json:"author_display_name"`
	PublishedAt       time.Time `json:"published_at"`
	NewCommentsCount  int       `json:"new_comments_count"`
	AllNewComments    []Comment `json:"all_new_comments"`
}

// TriggerEvent is the envelope handed to the event sink. At most one is
// produced per trigger per cycle; cycles that find nothing produce none.
type TriggerEvent struct {
	ID               uuid.UUID `json:"id"`
	TriggerName      string    `json:"trigger_name"`
	RepresentativeID string    `json:"representative_id"`
	NewItemCount     int       `json:"new_item_count"`
	Payload          any       `json:"payload"`
	EmittedAt        time.Time `json:"emitted_at"`
}

// NewTriggerEvent builds an event envelope with a fresh execution handle
func NewTriggerEvent(triggerName, representativeID string, newItemCount int, payload any) *TriggerEvent {
	return &TriggerEvent{
		ID:               uuid.New(),
		TriggerName:      triggerName,
		RepresentativeID: representativeID,
		NewItemCount:     newItemCount,
		Payload:          payload,
		EmittedAt:        time.Now(),
	}
}
