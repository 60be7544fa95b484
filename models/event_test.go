// ABOUTME: Tests for trigger event construction and item timestamp accessors
// ABOUTME: Items without a publication time report the zero creation instant

package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewTriggerEvent(t *testing.T) {
	payload := VideoEventPayload{VideoID: "vid1", NewVideosCount: 3}

	event := NewTriggerEvent("new_videos", "vid1", 3, payload)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, "new_videos", event.TriggerName)
	assert.Equal(t, "vid1", event.RepresentativeID)
	assert.Equal(t, 3, event.NewItemCount)
	assert.Equal(t, payload, event.Payload)
	assert.WithinDuration(t, time.Now(), event.EmittedAt, time.Second)

	// Every event gets its own execution handle
	other := NewTriggerEvent("new_videos", "vid1", 3, payload)
	assert.NotEqual(t, event.ID, other.ID)
}

func TestVideo_CreatedAt(t *testing.T) {
	published := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	withTime := Video{VideoID: "v1", PublishedAt: &published}
	assert.Equal(t, published, withTime.CreatedAt())

	withoutTime := Video{VideoID: "v2"}
	assert.True(t, withoutTime.CreatedAt().IsZero())
}

func TestComment_CreatedAt(t *testing.T) {
	published := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	withTime := Comment{CommentID: "c1", PublishedAt: &published}
	assert.Equal(t, published, withTime.CreatedAt())

	withoutTime := Comment{CommentID: "c2"}
	assert.True(t, withoutTime.CreatedAt().IsZero())
}

func TestWatchURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", WatchURL("abc123"))
}
