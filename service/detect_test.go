// ABOUTME: Tests for the strict-after change detection filter
// ABOUTME: Covers boundary equality, missing timestamps, ordering and idempotence

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"youtube-trigger-sidecar/models"
)

func TestDetectNew(t *testing.T) {
	watermark := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		candidates []models.Video
		expected   []string // VideoIDs in expected output order
	}{
		"all_after_watermark": {
			candidates: []models.Video{
				{VideoID: "a", PublishedAt: timePtr(watermark.Add(2 * time.Minute))},
				{VideoID: "b", PublishedAt: timePtr(watermark.Add(1 * time.Minute))},
			},
			expected: []string{"a", "b"},
		},
		"all_before_watermark": {
			candidates: []models.Video{
				{VideoID: "a", PublishedAt: timePtr(watermark.Add(-2 * time.Minute))},
				{VideoID: "b", PublishedAt: timePtr(watermark.Add(-1 * time.Hour))},
			},
			expected: nil,
		},
		"exactly_at_watermark_excluded": {
			candidates: []models.Video{
				{VideoID: "boundary", PublishedAt: timePtr(watermark)},
				{VideoID: "after", PublishedAt: timePtr(watermark.Add(time.Second))},
			},
			expected: []string{"after"},
		},
		"missing_timestamp_dropped": {
			candidates: []models.Video{
				{VideoID: "no-time", PublishedAt: nil},
				{VideoID: "recent", PublishedAt: timePtr(watermark.Add(time.Minute))},
			},
			expected: []string{"recent"},
		},
		"fetch_order_preserved_not_resorted": {
			// API returns newest-first; the filter must not reorder by timestamp
			candidates: []models.Video{
				{VideoID: "newest", PublishedAt: timePtr(watermark.Add(10 * time.Minute))},
				{VideoID: "middle", PublishedAt: timePtr(watermark.Add(5 * time.Minute))},
				{VideoID: "too-old", PublishedAt: timePtr(watermark.Add(-time.Minute))},
				{VideoID: "oldest-new", PublishedAt: timePtr(watermark.Add(time.Minute))},
			},
			expected: []string{"newest", "middle", "oldest-new"},
		},
		"empty_input": {
			candidates: []models.Video{},
			expected:   nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			fresh := DetectNew(tc.candidates, watermark)

			var gotIDs []string
			for _, video := range fresh {
				gotIDs = append(gotIDs, video.VideoID)
			}
			assert.Equal(t, tc.expected, gotIDs)
		})
	}
}

func TestDetectNew_Idempotent(t *testing.T) {
	watermark := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	candidates := []models.Comment{
		{CommentID: "c1", PublishedAt: timePtr(watermark.Add(time.Minute))},
		{CommentID: "c2", PublishedAt: timePtr(watermark.Add(-time.Minute))},
		{CommentID: "c3", PublishedAt: timePtr(watermark.Add(2 * time.Minute))},
	}

	once := DetectNew(candidates, watermark)
	twice := DetectNew(once, watermark)

	assert.Equal(t, once, twice)
	assert.Len(t, once, 2)
}
