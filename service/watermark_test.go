// ABOUTME: Tests for cycle watermark derivation
// ABOUTME: Covers scheduler-driven and wall-clock fallback windows

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"youtube-trigger-sidecar/models"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestWatermark(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fixedClock := func() time.Time { return now }

	tests := map[string]struct {
		scheduledRun *time.Time
		pollInterval time.Duration
		expected     time.Time
	}{
		"scheduled_run_known_window_precedes_fire": {
			scheduledRun: timePtr(now),
			pollInterval: 30 * time.Minute,
			expected:     now.Add(-30 * time.Minute),
		},
		"scheduled_run_unknown_falls_back_to_clock": {
			scheduledRun: nil,
			pollInterval: 30 * time.Minute,
			expected:     now.Add(-30 * time.Minute),
		},
		"hourly_interval": {
			scheduledRun: timePtr(now),
			pollInterval: time.Hour,
			expected:     now.Add(-time.Hour),
		},
		"delayed_fire_stays_aligned_to_schedule": {
			// Cycle was planned for five minutes ago but actually runs now;
			// the window stays anchored to the planned instant rather than
			// to the late fire time.
			scheduledRun: timePtr(now.Add(-5 * time.Minute)),
			pollInterval: 30 * time.Minute,
			expected:     now.Add(-35 * time.Minute),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := Watermark(fixedClock, tc.scheduledRun, tc.pollInterval)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestWatermark_ScheduledCycleSeesRecentItem(t *testing.T) {
	// An evaluation at T with scheduler metadata T and a 30-minute interval
	// must report an item created at T-10m: the window covers the interval
	// leading up to the fire, not the interval after it.
	fire := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	interval := 30 * time.Minute

	watermark := Watermark(func() time.Time { return fire }, &fire, interval)
	assert.Equal(t, fire.Add(-interval), watermark)

	video := models.Video{VideoID: "v1", PublishedAt: timePtr(fire.Add(-10 * time.Minute))}
	assert.Equal(t, []models.Video{video}, DetectNew([]models.Video{video}, watermark))
}

func TestWatermark_ConsecutiveCyclesTile(t *testing.T) {
	// Two consecutive 30-minute cycles. Each item lands in exactly one
	// cycle's window, so nothing is reported twice and nothing is skipped.
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	interval := 30 * time.Minute

	firstFire := base
	firstWatermark := Watermark(func() time.Time { return firstFire }, &firstFire, interval)

	secondFire := base.Add(interval)
	secondWatermark := Watermark(func() time.Time { return secondFire }, &secondFire, interval)

	assert.Equal(t, firstWatermark.Add(interval), secondWatermark)

	// A video published during the first window is detected by the first
	// cycle, then excluded by the second cycle's higher watermark even
	// though the API still returns it.
	video := models.Video{VideoID: "v1", PublishedAt: timePtr(base.Add(-15 * time.Minute))}

	assert.Equal(t, []models.Video{video}, DetectNew([]models.Video{video}, firstWatermark))
	assert.Empty(t, DetectNew([]models.Video{video}, secondWatermark))
}
