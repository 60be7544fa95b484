// ABOUTME: Watermark calculation for polling trigger cycles
// ABOUTME: Derives the "checked up to" instant from scheduler metadata

package service

import (
	"time"
)

// Clock supplies the current time; injected so cycles are testable
type Clock func() time.Time

// Watermark derives the instant below which items are considered already
// seen for this cycle:
//
//	watermark = (scheduledRun ?? now) - pollInterval
//
// scheduledRun is the instant this cycle was scheduled to fire, so the
// window covers the interval leading up to the fire even when the cycle
// actually runs late. The watermark is recomputed every cycle from scheduler
// metadata, a sliding window exactly one interval wide, not a persisted
// high-water mark. On a manually requested cycle scheduledRun is unknown and
// the window falls back to the last interval of wall-clock time, which may
// report items created before the trigger was installed. That is deliberate:
// the sidecar keeps no cross-cycle state.
func Watermark(clock Clock, scheduledRun *time.Time, pollInterval time.Duration) time.Time {
	if scheduledRun != nil {
		return scheduledRun.Add(-pollInterval)
	}
	return clock().Add(-pollInterval)
}
