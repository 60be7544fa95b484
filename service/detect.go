// ABOUTME: Incremental change detection against a cycle watermark
// ABOUTME: Order-preserving strict-after filter shared by all polling triggers

package service

import (
	"time"
)

// Timestamped is the only thing detection needs to know about a candidate
// item. CreatedAt returns the zero time when the creation instant is missing
// or unparseable.
type Timestamped interface {
	CreatedAt() time.Time
}

// DetectNew filters candidates to those created strictly after the
// watermark. Strict comparison matters: an item created exactly at the
// watermark was reported by the previous cycle when the schedule lands on
// its timestamp, so it is excluded here.
//
// Input order is preserved (API-reported fetch order, not re-sorted), and
// items without a creation time are dropped rather than failing the cycle.
func DetectNew[T Timestamped](candidates []T, watermark time.Time) []T {
	var fresh []T
	for _, candidate := range candidates {
		created := candidate.CreatedAt()
		if created.IsZero() {
			continue
		}
		if created.After(watermark) {
			fresh = append(fresh, candidate)
		}
	}
	return fresh
}
