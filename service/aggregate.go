// ABOUTME: Aggregation of new-item sets into one cycle result
// ABOUTME: Representative selection and multi-source merge rules

package service

// CycleResult is the outcome of one poll cycle that found new items.
// Constructed fresh each cycle, never mutated, discarded after emission.
type CycleResult[T Timestamped] struct {
	// Representative is always NewItems[0]: the first new item in fetch
	// order, not necessarily the earliest by timestamp. This mirrors the
	// upstream trigger contract and must not be changed to
	// earliest-timestamp selection.
	Representative T
	NewItems       []T
	Count          int
}

// Aggregate builds a cycle result from one source's new-item set.
// Returns nil when the set is empty: no result, no event.
func Aggregate[T Timestamped](newItems []T) *CycleResult[T] {
	if len(newItems) == 0 {
		return nil
	}

	return &CycleResult[T]{
		Representative: newItems[0],
		NewItems:       newItems,
		Count:          len(newItems),
	}
}

// MergeSources merges per-source new-item sets into a single cycle result.
// perSource must be indexed in configuration order; the merged set is the
// concatenation in that order, so the representative ends up being the first
// item of the first source that had any new items. Returns nil when no
// source had new items.
func MergeSources[T Timestamped](perSource [][]T) *CycleResult[T] {
	var merged []T
	for _, items := range perSource {
		merged = append(merged, items...)
	}
	return Aggregate(merged)
}
