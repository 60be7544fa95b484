// ABOUTME: Tests for cycle result aggregation and multi-source merging
// ABOUTME: Representative selection follows fetch order, never timestamps

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"youtube-trigger-sidecar/models"
)

func TestAggregate(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		newItems          []models.Video
		expectNil         bool
		expectedRepresent string
		expectedCount     int
	}{
		"empty_set_yields_no_result": {
			newItems:  nil,
			expectNil: true,
		},
		"single_item": {
			newItems: []models.Video{
				{VideoID: "only", PublishedAt: timePtr(base)},
			},
			expectedRepresent: "only",
			expectedCount:     1,
		},
		"representative_is_first_in_fetch_order": {
			// The second item has the earlier timestamp; the representative
			// must still be the first item as fetched.
			newItems: []models.Video{
				{VideoID: "first-fetched", PublishedAt: timePtr(base.Add(time.Hour))},
				{VideoID: "earliest", PublishedAt: timePtr(base)},
				{VideoID: "last", PublishedAt: timePtr(base.Add(30 * time.Minute))},
			},
			expectedRepresent: "first-fetched",
			expectedCount:     3,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			result := Aggregate(tc.newItems)

			if tc.expectNil {
				assert.Nil(t, result)
				return
			}

			assert.NotNil(t, result)
			assert.Equal(t, tc.expectedRepresent, result.Representative.VideoID)
			assert.Equal(t, tc.expectedCount, result.Count)
			assert.Len(t, result.NewItems, tc.expectedCount)
			assert.Equal(t, result.NewItems[0], result.Representative)
		})
	}
}

func TestMergeSources(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	video := func(id string) models.Video {
		return models.Video{VideoID: id, PublishedAt: timePtr(base)}
	}

	tests := map[string]struct {
		perSource         [][]models.Video
		expectNil         bool
		expectedOrder     []string
		expectedRepresent string
	}{
		"no_sources": {
			perSource: nil,
			expectNil: true,
		},
		"all_sources_empty": {
			perSource: [][]models.Video{nil, nil, nil},
			expectNil: true,
		},
		"concatenated_in_source_order": {
			perSource: [][]models.Video{
				{video("id1"), video("id2")},
				{video("id3")},
			},
			expectedOrder:     []string{"id1", "id2", "id3"},
			expectedRepresent: "id1",
		},
		"first_source_empty_representative_from_second": {
			perSource: [][]models.Video{
				nil,
				{video("id3"), video("id4")},
			},
			expectedOrder:     []string{"id3", "id4"},
			expectedRepresent: "id3",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			result := MergeSources(tc.perSource)

			if tc.expectNil {
				assert.Nil(t, result)
				return
			}

			assert.NotNil(t, result)

			var gotIDs []string
			for _, item := range result.NewItems {
				gotIDs = append(gotIDs, item.VideoID)
			}
			assert.Equal(t, tc.expectedOrder, gotIDs)
			assert.Equal(t, tc.expectedRepresent, result.Representative.VideoID)
			assert.Equal(t, len(tc.expectedOrder), result.Count)
		})
	}
}
