// ABOUTME: Tests for the YouTube Data API client
// ABOUTME: Uses httptest servers returning canned API responses

package driver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYouTubeClient_ResolveUploadsPlaylist(t *testing.T) {
	tests := map[string]struct {
		responseBody     string
		expectedPlaylist string
	}{
		"channel_found": {
			responseBody: `{
				"kind": "youtube#channelListResponse",
				"items": [{
					"id": "UC1",
					"contentDetails": {"relatedPlaylists": {"uploads": "UU1"}}
				}]
			}`,
			expectedPlaylist: "UU1",
		},
		"channel_absent_returns_empty_not_error": {
			responseBody:     `{"kind": "youtube#channelListResponse", "items": []}`,
			expectedPlaylist: "",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/channels", r.URL.Path)
				assert.Equal(t, "contentDetails", r.URL.Query().Get("part"))
				assert.Equal(t, "UC1", r.URL.Query().Get("id"))
				assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tc.responseBody))
			}))
			defer server.Close()

			client := NewYouTubeClient(server.URL, "", nil)

			playlistID, err := client.ResolveUploadsPlaylist(context.Background(), "test_token", "UC1")
			require.NoError(t, err)
			assert.Equal(t, tc.expectedPlaylist, playlistID)
		})
	}
}

func TestYouTubeClient_FetchPlaylistItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/playlistItems", r.URL.Path)
		assert.Equal(t, "snippet", r.URL.Query().Get("part"))
		assert.Equal(t, "UU1", r.URL.Query().Get("playlistId"))
		assert.Equal(t, "10", r.URL.Query().Get("maxResults"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"kind": "youtube#playlistItemListResponse",
			"items": [
				{
					"id": "pli1",
					"snippet": {
						"publishedAt": "2025-06-01T12:30:00Z",
						"channelId": "UC1",
						"channelTitle": "Test Channel",
						"title": "Newest upload",
						"description": "desc",
						"resourceId": {"kind": "youtube#video", "videoId": "vid_new"},
						"thumbnails": {"default": {"url": "https://i.ytimg.com/vi/vid_new/default.jpg"}}
					}
				},
				{
					"id": "pli2",
					"snippet": {
						"publishedAt": "not-a-timestamp",
						"channelId": "UC1",
						"channelTitle": "Test Channel",
						"title": "Broken timestamp",
						"resourceId": {"kind": "youtube#video", "videoId": "vid_broken"}
					}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewYouTubeClient(server.URL, "", nil)

	videos, err := client.FetchPlaylistItems(context.Background(), "test_token", "UU1", 10)
	require.NoError(t, err)
	require.Len(t, videos, 2)

	assert.Equal(t, "vid_new", videos[0].VideoID)
	assert.Equal(t, "Newest upload", videos[0].Title)
	assert.Equal(t, "UC1", videos[0].ChannelID)
	assert.Equal(t, "https://www.youtube.com/watch?v=vid_new", videos[0].VideoURL)
	assert.Equal(t, "https://i.ytimg.com/vi/vid_new/default.jpg", videos[0].ThumbnailURL)
	require.NotNil(t, videos[0].PublishedAt)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC), videos[0].PublishedAt.UTC())

	// Unparseable publishedAt comes through as nil, not as a failed call
	assert.Equal(t, "vid_broken", videos[1].VideoID)
	assert.Nil(t, videos[1].PublishedAt)
	assert.True(t, videos[1].CreatedAt().IsZero())
}

func TestYouTubeClient_FetchPlaylistItems_PageSizeClamped(t *testing.T) {
	tests := map[string]struct {
		requested string
		maxParam  int
	}{
		"zero_clamped_to_min":      {requested: "1", maxParam: 0},
		"negative_clamped_to_min":  {requested: "1", maxParam: -5},
		"oversized_clamped_to_max": {requested: "50", maxParam: 500},
		"in_range_passed_through":  {requested: "25", maxParam: 25},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tc.requested, r.URL.Query().Get("maxResults"))
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"items": []}`))
			}))
			defer server.Close()

			client := NewYouTubeClient(server.URL, "", nil)

			_, err := client.FetchPlaylistItems(context.Background(), "test_token", "UU1", tc.maxParam)
			require.NoError(t, err)
		})
	}
}

func TestYouTubeClient_FetchCommentThreads(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/commentThreads", r.URL.Path)
		assert.Equal(t, "vid1", r.URL.Query().Get("videoId"))
		assert.Equal(t, "time", r.URL.Query().Get("order"))
		assert.Equal(t, "100", r.URL.Query().Get("maxResults"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"kind": "youtube#commentThreadListResponse",
			"items": [{
				"id": "thread1",
				"snippet": {
					"topLevelComment": {
						"id": "thread1",
						"snippet": {
							"textDisplay": "First!",
							"authorDisplayName": "Commenter",
							"publishedAt": "2025-06-01T12:05:00Z"
						}
					}
				}
			}]
		}`))
	}))
	defer server.Close()

	client := NewYouTubeClient(server.URL, "", nil)

	// Invalid order falls back to "time"; oversized page size clamps to 100
	comments, err := client.FetchCommentThreads(context.Background(), "test_token", "vid1", 1000, "bogus")
	require.NoError(t, err)
	require.Len(t, comments, 1)

	assert.Equal(t, "thread1", comments[0].CommentID)
	assert.Equal(t, "vid1", comments[0].VideoID)
	assert.Equal(t, "First!", comments[0].TextDisplay)
	assert.Equal(t, "Commenter", comments[0].AuthorDisplayName)
	require.NotNil(t, comments[0].PublishedAt)
}

func TestYouTubeClient_FetchVideoStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "statistics,snippet,contentDetails", r.URL.Query().Get("part"))
		assert.Equal(t, "v1,v2", r.URL.Query().Get("id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"kind": "youtube#videoListResponse",
			"items": [
				{
					"id": "v1",
					"statistics": {"viewCount": "1000", "likeCount": "50", "commentCount": "7", "favoriteCount": "0"},
					"snippet": {"title": "Video one", "channelId": "UC1", "channelTitle": "Chan", "publishedAt": "2025-05-01T00:00:00Z", "thumbnails": {}},
					"contentDetails": {"duration": "PT4M13S", "dimension": "2d", "definition": "hd"}
				},
				{
					"id": "v2",
					"statistics": {"viewCount": "not-a-number"}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewYouTubeClient(server.URL, "", nil)

	stats, err := client.FetchVideoStats(context.Background(), "test_token", []string{"v1", "v2"}, true, true, 5)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, int64(1000), stats[0].ViewCount)
	assert.Equal(t, int64(50), stats[0].LikeCount)
	assert.Equal(t, "Video one", stats[0].Title)
	assert.Equal(t, "PT4M13S", stats[0].Duration)
	assert.Equal(t, "hd", stats[0].Definition)

	// Malformed counters parse to zero rather than failing the call
	assert.Equal(t, int64(0), stats[1].ViewCount)
}

func TestYouTubeClient_ErrorMapping(t *testing.T) {
	tests := map[string]struct {
		statusCode  int
		body        string
		expectedErr error
	}{
		"401_maps_to_authentication_failed": {
			statusCode:  http.StatusUnauthorized,
			body:        `{"error": {"code": 401, "message": "Invalid Credentials", "errors": [{"reason": "authError"}]}}`,
			expectedErr: ErrAuthenticationFailed,
		},
		"403_quota_exceeded": {
			statusCode:  http.StatusForbidden,
			body:        `{"error": {"code": 403, "message": "Quota exceeded", "errors": [{"reason": "quotaExceeded"}]}}`,
			expectedErr: ErrQuotaExceeded,
		},
		"429_maps_to_quota_exceeded": {
			statusCode:  http.StatusTooManyRequests,
			body:        `{"error": {"code": 429, "message": "Too many requests"}}`,
			expectedErr: ErrQuotaExceeded,
		},
		"404_maps_to_not_found": {
			statusCode:  http.StatusNotFound,
			body:        `{"error": {"code": 404, "message": "Playlist not found", "errors": [{"reason": "playlistNotFound"}]}}`,
			expectedErr: ErrNotFound,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewYouTubeClient(server.URL, "", nil)

			_, err := client.FetchPlaylistItems(context.Background(), "bad_token", "UU1", 10)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}
