// ABOUTME: YouTube Data API v3 response structures - Driver Layer
// ABOUTME: Typed JSON bindings for channels, playlistItems, commentThreads and videos

package driver

// ChannelListResponse represents the response from the channels.list endpoint.
// Based on official documentation: https://developers.google.com/youtube/v3/docs/channels/list
type ChannelListResponse struct {
	Kind  string        `json:"kind"`
	Etag  string        `json:"etag"`
	Items []ChannelItem `json:"items"`
}

// ChannelItem carries the content details needed to resolve the uploads playlist
type ChannelItem struct {
	Kind           string `json:"kind"`
	ID             string `json:"id"`
	ContentDetails struct {
		RelatedPlaylists struct {
			Uploads string `json:"uploads"`
			Likes   string `json:"likes,omitempty"`
		} `json:"relatedPlaylists"`
	} `json:"contentDetails"`
}

// PlaylistItemListResponse represents the response from the playlistItems.list endpoint
type PlaylistItemListResponse struct {
	Kind          string         `json:"kind"`
	Etag          string         `json:"etag"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
	Items         []PlaylistItem `json:"items"`
	PageInfo      PageInfo       `json:"pageInfo"`
}

// PlaylistItem represents one entry of an uploads playlist
type PlaylistItem struct {
	Kind    string `json:"kind"`
	ID      string `json:"id"`
	Snippet struct {
		PublishedAt  string     `json:"publishedAt"` // RFC 3339
		ChannelID    string     `json:"channelId"`
		Title        string     `json:"title"`
		Description  string     `json:"description"`
		ChannelTitle string     `json:"channelTitle"`
		Thumbnails   Thumbnails `json:"thumbnails"`
		ResourceID   struct {
			Kind    string `json:"kind"`
			VideoID string `json:"videoId"`
		} `json:"resourceId"`
	} `json:"snippet"`
}

// CommentThreadListResponse represents the response from the commentThreads.list endpoint
type CommentThreadListResponse struct {
	Kind          string          `json:"kind"`
	Etag          string          `json:"etag"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
	Items         []CommentThread `json:"items"`
	PageInfo      PageInfo        `json:"pageInfo"`
}

// CommentThread represents one comment thread; only the top-level comment is used
type CommentThread struct {
	Kind    string `json:"kind"`
	ID      string `json:"id"`
	Snippet struct {
		VideoID         string `json:"videoId"`
		TopLevelComment struct {
			ID      string `json:"id"`
			Snippet struct {
				VideoID           string `json:"videoId"`
				TextDisplay       string `json:"textDisplay"`
				AuthorDisplayName string `json:"authorDisplayName"`
				PublishedAt       string `json:"publishedAt"` // RFC 3339
				UpdatedAt         string `json:"updatedAt,omitempty"`
			} `json:"snippet"`
		} `json:"topLevelComment"`
		TotalReplyCount int  `json:"totalReplyCount"`
		CanReply        bool `json:"canReply"`
	} `json:"snippet"`
}

// VideoListResponse represents the response from the videos.list endpoint
type VideoListResponse struct {
	Kind     string      `json:"kind"`
	Etag     string      `json:"etag"`
	Items    []VideoItem `json:"items"`
	PageInfo PageInfo    `json:"pageInfo"`
}

// VideoItem represents one video with the parts requested by the stats task
type VideoItem struct {
	Kind       string `json:"kind"`
	ID         string `json:"id"`
	Statistics *struct {
		ViewCount     string `json:"viewCount"`
		LikeCount     string `json:"likeCount"`
		DislikeCount  string `json:"dislikeCount,omitempty"`
		FavoriteCount string `json:"favoriteCount"`
		CommentCount  string `json:"commentCount"`
	} `json:"statistics,omitempty"`
	Snippet *struct {
		PublishedAt  string     `json:"publishedAt"`
		ChannelID    string     `json:"channelId"`
		Title        string     `json:"title"`
		Description  string     `json:"description"`
		ChannelTitle string     `json:"channelTitle"`
		Thumbnails   Thumbnails `json:"thumbnails"`
	} `json:"snippet,omitempty"`
	ContentDetails *struct {
		Duration   string `json:"duration"`
		Dimension  string `json:"dimension"`
		Definition string `json:"definition"`
	} `json:"contentDetails,omitempty"`
}

// Thumbnails holds the thumbnail variants; only the default URL is surfaced
type Thumbnails struct {
	Default  *Thumbnail `json:"default,omitempty"`
	Medium   *Thumbnail `json:"medium,omitempty"`
	High     *Thumbnail `json:"high,omitempty"`
	Standard *Thumbnail `json:"standard,omitempty"`
}

// Thumbnail is a single thumbnail image reference
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// PageInfo carries paging metadata returned by list endpoints
type PageInfo struct {
	TotalResults   int `json:"totalResults"`
	ResultsPerPage int `json:"resultsPerPage"`
}

// APIErrorResponse represents an error payload returned by the YouTube Data API
type APIErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Message string `json:"message"`
			Domain  string `json:"domain"`
			Reason  string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}
