package youtube

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// SearchListResponse is the envelope returned by the search endpoint
type SearchListResponse struct {
	Kind          string         `json:"kind"`
	Etag          string         `json:"etag"`
	NextPageToken *string        `json:"nextPageToken,omitempty"`
	PrevPageToken *string        `json:"prevPageToken,omitempty"`
	RegionCode    string         `json:"regionCode"`
	PageInfo      PageInfo       `json:"pageInfo"`
	Items         []SearchResult `json:"items"`
}

// PageInfo contains paging details for the result set
type PageInfo struct {
	TotalResults   int64 `json:"totalResults"`
	ResultsPerPage int64 `json:"resultsPerPage"`
}

// SearchResult is a single video, channel or playlist matching the search
type SearchResult struct {
	Kind    string              `json:"kind"`
	Etag    string              `json:"etag"`
	ID      SearchResultID      `json:"id"`
	Snippet SearchResultSnippet `json:"snippet"`
}

// SearchResultID identifies the matched resource. Exactly one of the ids is
// populated, as indicated by Kind.
type SearchResultID struct {
	Kind       string  `json:"kind"`
	VideoID    *string `json:"videoId,omitempty"`
	ChannelID  *string `json:"channelId,omitempty"`
	PlaylistID *string `json:"playlistId,omitempty"`
}

// SearchResultSnippet holds the basic details of a result.
// The API omits fields it has no value for, so every field is optional.
type SearchResultSnippet struct {
	PublishedAt          *time.Time  `json:"publishedAt,omitempty"`
	ChannelID            *string     `json:"channelId,omitempty"`
	Title                *string     `json:"title,omitempty"`
	Description          *string     `json:"description,omitempty"`
	Thumbnails           *Thumbnails `json:"thumbnails,omitempty"`
	ChannelTitle         *string     `json:"channelTitle,omitempty"`
	LiveBroadcastContent *string     `json:"liveBroadcastContent,omitempty"`
}

// Thumbnails is the set of thumbnail resolutions for a result
type Thumbnails struct {
	Default  *Thumbnail `json:"default,omitempty"`
	Medium   *Thumbnail `json:"medium,omitempty"`
	High     *Thumbnail `json:"high,omitempty"`
	Standard *Thumbnail `json:"standard,omitempty"`
	Maxres   *Thumbnail `json:"maxres,omitempty"`
}

// Thumbnail is a single thumbnail image
type Thumbnail struct {
	URL    string  `json:"url"`
	Width  *uint64 `json:"width,omitempty"`
	Height *uint64 `json:"height,omitempty"`
}

// ResourceKind returns the id kind without the "youtube#" prefix
func (id SearchResultID) ResourceKind() string {
	return strings.TrimPrefix(id.Kind, "youtube#")
}

// Value returns whichever id is populated
func (id SearchResultID) Value() string {
	switch {
	case id.VideoID != nil:
		return *id.VideoID
	case id.ChannelID != nil:
		return *id.ChannelID
	case id.PlaylistID != nil:
		return *id.PlaylistID
	}
	return ""
}

// URL returns the youtube.com link for the populated id
func (id SearchResultID) URL() string {
	switch {
	case id.VideoID != nil:
		return "https://www.youtube.com/watch?v=" + *id.VideoID
	case id.ChannelID != nil:
		return "https://www.youtube.com/channel/" + *id.ChannelID
	case id.PlaylistID != nil:
		return "https://www.youtube.com/playlist?list=" + *id.PlaylistID
	}
	return ""
}

// Best returns the highest resolution thumbnail available, or nil
func (t *Thumbnails) Best() *Thumbnail {
	if t == nil {
		return nil
	}
	for _, thumb := range []*Thumbnail{t.Maxres, t.Standard, t.High, t.Medium, t.Default} {
		if thumb != nil {
			return thumb
		}
	}
	return nil
}

// deref returns the pointed-to string or "" for nil
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Keys that must be present and non-null in a search response
var (
	responseFields = []string{"kind", "etag", "regionCode", "pageInfo", "items"}
	pageInfoFields = []string{"totalResults", "resultsPerPage"}
	resultFields   = []string{"kind", "etag", "id", "snippet"}
	resultIDFields = []string{"kind"}
)

// decodeResponse decodes body into a SearchListResponse. Bodies that are
// not valid JSON, have mistyped fields or lack a required key fail with a
// DeserializationError.
func decodeResponse(body string) (*SearchListResponse, error) {
	var result SearchListResponse
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		return nil, &DeserializationError{Body: body, Err: err}
	}
	if err := checkRequiredFields(gjson.Parse(body)); err != nil {
		return nil, &DeserializationError{Body: body, Err: err}
	}
	return &result, nil
}

func checkRequiredFields(root gjson.Result) error {
	if !root.IsObject() {
		return fmt.Errorf("%w: response is not a JSON object", ErrMissingField)
	}
	if err := requireKeys(root, "", responseFields); err != nil {
		return err
	}
	if err := requireKeys(root.Get("pageInfo"), "pageInfo.", pageInfoFields); err != nil {
		return err
	}

	for i, item := range root.Get("items").Array() {
		prefix := fmt.Sprintf("items.%d.", i)
		if err := requireKeys(item, prefix, resultFields); err != nil {
			return err
		}
		if err := requireKeys(item.Get("id"), prefix+"id.", resultIDFields); err != nil {
			return err
		}
	}
	return nil
}

func requireKeys(obj gjson.Result, prefix string, keys []string) error {
	for _, key := range keys {
		if v := obj.Get(key); !v.Exists() || v.Type == gjson.Null {
			return fmt.Errorf("%w: %s%s", ErrMissingField, prefix, key)
		}
	}
	return nil
}
