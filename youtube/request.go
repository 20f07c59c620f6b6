package youtube

import (
	"time"

	"github.com/google/go-querystring/query"
)

const partSnippet = "snippet"

// searchParams is the wire layout of a search request.
// Each url tag names the query key; omitempty leaves out fields at their
// default so the API applies its own defaults. Types implementing
// query.Encoder (APIKey, Location) provide their own wire form.
type searchParams struct {
	Key                    APIKey          `url:"key"`
	Part                   string          `url:"part"`
	ForContentOwner        bool            `url:"forContentOwner,omitempty"`
	ForDeveloper           bool            `url:"forDeveloper,omitempty"`
	ForMine                bool            `url:"forMine,omitempty"`
	RelatedToVideoID       string          `url:"relatedToVideoId,omitempty"`
	ChannelID              string          `url:"channelId,omitempty"`
	ChannelType            ChannelType     `url:"channelType,omitempty"`
	EventType              EventType       `url:"eventType,omitempty"`
	Location               *Location       `url:"location,omitempty"`
	LocationRadius         string          `url:"locationRadius,omitempty"`
	MaxResults             *uint8          `url:"maxResults,omitempty"`
	OnBehalfOfContentOwner string          `url:"onBehalfOfContentOwner,omitempty"`
	Order                  SearchOrder     `url:"order,omitempty"`
	PageToken              string          `url:"pageToken,omitempty"`
	PublishedAfter         *time.Time      `url:"publishedAfter,omitempty"`
	PublishedBefore        *time.Time      `url:"publishedBefore,omitempty"`
	Q                      string          `url:"q,omitempty"`
	RegionCode             string          `url:"regionCode,omitempty"`
	RelevanceLanguage      string          `url:"relevanceLanguage,omitempty"`
	SafeSearch             SafeSearch      `url:"safeSearch,omitempty"`
	TopicID                string          `url:"topicId,omitempty"`
	ItemType               ItemType        `url:"type,omitempty"`
	VideoCaption           VideoCaption    `url:"videoCaption,omitempty"`
	VideoCategoryID        string          `url:"videoCategoryId,omitempty"`
	VideoDefinition        VideoDefinition `url:"videoDefinition,omitempty"`
	VideoDimension         VideoDimension  `url:"videoDimension,omitempty"`
	VideoDuration          VideoDuration   `url:"videoDuration,omitempty"`
	VideoEmbeddable        bool            `url:"videoEmbeddable,omitempty"`
	VideoLicense           VideoLicense    `url:"videoLicense,omitempty"`
	VideoSyndicated        bool            `url:"videoSyndicated,omitempty"`
	VideoType              VideoType       `url:"videoType,omitempty"`
}

// SearchList is a request for the search endpoint.
//
// SearchList is a value type: every setter returns an updated copy and leaves
// the receiver untouched. Setters do not validate; combinations the API does
// not accept are rejected by the API itself.
type SearchList struct {
	params searchParams
}

// NewSearchList creates a search request authenticated with key
func NewSearchList(key APIKey) SearchList {
	return SearchList{
		params: searchParams{
			Key:  key,
			Part: partSnippet,
		},
	}
}

// Key returns the credential the request is sent with
func (s SearchList) Key() APIKey {
	return s.params.Key
}

// Query returns the free text query, empty when unset
func (s SearchList) Query() string {
	return s.params.Q
}

// Encode serializes the request into a URL query string
func (s SearchList) Encode() (string, error) {
	values, err := query.Values(s.params)
	if err != nil {
		return "", &SerializationError{Err: err}
	}
	return values.Encode(), nil
}

// ForContentOwner restricts the search to content owned by the content owner
func (s SearchList) ForContentOwner() SearchList {
	s.params.ForContentOwner = true
	return s
}

// ForDeveloper restricts the search to videos uploaded through the developer's project
func (s SearchList) ForDeveloper() SearchList {
	s.params.ForDeveloper = true
	return s
}

// ForMine restricts the search to videos owned by the authenticated user
func (s SearchList) ForMine() SearchList {
	s.params.ForMine = true
	return s
}

// RelatedToVideoID searches for videos related to the given video
func (s SearchList) RelatedToVideoID(id string) SearchList {
	s.params.RelatedToVideoID = id
	return s
}

func (s SearchList) ChannelID(id string) SearchList {
	s.params.ChannelID = id
	return s
}

func (s SearchList) ChannelType(t ChannelType) SearchList {
	s.params.ChannelType = t
	return s
}

func (s SearchList) EventType(t EventType) SearchList {
	s.params.EventType = t
	return s
}

// Location sets the center of a geographic search. Use with LocationRadius.
func (s SearchList) Location(l Location) SearchList {
	s.params.Location = &l
	return s
}

// LocationRadius sets the radius around Location, e.g. "100km"
func (s SearchList) LocationRadius(radius string) SearchList {
	s.params.LocationRadius = radius
	return s
}

// MaxResults sets the page size. Zero is a valid value and is sent.
func (s SearchList) MaxResults(n uint8) SearchList {
	s.params.MaxResults = &n
	return s
}

func (s SearchList) OnBehalfOfContentOwner(owner string) SearchList {
	s.params.OnBehalfOfContentOwner = owner
	return s
}

func (s SearchList) Order(o SearchOrder) SearchList {
	s.params.Order = o
	return s
}

// PageToken selects a page returned by a previous response
func (s SearchList) PageToken(token string) SearchList {
	s.params.PageToken = token
	return s
}

// PublishedAfter only returns resources created after t
func (s SearchList) PublishedAfter(t time.Time) SearchList {
	utc := t.UTC()
	s.params.PublishedAfter = &utc
	return s
}

// PublishedBefore only returns resources created before t
func (s SearchList) PublishedBefore(t time.Time) SearchList {
	utc := t.UTC()
	s.params.PublishedBefore = &utc
	return s
}

// Q sets the free text query
func (s SearchList) Q(q string) SearchList {
	s.params.Q = q
	return s
}

func (s SearchList) RegionCode(code string) SearchList {
	s.params.RegionCode = code
	return s
}

func (s SearchList) RelevanceLanguage(lang string) SearchList {
	s.params.RelevanceLanguage = lang
	return s
}

func (s SearchList) SafeSearch(level SafeSearch) SearchList {
	s.params.SafeSearch = level
	return s
}

func (s SearchList) TopicID(id string) SearchList {
	s.params.TopicID = id
	return s
}

// ItemType restricts results to videos, channels or playlists
func (s SearchList) ItemType(t ItemType) SearchList {
	s.params.ItemType = t
	return s
}

func (s SearchList) VideoCaption(c VideoCaption) SearchList {
	s.params.VideoCaption = c
	return s
}

func (s SearchList) VideoCategoryID(id string) SearchList {
	s.params.VideoCategoryID = id
	return s
}

func (s SearchList) VideoDefinition(d VideoDefinition) SearchList {
	s.params.VideoDefinition = d
	return s
}

func (s SearchList) VideoDimension(d VideoDimension) SearchList {
	s.params.VideoDimension = d
	return s
}

func (s SearchList) VideoDuration(d VideoDuration) SearchList {
	s.params.VideoDuration = d
	return s
}

// VideoEmbeddable only returns videos that can be embedded
func (s SearchList) VideoEmbeddable() SearchList {
	s.params.VideoEmbeddable = true
	return s
}

func (s SearchList) VideoLicense(l VideoLicense) SearchList {
	s.params.VideoLicense = l
	return s
}

// VideoSyndicated only returns videos that can be played outside youtube.com
func (s SearchList) VideoSyndicated() SearchList {
	s.params.VideoSyndicated = true
	return s
}

func (s SearchList) VideoType(t VideoType) SearchList {
	s.params.VideoType = t
	return s
}
