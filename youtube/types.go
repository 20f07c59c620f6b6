package youtube

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEnum indicates a value that is not one of the wire tokens of an enum
var ErrInvalidEnum = errors.New("invalid enum value")

// ChannelType restricts a channel search to a channel type
type ChannelType string

const (
	// ChannelTypeAny returns all channels
	ChannelTypeAny ChannelType = "any"
	// ChannelTypeShow only returns shows
	ChannelTypeShow ChannelType = "show"
)

// EventType restricts a search to broadcast events
type EventType string

const (
	EventTypeCompleted EventType = "completed"
	EventTypeLive      EventType = "live"
	EventTypeUpcoming  EventType = "upcoming"
)

// SearchOrder is the ordering of search results
type SearchOrder string

const (
	SearchOrderDate       SearchOrder = "date"
	SearchOrderRating     SearchOrder = "rating"
	SearchOrderRelevance  SearchOrder = "relevance"
	SearchOrderTitle      SearchOrder = "title"
	SearchOrderVideoCount SearchOrder = "videoCount"
	SearchOrderViewCount  SearchOrder = "viewCount"
)

// SafeSearch controls restricted content filtering
type SafeSearch string

const (
	SafeSearchModerate SafeSearch = "moderate"
	SafeSearchNone     SafeSearch = "none"
	SafeSearchStrict   SafeSearch = "strict"
)

// ItemType restricts a search to a resource type. It is sent as "type".
type ItemType string

const (
	ItemTypeChannel  ItemType = "channel"
	ItemTypePlaylist ItemType = "playlist"
	ItemTypeVideo    ItemType = "video"
)

// VideoCaption filters videos by caption availability
type VideoCaption string

const (
	VideoCaptionAny           VideoCaption = "any"
	VideoCaptionClosedCaption VideoCaption = "closedCaption"
	VideoCaptionNone          VideoCaption = "none"
)

// VideoDefinition filters videos by resolution class
type VideoDefinition string

const (
	VideoDefinitionAny      VideoDefinition = "any"
	VideoDefinitionHigh     VideoDefinition = "high"
	VideoDefinitionStandard VideoDefinition = "standard"
)

// VideoDimension filters 2D and 3D videos.
// The wire tokens are "3d" and "2d" rather than camel-case words.
type VideoDimension string

const (
	VideoDimensionAny   VideoDimension = "any"
	VideoDimensionThree VideoDimension = "3d"
	VideoDimensionTwo   VideoDimension = "2d"
)

// VideoDuration filters videos by length
type VideoDuration string

const (
	VideoDurationAny    VideoDuration = "any"
	VideoDurationLong   VideoDuration = "long"
	VideoDurationMedium VideoDuration = "medium"
	VideoDurationShort  VideoDuration = "short"
)

// VideoLicense filters videos by license
type VideoLicense string

const (
	VideoLicenseAny            VideoLicense = "any"
	VideoLicenseCreativeCommon VideoLicense = "creativeCommon"
	VideoLicenseYoutube        VideoLicense = "youtube"
)

// VideoType filters videos by type
type VideoType string

const (
	VideoTypeAny     VideoType = "any"
	VideoTypeEpisode VideoType = "episode"
	VideoTypeMovie   VideoType = "movie"
)

func (t ChannelType) String() string     { return string(t) }
func (t EventType) String() string       { return string(t) }
func (o SearchOrder) String() string     { return string(o) }
func (s SafeSearch) String() string      { return string(s) }
func (t ItemType) String() string        { return string(t) }
func (c VideoCaption) String() string    { return string(c) }
func (d VideoDefinition) String() string { return string(d) }
func (d VideoDimension) String() string  { return string(d) }
func (d VideoDuration) String() string   { return string(d) }
func (l VideoLicense) String() string    { return string(l) }
func (t VideoType) String() string       { return string(t) }

// parseToken matches s case-insensitively against the wire tokens of an enum
func parseToken[T ~string](kind, s string, tokens ...T) (T, error) {
	for _, tok := range tokens {
		if strings.EqualFold(string(tok), strings.TrimSpace(s)) {
			return tok, nil
		}
	}
	valid := make([]string, len(tokens))
	for i, tok := range tokens {
		valid[i] = string(tok)
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q (must be one of %s)", ErrInvalidEnum, kind, s, strings.Join(valid, ", "))
}

// ParseChannelType parses a channel type wire token
func ParseChannelType(s string) (ChannelType, error) {
	return parseToken("channel type", s, ChannelTypeAny, ChannelTypeShow)
}

// ParseEventType parses an event type wire token
func ParseEventType(s string) (EventType, error) {
	return parseToken("event type", s, EventTypeCompleted, EventTypeLive, EventTypeUpcoming)
}

// ParseSearchOrder parses an order wire token
func ParseSearchOrder(s string) (SearchOrder, error) {
	return parseToken("order", s,
		SearchOrderDate, SearchOrderRating, SearchOrderRelevance,
		SearchOrderTitle, SearchOrderVideoCount, SearchOrderViewCount)
}

// ParseSafeSearch parses a safe search wire token
func ParseSafeSearch(s string) (SafeSearch, error) {
	return parseToken("safe search", s, SafeSearchModerate, SafeSearchNone, SafeSearchStrict)
}

// ParseItemType parses an item type wire token
func ParseItemType(s string) (ItemType, error) {
	return parseToken("item type", s, ItemTypeChannel, ItemTypePlaylist, ItemTypeVideo)
}

// ParseVideoCaption parses a video caption wire token
func ParseVideoCaption(s string) (VideoCaption, error) {
	return parseToken("video caption", s, VideoCaptionAny, VideoCaptionClosedCaption, VideoCaptionNone)
}

// ParseVideoDefinition parses a video definition wire token
func ParseVideoDefinition(s string) (VideoDefinition, error) {
	return parseToken("video definition", s, VideoDefinitionAny, VideoDefinitionHigh, VideoDefinitionStandard)
}

// ParseVideoDimension parses a video dimension wire token
func ParseVideoDimension(s string) (VideoDimension, error) {
	return parseToken("video dimension", s, VideoDimensionAny, VideoDimensionThree, VideoDimensionTwo)
}

// ParseVideoDuration parses a video duration wire token
func ParseVideoDuration(s string) (VideoDuration, error) {
	return parseToken("video duration", s,
		VideoDurationAny, VideoDurationLong, VideoDurationMedium, VideoDurationShort)
}

// ParseVideoLicense parses a video license wire token
func ParseVideoLicense(s string) (VideoLicense, error) {
	return parseToken("video license", s, VideoLicenseAny, VideoLicenseCreativeCommon, VideoLicenseYoutube)
}

// ParseVideoType parses a video type wire token
func ParseVideoType(s string) (VideoType, error) {
	return parseToken("video type", s, VideoTypeAny, VideoTypeEpisode, VideoTypeMovie)
}
