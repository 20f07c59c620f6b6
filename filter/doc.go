// Package filter narrows YouTube search results with expr-lang expressions.
//
// An expression sees the fields of a single result as top-level variables
// (Title, Description, ChannelTitle, ChannelID, Kind, ID, URL, Live,
// PublishedAt, HasPublished, HasThumbnail) together with a small set of
// helpers:
//
//	icontains(Title, "tutorial") and Kind == "video"
//	HasPublished and daysSince(PublishedAt) < 30
//	istartsWith(ChannelTitle, "rust") or Live == "live"
//
// String helpers compare case-insensitively.
package filter
