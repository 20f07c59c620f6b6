package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/ytsearch/config"
	"github.com/s0up4200/ytsearch/filter"
	"github.com/s0up4200/ytsearch/youtube"
)

// searchFlags holds the request flags of the search command
type searchFlags struct {
	maxResults      int
	order           string
	itemType        string
	safeSearch      string
	channelID       string
	channelType     string
	eventType       string
	location        string
	locationRadius  string
	publishedAfter  string
	publishedBefore string
	regionCode      string
	language        string
	topicID         string
	categoryID      string
	caption         string
	definition      string
	dimension       string
	duration        string
	license         string
	videoType       string
	embeddable      bool
	syndicated      bool
	pageToken       string
	relatedTo       string
	forMine         bool
	forDeveloper    bool
	forContentOwner bool
	onBehalfOf      string

	format         string
	showDetails    bool
	showThumbnails bool
	filterExpr     string
	preset         string
}

var flags searchFlags

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search for videos, channels and playlists",
	Long: `Search the YouTube Data API.

Every argument is searched separately; several arguments run concurrently.
Quote multi-word queries: ytsearch search "rust lang" "go generics"`,
	PreRunE: initializeApp,
	RunE:    runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	f := searchCmd.Flags()
	f.IntVarP(&flags.maxResults, "max", "n", 0, "maximum number of results per query (0-50)")
	f.StringVarP(&flags.order, "order", "o", "", "result order (date, rating, relevance, title, videoCount, viewCount)")
	f.StringVarP(&flags.itemType, "type", "t", "", "restrict to a resource type (channel, playlist, video)")
	f.StringVar(&flags.safeSearch, "safe", "", "safe search level (moderate, none, strict)")
	f.StringVar(&flags.channelID, "channel", "", "only return results from this channel id")
	f.StringVar(&flags.channelType, "channel-type", "", "channel type (any, show)")
	f.StringVar(&flags.eventType, "event", "", "broadcast event type (completed, live, upcoming)")
	f.StringVar(&flags.location, "location", "", "center of a geographic search as lon,lat")
	f.StringVar(&flags.locationRadius, "radius", "", "radius around --location, e.g. 10km")
	f.StringVar(&flags.publishedAfter, "after", "", "only results published after this time (RFC 3339 or YYYY-MM-DD)")
	f.StringVar(&flags.publishedBefore, "before", "", "only results published before this time (RFC 3339 or YYYY-MM-DD)")
	f.StringVar(&flags.regionCode, "region", "", "ISO 3166-1 alpha-2 region code")
	f.StringVar(&flags.language, "lang", "", "relevance language (ISO 639-1)")
	f.StringVar(&flags.topicID, "topic", "", "Freebase topic id")
	f.StringVar(&flags.categoryID, "category", "", "video category id")
	f.StringVar(&flags.caption, "caption", "", "caption filter (any, closedCaption, none)")
	f.StringVar(&flags.definition, "definition", "", "video definition (any, high, standard)")
	f.StringVar(&flags.dimension, "dimension", "", "video dimension (2d, 3d, any)")
	f.StringVar(&flags.duration, "duration", "", "video duration (any, long, medium, short)")
	f.StringVar(&flags.license, "license", "", "video license (any, creativeCommon, youtube)")
	f.StringVar(&flags.videoType, "video-type", "", "video type (any, episode, movie)")
	f.BoolVar(&flags.embeddable, "embeddable", false, "only videos that can be embedded")
	f.BoolVar(&flags.syndicated, "syndicated", false, "only videos playable outside youtube.com")
	f.StringVar(&flags.pageToken, "page-token", "", "page token from a previous search")
	f.StringVar(&flags.relatedTo, "related-to", "", "only videos related to this video id")
	f.BoolVar(&flags.forMine, "for-mine", false, "only videos owned by the authenticated user")
	f.BoolVar(&flags.forDeveloper, "for-developer", false, "only videos uploaded via this developer's application")
	f.BoolVar(&flags.forContentOwner, "for-content-owner", false, "only videos owned by the content owner")
	f.StringVar(&flags.onBehalfOf, "on-behalf-of", "", "content owner the request is made for")

	f.StringVar(&flags.format, "format", "table", "output format (table, json)")
	f.BoolVar(&flags.showDetails, "details", false, "show channel, publish date and description")
	f.BoolVar(&flags.showThumbnails, "thumbnails", false, "show the best thumbnail of each result")
	f.StringVarP(&flags.filterExpr, "filter", "f", "", "filter expression applied to the results")
	f.StringVarP(&flags.preset, "preset", "p", "", "use a preset filter from config")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if flags.format != "table" && flags.format != "json" {
		return fmt.Errorf("invalid format: %s (must be 'table' or 'json')", flags.format)
	}

	resultFilter, err := resolveFilter(cfg.Filter, flags.filterExpr, flags.preset)
	if err != nil {
		return err
	}

	queries := args
	if len(queries) == 0 {
		queries = []string{""}
	}

	requests := make([]youtube.SearchList, len(queries))
	for i, query := range queries {
		requests[i], err = buildRequest(youtube.NewAPIKey(cfg.YouTube.APIKey), query, &flags, cfg.Search, cmd.Flags().Changed)
		if err != nil {
			return err
		}
	}

	opts := append(cfg.YouTube.ClientOptions(), youtube.WithLogger(logger))
	client := youtube.NewClient(opts...)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()

	if len(requests) == 1 {
		resp, err := client.Search(ctx, requests[0])
		if err != nil {
			return describeError(err)
		}
		return printResponse(out, queries[0], resp, resultFilter, false)
	}

	logger.Info().
		Int("queries", len(requests)).
		Int("concurrency", cfg.Search.Concurrency).
		Msg("Running batch search")

	result := client.BatchSearch(ctx, requests, cfg.Search.Concurrency)
	for i, resp := range result.Responses {
		if resp == nil {
			continue
		}
		if err := printResponse(out, queries[i], resp, resultFilter, true); err != nil {
			return err
		}
	}

	for _, failed := range result.Failed {
		logger.Error().
			Err(describeError(failed.Err)).
			Str("query", failed.Query).
			Msg("Search failed")
	}

	if len(result.Failed) > 0 {
		return fmt.Errorf("%d of %d searches failed", len(result.Failed), result.Requested)
	}
	return nil
}

// resolveFilter picks the filter to apply.
// Priority: command line filter > preset > configured default > none.
func resolveFilter(filterCfg config.FilterConfig, expression, preset string) (*filter.Filter, error) {
	if expression != "" {
		f, err := filter.Compile(expression)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
		return f, nil
	}

	if preset != "" {
		manager := filter.NewManager()
		if err := manager.RegisterFilters(filterCfg.Presets); err != nil {
			return nil, fmt.Errorf("invalid filter presets: %w", err)
		}
		f, ok := manager.GetFilter(preset)
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config (available: %s)",
				preset, strings.Join(manager.ListFilters(), ", "))
		}
		return f, nil
	}

	if filterCfg.DefaultExpression != "" {
		f, err := filter.Compile(filterCfg.DefaultExpression)
		if err != nil {
			return nil, fmt.Errorf("invalid default filter expression: %w", err)
		}
		return f, nil
	}

	return nil, nil
}

// buildRequest turns the command line flags into a search request.
// Configured search defaults apply unless the matching flag was set.
func buildRequest(key youtube.APIKey, query string, f *searchFlags, defaults config.SearchConfig, changed func(string) bool) (youtube.SearchList, error) {
	req, err := defaults.Apply(youtube.NewSearchList(key))
	if err != nil {
		return req, fmt.Errorf("invalid search defaults: %w", err)
	}

	if query != "" {
		req = req.Q(query)
	}

	if changed("max") {
		if f.maxResults < 0 || f.maxResults > config.MaxResultsLimit {
			return req, fmt.Errorf("--max must be between 0 and %d: %d", config.MaxResultsLimit, f.maxResults)
		}
		req = req.MaxResults(uint8(f.maxResults))
	}

	// Enum flags
	if f.order != "" {
		v, err := youtube.ParseSearchOrder(f.order)
		if err != nil {
			return req, fmt.Errorf("--order: %w", err)
		}
		req = req.Order(v)
	}
	if f.itemType != "" {
		v, err := youtube.ParseItemType(f.itemType)
		if err != nil {
			return req, fmt.Errorf("--type: %w", err)
		}
		req = req.ItemType(v)
	}
	if f.safeSearch != "" {
		v, err := youtube.ParseSafeSearch(f.safeSearch)
		if err != nil {
			return req, fmt.Errorf("--safe: %w", err)
		}
		req = req.SafeSearch(v)
	}
	if f.channelType != "" {
		v, err := youtube.ParseChannelType(f.channelType)
		if err != nil {
			return req, fmt.Errorf("--channel-type: %w", err)
		}
		req = req.ChannelType(v)
	}
	if f.eventType != "" {
		v, err := youtube.ParseEventType(f.eventType)
		if err != nil {
			return req, fmt.Errorf("--event: %w", err)
		}
		req = req.EventType(v)
	}
	if f.caption != "" {
		v, err := youtube.ParseVideoCaption(f.caption)
		if err != nil {
			return req, fmt.Errorf("--caption: %w", err)
		}
		req = req.VideoCaption(v)
	}
	if f.definition != "" {
		v, err := youtube.ParseVideoDefinition(f.definition)
		if err != nil {
			return req, fmt.Errorf("--definition: %w", err)
		}
		req = req.VideoDefinition(v)
	}
	if f.dimension != "" {
		v, err := youtube.ParseVideoDimension(f.dimension)
		if err != nil {
			return req, fmt.Errorf("--dimension: %w", err)
		}
		req = req.VideoDimension(v)
	}
	if f.duration != "" {
		v, err := youtube.ParseVideoDuration(f.duration)
		if err != nil {
			return req, fmt.Errorf("--duration: %w", err)
		}
		req = req.VideoDuration(v)
	}
	if f.license != "" {
		v, err := youtube.ParseVideoLicense(f.license)
		if err != nil {
			return req, fmt.Errorf("--license: %w", err)
		}
		req = req.VideoLicense(v)
	}
	if f.videoType != "" {
		v, err := youtube.ParseVideoType(f.videoType)
		if err != nil {
			return req, fmt.Errorf("--video-type: %w", err)
		}
		req = req.VideoType(v)
	}

	if f.location != "" {
		loc, err := parseLocation(f.location)
		if err != nil {
			return req, fmt.Errorf("--location: %w", err)
		}
		req = req.Location(loc)
	}
	if f.publishedAfter != "" {
		t, err := parseTime(f.publishedAfter)
		if err != nil {
			return req, fmt.Errorf("--after: %w", err)
		}
		req = req.PublishedAfter(t)
	}
	if f.publishedBefore != "" {
		t, err := parseTime(f.publishedBefore)
		if err != nil {
			return req, fmt.Errorf("--before: %w", err)
		}
		req = req.PublishedBefore(t)
	}

	// Plain string flags
	if f.channelID != "" {
		req = req.ChannelID(f.channelID)
	}
	if f.locationRadius != "" {
		req = req.LocationRadius(f.locationRadius)
	}
	if f.regionCode != "" {
		req = req.RegionCode(f.regionCode)
	}
	if f.language != "" {
		req = req.RelevanceLanguage(f.language)
	}
	if f.topicID != "" {
		req = req.TopicID(f.topicID)
	}
	if f.categoryID != "" {
		req = req.VideoCategoryID(f.categoryID)
	}
	if f.pageToken != "" {
		req = req.PageToken(f.pageToken)
	}
	if f.relatedTo != "" {
		req = req.RelatedToVideoID(f.relatedTo)
	}
	if f.onBehalfOf != "" {
		req = req.OnBehalfOfContentOwner(f.onBehalfOf)
	}

	// Presence-only flags
	if f.embeddable {
		req = req.VideoEmbeddable()
	}
	if f.syndicated {
		req = req.VideoSyndicated()
	}
	if f.forMine {
		req = req.ForMine()
	}
	if f.forDeveloper {
		req = req.ForDeveloper()
	}
	if f.forContentOwner {
		req = req.ForContentOwner()
	}

	return req, nil
}

// parseLocation parses "lon,lat"
func parseLocation(s string) (youtube.Location, error) {
	lon, lat, ok := strings.Cut(s, ",")
	if !ok {
		return youtube.Location{}, fmt.Errorf("expected lon,lat: %q", s)
	}

	longitude, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return youtube.Location{}, fmt.Errorf("invalid longitude %q: %w", lon, err)
	}
	latitude, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return youtube.Location{}, fmt.Errorf("invalid latitude %q: %w", lat, err)
	}

	return youtube.NewLocation(longitude, latitude), nil
}

// parseTime accepts RFC 3339 timestamps and plain dates
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected RFC 3339 or YYYY-MM-DD: %q", s)
	}
	return t, nil
}

// describeError adds a hint for API errors a user can act on
func describeError(err error) error {
	var apiErr *youtube.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case apiErr.IsQuotaExceeded():
		return fmt.Errorf("%w\nthe daily quota of the API key is used up, try again tomorrow", err)
	case apiErr.IsUnauthorized():
		return fmt.Errorf("%w\ncheck youtube.api_key in the config or the YT_API_KEY environment variable", err)
	}
	return err
}

// printResponse writes one search response in the selected format
func printResponse(out io.Writer, query string, resp *youtube.SearchListResponse, resultFilter *filter.Filter, withHeader bool) error {
	items := resp.Items
	if resultFilter != nil {
		items = resultFilter.Apply(items)
		logger.Debug().
			Str("filter", resultFilter.Expression()).
			Int("before", len(resp.Items)).
			Int("after", len(items)).
			Msg("Applied filter")
	}

	formatter := youtube.NewConsoleFormatter()

	if flags.format == "json" {
		filtered := *resp
		filtered.Items = items
		rendered, err := formatter.FormatJSON(&filtered)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, rendered)
		return err
	}

	if withHeader {
		fmt.Fprintf(out, "Query: %q\n", query)
	}
	io.WriteString(out, formatter.FormatResults(items, youtube.FormatOptions{
		ShowDetails:    flags.showDetails,
		ShowThumbnails: flags.showThumbnails,
	}))
	if resp.NextPageToken != nil {
		fmt.Fprintf(out, "Next page: --page-token %s\n", *resp.NextPageToken)
	}
	return nil
}
