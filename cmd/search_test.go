package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/ytsearch/config"
	"github.com/s0up4200/ytsearch/youtube"
)

func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return func(name string) bool { return set[name] }
}

func encodedQuery(t *testing.T, req youtube.SearchList) url.Values {
	t.Helper()
	raw, err := req.Encode()
	require.NoError(t, err)
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return values
}

func TestBuildRequest(t *testing.T) {
	f := &searchFlags{
		maxResults:     10,
		order:          "viewcount",
		itemType:       "video",
		safeSearch:     "strict",
		location:       "-73.93524, 40.73061",
		locationRadius: "5km",
		publishedAfter: "2024-01-02",
		dimension:      "3D",
		duration:       "short",
		embeddable:     true,
		forDeveloper:   true,
		regionCode:     "US",
	}
	defaults := config.SearchConfig{MaxResults: 5, Order: "date", RelevanceLanguage: "en"}

	req, err := buildRequest("key", "rust lang", f, defaults, changedSet("max"))
	require.NoError(t, err)

	values := encodedQuery(t, req)
	assert.Equal(t, "rust lang", values.Get("q"))
	assert.Equal(t, "10", values.Get("maxResults"))
	assert.Equal(t, "viewCount", values.Get("order"))
	assert.Equal(t, "video", values.Get("type"))
	assert.Equal(t, "strict", values.Get("safeSearch"))
	assert.Equal(t, "-73.93524,40.73061", values.Get("location"))
	assert.Equal(t, "5km", values.Get("locationRadius"))
	assert.Equal(t, "2024-01-02T00:00:00Z", values.Get("publishedAfter"))
	assert.Equal(t, "3d", values.Get("videoDimension"))
	assert.Equal(t, "short", values.Get("videoDuration"))
	assert.Equal(t, "true", values.Get("videoEmbeddable"))
	assert.Equal(t, "true", values.Get("forDeveloper"))
	assert.Equal(t, "US", values.Get("regionCode"))
	assert.Equal(t, "en", values.Get("relevanceLanguage"))
	assert.NotContains(t, values, "forMine")
	assert.NotContains(t, values, "videoSyndicated")
}

func TestBuildRequest_DefaultsWhenFlagsUnset(t *testing.T) {
	req, err := buildRequest("key", "", &searchFlags{}, config.SearchConfig{MaxResults: 5}, changedSet())
	require.NoError(t, err)

	values := encodedQuery(t, req)
	assert.Equal(t, "5", values.Get("maxResults"))
	assert.NotContains(t, values, "q")
}

func TestBuildRequest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		flags   searchFlags
		changed []string
		wantErr string
	}{
		{"max too large", searchFlags{maxResults: 51}, []string{"max"}, "--max"},
		{"bad order", searchFlags{order: "popular"}, nil, "--order"},
		{"bad type", searchFlags{itemType: "podcast"}, nil, "--type"},
		{"bad safe", searchFlags{safeSearch: "off"}, nil, "--safe"},
		{"bad caption", searchFlags{caption: "yes"}, nil, "--caption"},
		{"bad location", searchFlags{location: "north"}, nil, "--location"},
		{"bad latitude", searchFlags{location: "1,abc"}, nil, "--location"},
		{"bad date", searchFlags{publishedBefore: "yesterday"}, nil, "--before"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildRequest("key", "q", &tt.flags, config.SearchConfig{}, changedSet(tt.changed...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseTime(t *testing.T) {
	got, err := parseTime("2024-03-04T05:06:07+02:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 4, 3, 6, 7, 0, time.UTC)))

	got, err = parseTime("2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), got)

	_, err = parseTime("03/04/2024")
	assert.Error(t, err)
}

func TestResolveFilter(t *testing.T) {
	filterCfg := config.FilterConfig{
		DefaultExpression: `Kind == "video"`,
		Presets: map[string]string{
			"channels": `Kind == "channel"`,
		},
	}

	f, err := resolveFilter(filterCfg, `icontains(Title, "go")`, "channels")
	require.NoError(t, err)
	assert.Equal(t, `icontains(Title, "go")`, f.Expression())

	f, err = resolveFilter(filterCfg, "", "channels")
	require.NoError(t, err)
	assert.Equal(t, `Kind == "channel"`, f.Expression())

	f, err = resolveFilter(filterCfg, "", "")
	require.NoError(t, err)
	assert.Equal(t, `Kind == "video"`, f.Expression())

	f, err = resolveFilter(config.FilterConfig{}, "", "")
	require.NoError(t, err)
	assert.Nil(t, f)

	_, err = resolveFilter(filterCfg, "", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: channels")

	_, err = resolveFilter(filterCfg, "Kind ==", "")
	assert.ErrorContains(t, err, "invalid filter expression")
}

func TestDescribeError(t *testing.T) {
	quota := &youtube.APIError{StatusCode: http.StatusForbidden, Reason: "quotaExceeded"}
	err := describeError(quota)
	assert.ErrorIs(t, err, quota)
	assert.Contains(t, err.Error(), "quota")

	invalid := &youtube.APIError{StatusCode: http.StatusBadRequest, Reason: "keyInvalid"}
	assert.Contains(t, describeError(invalid).Error(), "YT_API_KEY")

	plain := errors.New("boom")
	assert.Equal(t, plain, describeError(plain))
}

func TestIsNewer(t *testing.T) {
	newer, err := isNewer("v1.2.0", "1.3.0")
	require.NoError(t, err)
	assert.True(t, newer)

	newer, err = isNewer("1.3.0", "1.3.0")
	require.NoError(t, err)
	assert.False(t, newer)

	_, err = isNewer("dev", "1.3.0")
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	log := setupLogger(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
	assert.False(t, isTerminal(&buf))
}

func TestSearchCommand(t *testing.T) {
	const fixture = `{
  "kind": "youtube#searchListResponse",
  "etag": "q4ibjmYp1KA3RqMF4jFLl6PBwOA",
  "nextPageToken": "CAEQAA",
  "regionCode": "US",
  "pageInfo": {"totalResults": 2, "resultsPerPage": 2},
  "items": [
    {"kind": "youtube#searchResult", "etag": "r1", "id": {"kind": "youtube#video", "videoId": "abc123"}, "snippet": {"title": "Rust Lang Tutorial", "channelTitle": "Rust Channel"}},
    {"kind": "youtube#searchResult", "etag": "r2", "id": {"kind": "youtube#channel", "channelId": "UC1"}, "snippet": {"title": "Rustaceans"}}
  ]
}`

	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fixture))
	}))
	defer server.Close()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
youtube:
  api_key: test-key
  base_url: `+server.URL+`
logging:
  level: error
  color: false
`), 0o600))

	t.Setenv("YTSEARCH_YOUTUBE_API_KEY", "")
	t.Setenv("YT_API_KEY", "")
	t.Cleanup(func() { flags = searchFlags{format: "table"} })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"search", "--config", configPath, "--max", "2", "--type", "video", "--filter", `Kind == "video"`, "rust lang"})

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "test-key", gotQuery.Get("key"))
	assert.Equal(t, "rust lang", gotQuery.Get("q"))
	assert.Equal(t, "2", gotQuery.Get("maxResults"))
	assert.Equal(t, "video", gotQuery.Get("type"))

	assert.Contains(t, out.String(), "Rust Lang Tutorial [video]")
	assert.NotContains(t, out.String(), "Rustaceans")
	assert.Contains(t, out.String(), "Next page: --page-token CAEQAA")

	out.Reset()
	rootCmd.SetArgs([]string{"search", "--config", configPath, "--format", "json", "--filter", `Kind == "video"`, "rust lang"})
	require.NoError(t, rootCmd.Execute())

	var decoded youtube.SearchListResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded.Items, 1)
	assert.Equal(t, "abc123", decoded.Items[0].ID.Value())
}
