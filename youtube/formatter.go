package youtube

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatOptions contains options for formatting output
type FormatOptions struct {
	ShowDetails    bool
	ShowThumbnails bool
}

// ConsoleFormatter provides console output formatting for search results
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatResults formats search results as a tree for console display
func (f *ConsoleFormatter) FormatResults(items []SearchResult, options FormatOptions) string {
	if len(items) == 0 {
		return "No results found\n"
	}

	var sb strings.Builder

	sb.WriteString("\nResult")
	if len(items) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(items))

	for i, item := range items {
		isLast := i == len(items)-1
		f.formatResult(&sb, item, isLast, options)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// formatResult formats a single result entry
func (f *ConsoleFormatter) formatResult(sb *strings.Builder, item SearchResult, isLast bool, options FormatOptions) {
	branch, indent := "├── ", "│   "
	if isLast {
		branch, indent = "└── ", "    "
	}

	title := deref(item.Snippet.Title)
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(sb, "%s%s [%s]\n", branch, title, item.ID.ResourceKind())

	if link := item.ID.URL(); link != "" {
		fmt.Fprintf(sb, "%s%s\n", indent, link)
	}

	if options.ShowDetails {
		if channel := deref(item.Snippet.ChannelTitle); channel != "" {
			fmt.Fprintf(sb, "%sChannel: %s\n", indent, channel)
		}
		if item.Snippet.PublishedAt != nil {
			fmt.Fprintf(sb, "%sPublished: %s\n", indent, item.Snippet.PublishedAt.Format("2006-01-02"))
		}
		if live := deref(item.Snippet.LiveBroadcastContent); live != "" && live != "none" {
			fmt.Fprintf(sb, "%sLive: %s\n", indent, live)
		}
		if desc := firstLine(deref(item.Snippet.Description)); desc != "" {
			fmt.Fprintf(sb, "%s%s\n", indent, desc)
		}
	}

	if options.ShowThumbnails {
		if thumb := item.Snippet.Thumbnails.Best(); thumb != nil {
			fmt.Fprintf(sb, "%sThumbnail: %s", indent, thumb.URL)
			if thumb.Width != nil && thumb.Height != nil {
				fmt.Fprintf(sb, " (%dx%d)", *thumb.Width, *thumb.Height)
			}
			sb.WriteString("\n")
		}
	}
}

// FormatJSON renders the response as indented JSON
func (f *ConsoleFormatter) FormatJSON(resp *SearchListResponse) (string, error) {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode response: %w", err)
	}
	return string(out) + "\n", nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	const maxLen = 100
	if r := []rune(s); len(r) > maxLen {
		return string(r[:maxLen]) + "..."
	}
	return s
}
