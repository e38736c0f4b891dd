package catalog

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"
)

// Default number of headline topics pulled per feed
const DefaultTrendingLimit = 5

// Trending supplements a category's topic list with current headlines
// from an RSS/Atom feed mapped to that category. Disabled unless feeds
// are configured.
type Trending struct {
	feeds  map[string]string
	limit  int
	parser *gofeed.Parser
}

// NewTrendingFromEnv builds a Trending source from TOPIC_FEEDS, a
// semicolon-separated list of category=feedURL pairs. Returns nil when
// the variable is unset, which callers treat as "feature off".
// TOPIC_FEED_LIMIT caps the number of headlines taken per feed.
func NewTrendingFromEnv() *Trending {
	raw := strings.TrimSpace(os.Getenv("TOPIC_FEEDS"))
	if raw == "" {
		return nil
	}

	feeds := make(map[string]string)
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		category, url, ok := strings.Cut(pair, "=")
		if !ok || category == "" || url == "" {
			continue
		}
		feeds[strings.TrimSpace(category)] = strings.TrimSpace(url)
	}
	if len(feeds) == 0 {
		return nil
	}

	limit := DefaultTrendingLimit
	if v := os.Getenv("TOPIC_FEED_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	return &Trending{feeds: feeds, limit: limit, parser: gofeed.NewParser()}
}

// TopicsFor fetches the feed mapped to category and returns its item
// titles as extra topic suggestions. Categories without a feed yield an
// empty list.
func (t *Trending) TopicsFor(ctx context.Context, category string) ([]string, error) {
	feedURL, ok := t.feeds[category]
	if !ok {
		return nil, nil
	}

	feed, err := t.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := len(feed.Items)
	if count > t.limit {
		count = t.limit
	}

	topics := make([]string, 0, count)
	for i := 0; i < count; i++ {
		title := strings.TrimSpace(feed.Items[i].Title)
		if title != "" {
			topics = append(topics, title)
		}
	}
	return topics, nil
}
