package titles

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spacesedan/farsignal/internal/clients"
	"github.com/spacesedan/farsignal/internal/models"
	"github.com/spacesedan/farsignal/internal/sentiment"
)

const (
	defaultSubreddit = "DoesAnybodyElse"
	defaultSort      = "hot"
	defaultLimit     = 50
)

// RedditSource harvests titles from a subreddit listing. Posts there already
// carry the "does anybody else" framing, so normalization strips it back off.
type RedditSource struct {
	Subreddit string
	Sort      string
	Limit     int
}

func NewRedditSource() *RedditSource {
	return &RedditSource{
		Subreddit: defaultSubreddit,
		Sort:      defaultSort,
		Limit:     defaultLimit,
	}
}

func (r *RedditSource) Titles(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := clients.GetRedditClient().FetchSubredditListing(r.Subreddit, r.Sort, r.Limit)
	if err != nil {
		return nil, fmt.Errorf("[RedditSource] Failed to fetch r/%s: %w", r.Subreddit, err)
	}

	titles, err := parseListing(raw)
	if err != nil {
		return nil, err
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("[RedditSource] No usable titles in r/%s listing", r.Subreddit)
	}

	slog.Info("[RedditSource] Harvested titles",
		slog.String("subreddit", r.Subreddit),
		slog.Int("count", len(titles)))
	return titles, nil
}

// parseListing extracts normalized titles from a raw listing payload,
// skipping stickied posts and duplicates.
func parseListing(raw []byte) ([]string, error) {
	var listing models.RedditListing
	if err := json.Unmarshal(raw, &listing); err != nil {
		return nil, fmt.Errorf("[RedditSource] Failed to parse listing: %w", err)
	}

	seen := make(map[string]bool)
	var titles []string
	for _, child := range listing.Data.Children {
		post := child.Data
		if post.Stickied {
			continue
		}
		t := Normalize(sentiment.StripLinks(post.Title))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		titles = append(titles, t)
	}
	return titles, nil
}
