package models

import "time"

// HarvestedTitle is a title pulled from an external source, before it enters
// a session's corpus.
type HarvestedTitle struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
}

// RedditListing mirrors the subset of a Reddit listing response we read.
type RedditListing struct {
	Data struct {
		Children []struct {
			Data RedditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type RedditPost struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Subreddit string  `json:"subreddit"`
	Permalink string  `json:"permalink"`
	CreatedAt float64 `json:"created_utc"`
	Stickied  bool    `json:"stickied"`
}
