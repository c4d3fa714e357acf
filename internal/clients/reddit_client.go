package clients

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	REDDIT_AUTH_URL = "https://www.reddit.com/api/v1/access_token"
	REDDIT_API_URL  = "https://oauth.reddit.com"
)

var (
	redditClientInstance *RedditClient
	redditClientOnce     sync.Once
	redditRateLimitMutex sync.Mutex
)

type RedditClient struct {
	Config *clientcredentials.Config
	Client *http.Client
	mu     *sync.Mutex
}

func GetRedditClient() *RedditClient {
	redditClientOnce.Do(func() {
		oauthConf := &clientcredentials.Config{
			ClientID:     os.Getenv("REDDIT_CLIENT_ID"),
			ClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
			TokenURL:     REDDIT_AUTH_URL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}

		redditClientInstance = &RedditClient{
			Config: oauthConf,
			Client: oauthConf.Client(context.Background()),
			mu:     &sync.Mutex{},
		}
	})

	return redditClientInstance
}

func (rc *RedditClient) RefreshClient() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.Client = rc.Config.Client(context.Background())
}

// FetchSubredditListing pulls a listing page (hot/top/new) for a subreddit.
func (rc *RedditClient) FetchSubredditListing(subreddit, sort string, limit int) ([]byte, error) {
	parsedUrl, err := url.Parse(fmt.Sprintf("%s/r/%s/%s", REDDIT_API_URL, subreddit, sort))
	if err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to parse URL: %w", err)
	}
	queryParams := parsedUrl.Query()
	queryParams.Add("limit", strconv.Itoa(limit))
	queryParams.Add("raw_json", "1")
	parsedUrl.RawQuery = queryParams.Encode()

	redditRateLimitMutex.Lock()
	time.Sleep(INITIAL_BACKOFF)
	redditRateLimitMutex.Unlock()

	req, err := http.NewRequest("GET", parsedUrl.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := rc.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		slog.Warn("[RedditClient] Token expired - Refreshing and Retrying...")
		rc.RefreshClient()
		return rc.FetchSubredditListing(subreddit, sort, limit)
	case http.StatusTooManyRequests:
		slog.Warn("[RedditClient] 429 Too Many Requests - Retrying with backoff")
		return rc.retryWithBackoff(subreddit, sort, limit)
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	}
	return nil, fmt.Errorf("[RedditClient] Unexpected status %d fetching r/%s", resp.StatusCode, subreddit)
}

func (rc *RedditClient) retryWithBackoff(subreddit, sort string, limit int) ([]byte, error) {
	backoff := INITIAL_BACKOFF
	for i := 1; i < MAX_RETRIES; i++ {
		slog.Warn("[RedditClient] Retrying request",
			slog.Int("attempt", i), slog.Duration("backoff", backoff))

		time.Sleep(backoff)

		backoff *= 2
		if backoff > MAX_BACKOFF {
			backoff = MAX_BACKOFF
		}

		data, err := rc.FetchSubredditListing(subreddit, sort, limit)
		if err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("[RedditClient] Max retries reached request failed")
}
