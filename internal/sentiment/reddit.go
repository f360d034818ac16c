package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"CoinScout/internal/model"
)

// RedditSource searches crypto subreddits via the public search JSON
// endpoint. No authentication is required for read-only search.
type RedditSource struct {
	Client     *http.Client
	BaseURL    string
	UserAgent  string
	Subreddits []string // searched in addition to the symbol's own subreddit
}

// NewRedditSource creates a Reddit source.
func NewRedditSource() *RedditSource {
	return &RedditSource{
		Client:     &http.Client{Timeout: 15 * time.Second},
		BaseURL:    "https://www.reddit.com",
		UserAgent:  "CoinScout/1.0",
		Subreddits: []string{"cryptocurrency", "cryptomarkets"},
	}
}

func (r *RedditSource) Platform() model.Platform { return model.PlatformReddit }
func (r *RedditSource) Weight() float64          { return 0.8 }
func (r *RedditSource) Structured() bool         { return true }

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title    string `json:"title"`
				Selftext string `json:"selftext"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Search queries the configured subreddits plus the symbol's own
// subreddit. A subreddit that errors (private, banned, nonexistent) is
// skipped; the search fails only if every subreddit fails.
func (r *RedditSource) Search(ctx context.Context, symbol string, window time.Duration) ([]Post, error) {
	subreddits := append(append([]string{}, r.Subreddits...), strings.ToLower(symbol))

	var posts []Post
	var lastErr error
	failures := 0
	for _, sub := range subreddits {
		subPosts, err := r.searchSubreddit(ctx, sub, symbol, window)
		if err != nil {
			lastErr = err
			failures++
			continue
		}
		posts = append(posts, subPosts...)
	}
	if failures == len(subreddits) && lastErr != nil {
		return nil, fmt.Errorf("reddit: all subreddit searches failed: %w", lastErr)
	}
	return posts, nil
}

func (r *RedditSource) searchSubreddit(ctx context.Context, subreddit, query string, window time.Duration) ([]Post, error) {
	u := fmt.Sprintf("%s/r/%s/search.json?q=%s&restrict_sr=1&t=%s&limit=50",
		r.BaseURL, url.PathEscape(subreddit), url.QueryEscape(query), timeFilter(window))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", r.UserAgent)

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit search r/%s: %w", subreddit, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reddit read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit: r/%s status %d", subreddit, resp.StatusCode)
	}

	var listing redditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("reddit decode: %w", err)
	}

	posts := make([]Post, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		posts = append(posts, Post{Title: child.Data.Title, Body: child.Data.Selftext})
	}
	return posts, nil
}

// timeFilter maps the recency window onto Reddit's coarse time filter.
func timeFilter(window time.Duration) string {
	switch {
	case window <= 24*time.Hour:
		return "day"
	case window <= 7*24*time.Hour:
		return "week"
	default:
		return "month"
	}
}
