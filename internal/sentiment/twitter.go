package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"CoinScout/internal/model"
)

// TwitterSource searches recent tweets via the Twitter API v2 recent
// search endpoint using an app-only bearer token.
type TwitterSource struct {
	BearerToken string
	Client      *http.Client
	BaseURL     string
}

// NewTwitterSource creates a Twitter source.
func NewTwitterSource(bearerToken string) *TwitterSource {
	return &TwitterSource{
		BearerToken: bearerToken,
		Client:      &http.Client{Timeout: 15 * time.Second},
		BaseURL:     "https://api.twitter.com/2",
	}
}

func (t *TwitterSource) Platform() model.Platform { return model.PlatformTwitter }
func (t *TwitterSource) Weight() float64          { return 1.0 }
func (t *TwitterSource) Structured() bool         { return false }

type tweetSearchResponse struct {
	Data []struct {
		Text string `json:"text"`
	} `json:"data"`
	Meta struct {
		ResultCount int `json:"result_count"`
	} `json:"meta"`
}

// Search returns recent english-language tweets mentioning the symbol,
// retweets excluded.
func (t *TwitterSource) Search(ctx context.Context, symbol string, window time.Duration) ([]Post, error) {
	query := fmt.Sprintf("#%s OR $%s -is:retweet lang:en", symbol, symbol)
	startTime := time.Now().Add(-window).UTC().Format(time.RFC3339)

	u := fmt.Sprintf("%s/tweets/search/recent?query=%s&max_results=100&start_time=%s",
		t.BaseURL, url.QueryEscape(query), url.QueryEscape(startTime))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+t.BearerToken)

	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("twitter search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("twitter read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("twitter: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed tweetSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("twitter decode: %w", err)
	}

	posts := make([]Post, 0, len(parsed.Data))
	for _, tweet := range parsed.Data {
		posts = append(posts, Post{Title: tweet.Text})
	}
	return posts, nil
}
