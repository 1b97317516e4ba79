package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.tavily.com"

// maxTopK caps how many results a single query may request. The pipeline
// only ever feeds a handful of snippets into a prompt, and the cap keeps
// token usage bounded.
const maxTopK = 3

// Client queries the Tavily web-search API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	topK       int
}

// Result is a single web-search hit.
type Result struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// New creates a search client. The API key is required; topK is clamped
// to [1, 3].
func New(apiKey string, topK int) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("search api key is required")
	}
	if topK < 1 || topK > maxTopK {
		topK = maxTopK
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		topK:       topK,
	}, nil
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

// Search runs one web search and returns at most topK results.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	payload, err := json.Marshal(searchRequest{Query: query, MaxResults: c.topK})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily search returned %d", resp.StatusCode)
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	results := data.Results
	if len(results) > c.topK {
		results = results[:c.topK]
	}
	return results, nil
}
