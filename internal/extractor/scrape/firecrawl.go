package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-jobpost-extraction/internal/extractor"
)

const defaultFirecrawlEndpoint = "https://api.firecrawl.dev/v1/scrape"

// PageFetcher fetches a URL through a managed scraping service and returns
// the page reduced to clean text/markdown.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// FirecrawlClient implements PageFetcher against the Firecrawl scrape API.
type FirecrawlClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewFirecrawlClient creates a client; empty endpoint and httpClient fall
// back to defaults.
func NewFirecrawlClient(endpoint, apiKey string, httpClient *http.Client) *FirecrawlClient {
	if endpoint == "" {
		endpoint = defaultFirecrawlEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 45 * time.Second}
	}
	return &FirecrawlClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type firecrawlRequest struct {
	URL             string   `json:"url"`
	Formats         []string `json:"formats"`
	OnlyMainContent bool     `json:"onlyMainContent"`
}

type firecrawlResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Markdown string `json:"markdown"`
	} `json:"data"`
	Error string `json:"error,omitempty"`
}

// Fetch scrapes url and returns its main content as markdown.
func (c *FirecrawlClient) Fetch(ctx context.Context, url string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: firecrawl api key", extractor.ErrAuthConfigMissing)
	}

	reqBody := firecrawlRequest{
		URL:             url,
		Formats:         []string{"markdown"},
		OnlyMainContent: true,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal scrape request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("scrape request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read scrape response: %w", err)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("%w: firecrawl rejected credentials (status %d)", extractor.ErrAuthConfigMissing, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("scrape API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var fcResp firecrawlResponse
	if err := json.Unmarshal(bodyBytes, &fcResp); err != nil {
		return "", fmt.Errorf("%w: %v", extractor.ErrMalformedResponse, err)
	}
	if !fcResp.Success {
		return "", fmt.Errorf("scrape failed: %s", fcResp.Error)
	}
	if fcResp.Data.Markdown == "" {
		return "", fmt.Errorf("%w: scrape returned empty content", extractor.ErrMalformedResponse)
	}

	return fcResp.Data.Markdown, nil
}
