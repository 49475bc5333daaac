package snapshot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go-jobpost-extraction/internal/extractor"
)

const defaultScreenshotEndpoint = "https://shot.screenshotapi.net/screenshot"

// Capturer produces a PNG snapshot of a rendered page. Failures are
// recoverable inside the tier (text fallback), never tier-fatal on their own.
type Capturer interface {
	Capture(ctx context.Context, url string) ([]byte, error)
}

// ScreenshotClient implements Capturer against an external
// screenshot-rendering service.
type ScreenshotClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewScreenshotClient(endpoint, apiKey string, httpClient *http.Client) *ScreenshotClient {
	if endpoint == "" {
		endpoint = defaultScreenshotEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &ScreenshotClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (c *ScreenshotClient) Capture(ctx context.Context, target string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: screenshot api key not configured", extractor.ErrSnapshotUnavailable)
	}

	params := url.Values{}
	params.Set("token", c.apiKey)
	params.Set("url", target)
	params.Set("output", "image")
	params.Set("file_type", "png")
	params.Set("full_page", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create screenshot request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", extractor.ErrSnapshotUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: screenshot service returned status %d", extractor.ErrSnapshotUnavailable, resp.StatusCode)
	}

	png, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", extractor.ErrSnapshotUnavailable, err)
	}
	if len(png) == 0 {
		return nil, fmt.Errorf("%w: screenshot service returned empty body", extractor.ErrSnapshotUnavailable)
	}
	return png, nil
}
