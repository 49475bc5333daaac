// Tier 3: capture a visual snapshot of the page (or reduce its raw HTML to
// text) and ask a vision-capable or text-only model to populate the schema.
// This is the terminal, most expensive fallback; it has no further fallback
// within itself.

package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"go-jobpost-extraction/internal/extractor"
	"go-jobpost-extraction/internal/llm"
	"go-jobpost-extraction/internal/models"
)

type Extractor struct {
	capturer   Capturer
	client     llm.Client
	httpClient *http.Client
}

func New(capturer Capturer, client llm.Client, httpClient *http.Client) *Extractor {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Extractor{
		capturer:   capturer,
		client:     client,
		httpClient: httpClient,
	}
}

func (e *Extractor) Tier() models.Tier {
	return models.TierSnapshot
}

func (e *Extractor) Extract(ctx context.Context, url string) (*models.JobPosting, error) {
	png, captureErr := e.capturer.Capture(ctx, url)
	if captureErr == nil {
		return e.extractFromImage(ctx, png)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	log.Printf("⚠️ Screenshot capture failed, reducing raw HTML instead: %v", captureErr)

	html, err := fetchHTML(ctx, e.httpClient, url)
	if err != nil {
		return nil, fmt.Errorf("%w: screenshot failed (%v) and raw fetch failed: %v",
			extractor.ErrSnapshotUnavailable, captureErr, err)
	}
	text, err := reduceToText(html)
	if err != nil || text == "" {
		return nil, fmt.Errorf("%w: page reduced to no usable text", extractor.ErrSnapshotUnavailable)
	}

	return e.extractFromText(ctx, text)
}

func (e *Extractor) extractFromImage(ctx context.Context, png []byte) (*models.JobPosting, error) {
	raw, err := e.client.ExtractJSONFromImage(ctx, llm.SnapshotImagePrompt(), png)
	if err != nil {
		if errors.Is(err, llm.ErrNoAPIKey) {
			return nil, fmt.Errorf("%w: vision model key", extractor.ErrAuthConfigMissing)
		}
		return nil, extractor.Classify(err)
	}
	job, err := llm.ParseJobPosting(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", extractor.ErrMalformedResponse, err)
	}
	// There is no page text on this path; keep the model's reading of the
	// screenshot as the audit trail.
	job.RawText = fmt.Sprintf("[screenshot %d bytes] %s", len(png), raw)
	return job, nil
}

func (e *Extractor) extractFromText(ctx context.Context, text string) (*models.JobPosting, error) {
	raw, err := e.client.ExtractJSON(ctx, llm.JobPostingPrompt(text))
	if err != nil {
		if errors.Is(err, llm.ErrNoAPIKey) {
			return nil, fmt.Errorf("%w: extraction model key", extractor.ErrAuthConfigMissing)
		}
		return nil, extractor.Classify(err)
	}
	job, err := llm.ParseJobPosting(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", extractor.ErrMalformedResponse, err)
	}
	job.RawText = text
	return job, nil
}
