// Tier 1: fetch the page through a managed scraping service, then ask a
// text model to populate the schema from the cleaned content.

package scrape

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go-jobpost-extraction/internal/extractor"
	"go-jobpost-extraction/internal/llm"
	"go-jobpost-extraction/internal/models"
)

type Extractor struct {
	fetcher PageFetcher
	client  llm.Client
}

func New(fetcher PageFetcher, client llm.Client) *Extractor {
	return &Extractor{fetcher: fetcher, client: client}
}

func (e *Extractor) Tier() models.Tier {
	return models.TierScrape
}

func (e *Extractor) Extract(ctx context.Context, url string) (*models.JobPosting, error) {
	content, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, extractor.Classify(err)
	}

	raw, err := e.client.ExtractJSON(ctx, llm.JobPostingPrompt(content))
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
	job.RawText = content

	// One focused retry for company/title when the full pass left them
	// empty or placeholder-like. This merge stays inside the tier; the
	// candidate still stands or falls as a whole at the gate.
	if extractor.Validate(job) != nil {
		company, title, retryErr := e.retryCompanyTitle(ctx, content)
		if retryErr != nil {
			log.Printf("⚠️ Focused company/title retry failed: %v", retryErr)
			return job, nil
		}
		if company != "" {
			job.Company = company
		}
		if title != "" {
			job.Title = title
		}
	}

	return job, nil
}

func (e *Extractor) retryCompanyTitle(ctx context.Context, content string) (string, string, error) {
	raw, err := e.client.ExtractJSON(ctx, llm.CompanyTitlePrompt(content))
	if err != nil {
		return "", "", err
	}
	return llm.ParseCompanyTitle(raw)
}
