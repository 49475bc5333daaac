// Tier 2: render the page in a headless browser, then extract from the
// captured HTML, preferring embedded machine-readable metadata over
// selector and regex heuristics.

package browser

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-jobpost-extraction/internal/extractor"
	"go-jobpost-extraction/internal/models"
	"go-jobpost-extraction/internal/textutil"
)

type Extractor struct {
	renderer PageRenderer
}

func New(renderer PageRenderer) *Extractor {
	return &Extractor{renderer: renderer}
}

func (e *Extractor) Tier() models.Tier {
	return models.TierBrowser
}

func (e *Extractor) Extract(ctx context.Context, rawURL string) (*models.JobPosting, error) {
	page, err := e.renderer.Render(ctx, rawURL)
	if err != nil {
		return nil, extractor.Classify(err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, fmt.Errorf("could not parse rendered HTML: %w", err)
	}
	bodyText := textutil.Clean(doc.Find("body").Text())

	// 1. Structured metadata. Trusted exclusively when it yields both
	// company and title; the heuristic paths are skipped entirely.
	if job, ok := jobPostingFromMetadata(doc); ok {
		job.RawText = bodyText
		return job, nil
	}

	// 2. Selector heuristics per field.
	job := &models.JobPosting{
		Company:     companySelectors.first(doc),
		Title:       titleSelectors.first(doc),
		Description: descriptionSelectors.first(doc),
		Location:    locationSelectors.first(doc),
		Salary:      salarySelectors.first(doc),
		RawText:     bodyText,
	}

	// 3. Regex and domain fallbacks for the two gated fields.
	if job.Company == "" {
		job.Company = companyFromText(bodyText)
	}
	if job.Company == "" {
		if u, parseErr := url.Parse(firstNonEmpty(page.FinalURL, rawURL)); parseErr == nil {
			job.Company = companyForHost(u.Host)
		}
	}
	if job.Title == "" {
		job.Title = titleFromPageTitle(page.Title)
	}

	return job, nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
