package browser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobpost-extraction/internal/extractor"
)

type fakeRenderer struct {
	page    *RenderedPage
	err     error
	renders int
}

func (f *fakeRenderer) Render(ctx context.Context, url string) (*RenderedPage, error) {
	f.renders++
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func TestExtract_MetadataPath(t *testing.T) {
	html := `<html><head>
		<script type="application/ld+json">{"@type":"JobPosting","title":"Software Engineer","hiringOrganization":{"name":"Acme"}}</script>
	</head><body></body></html>`
	renderer := &fakeRenderer{page: &RenderedPage{HTML: html, FinalURL: "https://example.com/job"}}

	job, err := New(renderer).Extract(context.Background(), "https://example.com/job")
	require.NoError(t, err)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Software Engineer", job.Title)
}

func TestExtract_MetadataShortCircuitsHeuristics(t *testing.T) {
	// Conflicting selector content proves the metadata path was trusted
	// exclusively and steps 2-3 never ran.
	html := `<html><head>
		<script type="application/ld+json">{"@type":"JobPosting","title":"Software Engineer","hiringOrganization":{"name":"Acme"}}</script>
	</head><body>
		<div class="company-name">WrongCo Industries</div>
		<h1>Entirely Different Title Here</h1>
		<p>Work at SomeOtherCo is hiring</p>
	</body></html>`
	renderer := &fakeRenderer{page: &RenderedPage{HTML: html}}

	job, err := New(renderer).Extract(context.Background(), "https://example.com/job")
	require.NoError(t, err)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Software Engineer", job.Title)
}

func TestExtract_IncompleteMetadataFallsThrough(t *testing.T) {
	// Metadata without a hiring organization must not be trusted.
	html := `<html><head>
		<script type="application/ld+json">{"@type":"JobPosting","title":"Software Engineer"}</script>
	</head><body>
		<div class="company-name">Example Corp</div>
		<h1>Backend Engineer, Payments</h1>
	</body></html>`
	renderer := &fakeRenderer{page: &RenderedPage{HTML: html}}

	job, err := New(renderer).Extract(context.Background(), "https://example.com/job")
	require.NoError(t, err)
	assert.Equal(t, "Example Corp", job.Company)
	assert.Equal(t, "Backend Engineer, Payments", job.Title)
}

func TestExtract_SelectorPath(t *testing.T) {
	longDesc := "We are looking for an engineer to build our payments platform. " +
		"You will design APIs, own services end to end, and work with a small team."
	html := `<html><body>
		<div class="company-name">Example Corp</div>
		<h1>Backend Engineer, Payments</h1>
		<div class="job-description">` + longDesc + `</div>
		<span class="location">Berlin, Germany</span>
		<span class="salary">€70000 - €90000</span>
	</body></html>`
	renderer := &fakeRenderer{page: &RenderedPage{HTML: html}}

	job, err := New(renderer).Extract(context.Background(), "https://example.com/job")
	require.NoError(t, err)
	assert.Equal(t, "Example Corp", job.Company)
	assert.Equal(t, "Backend Engineer, Payments", job.Title)
	assert.Equal(t, longDesc, job.Description)
	assert.Equal(t, "Berlin, Germany", job.Location)
	assert.Equal(t, "€70000 - €90000", job.Salary)
}

func TestExtract_SelectorLengthSanity(t *testing.T) {
	html := `<html><body>
		<h1>Go</h1>
		<div class="job-description">too short</div>
		<div class="job-title">Senior Go Engineer</div>
	</body></html>`
	renderer := &fakeRenderer{page: &RenderedPage{HTML: html}}

	job, err := New(renderer).Extract(context.Background(), "https://example.com/job")
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer", job.Title)
	assert.Empty(t, job.Description, "sub-100-char description rejected")
}

func TestExtract_RegexHeuristic(t *testing.T) {
	html := `<html><body><p>Senior Backend Engineer at Example Corp is hiring</p></body></html>`
	renderer := &fakeRenderer{page: &RenderedPage{HTML: html, Title: "Senior Backend Engineer"}}

	job, err := New(renderer).Extract(context.Background(), "https://example.com/job")
	require.NoError(t, err)
	assert.Equal(t, "Example Corp", job.Company)
}

func TestExtract_DomainTable(t *testing.T) {
	html := `<html><body><h1>Senior Software Engineer</h1><p>no company mentioned anywhere</p></body></html>`
	renderer := &fakeRenderer{page: &RenderedPage{HTML: html, FinalURL: "https://jobs.netflix.com/jobs/12345"}}

	job, err := New(renderer).Extract(context.Background(), "https://jobs.netflix.com/jobs/12345")
	require.NoError(t, err)
	assert.Equal(t, "Netflix", job.Company)
}

func TestExtract_RendererFailureEscalates(t *testing.T) {
	renderer := &fakeRenderer{err: extractor.ErrBrowserLaunchFailure}
	_, err := New(renderer).Extract(context.Background(), "https://example.com/job")
	assert.ErrorIs(t, err, extractor.ErrBrowserLaunchFailure)
}

func TestExtract_TimeoutEscalates(t *testing.T) {
	renderer := &fakeRenderer{err: errors.Join(extractor.ErrNetworkTimeout)}
	_, err := New(renderer).Extract(context.Background(), "https://example.com/job")
	assert.ErrorIs(t, err, extractor.ErrNetworkTimeout)
}
