package scrape

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobpost-extraction/internal/extractor"
)

type fakeFetcher struct {
	content string
	err     error
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.content, f.err
}

// fakeLLM returns responses in order, one per ExtractJSON call.
type fakeLLM struct {
	responses []string
	err       error
	prompts   []string
}

func (f *fakeLLM) ExtractJSON(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.prompts = append(f.prompts, prompt)
	if len(f.responses) == 0 {
		return "", errors.New("no scripted response")
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func (f *fakeLLM) ExtractJSONFromImage(ctx context.Context, prompt string, png []byte) (string, error) {
	return "", errors.New("not a vision tier")
}

func TestExtract_Success(t *testing.T) {
	fetcher := &fakeFetcher{content: "# Software Engineer at Acme\nGreat job."}
	client := &fakeLLM{responses: []string{
		`{"company":"Acme","title":"Software Engineer","description":"Great job.","skills_required":["Go"]}`,
	}}

	job, err := New(fetcher, client).Extract(context.Background(), "https://example.com/job")
	require.NoError(t, err)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Software Engineer", job.Title)
	assert.Equal(t, fetcher.content, job.RawText)
	assert.Len(t, client.prompts, 1, "no secondary request when the first pass validates")
}

func TestExtract_SecondaryMergeOnPlaceholder(t *testing.T) {
	fetcher := &fakeFetcher{content: "page text"}
	client := &fakeLLM{responses: []string{
		`{"company":"Unknown Company","title":"Software Engineer","description":"d"}`,
		`{"company":"Acme","title":""}`,
	}}

	job, err := New(fetcher, client).Extract(context.Background(), "https://example.com/job")
	require.NoError(t, err)
	assert.Equal(t, "Acme", job.Company, "company merged from focused retry")
	assert.Equal(t, "Software Engineer", job.Title, "empty retry title leaves original")
	assert.Equal(t, "d", job.Description, "only company/title are merged")
	assert.Len(t, client.prompts, 2)
}

func TestExtract_FetcherFailureEscalates(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("403 blocked")}
	client := &fakeLLM{}

	_, err := New(fetcher, client).Extract(context.Background(), "https://example.com/job")
	assert.ErrorContains(t, err, "403")
}

func TestExtract_AuthConfigMissing(t *testing.T) {
	fetcher := &fakeFetcher{err: extractor.ErrAuthConfigMissing}
	_, err := New(fetcher, &fakeLLM{}).Extract(context.Background(), "https://example.com/job")
	assert.ErrorIs(t, err, extractor.ErrAuthConfigMissing)
}

func TestExtract_MalformedLLMResponse(t *testing.T) {
	fetcher := &fakeFetcher{content: "page text"}
	client := &fakeLLM{responses: []string{"sorry, I cannot help with that"}}

	_, err := New(fetcher, client).Extract(context.Background(), "https://example.com/job")
	assert.ErrorIs(t, err, extractor.ErrMalformedResponse)
}

func TestFirecrawlClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer fc-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"markdown":"# Posting"}}`))
	}))
	t.Cleanup(srv.Close)

	client := NewFirecrawlClient(srv.URL, "fc-key", srv.Client())
	content, err := client.Fetch(context.Background(), "https://example.com/job")
	require.NoError(t, err)
	assert.Equal(t, "# Posting", content)
}

func TestFirecrawlClient_NoAPIKey(t *testing.T) {
	client := NewFirecrawlClient("", "", nil)
	_, err := client.Fetch(context.Background(), "https://example.com/job")
	assert.ErrorIs(t, err, extractor.ErrAuthConfigMissing)
}

func TestFirecrawlClient_Blocked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"success":false,"error":"target returned 403"}`))
	}))
	t.Cleanup(srv.Close)

	client := NewFirecrawlClient(srv.URL, "fc-key", srv.Client())
	_, err := client.Fetch(context.Background(), "https://blocked.example.com")
	assert.Error(t, err)
}
