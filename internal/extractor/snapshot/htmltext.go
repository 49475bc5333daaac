package snapshot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-jobpost-extraction/internal/textutil"
)

// maxTextLen caps the reduced text sent to the extraction model.
const maxTextLen = 20000

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"

// fetchHTML downloads the raw page when the screenshot service is unavailable.
func fetchHTML(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create fetch request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("raw fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("raw fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read page body: %w", err)
	}
	return string(body), nil
}

// reduceToText strips chrome and boilerplate elements and flattens the page
// to plain text suitable for a text-only extraction prompt.
func reduceToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("could not parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, header, footer, iframe, svg, form").Remove()

	text := textutil.Clean(doc.Find("body").Text())
	if text == "" {
		text = textutil.Clean(doc.Text())
	}
	if runes := []rune(text); len(runes) > maxTextLen {
		text = string(runes[:maxTextLen])
	}
	return text, nil
}
