package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"go-jobpost-extraction/internal/extractor"
)

// RenderedPage is the output of one scoped browser navigation. All browser
// handles are closed before it is returned.
type RenderedPage struct {
	HTML     string
	Title    string
	FinalURL string
}

// PageRenderer renders a URL in a browser and captures the settled page.
type PageRenderer interface {
	Render(ctx context.Context, url string) (*RenderedPage, error)
}

const defaultNavTimeout = 30 * time.Second

// PlaywrightRenderer launches a headless Chromium per call. The process and
// page handles are scoped to the call and released on every exit path;
// a leaked browser process is a direct operational cost.
type PlaywrightRenderer struct {
	navTimeout time.Duration
}

func NewPlaywrightRenderer(navTimeout time.Duration) *PlaywrightRenderer {
	if navTimeout <= 0 {
		navTimeout = defaultNavTimeout
	}
	return &PlaywrightRenderer{navTimeout: navTimeout}
}

func (r *PlaywrightRenderer) Render(ctx context.Context, url string) (*RenderedPage, error) {
	return renderScoped(ctx, func(handle *abortHandle) (*RenderedPage, error) {
		return r.render(url, handle)
	})
}

// abortHandle lets the cancellation watcher close the browser that the
// render goroutine currently owns, aborting its in-flight navigation.
type abortHandle struct {
	mu      sync.Mutex
	aborted bool
	close   func() error
}

// register hands the watcher a way to close the current browser. It reports
// false when cancellation already happened, in which case the render must
// stop before navigating.
func (h *abortHandle) register(close func() error) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.aborted {
		return false
	}
	h.close = close
	return true
}

func (h *abortHandle) abort() {
	h.mu.Lock()
	h.aborted = true
	close := h.close
	h.mu.Unlock()
	if close != nil {
		_ = close()
	}
}

// renderScoped runs fn in a goroutine that keeps ownership of every browser
// handle. On cancellation the watcher closes the registered browser, which
// aborts the in-flight navigation, then waits for fn to finish so all
// handles are released before returning.
func renderScoped(ctx context.Context, fn func(*abortHandle) (*RenderedPage, error)) (*RenderedPage, error) {
	type renderResult struct {
		page *RenderedPage
		err  error
	}
	handle := &abortHandle{}
	ch := make(chan renderResult, 1)
	go func() {
		page, err := fn(handle)
		ch <- renderResult{page: page, err: err}
	}()

	select {
	case <-ctx.Done():
		handle.abort()
		<-ch
		return nil, ctx.Err()
	case res := <-ch:
		return res.page, res.err
	}
}

func (r *PlaywrightRenderer) render(url string, handle *abortHandle) (*RenderedPage, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: could not start playwright: %v", extractor.ErrBrowserLaunchFailure, err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: could not launch chromium: %v", extractor.ErrBrowserLaunchFailure, err)
	}
	defer browser.Close()

	if !handle.register(func() error { return browser.Close() }) {
		return nil, errors.New("render cancelled before navigation")
	}

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("%w: could not create page: %v", extractor.ErrBrowserLaunchFailure, err)
	}
	defer page.Close()

	timeoutMs := float64(r.navTimeout.Milliseconds())
	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(timeoutMs),
	}); err != nil {
		if isTimeoutErr(err) {
			return nil, fmt.Errorf("%w: navigation exceeded %s", extractor.ErrNetworkTimeout, r.navTimeout)
		}
		return nil, fmt.Errorf("navigation failed: %w", err)
	}

	// Scroll to the bottom to trigger lazy-loaded description blocks
	_, _ = page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
	page.WaitForTimeout(500)

	html, err := page.Content()
	if err != nil {
		return nil, fmt.Errorf("could not capture page content: %w", err)
	}
	title, _ := page.Title()

	return &RenderedPage{HTML: html, Title: title, FinalURL: page.URL()}, nil
}

func isTimeoutErr(err error) bool {
	return errors.Is(err, playwright.ErrTimeout)
}
