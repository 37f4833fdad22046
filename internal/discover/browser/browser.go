// Package browser wraps a headless Chrome session behind a small
// fetch interface so adapters (and their tests) never touch chromedp
// directly.
package browser

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// Fetcher returns rendered page HTML for a URL.
type Fetcher interface {
	HTML(ctx context.Context, url string) (string, error)
}

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Session is a scoped headless-browser resource: acquired per adapter
// invocation (or per search keyword) and torn down before the next
// acquisition, so a failed session never blocks a new one.
type Session struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	pageTimeout time.Duration
}

// NewSession launches a headless Chrome and waits for it to be usable.
func NewSession(parent context.Context) (*Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-extensions", true),
		chromedp.UserAgent(userAgent),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancel := chromedp.NewContext(allocCtx)

	s := &Session{
		ctx:         ctx,
		cancel:      cancel,
		allocCancel: allocCancel,
		pageTimeout: 30 * time.Second,
	}

	// Start the browser now so acquisition failures surface here, not
	// on the first page load.
	if err := chromedp.Run(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// HTML navigates to url and returns the rendered document.
func (s *Session) HTML(ctx context.Context, url string) (string, error) {
	tctx, tcancel := context.WithTimeout(s.ctx, s.pageTimeout)
	defer tcancel()

	// honor the caller's deadline too
	go func() {
		select {
		case <-ctx.Done():
			tcancel()
		case <-tctx.Done():
		}
	}()

	var html string
	err := chromedp.Run(tctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", err
	}
	return html, nil
}

// Close tears the session down on every exit path. chromedp.Cancel
// asks the browser to exit and kills the child process if it does not;
// the context cancels are the last-resort cleanup behind it.
func (s *Session) Close() {
	_ = chromedp.Cancel(s.ctx)
	s.cancel()
	s.allocCancel()
}
