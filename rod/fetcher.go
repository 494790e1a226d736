// Package rod fetches JavaScript-rendered pages with a headless Chrome
// driven by go-rod.
package rod

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/adgen"
	"github.com/go-rod/rod/lib/proto"
)

// Fetch defaults.
const (
	DefaultFetchTimeout = 15 * time.Second
	DefaultMaxPages     = 75
)

// Ensure Fetcher implements adgen.Fetcher at compile time.
var _ adgen.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// It is safe for concurrent use.
type Fetcher struct {
	browser   *browser
	timeout   time.Duration
	maxPages  int
	userAgent string
	limiter   adgen.DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout bounds navigation and load of a single page.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPages sets how many pages are rendered before Chrome is restarted.
// Zero disables recycling.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// WithUserAgent overrides the browser User-Agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter throttles requests per target host.
func WithLimiter(l adgen.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher launches a headless Chrome and returns a Fetcher using it.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	b, err := newBrowser(f.maxPages)
	if err != nil {
		return nil, err
	}
	f.browser = b
	return f, nil
}

// Fetch navigates to rawURL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ClassifyError(err)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", adgen.Errorf(adgen.EINVALID, "invalid URL: %v", err)
	}
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
			return "", ClassifyError(err)
		}
	}

	b, err := f.browser.acquire()
	if err != nil {
		return "", adgen.Errorf(adgen.EINTERNAL, "%v", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", adgen.Errorf(adgen.EINTERNAL, "opening page: %v", err)
	}
	defer page.Close()

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", adgen.Errorf(adgen.EINTERNAL, "setting user agent: %v", err)
		}
	}

	page = page.Context(ctx).Timeout(f.timeout)

	// Chrome renders error pages without failing navigation, so the status
	// of the main document response is checked explicitly.
	var status int
	waitDocument := page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument {
			return false
		}
		status = e.Response.Status
		return true
	})

	if err := page.Navigate(rawURL); err != nil {
		return "", ClassifyError(err)
	}
	waitDocument()
	if status != 0 {
		if err := adgen.StatusError(status); err != nil {
			return "", err
		}
	}
	if err := page.WaitLoad(); err != nil {
		return "", ClassifyError(err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", ClassifyError(err)
	}
	return html, nil
}

// Close shuts down the browser. It is safe to call more than once.
func (f *Fetcher) Close() error {
	return f.browser.close()
}

// LauncherPID returns the process ID of the running Chrome launcher.
func (f *Fetcher) LauncherPID() int {
	return f.browser.pid()
}

// ClassifyError maps Chrome network failures to fetch error codes.
// Cancellation is returned unchanged.
func ClassifyError(err error) error {
	msg := err.Error()
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return adgen.Errorf(adgen.ETIMEOUT, adgen.MsgTimeout)
	case errors.Is(err, context.Canceled):
		return err
	case strings.Contains(msg, "ERR_NAME_NOT_RESOLVED"), strings.Contains(msg, "ERR_ADDRESS_UNREACHABLE"):
		return adgen.Errorf(adgen.EUNREACHABLE, adgen.MsgUnreachable)
	case strings.Contains(msg, "ERR_CONNECTION_REFUSED"):
		return adgen.Errorf(adgen.EREFUSED, adgen.MsgRefused)
	case strings.Contains(msg, "ERR_TIMED_OUT"):
		return adgen.Errorf(adgen.ETIMEOUT, adgen.MsgTimeout)
	default:
		return adgen.Errorf(adgen.EFETCH, adgen.MsgFetch)
	}
}
