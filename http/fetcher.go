// Package http serves the ad generator over HTTP and fetches target pages
// with net/http.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"github.com/fwojciec/adgen"
)

// Fetch defaults.
const (
	DefaultFetchTimeout = 15 * time.Second
	DefaultMaxRedirects = 5
	DefaultUserAgent    = "Mozilla/5.0 (compatible; AdGenerator/1.0)"
	DefaultMaxBodyBytes = 10 << 20
)

// Ensure Fetcher implements adgen.Fetcher at compile time.
var _ adgen.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML from target pages with plain HTTP requests.
// It does not execute JavaScript; use rod.Fetcher for pages that need it.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	maxRedirects int
	maxBodyBytes int64
	userAgent    string
	limiter      adgen.DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for a whole request, redirects included.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxRedirects sets how many redirects are followed before giving up.
func WithMaxRedirects(n int) Option {
	return func(f *Fetcher) {
		f.maxRedirects = n
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodyBytes caps how much of a response body is read.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodyBytes = n
	}
}

// WithLimiter throttles requests per target host.
func WithLimiter(l adgen.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		maxRedirects: DefaultMaxRedirects,
		maxBodyBytes: DefaultMaxBodyBytes,
		userAgent:    DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > f.maxRedirects {
				return fmt.Errorf("stopped after %d redirects", f.maxRedirects)
			}
			return nil
		},
	}

	return f
}

// Fetch retrieves the HTML at rawURL. Failures carry a fetch error code and
// a message suitable for showing to the user.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", adgen.Errorf(adgen.EINVALID, "invalid URL: %v", err)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
			return "", classifyError(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", adgen.Errorf(adgen.EINVALID, "invalid URL: %v", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classifyError(err)
	}
	defer resp.Body.Close()

	if err := adgen.StatusError(resp.StatusCode); err != nil {
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return "", classifyError(err)
	}

	return string(body), nil
}

// Close is a no-op; http.Client needs no cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func classifyError(err error) error {
	var dnsErr *net.DNSError
	var netErr net.Error
	switch {
	case errors.As(err, &dnsErr):
		return adgen.Errorf(adgen.EUNREACHABLE, adgen.MsgUnreachable)
	case errors.Is(err, syscall.ECONNREFUSED):
		return adgen.Errorf(adgen.EREFUSED, adgen.MsgRefused)
	case errors.Is(err, context.DeadlineExceeded):
		return adgen.Errorf(adgen.ETIMEOUT, adgen.MsgTimeout)
	case errors.As(err, &netErr) && netErr.Timeout():
		return adgen.Errorf(adgen.ETIMEOUT, adgen.MsgTimeout)
	default:
		return adgen.Errorf(adgen.EFETCH, adgen.MsgFetch)
	}
}
