package adgen

import (
	"context"
	"net/http"
)

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// Failures are reported with one of the fetch error codes
	// (EUNREACHABLE, EREFUSED, ETIMEOUT, EFORBIDDEN, ENOTFOUND, EUPSTREAM, EFETCH).
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter rate-limits outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}

// Messages reported for failed fetches.
const (
	MsgUnreachable = "URL not found or unreachable"
	MsgRefused     = "Connection refused by server"
	MsgTimeout     = "Request timed out - server took too long to respond"
	MsgForbidden   = "Access forbidden - website blocked our request"
	MsgNotFound    = "Page not found (404)"
	MsgUpstream    = "Server error on target website"
	MsgFetch       = "Failed to fetch content from URL"
)

// StatusError maps the HTTP status of a fetched page to a fetch error.
// It returns nil for 2xx statuses.
func StatusError(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusForbidden:
		return Errorf(EFORBIDDEN, MsgForbidden)
	case status == http.StatusNotFound:
		return Errorf(ENOTFOUND, MsgNotFound)
	case status >= 500:
		return Errorf(EUPSTREAM, MsgUpstream)
	default:
		return Errorf(EFETCH, MsgFetch)
	}
}
