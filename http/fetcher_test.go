package http_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/adgen"
	adgenhttp "github.com/fwojciec/adgen/http"
	"github.com/fwojciec/adgen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := adgenhttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("sends browser-like headers", func(t *testing.T) {
		t.Parallel()

		headers := make(chan http.Header, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers <- r.Header.Clone()
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		_, err := adgenhttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		got := <-headers
		assert.Equal(t, adgenhttp.DefaultUserAgent, got.Get("User-Agent"))
		assert.Contains(t, got.Get("Accept"), "text/html")
		assert.Equal(t, "en-US,en;q=0.5", got.Get("Accept-Language"))
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		agents := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agents <- r.UserAgent()
		}))
		defer server.Close()

		_, err := adgenhttp.NewFetcher(adgenhttp.WithUserAgent("test-agent/2.0")).Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "test-agent/2.0", <-agents)
	})

	t.Run("maps status codes to messages", func(t *testing.T) {
		t.Parallel()

		for _, tc := range []struct {
			status  int
			code    string
			message string
		}{
			{http.StatusForbidden, adgen.EFORBIDDEN, adgen.MsgForbidden},
			{http.StatusNotFound, adgen.ENOTFOUND, adgen.MsgNotFound},
			{http.StatusInternalServerError, adgen.EUPSTREAM, adgen.MsgUpstream},
			{http.StatusBadGateway, adgen.EUPSTREAM, adgen.MsgUpstream},
			{http.StatusTeapot, adgen.EFETCH, adgen.MsgFetch},
		} {
			t.Run(fmt.Sprint(tc.status), func(t *testing.T) {
				t.Parallel()

				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tc.status)
				}))
				defer server.Close()

				_, err := adgenhttp.NewFetcher().Fetch(context.Background(), server.URL)

				require.Error(t, err)
				assert.Equal(t, tc.code, adgen.ErrorCode(err))
				assert.Equal(t, tc.message, adgen.ErrorMessage(err))
			})
		}
	})

	t.Run("times out slow servers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := adgenhttp.NewFetcher(adgenhttp.WithTimeout(20 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, adgen.ETIMEOUT, adgen.ErrorCode(err))
		assert.Equal(t, adgen.MsgTimeout, adgen.ErrorMessage(err))
	})

	t.Run("reports refused connections", func(t *testing.T) {
		t.Parallel()

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		addr := ln.Addr().String()
		require.NoError(t, ln.Close())

		_, err = adgenhttp.NewFetcher().Fetch(context.Background(), "http://"+addr+"/")

		require.Error(t, err)
		assert.Equal(t, adgen.EREFUSED, adgen.ErrorCode(err))
		assert.Equal(t, adgen.MsgRefused, adgen.ErrorMessage(err))
	})

	t.Run("reports unresolvable hosts", func(t *testing.T) {
		t.Parallel()

		fetcher := adgenhttp.NewFetcher(adgenhttp.WithTimeout(2 * time.Second))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")

		require.Error(t, err)
		assert.Equal(t, adgen.EUNREACHABLE, adgen.ErrorCode(err))
	})

	t.Run("follows redirects up to the limit", func(t *testing.T) {
		t.Parallel()

		var server *httptest.Server
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var n int
			_, _ = fmt.Sscanf(r.URL.Path, "/hop/%d", &n)
			if n < 3 {
				http.Redirect(w, r, fmt.Sprintf("%s/hop/%d", server.URL, n+1), http.StatusFound)
				return
			}
			_, _ = w.Write([]byte("arrived"))
		}))
		defer server.Close()

		html, err := adgenhttp.NewFetcher(adgenhttp.WithMaxRedirects(3)).Fetch(context.Background(), server.URL+"/hop/0")

		require.NoError(t, err)
		assert.Equal(t, "arrived", html)
	})

	t.Run("fails past the redirect limit", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, r.URL.Path+"x", http.StatusFound)
		}))
		defer server.Close()

		_, err := adgenhttp.NewFetcher(adgenhttp.WithMaxRedirects(2)).Fetch(context.Background(), server.URL+"/")

		require.Error(t, err)
		assert.Equal(t, adgen.EFETCH, adgen.ErrorCode(err))
	})

	t.Run("caps body size", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("0123456789"))
		}))
		defer server.Close()

		html, err := adgenhttp.NewFetcher(adgenhttp.WithMaxBodyBytes(4)).Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "0123", html)
	})

	t.Run("waits on limiter for target host", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()

		var domain string
		limiter := &mock.DomainLimiter{
			WaitFn: func(_ context.Context, d string) error {
				domain = d
				return nil
			},
		}

		_, err := adgenhttp.NewFetcher(adgenhttp.WithLimiter(limiter)).Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1", domain)
	})

	t.Run("fails when canceled", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := adgenhttp.NewFetcher().Fetch(ctx, server.URL)

		require.Error(t, err)
	})
}
