/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gregjones/httpcache"

	"github.com/carachess/cara/webcache"
)

// NewCachedHttpClient returns an http.Client that caches responses in the
// user cache directory. If cache initialization fails, it falls back to an
// uncached client instead of failing.
// It also enforces a client-side TTL by rewriting origin cache headers.
func NewCachedHttpClient(maxAge time.Duration) *http.Client {
	base, err := os.UserCacheDir()
	if err != nil {
		log.Printf("httpcache: warning no user cache dir: %v; falling back to uncached http", err)
		return http.DefaultClient
	}

	return NewCachedHttpClientAt(filepath.Join(base, CacheDirName), maxAge)
}

// NewCachedHttpClientAt is NewCachedHttpClient with an explicit cache
// directory.
func NewCachedHttpClientAt(dir string, maxAge time.Duration) *http.Client {
	cache := webcache.New(dir, true, true)

	if err := cache.Init(); err != nil {
		log.Printf("httpcache: warning failed to init cache: %v; falling back to uncached http", err)
		return http.DefaultClient
	}

	hc := httpcache.NewTransport(cache)
	// we have to inject our own header overrides here in order to override
	// server responses that might indicate caching shouldn't be done
	hc.Transport = &HeaderOverrideTransport{
		wrappedRT: http.DefaultTransport,
		Response: func(resp *http.Response) error {
			// Strip any cache-busting headers from origin
			resp.Header.Del("Pragma")
			resp.Header.Del("Expires")
			resp.Header.Del("Cache-Control")
			// Enforce the provided TTL
			resp.Header.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge/time.Second)))
			return nil
		},
	}

	return &http.Client{Transport: hc}
}

type HeaderOverrideTransport struct {
	Request  func(req *http.Request)
	Response func(resp *http.Response) error

	// Underlying RoundTripper (e.g. default transport or another decorator)
	wrappedRT http.RoundTripper
}

// RoundTrip applies Request and Response hooks around the underlying transport.
func (t *HeaderOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so we don't stomp on the caller's original
	req2 := req.Clone(req.Context())
	if t.Request != nil {
		t.Request(req2)
	}

	resp, err := t.wrappedRT.RoundTrip(req2)
	if err != nil {
		return nil, err
	}

	if t.Response != nil {
		if err := t.Response(resp); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
