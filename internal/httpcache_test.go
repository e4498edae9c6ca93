/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCachedHttpClient(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			hits++
			// cache-busting headers are stripped client side
			w.Header().Set("Cache-Control", "no-store")
			w.Header().Set("Pragma", "no-cache")
			io.WriteString(w, "pgn payload")
		}))
	defer server.Close()

	client := NewCachedHttpClientAt(t.TempDir(), 5*time.Minute)
	if client == http.DefaultClient {
		t.Fatal("client fell back to uncached http")
	}

	for i := 0; i < 3; i++ {
		req, err := http.NewRequest("GET", server.URL, nil)
		if err != nil {
			t.Fatalf("NewRequest: %v", err)
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}

		if string(data) != "pgn payload" {
			t.Errorf("request %d: body = %q", i, data)
		}
		if i > 0 && resp.Header.Get("X-From-Cache") != "1" {
			t.Errorf("request %d not served from cache", i)
		}
	}

	if hits != 1 {
		t.Errorf("origin hit %d times; want 1", hits)
	}
}

func TestCachedHttpClientBadDir(t *testing.T) {
	// a cache directory that cannot be created falls back to uncached
	client := NewCachedHttpClientAt("/dev/null/cache", time.Minute)
	if client != http.DefaultClient {
		t.Error("expected fallback to http.DefaultClient")
	}
}
