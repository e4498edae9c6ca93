/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pgn

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inhies/go-bytesize"

	"github.com/carachess/cara/internal"
)

// Source is one stream of PGN text, line oriented.
type Source interface {
	Open() error
	Close() error
	Scan() bool
	Text() string
	// Size is the (estimated, for archives) size of the data.
	Size() bytesize.ByteSize
	// BytesRead is the amount of data consumed so far.
	BytesRead() bytesize.ByteSize
}

// ByteCountingReader tracks how much data passed through a reader. Wrapping
// both sides of a decompressor gives a compression-ratio estimate for
// progress reporting.
type ByteCountingReader struct {
	reader    io.Reader
	bytesRead bytesize.ByteSize
}

func (bcr *ByteCountingReader) Read(p []byte) (n int, err error) {
	c, err := bcr.reader.Read(p)
	bcr.bytesRead += bytesize.ByteSize(uint64(c))
	return c, err
}

type closeFn func() error

// Responses for URL sources are cached locally for a day; engine game dumps
// don't change once published.
const urlCacheTTL = 24 * time.Hour

// openStream opens a local file or, for http(s) URLs, fetches the resource
// through the cached HTTP client.
func openStream(path string) (io.Reader, bytesize.ByteSize, closeFn, error) {
	if isURL(path) {
		req, err := http.NewRequest("GET", path, nil)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("unable to fetch pgn (new): %w", err)
		}
		req.Header.Set("User-Agent", internal.UserAgent)

		resp, err := internal.NewCachedHttpClient(urlCacheTTL).Do(req)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("unable to fetch pgn (do): %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, 0, nil, fmt.Errorf("unable to fetch pgn (http): %v",
				resp.StatusCode)
		}

		return resp.Body, bytesize.ByteSize(resp.ContentLength), resp.Body.Close, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, 0, nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, 0, nil, err
	}

	return file, bytesize.ByteSize(stat.Size()), file.Close, nil
}

func isURL(path string) bool {
	u, err := url.Parse(path)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

func sourceFromPath(path string) (Source, error) {
	switch filepath.Ext(path) {
	case ".zst":
		return NewZstSource(path), nil
	case ".bz2":
		return NewBzip2Source(path), nil
	case ".pgn":
		return NewPlainSource(path), nil
	default:
		return nil, fmt.Errorf("unsupported file format: %v", path)
	}
}

// ExpandPath resolves a comma-separated list of files, directories and URLs
// into sources. Directories contribute their immediate children with
// recognized extensions.
func ExpandPath(pgnPath string) ([]Source, error) {
	var sources []Source

	for _, path := range strings.Split(pgnPath, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}

		if isURL(path) {
			source, err := sourceFromPath(path)
			if err != nil {
				return nil, err
			}
			sources = append(sources, source)
			continue
		}

		stat, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if stat.IsDir() {
			dirSources, err := sourcesFromDir(path)
			if err != nil {
				return nil, err
			}
			sources = append(sources, dirSources...)
		} else {
			source, err := sourceFromPath(path)
			if err != nil {
				return nil, err
			}
			sources = append(sources, source)
		}
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("no pgn sources in %q", pgnPath)
	}

	return sources, nil
}

func sourcesFromDir(path string) ([]Source, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var sources []Source
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// skip files with unrecognized extensions rather than failing
		// the whole directory
		if source, err := sourceFromPath(filepath.Join(path, entry.Name())); err == nil {
			sources = append(sources, source)
		}
	}

	return sources, nil
}
