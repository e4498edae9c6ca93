/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 *
 * Package webcache provides an implementation of httpcache.Cache that stores
 * and retrieves data in a local directory. Entries are keyed by the md5 of
 * the cache key and may optionally be stored gzipped.
 */
package webcache

import (
	"bytes"
	"compress/gzip"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Cache objects store and retrieve data in a local directory.
type Cache struct {
	// dir is the directory holding cache entries.
	dir string

	// gzip indicates whether cache entries should be gzipped in Set and
	// gunzipped in Get. If true, cache entry files have the suffix ".gz".
	gzip bool

	// logErrors controls whether errors should be logged or not
	logErrors bool
}

// New returns a new Cache with underlying storage in the specified
// directory. Additionally, specify whether entries persisted in the cache
// should be compressed with gzip or not. Callers should take care to invoke
// Init() on the returned Cache object before use.
func New(dir string, gzip bool, logErrors bool) *Cache {
	return &Cache{
		dir:       dir,
		gzip:      gzip,
		logErrors: logErrors,
	}
}

// Init creates the cache directory if it does not exist yet.
func (c *Cache) Init() error {
	return os.MkdirAll(c.dir, 0o755)
}

func (c *Cache) Get(key string) ([]byte, bool) {
	path := c.entryPath(key)

	file, err := os.Open(path)
	if err != nil {
		if c.logErrors && !errors.Is(err, fs.ErrNotExist) {
			// a missing entry just indicates a cache miss
			log.Printf("webcache.get: failed to open entry %v: %v", path, err)
		}
		return []byte{}, false
	}
	defer file.Close()

	var rdr io.Reader = file
	if c.gzip {
		gzr, err := gzip.NewReader(file)
		if err != nil {
			if c.logErrors {
				log.Printf("webcache.get: failed to open compressed entry %v: %v",
					path, err)
			}
			return nil, false
		}
		defer gzr.Close()
		rdr = gzr
	}

	data, err := io.ReadAll(rdr)
	if err != nil {
		if c.logErrors {
			log.Printf("webcache.get: failed to read entry %v: %v", path, err)
		}
	}

	return data, err == nil
}

// Set stores the provided data in the cache under the given key.
func (c *Cache) Set(key string, data []byte) {
	path := c.entryPath(key)

	if c.gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(data); err != nil {
			if c.logErrors {
				log.Printf("webcache.set: failed to gzip data for %v: %v", path, err)
			}
			return
		}
		if err := gw.Close(); err != nil {
			if c.logErrors {
				log.Printf("webcache.set: failed to close gzip writer for %v: %v",
					path, err)
			}
			return
		}
		data = buf.Bytes()
	}

	// write-then-rename so concurrent readers never see a partial entry
	tmp, err := os.CreateTemp(c.dir, "entry*")
	if err != nil {
		if c.logErrors {
			log.Printf("webcache.set: failed to create entry for %v: %v", path, err)
		}
		return
	}

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		os.Remove(tmp.Name())
		if c.logErrors {
			log.Printf("webcache.set: put failed for %v: %v", path, err)
		}
	}
}

func (c *Cache) Delete(key string) {
	err := os.Remove(c.entryPath(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		if c.logErrors {
			log.Printf("webcache.delete: delete failed: %v", err)
		}
	}
}

func (c *Cache) entryPath(key string) string {
	h := md5.New()
	io.WriteString(h, key)
	name := hex.EncodeToString(h.Sum(nil))
	if c.gzip {
		name += ".gz"
	}

	return filepath.Join(c.dir, name)
}
