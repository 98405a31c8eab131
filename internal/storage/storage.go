// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage stores uploaded media (gallery images, thumbnails,
// favicons) either under the local public directory or in an
// S3-compatible bucket. Keys are slash-separated paths relative to the
// public root, e.g. "gallery/image-1700000000000.jpg".
package storage

import (
	"context"
	"io"
	"path"
	"strings"
	"time"
)

// Object describes one stored file.
type Object struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// Name returns the final path element of the key.
func (o Object) Name() string {
	return path.Base(o.Key)
}

// Storage is the media backend used by the upload handlers.
type Storage interface {
	// Put writes body under key, replacing any existing object.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	// Delete removes key. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
	// List returns the objects directly under dir (not recursive), sorted by key.
	List(ctx context.Context, dir string) ([]Object, error)
	// URL returns the public URL of key.
	URL(key string) string
	// KeyFromURL maps a URL returned by URL back to its key.
	KeyFromURL(rawURL string) (string, bool)
}

// CleanKey normalizes a key and rejects anything that escapes the root.
// A leading ".." is dropped by cleaning against "/", so the result never
// leaves the root. Returns "" for an empty key.
func CleanKey(key string) string {
	key = strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(key, "\\", "/")), "/")
	return key
}
