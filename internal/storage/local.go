// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Local stores objects as files under a root directory that is also
// served as static content.
type Local struct {
	root string
}

// NewLocal creates a Local storage rooted at dir.
func NewLocal(dir string) *Local {
	return &Local{root: dir}
}

func (l *Local) path(key string) (string, error) {
	clean := CleanKey(key)
	if clean == "" {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(l.root, filepath.FromSlash(clean)), nil
}

// Put writes body to root/key, creating parent directories.
func (l *Local) Put(_ context.Context, key, _ string, body io.Reader, _ int64) error {
	p, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create media directory: %w", err)
	}
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("create %s: %w", key, err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(p)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", key, err)
	}
	return nil
}

// Delete removes root/key. A missing file is ignored.
func (l *Local) Delete(_ context.Context, key string) error {
	p, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// List returns the regular files directly inside root/dir. A missing
// directory is created and listed as empty.
func (l *Local) List(_ context.Context, dir string) ([]Object, error) {
	p, err := l.path(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(p, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	entries, err := os.ReadDir(p)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	prefix := CleanKey(dir) + "/"
	objects := make([]Object, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		objects = append(objects, Object{
			Key:     prefix + e.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

// URL returns the site-relative path of key.
func (l *Local) URL(key string) string {
	return "/" + CleanKey(key)
}

// KeyFromURL strips the leading slash of a site-relative path.
func (l *Local) KeyFromURL(rawURL string) (string, bool) {
	if !strings.HasPrefix(rawURL, "/") || strings.HasPrefix(rawURL, "//") {
		return "", false
	}
	key := CleanKey(rawURL)
	return key, key != ""
}
