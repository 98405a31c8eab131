// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package filestore persists a single JSON document (an array of records or
// one configuration object) per file. Every File serializes its own writers
// with a mutex, so a load-modify-save sequence inside Update never loses a
// concurrent change made through the same File.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// Status reports what Load found on disk.
type Status int

const (
	// StatusDefault means the file does not exist yet; the default value was returned.
	StatusDefault Status = iota
	// StatusLoaded means the file was read and decoded successfully.
	StatusLoaded
	// StatusCorrupt means the file exists but could not be read or decoded;
	// the default value was returned in its place.
	StatusCorrupt
)

func (s Status) String() string {
	switch s {
	case StatusDefault:
		return "default"
	case StatusLoaded:
		return "loaded"
	case StatusCorrupt:
		return "corrupt"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ErrCorrupt is returned by Update when the backing file exists but cannot
// be decoded. Writing over it would destroy whatever is still recoverable.
var ErrCorrupt = errors.New("record file is corrupt")

// File is one JSON document on disk.
type File[T any] struct {
	path  string
	def   func() T
	merge bool
	mu    sync.RWMutex
}

// New binds a File to dir/name. def produces the value returned when the
// file is absent. Object documents are decoded over def(), so fields
// missing from the JSON keep their default values. Array documents are
// decoded into a fresh slice: default records never leak into stored ones.
func New[T any](dir, name string, def func() T) *File[T] {
	return &File[T]{
		path:  filepath.Join(dir, name),
		def:   def,
		merge: reflect.TypeFor[T]().Kind() != reflect.Slice,
	}
}

// Slice is a default factory for array-backed files. It returns an empty,
// non-nil slice so a fresh file serializes as [] rather than null.
func Slice[T any]() func() []T {
	return func() []T { return []T{} }
}

// Path returns the absolute or relative path of the backing file.
func (f *File[T]) Path() string {
	return f.path
}

// EnsureDir creates the parent directory of the file. Failures are logged
// and otherwise ignored; the following read or write reports the real error.
func (f *File[T]) EnsureDir() {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		slog.Warn("ensure data directory", "path", f.path, "error", err)
	}
}

// Load reads and decodes the file under a shared lock.
func (f *File[T]) Load() (T, Status) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.load()
}

// Save replaces the file contents with v.
func (f *File[T]) Save(v T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(v)
}

// Update loads the current value, passes it to fn, and saves the result.
// The whole sequence holds the write lock. If fn returns an error nothing
// is written and the error is returned unchanged.
func (f *File[T]) Update(fn func(v *T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, status := f.load()
	if status == StatusCorrupt {
		return fmt.Errorf("update %s: %w", filepath.Base(f.path), ErrCorrupt)
	}
	if err := fn(&v); err != nil {
		return err
	}
	return f.save(v)
}

func (f *File[T]) load() (T, Status) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return f.def(), StatusDefault
	}
	if err != nil {
		slog.Error("read record file", "path", f.path, "error", err)
		return f.def(), StatusCorrupt
	}

	var v T
	if f.merge {
		v = f.def()
	}
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Error("decode record file", "path", f.path, "error", err)
		return f.def(), StatusCorrupt
	}
	return v, StatusLoaded
}

// save writes to a temp file in the target directory and renames it into
// place, so readers only ever observe the old or the new document.
func (f *File[T]) save(v T) error {
	f.EnsureDir()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(f.path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(f.path), err)
	}
	return nil
}

// NewID returns a fresh random record identifier.
func NewID() string {
	return uuid.NewString()
}
