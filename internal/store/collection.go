// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"slices"

	"kambelconsult/internal/filestore"
)

// collection is an array-backed record file addressed by a string key.
type collection[T any] struct {
	file *filestore.File[[]T]
	key  func(*T) string
}

func newCollection[T any](dataDir, name string, key func(*T) string) collection[T] {
	return collection[T]{
		file: filestore.New(dataDir, name, filestore.Slice[T]()),
		key:  key,
	}
}

func (c collection[T]) all() []T {
	items, _ := c.file.Load()
	return items
}

func (c collection[T]) index(items []T, key string) int {
	return slices.IndexFunc(items, func(v T) bool { return c.key(&v) == key })
}

// find returns a copy of the record with the given key, or nil.
func (c collection[T]) find(key string) *T {
	items := c.all()
	if i := c.index(items, key); i >= 0 {
		return &items[i]
	}
	return nil
}

// insert appends the record built by fn. fn sees the current collection
// so it can enforce uniqueness rules before anything is written.
func (c collection[T]) insert(fn func([]T) (T, error)) (*T, error) {
	var created T
	err := c.file.Update(func(items *[]T) error {
		v, err := fn(*items)
		if err != nil {
			return err
		}
		created = v
		*items = append(*items, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// modify applies fn to the record with the given key and persists the
// result. fn also receives the whole collection for cross-record checks.
func (c collection[T]) modify(key string, fn func(all []T, v *T) error) (*T, error) {
	var updated T
	err := c.file.Update(func(items *[]T) error {
		i := c.index(*items, key)
		if i < 0 {
			return ErrNotFound
		}
		if err := fn(*items, &(*items)[i]); err != nil {
			return err
		}
		updated = (*items)[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// remove deletes the record with the given key.
func (c collection[T]) remove(key string) error {
	return c.file.Update(func(items *[]T) error {
		i := c.index(*items, key)
		if i < 0 {
			return ErrNotFound
		}
		*items = slices.Delete(*items, i, i+1)
		return nil
	})
}
