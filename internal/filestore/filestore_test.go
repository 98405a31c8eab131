// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type settings struct {
	Theme string `json:"theme"`
	Limit int    `json:"limit"`
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	f := New(t.TempDir(), "records.json", Slice[record]())

	got, status := f.Load()
	if status != StatusDefault {
		t.Errorf("status: got %v, want %v", status, StatusDefault)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestLoadCorruptFileIsFlagged(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "records.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	f := New(dir, "records.json", Slice[record]())

	got, status := f.Load()
	if status != StatusCorrupt {
		t.Errorf("status: got %v, want %v", status, StatusCorrupt)
	}
	if len(got) != 0 {
		t.Errorf("expected default value, got %#v", got)
	}
}

func TestUpdateRefusesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.json")
	if err := os.WriteFile(path, []byte("[{"), 0o644); err != nil {
		t.Fatal(err)
	}
	f := New(dir, "records.json", Slice[record]())

	err := f.Update(func(v *[]record) error {
		*v = append(*v, record{ID: "1"})
		return nil
	})
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "[{" {
		t.Errorf("corrupt file was overwritten: %q", data)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "nested", "data"), "records.json", Slice[record]())

	want := []record{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta"}}
	if err := f.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, status := f.Load()
	if status != StatusLoaded {
		t.Fatalf("status: got %v, want %v", status, StatusLoaded)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestSaveWritesIndentedJSON(t *testing.T) {
	f := New(t.TempDir(), "records.json", Slice[record]())
	if err := f.Save([]record{{ID: "a", Name: "Alpha"}}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(f.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  {\n    \"id\": \"a\"") {
		t.Errorf("expected two-space indented JSON, got:\n%s", data)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	f := New(dir, "records.json", Slice[record]())
	for i := 0; i < 3; i++ {
		if err := f.Save([]record{{ID: "x"}}); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "records.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("unexpected directory contents: %v", names)
	}
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(`{"theme":"dark"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	f := New(dir, "settings.json", func() settings { return settings{Theme: "light", Limit: 10} })

	got, status := f.Load()
	if status != StatusLoaded {
		t.Fatalf("status: got %v", status)
	}
	if got.Theme != "dark" {
		t.Errorf("Theme: got %q, want %q", got.Theme, "dark")
	}
	if got.Limit != 10 {
		t.Errorf("Limit: got %d, want default 10", got.Limit)
	}
}

func TestLoadArrayIgnoresDefaultRecords(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "records.json"), []byte(`[{"id":"2"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	f := New(dir, "records.json", func() []record {
		return []record{{ID: "1", Name: "seeded"}, {ID: "2", Name: "other"}}
	})

	got, status := f.Load()
	if status != StatusLoaded {
		t.Fatalf("status: got %v", status)
	}
	if len(got) != 1 {
		t.Fatalf("len: got %d, want 1", len(got))
	}
	if got[0].ID != "2" || got[0].Name != "" {
		t.Errorf("record: got %+v, want only the stored fields", got[0])
	}
}

func TestUpdateAbortsOnError(t *testing.T) {
	f := New(t.TempDir(), "records.json", Slice[record]())
	if err := f.Save([]record{{ID: "keep"}}); err != nil {
		t.Fatal(err)
	}

	sentinel := errors.New("stop")
	err := f.Update(func(v *[]record) error {
		*v = nil
		return sentinel
	})
	if err != sentinel {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	got, _ := f.Load()
	if len(got) != 1 || got[0].ID != "keep" {
		t.Errorf("file changed after aborted update: %#v", got)
	}
}

func TestUpdateConcurrentWritersLoseNothing(t *testing.T) {
	f := New(t.TempDir(), "records.json", Slice[record]())

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f.Update(func(v *[]record) error {
				*v = append(*v, record{ID: NewID()})
				return nil
			})
			if err != nil {
				t.Errorf("Update: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := f.Load()
	if len(got) != writers {
		t.Errorf("records: got %d, want %d", len(got), writers)
	}
}

func TestNewIDIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusDefault, "default"},
		{StatusLoaded, "loaded"},
		{StatusCorrupt, "corrupt"},
		{Status(9), "status(9)"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}
