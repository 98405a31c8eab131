// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"kambelconsult/internal/cache"
	"kambelconsult/internal/imaging"
	"kambelconsult/internal/models"
	"kambelconsult/internal/storage"
	"kambelconsult/internal/store"
)

const (
	// maxUploadSize is the maximum accepted upload size (10 MB).
	maxUploadSize = 10 << 20

	galleryDir = "gallery"
	thumbDir   = "gallery/thumbs"
)

// faviconExts are the accepted favicon file extensions.
var faviconExts = map[string]bool{
	"ico": true, "svg": true, "png": true, "jpg": true, "jpeg": true, "gif": true, "webp": true,
}

// Media groups the gallery and favicon upload handlers.
type Media struct {
	settings *store.SettingsStore
	storage  storage.Storage
	cache    *cache.ResponseCache
	now      func() time.Time
}

// NewMedia creates the media handler group. cache may be nil.
func NewMedia(settings *store.SettingsStore, st storage.Storage, responseCache *cache.ResponseCache) *Media {
	return &Media{
		settings: settings,
		storage:  st,
		cache:    responseCache,
		now:      time.Now,
	}
}

// thumbName returns the thumbnail file name for a gallery image.
func thumbName(filename string) string {
	return strings.TrimSuffix(filename, path.Ext(filename)) + ".jpg"
}

// GalleryList returns the gallery images with 1-based positional ids.
func (m *Media) GalleryList(w http.ResponseWriter, r *http.Request) {
	objects, err := m.storage.List(r.Context(), galleryDir)
	if err != nil {
		slog.Error("list gallery", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load images")
		return
	}

	thumbs := make(map[string]bool)
	if thumbObjects, err := m.storage.List(r.Context(), thumbDir); err != nil {
		slog.Warn("list gallery thumbnails", "error", err)
	} else {
		for _, t := range thumbObjects {
			thumbs[t.Name()] = true
		}
	}

	images := make([]models.GalleryImage, 0, len(objects))
	for _, obj := range objects {
		name := obj.Name()
		if !imaging.IsGalleryExt(strings.ToLower(path.Ext(name))) {
			continue
		}
		img := models.GalleryImage{
			ID:         len(images) + 1,
			Filename:   name,
			URL:        m.storage.URL(obj.Key),
			UploadedAt: obj.ModTime.UTC(),
			Type:       "carousel",
		}
		if thumbs[thumbName(name)] {
			img.ThumbURL = m.storage.URL(thumbDir + "/" + thumbName(name))
		}
		images = append(images, img)
	}
	writeJSON(w, http.StatusOK, envelope{"images": images})
}

// readUpload reads the multipart file field. On failure it writes the
// response and returns ok=false.
func readUpload(w http.ResponseWriter, r *http.Request, field, missingMsg string) (data []byte, filename string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1<<20)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest, "File too large (max 10 MB)")
		} else {
			writeError(w, http.StatusBadRequest, missingMsg)
		}
		return nil, "", false
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		writeError(w, http.StatusBadRequest, missingMsg)
		return nil, "", false
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, http.StatusBadRequest, "File too large (max 10 MB)")
		return nil, "", false
	}
	data, err = io.ReadAll(file)
	if err != nil {
		slog.Error("read upload", "field", field, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return nil, "", false
	}
	return data, header.Filename, true
}

// GalleryUpload stores an image in the gallery together with a JPEG
// thumbnail when the image is wider than the thumbnail size.
func (m *Media) GalleryUpload(w http.ResponseWriter, r *http.Request) {
	data, _, ok := readUpload(w, r, "image", "No file uploaded")
	if !ok {
		return
	}

	contentType, ext, err := imaging.GalleryType(data)
	if errors.Is(err, imaging.ErrNotImage) {
		writeError(w, http.StatusBadRequest, "Only JPEG, PNG, GIF and WebP images are allowed")
		return
	}

	filename := fmt.Sprintf("image-%d%s", m.now().UnixMilli(), ext)
	key := galleryDir + "/" + filename
	if err := m.storage.Put(r.Context(), key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		slog.Error("store gallery image", "key", key, "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{"error": "Failed to upload image", "details": err.Error()})
		return
	}

	resp := envelope{
		"success":  true,
		"message":  "Image uploaded successfully",
		"filename": filename,
		"url":      m.storage.URL(key),
	}

	thumb, err := imaging.Thumbnail(data, contentType, imaging.ThumbMaxWidth)
	if err != nil {
		// The original is stored; the gallery falls back to it.
		slog.Warn("thumbnail generation failed", "key", key, "error", err)
	}
	if thumb != nil {
		thumbKey := thumbDir + "/" + thumbName(filename)
		if err := m.storage.Put(r.Context(), thumbKey, "image/jpeg", bytes.NewReader(thumb), int64(len(thumb))); err != nil {
			slog.Warn("store gallery thumbnail", "key", thumbKey, "error", err)
		} else {
			resp["thumbUrl"] = m.storage.URL(thumbKey)
		}
	}

	m.cache.Invalidate(r.Context(), EntityGallery)
	slog.Info("gallery image uploaded", "key", key, "size", len(data))
	writeJSON(w, http.StatusCreated, resp)
}

// GalleryDelete removes a gallery image and its thumbnail. The file is
// named by ?filename=; only its base name is used. Deleting a missing
// image succeeds.
func (m *Media) GalleryDelete(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("filename")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "Missing filename")
		return
	}
	name := path.Base(storage.CleanKey(raw))
	if name == "." || name == "/" || !imaging.IsGalleryExt(strings.ToLower(path.Ext(name))) {
		writeError(w, http.StatusBadRequest, "Invalid filename")
		return
	}

	key := galleryDir + "/" + name
	if err := m.storage.Delete(r.Context(), key); err != nil {
		slog.Error("delete gallery image", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete image")
		return
	}
	if err := m.storage.Delete(r.Context(), thumbDir+"/"+thumbName(name)); err != nil {
		slog.Warn("delete gallery thumbnail", "key", key, "error", err)
	}

	m.cache.Invalidate(r.Context(), EntityGallery)
	writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Image deleted successfully"})
}

// FaviconGet returns the active and custom favicon paths.
func (m *Media) FaviconGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{"favicon": m.settings.Get().Favicon})
}

// FaviconUpload stores a custom favicon at the public root and makes it
// active. The previous custom favicon, if any, is removed.
func (m *Media) FaviconUpload(w http.ResponseWriter, r *http.Request) {
	data, original, ok := readUpload(w, r, "favicon", "No file provided")
	if !ok {
		return
	}

	ext := "svg"
	if i := strings.LastIndex(original, "."); i >= 0 && i < len(original)-1 {
		ext = strings.ToLower(original[i+1:])
	}
	if !faviconExts[ext] {
		writeError(w, http.StatusBadRequest, "Unsupported favicon type")
		return
	}

	filename := fmt.Sprintf("favicon-%d.%s", m.now().UnixMilli(), ext)
	if err := m.storage.Put(r.Context(), filename, imaging.Sniff(data), bytes.NewReader(data), int64(len(data))); err != nil {
		slog.Error("store favicon", "key", filename, "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{"error": "Failed to upload favicon", "details": err.Error()})
		return
	}

	url := m.storage.URL(filename)
	previous, err := m.settings.SetFavicon(url)
	if err != nil {
		storeError(w, r, err, "Settings")
		return
	}
	if previous != nil && *previous != url {
		m.deleteByURL(r, *previous)
	}

	m.cache.Invalidate(r.Context(), EntitySettings)
	slog.Info("favicon uploaded", "key", filename)
	writeJSON(w, http.StatusOK, envelope{
		"message":  "Favicon uploaded successfully",
		"filename": filename,
		"url":      url,
	})
}

// FaviconDelete removes the custom favicon and restores the default.
func (m *Media) FaviconDelete(w http.ResponseWriter, r *http.Request) {
	custom, err := m.settings.ResetFavicon()
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusOK, envelope{"message": "No custom favicon to delete"})
		return
	}
	if err != nil {
		storeError(w, r, err, "Settings")
		return
	}
	m.deleteByURL(r, custom)

	m.cache.Invalidate(r.Context(), EntitySettings)
	writeJSON(w, http.StatusOK, envelope{"message": "Favicon reset to default"})
}

// deleteByURL removes the stored object behind a public URL. Failures are
// logged; the settings change has already been saved.
func (m *Media) deleteByURL(r *http.Request, rawURL string) {
	key, ok := m.storage.KeyFromURL(rawURL)
	if !ok {
		slog.Warn("favicon url outside storage", "url", rawURL)
		return
	}
	if err := m.storage.Delete(r.Context(), key); err != nil {
		slog.Warn("delete favicon", "key", key, "error", err)
	}
}
