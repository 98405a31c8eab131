// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging sniffs uploaded image types and generates JPEG gallery
// thumbnails. Images narrower than the thumbnail width are not upscaled.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	// ThumbMaxWidth is the maximum thumbnail width in pixels.
	ThumbMaxWidth = 400

	// thumbQuality is the JPEG quality for generated thumbnails.
	thumbQuality = 80

	// maxImagePixels caps the number of pixels to prevent memory bombs.
	// 10000x10000 = 100 million pixels, ~400 MB decoded in RGBA.
	maxImagePixels = 100_000_000
)

// ErrNotImage is returned when uploaded bytes are not a gallery image type.
var ErrNotImage = errors.New("file is not a supported image")

// galleryTypes maps accepted gallery MIME types to file extensions.
var galleryTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// thumbableTypes are image types that get a thumbnail.
// GIF is excluded to preserve animation.
var thumbableTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Sniff detects the content type of data from its leading bytes.
func Sniff(data []byte) string {
	return mimetype.Detect(data).String()
}

// GalleryType returns the sniffed MIME type and canonical extension of a
// gallery upload, or ErrNotImage.
func GalleryType(data []byte) (contentType, ext string, err error) {
	contentType = Sniff(data)
	ext, ok := galleryTypes[contentType]
	if !ok {
		return contentType, "", ErrNotImage
	}
	return contentType, ext, nil
}

// IsGalleryExt reports whether a filename extension is listed in the gallery.
func IsGalleryExt(ext string) bool {
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	}
	return false
}

// Thumbnail creates a JPEG thumbnail of data, constrained to maxWidth while
// preserving aspect ratio. Returns nil if the image type is not thumbable
// or the image is already no wider than maxWidth.
func Thumbnail(data []byte, contentType string, maxWidth int) ([]byte, error) {
	if !thumbableTypes[contentType] {
		return nil, nil
	}

	// Decode config first to check dimensions without full decode.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("image too large: %dx%d exceeds %d pixels", cfg.Width, cfg.Height, maxImagePixels)
	}
	if cfg.Width <= maxWidth {
		return nil, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	ratio := float64(maxWidth) / float64(bounds.Dx())
	newHeight := max(1, int(float64(bounds.Dy())*ratio))

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
