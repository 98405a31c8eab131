// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestGalleryType(t *testing.T) {
	ct, ext, err := GalleryType(pngBytes(t, 2, 2))
	if err != nil || ct != "image/png" || ext != ".png" {
		t.Errorf("png: got (%q, %q, %v)", ct, ext, err)
	}

	_, _, err = GalleryType([]byte("just some text"))
	if !errors.Is(err, ErrNotImage) {
		t.Errorf("text: got %v, want ErrNotImage", err)
	}
}

func TestIsGalleryExt(t *testing.T) {
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif", ".webp"} {
		if !IsGalleryExt(ext) {
			t.Errorf("%s should be listed", ext)
		}
	}
	for _, ext := range []string{".svg", ".txt", ""} {
		if IsGalleryExt(ext) {
			t.Errorf("%q should not be listed", ext)
		}
	}
}

func TestThumbnailScalesWideImages(t *testing.T) {
	thumb, err := Thumbnail(pngBytes(t, 800, 200), "image/png", ThumbMaxWidth)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	if thumb == nil {
		t.Fatal("expected a thumbnail")
	}

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("thumbnail is not JPEG: %v", err)
	}
	if cfg.Width != 400 || cfg.Height != 100 {
		t.Errorf("thumbnail size %dx%d, want 400x100", cfg.Width, cfg.Height)
	}
}

func TestThumbnailSkipsSmallOrUnsupported(t *testing.T) {
	thumb, err := Thumbnail(pngBytes(t, 300, 300), "image/png", ThumbMaxWidth)
	if err != nil || thumb != nil {
		t.Errorf("small image: got (%d bytes, %v), want (nil, nil)", len(thumb), err)
	}

	thumb, err = Thumbnail([]byte("GIF89a"), "image/gif", ThumbMaxWidth)
	if err != nil || thumb != nil {
		t.Errorf("gif: got (%d bytes, %v), want (nil, nil)", len(thumb), err)
	}
}

func TestThumbnailRejectsGarbage(t *testing.T) {
	if _, err := Thumbnail([]byte("not an image"), "image/jpeg", ThumbMaxWidth); err == nil {
		t.Error("expected decode error")
	}
}
