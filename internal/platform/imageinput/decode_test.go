package imageinput

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	t.Parallel()

	pngData := encodePNG(t, 4, 3)
	jpegData := encodeJPEG(t, 8, 6)

	tests := []struct {
		name       string
		data       []byte
		maxBytes   int64
		wantMIME   string
		wantWidth  int
		wantHeight int
		wantErr    error
	}{
		{name: "png", data: pngData, wantMIME: "image/png", wantWidth: 4, wantHeight: 3},
		{name: "jpeg", data: jpegData, wantMIME: "image/jpeg", wantWidth: 8, wantHeight: 6},
		{name: "empty", data: nil, wantErr: ErrEmptyImage},
		{name: "too large", data: pngData, maxBytes: 10, wantErr: ErrImageTooLarge},
		{name: "gif rejected", data: []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;"), wantErr: ErrUnsupportedImage},
		{name: "text rejected", data: []byte("not an image"), wantErr: ErrUnsupportedImage},
		{name: "truncated png", data: pngData[:12], wantErr: ErrUndecodableImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			img, err := Decode(tt.data, tt.maxBytes)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if img.MIMEType != tt.wantMIME {
				t.Errorf("mime: got %q, want %q", img.MIMEType, tt.wantMIME)
			}
			if img.Width != tt.wantWidth || img.Height != tt.wantHeight {
				t.Errorf("size: got %dx%d, want %dx%d", img.Width, img.Height, tt.wantWidth, tt.wantHeight)
			}
			if !bytes.Equal(img.Data, tt.data) {
				t.Error("image bytes must be kept whole")
			}
		})
	}
}
