package utils

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.Black)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeSignatureDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(tinyPNG(t))

	asset, ok := DecodeSignature("data:image/png;base64," + payload)
	if !ok {
		t.Fatalf("valid data URI should decode")
	}
	if asset.Type != "PNG" {
		t.Fatalf("expected PNG asset, got %q", asset.Type)
	}
}

func TestDecodeSignatureBarePayload(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(tinyPNG(t))
	if _, ok := DecodeSignature(payload); !ok {
		t.Fatalf("bare base64 payload should decode")
	}
}

func TestDecodeSignatureRejectsGarbage(t *testing.T) {
	if _, ok := DecodeSignature(""); ok {
		t.Fatalf("empty signature must not decode")
	}
	if _, ok := DecodeSignature("data:image/png;base64,!!!"); ok {
		t.Fatalf("invalid base64 must not decode")
	}
	notImage := base64.StdEncoding.EncodeToString([]byte("plain text"))
	if _, ok := DecodeSignature("data:image/png;base64," + notImage); ok {
		t.Fatalf("non-image payload must not decode")
	}
}

func TestLoadImageFileMissing(t *testing.T) {
	if _, ok := LoadImageFile(""); ok {
		t.Fatalf("empty path must not load")
	}
	if _, ok := LoadImageFile("/does/not/exist.png"); ok {
		t.Fatalf("missing file must not load")
	}
}
