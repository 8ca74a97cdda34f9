package utils

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
)

// ImageAsset is a decorative image that has already been validated, so it can
// be handed to the PDF engine without risking its sticky error state.
type ImageAsset struct {
	Data []byte
	Type string // gofpdf image type: PNG, JPG, GIF
}

func sniffImage(data []byte) (ImageAsset, bool) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageAsset{}, false
	}
	switch format {
	case "png":
		return ImageAsset{Data: data, Type: "PNG"}, true
	case "jpeg":
		return ImageAsset{Data: data, Type: "JPG"}, true
	case "gif":
		return ImageAsset{Data: data, Type: "GIF"}, true
	}
	return ImageAsset{}, false
}

// LoadImageFile reads and validates an image from disk. A missing or corrupt
// file returns ok=false; rendering continues without it.
func LoadImageFile(path string) (ImageAsset, bool) {
	if path == "" {
		return ImageAsset{}, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ImageAsset{}, false
	}
	return sniffImage(data)
}

// DecodeSignature decodes a stored data-URI signature image. Accepts a bare
// base64 payload as well, matching how older records were saved.
func DecodeSignature(dataURI string) (ImageAsset, bool) {
	if dataURI == "" {
		return ImageAsset{}, false
	}
	payload := dataURI
	if idx := strings.Index(dataURI, ","); idx >= 0 {
		payload = dataURI[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(payload); err != nil {
			return ImageAsset{}, false
		}
	}
	return sniffImage(data)
}
