// Package imaging handles the base64 data URIs used to embed logos and
// item photos inside stored documents.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const (
	// MaxImageBytes caps raw uploads at 2 MiB so a single photo cannot
	// bloat the backing store.
	MaxImageBytes = 2 << 20

	// maxPixels rejects decompression bombs that fit the byte cap.
	maxPixels = 8_000_000
)

// EncodeUpload validates raw image bytes and returns them as a data URI
// suitable for storage alongside the record that owns the image.
func EncodeUpload(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image upload")
	}
	if len(data) > MaxImageBytes {
		return "", fmt.Errorf("image exceeds %d bytes", MaxImageBytes)
	}

	mime := http.DetectContentType(data)
	switch mime {
	case "image/png", "image/jpeg", "image/gif":
	default:
		return "", fmt.Errorf("unsupported image type %s", mime)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width*cfg.Height > maxPixels {
		return "", fmt.Errorf("image dimensions %dx%d too large", cfg.Width, cfg.Height)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Decode parses a data URI back into raw bytes plus the image type name
// the PDF renderer expects ("PNG", "JPG" or "GIF"). The bytes are decoded
// again here so callers can skip corrupt images instead of aborting a
// whole document.
func Decode(dataURI string) ([]byte, string, error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return nil, "", fmt.Errorf("not a data URI")
	}
	idx := strings.Index(dataURI, ",")
	if idx < 0 {
		return nil, "", fmt.Errorf("malformed data URI")
	}
	header := dataURI[len("data:"):idx]
	if !strings.HasSuffix(header, ";base64") {
		return nil, "", fmt.Errorf("unsupported data URI encoding")
	}

	var kind string
	switch strings.TrimSuffix(header, ";base64") {
	case "image/png":
		kind = "PNG"
	case "image/jpeg", "image/jpg":
		kind = "JPG"
	case "image/gif":
		kind = "GIF"
	default:
		return nil, "", fmt.Errorf("unsupported image type %s", strings.TrimSuffix(header, ";base64"))
	}

	data, err := base64.StdEncoding.DecodeString(dataURI[idx+1:])
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode base64 payload: %w", err)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, "", fmt.Errorf("corrupt image payload: %w", err)
	}
	return data, kind, nil
}
