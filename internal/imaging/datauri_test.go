package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestEncodeUploadRoundTrip(t *testing.T) {
	raw := pngBytes(t)

	uri, err := EncodeUpload(raw)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	decoded, kind, err := Decode(uri)
	require.NoError(t, err)
	require.Equal(t, "PNG", kind)
	require.Equal(t, raw, decoded)
}

func TestEncodeUploadRejectsGarbage(t *testing.T) {
	_, err := EncodeUpload([]byte("definitely not an image"))
	require.Error(t, err)

	_, err = EncodeUpload(nil)
	require.Error(t, err)

	_, err = EncodeUpload(make([]byte, MaxImageBytes+1))
	require.Error(t, err)
}

func TestDecodeRejectsCorruptPayload(t *testing.T) {
	// Valid data URI wrapper around bytes that are not a real PNG.
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("junk"))
	_, _, err := Decode(uri)
	require.Error(t, err)

	_, _, err = Decode("https://example.com/logo.png")
	require.Error(t, err)

	_, _, err = Decode("data:image/png;base64")
	require.Error(t, err)
}
