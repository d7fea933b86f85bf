package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tinyfox/internal/adapters/qrcode"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func TestRenderer_PNG(t *testing.T) {
	r := qrcode.NewRenderer(0)

	out, err := r.PNG("http://localhost:8080/abc123")
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, pngSignature))

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, qrcode.DefaultSize, img.Bounds().Dx())
}

func TestRenderer_EmptyContent(t *testing.T) {
	_, err := qrcode.NewRenderer(128).PNG("")
	require.ErrorIs(t, err, qrcode.ErrEmptyContent)
}

func TestRenderer_DataURI(t *testing.T) {
	uri, err := qrcode.NewRenderer(128).DataURI("http://localhost:8080/abc123")
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(uri, prefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(raw, pngSignature))
}
