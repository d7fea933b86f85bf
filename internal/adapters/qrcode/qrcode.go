package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"

	goqr "github.com/skip2/go-qrcode"
)

const DefaultSize = 256

var ErrEmptyContent = errors.New("qrcode: empty content")

// Renderer turns short URLs into PNG QR codes.
type Renderer struct {
	size  int
	level goqr.RecoveryLevel
}

func NewRenderer(size int) *Renderer {
	if size <= 0 {
		size = DefaultSize
	}

	return &Renderer{size: size, level: goqr.Medium}
}

func (r *Renderer) PNG(content string) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	png, err := goqr.Encode(content, r.level, r.size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: encode: %w", err)
	}

	return png, nil
}

// DataURI returns the PNG inlined for use in an img src attribute.
func (r *Renderer) DataURI(content string) (string, error) {
	png, err := r.PNG(content)
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
