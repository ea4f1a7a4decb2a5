// Package qr encodes record-derived payloads as QR PNG images.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256

// PNG returns a PNG-encoded QR code for the given content. The output
// is deterministic for identical content.
func PNG(content string) ([]byte, error) {
	data, err := qrcode.Encode(content, qrcode.Medium, imageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	return data, nil
}
