package notify

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRCodePNG encodes text into a PNG QR image of the given pixel size,
// medium error correction.
func QRCodePNG(text string, size int) ([]byte, error) {
	qr, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %v", err)
	}

	pngBytes, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR to PNG: %v", err)
	}

	return pngBytes, nil
}

// QRCodeDataURI returns the QR image as a data URI usable directly in an
// <img src> attribute.
func QRCodeDataURI(text string, size int) (string, error) {
	pngBytes, err := QRCodePNG(text, size)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(pngBytes)), nil
}
