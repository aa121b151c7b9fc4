// services/qrcode_service.go
package services

import (
	"errors"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultQRSize = 256
	MinQRSize     = 64
	MaxQRSize     = 1024
)

// QREncoder matches qrcode.Encode so tests can swap it.
type QREncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// GenerateQRCode renders content as a size x size PNG. A nil encoder uses
// qrcode.Encode.
func GenerateQRCode(content string, size int, encode QREncoder) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qr code content must not be empty")
	}
	if size < MinQRSize || size > MaxQRSize {
		return nil, errors.New("invalid dimensions: size must be between 64 and 1024")
	}
	if encode == nil {
		encode = qrcode.Encode
	}

	png, err := encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
