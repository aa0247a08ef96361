// Package links builds the outbound map and QR code URLs and renders QR
// codes locally.
package links

import (
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	mapsSearchBase = "https://www.google.com/maps/search/?api=1&query="
	qrServerBase   = "https://api.qrserver.com/v1/create-qr-code/"

	DefaultQRSize = 240
)

// MapsSearchURL opens a map search for address.
func MapsSearchURL(address string) string {
	return mapsSearchBase + url.QueryEscape(address)
}

// QRImageURL asks the public QR service for a size x size image of payload.
// The payload is passed through untouched apart from URL escaping.
func QRImageURL(payload string, size int) string {
	if size <= 0 {
		size = DefaultQRSize
	}
	return fmt.Sprintf("%s?size=%dx%d&data=%s", qrServerBase, size, size, url.QueryEscape(payload))
}

// QRPNG renders payload as a PNG QR code without leaving the server.
func QRPNG(payload string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}
