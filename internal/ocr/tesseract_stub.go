//go:build !cgo

package ocr

import "errors"

// Available reports whether OCR support is compiled in.
const Available = false

// Words is unavailable without cgo; it always returns an error.
func Words(imagePath, language string) ([]Word, error) {
	return nil, errors.New("OCR support requires a cgo build with Tesseract installed")
}
