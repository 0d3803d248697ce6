// Package ocr attaches text labels to traced strokes using Tesseract.
//
// Diagrams frequently carry short labels next to their strokes; this
// package recognises them and pairs each polyline with the nearest word.
// Recognition needs the gosseract bindings, so it is only available in
// cgo builds with Tesseract installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Builds without cgo keep the labelling logic but Words returns a
// descriptive error.
package ocr
