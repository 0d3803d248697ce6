package ocr

import (
	"math"

	rastertrace "github.com/ironsheep/raster-trace"
)

// Bounds is a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Word is a recognized word with its location and OCR confidence.
type Word struct {
	// Text is the recognized content.
	Text string `json:"text"`

	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	// Bounds is the bounding box around the word in the image.
	Bounds Bounds `json:"bounds"`
}

// StrokeLabel pairs a traced stroke with the nearest recognized word.
type StrokeLabel struct {
	// Text is the label content. Empty when no word lies within range.
	Text string `json:"text,omitempty"`

	// Confidence is the OCR confidence of the matched word.
	Confidence float64 `json:"confidence,omitempty"`

	// Distance is the pixel distance from the stroke to the word.
	Distance float64 `json:"distance,omitempty"`
}

// LabelStrokes matches every polyline with the closest recognized word
// within maxDistance pixels. The result is index-aligned with polylines;
// entries without a nearby word have an empty Text.
//
// Distance is measured from the polyline vertices to the centre of the
// word's bounding box, so maxDistance should allow for half the expected
// label size.
func LabelStrokes(polylines []rastertrace.Polyline, words []Word, maxDistance float64) []StrokeLabel {
	labels := make([]StrokeLabel, len(polylines))
	for i, p := range polylines {
		best := math.Inf(1)
		for _, w := range words {
			if w.Text == "" {
				continue
			}
			d := distanceToWord(p, w)
			if d < best && d <= maxDistance {
				best = d
				labels[i] = StrokeLabel{
					Text:       w.Text,
					Confidence: w.Confidence,
					Distance:   d,
				}
			}
		}
	}
	return labels
}

func distanceToWord(p rastertrace.Polyline, w Word) float64 {
	cx := float64(w.Bounds.X1+w.Bounds.X2) / 2
	cy := float64(w.Bounds.Y1+w.Bounds.Y2) / 2
	best := math.Inf(1)
	for _, pt := range p {
		dx := float64(pt.Col) - cx
		dy := float64(pt.Row) - cy
		if d := math.Hypot(dx, dy); d < best {
			best = d
		}
	}
	return best
}
