package binarize

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/lucasb-eyer/go-colorful"
)

// Mask is a row-major binary stroke mask. Bits holds rows*cols values,
// true marking stroke pixels.
type Mask struct {
	Rows int
	Cols int
	Bits []bool
}

// At reports the mask value at (row, col).
func (m Mask) At(row, col int) bool {
	return m.Bits[row*m.Cols+col]
}

func newMask(bounds image.Rectangle) Mask {
	return Mask{
		Rows: bounds.Dy(),
		Cols: bounds.Dx(),
		Bits: make([]bool, bounds.Dy()*bounds.Dx()),
	}
}

// Luminance marks every pixel darker than the threshold as a stroke pixel.
// threshold is an 8-bit luminance cutoff; invert marks lighter pixels
// instead, for light strokes on dark backgrounds.
func Luminance(img image.Image, threshold uint8, invert bool) Mask {
	bounds := img.Bounds()
	m := newMask(bounds)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dark := luminance8(img, x, y) < threshold
			m.Bits[i] = dark != invert
			i++
		}
	}
	return m
}

// OtsuThreshold computes the luminance cutoff that best separates the
// image histogram into two classes. Use the result as the threshold for
// Luminance when the stroke/background contrast is unknown.
func OtsuThreshold(img image.Image) uint8 {
	var hist [256]int
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[luminance8(img, x, y)]++
		}
	}

	var sum float64
	for v, n := range hist {
		sum += float64(v) * float64(n)
	}

	var sumBack, weightBack float64
	bestBetween := -1.0
	best := uint8(0)
	for v := 0; v < 256; v++ {
		weightBack += float64(hist[v])
		if weightBack == 0 {
			continue
		}
		weightFore := float64(total) - weightBack
		if weightFore == 0 {
			break
		}
		sumBack += float64(v) * float64(hist[v])
		meanBack := sumBack / weightBack
		meanFore := (sum - sumBack) / weightFore
		between := weightBack * weightFore * (meanBack - meanFore) * (meanBack - meanFore)
		if between > bestBetween {
			bestBetween = between
			// Luminance marks values strictly below its threshold, so the
			// cutoff sits one above the last value of the darker class.
			best = uint8(v + 1)
		}
	}
	return best
}

// ColorProximity marks pixels whose colour lies within maxDistance of ref
// in CIE Lab space. Distances around 0.1 to 0.2 select perceptually
// similar shades; fully transparent pixels never match.
func ColorProximity(img image.Image, ref colorful.Color, maxDistance float64) Mask {
	bounds := img.Bounds()
	m := newMask(bounds)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a > 0 {
				c := colorful.Color{
					R: float64(r) / 65535,
					G: float64(g) / 65535,
					B: float64(b) / 65535,
				}
				m.Bits[i] = c.DistanceLab(ref) <= maxDistance
			}
			i++
		}
	}
	return m
}

// Smooth applies a Gaussian blur before thresholding. Scanned or
// compressed images binarize much more cleanly after a light blur;
// a radius of 1 to 2 is usually enough.
func Smooth(img image.Image, radius float64) image.Image {
	if radius <= 0 {
		return img
	}
	return blur.Gaussian(img, radius)
}

// luminance8 returns the ITU-R BT.601 luminance of the pixel as an 8-bit
// value.
func luminance8(img image.Image, x, y int) uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
	if lum > 255 {
		lum = 255
	}
	return uint8(lum)
}
