package binarize

import (
	"image"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

// testImage draws a black horizontal stroke on a white background.
func testImage(width, height, strokeRow int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			if y == strokeRow && x >= 1 && x < width-1 {
				c = color.NRGBA{A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestLuminance(t *testing.T) {
	img := testImage(10, 5, 2)
	m := Luminance(img, 128, false)
	if m.Rows != 5 || m.Cols != 10 {
		t.Fatalf("mask is %dx%d, want 5x10", m.Rows, m.Cols)
	}
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			want := r == 2 && c >= 1 && c < 9
			if m.At(r, c) != want {
				t.Errorf("mask(%d,%d) = %v, want %v", r, c, m.At(r, c), want)
			}
		}
	}
}

func TestLuminanceInvert(t *testing.T) {
	img := testImage(6, 3, 1)
	m := Luminance(img, 128, true)
	if m.At(1, 2) {
		t.Error("stroke pixel marked despite inversion")
	}
	if !m.At(0, 0) {
		t.Error("background pixel not marked despite inversion")
	}
}

func TestOtsuThresholdSeparatesClasses(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			v := uint8(220)
			if x < 3 {
				v = 30
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	threshold := OtsuThreshold(img)
	if threshold < 30 || threshold >= 220 {
		t.Errorf("threshold %d does not separate 30 from 220", threshold)
	}
	m := Luminance(img, threshold+1, false)
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			if m.At(r, c) != (c < 3) {
				t.Errorf("mask(%d,%d) = %v after Otsu split", r, c, m.At(r, c))
			}
		}
	}
}

func TestColorProximity(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})          // pure red
	img.SetNRGBA(1, 0, color.NRGBA{R: 245, G: 10, A: 255})   // reddish
	img.SetNRGBA(2, 0, color.NRGBA{B: 255, A: 255})          // blue
	img.SetNRGBA(3, 0, color.NRGBA{R: 255})                  // transparent red

	red := colorful.Color{R: 1}
	m := ColorProximity(img, red, 0.2)
	if !m.At(0, 0) {
		t.Error("pure red not matched")
	}
	if !m.At(0, 1) {
		t.Error("near-red not matched")
	}
	if m.At(0, 2) {
		t.Error("blue matched")
	}
	if m.At(0, 3) {
		t.Error("transparent pixel matched")
	}
}

func TestSmoothZeroRadiusIsIdentity(t *testing.T) {
	img := testImage(8, 4, 2)
	if got := Smooth(img, 0); got != image.Image(img) {
		t.Error("zero radius should return the input unchanged")
	}
}

func TestEdgesOutlineSquare(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			v := uint8(255)
			if x >= 5 && x < 15 && y >= 5 && y < 15 {
				v = 0
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	m := Edges(img, 20, 60)

	onCount := 0
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if m.At(r, c) {
				onCount++
				if r > 2 && r < 17 && c > 2 && c < 17 {
					continue
				}
				t.Errorf("edge pixel (%d,%d) far from the square boundary", r, c)
			}
		}
	}
	if onCount == 0 {
		t.Fatal("no edges detected around the square")
	}
	if m.At(10, 10) {
		t.Error("edge detected inside the flat interior")
	}
}
