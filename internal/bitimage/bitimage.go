package bitimage

import "fmt"

// Image is a row-major binary grid. Dimensions are fixed at construction;
// only bit values change afterwards.
type Image struct {
	rows int
	cols int
	bits []uint8
}

// New creates a zero-initialised image with the given dimensions.
// It panics if either dimension is less than 1 or if rows*cols overflows.
func New(rows, cols int) *Image {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("bitimage: invalid dimensions %dx%d", rows, cols))
	}
	if rows > int(^uint(0)>>1)/cols {
		panic(fmt.Sprintf("bitimage: dimensions %dx%d overflow", rows, cols))
	}
	return &Image{
		rows: rows,
		cols: cols,
		bits: make([]uint8, rows*cols),
	}
}

// FromPixels builds an image by applying isOn to each element of pixels.
// The pixel slice is row-major and its length must equal rows*cols.
func FromPixels[T any](pixels []T, rows, cols int, isOn func(T) bool) *Image {
	m := New(rows, cols)
	if len(pixels) != rows*cols {
		panic(fmt.Sprintf("bitimage: pixel count %d does not match %dx%d", len(pixels), rows, cols))
	}
	for i, p := range pixels {
		if isOn(p) {
			m.bits[i] = 1
		}
	}
	return m
}

// Rows returns the number of rows.
func (m *Image) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Image) Cols() int { return m.cols }

// Coords translates a locator into (row, col) coordinates.
func (m *Image) Coords(px int) (int, int) {
	return px / m.cols, px % m.cols
}

// Find returns the locator of the pixel at (row, col).
// It panics if the coordinates are out of range.
func (m *Image) Find(row, col int) int {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("bitimage: pixel (%d,%d) outside %dx%d image", row, col, m.rows, m.cols))
	}
	return row*m.cols + col
}

// On reports whether the pixel at the given locator is on.
func (m *Image) On(px int) bool { return m.bits[px] != 0 }

// Set changes the state of the pixel at the given locator.
func (m *Image) Set(px int, on bool) {
	if on {
		m.bits[px] = 1
	} else {
		m.bits[px] = 0
	}
}

// Section enumerates the locators of the pixels inside the rectangle
// (r0, c0, rows, cols) in row-major order. It panics if the rectangle has
// negative extents or falls outside the image.
func (m *Image) Section(r0, c0, rows, cols int) []int {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("bitimage: negative section extents %dx%d", rows, cols))
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.rows || c0+cols > m.cols {
		panic(fmt.Sprintf("bitimage: section (%d,%d,%d,%d) outside %dx%d image", r0, c0, rows, cols, m.rows, m.cols))
	}
	pixels := make([]int, 0, rows*cols)
	for r := r0; r < r0+rows; r++ {
		base := r * m.cols
		for c := c0; c < c0+cols; c++ {
			pixels = append(pixels, base+c)
		}
	}
	return pixels
}

// CountOn returns the number of on-pixels inside the rectangle
// (r0, c0, rows, cols).
func (m *Image) CountOn(r0, c0, rows, cols int) int {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("bitimage: negative section extents %dx%d", rows, cols))
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.rows || c0+cols > m.cols {
		panic(fmt.Sprintf("bitimage: section (%d,%d,%d,%d) outside %dx%d image", r0, c0, rows, cols, m.rows, m.cols))
	}
	n := 0
	for r := r0; r < r0+rows; r++ {
		base := r * m.cols
		for c := c0; c < c0+cols; c++ {
			if m.bits[base+c] != 0 {
				n++
			}
		}
	}
	return n
}

// AnyOn reports whether the rectangle (r0, c0, rows, cols) contains at
// least one on-pixel.
func (m *Image) AnyOn(r0, c0, rows, cols int) bool {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("bitimage: negative section extents %dx%d", rows, cols))
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.rows || c0+cols > m.cols {
		panic(fmt.Sprintf("bitimage: section (%d,%d,%d,%d) outside %dx%d image", r0, c0, rows, cols, m.rows, m.cols))
	}
	for r := r0; r < r0+rows; r++ {
		base := r * m.cols
		for c := c0; c < c0+cols; c++ {
			if m.bits[base+c] != 0 {
				return true
			}
		}
	}
	return false
}
