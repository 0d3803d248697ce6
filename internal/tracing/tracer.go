package tracing

import (
	"math"

	"github.com/ironsheep/raster-trace/internal/bitimage"
)

// Trace extracts polylines from a skeletonised image. minSectionSize is
// the side length below which sections are no longer split (values below 5
// are raised to 5 for splitting purposes). maxRecursions bounds the split
// depth; zero means effectively unbounded.
func Trace(img *bitimage.Image, minSectionSize, maxRecursions int) []Polyline {
	if maxRecursions == 0 {
		maxRecursions = math.MaxInt32
	}
	minSplitSize := minSectionSize
	if minSplitSize < 5 {
		minSplitSize = 5
	}
	return trace(img, 0, 0, img.Rows(), img.Cols(), minSplitSize, maxRecursions, 0)
}

func trace(img *bitimage.Image, r0, c0, rows, cols, minSplitSize, maxRecursions, depth int) []Polyline {
	if !img.AnyOn(r0, c0, rows, cols) {
		return nil
	}
	if depth >= maxRecursions || (rows < minSplitSize && cols < minSplitSize) {
		return fitSegments(img, r0, c0, rows, cols)
	}

	if rows >= cols {
		split := sparsestLine(img, r0, c0, rows, cols, true)
		top := trace(img, r0, c0, split-r0+1, cols, minSplitSize, maxRecursions, depth+1)
		bottom := trace(img, split, c0, r0+rows-split, cols, minSplitSize, maxRecursions, depth+1)
		return MergePolylines(top, bottom)
	}
	split := sparsestLine(img, r0, c0, rows, cols, false)
	left := trace(img, r0, c0, rows, split-c0+1, minSplitSize, maxRecursions, depth+1)
	right := trace(img, r0, split, rows, c0+cols-split, minSplitSize, maxRecursions, depth+1)
	return MergePolylines(left, right)
}

// sparsestLine selects the row (or column) with the fewest on-pixels among
// candidates that alternate outward from the centre of the section. The
// earliest candidate wins ties, and a fully empty line ends the search.
func sparsestLine(img *bitimage.Image, r0, c0, rows, cols int, byRow bool) int {
	dim := rows
	if !byRow {
		dim = cols
	}
	iMax := dim - 4

	best := 0
	minOn := math.MaxInt
	for i := 0; i < iMax; i++ {
		offset := (i + 1) / 2
		if i%2 != 0 {
			offset = -offset
		}
		var candidate, nOn int
		if byRow {
			candidate = r0 + rows/2 + offset
			nOn = img.CountOn(candidate, c0, 1, cols)
		} else {
			candidate = c0 + cols/2 + offset
			nOn = img.CountOn(r0, candidate, rows, 1)
		}
		if nOn < minOn {
			best = candidate
			minOn = nOn
		}
		if minOn == 0 {
			break
		}
	}
	return best
}
