package tracing

import (
	"sort"

	"github.com/ironsheep/raster-trace/internal/bitimage"
)

// Polyline is an ordered list of pixel locators.
type Polyline []int

// fitSegments approximates the strokes crossing the section
// (r0, c0, rows, cols) with short segments.
//
// The frame of the section is walked clockwise, rotated to begin at an
// off-pixel, and each run of on-pixels contributes one segment from the run
// midpoint to the section centre. A section crossed by a single stroke
// (two runs) collapses to one straight polyline; three or more runs keep
// the shared interior point, relocated to the densest 3x3 neighbourhood
// near the centre.
func fitSegments(img *bitimage.Image, r0, c0, rows, cols int) []Polyline {
	frame := frameWalk(img, r0, c0, rows, cols)

	firstOff := -1
	anyOn := false
	for i, px := range frame {
		if img.On(px) {
			anyOn = true
		} else if firstOff < 0 {
			firstOff = i
		}
	}
	if firstOff < 0 || !anyOn {
		return nil
	}
	rotated := make([]int, 0, len(frame))
	rotated = append(rotated, frame[firstOff:]...)
	rotated = append(rotated, frame[:firstOff]...)
	frame = rotated

	center := img.Find(r0+rows/2, c0+cols/2)

	var segments []Polyline
	for i := 0; i < len(frame); {
		on := i
		for on < len(frame) && !img.On(frame[on]) {
			on++
		}
		if on == len(frame) {
			break
		}
		off := on
		for off < len(frame) && img.On(frame[off]) {
			off++
		}
		mid := frame[on+(off-on)/2]
		segments = append(segments, Polyline{mid, center})
		i = off
	}

	switch {
	case len(segments) == 2:
		return []Polyline{{segments[0][0], segments[1][0]}}
	case len(segments) >= 3:
		intersection := estimateIntersection(img, r0, c0, rows, cols, center)
		for _, s := range segments {
			s[len(s)-1] = intersection
		}
	}
	return segments
}

// frameWalk enumerates the border pixels of the section clockwise starting
// at the top-left corner, each pixel exactly once.
func frameWalk(img *bitimage.Image, r0, c0, rows, cols int) []int {
	frame := make([]int, 0, 2*(rows-1)+2*(cols-1))
	frame = append(frame, img.Section(r0, c0, 1, cols-1)...)
	frame = append(frame, img.Section(r0, c0+cols-1, rows-1, 1)...)
	bottom := img.Section(r0+rows-1, c0+1, 1, cols-1)
	for i := len(bottom) - 1; i >= 0; i-- {
		frame = append(frame, bottom[i])
	}
	left := img.Section(r0+1, c0, rows-1, 1)
	for i := len(left) - 1; i >= 0; i-- {
		frame = append(frame, left[i])
	}
	return frame
}

// estimateIntersection picks the interior pixel whose 3x3 neighbourhood
// holds the most on-pixels, scanning outward from the centre by Manhattan
// distance. A convolution of five or more settles the search early.
func estimateIntersection(img *bitimage.Image, r0, c0, rows, cols, center int) int {
	if rows < 3 || cols < 3 {
		return center
	}
	canvas := img.Section(r0+1, c0+1, rows-2, cols-2)
	cr, cc := img.Coords(center)
	manhattan := func(px int) int {
		r, c := img.Coords(px)
		dr, dc := r-cr, c-cc
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		return dr + dc
	}
	sort.SliceStable(canvas, func(i, j int) bool {
		return manhattan(canvas[i]) < manhattan(canvas[j])
	})

	// Seed below zero so the closest candidate always replaces the centre,
	// even when every neighbourhood count is zero.
	intersection := center
	maxConv := -1
	for _, px := range canvas {
		r, c := img.Coords(px)
		conv := img.CountOn(r-1, c-1, 3, 3)
		if conv > maxConv {
			intersection = px
			maxConv = conv
		}
		if maxConv >= 5 {
			break
		}
	}
	return intersection
}
