package rastertrace

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ironsheep/raster-trace/internal/bitimage"
	"github.com/ironsheep/raster-trace/internal/geometry"
	"github.com/ironsheep/raster-trace/internal/thinning"
	"github.com/ironsheep/raster-trace/internal/tracing"
)

// Point is a pixel position in image coordinates.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Polyline is an ordered sequence of points describing one traced stroke.
type Polyline []Point

// FitPolylines traces the strokes of a binary image. pixels is a row-major
// slice of rows*cols elements and isOn decides which of them belong to a
// stroke.
//
// Images smaller than 3x3 cannot contain a traceable stroke; they produce
// a warning and an empty result.
func FitPolylines[T any](pixels []T, rows, cols int, isOn func(T) bool, opts Options) []Polyline {
	if rows < 3 || cols < 3 {
		opts.warn("cannot fit polylines to an image smaller than 3x3")
		return nil
	}
	img := bitimage.FromPixels(pixels, rows, cols, isOn)

	if opts.Thinning {
		thinning.Thin(img)
	}
	minSectionSize := opts.MinSectionSize
	if minSectionSize < 3 {
		minSectionSize = 3
	}

	traced := tracing.Trace(img, minSectionSize, opts.MaxRecursions)
	polylines := make([]Polyline, 0, len(traced))
	for _, t := range traced {
		p := make(Polyline, len(t))
		for i, px := range t {
			r, c := img.Coords(px)
			p[i] = Point{Row: r, Col: c}
		}
		polylines = append(polylines, p)
	}
	return polylines
}

// Simplify reduces the vertex count of a polyline with the
// Ramer-Douglas-Peucker algorithm. tolerance is the maximum distance, in
// pixels, a dropped vertex may lie from the simplified polyline. The input
// is reordered in place; the returned slice is its kept prefix.
func Simplify(p Polyline, tolerance float64) Polyline {
	n := geometry.SimplifyPolyline(p, pointVec, tolerance)
	return p[:n]
}

// LineSegment is a straight-line summary of a polyline in image
// coordinates, produced by FitLineSegment.
type LineSegment struct {
	Begin Point   `json:"begin"`
	End   Point   `json:"end"`
	MSE   float64 `json:"mse"`
	Valid bool    `json:"valid"`
}

// SegmentFitOptions controls FitLineSegment.
type SegmentFitOptions struct {
	// Iterations is the number of fitting rounds. Zero is coerced to one.
	Iterations int

	// MaxInlierDistance caps, in pixels, how far a vertex may stray from
	// the candidate line while still extending the fitted segment. Zero
	// disables the cap.
	MaxInlierDistance float64

	// Rand seeds the sampling. Nil uses a time-seeded source.
	Rand *rand.Rand

	// Warn receives diagnostic messages. Nil discards them.
	Warn func(string)
}

// FitLineSegment fits a single straight segment through the vertices of a
// polyline using RANSAC. Polylines with fewer than two points yield an
// invalid segment.
func FitLineSegment(p Polyline, opts SegmentFitOptions) LineSegment {
	seg := geometry.FitSegment(p, pointVec, geometry.FitOptions{
		Iterations:        opts.Iterations,
		MaxInlierDistance: opts.MaxInlierDistance,
		Rand:              opts.Rand,
		Warn:              opts.Warn,
	})
	return LineSegment{
		Begin: vecPoint(seg.Begin),
		End:   vecPoint(seg.End),
		MSE:   seg.MSE,
		Valid: seg.Valid,
	}
}

func pointVec(p Point) r2.Vec {
	return r2.Vec{X: float64(p.Col), Y: float64(p.Row)}
}

func vecPoint(v r2.Vec) Point {
	return Point{Row: int(v.Y + 0.5), Col: int(v.X + 0.5)}
}
