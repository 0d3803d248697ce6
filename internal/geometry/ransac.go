package geometry

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// Segment is a fitted 2D line segment. Begin and End are ordered by
// ascending x. MSE is the mean squared distance of the sampled points to
// the fitted line, each point's contribution capped at the squared
// MaxInlierDistance when a cap is set.
type Segment struct {
	Begin r2.Vec
	End   r2.Vec
	MSE   float64
	Valid bool
}

// FitOptions controls FitSegment.
type FitOptions struct {
	// Iterations is the number of RANSAC rounds. Zero is coerced to one
	// with a warning.
	Iterations int

	// Samples is the number of points scored per round. Zero means all
	// points; larger values are clamped to the point count.
	Samples int

	// MaxInlierDistance caps the distance at which a point is considered
	// an inlier and bounds its error contribution. Zero disables the cap.
	MaxInlierDistance float64

	// Rand is the sampling source. Nil means a time-seeded source.
	Rand *rand.Rand

	// Warn receives diagnostic messages. Nil discards them.
	Warn func(string)
}

func (o FitOptions) warn(msg string) {
	if o.Warn != nil {
		o.Warn(msg)
	}
}

// FitSegment fits a line segment to pts using RANSAC. Each round draws two
// distinct seed points, scores a random subset of all points (the seeds
// may be among them) against the seeded line and keeps the line with the lowest accumulated
// squared error. The returned endpoints are the extreme projected inliers
// ordered by x.
//
// Fewer than two points yields an invalid segment.
func FitSegment[T any](pts []T, coords func(T) r2.Vec, opts FitOptions) Segment {
	if len(pts) < 2 {
		opts.warn("not enough points to fit a segment")
		return Segment{}
	}
	if opts.Iterations == 0 {
		opts.warn("segment fitting requires at least one iteration")
		opts.Iterations = 1
	}
	nSamples := opts.Samples
	if nSamples == 0 || nSamples > len(pts) {
		nSamples = len(pts)
	}
	maxSq := math.Inf(1)
	if opts.MaxInlierDistance != 0 {
		maxSq = opts.MaxInlierDistance * opts.MaxInlierDistance
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	best := Segment{MSE: math.Inf(1)}
	bestSum := math.Inf(1)
	for iter := 0; iter < opts.Iterations; iter++ {
		iA := rng.Intn(len(pts))
		iB := rng.Intn(len(pts))
		for iB == iA {
			iB = rng.Intn(len(pts))
		}
		a, b := coords(pts[iA]), coords(pts[iB])
		slope := Slope(a, b)
		if math.IsNaN(slope) {
			continue
		}
		offset := LineOffset(a, slope)

		segmentPoints := make([]r2.Vec, 0, nSamples+2)
		segmentPoints = append(segmentPoints, a, b)

		// Robert Floyd's sampling without replacement: every index gets a
		// uniform chance while visiting only nSamples candidates.
		wasSampled := make([]bool, len(pts))
		sumSq := 0.0
		for n := len(pts) - nSamples; n < len(pts) && sumSq < bestSum; n++ {
			i := rng.Intn(n + 1)
			if wasSampled[i] {
				i = n
			}
			wasSampled[i] = true
			p := coords(pts[i])
			proj := ProjectOnLineSlope(p, slope, offset)
			sq := SquaredDistance(p, proj)
			sumSq += math.Min(sq, maxSq)
			if sq <= maxSq {
				segmentPoints = append(segmentPoints, proj)
			}
		}
		if sumSq >= bestSum {
			continue
		}
		bestSum = sumSq

		begin, end := segmentPoints[0], segmentPoints[0]
		for _, p := range segmentPoints[1:] {
			if p.X < begin.X {
				begin = p
			}
			if p.X >= end.X {
				end = p
			}
		}
		best = Segment{
			Begin: begin,
			End:   end,
			MSE:   sumSq / float64(nSamples),
			Valid: true,
		}
	}
	return best
}

// PartitionInliers reorders pts so that the points within maxInlierDistance
// of seg come first and returns their count. A zero maxInlierDistance
// treats every point as an inlier; a degenerate segment has none.
func PartitionInliers[T any](pts []T, coords func(T) r2.Vec, seg Segment, maxInlierDistance float64) int {
	if maxInlierDistance == 0 {
		return len(pts)
	}
	if math.IsNaN(Slope(seg.Begin, seg.End)) {
		return 0
	}
	maxSq := maxInlierDistance * maxInlierDistance
	n := 0
	for i := range pts {
		if SquaredDistanceToSegment(coords(pts[i]), seg.Begin, seg.End) < maxSq {
			pts[n], pts[i] = pts[i], pts[n]
			n++
		}
	}
	return n
}
