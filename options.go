package rastertrace

// Options controls FitPolylines.
type Options struct {
	// MinSectionSize controls where the tracer stops splitting the image:
	// a section is no longer split once both of its sides are shorter than
	// the larger of MinSectionSize and 5. Values below 3 are raised to 3.
	MinSectionSize int

	// MaxRecursions bounds the partitioning depth. Zero means the depth
	// is effectively unbounded.
	MaxRecursions int

	// Thinning skeletonises the input before tracing. Disable it only
	// when the mask is already one pixel wide, such as an edge map.
	Thinning bool

	// Warn receives diagnostic messages about degenerate inputs. Nil
	// discards them.
	Warn func(string)
}

// DefaultOptions returns the options used for typical raster input:
// sections down to 3 pixels, unbounded recursion, thinning enabled.
func DefaultOptions() Options {
	return Options{
		MinSectionSize: 3,
		Thinning:       true,
	}
}

func (o Options) warn(msg string) {
	if o.Warn != nil {
		o.Warn(msg)
	}
}
