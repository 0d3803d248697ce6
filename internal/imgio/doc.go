// Package imgio loads the raster images handed to the tracing pipeline.
//
// Decoders for PNG, JPEG, GIF, BMP, TIFF and WebP are registered; Load
// accepts any of them transparently. The package also carries the small
// amount of preprocessing the pipeline wants before binarization, namely
// grayscale conversion and bounded downscaling.
package imgio
