// Package binarize builds binary stroke masks from decoded images.
//
// The tracing core accepts any pixel slice with a predicate; this package
// provides the common ways of producing one from an image.Image: luminance
// thresholding (fixed or Otsu), colour proximity for extracting strokes of
// a known colour, and Canny edge masks for tracing outlines directly.
package binarize
