// Package thinning reduces the on-regions of a binary image to one pixel
// wide skeletons using the Zhang-Suen algorithm.
//
// Border pixels are never considered; callers must leave a one pixel frame
// of off-pixels around the content. Each sub-iteration flags all of its
// pixels before any are cleared, so neighbourhood predicates always observe
// the state from the start of the sub-iteration.
package thinning
