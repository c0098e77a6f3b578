// Package surfarray builds spatial lookup structures that place detector
// sensor surfaces onto a binned grid wrapped around a cylindrical or
// disc-shaped layer. The resulting Array answers "which surface sits at
// this position" and "which surfaces surround this bin" in constant time.
//
// Surfaces and their detector elements are owned by the caller and
// addressed by handles: the grid stores SurfaceID indices into the input
// slice, and neighbour relations between detector elements are written
// into an ElementStore keyed by ElementID. Once built, an Array and its
// store are read-only and safe for concurrent readers.
package surfarray
