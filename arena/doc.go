// Package arena builds the polygonal ring that approximates the circular arena wall and
// drives its drift.
//
// The ring is a fixed set of chords built once by Build. Each tick, Arena.Tick advances the
// arena center with Drift, reflecting the drift velocity off the viewport edges using the
// look-ahead position, then translates the center and every chord by the same displacement.
// The ring never deforms.
//
// The dynamic ball is not part of this package; it lives in the physics world and only shares
// world coordinates and the viewport with the arena.
package arena
