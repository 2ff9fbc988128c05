// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (cards, bars, canvas, width splitting, overlay compositor)
//
// Not allowed here:
// - animation timing, navigation state, or layout policy for a particular slide type
package widgets
