// Package ring generates procedural orbital particle fields.
//
// A Config describes one ring or disk instance. The Factory resolves the
// Generator for the Config's Archetype, which samples a population of
// Elements from a seeded Rand. Each Element then advances independently
// along its Keplerian orbit through Advance.
//
// Generation draws every value from one Rand and is not safe for concurrent
// use of that Rand. Advancing distinct Elements touches no shared state.
package ring
