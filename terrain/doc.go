// Package terrain produces height profiles for the rainfall world: seeded
// random and synthetic generators for tests and benchmarks, and readers for
// terrains stored as text.
//
// Generators:
//
//	UniformInts(n, seed)   — integers in [0, maxHeight), the classic benchmark input
//	UniformFloats(n, seed) — reals in [0, maxHeight)
//	Ridges(n, seed)        — triangular ridges with optional trend and noise
//
// All generators are deterministic per (n, seed, options). Options follow the
// functional style: WithSeed/WithRand select the RNG, WithMaxHeight scales
// the profile, WithFrequency/WithTrend/WithNoise shape Ridges.
//
// Readers:
//
//	ReadInts / ReadFloats       — parse an io.Reader
//	LoadInts / LoadFloats       — open a file on a billy.Filesystem and parse it
//
// The text format is a list of heights separated by whitespace or commas.
// Everything after '#' on a line is a comment.
package terrain
