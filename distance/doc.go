// Package distance provides the scoring kernel for vector similarity.
//
// All functions are pure and deterministic. Accumulation happens in float64
// to keep results stable across vector lengths; results are returned as
// float32 to match the stored vector precision.
package distance
