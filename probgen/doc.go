// Package probgen builds randomized, reproducible solver problems.
//
// Both generators are deterministic in their seed and biased toward
// feasibility: the belts generator forces at least one source-to-sink
// path with capacity above the supply, and the factory generator grows a
// recipe chain where every input already exists, ending at the target.
// They feed fuzz-style tests and quick benchmarking; neither tries to
// produce adversarial instances.
package probgen
