package verify

import "github.com/planforge/planforge/numeric"

// Options configures a verification pass.
//   - Epsilon: absolute tolerance applied to every bound and balance check.
type Options struct {
	Epsilon float64
}

// DefaultOptions returns production-safe defaults (epsilon 1e-9).
func DefaultOptions() Options {
	return Options{Epsilon: numeric.DefaultEpsilon}
}

// normalize fills zero-valued fields with their defaults.
func (o *Options) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = numeric.DefaultEpsilon
	}
}
