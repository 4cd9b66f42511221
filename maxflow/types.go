package maxflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/planforge/planforge/numeric"
)

// ErrSourceNotFound is returned when the requested source vertex is missing.
var ErrSourceNotFound = errors.New("maxflow: source vertex not found")

// ErrSinkNotFound is returned when the requested sink vertex is missing.
var ErrSinkNotFound = errors.New("maxflow: sink vertex not found")

// ErrUnbounded is returned when an augmenting path from source to sink has
// an infinite bottleneck, i.e. the maximum flow is not finite. No flow
// assignment or cut is meaningful in that case.
var ErrUnbounded = errors.New("maxflow: maximum flow is unbounded")

// ArcError reports an arc rejected for carrying a negative capacity.
type ArcError struct {
	From, To string
	Cap      float64
}

func (e ArcError) Error() string {
	return fmt.Sprintf("maxflow: negative capacity on arc %q→%q: %g", e.From, e.To, e.Cap)
}

// Options configures a Dinic run.
//   - Ctx: cancellation / deadline for long solves (default Background).
//   - Epsilon: capacities ≤ Epsilon are treated as zero (default 1e-9).
//   - LevelRebuildInterval: rebuild the level graph every N blocking pushes;
//     0 means only when the current level graph is exhausted.
type Options struct {
	Ctx                  context.Context
	Epsilon              float64
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Epsilon: numeric.DefaultEpsilon,
	}
}

// normalize fills zero-valued fields with their defaults.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = numeric.DefaultEpsilon
	}
}
