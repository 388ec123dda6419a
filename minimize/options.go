// SPDX-License-Identifier: MIT

package minimize

import (
	"log/slog"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultMaxIterations caps the number of accepted steps per Run.
	DefaultMaxIterations = 1000

	// DefaultEpsilon is float64 machine epsilon.
	DefaultEpsilon = 0x1p-52

	// TracerName names the tracer used when Options.Tracer is nil.
	TracerName = "github.com/katalvlaran/sketchsolve/minimize"
)

// Options configures Run. The zero value is usable: Validate fills every
// unset or invalid field with its default.
type Options struct {
	// MaxIterations is the maximum number of accepted steps. Must be > 0.
	// Default: 1000
	MaxIterations int

	// Epsilon is the tolerance of every termination test. Must be > 0.
	// Default: machine epsilon
	Epsilon float64

	// Logger receives per-iteration debug records. Default: slog.Default()
	Logger *slog.Logger

	// Tracer opens the span around each Run. Default: the global provider's
	// tracer named TracerName.
	Tracer trace.Tracer
}

// DefaultOptions returns Options with every field set to its default.
func DefaultOptions() Options {
	o := Options{}
	o.Validate()

	return o
}

// Validate applies defaults for unset or invalid values.
func (o *Options) Validate() {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if !(o.Epsilon > 0) || math.IsInf(o.Epsilon, 0) {
		o.Epsilon = DefaultEpsilon
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Tracer == nil {
		o.Tracer = otel.Tracer(TracerName)
	}
}
