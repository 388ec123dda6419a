// SPDX-License-Identifier: MIT

package solver

import (
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/sketchsolve/minimize"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Defaults applied by New before any Option runs.
const (
	// DefaultMaxIterations caps accepted steps per minimizer run.
	DefaultMaxIterations = minimize.DefaultMaxIterations

	// DefaultEpsilon is the tolerance of the minimizer's termination tests.
	DefaultEpsilon = minimize.DefaultEpsilon

	// DefaultRigidityTolerance is the relative bound under which the
	// curvature determinant counts as zero.
	DefaultRigidityTolerance = 1e-6
)

const (
	panicMaxIterationsInvalid = "solver: WithMaxIterations: n must be > 0"
	panicEpsilonInvalid       = "solver: WithEpsilon: eps must be finite and > 0"
	panicRigidityInvalid      = "solver: WithRigidityTolerance: tol must be finite and >= 0"
	panicParallelismInvalid   = "solver: WithParallelism: n must be > 0"
	panicLoggerNil            = "solver: WithLogger: nil logger"
	panicTracerProviderNil    = "solver: WithTracerProvider: nil provider"
	panicMeterProviderNil     = "solver: WithMeterProvider: nil provider"
)

// Option configures a Solver. Constructors panic on nonsensical values.
type Option func(*Options)

// Options is the effective configuration of a Solver.
type Options struct {
	maxIterations     int
	epsilon           float64
	rigidityTolerance float64
	parallelism       int
	logger            *slog.Logger
	tracerProvider    trace.TracerProvider
	meterProvider     metric.MeterProvider
}

func defaultOptions() Options {
	return Options{
		maxIterations:     DefaultMaxIterations,
		epsilon:           DefaultEpsilon,
		rigidityTolerance: DefaultRigidityTolerance,
		parallelism:       runtime.GOMAXPROCS(0),
		logger:            slog.Default(),
		tracerProvider:    otel.GetTracerProvider(),
		meterProvider:     otel.GetMeterProvider(),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxIterations caps the accepted steps of every minimizer run,
// including each exclusion retry.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithEpsilon sets the minimizer's termination tolerance.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.epsilon = eps }
}

// WithRigidityTolerance sets the relative threshold of the point classifier:
// a point is Under when |h| <= tol·(|fxx|+|fyy|)².
func WithRigidityTolerance(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 0) {
		panic(panicRigidityInvalid)
	}

	return func(o *Options) { o.rigidityTolerance = tol }
}

// WithParallelism bounds the number of concurrent exclusion retries.
// Default: runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	if n <= 0 {
		panic(panicParallelismInvalid)
	}

	return func(o *Options) { o.parallelism = n }
}

// WithLogger routes solver and minimizer records to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithTracerProvider sets the provider for solver and minimizer spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic(panicTracerProviderNil)
	}

	return func(o *Options) { o.tracerProvider = tp }
}

// WithMeterProvider sets the provider for solver metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	if mp == nil {
		panic(panicMeterProviderNil)
	}

	return func(o *Options) { o.meterProvider = mp }
}

// minimizeOptions derives the per-run minimizer configuration.
func (o Options) minimizeOptions() minimize.Options {
	return minimize.Options{
		MaxIterations: o.maxIterations,
		Epsilon:       o.epsilon,
		Logger:        o.logger,
		Tracer:        o.tracerProvider.Tracer(minimize.TracerName),
	}
}
