// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the solver's tracer and meter.
const InstrumentationName = "github.com/katalvlaran/sketchsolve/solver"

// Values of the "result" attribute on solve metrics.
const (
	resultSolved    = "solved"
	resultExcluded  = "excluded"
	resultAmbiguous = "ambiguous"
	resultError     = "error"
)

type telemetry struct {
	tracer trace.Tracer

	solveDuration metric.Float64Histogram
	solveTotal    metric.Int64Counter
	iterations    metric.Int64Histogram
}

// newTelemetry builds the instruments from the configured providers. An
// instrument that cannot be created falls back to a no-op one.
func newTelemetry(o Options) *telemetry {
	t := &telemetry{tracer: o.tracerProvider.Tracer(InstrumentationName)}
	if err := t.initMetrics(o.meterProvider.Meter(InstrumentationName)); err != nil {
		o.logger.Warn("solver metrics disabled", slog.String("error", err.Error()))
		_ = t.initMetrics(noop.NewMeterProvider().Meter(InstrumentationName))
	}

	return t
}

func (t *telemetry) initMetrics(meter metric.Meter) error {
	var err error

	t.solveDuration, err = meter.Float64Histogram(
		"sketchsolve_solve_duration_seconds",
		metric.WithDescription("Duration of Solve calls, exclusion retries included"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	t.solveTotal, err = meter.Int64Counter(
		"sketchsolve_solve_total",
		metric.WithDescription("Number of Solve calls by result"),
	)
	if err != nil {
		return err
	}

	t.iterations, err = meter.Int64Histogram(
		"sketchsolve_minimize_iterations",
		metric.WithDescription("Accepted steps per minimizer run"),
	)

	return err
}

func (t *telemetry) recordSolve(ctx context.Context, d time.Duration, result string) {
	attrs := metric.WithAttributes(attribute.String("result", result))
	t.solveDuration.Record(ctx, d.Seconds(), attrs)
	t.solveTotal.Add(ctx, 1, attrs)
}

func (t *telemetry) recordRun(ctx context.Context, iterations int, condition string, retry bool) {
	t.iterations.Record(ctx, int64(iterations),
		metric.WithAttributes(
			attribute.String("condition", condition),
			attribute.Bool("retry", retry),
		),
	)
}
