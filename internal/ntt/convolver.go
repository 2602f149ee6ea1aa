package ntt

//go:generate mockgen -source=convolver.go -destination=mocks/mock_convolver.go -package=mocks

import (
	"context"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	apperrors "github.com/agbru/nttcalc/internal/errors"
)

// Convolver defines the public interface for an exact circular convolution
// engine. It is the abstraction the application layer uses to run and
// cross-check different convolution paths interchangeably.
type Convolver interface {
	// Convolve computes the exact circular convolution of vec0 and vec1.
	// It supports cancellation through the provided context; the inputs are
	// never mutated.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - vec0: The first input vector. Elements must be non-negative.
	//   - vec1: The second input vector. Same length as vec0.
	//   - opts: Driver options.
	//
	// Returns:
	//   - []*big.Int: The exact circular convolution.
	//   - error: An error if one occurred (e.g., context cancellation).
	Convolve(ctx context.Context, vec0, vec1 []*big.Int, opts Options) ([]*big.Int, error)

	// Name returns the display name of the convolution path (e.g., "NTT").
	//
	// Returns:
	//   - string: The name of the algorithm.
	Name() string
}

// NTTConvolver runs the transform pipeline: modulus search, primitive-root
// discovery, forward transforms, pointwise product, inverse transform.
type NTTConvolver struct{}

// Name returns the display name of this convolution path.
//
// Returns:
//   - string: The algorithm name.
func (c *NTTConvolver) Name() string { return "NTT" }

// Convolve computes the exact circular convolution through the transform
// pipeline. Cancellation is honored before the pipeline starts; the pipeline
// itself is CPU-bound and runs to completion once launched.
func (c *NTTConvolver) Convolve(ctx context.Context, vec0, vec1 []*big.Int, opts Options) ([]*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return CircularConvolve(vec0, vec1, opts)
}

// ReferenceConvolver evaluates the defining double sum directly. It is the
// O(n²) oracle used to cross-check the transform pipeline in verify mode.
type ReferenceConvolver struct{}

// Name returns the display name of this convolution path.
//
// Returns:
//   - string: The algorithm name.
func (c *ReferenceConvolver) Name() string { return "Reference" }

// Convolve computes the circular convolution by the defining double sum,
// checking for cancellation between output rows.
func (c *ReferenceConvolver) Convolve(ctx context.Context, vec0, vec1 []*big.Int, opts Options) ([]*big.Int, error) {
	if _, err := validateConvolutionInputs(vec0, vec1); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return referenceConvolve(vec0, vec1), nil
}

// instrumentedConvolver wraps a Convolver to add cross-cutting concerns:
// tracing, Prometheus metrics, and a structured completion log event.
type instrumentedConvolver struct {
	core Convolver
}

// NewConvolver is a factory function that wraps a core convolution path with
// observability. It panics if the core convolver is nil, ensuring system
// integrity.
//
// Parameters:
//   - core: The convolution path to be wrapped.
//
// Returns:
//   - Convolver: The instrumented convolver.
func NewConvolver(core Convolver) Convolver {
	if core == nil {
		panic("ntt: the `Convolver` implementation cannot be nil")
	}
	return &instrumentedConvolver{core: core}
}

// Name returns the name of the wrapped convolution path.
//
// Returns:
//   - string: The algorithm name.
func (c *instrumentedConvolver) Name() string {
	return c.core.Name()
}

// Convolve delegates to the wrapped path inside an OpenTelemetry span,
// recording duration and outcome metrics and a debug log event on the way
// out. Non-context failures are wrapped in a ConvolutionError so callers can
// distinguish pipeline failures from cancellation.
func (c *instrumentedConvolver) Convolve(ctx context.Context, vec0, vec1 []*big.Int, opts Options) (result []*big.Int, err error) {
	tracer := otel.Tracer("ntt")
	ctx, span := tracer.Start(ctx, "Convolve")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		algoName := c.core.Name()
		convolutionsTotal.WithLabelValues(algoName, status).Inc()
		convolutionDuration.WithLabelValues(algoName).Observe(duration)

		log.Debug().
			Str("algorithm", algoName).
			Int("n", len(vec0)).
			Float64("duration", duration).
			Str("status", status).
			Msg("convolution completed")
	}()

	result, err = c.core.Convolve(ctx, vec0, vec1, opts)
	if err != nil && !apperrors.IsContextError(err) {
		err = apperrors.ConvolutionError{Cause: err}
	}
	return result, err
}
