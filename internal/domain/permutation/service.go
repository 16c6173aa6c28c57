package permutation

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"nextperm/internal/core/apperror"
	"nextperm/internal/core/digits"
	"nextperm/pkg/logger"
)

var tracer = otel.Tracer("nextperm/permutation")

// Outcome labels reported to a Recorder.
const (
	OutcomeFound    = "found"
	OutcomeNone     = "none"
	OutcomeRejected = "rejected"
)

// Recorder observes computation outcomes.
type Recorder interface {
	ObserveOutcome(outcome string)
}

// Result is the outcome of a single computation.
type Result struct {
	Input  digits.Sequence
	Output digits.Sequence // nil when Found is false
	Found  bool
}

// Service validates raw input and runs the engine on it.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	recorder Recorder
}

// NewService creates a new permutation service. recorder may be nil.
func NewService(recorder Recorder) *Service {
	return &Service{recorder: recorder}
}

// Next parses raw and returns its next permutation.
// Parse failures are returned as *apperror.AppError.
func (s *Service) Next(ctx context.Context, raw string) (Result, error) {
	ctx, span := tracer.Start(ctx, "permutation.next",
		trace.WithAttributes(
			attribute.Int("input.length", len(raw)),
		))
	defer span.End()

	input, err := digits.Parse(raw)
	if err != nil {
		s.observe(OutcomeRejected)
		span.RecordError(err)
		return Result{}, toAppError(raw, err)
	}

	output, found := Next(input.Clone())

	span.SetAttributes(
		attribute.Int("digits.count", len(input)),
		attribute.Bool("permutation.found", found),
	)
	logger.FromContext(ctx).WithComponent("permutation").Debugw("next permutation computed",
		"input", raw,
		"found", found,
	)

	if !found {
		s.observe(OutcomeNone)
		return Result{Input: input}, nil
	}
	s.observe(OutcomeFound)
	return Result{Input: input, Output: output, Found: true}, nil
}

func (s *Service) observe(outcome string) {
	if s.recorder != nil {
		s.recorder.ObserveOutcome(outcome)
	}
}

func toAppError(raw string, err error) *apperror.AppError {
	switch {
	case errors.Is(err, digits.ErrEmpty):
		return apperror.NewValidation("input_num was not set").WithCause(err)
	case errors.Is(err, digits.ErrOutOfRange):
		return apperror.NewOutOfRange(raw, digits.MinInput, digits.MaxInput).WithCause(err)
	default:
		return apperror.NewInvalidInput("Invalid Input Number").
			WithDetail("input_num", raw).
			WithCause(err)
	}
}
