// Package records validates and runs model operations.
package records

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
	"github.com/heartmarshall/sitebook-backend/internal/schema"
	"github.com/heartmarshall/sitebook-backend/pkg/ctxutil"
)

// decoder turns a request body into a validated operation.
type decoder interface {
	Decode(model, op string, data []byte) (*schema.Operation, error)
}

// Service implements record operations.
type Service struct {
	log     *slog.Logger
	decoder decoder
	engines map[string]schema.Engine
}

// NewService creates a new records service. engines is keyed by model name.
func NewService(logger *slog.Logger, decoder decoder, engines map[string]schema.Engine) *Service {
	return &Service{
		log:     logger.With("service", "records"),
		decoder: decoder,
		engines: engines,
	}
}

// Validate decodes and validates the arguments of op on model without
// touching the database.
func (s *Service) Validate(model, op string, body []byte) (*schema.Operation, error) {
	return s.decoder.Decode(model, op, body)
}

// Execute validates the arguments and runs the operation on the model's
// engine.
func (s *Service) Execute(ctx context.Context, model, op string, body []byte) (any, error) {
	o, err := s.decoder.Decode(model, op, body)
	if err != nil {
		return nil, err
	}

	engine, ok := s.engines[model]
	if !ok {
		return nil, fmt.Errorf("records.Execute: no engine for %q: %w", model, domain.ErrNotFound)
	}

	ctx = ctxutil.WithOperation(ctx, ctxutil.Operation{Model: model, Name: op})
	start := time.Now()

	out, err := o.Execute(ctx, engine)
	if err != nil {
		if isClientError(err) {
			s.log.DebugContext(ctx, "operation rejected",
				slog.String("model", model),
				slog.String("operation", op),
				slog.String("error", err.Error()))
		} else {
			s.log.ErrorContext(ctx, "operation failed",
				slog.String("model", model),
				slog.String("operation", op),
				slog.String("error", err.Error()))
		}
		return nil, err
	}

	s.log.DebugContext(ctx, "operation executed",
		slog.String("model", model),
		slog.String("operation", op),
		slog.Duration("duration", time.Since(start)))

	return out, nil
}

func isClientError(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrAlreadyExists) ||
		errors.Is(err, context.Canceled)
}
