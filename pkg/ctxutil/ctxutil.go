// Package ctxutil carries request-scoped values: the authenticated caller,
// the request ID and the operation being served.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "request_id"
	operationKey ctxKey = "operation"
)

// Caller is the authenticated user of a request.
type Caller struct {
	UserID uuid.UUID
	Email  string
}

// WithCaller stores the caller in the context.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey, c)
}

// CallerFromCtx extracts the caller from the context.
// Returns false if the value is missing or carries a nil user ID.
func CallerFromCtx(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey).(Caller)
	if !ok || c.UserID == uuid.Nil {
		return Caller{}, false
	}
	return c, true
}

// UserIDFromCtx returns the caller's user ID, or uuid.Nil and false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	c, ok := CallerFromCtx(ctx)
	return c.UserID, ok
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Operation names a model operation, e.g. "project.findMany".
type Operation struct {
	Model string
	Name  string
}

func (o Operation) String() string { return o.Model + "." + o.Name }

// WithOperation stores the operation in the context.
func WithOperation(ctx context.Context, op Operation) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// OperationFromCtx extracts the operation from the context.
func OperationFromCtx(ctx context.Context) (Operation, bool) {
	op, ok := ctx.Value(operationKey).(Operation)
	return op, ok
}
