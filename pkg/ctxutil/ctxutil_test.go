package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithCaller_And_CallerFromCtx(t *testing.T) {
	t.Parallel()

	c := Caller{UserID: uuid.New(), Email: "pm@example.com"}
	ctx := WithCaller(context.Background(), c)

	got, ok := CallerFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for valid caller")
	}
	if got != c {
		t.Fatalf("expected %+v, got %+v", c, got)
	}

	id, ok := UserIDFromCtx(ctx)
	if !ok || id != c.UserID {
		t.Fatalf("expected user ID %s, got %s (ok=%v)", c.UserID, id, ok)
	}
}

func TestCallerFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if _, ok := CallerFromCtx(context.Background()); ok {
		t.Fatal("expected ok=false for empty context")
	}

	got, ok := UserIDFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != uuid.Nil {
		t.Fatalf("expected uuid.Nil, got %s", got)
	}
}

func TestCallerFromCtx_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithCaller(context.Background(), Caller{UserID: uuid.Nil, Email: "x@example.com"})

	if _, ok := CallerFromCtx(ctx); ok {
		t.Fatal("expected ok=false for nil UUID")
	}
}

func TestCallerFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), callerKey, uuid.New())

	if _, ok := CallerFromCtx(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty request ID, got %q", got)
	}

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Fatalf("expected req-123, got %q", got)
	}
}

func TestOperation(t *testing.T) {
	t.Parallel()

	if _, ok := OperationFromCtx(context.Background()); ok {
		t.Fatal("expected ok=false for empty context")
	}

	ctx := WithOperation(context.Background(), Operation{Model: "project", Name: "findMany"})
	op, ok := OperationFromCtx(ctx)
	if !ok {
		t.Fatal("expected operation in context")
	}
	if op.String() != "project.findMany" {
		t.Fatalf("expected project.findMany, got %q", op.String())
	}
}
