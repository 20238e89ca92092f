package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
	"github.com/heartmarshall/sitebook-backend/pkg/ctxutil"
)

// Error codes reported in extensions.code.
const (
	CodeValidation      = "VALIDATION"
	CodeNotFound        = "NOT_FOUND"
	CodeAlreadyExists   = "ALREADY_EXISTS"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeConflict        = "CONFLICT"
	CodeTooLarge        = "PAYLOAD_TOO_LARGE"
	CodeInternal        = "INTERNAL"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Errors gqlerror.List `json:"errors"`
}

// presentError maps an error to an HTTP status and error list. Validation
// errors produce one entry per field with its argument path. Unexpected
// errors are logged and reported without detail.
func presentError(ctx context.Context, log *slog.Logger, err error) (int, gqlerror.List) {
	var ve *domain.ValidationError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, gqlerror.List{
			coded(CodeTooLarge, "request body exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes"),
		}

	case errors.As(err, &ve) && len(ve.Errors) > 0:
		list := make(gqlerror.List, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			e := coded(CodeValidation, fe.Message)
			e.Path = parsePath(fe.Field)
			e.Extensions["field"] = fe.Field
			list = append(list, e)
		}
		return http.StatusUnprocessableEntity, list

	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, gqlerror.List{coded(CodeValidation, err.Error())}

	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, gqlerror.List{coded(CodeNotFound, err.Error())}

	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, gqlerror.List{coded(CodeAlreadyExists, err.Error())}

	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, gqlerror.List{coded(CodeUnauthenticated, "unauthorized")}

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, gqlerror.List{coded(CodeForbidden, "forbidden")}

	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, gqlerror.List{coded(CodeConflict, err.Error())}

	default:
		log.ErrorContext(ctx, "unexpected error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		)
		return http.StatusInternalServerError, gqlerror.List{coded(CodeInternal, "internal error")}
	}
}

func coded(code, message string) *gqlerror.Error {
	return &gqlerror.Error{
		Message:    message,
		Extensions: map[string]any{"code": code},
	}
}

// parsePath splits a field path such as "where.AND[0].status" into
// ["where", "AND", 0, "status"].
func parsePath(field string) ast.Path {
	if field == "" {
		return nil
	}

	var path ast.Path
	for _, part := range strings.Split(field, ".") {
		name, rest, _ := strings.Cut(part, "[")
		if name != "" {
			path = append(path, ast.PathName(name))
		}
		for rest != "" {
			idx, after, ok := strings.Cut(rest, "]")
			if !ok {
				break
			}
			if n, err := strconv.Atoi(idx); err == nil {
				path = append(path, ast.PathIndex(n))
			} else {
				path = append(path, ast.PathName(idx))
			}
			rest = strings.TrimPrefix(after, "[")
		}
	}
	return path
}

func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, list := presentError(r.Context(), log, err)
	writeJSON(w, status, errorResponse{Errors: list})
}
