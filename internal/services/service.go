package services

import (
	"context"
	"errors"

	apierrors "github.com/yukikurage/project-tracker/internal/errors"
	"github.com/yukikurage/project-tracker/internal/store"
)

// ErrRequestAbandoned is returned when the caller stops waiting before the
// store answers. The request itself still completes.
var ErrRequestAbandoned = apierrors.Unavailable("request was abandoned before the store answered")

// await waits for f and turns a cancelled wait into an APIError
func await[T any](ctx context.Context, f *store.Future[T]) (T, error) {
	value, err := f.Await(ctx)
	if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return value, ErrRequestAbandoned
	}
	return value, err
}
