package service

import (
	"context"

	"github.com/jadenpinto/QuizzifyApp/internal/storage"
)

// snapshot returns the first value of a live query and closes it.
func snapshot[T any](ctx context.Context, sub *storage.Subscription[T]) (T, error) {
	defer sub.Close()

	var zero T
	select {
	case v, ok := <-sub.Updates():
		if !ok {
			return zero, storage.ErrStoreClosed
		}
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
