package cli

import (
	"context"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			h.logger.Error("handle error", zap.Error(err))
			h.send(msgInternalError)
			return nil
		}
		return nil
	}
}
