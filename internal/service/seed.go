package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jadenpinto/QuizzifyApp/internal/domain/entities"
)

// SeedExampleQuestions stores the example questions in a freshly created question bank.
// Callers run it only when the schema was created by this start-up.
func SeedExampleQuestions(ctx context.Context, store QuestionStore, logger *zap.Logger) ([]int64, error) {
	ids, err := store.InsertMany(entities.ExampleQuestions()).Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed example questions: %w", err)
	}

	logger.Info("seeded example questions", zap.Int64s("question_ids", ids))

	return ids, nil
}
