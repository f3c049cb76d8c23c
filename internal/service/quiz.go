package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/jadenpinto/QuizzifyApp/internal/domain/entities"
)

type QuizService struct {
	store  QuestionStore
	rng    *rand.Rand
	logger *zap.Logger
}

// NewQuizService creates a new QuizService. A nil rng is replaced by a time-seeded source.
func NewQuizService(store QuestionStore, rng *rand.Rand, logger *zap.Logger) *QuizService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &QuizService{
		store:  store,
		rng:    rng,
		logger: logger,
	}
}

// Start begins a quiz over a snapshot of the question bank.
// An empty subject includes every question. The snapshot is fixed for the whole session.
func (s *QuizService) Start(ctx context.Context, subject string) (*entities.QuizSession, error) {
	var (
		questions []entities.Question
		err       error
	)
	if subject == "" {
		questions, err = snapshot(ctx, s.store.SubscribeAll())
	} else {
		questions, err = snapshot(ctx, s.store.SubscribeBySubject(subject))
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz questions: %w", err)
	}

	if len(questions) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	session := entities.NewQuizSession(questions, s.rng)

	s.logger.Info("quiz started",
		zap.String("subject", subject),
		zap.Int("total", session.Total()),
	)

	return session, nil
}

// Finish logs the outcome of a completed session and returns its result.
func (s *QuizService) Finish(session *entities.QuizSession) entities.QuizResult {
	result := session.Result()

	s.logger.Info("quiz finished",
		zap.Int("score", result.Score),
		zap.Int("total", result.Total),
		zap.Bool("completed", session.IsCompleted()),
	)

	return result
}
