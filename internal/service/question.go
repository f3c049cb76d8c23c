package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jadenpinto/QuizzifyApp/internal/domain/entities"
	"github.com/jadenpinto/QuizzifyApp/internal/storage"
)

// QuestionService manages the question bank: browsing, authoring and deletion.
type QuestionService struct {
	store  QuestionStore
	logger *zap.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(store QuestionStore, logger *zap.Logger) *QuestionService {
	return &QuestionService{
		store:  store,
		logger: logger,
	}
}

// NewDraft returns an editor for a new question.
func (s *QuestionService) NewDraft() *entities.QuestionEditor {
	return entities.NewQuestionEditor()
}

// Edit returns an editor populated from the stored question.
func (s *QuestionService) Edit(ctx context.Context, id int64) (*entities.QuestionEditor, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return entities.EditQuestion(q), nil
}

// Save commits the editor and queues the resulting question for storage.
// New questions are inserted, edited ones replace the stored version.
func (s *QuestionService) Save(ed *entities.QuestionEditor) (*storage.Pending, error) {
	q, err := ed.Commit()
	if err != nil {
		return nil, fmt.Errorf("save question: %w", err)
	}

	if ed.IsNew() {
		s.logger.Debug("inserting question", zap.String("subject", q.Subject), zap.Int("options", len(q.Options)))
		return s.store.Insert(q), nil
	}

	s.logger.Debug("updating question", zap.Int64("question_id", q.ID))
	return s.store.Update(q), nil
}

// Delete queues removal of q.
func (s *QuestionService) Delete(q entities.Question) *storage.Pending {
	s.logger.Debug("deleting question", zap.Int64("question_id", q.ID))
	return s.store.Delete(q)
}

// List returns the question bank ordered by id. An empty subject lists every question.
func (s *QuestionService) List(ctx context.Context, subject string) ([]entities.Question, error) {
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
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return questions, nil
}

// Get returns the stored question with the given id.
func (s *QuestionService) Get(ctx context.Context, id int64) (entities.Question, error) {
	q, err := snapshot(ctx, s.store.SubscribeByID(id))
	if err != nil {
		return entities.Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	if q == nil {
		return entities.Question{}, ErrQuestionNotFound
	}

	return *q, nil
}

// Subjects returns the distinct subjects in the question bank.
func (s *QuestionService) Subjects(ctx context.Context) ([]string, error) {
	subjects, err := snapshot(ctx, s.store.SubscribeSubjects())
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	return subjects, nil
}
