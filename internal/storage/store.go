package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"github.com/jadenpinto/QuizzifyApp/internal/domain/entities"
	"github.com/jadenpinto/QuizzifyApp/internal/infra/database/repository"
)

var ErrStoreClosed = errors.New("question store is closed")

type QuestionRepository interface {
	Insert(ctx context.Context, q entities.Question) (int64, error)
	InsertMany(ctx context.Context, qs []entities.Question) ([]int64, error)
	Update(ctx context.Context, q entities.Question) (int64, error)
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]entities.Question, error)
	GetByID(ctx context.Context, id int64) (entities.Question, error)
	GetBySubject(ctx context.Context, subject string) ([]entities.Question, error)
	Subjects(ctx context.Context) ([]string, error)
}

type operation struct {
	run  func(ctx context.Context)
	fail func(err error)
}

type subscriber struct {
	refresh func(ctx context.Context)
	close   func()
}

// QuestionStore serializes all access to the question repository through one worker goroutine.
// Writes return immediately with a Pending handle. Reads are live subscriptions that are
// refreshed after every write, so a reader always observes writes queued before it.
type QuestionStore struct {
	repo   QuestionRepository
	logger *zap.Logger

	mu      sync.Mutex
	queue   []operation
	started bool
	closed  bool
	wake    chan struct{}
	wg      conc.WaitGroup

	closeOnce sync.Once

	subsMu  sync.Mutex
	subs    map[uint64]subscriber
	nextSub uint64
}

// NewQuestionStore creates a new QuestionStore. Start must be called before queued operations run.
func NewQuestionStore(repo QuestionRepository, logger *zap.Logger) *QuestionStore {
	return &QuestionStore{
		repo:   repo,
		logger: logger,
		wake:   make(chan struct{}, 1),
		subs:   make(map[uint64]subscriber),
	}
}

// Start launches the worker. Cancelling ctx stops the store after the queued operations are applied.
func (s *QuestionStore) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started || s.closed {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	s.wg.Go(func() {
		s.run(ctx)
	})
}

// Close stops accepting operations, applies the queued ones, closes every subscription
// and waits for the worker to exit.
func (s *QuestionStore) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		started := s.started
		s.mu.Unlock()

		if started {
			s.signal()
			s.wg.Wait()
		} else {
			for _, op := range s.take() {
				op.fail(ErrStoreClosed)
			}
		}

		s.subsMu.Lock()
		subs := make([]subscriber, 0, len(s.subs))
		for _, sub := range s.subs {
			subs = append(subs, sub)
		}
		s.subsMu.Unlock()

		for _, sub := range subs {
			sub.close()
		}
	})
}

// Insert queues q for storage. A question without an id is assigned a fresh one;
// a question with an id replaces the stored one.
func (s *QuestionStore) Insert(q entities.Question) *Pending {
	q = q.Clone()
	return s.write("insert question", func(ctx context.Context) ([]int64, error) {
		id, err := s.repo.Insert(ctx, q)
		if err != nil {
			return nil, err
		}
		return []int64{id}, nil
	})
}

// InsertMany queues qs for storage in one transaction. Ids are reported in input order.
func (s *QuestionStore) InsertMany(qs []entities.Question) *Pending {
	batch := make([]entities.Question, len(qs))
	for i, q := range qs {
		batch[i] = q.Clone()
	}
	return s.write("insert questions", func(ctx context.Context) ([]int64, error) {
		return s.repo.InsertMany(ctx, batch)
	})
}

// Update queues a replacement of the question with q's id.
func (s *QuestionStore) Update(q entities.Question) *Pending {
	q = q.Clone()
	return s.write("update question", func(ctx context.Context) ([]int64, error) {
		id, err := s.repo.Update(ctx, q)
		if err != nil {
			return nil, err
		}
		return []int64{id}, nil
	})
}

// Delete queues removal of the question with q's id. Deleting an absent question is a no-op.
func (s *QuestionStore) Delete(q entities.Question) *Pending {
	id := q.ID
	return s.write("delete question", func(ctx context.Context) ([]int64, error) {
		if err := s.repo.Delete(ctx, id); err != nil {
			return nil, err
		}
		return []int64{id}, nil
	})
}

// SubscribeAll observes every question ordered by id.
func (s *QuestionStore) SubscribeAll() *Subscription[[]entities.Question] {
	return subscribe(s, "all questions", s.repo.GetAll)
}

// SubscribeByID observes one question. It emits nil while the question does not exist.
func (s *QuestionStore) SubscribeByID(id int64) *Subscription[*entities.Question] {
	return subscribe(s, fmt.Sprintf("question %d", id), func(ctx context.Context) (*entities.Question, error) {
		q, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrQuestionNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &q, nil
	})
}

// SubscribeBySubject observes the questions with the given subject ordered by id.
func (s *QuestionStore) SubscribeBySubject(subject string) *Subscription[[]entities.Question] {
	return subscribe(s, fmt.Sprintf("subject %q", subject), func(ctx context.Context) ([]entities.Question, error) {
		return s.repo.GetBySubject(ctx, subject)
	})
}

// SubscribeSubjects observes the distinct subjects in use.
func (s *QuestionStore) SubscribeSubjects() *Subscription[[]string] {
	return subscribe(s, "subjects", s.repo.Subjects)
}

func subscribe[T any](s *QuestionStore, query string, load func(ctx context.Context) (T, error)) *Subscription[T] {
	sub := newSubscription[T]()

	refresh := func(ctx context.Context) {
		v, err := load(ctx)
		if err != nil {
			s.logger.Error("refresh subscription", zap.String("query", query), zap.Error(err))
			return
		}
		sub.push(v)
	}

	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	sub.release = func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
	s.subs[id] = subscriber{refresh: refresh, close: sub.Close}
	s.subsMu.Unlock()

	err := s.enqueue(operation{
		run:  refresh,
		fail: func(error) { sub.Close() },
	})
	if err != nil {
		sub.Close()
	}

	return sub
}

func (s *QuestionStore) write(name string, fn func(ctx context.Context) ([]int64, error)) *Pending {
	p := newPending()

	err := s.enqueue(operation{
		run: func(ctx context.Context) {
			ids, err := fn(ctx)
			if err != nil {
				s.logger.Error(name, zap.Error(err))
				err = fmt.Errorf("%s: %w", name, err)
			} else {
				s.logger.Debug(name, zap.Int64s("question_ids", ids))
			}
			s.refreshAll(ctx)
			p.resolve(ids, err)
		},
		fail: func(err error) { p.resolve(nil, err) },
	})
	if err != nil {
		return failedPending(fmt.Errorf("%s: %w", name, err))
	}

	return p
}

func (s *QuestionStore) refreshAll(ctx context.Context) {
	s.subsMu.Lock()
	subs := make([]subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.subsMu.Unlock()

	for _, sub := range subs {
		sub.refresh(ctx)
	}
}

func (s *QuestionStore) enqueue(op operation) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}
	s.queue = append(s.queue, op)
	s.mu.Unlock()

	s.signal()
	return nil
}

func (s *QuestionStore) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *QuestionStore) take() []operation {
	s.mu.Lock()
	defer s.mu.Unlock()

	ops := s.queue
	s.queue = nil
	return ops
}

func (s *QuestionStore) run(ctx context.Context) {
	// Queued writes are applied even after ctx is cancelled.
	opCtx := context.WithoutCancel(ctx)

	for {
		for _, op := range s.take() {
			op.run(opCtx)
		}

		s.mu.Lock()
		stop := s.closed && len(s.queue) == 0
		s.mu.Unlock()
		if stop {
			return
		}

		select {
		case <-s.wake:
		case <-ctx.Done():
			s.mu.Lock()
			s.closed = true
			s.mu.Unlock()
		}
	}
}
