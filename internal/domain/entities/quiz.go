package entities

import (
	"fmt"
	"math/rand"
	"time"
)

// QuizStatus is the state of a quiz session.
type QuizStatus string

const (
	QuizInProgress QuizStatus = "in_progress"
	QuizCompleted  QuizStatus = "completed"
)

const noSelection = -1

// QuizSession represents a single quiz attempt over a fixed, shuffled set of questions.
// It tracks the current position, the selected option for the current question and the score.
// A session is owned by one caller and is not safe for concurrent use.
type QuizSession struct {
	order     []Question // shuffled snapshot, fixed for the session lifetime
	position  int        // index of the current question in order
	selection int        // selected option index for the current question, noSelection if none
	score     int        // number of correctly answered questions so far
	answers   []QuizAnswer

	StartedAt   time.Time  // timestamp when the quiz started
	CompletedAt *time.Time // timestamp when the quiz was completed (nullable)
}

// NewQuizSession creates a quiz session over a shuffled copy of questions.
// The shuffle uses rng; a nil rng falls back to the global math/rand source.
// An empty question set yields a session that is already completed.
func NewQuizSession(questions []Question, rng *rand.Rand) *QuizSession {
	order := make([]Question, len(questions))
	for i, q := range questions {
		order[i] = q.Clone()
	}

	swap := func(i, j int) { order[i], order[j] = order[j], order[i] }
	if rng != nil {
		rng.Shuffle(len(order), swap)
	} else {
		rand.Shuffle(len(order), swap)
	}

	s := &QuizSession{
		order:     order,
		selection: noSelection,
		answers:   make([]QuizAnswer, 0, len(order)),
		StartedAt: time.Now(),
	}
	if len(order) == 0 {
		s.complete()
	}

	return s
}

// Status returns the current state of the session.
func (s *QuizSession) Status() QuizStatus {
	if s.IsCompleted() {
		return QuizCompleted
	}
	return QuizInProgress
}

// IsCompleted reports whether every question has been advanced past.
func (s *QuizSession) IsCompleted() bool {
	return s.position >= len(s.order)
}

// Position returns the zero-based index of the current question.
func (s *QuizSession) Position() int { return s.position }

// Total returns the number of questions in the session.
func (s *QuizSession) Total() int { return len(s.order) }

// Score returns the number of correct answers so far.
func (s *QuizSession) Score() int { return s.score }

// Selection returns the selected option index for the current question.
func (s *QuizSession) Selection() (int, bool) {
	if s.selection == noSelection {
		return 0, false
	}
	return s.selection, true
}

// Current returns the question at the current position.
// The second result is false once the session is completed.
func (s *QuizSession) Current() (Question, bool) {
	if s.IsCompleted() {
		return Question{}, false
	}
	return s.order[s.position].Clone(), true
}

// IsLastQuestion reports whether the current question is the final one.
func (s *QuizSession) IsLastQuestion() bool {
	return !s.IsCompleted() && s.position == len(s.order)-1
}

// Order returns a copy of the shuffled question order.
func (s *QuizSession) Order() []Question {
	out := make([]Question, len(s.order))
	for i, q := range s.order {
		out[i] = q.Clone()
	}
	return out
}

// Answers returns the answers recorded so far, one per advanced question.
func (s *QuizSession) Answers() []QuizAnswer {
	return append([]QuizAnswer(nil), s.answers...)
}

// SelectOption marks option i of the current question as selected.
// Selecting again overwrites the previous selection.
func (s *QuizSession) SelectOption(i int) error {
	if s.IsCompleted() {
		return fmt.Errorf("select option: %w: quiz is completed", ErrInvalidTransition)
	}

	current := s.order[s.position]
	if i < 0 || i >= len(current.Options) {
		return fmt.Errorf("select option %d of %d: %w", i, len(current.Options), ErrInvalidIndex)
	}

	s.selection = i
	return nil
}

// Advance scores the current question and moves to the next one.
// Advancing without a selection skips the question, which counts as incorrect.
func (s *QuizSession) Advance() (QuizAnswer, error) {
	if s.IsCompleted() {
		return QuizAnswer{}, fmt.Errorf("advance: %w: quiz is completed", ErrInvalidTransition)
	}

	current := s.order[s.position]
	answer := NewQuizAnswer(current)
	if s.selection != noSelection {
		answer.Select(s.selection)
	}
	if answer.IsCorrect {
		s.score++
	}
	s.answers = append(s.answers, answer)

	s.position++
	s.selection = noSelection

	if s.IsCompleted() {
		s.complete()
	}

	return answer, nil
}

// Result returns the final or running score of the session.
func (s *QuizSession) Result() QuizResult {
	return QuizResult{Score: s.score, Total: len(s.order)}
}

func (s *QuizSession) complete() {
	now := time.Now()
	s.CompletedAt = &now
}

// QuizResult is the score summary of a quiz session.
type QuizResult struct {
	Score int
	Total int
}

// Percentage returns the share of correct answers in percent.
func (r QuizResult) Percentage() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) * 100 / float64(r.Total)
}

// QuizAnswer represents the outcome of one question in a quiz session.
type QuizAnswer struct {
	Question      Question  // question that was answered
	Selected      int       // selected option index, -1 if the question was skipped
	UserAnswer    string    // text of the selected option, empty if skipped
	CorrectAnswer string    // correct answer text
	IsCorrect     bool      // whether the answer was correct
	Skipped       bool      // whether the question was skipped
	AnsweredAt    time.Time // timestamp when the answer was recorded
}

// NewQuizAnswer creates a skipped answer for the question.
func NewQuizAnswer(q Question) QuizAnswer {
	return QuizAnswer{
		Question:      q.Clone(),
		Selected:      noSelection,
		CorrectAnswer: q.CorrectAnswer,
		Skipped:       true,
		AnsweredAt:    time.Now(),
	}
}

// Select records option i as the user's answer and determines whether it is correct.
func (qa *QuizAnswer) Select(i int) {
	qa.Selected = i
	qa.Skipped = false
	qa.UserAnswer = qa.Question.Options[i]
	qa.IsCorrect = qa.Question.IsCorrect(i)
}
