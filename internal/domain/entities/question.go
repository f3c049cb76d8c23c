package entities

import (
	"fmt"
	"strings"
)

// MaxOptions is the maximum number of answer options a question can hold.
const MaxOptions = 10

// Question represents a single multiple-choice quiz item.
type Question struct {
	ID            int64    // storage-assigned ID, 0 until the question is persisted
	Text          string   // question prompt
	Subject       string   // optional subject label, empty means "no subject"
	Options       []string // answer options in display order
	CorrectAnswer string   // text of the option considered correct
}

// CorrectIndex returns the index of the first option matching CorrectAnswer, or -1 if none does.
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return i
		}
	}
	return -1
}

// IsCorrect reports whether the option at index i is a correct answer.
// Options are compared by value, so duplicates of the correct text all count.
func (q Question) IsCorrect(i int) bool {
	if i < 0 || i >= len(q.Options) {
		return false
	}
	return q.Options[i] == q.CorrectAnswer
}

// HasSubject reports whether the question carries a subject label.
func (q Question) HasSubject() bool {
	return strings.TrimSpace(q.Subject) != ""
}

// Clone returns a copy of the question that shares no memory with the original.
func (q Question) Clone() Question {
	c := q
	if q.Options != nil {
		c.Options = append([]string(nil), q.Options...)
	}
	return c
}

// Validate checks the structural limits of a question: 1 to MaxOptions options.
func (q Question) Validate() error {
	if len(q.Options) == 0 {
		return fmt.Errorf("question %d: %w: no options", q.ID, ErrInvalidQuestion)
	}
	if len(q.Options) > MaxOptions {
		return fmt.Errorf("question %d: %w: %d options, max %d", q.ID, ErrInvalidQuestion, len(q.Options), MaxOptions)
	}
	return nil
}
