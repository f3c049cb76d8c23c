package entities

import (
	"fmt"
	"strings"
)

// QuestionEditor holds the draft of a question being created or edited.
// It keeps the correct-option pointer valid while options are added and removed.
// An editor is owned by one caller and is not safe for concurrent use.
type QuestionEditor struct {
	id           int64
	text         string
	subject      string
	options      []string
	correctIndex int
	discarded    bool
}

// NewQuestionEditor creates an empty draft with a single blank option.
func NewQuestionEditor() *QuestionEditor {
	return &QuestionEditor{
		options: []string{""},
	}
}

// EditQuestion creates a draft populated from an existing question.
// The correct option is the first one matching the question's correct answer, or the first option.
func EditQuestion(q Question) *QuestionEditor {
	options := append([]string(nil), q.Options...)
	if len(options) == 0 {
		options = []string{""}
	}

	correctIndex := q.CorrectIndex()
	if correctIndex < 0 || correctIndex >= len(options) {
		correctIndex = 0
	}

	return &QuestionEditor{
		id:           q.ID,
		text:         q.Text,
		subject:      q.Subject,
		options:      options,
		correctIndex: correctIndex,
	}
}

func (e *QuestionEditor) ID() int64         { return e.id }
func (e *QuestionEditor) IsNew() bool       { return e.id == 0 }
func (e *QuestionEditor) Text() string      { return e.text }
func (e *QuestionEditor) Subject() string   { return e.subject }
func (e *QuestionEditor) CorrectIndex() int { return e.correctIndex }

// Options returns a copy of the draft options.
func (e *QuestionEditor) Options() []string {
	return append([]string(nil), e.options...)
}

// SetText replaces the question text.
func (e *QuestionEditor) SetText(s string) error {
	if err := e.checkActive("set text"); err != nil {
		return err
	}
	e.text = s
	return nil
}

// SetSubject replaces the subject label.
func (e *QuestionEditor) SetSubject(s string) error {
	if err := e.checkActive("set subject"); err != nil {
		return err
	}
	e.subject = s
	return nil
}

// SetOption replaces the text of option i in place.
func (e *QuestionEditor) SetOption(i int, s string) error {
	if err := e.checkActive("set option"); err != nil {
		return err
	}
	if err := e.checkIndex("set option", i); err != nil {
		return err
	}
	e.options[i] = s
	return nil
}

// CanAddOption reports whether another option slot fits under MaxOptions.
func (e *QuestionEditor) CanAddOption() bool {
	return !e.discarded && len(e.options) < MaxOptions
}

// AddOption appends an empty option.
func (e *QuestionEditor) AddOption() error {
	if err := e.checkActive("add option"); err != nil {
		return err
	}
	if len(e.options) >= MaxOptions {
		return fmt.Errorf("add option: %w: max %d", ErrOptionLimit, MaxOptions)
	}
	e.options = append(e.options, "")
	return nil
}

// CanRemoveOption reports whether an option may be removed.
func (e *QuestionEditor) CanRemoveOption() bool {
	return !e.discarded && len(e.options) > 1
}

// RemoveOption removes option i.
// If the correct option was at or after i it is clamped to the last remaining option;
// the index is not shifted to follow the text it pointed at.
func (e *QuestionEditor) RemoveOption(i int) error {
	if err := e.checkActive("remove option"); err != nil {
		return err
	}
	if err := e.checkIndex("remove option", i); err != nil {
		return err
	}
	if len(e.options) <= 1 {
		return fmt.Errorf("remove option %d: %w", i, ErrLastOption)
	}

	e.options = append(e.options[:i], e.options[i+1:]...)

	if e.correctIndex >= i && e.correctIndex > len(e.options)-1 {
		e.correctIndex = len(e.options) - 1
	}

	return nil
}

// SetCorrectIndex marks option i as the correct answer.
func (e *QuestionEditor) SetCorrectIndex(i int) error {
	if err := e.checkActive("set correct option"); err != nil {
		return err
	}
	if err := e.checkIndex("set correct option", i); err != nil {
		return err
	}
	e.correctIndex = i
	return nil
}

// IsSavable reports whether the draft has a non-blank text and no blank options.
// The subject is never required.
func (e *QuestionEditor) IsSavable() bool {
	if strings.TrimSpace(e.text) == "" {
		return false
	}
	for _, opt := range e.options {
		if strings.TrimSpace(opt) == "" {
			return false
		}
	}
	return true
}

// Commit builds the question described by the draft. It does not persist anything.
func (e *QuestionEditor) Commit() (Question, error) {
	if err := e.checkActive("commit"); err != nil {
		return Question{}, err
	}
	if !e.IsSavable() {
		return Question{}, fmt.Errorf("commit: %w", ErrUnsavable)
	}

	return Question{
		ID:            e.id,
		Text:          e.text,
		Subject:       e.subject,
		Options:       e.Options(),
		CorrectAnswer: e.options[e.correctIndex],
	}, nil
}

// Discard marks the editor as abandoned. Any later operation fails with ErrInvalidTransition.
func (e *QuestionEditor) Discard() {
	e.discarded = true
}

// IsDiscarded reports whether Discard has been called.
func (e *QuestionEditor) IsDiscarded() bool { return e.discarded }

func (e *QuestionEditor) checkActive(op string) error {
	if e.discarded {
		return fmt.Errorf("%s: %w: editor is discarded", op, ErrInvalidTransition)
	}
	return nil
}

func (e *QuestionEditor) checkIndex(op string, i int) error {
	if i < 0 || i >= len(e.options) {
		return fmt.Errorf("%s %d of %d: %w", op, i, len(e.options), ErrInvalidIndex)
	}
	return nil
}
