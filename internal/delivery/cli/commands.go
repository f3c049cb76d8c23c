package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/jadenpinto/QuizzifyApp/internal/service"
)

// handleAll shows the question bank, optionally filtered by subject.
func (h *Handler) handleAll(subject string) HandlerFunc {
	return func(ctx context.Context) error {
		questions, err := h.questionService.List(ctx, subject)
		if err != nil {
			return err
		}

		if len(questions) == 0 {
			if subject != "" {
				h.sendf(msgNoSubjectQuestions, subject)
				return nil
			}
			h.send(msgEmptyBank)
			return nil
		}

		h.send(renderQuestionList(questions))
		return nil
	}
}

func (h *Handler) handleSubjects() HandlerFunc {
	return func(ctx context.Context) error {
		subjects, err := h.questionService.Subjects(ctx)
		if err != nil {
			return err
		}

		if len(subjects) == 0 {
			h.send(msgNoSubjects)
			return nil
		}

		h.send("Subjects:\n  " + strings.Join(subjects, "\n  "))
		return nil
	}
}

func (h *Handler) handleShow(args string) HandlerFunc {
	return func(ctx context.Context) error {
		id, ok := parseID(args)
		if !ok {
			h.send(msgUseShow)
			return nil
		}

		q, err := h.questionService.Get(ctx, id)
		if err != nil {
			if errors.Is(err, service.ErrQuestionNotFound) {
				h.sendf(msgQuestionNotFound, id)
				return nil
			}
			return err
		}

		h.send(renderQuestion(q))
		return nil
	}
}

func (h *Handler) handleAdd() HandlerFunc {
	return func(ctx context.Context) error {
		h.editor = h.questionService.NewDraft()

		h.send(msgEditorHelp)
		h.send(renderEditor(h.editor))
		return nil
	}
}

func (h *Handler) handleEdit(args string) HandlerFunc {
	return func(ctx context.Context) error {
		id, ok := parseID(args)
		if !ok {
			h.send(msgUseEdit)
			return nil
		}

		ed, err := h.questionService.Edit(ctx, id)
		if err != nil {
			if errors.Is(err, service.ErrQuestionNotFound) {
				h.sendf(msgQuestionNotFound, id)
				return nil
			}
			return err
		}

		h.editor = ed
		h.send(msgEditorHelp)
		h.send(renderEditor(h.editor))
		return nil
	}
}

func (h *Handler) handleDelete(args string) HandlerFunc {
	return func(ctx context.Context) error {
		id, ok := parseID(args)
		if !ok {
			h.send(msgUseDelete)
			return nil
		}

		q, err := h.questionService.Get(ctx, id)
		if err != nil {
			if errors.Is(err, service.ErrQuestionNotFound) {
				h.sendf(msgQuestionNotFound, id)
				return nil
			}
			return err
		}

		if _, err := h.questionService.Delete(q).Wait(ctx); err != nil {
			return err
		}

		h.sendf(msgQuestionDeleted, id)
		return nil
	}
}
