package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/jadenpinto/QuizzifyApp/internal/domain/entities"
	"github.com/jadenpinto/QuizzifyApp/internal/service"
)

func (h *Handler) handleQuizStart(subject string) HandlerFunc {
	return func(ctx context.Context) error {
		session, err := h.quizService.Start(ctx, subject)
		if err != nil {
			if errors.Is(err, service.ErrNoQuestionsAvailable) {
				if subject != "" {
					h.sendf(msgNoSubjectQuestions, subject)
					return nil
				}
				h.send(msgAddQuestionsFirst)
				return nil
			}
			return err
		}

		h.quiz = session
		h.send(msgQuizHelp)
		h.send(renderQuizQuestion(session))
		return nil
	}
}

// handleQuizInput drives the running quiz: an option number selects, next advances.
func (h *Handler) handleQuizInput(line string) HandlerFunc {
	return func(ctx context.Context) error {
		session := h.quiz

		switch strings.ToLower(line) {
		case "/stop":
			h.quizService.Finish(session)
			h.quiz = nil
			h.send(msgQuizStopped)
			return nil

		case "", "next", "n", "view score":
			if _, err := session.Advance(); err != nil {
				return err
			}

			if session.IsCompleted() {
				h.quizService.Finish(session)
				h.quiz = nil
				h.send(renderQuizResult(session))
				return nil
			}

			h.send(renderQuizQuestion(session))
			return nil
		}

		i, ok := parseOption(line)
		if !ok {
			h.send(msgQuizHelp)
			return nil
		}

		if err := session.SelectOption(i); err != nil {
			if errors.Is(err, entities.ErrInvalidIndex) {
				current, _ := session.Current()
				h.sendf(msgInvalidOption, line, len(current.Options))
				return nil
			}
			return err
		}

		h.send(renderQuizQuestion(session))
		return nil
	}
}
