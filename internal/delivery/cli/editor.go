package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/jadenpinto/QuizzifyApp/internal/domain/entities"
)

// handleEditorInput applies one editor command to the draft in progress.
func (h *Handler) handleEditorInput(line string) HandlerFunc {
	return func(ctx context.Context) error {
		ed := h.editor
		cmd, args := splitCommand(line)

		var err error
		switch cmd {
		case "text":
			err = ed.SetText(args)

		case "subject":
			err = ed.SetSubject(args)

		case "option":
			numStr, text, _ := strings.Cut(args, " ")
			i, ok := parseOption(numStr)
			if !ok {
				h.send(msgEditorHelp)
				return nil
			}
			err = h.draftIndexError(ed.SetOption(i, strings.TrimSpace(text)), numStr)

		case "add":
			err = ed.AddOption()
			if errors.Is(err, entities.ErrOptionLimit) {
				h.sendf(msgOptionLimit, entities.MaxOptions)
				return nil
			}

		case "remove":
			i, ok := parseOption(args)
			if !ok {
				h.send(msgEditorHelp)
				return nil
			}
			err = ed.RemoveOption(i)
			if errors.Is(err, entities.ErrLastOption) {
				h.send(msgLastOption)
				return nil
			}
			err = h.draftIndexError(err, args)

		case "correct":
			i, ok := parseOption(args)
			if !ok {
				h.send(msgEditorHelp)
				return nil
			}
			err = h.draftIndexError(ed.SetCorrectIndex(i), args)

		case "show", "":
			h.send(renderEditor(ed))
			return nil

		case "save":
			return h.saveDraft(ctx)

		case "cancel", "/cancel":
			ed.Discard()
			h.editor = nil
			h.send(msgEditCancelled)
			return nil

		case "help", "/help":
			h.send(msgEditorHelp)
			return nil

		default:
			h.send(msgEditorHelp)
			return nil
		}

		if errors.Is(err, errReported) {
			return nil
		}
		if err != nil {
			return err
		}

		h.send(renderEditor(ed))
		return nil
	}
}

var errReported = errors.New("reported to user")

// draftIndexError reports an out-of-range option number to the user.
func (h *Handler) draftIndexError(err error, typed string) error {
	if errors.Is(err, entities.ErrInvalidIndex) {
		h.sendf(msgInvalidDraftIndex, typed, len(h.editor.Options()))
		return errReported
	}
	return err
}

func (h *Handler) saveDraft(ctx context.Context) error {
	ed := h.editor

	if !ed.IsSavable() {
		h.send(renderSaveProblems(ed))
		return nil
	}

	pending, err := h.questionService.Save(ed)
	if err != nil {
		return err
	}

	id, err := pending.ID(ctx)
	if err != nil {
		return err
	}

	h.editor = nil
	h.sendf(msgQuestionSaved, id)
	return nil
}
