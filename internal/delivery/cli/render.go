package cli

import (
	"fmt"
	"strings"

	"github.com/jadenpinto/QuizzifyApp/internal/domain/entities"
)

func optionsLabel(n int) string {
	if n == 1 {
		return "1 option"
	}
	return fmt.Sprintf("%d options", n)
}

// renderQuestionList renders one line per question: number, text and a "Subject; N options" caption.
func renderQuestionList(questions []entities.Question) string {
	var b strings.Builder
	b.WriteString("Question Bank:\n")

	for _, q := range questions {
		caption := optionsLabel(len(q.Options))
		if q.HasSubject() {
			caption = q.Subject + "; " + caption
		}
		fmt.Fprintf(&b, "  #%d %s\n      %s\n", q.ID, q.Text, caption)
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderQuestion(q entities.Question) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#%d %s\n", q.ID, q.Text)
	if q.HasSubject() {
		fmt.Fprintf(&b, "Subject: %s\n", q.Subject)
	}
	for i, opt := range q.Options {
		mark := ""
		if q.IsCorrect(i) {
			mark = " ✅"
		}
		fmt.Fprintf(&b, "  %d) %s%s\n", i+1, opt, mark)
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderQuizQuestion(s *entities.QuizSession) string {
	q, ok := s.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Question %d of %d\n", s.Position()+1, s.Total())
	if q.HasSubject() {
		fmt.Fprintf(&b, "[%s]\n", q.Subject)
	}
	fmt.Fprintf(&b, "%s\n", q.Text)

	selected, hasSelection := s.Selection()
	for i, opt := range q.Options {
		marker := " "
		if hasSelection && selected == i {
			marker = ">"
		}
		fmt.Fprintf(&b, " %s %d) %s\n", marker, i+1, opt)
	}

	button := msgButtonNext
	if s.IsLastQuestion() {
		button = msgButtonViewScore
	}
	fmt.Fprintf(&b, "[%s]", button)

	return b.String()
}

func renderQuizResult(s *entities.QuizSession) string {
	r := s.Result()

	var b strings.Builder

	fmt.Fprintf(&b, "%s\nScore: %d/%d (%.0f%%)\n", msgQuizCompleted, r.Score, r.Total, r.Percentage())
	for i, a := range s.Answers() {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, a.Question.Text)
		switch {
		case a.Skipped:
			fmt.Fprintf(&b, "   ⏭  skipped, correct answer: %s\n", a.CorrectAnswer)
		case a.IsCorrect:
			fmt.Fprintf(&b, "   ✅ %s\n", a.UserAnswer)
		default:
			fmt.Fprintf(&b, "   ❌ %s, correct answer: %s\n", a.UserAnswer, a.CorrectAnswer)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderEditor(ed *entities.QuestionEditor) string {
	var b strings.Builder

	if ed.IsNew() {
		b.WriteString(msgAddQuestion + "\n")
	} else {
		fmt.Fprintf(&b, msgEditQuestion+"\n", ed.ID())
	}

	fmt.Fprintf(&b, "Question: %s\n", ed.Text())

	subject := ed.Subject()
	if subject == "" {
		subject = "(optional)"
	}
	fmt.Fprintf(&b, "Subject: %s\n", subject)

	for i, opt := range ed.Options() {
		mark := ""
		if i == ed.CorrectIndex() {
			mark = " ✅"
		}
		fmt.Fprintf(&b, "  Option %d: %s%s\n", i+1, opt, mark)
	}

	if ed.IsSavable() {
		b.WriteString("Ready to save.")
	} else {
		b.WriteString("Not ready to save.")
	}

	return b.String()
}

func renderSaveProblems(ed *entities.QuestionEditor) string {
	lines := []string{msgNotSavable}

	if strings.TrimSpace(ed.Text()) == "" {
		lines = append(lines, msgMissingText)
	}
	for i, opt := range ed.Options() {
		if strings.TrimSpace(opt) == "" {
			lines = append(lines, fmt.Sprintf(msgMissingOption, i+1))
		}
	}

	return strings.Join(lines, "\n")
}
