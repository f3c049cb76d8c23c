package cli

import (
	"bytes"
	"context"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/jadenpinto/QuizzifyApp/internal/infra/database"
	"github.com/jadenpinto/QuizzifyApp/internal/infra/database/repository"
	"github.com/jadenpinto/QuizzifyApp/internal/service"
	"github.com/jadenpinto/QuizzifyApp/internal/storage"
)

// runSession feeds input to a handler backed by a fresh SQLite database and returns the output.
func runSession(t *testing.T, seed bool, input string) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dsn := "file:" + filepath.Join(t.TempDir(), "quizzify.db")
	db, err := database.Open(ctx, database.DriverSQLite, dsn, database.PoolConfig{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if _, err := database.EnsureSchema(ctx, db, database.DriverSQLite); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	logger := zap.NewNop()
	store := storage.NewQuestionStore(repository.NewQuestionRepository(db, database.DriverSQLite), logger)
	store.Start(ctx)
	defer store.Close()

	if seed {
		if _, err := service.SeedExampleQuestions(ctx, store, logger); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	var out bytes.Buffer
	h := NewHandler(
		strings.NewReader(input),
		&out,
		logger,
		service.NewQuizService(store, rand.New(rand.NewSource(1)), logger),
		service.NewQuestionService(store, logger),
	)
	if err := h.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}

	return out.String()
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()

	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("expected output to contain %q, got:\n%s", w, out)
		}
	}
}

func TestQuizCorrectAnswer(t *testing.T) {
	out := runSession(t, true, "/quiz Biology\n1\nnext\n/quit\n")

	assertContains(t, out,
		"Question 1 of 1",
		"> 1) Mitochondria",
		"[View Score]",
		"Quiz Completed!",
		"Score: 1/1",
		"Goodbye!",
	)
}

func TestQuizSkippedAnswer(t *testing.T) {
	out := runSession(t, true, "/quiz Biology\n\n")

	assertContains(t, out, "Quiz Completed!", "Score: 0/1", "skipped, correct answer: Mitochondria")
}

func TestQuizOverWholeBank(t *testing.T) {
	out := runSession(t, true, "/quiz\nnext\nnext\nnext\n")

	assertContains(t, out, "Question 1 of 3", "[Next]", "Question 3 of 3", "[View Score]", "Score: 0/3")
}

func TestQuizInvalidOption(t *testing.T) {
	out := runSession(t, true, "/quiz Biology\n9\n/stop\n")

	assertContains(t, out, "There is no option 9. Choose a number from 1 to 4.", "Quiz stopped.")
}

func TestEmptyBank(t *testing.T) {
	out := runSession(t, false, "/all\n/quiz\n/subjects\n")

	assertContains(t, out, "Empty Question Bank!", "Add Questions to Bank?", "No subjects yet.")
}

func TestQuestionBankListing(t *testing.T) {
	out := runSession(t, true, "/all Maths\n/subjects\n/show 3\n/show 42\n")

	assertContains(t, out,
		"Maths; 6 options",
		"Maths; 3 options",
		"Subjects:\n  Biology\n  Maths",
		"1) Mitochondria ✅",
		"Question #42 does not exist.",
	)
	if strings.Contains(out, "Biology; 4 options") {
		t.Fatalf("expected /all Maths to exclude biology questions, got:\n%s", out)
	}
}

func TestAddQuestion(t *testing.T) {
	input := strings.Join([]string{
		"/add",
		"save",
		"text What is 2 + 2",
		"option 1 3",
		"add",
		"option 2 4",
		"correct 2",
		"save",
		"/show 4",
	}, "\n") + "\n"

	out := runSession(t, true, input)

	assertContains(t, out,
		"Add Question",
		"The question cannot be saved yet:",
		"the question text is empty",
		"option 1 is empty",
		"Question #4 saved.",
		"#4 What is 2 + 2",
		"2) 4 ✅",
	)
}

func TestEditRemoveKeepsClampedCorrectIndex(t *testing.T) {
	out := runSession(t, true, "/edit 3\nremove 1\ncancel\n/show 3\n")

	assertContains(t, out,
		"Edit Question #3",
		"Option 1: Cell Wall ✅",
		"Changes discarded.",
		"1) Mitochondria ✅",
	)
}

func TestEditorGates(t *testing.T) {
	input := "/add\nremove 1\ncorrect 5\n" + strings.Repeat("add\n", 10) + "cancel\n"

	out := runSession(t, false, input)

	assertContains(t, out,
		"A question needs at least one option.",
		"There is no option 5. The draft has 1 options.",
		"A question can have at most 10 options.",
	)
}

func TestDeleteQuestion(t *testing.T) {
	out := runSession(t, true, "/delete 1\n/show 1\n/delete x\n")

	assertContains(t, out, "Question #1 deleted.", "Question #1 does not exist.", "Usage: /delete N")
}

func TestUnknownCommand(t *testing.T) {
	out := runSession(t, false, "/dance\nhello\n")

	if strings.Count(out, msgUnknownCommand) != 2 {
		t.Fatalf("expected two unknown command replies, got:\n%s", out)
	}
}
