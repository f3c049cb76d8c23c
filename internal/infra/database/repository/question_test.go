package repository

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jadenpinto/QuizzifyApp/internal/domain/entities"
	"github.com/jadenpinto/QuizzifyApp/internal/infra/database"
)

func newTestRepository(t *testing.T) *QuestionRepository {
	t.Helper()

	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "questions.db")

	db, err := database.Open(ctx, database.DriverSQLite, dsn, database.PoolConfig{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := database.EnsureSchema(ctx, db, database.DriverSQLite); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	return NewQuestionRepository(db, database.DriverSQLite)
}

func TestInsertAssignsIDsAndRoundTrips(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	ids, err := repo.InsertMany(ctx, entities.ExampleQuestions())
	if err != nil {
		t.Fatalf("insert many: %v", err)
	}
	if !reflect.DeepEqual(ids, []int64{1, 2, 3}) {
		t.Fatalf("expected ids [1 2 3], got %v", ids)
	}

	got, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	want := entities.ExampleQuestions()
	if len(got) != len(want) {
		t.Fatalf("expected %d questions, got %d", len(want), len(got))
	}
	for i := range want {
		want[i].ID = ids[i]
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Fatalf("question %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestOptionColumnsPreserveOrderAndLength(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	tests := []struct {
		name    string
		options []string
	}{
		{name: "single", options: []string{"only"}},
		{name: "three", options: []string{"c", "a", "b"}},
		{name: "ten", options: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, err := repo.Insert(ctx, entities.Question{
				Text:          tc.name,
				Options:       tc.options,
				CorrectAnswer: tc.options[0],
			})
			if err != nil {
				t.Fatalf("insert: %v", err)
			}

			q, err := repo.GetByID(ctx, id)
			if err != nil {
				t.Fatalf("get by id: %v", err)
			}
			if !reflect.DeepEqual(q.Options, tc.options) {
				t.Fatalf("expected options %q, got %q", tc.options, q.Options)
			}
			if q.Subject != "" {
				t.Fatalf("expected no subject, got %q", q.Subject)
			}
		})
	}
}

func TestInsertRejectsInvalidQuestion(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.Insert(ctx, entities.Question{Text: "no options"})
	if !errors.Is(err, entities.ErrInvalidQuestion) {
		t.Fatalf("expected ErrInvalidQuestion, got %v", err)
	}
}

func TestInsertWithExistingIDReplaces(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	id, err := repo.Insert(ctx, entities.Question{Text: "first", Options: []string{"a", "b"}, CorrectAnswer: "a"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	replaced := entities.Question{ID: id, Text: "second", Subject: "Maths", Options: []string{"x"}, CorrectAnswer: "x"}
	gotID, err := repo.Insert(ctx, replaced)
	if err != nil {
		t.Fatalf("insert replacement: %v", err)
	}
	if gotID != id {
		t.Fatalf("expected id %d, got %d", id, gotID)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 1 || !reflect.DeepEqual(all[0], replaced) {
		t.Fatalf("expected only the replacement, got %+v", all)
	}
}

func TestUpdateUpsertsAndKeepsSequence(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	if _, err := repo.Update(ctx, entities.Question{ID: 10, Text: "ten", Options: []string{"a"}, CorrectAnswer: "a"}); err != nil {
		t.Fatalf("update absent id: %v", err)
	}

	next, err := repo.Insert(ctx, entities.Question{Text: "next", Options: []string{"a"}, CorrectAnswer: "a"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if next <= 10 {
		t.Fatalf("expected a fresh id above 10, got %d", next)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	ids, err := repo.InsertMany(ctx, entities.ExampleQuestions())
	if err != nil {
		t.Fatalf("insert many: %v", err)
	}

	if err := repo.Delete(ctx, ids[0]); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, 999); err != nil {
		t.Fatalf("expected deleting an absent id to succeed, got %v", err)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(all))
	}
	if _, err := repo.GetByID(ctx, ids[0]); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected deleted question to be gone, got %v", err)
	}
}

func TestGetBySubjectAndSubjects(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	qs := append(entities.ExampleQuestions(), entities.Question{
		Text:          "No subject",
		Options:       []string{"a"},
		CorrectAnswer: "a",
	})
	if _, err := repo.InsertMany(ctx, qs); err != nil {
		t.Fatalf("insert many: %v", err)
	}

	maths, err := repo.GetBySubject(ctx, "Maths")
	if err != nil {
		t.Fatalf("get by subject: %v", err)
	}
	if len(maths) != 2 || maths[0].ID > maths[1].ID {
		t.Fatalf("expected 2 maths questions ordered by id, got %+v", maths)
	}

	none, err := repo.GetBySubject(ctx, "")
	if err != nil {
		t.Fatalf("get without subject: %v", err)
	}
	if len(none) != 1 || none[0].Text != "No subject" {
		t.Fatalf("expected the question without a subject, got %+v", none)
	}

	subjects, err := repo.Subjects(ctx)
	if err != nil {
		t.Fatalf("subjects: %v", err)
	}
	if !reflect.DeepEqual(subjects, []string{"Biology", "Maths"}) {
		t.Fatalf("expected [Biology Maths], got %q", subjects)
	}
}

func TestInsertManyIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	qs := []entities.Question{
		{Text: "ok", Options: []string{"a"}, CorrectAnswer: "a"},
		{Text: "bad"},
	}
	if _, err := repo.InsertMany(ctx, qs); err == nil {
		t.Fatalf("expected an error for an invalid question")
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected the batch to roll back, got %d questions", len(all))
	}
}
