package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jadenpinto/QuizzifyApp/internal/domain/entities"
	"github.com/jadenpinto/QuizzifyApp/internal/infra/database"
)

var ErrQuestionNotFound = errors.New("question not found")

const selectColumns = `
	SELECT id, question_text, subject,
	       option_1, option_2, option_3, option_4, option_5,
	       option_6, option_7, option_8, option_9, option_10,
	       correct_answer
	FROM questions`

// QuestionRepository provides access to the questions table.
// Options are stored in ten fixed columns; option_1 is required, the rest are NULL when unused.
type QuestionRepository struct {
	db     database.DBTX
	driver database.Driver
	tr     *database.Transactor
}

// NewQuestionRepository creates a new QuestionRepository over db.
func NewQuestionRepository(db *sql.DB, driver database.Driver) *QuestionRepository {
	return &QuestionRepository{
		db:     db,
		driver: driver,
		tr:     database.NewTransactor(db),
	}
}

func (r *QuestionRepository) withTx(tx database.DBTX) *QuestionRepository {
	return &QuestionRepository{db: tx, driver: r.driver}
}

// Insert stores q and returns its id.
// A question without an id gets a fresh one; a question with an id replaces the stored row.
func (r *QuestionRepository) Insert(ctx context.Context, q entities.Question) (int64, error) {
	var id int64
	err := r.tr.WithinTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		var err error
		id, err = r.withTx(tx).save(ctx, q)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}

	return id, nil
}

// InsertMany stores all questions in one transaction and returns their ids in input order.
func (r *QuestionRepository) InsertMany(ctx context.Context, qs []entities.Question) ([]int64, error) {
	ids := make([]int64, 0, len(qs))
	err := r.tr.WithinTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		txRepo := r.withTx(tx)
		for _, q := range qs {
			id, err := txRepo.save(ctx, q)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("insert questions: %w", err)
	}

	return ids, nil
}

// Update replaces the stored question with the same id, inserting it if absent.
func (r *QuestionRepository) Update(ctx context.Context, q entities.Question) (int64, error) {
	id, err := r.Insert(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("update question %d: %w", q.ID, err)
	}

	return id, nil
}

// Delete removes the question with the given id. Deleting an absent id is not an error.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM questions WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}

	return nil
}

// GetAll returns every stored question ordered by id.
func (r *QuestionRepository) GetAll(ctx context.Context) ([]entities.Question, error) {
	query := selectColumns + ` ORDER BY id`

	questions, err := r.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all questions: %w", err)
	}

	return questions, nil
}

// GetBySubject returns the questions labelled with subject ordered by id.
// An empty subject matches questions without a subject.
func (r *QuestionRepository) GetBySubject(ctx context.Context, subject string) ([]entities.Question, error) {
	var (
		questions []entities.Question
		err       error
	)
	if subject == "" {
		questions, err = r.query(ctx, selectColumns+` WHERE subject IS NULL OR subject = '' ORDER BY id`)
	} else {
		questions, err = r.query(ctx, selectColumns+` WHERE subject = $1 ORDER BY id`, subject)
	}
	if err != nil {
		return nil, fmt.Errorf("get questions by subject %q: %w", subject, err)
	}

	return questions, nil
}

// GetByID returns the question with the given id.
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (entities.Question, error) {
	query := selectColumns + ` WHERE id = $1`

	q, err := scanQuestion(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Question{}, ErrQuestionNotFound
		}
		return entities.Question{}, fmt.Errorf("get question %d: %w", id, err)
	}

	return q, nil
}

// Subjects returns the distinct non-empty subjects in alphabetical order.
func (r *QuestionRepository) Subjects(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT subject
		FROM questions
		WHERE subject IS NOT NULL AND subject <> ''
		ORDER BY subject
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get subjects: %w", err)
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subjects: %w", err)
	}

	return subjects, nil
}

func (r *QuestionRepository) save(ctx context.Context, q entities.Question) (int64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}

	args := questionArgs(q)

	if q.ID == 0 {
		query := `
			INSERT INTO questions (
				question_text, subject,
				option_1, option_2, option_3, option_4, option_5,
				option_6, option_7, option_8, option_9, option_10,
				correct_answer
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id
		`

		var id int64
		if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("create question: %w", err)
		}
		return id, nil
	}

	query := `
		INSERT INTO questions (
			id, question_text, subject,
			option_1, option_2, option_3, option_4, option_5,
			option_6, option_7, option_8, option_9, option_10,
			correct_answer
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			question_text = EXCLUDED.question_text,
			subject = EXCLUDED.subject,
			option_1 = EXCLUDED.option_1,
			option_2 = EXCLUDED.option_2,
			option_3 = EXCLUDED.option_3,
			option_4 = EXCLUDED.option_4,
			option_5 = EXCLUDED.option_5,
			option_6 = EXCLUDED.option_6,
			option_7 = EXCLUDED.option_7,
			option_8 = EXCLUDED.option_8,
			option_9 = EXCLUDED.option_9,
			option_10 = EXCLUDED.option_10,
			correct_answer = EXCLUDED.correct_answer
	`

	if _, err := r.db.ExecContext(ctx, query, append([]any{q.ID}, args...)...); err != nil {
		return 0, fmt.Errorf("upsert question %d: %w", q.ID, err)
	}

	// An explicit id bypasses the serial sequence, so move it past the highest stored id.
	if r.driver == database.DriverPostgres {
		syncSeq := `SELECT setval(pg_get_serial_sequence('questions', 'id'), (SELECT MAX(id) FROM questions))`
		if _, err := r.db.ExecContext(ctx, syncSeq); err != nil {
			return 0, fmt.Errorf("sync question id sequence: %w", err)
		}
	}

	return q.ID, nil
}

func (r *QuestionRepository) query(ctx context.Context, query string, args ...any) ([]entities.Question, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]entities.Question, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	return questions, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row scanner) (entities.Question, error) {
	var (
		q       entities.Question
		subject sql.NullString
		options [entities.MaxOptions]sql.NullString
	)

	dest := []any{&q.ID, &q.Text, &subject}
	for i := range options {
		dest = append(dest, &options[i])
	}
	dest = append(dest, &q.CorrectAnswer)

	if err := row.Scan(dest...); err != nil {
		return entities.Question{}, err
	}

	q.Subject = subject.String
	for _, opt := range options {
		if opt.Valid {
			q.Options = append(q.Options, opt.String)
		}
	}

	return q, nil
}

// questionArgs lays q out in column order: text, subject, option_1..option_10, correct_answer.
func questionArgs(q entities.Question) []any {
	args := make([]any, 0, entities.MaxOptions+3)
	args = append(args, q.Text, sql.NullString{String: q.Subject, Valid: q.Subject != ""})
	for i := 0; i < entities.MaxOptions; i++ {
		if i < len(q.Options) {
			args = append(args, q.Options[i])
		} else {
			args = append(args, nil)
		}
	}
	args = append(args, q.CorrectAnswer)

	return args
}
