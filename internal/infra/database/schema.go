package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaSQLite = []string{
	`CREATE TABLE IF NOT EXISTS questions (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		question_text  TEXT NOT NULL,
		subject        TEXT,
		option_1       TEXT NOT NULL,
		option_2       TEXT,
		option_3       TEXT,
		option_4       TEXT,
		option_5       TEXT,
		option_6       TEXT,
		option_7       TEXT,
		option_8       TEXT,
		option_9       TEXT,
		option_10      TEXT,
		correct_answer TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_subject ON questions (subject)`,
}

var schemaPostgres = []string{
	`CREATE TABLE IF NOT EXISTS questions (
		id             BIGSERIAL PRIMARY KEY,
		question_text  TEXT NOT NULL,
		subject        TEXT,
		option_1       TEXT NOT NULL,
		option_2       TEXT,
		option_3       TEXT,
		option_4       TEXT,
		option_5       TEXT,
		option_6       TEXT,
		option_7       TEXT,
		option_8       TEXT,
		option_9       TEXT,
		option_10      TEXT,
		correct_answer TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_subject ON questions (subject)`,
}

// EnsureSchema creates the questions table when it does not exist yet.
// It reports whether the table was created by this call, which callers use to seed a fresh database.
func EnsureSchema(ctx context.Context, db *sql.DB, driver Driver) (bool, error) {
	var (
		probe  string
		schema []string
	)
	switch driver {
	case DriverSQLite:
		probe = `SELECT COUNT(*) > 0 FROM sqlite_master WHERE type = 'table' AND name = 'questions'`
		schema = schemaSQLite
	case DriverPostgres:
		probe = `SELECT to_regclass('public.questions') IS NOT NULL`
		schema = schemaPostgres
	default:
		return false, fmt.Errorf("ensure schema: unsupported driver %q", driver)
	}

	var exists bool
	if err := db.QueryRowContext(ctx, probe).Scan(&exists); err != nil {
		return false, fmt.Errorf("probe schema: %w", err)
	}
	if exists {
		return false, nil
	}

	err := NewTransactor(db).WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("create schema: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
