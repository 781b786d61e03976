// Package store provides ent-backed repositories over the service's
// datastore. Each repository returns plain model types and normalizes
// driver-level signals to the ErrConflict / ErrNotFound sentinels the
// orchestration layer reconciles on.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/adilet/learnloop/ent"

	// Postgres driver for deployment.
	_ "github.com/jackc/pgx/v5/stdlib"
	// Pure Go SQLite driver (no CGO) for local runs and tests.
	_ "modernc.org/sqlite"
)

// Store holds the ent client and hands out repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open connects to the database at dsn and runs auto-migration.
// A postgres:// DSN selects the pgx driver; anything else is treated as
// a SQLite path or URI.
func Open(dsn string) (*Store, error) {
	driverName, entDialect := resolveDriver(dsn)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if entDialect == dialect.SQLite {
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragmas: %w", err)
		}
	}

	drv := entsql.OpenDB(entDialect, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

func resolveDriver(dsn string) (driverName, entDialect string) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx", dialect.Postgres
	}
	return "sqlite", dialect.SQLite
}

// applyPragmas configures SQLite for concurrent request handling.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Lessons returns the lesson repository.
func (s *Store) Lessons() *LessonRepo {
	return &LessonRepo{client: s.client}
}

// Quizzes returns the quiz repository.
func (s *Store) Quizzes() *QuizRepo {
	return &QuizRepo{client: s.client}
}

// Exams returns the exam repository.
func (s *Store) Exams() *ExamRepo {
	return &ExamRepo{client: s.client}
}

// News returns the news repository.
func (s *Store) News() *NewsRepo {
	return &NewsRepo{client: s.client}
}

// Attempts returns the attempt-log repository.
func (s *Store) Attempts() *AttemptRepo {
	return &AttemptRepo{client: s.client}
}

// Stats returns the learner-stats repository.
func (s *Store) Stats() *StatsRepo {
	return &StatsRepo{client: s.client}
}

// Profiles returns the profile repository.
func (s *Store) Profiles() *ProfileRepo {
	return &ProfileRepo{client: s.client}
}

// Certificates returns the certificate repository.
func (s *Store) Certificates() *CertificateRepo {
	return &CertificateRepo{client: s.client}
}

// Terms returns the AI glossary repository.
func (s *Store) Terms() *TermRepo {
	return &TermRepo{client: s.client}
}

// Badges returns the badge repository.
func (s *Store) Badges() *BadgeRepo {
	return &BadgeRepo{client: s.client}
}

// LLMEvents returns the generation-audit repository.
func (s *Store) LLMEvents() *LLMEventRepo {
	return &LLMEventRepo{client: s.client}
}
