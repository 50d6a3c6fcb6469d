package expression

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/satishbabariya/migrator/dialect"
)

// Database is the capability the engine needs from the target
// connection. Implemented over *sql.DB via OpenDB; tests supply fakes.
type Database interface {
	// Execute submits one statement to the database.
	Execute(ctx context.Context, statement string) error

	// Dialect exposes the current engine descriptor and literal
	// formatting rules.
	Dialect() dialect.Dialect
}

// Logger is the audit sink. Info is fire-and-forget and must never fail
// the caller.
type Logger interface {
	Info(source, message string)
}

// Context is the shared state of one migration run: the execution-order
// counter, the target database, and the audit sink. It is created once
// per run and passed by reference into every expression of the tree.
// Execution is single-threaded and depth-first; a Context must not be
// shared by concurrently executing trees.
type Context struct {
	// StepIndex is a monotonically increasing counter identifying
	// execution order. Each Execute call consumes exactly one index.
	StepIndex int

	DB  Database
	Log Logger
}

// NewContext returns a run context starting at step index 0.
func NewContext(db Database, log Logger) *Context {
	if log == nil {
		log = NopLogger{}
	}
	return &Context{DB: db, Log: log}
}

type sqlDatabase struct {
	db *sql.DB
	d  dialect.Dialect
}

// OpenDB adapts a *sql.DB to the Database interface.
func OpenDB(db *sql.DB, d dialect.Dialect) Database {
	return &sqlDatabase{db: db, d: d}
}

func (s *sqlDatabase) Execute(ctx context.Context, statement string) error {
	if _, err := s.db.ExecContext(ctx, statement); err != nil {
		return fmt.Errorf("failed to execute statement: %w", err)
	}
	return nil
}

func (s *sqlDatabase) Dialect() dialect.Dialect { return s.d }

type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger adapts a *slog.Logger to the Logger interface.
func NewSlogLogger(l *slog.Logger) Logger {
	return &slogLogger{l: l}
}

func (s *slogLogger) Info(source, message string) {
	s.l.Info(message, "source", source)
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Info(source, message string) {}
