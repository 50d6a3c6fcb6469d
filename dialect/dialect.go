// Package dialect provides engine-specific SQL formatting rules: string
// and date literal quoting and multi-statement batch sensitivity.
package dialect

import (
	"fmt"
	"strings"
	"time"

	"github.com/satishbabariya/migrator/engine"
)

// Dialect captures the formatting rules of one database engine.
type Dialect interface {
	// Name returns the primary provider name (e.g. "postgres", "mssql").
	Name() string

	// Engine returns the descriptor of the engine this dialect targets.
	Engine() engine.Descriptor

	// QuoteString returns s as a SQL string literal with embedded quote
	// characters escaped.
	QuoteString(s string) string

	// FormatTime renders t in the engine's date/time literal format,
	// without surrounding quotes.
	FormatTime(t time.Time) string

	// BatchSeparatorRequired reports whether the engine rejects multiple
	// statements sent as one command, so composed scripts must isolate
	// statements with the batch separator.
	BatchSeparatorRequired() bool
}

// ForProvider returns the dialect for the given provider name or alias.
func ForProvider(provider string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "postgresql", "postgres", "pg":
		return PostgresDialect{}, nil
	case "mysql":
		return MySQLDialect{}, nil
	case "sqlite", "sqlite3":
		return SQLiteDialect{}, nil
	case "sqlserver", "mssql":
		return SQLServerDialect{}, nil
	case "sqlserverce", "sqlce":
		return SQLServerCEDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// ForEngine returns the dialect targeting the given engine descriptor's
// family.
func ForEngine(d engine.Descriptor) (Dialect, error) {
	return ForProvider(d.Family)
}
