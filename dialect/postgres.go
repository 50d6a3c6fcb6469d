package dialect

import (
	"strings"
	"time"

	"github.com/satishbabariya/migrator/engine"
)

// PostgresDialect implements PostgreSQL formatting rules.
type PostgresDialect struct{}

func (PostgresDialect) Name() string { return "postgres" }

func (PostgresDialect) Engine() engine.Descriptor { return engine.Postgres }

func (PostgresDialect) QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (PostgresDialect) FormatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func (PostgresDialect) BatchSeparatorRequired() bool { return false }
