package dialect

import (
	"strings"
	"time"

	"github.com/satishbabariya/migrator/engine"
)

// SQLiteDialect implements SQLite formatting rules.
type SQLiteDialect struct{}

func (SQLiteDialect) Name() string { return "sqlite" }

func (SQLiteDialect) Engine() engine.Descriptor { return engine.SQLite }

func (SQLiteDialect) QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (SQLiteDialect) FormatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func (SQLiteDialect) BatchSeparatorRequired() bool { return false }
