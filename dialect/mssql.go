package dialect

import (
	"strings"
	"time"

	"github.com/satishbabariya/migrator/engine"
)

// SQLServerDialect implements SQL Server formatting rules.
type SQLServerDialect struct{}

func (SQLServerDialect) Name() string { return "mssql" }

func (SQLServerDialect) Engine() engine.Descriptor { return engine.SQLServer }

func (SQLServerDialect) QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// FormatTime uses the ISO 8601 form, which SQL Server interprets
// independently of the session's DATEFORMAT setting.
func (SQLServerDialect) FormatTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}

func (SQLServerDialect) BatchSeparatorRequired() bool { return true }

// SQLServerCEDialect implements SQL Server Compact Edition formatting
// rules. CE shares the server's literal syntax but runs embedded.
type SQLServerCEDialect struct{}

func (SQLServerCEDialect) Name() string { return "sqlserverce" }

func (SQLServerCEDialect) Engine() engine.Descriptor { return engine.SQLServerCE }

func (SQLServerCEDialect) QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (SQLServerCEDialect) FormatTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}

func (SQLServerCEDialect) BatchSeparatorRequired() bool { return true }
