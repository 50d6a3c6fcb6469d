package dialect

import (
	"strings"
	"time"

	"github.com/satishbabariya/migrator/engine"
)

// MySQLDialect implements MySQL formatting rules.
type MySQLDialect struct{}

func (MySQLDialect) Name() string { return "mysql" }

func (MySQLDialect) Engine() engine.Descriptor { return engine.MySQL }

// QuoteString doubles single quotes and escapes backslashes, which MySQL
// treats as an escape character inside string literals.
func (MySQLDialect) QuoteString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", "''")
	return "'" + s + "'"
}

func (MySQLDialect) FormatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func (MySQLDialect) BatchSeparatorRequired() bool { return false }
