package commands

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fatih/color"

	"github.com/satishbabariya/migrator/cli/internal/config"
	"github.com/satishbabariya/migrator/dialect"
	"github.com/satishbabariya/migrator/engine"
	"github.com/satishbabariya/migrator/expression"
	"github.com/satishbabariya/migrator/internal/debug"
)

// cliLogger writes the audit trail to the terminal.
type cliLogger struct{}

func (cliLogger) Info(source, message string) {
	fmt.Printf("%s %s\n", color.CyanString(source+":"), message)
}

// teeLogger fans the audit trail out to multiple sinks.
type teeLogger []expression.Logger

func (t teeLogger) Info(source, message string) {
	for _, l := range t {
		l.Info(source, message)
	}
}

// auditLogger returns the run's audit sink: terminal output, joined by
// the structured debug log when --debug is set.
func auditLogger() expression.Logger {
	if debug.Enabled() {
		return teeLogger{cliLogger{}, expression.NewSlogLogger(debug.Logger())}
	}
	return cliLogger{}
}

// dryRunDB satisfies expression.Database without touching a database.
// Statements are already logged by the expression before submission, so
// Execute has nothing left to do.
type dryRunDB struct {
	d dialect.Dialect
}

func (p dryRunDB) Execute(ctx context.Context, statement string) error { return nil }

func (p dryRunDB) Dialect() dialect.Dialect { return p.d }

// targetEngine resolves the engine descriptor the run targets. An
// explicit engine name narrows the target to a concrete variant;
// otherwise the provider's generic descriptor is used.
func targetEngine(cfg *config.Config) (engine.Descriptor, error) {
	name := cfg.Engine
	if name == "" {
		name = cfg.Provider
	}
	return engine.Parse(name)
}

// driverFor maps a dialect to its built-in database/sql driver name.
func driverFor(d dialect.Dialect) (string, error) {
	switch d.Name() {
	case "postgres":
		return "postgres", nil
	case "mysql":
		return "mysql", nil
	case "sqlite":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("no built-in driver for provider %q; pass --driver with a registered driver name", d.Name())
	}
}

// openTarget opens the configured database and wraps it for execution.
func openTarget(cfg *config.Config, d dialect.Dialect) (expression.Database, *sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("no database URL configured; set DATABASE_URL or pass --url")
	}

	driverName := cfg.Driver
	if driverName == "" {
		var err error
		driverName, err = driverFor(d)
		if err != nil {
			return nil, nil, err
		}
	}

	debug.Debug("opening database", "driver", driverName, "provider", cfg.Provider)
	db, err := sql.Open(driverName, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return expression.OpenDB(db, d), db, nil
}

// loadConfig loads the config and applies command-line overrides.
func loadConfig(provider, url, engineName, driver string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if provider != "" {
		cfg.Provider = provider
	}
	if url != "" {
		cfg.DatabaseURL = url
	}
	if engineName != "" {
		cfg.Engine = engineName
	}
	if driver != "" {
		cfg.Driver = driver
	}
	return cfg, nil
}
