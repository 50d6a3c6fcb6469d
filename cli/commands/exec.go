package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/migrator/cli/internal/ui"
	"github.com/satishbabariya/migrator/dialect"
	"github.com/satishbabariya/migrator/expression"
)

var (
	execProvider string
	execURL      string
	execEngine   string
	execDriver   string
)

var execCmd = &cobra.Command{
	Use:   "exec <sql>...",
	Short: "Execute raw SQL as a single migration expression",
	Long: `Execute one or more raw SQL statements as a single migration
expression. The text may contain GO batch-separator lines, and when the
target engine requires per-statement isolation each argument is
composed as its own batch. Every submitted statement is logged with the
run's step index.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	execCmd.Flags().StringVar(&execProvider, "provider", "", "database provider")
	execCmd.Flags().StringVar(&execURL, "url", "", "database connection string")
	execCmd.Flags().StringVar(&execEngine, "engine", "", "target engine variant")
	execCmd.Flags().StringVar(&execDriver, "driver", "", "database/sql driver name override")
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(execProvider, execURL, execEngine, execDriver)
	if err != nil {
		return err
	}

	current, err := targetEngine(cfg)
	if err != nil {
		return err
	}
	d, err := dialect.ForEngine(current)
	if err != nil {
		return err
	}

	handle, raw, err := openTarget(cfg, d)
	if err != nil {
		return err
	}
	defer raw.Close()

	run := expression.NewContext(handle, auditLogger())
	e := expression.Statements(d, args, expression.WithLabel("exec"))
	if err := e.Execute(cmd.Context(), run); err != nil {
		ui.PrintError("exec failed: %v", err)
		return err
	}
	ui.PrintSuccess("executed (%d steps)", run.StepIndex)
	return nil
}
