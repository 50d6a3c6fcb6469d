// Package commands implements the migrator CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/migrator/internal/debug"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "migrator",
	Short: "Execute SQL migration scripts against a database",
	Long: `migrator executes declarative SQL migration scripts against a target
database. Scripts are split into individually executable statements on
GO batch-separator lines, sections are matched against the target
engine's variant hierarchy, and every statement is logged with a
monotonically increasing step index for auditing.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.Init(debugFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
