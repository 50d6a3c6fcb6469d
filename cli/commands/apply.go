package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/migrator/cli/internal/config"
	"github.com/satishbabariya/migrator/cli/internal/ui"
	"github.com/satishbabariya/migrator/cli/internal/watch"
	"github.com/satishbabariya/migrator/dialect"
	"github.com/satishbabariya/migrator/expression"
	"github.com/satishbabariya/migrator/script"
)

var (
	applyForce    bool
	applyDryRun   bool
	applyWatch    bool
	applyProvider string
	applyURL      string
	applyEngine   string
	applyDriver   string
)

var applyCmd = &cobra.Command{
	Use:   "apply <script.sql>",
	Short: "Apply a migration script",
	Long: `Apply a migration script to the configured database.

The script is parsed into an expression tree: each "-- migrator:expr"
directive opens a section with its own label, engine list and version
constraint. Sections that do not apply to the target engine are
skipped. Every executed statement is logged with its step index before
submission.`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyForce, "force", false, "skip the confirmation prompt")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "log statements without executing them")
	applyCmd.Flags().BoolVar(&applyWatch, "watch", false, "re-apply when the script changes")
	applyCmd.Flags().StringVar(&applyProvider, "provider", "", "database provider (postgres, mysql, sqlite, mssql, sqlserverce)")
	applyCmd.Flags().StringVar(&applyURL, "url", "", "database connection string")
	applyCmd.Flags().StringVar(&applyEngine, "engine", "", "target engine variant (e.g. sqlserver2012)")
	applyCmd.Flags().StringVar(&applyDriver, "driver", "", "database/sql driver name override")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := loadConfig(applyProvider, applyURL, applyEngine, applyDriver)
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

	if !applyForce && !applyDryRun {
		confirmed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Apply %s to %s?", path, current),
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			return err
		}
		if !confirmed {
			ui.PrintWarning("aborted")
			return nil
		}
	}

	applyOnce := func() error {
		s, err := script.ParseFile(config.AppFs, path)
		if err != nil {
			return err
		}

		root, skipped, err := s.Tree(current)
		if err != nil {
			return err
		}
		for _, sec := range skipped {
			ui.PrintWarning("skipping %q: does not apply to %s", sec.Label, current)
		}

		var db expression.Database
		if applyDryRun {
			db = dryRunDB{d: d}
		} else {
			spinner, _ := ui.PrintSpinner(fmt.Sprintf("connecting to %s", cfg.Provider))
			handle, raw, err := openTarget(cfg, d)
			if err != nil {
				if spinner != nil {
					spinner.Fail("connection failed")
				}
				return err
			}
			if spinner != nil {
				spinner.Success("connected")
			}
			defer raw.Close()
			db = handle
		}

		run := expression.NewContext(db, auditLogger())
		if err := root.Execute(cmd.Context(), run); err != nil {
			ui.PrintError("apply failed: %v", err)
			return err
		}

		if applyDryRun {
			ui.PrintSuccess("dry run of %s completed (%d steps)", s.Name, run.StepIndex)
		} else {
			ui.PrintSuccess("applied %s (%d steps)", s.Name, run.StepIndex)
		}
		return nil
	}

	if !applyWatch {
		return applyOnce()
	}

	w, err := watch.New(path, applyOnce)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	ui.PrintInfo("watching %s, press Ctrl+C to stop", path)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return w.Stop()
}
