package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/migrator/batch"
	"github.com/satishbabariya/migrator/cli/internal/config"
	"github.com/satishbabariya/migrator/cli/internal/ui"
	"github.com/satishbabariya/migrator/script"
)

var (
	planEngine   string
	planProvider string
	planExplain  bool
)

var planCmd = &cobra.Command{
	Use:   "plan <script.sql>",
	Short: "Show what a script would execute",
	Long: `Parse a migration script and show its sections, which engines each
section targets, and whether it applies to the target engine. Nothing
is executed.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planProvider, "provider", "", "database provider")
	planCmd.Flags().StringVar(&planEngine, "engine", "", "target engine variant")
	planCmd.Flags().BoolVar(&planExplain, "explain", false, "render a detailed markdown report")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(planProvider, "", planEngine, "")
	if err != nil {
		return err
	}
	current, err := targetEngine(cfg)
	if err != nil {
		return err
	}

	s, err := script.ParseFile(config.AppFs, args[0])
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(s.Sections))
	for _, sec := range s.Sections {
		applies, err := sec.Applies(current)
		if err != nil {
			return err
		}
		engines := "all"
		if len(sec.Engines) > 0 {
			names := make([]string, len(sec.Engines))
			for i, e := range sec.Engines {
				names[i] = e.String()
			}
			engines = strings.Join(names, ", ")
		}
		status := "apply"
		if !applies {
			status = "skip"
		}
		label := sec.Label
		if label == "" {
			label = "(unlabeled)"
		}
		rows = append(rows, []string{
			label,
			engines,
			sec.Requires,
			strconv.Itoa(len(batch.Split(sec.SQL))),
			status,
		})
	}

	ui.PrintInfo("plan for %s against %s", s.Name, current)
	ui.PrintTable([]string{"Section", "Engines", "Requires", "Statements", "Action"}, rows)

	if planExplain {
		return ui.PrintMarkdown(explainMarkdown(s, rows))
	}
	return nil
}

func explainMarkdown(s *script.Script, rows [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Plan: %s\n\n", s.Name)
	for i, sec := range s.Sections {
		fmt.Fprintf(&b, "## %s\n\n", rows[i][0])
		fmt.Fprintf(&b, "- Engines: %s\n", rows[i][1])
		if sec.Requires != "" {
			fmt.Fprintf(&b, "- Requires: `%s`\n", sec.Requires)
		}
		fmt.Fprintf(&b, "- Action: **%s**\n\n", rows[i][4])
		fmt.Fprintf(&b, "```sql\n%s\n```\n\n", sec.SQL)
	}
	return b.String()
}
