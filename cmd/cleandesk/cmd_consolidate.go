package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/cleandesk/internal/config"
)

func newConsolidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Merge employee note files into one table",
		Long: `Scan each employee directory under the root for its notes file and
write every well-formed line to the consolidated table.

Examples:
  cleandesk consolidate --root /data/cleandesk
  cleandesk consolidate --root ./employees --output march.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := &config.Config{}
			overrides.Scan.Root, _ = cmd.Flags().GetString("root")
			overrides.Scan.Output, _ = cmd.Flags().GetString("output")

			infra, err := setup(cmd, overrides)
			if err != nil {
				return err
			}

			scan := infra.Config.Scan
			res, err := infra.Consolidator().Consolidate(scan.Root, scan.Output)
			if err != nil {
				return err
			}

			if path := infra.Config.Report.MetricsFile; path != "" {
				if err := infra.Metrics.WriteTextfile(path); err != nil {
					infra.Logger.Error("metrics textfile failed", "path", path, "error", err)
				}
			}

			out := cmd.OutOrStdout()
			if !res.Written {
				fmt.Fprintln(out, "No data found to consolidate.")
				return nil
			}

			fmt.Fprintf(out, "Consolidated %d notes from %d employees into %s\n", res.Table.Len(), res.Employees, res.Output)
			if res.Skipped > 0 || res.Dropped > 0 {
				fmt.Fprintf(out, "  %d employees skipped, %d malformed lines dropped\n", res.Skipped, res.Dropped)
			}

			return nil
		},
	}

	cmd.Flags().String("root", "", "Root directory of employee folders")
	cmd.Flags().String("output", "", "Consolidated table path (default consolidated_cdnotes.csv)")

	return cmd
}
