package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/cleandesk/internal/config"
	"github.com/JaimeStill/cleandesk/internal/reports"
	"github.com/JaimeStill/cleandesk/internal/workflow"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Save a classified report under its date-range name",
		Long: `Rebuild the report from an already classified report without calling
the LLM and save it as Clean_Desk_Report-<start>-<end>.csv.

Examples:
  cleandesk report --start 03-01-2024 --end 03-31-2024
  cleandesk report --start 03-01-2024 --end 03-31-2024 --dir reports --documents --open`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			input, _ := cmd.Flags().GetString("input")
			dir, _ := cmd.Flags().GetString("dir")
			documents, _ := cmd.Flags().GetBool("documents")
			open, _ := cmd.Flags().GetBool("open")

			infra, err := setup(cmd, &config.Config{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			res, err := workflow.Rerender(cmd.Context(), infra.Runtime(printEvents(out)), workflow.RerenderRequest{
				Input:     input,
				Start:     start,
				End:       end,
				Dir:       dir,
				Documents: documents,
			})
			if err != nil {
				return err
			}
			printSummary(out, res)

			if open {
				if err := reports.Open(res.Report); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("start", "", "First date of the range, MM-DD-YYYY")
	cmd.Flags().String("end", "", "Last date of the range, MM-DD-YYYY")
	cmd.Flags().String("input", "", "Classified report (default from config)")
	cmd.Flags().String("dir", "", "Directory for the saved report (default from config)")
	cmd.Flags().Bool("documents", false, "Regenerate acknowledgments for failed rows")
	cmd.Flags().Bool("open", false, "Open the saved report with the system viewer")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}
