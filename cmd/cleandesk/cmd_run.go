package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/cleandesk/internal/config"
	"github.com/JaimeStill/cleandesk/internal/workflow"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Classify notes in a date range and write the report",
		Long: `Filter the consolidated table to the inclusive date range, send each
note to the LLM one at a time, write the report, and render an
acknowledgment PDF for every failed desk.

Examples:
  cleandesk run --start 03-01-2024 --end 03-31-2024
  cleandesk run --start 03/01/2024 --end 03/31/2024 --variant gemini
  cleandesk run --start 03-01-2024 --end 03-31-2024 --endpoint http://gpu-host:11434 --no-documents`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")

			overrides := &config.Config{}
			overrides.Classify.Input, _ = cmd.Flags().GetString("input")
			overrides.Classify.Column, _ = cmd.Flags().GetString("column")
			overrides.Report.Output, _ = cmd.Flags().GetString("output")
			overrides.Report.DocumentsDir, _ = cmd.Flags().GetString("documents-dir")
			overrides.Agent.BaseURL, _ = cmd.Flags().GetString("endpoint")
			overrides.Agent.Model, _ = cmd.Flags().GetString("model")
			overrides.Agent.Token, _ = cmd.Flags().GetString("api-key")
			if off, _ := cmd.Flags().GetBool("no-documents"); off {
				documents := false
				overrides.Report.Documents = &documents
			}

			infra, err := setup(cmd, overrides)
			if err != nil {
				return err
			}

			if err := infra.Connect(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rt := infra.Runtime(printEvents(out))

			res, err := workflow.Execute(cmd.Context(), rt, workflow.Request{
				Start:     start,
				End:       end,
				Documents: infra.Config.Report.DocumentsEnabled(),
			})
			if err != nil {
				return err
			}

			if res.Filtered > 0 {
				printSummary(out, res)
			}
			return nil
		},
	}

	cmd.Flags().String("start", "", "First date of the range, MM-DD-YYYY")
	cmd.Flags().String("end", "", "Last date of the range, MM-DD-YYYY")
	cmd.Flags().String("input", "", "Consolidated table (default from config)")
	cmd.Flags().String("column", "", "Column holding the note text (default Note)")
	cmd.Flags().String("output", "", "Report path (default output_with_ai.csv)")
	cmd.Flags().String("documents-dir", "", "Acknowledgment directory (default pdf_reports)")
	cmd.Flags().Bool("no-documents", false, "Skip acknowledgment PDFs")
	cmd.Flags().String("endpoint", "", "LLM endpoint base URL")
	cmd.Flags().String("model", "", "LLM model name")
	cmd.Flags().String("api-key", "", "LLM API key (prefer CLEANDESK_AGENT_TOKEN)")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

func printSummary(out io.Writer, res *workflow.Result) {
	fmt.Fprintf(out, "Classified %d notes: %d passed, %d failed, %d unknown\n",
		res.Tally.Total(), res.Tally.Passed, res.Tally.Failed, res.Tally.Unknown)
	if len(res.Documents) > 0 || res.DocumentFailures > 0 {
		fmt.Fprintf(out, "Acknowledgments: %d written, %d failed\n", len(res.Documents), res.DocumentFailures)
	}
}
