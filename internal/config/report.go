package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JaimeStill/cleandesk/internal/reports"
	"github.com/JaimeStill/cleandesk/pkg/formatting"
)

const (
	EnvReportOutput        = "CLEANDESK_REPORT_OUTPUT"
	EnvReportSchema        = "CLEANDESK_REPORT_SCHEMA"
	EnvReportDirectory     = "CLEANDESK_REPORT_DIRECTORY"
	EnvReportDocuments     = "CLEANDESK_REPORT_DOCUMENTS"
	EnvReportDocumentsDir  = "CLEANDESK_REPORT_DOCUMENTS_DIR"
	EnvReportDocumentDates = "CLEANDESK_REPORT_DOCUMENT_DATES"
	EnvReportMetricsFile   = "CLEANDESK_REPORT_METRICS_FILE"
)

// ReportConfig holds report and acknowledgment output parameters.
type ReportConfig struct {
	Output        string   `toml:"output"`
	Schema        string   `toml:"schema"`
	Directory     string   `toml:"directory"`
	Documents     *bool    `toml:"documents"`
	DocumentsDir  string   `toml:"documents_dir"`
	DocumentDates []string `toml:"document_dates"`
	MetricsFile   string   `toml:"metrics_file"`
}

// SchemaValue returns the configured report schema.
func (c *ReportConfig) SchemaValue() reports.Schema {
	return reports.Schema(c.Schema)
}

// DocumentsEnabled reports whether acknowledgments are generated for failed rows.
func (c *ReportConfig) DocumentsEnabled() bool {
	return c.Documents == nil || *c.Documents
}

// DocumentLayouts returns the date layouts used to name acknowledgment files.
func (c *ReportConfig) DocumentLayouts() []string {
	l, _ := formatting.Layouts(c.DocumentDates...)
	return l
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ReportConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ReportConfig) Merge(overlay *ReportConfig) {
	if overlay.Output != "" {
		c.Output = overlay.Output
	}
	if overlay.Schema != "" {
		c.Schema = overlay.Schema
	}
	if overlay.Directory != "" {
		c.Directory = overlay.Directory
	}
	if overlay.Documents != nil {
		v := *overlay.Documents
		c.Documents = &v
	}
	if overlay.DocumentsDir != "" {
		c.DocumentsDir = overlay.DocumentsDir
	}
	if len(overlay.DocumentDates) > 0 {
		c.DocumentDates = overlay.DocumentDates
	}
	if overlay.MetricsFile != "" {
		c.MetricsFile = overlay.MetricsFile
	}
}

func (c *ReportConfig) loadDefaults() {
	if c.Output == "" {
		c.Output = "output_with_ai.csv"
	}
	if c.Schema == "" {
		c.Schema = string(reports.SchemaAudit)
	}
	if c.Directory == "" {
		c.Directory = "."
	}
	if c.Documents == nil {
		on := true
		c.Documents = &on
	}
	if c.DocumentsDir == "" {
		c.DocumentsDir = "pdf_reports"
	}
	if len(c.DocumentDates) == 0 {
		c.DocumentDates = []string{formatting.PresetPermissive}
	}
}

func (c *ReportConfig) loadEnv() {
	if v := os.Getenv(EnvReportOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvReportSchema); v != "" {
		c.Schema = v
	}
	if v := os.Getenv(EnvReportDirectory); v != "" {
		c.Directory = v
	}
	if v := os.Getenv(EnvReportDocuments); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Documents = &b
		}
	}
	if v := os.Getenv(EnvReportDocumentsDir); v != "" {
		c.DocumentsDir = v
	}
	if v := os.Getenv(EnvReportDocumentDates); v != "" {
		c.DocumentDates = splitList(v)
	}
	if v := os.Getenv(EnvReportMetricsFile); v != "" {
		c.MetricsFile = v
	}
}

func (c *ReportConfig) validate() error {
	if _, err := reports.ParseSchema(c.Schema); err != nil {
		return err
	}
	if _, err := formatting.Layouts(c.DocumentDates...); err != nil {
		return fmt.Errorf("document_dates: %w", err)
	}
	return nil
}
