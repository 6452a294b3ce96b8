package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/cleandesk/internal/prompts"
	"github.com/JaimeStill/cleandesk/pkg/formatting"
)

const (
	EnvClassifyInput       = "CLEANDESK_CLASSIFY_INPUT"
	EnvClassifyColumn      = "CLEANDESK_CLASSIFY_COLUMN"
	EnvClassifyDateColumn  = "CLEANDESK_CLASSIFY_DATE_COLUMN"
	EnvClassifyDateFormats = "CLEANDESK_CLASSIFY_DATE_FORMATS"
	EnvClassifyTemplate    = "CLEANDESK_CLASSIFY_TEMPLATE"
)

// ClassifyConfig holds filter and classification parameters.
type ClassifyConfig struct {
	Input       string   `toml:"input"`
	Column      string   `toml:"column"`
	DateColumn  string   `toml:"date_column"`
	DateFormats []string `toml:"date_formats"`
	Template    string   `toml:"template"`
}

// Layouts returns the date layouts used to filter rows and parse range bounds.
func (c *ClassifyConfig) Layouts() []string {
	l, _ := formatting.Layouts(c.DateFormats...)
	return l
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ClassifyConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ClassifyConfig) Merge(overlay *ClassifyConfig) {
	if overlay.Input != "" {
		c.Input = overlay.Input
	}
	if overlay.Column != "" {
		c.Column = overlay.Column
	}
	if overlay.DateColumn != "" {
		c.DateColumn = overlay.DateColumn
	}
	if len(overlay.DateFormats) > 0 {
		c.DateFormats = overlay.DateFormats
	}
	if overlay.Template != "" {
		c.Template = overlay.Template
	}
}

func (c *ClassifyConfig) loadDefaults() {
	if c.Column == "" {
		c.Column = "Note"
	}
	if c.DateColumn == "" {
		c.DateColumn = "Record Date"
	}
	if len(c.DateFormats) == 0 {
		c.DateFormats = []string{formatting.PresetMonthFirst}
	}
	if c.Template == "" {
		c.Template = string(prompts.TemplateCompliance)
	}
}

func (c *ClassifyConfig) loadEnv() {
	if v := os.Getenv(EnvClassifyInput); v != "" {
		c.Input = v
	}
	if v := os.Getenv(EnvClassifyColumn); v != "" {
		c.Column = v
	}
	if v := os.Getenv(EnvClassifyDateColumn); v != "" {
		c.DateColumn = v
	}
	if v := os.Getenv(EnvClassifyDateFormats); v != "" {
		c.DateFormats = splitList(v)
	}
	if v := os.Getenv(EnvClassifyTemplate); v != "" {
		c.Template = v
	}
}

func (c *ClassifyConfig) validate() error {
	if c.Input == "" {
		return fmt.Errorf("input required")
	}
	if _, err := prompts.ParseTemplate(c.Template); err != nil {
		return fmt.Errorf("%w: %q", err, c.Template)
	}
	if _, err := formatting.Layouts(c.DateFormats...); err != nil {
		return fmt.Errorf("date_formats: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
