package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/JaimeStill/cleandesk/internal/config"
	"github.com/JaimeStill/cleandesk/internal/reports"
)

const baseConfig = `
variant = "ollama"

[scan]
root = "/data/employees"
output = "consolidated.csv"

[classify]
column = "Note"

[report]
output = "report.csv"
documents_dir = "acks"

[agent]
base_url = "http://ollama:11434"
model = "llama3.1:8b"
`

const overlayConfig = `
[agent]
model = "llama3.2-vision"

[report]
documents = false
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	chdir(t, dir)

	cfg, err := config.Load("", nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Scan.Root != "/data/employees" {
		t.Errorf("scan root: got %s, want /data/employees", cfg.Scan.Root)
	}
	if cfg.Classify.Input != "consolidated.csv" {
		t.Errorf("classify input: got %s, want scan output consolidated.csv", cfg.Classify.Input)
	}
	if cfg.Agent.Model != "llama3.1:8b" {
		t.Errorf("agent model: got %s, want llama3.1:8b", cfg.Agent.Model)
	}
	if cfg.Report.DocumentsDir != "acks" {
		t.Errorf("documents dir: got %s, want acks", cfg.Report.DocumentsDir)
	}
	if !cfg.Report.DocumentsEnabled() {
		t.Error("documents disabled, want enabled by default")
	}
	if cfg.Storage.Enabled() {
		t.Error("storage enabled without a destination")
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	writeConfig(t, dir, "cleandesk.staging.toml", overlayConfig)
	chdir(t, dir)

	t.Setenv(config.EnvCleandeskEnv, "staging")

	cfg, err := config.Load("", nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Agent.Model != "llama3.2-vision" {
		t.Errorf("agent model: got %s, want llama3.2-vision (from overlay)", cfg.Agent.Model)
	}
	if cfg.Agent.BaseURL != "http://ollama:11434" {
		t.Errorf("agent base_url: got %s, want http://ollama:11434 (from base)", cfg.Agent.BaseURL)
	}
	if cfg.Report.DocumentsEnabled() {
		t.Error("documents enabled, want disabled by overlay")
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	chdir(t, dir)

	t.Setenv("CLEANDESK_AGENT_MODEL", "from-env")

	overrides := &config.Config{}
	overrides.Agent.Model = "from-flag"
	overrides.Report.Output = "flag.csv"

	cfg, err := config.Load("", overrides)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Agent.Model != "from-env" {
		t.Errorf("agent model: got %s, want from-env", cfg.Agent.Model)
	}
	if cfg.Report.Output != "flag.csv" {
		t.Errorf("report output: got %s, want flag.csv", cfg.Report.Output)
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load("", nil)
	if err != nil {
		t.Fatalf("load without config file failed: %v", err)
	}

	if cfg.Variant != config.VariantOllama {
		t.Errorf("variant: got %s, want ollama", cfg.Variant)
	}
	if cfg.Scan.Output != "consolidated_cdnotes.csv" || cfg.Classify.Input != "consolidated_cdnotes.csv" {
		t.Errorf("consolidated path defaults: scan %s classify %s", cfg.Scan.Output, cfg.Classify.Input)
	}
	if cfg.Report.Output != "output_with_ai.csv" {
		t.Errorf("report output: got %s", cfg.Report.Output)
	}
	if cfg.Agent.BaseURL != "http://localhost:11434" {
		t.Errorf("agent base_url: got %s", cfg.Agent.BaseURL)
	}
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("level: got %v, want info", cfg.Level())
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if _, err := config.Load(filepath.Join(dir, "absent.toml"), nil); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}

	path := filepath.Join(dir, "custom.toml")
	writeConfig(t, dir, "custom.toml", `variant = "strict"`)

	cfg, err := config.Load(path, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Classify.Template != "strict" {
		t.Errorf("template: got %s, want strict", cfg.Classify.Template)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, `variant = `)
	chdir(t, dir)

	if _, err := config.Load("", nil); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestVariants(t *testing.T) {
	tests := []struct {
		variant  string
		provider string
		template string
		schema   reports.Schema
		location bool
	}{
		{config.VariantOllama, "ollama", "compliance", reports.SchemaAudit, false},
		{config.VariantGemini, "gemini", "compliance", reports.SchemaCompliance, true},
		{config.VariantStrict, "ollama", "strict", reports.SchemaAudit, false},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(config.EnvVariant, tt.variant)
			t.Setenv("CLEANDESK_AGENT_TOKEN", "key")

			cfg, err := config.Load("", nil)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}

			if cfg.Agent.Name != tt.provider {
				t.Errorf("provider: got %s, want %s", cfg.Agent.Name, tt.provider)
			}
			if cfg.Classify.Template != tt.template {
				t.Errorf("template: got %s, want %s", cfg.Classify.Template, tt.template)
			}
			if cfg.Report.SchemaValue() != tt.schema {
				t.Errorf("schema: got %s, want %s", cfg.Report.Schema, tt.schema)
			}
			if cfg.Scan.LocationEnabled() != tt.location {
				t.Errorf("location: got %v, want %v", cfg.Scan.LocationEnabled(), tt.location)
			}
			if len(cfg.Report.DocumentLayouts()) == 0 {
				t.Error("no document layouts")
			}
		})
	}
}

func TestVariantFieldOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(config.EnvVariant, config.VariantGemini)
	t.Setenv("CLEANDESK_AGENT_TOKEN", "key")
	t.Setenv(config.EnvReportSchema, "audit")

	cfg, err := config.Load("", nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Report.SchemaValue() != reports.SchemaAudit {
		t.Errorf("schema: got %s, want audit", cfg.Report.Schema)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		is   error
	}{
		{"unknown variant", map[string]string{config.EnvVariant: "claude"}, config.ErrUnknownVariant},
		{"unknown template", map[string]string{config.EnvClassifyTemplate: "lenient"}, nil},
		{"unknown schema", map[string]string{config.EnvReportSchema: "xml"}, reports.ErrUnknownSchema},
		{"unknown date format", map[string]string{config.EnvClassifyDateFormats: "lunar"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load("", nil)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestEnvDefault(t *testing.T) {
	cfg := &config.Config{}
	if cfg.Env() != "local" {
		t.Errorf("env: got %s, want local", cfg.Env())
	}

	t.Setenv(config.EnvCleandeskEnv, "production")
	if cfg.Env() != "production" {
		t.Errorf("env: got %s, want production", cfg.Env())
	}
}
