package config

import (
	"fmt"

	"github.com/JaimeStill/cleandesk/internal/prompts"
	"github.com/JaimeStill/cleandesk/internal/reports"
	"github.com/JaimeStill/cleandesk/pkg/formatting"
	"github.com/JaimeStill/cleandesk/pkg/provider"
)

// Variant names. Each selects a set of defaults; any of them can still be
// overridden field by field.
const (
	VariantOllama = "ollama"
	VariantGemini = "gemini"
	VariantStrict = "strict"
)

// Profile is the set of defaults a variant contributes.
type Profile struct {
	Provider      string
	Template      prompts.Template
	Schema        reports.Schema
	DocumentDates []string
	Location      bool
}

var profiles = map[string]Profile{
	VariantOllama: {
		Provider:      provider.NameOllama,
		Template:      prompts.TemplateCompliance,
		Schema:        reports.SchemaAudit,
		DocumentDates: []string{formatting.PresetPermissive},
	},
	VariantGemini: {
		Provider:      provider.NameGemini,
		Template:      prompts.TemplateCompliance,
		Schema:        reports.SchemaCompliance,
		DocumentDates: []string{formatting.PresetISO, formatting.PresetMonthFirst},
		Location:      true,
	},
	VariantStrict: {
		Provider:      provider.NameOllama,
		Template:      prompts.TemplateStrict,
		Schema:        reports.SchemaAudit,
		DocumentDates: []string{formatting.PresetDayFirst},
	},
}

// LookupProfile returns the defaults for a variant name.
func LookupProfile(variant string) (Profile, error) {
	p, ok := profiles[variant]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
	return p, nil
}

func (c *Config) applyProfile(p Profile) {
	if c.Agent.Name == "" {
		c.Agent.Name = p.Provider
	}
	if c.Classify.Template == "" {
		c.Classify.Template = string(p.Template)
	}
	if c.Report.Schema == "" {
		c.Report.Schema = string(p.Schema)
	}
	if len(c.Report.DocumentDates) == 0 {
		c.Report.DocumentDates = p.DocumentDates
	}
	if c.Scan.Location == nil {
		loc := p.Location
		c.Scan.Location = &loc
	}
}
