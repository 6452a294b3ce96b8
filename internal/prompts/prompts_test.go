package prompts_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/JaimeStill/cleandesk/internal/prompts"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name     string
		template prompts.Template
		contains string
	}{
		{"compliance carve-out", prompts.TemplateCompliance, "'Desk clean - meets compliance'"},
		{"strict", prompts.TemplateStrict, "anything found on the desk is considered a fail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := prompts.Compose(tt.template, "pens on desk")
			if err != nil {
				t.Fatalf("Compose error: %v", err)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("prompt missing %q: %s", tt.contains, got)
			}
			if !strings.HasSuffix(got, "'Pass' or 'Fail': pens on desk") {
				t.Errorf("prompt does not end with the note: %s", got)
			}
		})
	}
}

func TestComposeNoteVerbatim(t *testing.T) {
	note := "  stapler, \"badge\"\nmonitor  "
	got, err := prompts.Compose(prompts.TemplateCompliance, note)
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	if !strings.HasSuffix(got, note) {
		t.Errorf("note altered: %q", got)
	}
}

func TestParseTemplate(t *testing.T) {
	for _, tmpl := range prompts.Templates() {
		got, err := prompts.ParseTemplate(string(tmpl))
		if err != nil || got != tmpl {
			t.Errorf("ParseTemplate(%q) = %q, %v", tmpl, got, err)
		}
	}

	if _, err := prompts.ParseTemplate("lenient"); !errors.Is(err, prompts.ErrInvalidTemplate) {
		t.Errorf("error = %v, want ErrInvalidTemplate", err)
	}

	if _, err := prompts.Compose("lenient", "x"); !errors.Is(err, prompts.ErrInvalidTemplate) {
		t.Errorf("Compose error = %v, want ErrInvalidTemplate", err)
	}
}
