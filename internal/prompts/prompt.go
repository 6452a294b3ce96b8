// Package prompts builds the classification prompt sent to the LLM for each
// clean-desk note. Instruction wording is fixed per template; the note text is
// appended verbatim.
package prompts

import "slices"

// Template selects the instruction wording.
type Template string

// Known templates. TemplateCompliance is the canonical wording: it fails any
// desk with items on it unless the note states "Desk clean - meets compliance".
// TemplateStrict fails any desk with items on it and carries no exception.
const (
	TemplateCompliance Template = "compliance"
	TemplateStrict     Template = "strict"
)

var templates = []Template{
	TemplateCompliance,
	TemplateStrict,
}

// Templates returns the list of known templates.
func Templates() []Template {
	return templates
}

// ParseTemplate validates a string as a known template.
func ParseTemplate(s string) (Template, error) {
	t := Template(s)
	if !slices.Contains(templates, t) {
		return "", ErrInvalidTemplate
	}
	return t, nil
}

// Compose returns the full prompt for a single note.
func Compose(t Template, note string) (string, error) {
	text, err := Instructions(t)
	if err != nil {
		return "", err
	}
	return text + note, nil
}
