package prompts

const complianceInstructions = "This is a strict Clean Desk report. Anything found on the desk is considered a fail, except when " +
	"the desk is explicitly described as 'Desk clean - meets compliance', which should be marked as a pass. " +
	"Determine if the following record is a 'Pass' or 'Fail': "

const strictInstructions = "This is a strict Clean Desk report, anything found on the desk is considered a fail, " +
	"Determine if the following record is a 'Pass' or 'Fail': "

var instructions = map[Template]string{
	TemplateCompliance: complianceInstructions,
	TemplateStrict:     strictInstructions,
}

// Instructions returns the fixed instruction text for a template.
// Returns ErrInvalidTemplate if the template is not recognized.
func Instructions(t Template) (string, error) {
	text, ok := instructions[t]
	if !ok {
		return "", ErrInvalidTemplate
	}
	return text, nil
}
