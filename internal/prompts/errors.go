package prompts

import "errors"

// ErrInvalidTemplate is returned for an unrecognized prompt template name.
var ErrInvalidTemplate = errors.New("template must be compliance or strict")
