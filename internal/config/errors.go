package config

import "errors"

// ErrUnknownVariant is returned when the configured variant has no profile.
var ErrUnknownVariant = errors.New("unknown variant")
