package scheduler

import "errors"

// errInvalidPreferences is wrapped with context by Preferences.Validate.
var errInvalidPreferences = errors.New("invalid preferences")
