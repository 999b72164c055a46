package session

import "errors"

var (
	// ErrUnknownPreset indicates a topology preset outside the supported set.
	ErrUnknownPreset = errors.New("session: unknown preset")
)
