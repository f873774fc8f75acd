package birdsong

import "errors"

var (
	// ErrInvalidPreset wraps all preset validation failures. Presets are
	// rejected before any sample is processed; there is no partial output.
	ErrInvalidPreset = errors.New("birdsong: invalid preset")

	errNilBuffer = errors.New("birdsong: input buffer must not be nil")
)
