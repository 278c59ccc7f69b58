package application

import "errors"

var (
	// ErrMissingSetting is returned by Check for each required setting that resolved empty.
	ErrMissingSetting = errors.New("required setting is not set")
	// ErrUnsupportedProvider is returned by Check when the LLM provider is not known.
	ErrUnsupportedProvider = errors.New("unsupported LLM provider")
)
