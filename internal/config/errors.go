package config

import "fmt"

// ConfigLoadError is returned when the override file exists but cannot be
// read or parsed.
type ConfigLoadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("load override file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem or parse error.
func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}
