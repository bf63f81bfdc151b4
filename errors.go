package ishi

import "fmt"

// ConfigError reports a rule file that could not be read at construction.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ishi: rule file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// InputError reports an invalid input for a single classification call.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "ishi: " + e.Reason
}

// UnsupportedInputError reports an input that matches none of the accepted
// shapes (raw text, parsed sentence, parsed chunk).
type UnsupportedInputError struct {
	Input any
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("ishi: unsupported input type %T", e.Input)
}
