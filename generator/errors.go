package generator

import "fmt"

// ConfigError reports a problem detected before any remote call is made:
// missing input, missing credentials, or a tool client that failed to
// initialize. The user can fix it and retry.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration: " + e.Reason
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// ExecutionError wraps any failure raised during the pipeline run itself.
// The underlying message is surfaced verbatim; no retry is attempted.
type ExecutionError struct {
	Stage string
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("pipeline failed at %s: %v", e.Stage, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
