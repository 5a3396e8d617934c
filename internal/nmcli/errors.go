package nmcli

import (
	"fmt"
	"strings"
)

// NotFoundError is returned when the nmcli binary cannot be located.
type NotFoundError struct {
	// Path is the configured binary name or path
	Path string
	// Underlying error from exec.LookPath
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("nmcli not found at %q: %v\n"+
		"Hint: install NetworkManager or point --nmcli at the binary", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ExecutionError represents a failed nmcli invocation (non-zero exit or
// failure to start).
type ExecutionError struct {
	// Args are the arguments nmcli was invoked with
	Args []string
	// ExitCode is the process exit code, -1 if it never ran
	ExitCode int
	// Stderr is the trimmed stderr output
	Stderr string
	// Underlying error if any
	Err error
}

func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("nmcli %s failed (exit code %d)", strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	} else if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// TimeoutError represents an nmcli call that exceeded Config.Timeout.
type TimeoutError struct {
	// Args are the arguments nmcli was invoked with
	Args []string
	// Timeout is the duration that was exceeded
	Timeout string
	// Underlying context error
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("nmcli %s timed out after %s\n"+
		"Hint: increase the limit with --timeout", strings.Join(e.Args, " "), e.Timeout)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}
