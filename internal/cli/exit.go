package cli

import "errors"

// Exit codes for the jadepunk CLI.
const (
	ExitSuccess = 0
	// ExitFailure covers unreadable files, malformed documents and bad configuration.
	ExitFailure = 1
	// ExitInvalid means every file loaded but at least one character broke the rules.
	ExitInvalid = 2
)

// ExitError carries a process exit code. Err may be nil when the command has
// already reported the problem on its own output.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the wrapped message, or a generic one when Err is nil.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code == ExitInvalid {
		return "invalid character"
	}
	return "exit status"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by Execute to a process exit code.
//
// Postcondition: Returns ExitSuccess for nil, the carried code for an *ExitError, ExitFailure otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *ExitError
	if errors.As(err, &e) {
		return e.Code
	}
	return ExitFailure
}
