package cli

import "fmt"

// Exit codes returned by the syserr binary.
const (
	ExitSuccess      = 0 // Command completed successfully
	ExitGeneralError = 1 // General errors, or a child that never started
	ExitUsageError   = 2 // Invalid arguments/usage
	ExitConfigError  = 3 // Configuration issues
)

// ExitError carries the process exit code for a failed command.
// An empty Message means the failure has already been reported.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
