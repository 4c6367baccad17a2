package exec

import (
	"errors"
	"fmt"
	osexec "os/exec"
	"strings"

	"github.com/jmgilman/go/syserr"
)

// ErrNoCommand is returned by Run when called without arguments.
var ErrNoCommand = errors.New("no command given")

// codeFileNotFound is ENOENT on unix and ERROR_FILE_NOT_FOUND on Windows.
const codeFileNotFound syserr.Code = 2

// ExecError represents an error that occurred during command execution.
// It includes the exit code, the command that was run, and any captured output.
type ExecError struct {
	// Command is the full command that was executed (including arguments)
	Command []string

	// ExitCode is the exit code returned by the command, -1 if it never exited
	ExitCode int

	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Started reports whether the process was started
	Started bool

	// Canceled reports whether the context ended before the process exited
	Canceled bool

	// Err is the underlying error from the execution
	Err error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	if !e.Started {
		return fmt.Sprintf("command %v could not be started: %v", e.Command, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("command %v failed with exit code %d: %v", e.Command, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %v failed with exit code %d", e.Command, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// PlatformError returns the platform error code behind the failure.
//
// A process that could not be started reports the errno of the failed
// start, with executables missing from PATH reported as file-not-found.
// A process that ran and exited non-zero reports its exit status where the
// platform treats exit statuses as error codes (Windows). Canceled runs,
// empty commands and malformed timeouts carry no code.
//
// The custom message of the returned error is the command line.
func (e *ExecError) PlatformError() (*syserr.PlatformError, bool) {
	annotation := strings.Join(e.Command, " ")

	if !e.Started {
		if errors.Is(e.Err, osexec.ErrNotFound) {
			return syserr.NewWithMessage(codeFileNotFound, annotation), true
		}
		code, ok := syserr.GetCode(e.Err)
		if !ok {
			return nil, false
		}
		return syserr.NewWithMessage(code, annotation), true
	}

	if e.Canceled || e.ExitCode <= 0 || !exitStatusIsCode {
		return nil, false
	}
	return syserr.NewWithMessage(syserr.Code(uint32(e.ExitCode)), annotation), true
}
