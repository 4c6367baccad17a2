package exec

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	osexec "os/exec"
	"strings"
	"syscall"
	"testing"
)

func TestNew(t *testing.T) {
	exec := New()
	if exec == nil {
		t.Fatal("New() returned nil")
	}
}

func TestEmptyCommand(t *testing.T) {
	result, err := New().Run()
	if err == nil {
		t.Fatal("expected error for empty command, got nil")
	}
	if result != nil {
		t.Errorf("expected nil result, got: %+v", result)
	}
	if !errors.Is(err, ErrNoCommand) {
		t.Errorf("expected ErrNoCommand, got: %v", err)
	}

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecError, got: %T", err)
	}
	if _, ok := execErr.PlatformError(); ok {
		t.Error("expected no platform error for an empty command")
	}
}

func TestInvalidTimeout(t *testing.T) {
	_, err := New().WithTimeout("soon").Run("anything")

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecError, got: %T", err)
	}
	if execErr.ExitCode != -1 {
		t.Errorf("expected exit code -1, got: %d", execErr.ExitCode)
	}
	if _, ok := execErr.PlatformError(); ok {
		t.Error("expected no platform error for a malformed timeout")
	}
}

func TestExecError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExecError
		want string
	}{
		{
			name: "not started",
			err:  &ExecError{Command: []string{"tool"}, ExitCode: -1, Err: osexec.ErrNotFound},
			want: "command [tool] could not be started: " + osexec.ErrNotFound.Error(),
		},
		{
			name: "exited",
			err:  &ExecError{Command: []string{"tool", "-v"}, ExitCode: 2, Started: true, Err: errors.New("exit status 2")},
			want: "command [tool -v] failed with exit code 2: exit status 2",
		},
		{
			name: "exited without cause",
			err:  &ExecError{Command: []string{"tool"}, ExitCode: 1, Started: true},
			want: "command [tool] failed with exit code 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecError_PlatformError_StartErrno(t *testing.T) {
	execErr := &ExecError{
		Command:  []string{"/opt/tool", "--flag"},
		ExitCode: -1,
		Err:      &fs.PathError{Op: "fork/exec", Path: "/opt/tool", Err: syscall.Errno(13)},
	}

	perr, ok := execErr.PlatformError()
	if !ok {
		t.Fatal("expected a platform error")
	}
	if perr.Code() != 13 {
		t.Errorf("expected code 13, got: %d", perr.Code())
	}
	if perr.CustomMessage() != "/opt/tool --flag" {
		t.Errorf("unexpected custom message: %q", perr.CustomMessage())
	}
	if !strings.HasPrefix(perr.Error(), "13: ") {
		t.Errorf("unexpected display form: %q", perr.Error())
	}
}

func TestExecError_PlatformError_NotFound(t *testing.T) {
	execErr := &ExecError{
		Command:  []string{"tool"},
		ExitCode: -1,
		Err:      &osexec.Error{Name: "tool", Err: osexec.ErrNotFound},
	}

	perr, ok := execErr.PlatformError()
	if !ok {
		t.Fatal("expected a platform error")
	}
	if perr.Code() != codeFileNotFound {
		t.Errorf("expected code %d, got: %d", codeFileNotFound, perr.Code())
	}
}

func TestExecError_PlatformError_StartWithoutCode(t *testing.T) {
	execErr := &ExecError{Command: []string{"tool"}, ExitCode: -1, Err: fmt.Errorf("sandbox refused")}
	if _, ok := execErr.PlatformError(); ok {
		t.Error("expected no platform error")
	}
}

func TestExecError_PlatformError_ExitStatus(t *testing.T) {
	execErr := &ExecError{Command: []string{"tool"}, ExitCode: 5, Started: true}

	perr, ok := execErr.PlatformError()
	if ok != exitStatusIsCode {
		t.Fatalf("PlatformError() ok = %v, want %v", ok, exitStatusIsCode)
	}
	if ok && perr.Code() != 5 {
		t.Errorf("expected code 5, got: %d", perr.Code())
	}
}

func TestExecError_PlatformError_Canceled(t *testing.T) {
	execErr := &ExecError{Command: []string{"tool"}, ExitCode: 1, Started: true, Canceled: true, Err: context.DeadlineExceeded}
	if _, ok := execErr.PlatformError(); ok {
		t.Error("expected no platform error for a canceled run")
	}
}

func TestExecError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	execErr := &ExecError{Err: cause}
	if !errors.Is(execErr, cause) {
		t.Error("expected ExecError to unwrap to its cause")
	}
}
