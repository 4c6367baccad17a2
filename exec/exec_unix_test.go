//go:build unix

package exec

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"
)

func TestBasicExecution(t *testing.T) {
	exec := New()
	result, err := exec.Run("echo", "hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "hello world") {
		t.Errorf("expected stdout to contain 'hello world', got: %s", result.Stdout)
	}

	if result.ExitCode != 0 {
		t.Errorf("expected exit code 0, got: %d", result.ExitCode)
	}
}

func TestCommandFailure(t *testing.T) {
	exec := New()
	result, err := exec.Run("sh", "-c", "exit 3")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecError, got: %T", err)
	}

	if execErr.ExitCode != 3 {
		t.Errorf("expected exit code 3, got: %d", execErr.ExitCode)
	}

	if !execErr.Started {
		t.Error("expected Started to be true")
	}

	if result == nil {
		t.Fatal("expected result even with error")
	}

	// Unix exit statuses are not platform codes.
	if _, ok := execErr.PlatformError(); ok {
		t.Error("expected no platform error for a non-zero exit status")
	}
}

func TestStartFailure_NotInPath(t *testing.T) {
	exec := New()
	result, err := exec.Run("syserr-definitely-not-a-command")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if result != nil {
		t.Errorf("expected nil result, got: %+v", result)
	}

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecError, got: %T", err)
	}
	if execErr.Started {
		t.Error("expected Started to be false")
	}

	perr, ok := execErr.PlatformError()
	if !ok {
		t.Fatal("expected a platform error")
	}
	if perr.Code() != 2 {
		t.Errorf("expected code 2, got: %d", perr.Code())
	}
	if perr.CustomMessage() != "syserr-definitely-not-a-command" {
		t.Errorf("unexpected custom message: %q", perr.CustomMessage())
	}
}

func TestStartFailure_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses execute permission checks")
	}

	script := filepath.Join(t.TempDir(), "not-executable")
	if err := os.WriteFile(script, []byte("#!/bin/sh\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := New().Run(script)

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecError, got: %T", err)
	}

	perr, ok := execErr.PlatformError()
	if !ok {
		t.Fatal("expected a platform error")
	}
	if perr.Code() != 13 {
		t.Errorf("expected EACCES (13), got: %d", perr.Code())
	}
	if !errors.Is(perr, syscall.EACCES) {
		t.Error("expected platform error to match syscall.EACCES")
	}
}

func TestWithDir(t *testing.T) {
	dir := t.TempDir()
	result, err := New().WithDir(dir).Run("pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, filepath.Base(dir)) {
		t.Errorf("expected stdout to contain %q, got: %s", dir, result.Stdout)
	}
}

func TestWithEnv(t *testing.T) {
	result, err := New().WithEnv(map[string]string{
		"TEST_VAR": "test_value",
	}).Run("sh", "-c", "echo $TEST_VAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "test_value") {
		t.Errorf("expected stdout to contain 'test_value', got: %s", result.Stdout)
	}
}

func TestWithDisableColors(t *testing.T) {
	result, err := New().WithDisableColors().Run("sh", "-c", "echo $NO_COLOR $TERM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "1 dumb") {
		t.Errorf("expected NO_COLOR=1 TERM=dumb, got: %s", result.Stdout)
	}
}

func TestWithTimeout(t *testing.T) {
	_, err := New().WithTimeout("100ms").Run("sleep", "5")
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecError, got: %T", err)
	}
	if !execErr.Canceled {
		t.Error("expected Canceled to be true")
	}
	if _, ok := execErr.PlatformError(); ok {
		t.Error("expected no platform error for a canceled run")
	}
}

func TestWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := New().WithContext(ctx).Run("sleep", "5")
	if err == nil {
		t.Fatal("expected context cancellation error, got nil")
	}
}

func TestLocalSettingsReset(t *testing.T) {
	exec := New()
	if _, err := exec.WithTimeout("100ms").Run("sleep", "5"); err == nil {
		t.Fatal("expected timeout error, got nil")
	}

	// The timeout applied to the previous run only.
	if _, err := exec.Run("sleep", "0.2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLocalWritersReset(t *testing.T) {
	var global, first bytes.Buffer
	exec := New(WithStdout(&global), WithPassthrough())

	if _, err := exec.WithStdout(&first).Run("echo", "one"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := exec.Run("echo", "two"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.String() != "one\n" {
		t.Errorf("expected per-run writer to see only the first run, got: %q", first.String())
	}
	if global.String() != "two\n" {
		t.Errorf("expected global writer to see only the second run, got: %q", global.String())
	}
}

func TestWithPassthrough(t *testing.T) {
	var stdout, stderr bytes.Buffer
	result, err := New().WithStdout(&stdout).WithStderr(&stderr).WithPassthrough().Run("sh", "-c", "echo out && echo err >&2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "out") {
		t.Errorf("expected captured stdout to contain 'out', got: %s", result.Stdout)
	}

	if !strings.Contains(stdout.String(), "out") {
		t.Errorf("expected passthrough stdout to contain 'out', got: %s", stdout.String())
	}

	if !strings.Contains(stderr.String(), "err") {
		t.Errorf("expected passthrough stderr to contain 'err', got: %s", stderr.String())
	}
}

func TestNoPassthroughByDefault(t *testing.T) {
	var stdout bytes.Buffer
	if _, err := New(WithStdout(&stdout)).Run("echo", "quiet"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stdout.Len() != 0 {
		t.Errorf("expected no passthrough output, got: %s", stdout.String())
	}
}

func TestSeparateAndCombinedOutput(t *testing.T) {
	result, err := New().Run("sh", "-c", "echo stdout && echo stderr >&2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "stdout") || strings.Contains(result.Stdout, "stderr") {
		t.Errorf("unexpected stdout: %s", result.Stdout)
	}

	if !strings.Contains(result.Stderr, "stderr") || strings.Contains(result.Stderr, "stdout") {
		t.Errorf("unexpected stderr: %s", result.Stderr)
	}

	if !strings.Contains(result.Combined, "stdout") || !strings.Contains(result.Combined, "stderr") {
		t.Errorf("expected combined output to contain both streams, got: %s", result.Combined)
	}
}

func TestGlobalOptions(t *testing.T) {
	exec := New(
		WithEnv(map[string]string{"GLOBAL_VAR": "global"}),
		WithDisableColors(),
	)

	for i := 0; i < 2; i++ {
		result, err := exec.Run("sh", "-c", "echo $GLOBAL_VAR $NO_COLOR")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(result.Stdout, "global 1") {
			t.Errorf("run %d: expected global settings to apply, got: %s", i, result.Stdout)
		}
	}
}

func TestLocalOverridesGlobal(t *testing.T) {
	exec := New(
		WithEnv(map[string]string{"TEST_VAR": "global"}),
	)

	result, err := exec.WithEnv(map[string]string{"TEST_VAR": "local"}).Run("sh", "-c", "echo $TEST_VAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "local") {
		t.Errorf("expected local value to override global, got: %s", result.Stdout)
	}
}

func TestInheritEnv(t *testing.T) {
	t.Setenv("TEST_INHERIT_VAR", "inherited")

	result, err := New().WithInheritEnv().Run("sh", "-c", "echo $TEST_INHERIT_VAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "inherited") {
		t.Errorf("expected to inherit environment variable, got: %s", result.Stdout)
	}
}
