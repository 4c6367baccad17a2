// Package exec runs local commands and reports their failures with
// platform error codes.
//
// Command is the concrete Executor built on os/exec. It captures stdout,
// stderr and the interleaved combined stream, can pass output through to
// other writers, and returns *ExecError for every failure.
//
// # Basic Usage
//
//	exec := exec.New()
//	result, err := exec.Run("echo", "hello world")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Stdout) // "hello world\n"
//
// # Configuration
//
// Options given to New are global. The fluent setters apply to the next
// Run only and override the globals:
//
//	exec := exec.New(
//		exec.WithInheritEnv(),
//		exec.WithDisableColors(),
//	)
//
//	result, err := exec.
//		WithDir("/tmp").
//		WithTimeout("5s").
//		Run("some-command")
//
// # Platform Errors
//
// ExecError.PlatformError maps a failure to a *syserr.PlatformError: the
// errno of a failed start (file-not-found for executables missing from
// PATH), or on Windows the exit status of the process:
//
//	_, err := exec.Run("tool")
//	var execErr *exec.ExecError
//	if errors.As(err, &execErr) {
//		if perr, ok := execErr.PlatformError(); ok {
//			fmt.Println(perr) // "2: no such file or directory"
//		}
//	}
//
// # Testing
//
// Code that runs commands should accept the Executor interface so tests
// can substitute a fake:
//
//	func Probe(executor exec.Executor) error {
//		_, err := executor.Run("probe", "--quick")
//		return err
//	}
package exec
