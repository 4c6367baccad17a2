package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/syserr/exec"
)

// fakeExecutor records the settings of the last run and returns a canned outcome.
type fakeExecutor struct {
	args        []string
	timeout     string
	passthrough bool
	inheritEnv  bool
	noColors    bool
	runs        int

	result *exec.Result
	err    error
}

func (f *fakeExecutor) WithEnv(map[string]string) exec.Executor { return f }
func (f *fakeExecutor) WithDir(string) exec.Executor { return f }
func (f *fakeExecutor) WithContext(context.Context) exec.Executor { return f }
func (f *fakeExecutor) WithStdout(io.Writer) exec.Executor { return f }
func (f *fakeExecutor) WithStderr(io.Writer) exec.Executor { return f }

func (f *fakeExecutor) WithDisableColors() exec.Executor {
	f.noColors = true
	return f
}

func (f *fakeExecutor) WithTimeout(timeout string) exec.Executor {
	f.timeout = timeout
	return f
}

func (f *fakeExecutor) WithInheritEnv() exec.Executor {
	f.inheritEnv = true
	return f
}

func (f *fakeExecutor) WithPassthrough() exec.Executor {
	f.passthrough = true
	return f
}

func (f *fakeExecutor) Run(args ...string) (*exec.Result, error) {
	f.runs++
	f.args = args
	if f.result == nil && f.err == nil {
		return &exec.Result{}, nil
	}
	return f.result, f.err
}

type harness struct {
	cli      *CLI
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	executor *fakeExecutor
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	// Keep the user's real settings file out of the way.
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Setenv("AppData", home)
	for _, name := range []string{"SYSERR_CONFIG", "SYSERR_FORMAT", "SYSERR_LANG", "SYSERR_LOG_LEVEL"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	h := &harness{
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		executor: &fakeExecutor{},
	}
	h.cli = NewCLI(h.stdout, h.stderr, h.executor)
	return h
}

func (h *harness) run(args ...string) error {
	return h.cli.Run(context.Background(), append([]string{"syserr"}, args...))
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func requireExitCode(t *testing.T, err error, want int) {
	t.Helper()
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, want, exitErr.Code)
}

func TestNewCLI(t *testing.T) {
	h := newHarness(t)

	require.Equal(t, "syserr", h.cli.app.Name)
	require.NotEmpty(t, h.cli.app.Usage)

	names := make(map[string]bool)
	for _, cmd := range h.cli.app.Commands {
		names[cmd.Name] = true
	}
	require.True(t, names["lookup"])
	require.True(t, names["run"])
}

func TestLookup_Text(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("--no-color", "lookup", "0xDEADBEEF"))
	require.Equal(t, "3735928559: Unknown error (0xdeadbeef)\n", h.stdout.String())
}

func TestLookup_MultipleCodes(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("--no-color", "lookup", "5", "0x80070005"))

	lines := strings.Split(strings.TrimSpace(h.stdout.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "5: "))
	require.True(t, strings.HasPrefix(lines[1], "2147942405: "))
}

func TestLookup_JSON(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("--format", "json", "lookup", "3735928559"))
	require.JSONEq(t, `{"code":3735928559,"message":"Unknown error (0xdeadbeef)"}`, h.stdout.String())
}

func TestLookup_InvalidCode(t *testing.T) {
	h := newHarness(t)

	err := h.run("lookup", "5", "bogus")
	requireExitCode(t, err, ExitUsageError)
	require.Empty(t, h.stdout.String())
}

func TestLookup_NoArgs(t *testing.T) {
	h := newHarness(t)
	requireExitCode(t, h.run("lookup"), ExitUsageError)
}

func TestConfig_FileApplies(t *testing.T) {
	h := newHarness(t)
	path := writeConfig(t, `format = "json"`)

	require.NoError(t, h.run("--config", path, "lookup", "0xDEADBEEF"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &resp))
	require.Equal(t, float64(0xDEADBEEF), resp["code"])
}

func TestConfig_DefaultLocation(t *testing.T) {
	h := newHarness(t)

	dir, err := os.UserConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "syserr"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "syserr", "config.toml"), []byte(`format = "json"`), 0o600))

	require.NoError(t, h.run("lookup", "0xDEADBEEF"))
	require.True(t, json.Valid(h.stdout.Bytes()))
}

func TestConfig_FlagOverridesFile(t *testing.T) {
	h := newHarness(t)
	path := writeConfig(t, `format = "json"`)

	require.NoError(t, h.run("--config", path, "--format", "text", "--no-color", "lookup", "0xDEADBEEF"))
	require.Equal(t, "3735928559: Unknown error (0xdeadbeef)\n", h.stdout.String())
}

func TestConfig_EnvironmentOverridesFile(t *testing.T) {
	h := newHarness(t)
	path := writeConfig(t, `format = "text"`)
	t.Setenv("SYSERR_FORMAT", "json")

	require.NoError(t, h.run("--config", path, "lookup", "0xDEADBEEF"))
	require.True(t, json.Valid(h.stdout.Bytes()))
}

func TestConfig_MissingExplicitFile(t *testing.T) {
	h := newHarness(t)

	err := h.run("--config", filepath.Join(t.TempDir(), "absent.toml"), "lookup", "5")
	requireExitCode(t, err, ExitConfigError)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestConfig_InvalidFile(t *testing.T) {
	h := newHarness(t)
	path := writeConfig(t, `format = "yaml"`)

	requireExitCode(t, h.run("--config", path, "lookup", "5"), ExitConfigError)
}

func TestHelp_IgnoresBrokenSettings(t *testing.T) {
	for _, args := range [][]string{{}, {"--help"}, {"help"}, {"help", "lookup"}, {"lookup", "--help"}, {"--version"}} {
		t.Run(strings.Join(append([]string{"syserr"}, args...), " "), func(t *testing.T) {
			h := newHarness(t)
			dir, err := os.UserConfigDir()
			require.NoError(t, err)
			require.NoError(t, os.MkdirAll(filepath.Join(dir, "syserr"), 0o700))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "syserr", "config.toml"), []byte(`format = "yaml"`), 0o600))

			require.NoError(t, h.run(args...))
			require.NotEmpty(t, h.stdout.String())
		})
	}
}

func TestConfig_InvalidFlag(t *testing.T) {
	h := newHarness(t)
	requireExitCode(t, h.run("--format", "yaml", "lookup", "5"), ExitUsageError)
}

func TestConfig_InvalidLanguage(t *testing.T) {
	h := newHarness(t)
	requireExitCode(t, h.run("--lang", "xx-YY", "lookup", "5"), ExitUsageError)

	h = newHarness(t)
	path := writeConfig(t, `language = "not a tag"`)
	requireExitCode(t, h.run("--config", path, "lookup", "5"), ExitConfigError)
}

func TestConfig_Language(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("--lang", "de-DE", "lookup", "5"))
	require.Equal(t, uint32(0x0407), h.cli.langID)
}

func TestLogging_Debug(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("--log-level", "debug", "lookup", "5"))
	require.Contains(t, h.stderr.String(), "looking up code")
	require.Contains(t, h.stderr.String(), "level=DEBUG")
}

func TestLogging_QuietByDefault(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("lookup", "5"))
	require.Empty(t, h.stderr.String())
}

func TestRun_Success(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("run", "--timeout", "1500ms", "--", "make", "-j4", "install"))
	require.Equal(t, []string{"make", "-j4", "install"}, h.executor.args)
	require.Equal(t, "1.5s", h.executor.timeout)
	require.True(t, h.executor.passthrough)
	require.True(t, h.executor.inheritEnv)
}

func TestRun_NoProgram(t *testing.T) {
	h := newHarness(t)

	requireExitCode(t, h.run("run"), ExitUsageError)
	require.Zero(t, h.executor.runs)
}

func TestRun_NoColorDisablesChildColors(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("--no-color", "run", "--", "ls"))
	require.True(t, h.executor.noColors)
}

func TestRun_StartFailure(t *testing.T) {
	h := newHarness(t)
	h.executor.err = &exec.ExecError{
		Command:  []string{"/opt/tool"},
		ExitCode: -1,
		Err:      &fs.PathError{Op: "fork/exec", Path: "/opt/tool", Err: syscall.Errno(2)},
	}

	err := h.run("--no-color", "run", "--", "/opt/tool")
	requireExitCode(t, err, ExitGeneralError)
	require.Empty(t, err.Error())

	lines := strings.Split(strings.TrimSpace(h.stderr.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "2: "))
	require.Equal(t, "  /opt/tool", lines[1])
}

func TestRun_ExitStatus(t *testing.T) {
	h := newHarness(t)
	h.executor.result = &exec.Result{ExitCode: 7}
	h.executor.err = &exec.ExecError{
		Command:  []string{"tool"},
		ExitCode: 7,
		Started:  true,
		Err:      errors.New("exit status 7"),
	}

	requireExitCode(t, h.run("--no-color", "run", "--", "tool"), 7)
}

func TestExitCode(t *testing.T) {
	require.Equal(t, ExitSuccess, ExitCode(nil))
	require.Equal(t, ExitGeneralError, ExitCode(errors.New("boom")))
	require.Equal(t, ExitConfigError, ExitCode(NewExitError(ExitConfigError, "bad", nil)))
}

func TestExitError_Error(t *testing.T) {
	require.Equal(t, "bad settings", NewExitError(ExitConfigError, "bad settings", nil).Error())
	require.Equal(t, "bad settings: boom", NewExitError(ExitConfigError, "bad settings", errors.New("boom")).Error())
	require.Empty(t, NewExitError(ExitGeneralError, "", nil).Error())
}
