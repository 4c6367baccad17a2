//go:build windows

package exec

// exitStatusIsCode reports whether process exit statuses are platform
// error codes. Windows processes conventionally exit with a Win32 or
// NTSTATUS value.
const exitStatusIsCode = true
