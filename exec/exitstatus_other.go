//go:build !windows

package exec

// exitStatusIsCode reports whether process exit statuses are platform
// error codes. Unix exit statuses are program-defined, not errno values.
const exitStatusIsCode = false
