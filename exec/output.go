package exec

import (
	"bytes"
	"io"
	"sync"
)

// lockedBuffer is a bytes.Buffer safe for the concurrent writes os/exec
// makes when stdout and stderr are copied on separate goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// streamWriter returns the writer for one output stream: the capture
// buffer, the combined buffer, and the passthrough writer when set.
func streamWriter(capture, combined *lockedBuffer, passthrough io.Writer) io.Writer {
	if passthrough != nil {
		return io.MultiWriter(capture, combined, passthrough)
	}
	return io.MultiWriter(capture, combined)
}
