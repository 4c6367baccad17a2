package syserr_test

import (
	"fmt"
	"syscall"
	"testing"

	"github.com/jmgilman/go/syserr"
)

// BenchmarkNew measures construction including the eager message lookup.
func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = syserr.New(5)
	}
}

func BenchmarkNew_UnknownCode(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = syserr.New(0xDEADBEEF)
	}
}

func BenchmarkNewWithMessage(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = syserr.NewWithMessage(2, "opening config")
	}
}

func BenchmarkError(b *testing.B) {
	err := syserr.New(5)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = err.Error()
	}
}

func BenchmarkFromError(b *testing.B) {
	cause := fmt.Errorf("read: %w", syscall.Errno(5))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = syserr.FromError(cause)
	}
}

func BenchmarkCaptureLast(b *testing.B) {
	syserr.SetLast(5)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = syserr.CaptureLast()
	}
}
