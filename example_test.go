package syserr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/jmgilman/go/syserr"
)

func ExampleNew() {
	err := syserr.New(0xDEADBEEF)
	fmt.Println(err.Error())
	// Output: 3735928559: Unknown error (0xdeadbeef)
}

func ExampleNewWithMessage() {
	err := syserr.NewWithMessage(5, "opening device")

	fmt.Println(err.Code())
	fmt.Println(err.CustomMessage())
	fmt.Println(strings.Contains(err.Error(), "opening device"))
	// Output:
	// 5
	// opening device
	// false
}

func ExampleLast() {
	// Interop code publishes the code of a failed native call...
	syserr.SetLast(5)

	// ...and the caller turns it into an error value.
	err := syserr.Last()
	fmt.Println(err.Code(), strings.HasPrefix(err.Error(), "5: "))
	// Output: 5 true
}

func ExampleFromError() {
	callErr := fmt.Errorf("device ioctl: %w", syscall.Errno(5))

	if perr, ok := syserr.FromError(callErr); ok {
		fmt.Println(perr.Code())
	}
	// Output: 5
}

func ExampleParseCode() {
	code, err := syserr.ParseCode("-2147024891")
	if err != nil {
		panic(err)
	}
	fmt.Println(code.Hex())
	// Output: 0x80070005
}

func ExampleToJSON() {
	err := fmt.Errorf("probe: %w", syserr.NewWithMessage(0xDEADBEEF, "self test"))

	data, _ := json.Marshal(syserr.ToJSON(err))
	fmt.Println(string(data))
	// Output: {"code":3735928559,"message":"Unknown error (0xdeadbeef)","custom_message":"self test"}
}

func ExamplePlatformError_Is() {
	err := fmt.Errorf("open: %w", syserr.New(2))

	fmt.Println(errors.Is(err, syscall.Errno(2)))
	fmt.Println(errors.Is(err, syserr.New(3)))
	// Output:
	// true
	// false
}
