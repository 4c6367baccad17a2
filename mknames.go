//go:build ignore

// mknames generates names_windows.go, the table of symbolic Win32 error
// names, from the syscall.Errno constants declared by golang.org/x/sys/windows.
//
// Usage:
//
//	go run mknames.go
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	osexec "os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var errnoConst = regexp.MustCompile(`^\s+([A-Z][A-Z0-9_]*)\s+syscall\.Errno\s+=\s+(0x[0-9A-Fa-f]+|[0-9]+)\s*$`)

type entry struct {
	code uint64
	name string
}

func main() {
	dir, err := osexec.Command("go", "list", "-m", "-f", "{{.Dir}}", "golang.org/x/sys").Output()
	if err != nil {
		log.Fatalf("locating golang.org/x/sys: %v", err)
	}

	path := filepath.Join(strings.TrimSpace(string(dir)), "windows", "zerrors_windows.go")
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	// The first declaration of a value wins; range markers never name a code.
	seen := make(map[uint64]bool)
	var entries []entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m := errnoConst.FindStringSubmatch(scanner.Text())
		if m == nil || isRangeMarker(m[1]) {
			continue
		}
		code, err := strconv.ParseUint(m[2], 0, 32)
		if err != nil {
			log.Fatalf("%s: %v", m[1], err)
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		entries = append(entries, entry{code: code, name: m[1]})
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].code < entries[j].code })

	var buf bytes.Buffer
	buf.WriteString("// Code generated by \"go run mknames.go\"; DO NOT EDIT.\n\n")
	buf.WriteString("//go:build windows\n\npackage syserr\n\n")
	buf.WriteString("// win32Names is sorted by code.\n")
	buf.WriteString("var win32Names = []win32Name{\n")
	for _, e := range entries {
		fmt.Fprintf(&buf, "\t{%d, %q},\n", e.code, e.name)
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("names_windows.go", src, 0o644); err != nil {
		log.Fatal(err)
	}
}

func isRangeMarker(name string) bool {
	return strings.HasSuffix(name, "_FIRST") ||
		strings.HasSuffix(name, "_LAST") ||
		strings.HasSuffix(name, "_MASK")
}
