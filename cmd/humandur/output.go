package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/mgutz/ansi"
)

// Output serializes result and warning lines with optional color; batch
// checking writes from multiple goroutines.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer

	cyan   func(string) string
	green  func(string) string
	yellow func(string) string
}

// newOutput creates an Output with optional color support.
func newOutput(stdout, stderr io.Writer, colorize bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		cyan:   color("cyan"),
		green:  color("green+b"),
		yellow: color("yellow"),
	}
}

// Result writes a parsed value, prefixed with its source when present.
func (o *Output) Result(source, value string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if source == "" {
		fmt.Fprintf(o.stdout, "%s\n", o.green(value))
		return
	}
	fmt.Fprintf(o.stdout, "%s: %s\n", o.cyan(source), o.green(value))
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}
