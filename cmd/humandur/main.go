// humandur converts free-form text like "1 hour, 15 minutes and 29
// seconds" into an exact duration.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/kwendell/humandur"
	"github.com/spf13/cobra"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

// formatMode selects how parsed durations are printed.
type formatMode string

const (
	formatSeconds formatMode = "seconds"
	formatNanos   formatMode = "nanos"
	formatGo      formatMode = "go"
)

func (f *formatMode) String() string {
	return string(*f)
}

func (f *formatMode) Set(v string) error {
	switch v {
	case "seconds", "nanos", "go":
		*f = formatMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"seconds\", \"nanos\", or \"go\"")
	}
}

func (f *formatMode) Type() string {
	return "formatMode"
}

var (
	version = "dev"

	// Flags.
	color  = colorAuto
	format = formatSeconds
	files  []string
	jobs   int
)

var rootCmd = &cobra.Command{
	Use:   "humandur [<text>...]",
	Short: "Convert free-form text into an exact duration",
	Long: `humandur converts human-written text into an exact duration.

The input may contain signed values, decimals, bounded scientific
notation, and unit words (ns, us, ms, s, m, h, d, w, M, y and their long
forms), mixed with any other text, which is ignored. A value without a
unit means seconds.

Examples:
  humandur "1 day -1 hour"
  humandur Duration: 1 hour, 15 minutes and 29 seconds
  humandur --format go "90"
  humandur -f "testdata/**/*.txt" -j 4
  echo "1.5h" | humandur`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if jobs < 1 || jobs > 100 {
			return fmt.Errorf("--jobs must be between 1 and 100, got %d", jobs)
		}
		if len(files) > 0 && len(args) > 0 {
			return fmt.Errorf("--file cannot be combined with text arguments")
		}
		return nil
	},
	RunE:          run,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().Var(&color, "color",
		"colorize output: auto, always, never")
	rootCmd.Flags().Var(&format, "format",
		"output format: seconds, nanos, go")
	rootCmd.Flags().StringSliceVarP(&files, "file", "f", []string{},
		"glob pattern for files with one input per line (can be specified multiple times)")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", 10,
		"maximum concurrent file checks")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var colorize bool
	switch color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		terminal := term.FromEnv()
		colorize = terminal.IsColorEnabled()
	}

	out := newOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize)

	if len(files) > 0 {
		return checkFiles(ctx, out, files, jobs, format)
	}

	if len(args) > 0 {
		d, err := humandur.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		out.Result("", formatDuration(d, format))
		return nil
	}

	// No arguments: one input per line on stdin.
	var failures int
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		d, err := humandur.Parse(line)
		if err != nil {
			failures++
			out.Warningf("%s: %v", line, err)
			continue
		}
		out.Result(line, formatDuration(d, format))
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("%d inputs could not be parsed", failures)
	}
	return nil
}

// formatDuration renders a parsed duration for display.
func formatDuration(d humandur.Duration, mode formatMode) string {
	switch mode {
	case formatNanos:
		if d.Seconds == 0 {
			return fmt.Sprintf("%d", d.Nanos)
		}
		// Exact decimal nanoseconds; may exceed uint64, so render the
		// two words side by side.
		return fmt.Sprintf("%d%09d", d.Seconds, d.Nanos)
	case formatGo:
		if std, ok := d.Std(); ok {
			return std.String()
		}
		// Beyond time.Duration's range; fall back to decimal seconds.
		return d.String()
	default:
		return d.String()
	}
}
