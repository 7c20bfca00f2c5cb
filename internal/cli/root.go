package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/roach88/ymdhms2jd/internal/julian"
)

// Usage is printed when the positional argument count is wrong.
const Usage = "Usage: ymdhms2jd year month day hour minute second"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// ConversionResult is the JSON payload for a single conversion.
type ConversionResult struct {
	Instant    julian.Instant `json:"instant"`
	JulianDate float64        `json:"julian_date"`
}

// NewRootCommand creates the root command, which converts one instant.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ymdhms2jd year month day hour minute second",
		Short: "Convert a calendar date and time to a Julian Date",
		Long: `Convert a proleptic Gregorian date and time of day to a fractional
Julian Date: the count of days since noon UT on 1 January 4713 BCE.

Year, month, day, hour and minute are integers; second may carry a
fractional part. Fields are not range checked.

Example:
  ymdhms2jd 2000 1 1 12 0 0          # 2451545.0
  ymdhms2jd -4712 1 1 12 0 0         # 38.0
  ymdhms2jd --format json 1999 1 1 0 0 0`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				msg := fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
				fmt.Fprintf(cmd.ErrOrStderr(), "Error [%s]: %s\n", ErrCodeFlags, msg)
				return NewExitError(ExitCommandError, msg)
			}
			configureLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetHelpCommand(newHelpCommand(opts))

	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

// Execute runs the root command with args and returns the process exit code.
// Errors not already reported by a command are printed to stderr.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	cmd.SetArgs(separateNegativeNumbers(cmd, args))

	err := cmd.Execute()
	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return GetExitCode(err)
}

func runConvert(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	if len(args) != len(instantFields) {
		if formatter.Format == "json" {
			_ = formatter.Error(ErrCodeUsage, Usage, map[string]int{"got": len(args), "want": len(instantFields)})
		} else {
			fmt.Fprintln(formatter.Writer, Usage)
		}
		return NewExitError(ExitFailure, fmt.Sprintf("expected %d arguments, got %d", len(instantFields), len(args)))
	}

	instant, err := ParseInstant(args)
	if err != nil {
		_ = formatter.Error(ErrCodeParse, err.Error(), nil)
		return WrapExitError(ExitFailure, "invalid argument", err)
	}

	jd := instant.JulianDate()
	slog.Debug("converted instant",
		"year", instant.Year,
		"month", instant.Month,
		"day", instant.Day,
		"hour", instant.Hour,
		"minute", instant.Minute,
		"second", instant.Second,
		"julian_date", jd,
	)

	if formatter.Format == "json" {
		if err := checkJSONFinite(jd); err != nil {
			_ = formatter.Error(ErrCodeNonFinite, err.Error(), nil)
			return WrapExitError(ExitFailure, "unrepresentable result", err)
		}
		return formatter.Success(ConversionResult{Instant: instant, JulianDate: jd})
	}
	return formatter.Success(julian.Format(jd))
}

// newHelpCommand replaces cobra's help subcommand. A leading "help" word is
// just another positional, so it fails to parse like any non-numeric
// argument; --help still prints the command help.
func newHelpCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:    "help",
		Hidden: true,
		Args:   cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, append([]string{"help"}, args...), cmd)
		},
	}
}

// checkJSONFinite rejects Julian Dates that encoding/json cannot encode.
func checkJSONFinite(jd float64) error {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return fmt.Errorf("julian date %s is not representable in JSON", julian.Format(jd))
	}
	return nil
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Diagnostics go to stderr to avoid corrupting output
		Verbose:   opts.Verbose,
	}
}

// configureLogging installs a text slog handler on w.
// Debug records are emitted only in verbose mode.
func configureLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
