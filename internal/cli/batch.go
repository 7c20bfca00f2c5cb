package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/ymdhms2jd/internal/julian"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Convert a YAML list of instants",
		Long: `Convert every instant in a YAML file to a Julian Date.

The file holds a sequence of mappings with the keys year, month, day,
hour, minute and second. Missing keys default to zero; unknown keys are
rejected. Use "-" to read from stdin.

Results print one per line in input order, or as a JSON array with
--format json.

Example:
  ymdhms2jd batch instants.yaml
  echo '- {year: 2000, month: 1, day: 1, hour: 12}' | ymdhms2jd batch -`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, args[0], cmd)
		},
	}

	return cmd
}

func runBatch(opts *BatchOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	var instants []julian.Instant
	var err error
	if path == "-" {
		instants, err = julian.DecodeInstants(cmd.InOrStdin())
	} else {
		instants, err = julian.LoadInstants(path)
	}
	if err != nil {
		_ = formatter.Error(ErrCodeInput, err.Error(), map[string]string{"path": path})
		return WrapExitError(ExitCommandError, "failed to load instants", err)
	}
	slog.Debug("loaded instants", "count", len(instants), "path", path)

	results := make([]ConversionResult, len(instants))
	for i, instant := range instants {
		results[i] = ConversionResult{Instant: instant, JulianDate: instant.JulianDate()}
		slog.Debug("converted instant", "index", i, "julian_date", results[i].JulianDate)
	}

	if formatter.Format == "json" {
		for i, r := range results {
			if err := checkJSONFinite(r.JulianDate); err != nil {
				err = fmt.Errorf("instant %d: %w", i, err)
				_ = formatter.Error(ErrCodeNonFinite, err.Error(), map[string]string{"path": path})
				return WrapExitError(ExitFailure, "unrepresentable result", err)
			}
		}
		return formatter.Success(results)
	}

	for _, r := range results {
		if _, err := fmt.Fprintln(formatter.Writer, julian.Format(r.JulianDate)); err != nil {
			return WrapExitError(ExitCommandError, "failed to write output", err)
		}
	}
	return nil
}
