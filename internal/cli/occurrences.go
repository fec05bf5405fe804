package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	"github.com/aevon-lab/chronicle/internal/core/recurrence"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// OccurrencesOptions holds flags for the occurrences command.
type OccurrencesOptions struct {
	*RootOptions
	PatternPath string
	Start       string
	From        string
	To          string
	Limit       int
}

// OccurrencesOutput is the JSON form of the command's result.
type OccurrencesOutput struct {
	Description string      `json:"description"`
	Occurrences []time.Time `json:"occurrences"`
}

// NewOccurrencesCommand creates the occurrences command.
func NewOccurrencesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OccurrencesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "occurrences",
		Short: "Expand a recurrence pattern offline",
		Long: `Expand a recurrence pattern file into concrete start instants.

The pattern file is YAML with the same members as the API's
recurrence_pattern object. Without --pattern the event is one-time.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOccurrences(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.PatternPath, "pattern", "p", "", "path to a YAML recurrence pattern")
	cmd.Flags().StringVar(&opts.Start, "start", "", "first occurrence (RFC3339)")
	cmd.Flags().StringVar(&opts.From, "from", "", "range start (RFC3339, default --start)")
	cmd.Flags().StringVar(&opts.To, "to", "", "range end (RFC3339, default one year after --start)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", recurrence.DefaultMaxOccurrences, "maximum occurrences to print")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func runOccurrences(opts *OccurrencesOptions, w io.Writer) error {
	start, err := time.Parse(time.RFC3339, opts.Start)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}

	var pattern *v1.RecurrencePattern
	if opts.PatternPath != "" {
		pattern, err = loadPattern(opts.PatternPath)
		if err != nil {
			return err
		}
	}

	var rangeOpts recurrence.Options
	rangeOpts.MaxOccurrences = opts.Limit
	if opts.From != "" {
		if rangeOpts.RangeStart, err = time.Parse(time.RFC3339, opts.From); err != nil {
			return fmt.Errorf("invalid --from: %w", err)
		}
	}
	if opts.To != "" {
		if rangeOpts.RangeEnd, err = time.Parse(time.RFC3339, opts.To); err != nil {
			return fmt.Errorf("invalid --to: %w", err)
		}
	}
	if !rangeOpts.RangeStart.IsZero() && !rangeOpts.RangeEnd.IsZero() && rangeOpts.RangeEnd.Before(rangeOpts.RangeStart) {
		return fmt.Errorf("--to must not be before --from")
	}

	times, err := recurrence.Occurrences(start, pattern, rangeOpts)
	if err != nil {
		return err
	}
	return renderOccurrences(w, opts.Format, recurrence.Describe(pattern), times)
}

func loadPattern(path string) (*v1.RecurrencePattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}
	var p v1.RecurrencePattern
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse pattern file %s: %w", path, err)
	}
	if err := recurrence.Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func renderOccurrences(w io.Writer, format, description string, times []time.Time) error {
	if format == "json" {
		if times == nil {
			times = []time.Time{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(OccurrencesOutput{Description: description, Occurrences: times})
	}

	fmt.Fprintln(w, description)
	for _, t := range times {
		fmt.Fprintln(w, t.UTC().Format(time.RFC3339))
	}
	return nil
}
