package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// IDs generates trace IDs for JSON responses. Not a flag; tests
	// replace it with a deterministic generator.
	IDs RequestIDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the truthtable CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{IDs: UUIDv7Generator{}}

	cmd := &cobra.Command{
		Use:   "truthtable",
		Short: "Truth tables for propositional formulas",
		Long: `Evaluate propositional formulas over the variables A-D and print
their complete truth tables.

Operators, weakest first: <-> (↔), -> (→), | (∨), & (∧), ! (¬ ~).
Constants: true, false.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// logger returns a debug-level text logger on w when verbose, otherwise a
// logger that discards everything.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	if !o.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// formatter builds the OutputFormatter for a command invocation.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
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

// traceID returns a new trace ID from the configured generator.
func (o *RootOptions) traceID() string {
	if o.IDs == nil {
		return UUIDv7Generator{}.Generate()
	}
	return o.IDs.Generate()
}
