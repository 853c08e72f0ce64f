package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/truthtable/internal/logic"
	"github.com/roach88/truthtable/internal/render"
	"github.com/roach88/truthtable/internal/table"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Bits      string // "vf" | "01"
	Color     string // "auto" | "always" | "never"
	MaxDepth  int
	MaxLength int
	Summary   bool
}

// EvalData is the JSON payload for one evaluated expression.
type EvalData struct {
	Expr           string      `json:"expr"`
	Vars           []string    `json:"vars"`
	Rows           []table.Row `json:"rows"`
	Fingerprint    string      `json:"fingerprint"`
	Classification string      `json:"classification"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Print the truth table of each expression",
		Long: `Print the complete truth table of each expression.

With no arguments, expressions are read from stdin, one per line. Blank
lines and lines starting with # are skipped.

Exit codes:
  0 - All expressions evaluated
  2 - At least one expression failed to parse, or a flag was invalid

Examples:
  truthtable eval "a & b"
  truthtable eval "¬(a ∧ b)" "!a | !b" --bits 01
  echo "a -> b" | truthtable eval --format json`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Bits, "bits", string(table.FormatVF), "bit display format (vf|01)")
	cmd.Flags().StringVar(&opts.Color, "color", string(render.ColorAuto), "color the result column (auto|always|never)")
	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", logic.DefaultMaxDepth, "maximum nesting of parentheses and negations")
	cmd.Flags().IntVar(&opts.MaxLength, "max-length", logic.DefaultMaxLength, "maximum normalized expression length in bytes")
	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "print classification and fingerprint after each table")

	return cmd
}

func runEval(opts *EvalOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	bits, err := table.ParseBitFormat(opts.Bits)
	if err != nil {
		return outputFlagError(formatter, err)
	}
	colorMode, err := render.ParseColorMode(opts.Color)
	if err != nil {
		return outputFlagError(formatter, err)
	}

	exprs := args
	if len(exprs) == 0 {
		exprs, err = readExpressions(cmd.InOrStdin())
		if err != nil {
			_ = formatter.Error(ErrCodeGeneric, fmt.Sprintf("reading stdin: %v", err), nil, "")
			return WrapExitError(ExitCommandError, "reading stdin", err)
		}
	}
	if len(exprs) == 0 {
		_ = formatter.Error(ErrCodeNoInput, "no expressions given", nil, "")
		return NewExitError(ExitCommandError, "no expressions given")
	}

	renderOpts := render.Options{Bits: bits}
	if !formatter.IsJSON() && render.UseColor(colorMode, formatter.Writer) {
		renderOpts.Colors = render.NewColors()
	}
	parseOpts := []logic.Option{
		logic.WithMaxDepth(opts.MaxDepth),
		logic.WithMaxLength(opts.MaxLength),
	}

	failed := 0
	for i, text := range exprs {
		if i > 0 && !formatter.IsJSON() {
			fmt.Fprintln(formatter.Writer)
		}

		res, err := table.Evaluate(text, parseOpts...)
		if err != nil {
			failed++
			if err := outputEvalError(formatter, opts, text, err); err != nil {
				return err
			}
			continue
		}

		formatter.VerboseLog("evaluated %q: %d variable(s), %d row(s)", res.Expr, len(res.Vars), len(res.Rows))
		if err := outputEvalSuccess(formatter, opts, res, renderOpts); err != nil {
			return err
		}
	}

	if failed > 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("%d of %d expression(s) failed", failed, len(exprs)))
	}
	return nil
}

// readExpressions returns the non-blank, non-comment lines of r.
func readExpressions(r io.Reader) ([]string, error) {
	var exprs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	return exprs, scanner.Err()
}

// outputEvalSuccess outputs one truth table.
func outputEvalSuccess(formatter *OutputFormatter, opts *EvalOptions, res *table.Result, renderOpts render.Options) error {
	if formatter.IsJSON() {
		fp, err := res.Fingerprint()
		if err != nil {
			return err
		}
		vars := res.Vars
		if vars == nil {
			vars = []string{}
		}
		return formatter.Success(EvalData{
			Expr:           res.Expr,
			Vars:           vars,
			Rows:           res.Rows,
			Fingerprint:    fp,
			Classification: res.Classification(),
		}, opts.traceID())
	}

	if err := render.Text(formatter.Writer, res, renderOpts); err != nil {
		return err
	}
	if opts.Summary {
		fmt.Fprintln(formatter.Writer)
		return render.Summary(formatter.Writer, res)
	}
	return nil
}

// outputEvalError outputs one parse error. Returns a non-nil error only
// if writing fails.
func outputEvalError(formatter *OutputFormatter, opts *EvalOptions, text string, evalErr error) error {
	code, message, details := describeEvalError(text, evalErr)

	traceID := ""
	if formatter.IsJSON() {
		traceID = opts.traceID()
	} else {
		message = fmt.Sprintf("%q: %s", strings.TrimSpace(text), message)
	}
	return formatter.Error(code, message, details, traceID)
}

// outputFlagError reports a rejected flag value.
func outputFlagError(formatter *OutputFormatter, err error) error {
	_ = formatter.Error(ErrCodeInvalidFlag, err.Error(), nil, "")
	return WrapExitError(ExitCommandError, "invalid flag", err)
}
