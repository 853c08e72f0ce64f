package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/truthtable/internal/harness"
	"github.com/roach88/truthtable/internal/logic"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Filter    string // suite filter (glob pattern on the file name)
	MaxDepth  int
	MaxLength int
}

// SuiteResult holds the result of one suite file.
type SuiteResult struct {
	Path   string               `json:"path"`
	Suite  string               `json:"suite,omitempty"`
	Pass   bool                 `json:"pass"`
	Error  string               `json:"error,omitempty"`
	Cases  []harness.CaseResult `json:"cases,omitempty"`
	Passed int                  `json:"passed"`
	Failed int                  `json:"failed"`
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Suites []SuiteResult `json:"suites"`
	Passed int           `json:"passed"`
	Failed int           `json:"failed"`
	Total  int           `json:"total"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <suites-dir>",
		Short: "Check truth-table suites",
		Long: `Check every suite file in a directory.

Suites are YAML (.yaml, .yml) or CUE (.cue) files listing expressions
and the truth tables they must produce.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed, or a suite failed to load
  2 - Command error (invalid paths, etc.)

Examples:
  truthtable check ./suites
  truthtable check ./suites --filter "laws*"
  truthtable check ./suites --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter suites by glob pattern")
	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", logic.DefaultMaxDepth, "maximum nesting of parentheses and negations")
	cmd.Flags().IntVar(&opts.MaxLength, "max-length", logic.DefaultMaxLength, "maximum normalized expression length in bytes")

	return cmd
}

func runCheck(opts *CheckOptions, dir string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		msg := fmt.Sprintf("suites directory not found: %s", dir)
		_ = formatter.Error(ErrCodeNotFound, msg, nil, "")
		return NewExitError(ExitCommandError, msg)
	}

	files, err := harness.FindSuiteFiles(dir, opts.Filter)
	if err != nil {
		_ = formatter.Error(ErrCodeScanError, fmt.Sprintf("failed to find suites: %v", err), nil, "")
		return WrapExitError(ExitCommandError, "failed to find suites", err)
	}

	if len(files) == 0 {
		if formatter.IsJSON() {
			return formatter.Success(CheckResult{Suites: []SuiteResult{}}, opts.traceID())
		}
		fmt.Fprintln(formatter.Writer, "No suites found.")
		return nil
	}

	runner := harness.NewRunner(
		harness.WithLogger(opts.logger(formatter.GetErrWriter())),
		harness.WithParseOptions(
			logic.WithMaxDepth(opts.MaxDepth),
			logic.WithMaxLength(opts.MaxLength),
		),
	)

	result := CheckResult{Suites: make([]SuiteResult, 0, len(files))}
	loadFailures := 0
	for i, path := range files {
		if i > 0 && !formatter.IsJSON() {
			fmt.Fprintln(formatter.Writer)
		}

		sr := checkSuite(runner, path, formatter)
		if sr.Error != "" {
			loadFailures++
		}
		result.Suites = append(result.Suites, sr)
		result.Passed += sr.Passed
		result.Failed += sr.Failed
	}
	result.Total = result.Passed + result.Failed

	if formatter.IsJSON() {
		if err := formatter.Success(result, opts.traceID()); err != nil {
			return err
		}
	} else if len(files) > 1 {
		fmt.Fprintf(formatter.Writer, "\nSuites: %d  Passed: %d  Failed: %d  Total: %d\n",
			len(files), result.Passed, result.Failed, result.Total)
	}

	if result.Failed > 0 || loadFailures > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed, %d suite(s) failed to load", result.Failed, loadFailures))
	}
	return nil
}

// checkSuite runs one suite file. Text output is written as it goes.
func checkSuite(runner *harness.Runner, path string, formatter *OutputFormatter) SuiteResult {
	rep, err := runner.RunFile(path)
	if err != nil {
		if !formatter.IsJSON() {
			_ = formatter.Error(ErrCodeSuiteLoad, fmt.Sprintf("%s: %v", filepath.Base(path), err), nil, "")
		}
		return SuiteResult{
			Path:  path,
			Pass:  false,
			Error: err.Error(),
		}
	}

	if !formatter.IsJSON() {
		_ = harness.WriteReport(formatter.Writer, rep)
	}
	formatter.VerboseLog("checked %s: %d passed, %d failed", path, rep.Passed, rep.Failed)

	return SuiteResult{
		Path:   path,
		Suite:  rep.Suite,
		Pass:   rep.Pass(),
		Cases:  rep.Cases,
		Passed: rep.Passed,
		Failed: rep.Failed,
	}
}
