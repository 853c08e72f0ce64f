package harness

import (
	"io"
	"log/slog"

	"github.com/roach88/truthtable/internal/logic"
	"github.com/roach88/truthtable/internal/table"
)

// Runner checks suites. A Runner holds no per-suite state and may be reused.
type Runner struct {
	logger    *slog.Logger
	parseOpts []logic.Option
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. The default discards all output.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithParseOptions passes parser limits through to every evaluation.
func WithParseOptions(opts ...logic.Option) RunnerOption {
	return func(r *Runner) {
		r.parseOpts = append(r.parseOpts, opts...)
	}
}

// NewRunner creates a Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name     string        `json:"name"`
	Expr     string        `json:"expr"`
	Pass     bool          `json:"pass"`
	Failures []string      `json:"failures,omitempty"`
	Table    *table.Result `json:"table,omitempty"`
}

// Report is the outcome of one suite.
type Report struct {
	Suite  string       `json:"suite"`
	Path   string       `json:"path,omitempty"`
	Cases  []CaseResult `json:"cases"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Total  int          `json:"total"`
}

// Pass reports whether every case passed.
func (r *Report) Pass() bool {
	return r.Failed == 0
}

// Run checks every case of s in order.
func (r *Runner) Run(s *Suite) *Report {
	report := &Report{
		Suite: s.Name,
		Path:  s.Path,
		Cases: make([]CaseResult, 0, len(s.Cases)),
		Total: len(s.Cases),
	}

	r.logger.Debug("running suite", "suite", s.Name, "cases", len(s.Cases))

	for _, c := range s.Cases {
		cr := r.RunCase(c)
		report.Cases = append(report.Cases, cr)
		if cr.Pass {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	r.logger.Info("suite finished",
		"suite", s.Name,
		"passed", report.Passed,
		"failed", report.Failed,
	)
	return report
}

// RunCase checks a single case.
func (r *Runner) RunCase(c Case) CaseResult {
	res, failures := evaluateCase(c, r.parseOpts)

	cr := CaseResult{
		Name:  c.Name,
		Expr:  c.Expr,
		Pass:  len(failures) == 0,
		Table: res,
	}
	for _, f := range failures {
		cr.Failures = append(cr.Failures, f.Error())
		r.logger.Debug("case failed",
			"case", c.Name,
			"check", f.Check,
			"expected", f.Expected,
			"actual", f.Actual,
		)
	}
	return cr
}

// RunFile loads and runs a suite file.
func (r *Runner) RunFile(path string) (*Report, error) {
	s, err := LoadSuite(path)
	if err != nil {
		return nil, err
	}
	return r.Run(s), nil
}
