package harness

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/truthtable/internal/logic"
)

func intPtr(v int) *int { return &v }

func TestRunner_AllTestdataSuitesPass(t *testing.T) {
	files, err := FindSuiteFiles("testdata/suites", "")
	require.NoError(t, err)
	require.Len(t, files, 4)

	runner := NewRunner()
	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			rep, err := runner.RunFile(file)
			require.NoError(t, err)
			assert.True(t, rep.Pass(), "failures: %+v", rep.Cases)
			assert.Equal(t, rep.Total, rep.Passed)
		})
	}
}

func TestRunner_Counts(t *testing.T) {
	suite := &Suite{
		Name: "counts",
		Cases: []Case{
			{Name: "pass", Expr: "a & b", Column: []int{0, 0, 0, 1}},
			{Name: "fail", Expr: "a & b", Column: []int{1, 1, 1, 1}},
		},
	}

	rep := NewRunner().Run(suite)
	assert.Equal(t, 2, rep.Total)
	assert.Equal(t, 1, rep.Passed)
	assert.Equal(t, 1, rep.Failed)
	assert.False(t, rep.Pass())

	require.Len(t, rep.Cases, 2)
	assert.True(t, rep.Cases[0].Pass)
	assert.NotNil(t, rep.Cases[0].Table)
	assert.Equal(t, []string{"column: expected [1 1 1 1], got [0 0 0 1]"}, rep.Cases[1].Failures)
}

func TestRunner_MultipleFailuresInOneCase(t *testing.T) {
	cr := NewRunner().RunCase(Case{
		Name:   "two",
		Expr:   "a | b",
		Vars:   []string{"A"},
		Where:  map[string]int{"a": 0, "b": 0},
		Expect: intPtr(1),
	})

	assert.False(t, cr.Pass)
	require.Len(t, cr.Failures, 2)
	assert.Contains(t, cr.Failures[0], "vars:")
	assert.Contains(t, cr.Failures[1], "where:")
}

func TestRunner_ExpectedErrorProducesNoTable(t *testing.T) {
	cr := NewRunner().RunCase(Case{Name: "err", Expr: "(a", Error: string(logic.ErrCodeUnmatchedParen)})
	assert.True(t, cr.Pass)
	assert.Nil(t, cr.Table)
}

func TestRunner_WhereMissingVariable(t *testing.T) {
	cr := NewRunner().RunCase(Case{
		Name:   "partial",
		Expr:   "a & b",
		Where:  map[string]int{"a": 1},
		Expect: intPtr(0),
	})
	assert.False(t, cr.Pass)
	require.Len(t, cr.Failures, 1)
	assert.Contains(t, cr.Failures[0], "assignment for [A B]")
}

func TestRunner_InvalidCaseFailsWithoutPanic(t *testing.T) {
	tests := []struct {
		name string
		c    Case
		want string
	}{
		{"where without expect", Case{Name: "w", Expr: "a", Where: map[string]int{"a": 1}}, "where and expect must be given together"},
		{"no expectation", Case{Name: "n", Expr: "a"}, "at least one expectation is required"},
		{"non-bit column", Case{Name: "c", Expr: "a", Column: []int{0, 2}}, "column values must be 0 or 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cr CaseResult
			require.NotPanics(t, func() { cr = NewRunner().RunCase(tt.c) })
			assert.False(t, cr.Pass)
			assert.Nil(t, cr.Table)
			require.Len(t, cr.Failures, 1)
			assert.Contains(t, cr.Failures[0], "case: expected a valid case, got ")
			assert.Contains(t, cr.Failures[0], tt.want)
		})
	}
}

func TestRunner_EquivalentToInvalidExpression(t *testing.T) {
	cr := NewRunner().RunCase(Case{Name: "bad other", Expr: "a", EquivalentTo: "a &"})
	assert.False(t, cr.Pass)
	require.Len(t, cr.Failures, 1)
	assert.Contains(t, cr.Failures[0], "UNEXPECTED_END")
}

func TestRunner_ParseOptions(t *testing.T) {
	runner := NewRunner(WithParseOptions(logic.WithMaxDepth(1)))
	cr := runner.RunCase(Case{Name: "deep", Expr: "((a))", Error: string(logic.ErrCodeNestingTooDeep)})
	assert.True(t, cr.Pass, "failures: %v", cr.Failures)
}

func TestRunner_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	NewRunner(WithLogger(logger)).Run(&Suite{
		Name:  "logged",
		Cases: []Case{{Name: "fail", Expr: "a", Column: []int{1, 1}}},
	})

	out := buf.String()
	assert.Contains(t, out, "running suite")
	assert.Contains(t, out, "case failed")
	assert.Contains(t, out, "suite=logged")
	assert.Contains(t, out, "failed=1")
}

func TestRunner_NilLoggerKeepsDefault(t *testing.T) {
	r := NewRunner(WithLogger(nil))
	require.NotNil(t, r.logger)
}
