package harness

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// WriteReport writes a human-readable report.
//
//	Suite: operators (2 cases)
//	  PASS  conjunction  "a & b"
//	  FAIL  broken  "a | b"
//	        column: expected [0 0 0 1], got [0 1 1 1]
//
//	Passed: 1  Failed: 1  Total: 2
func WriteReport(w io.Writer, rep *Report) error {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Suite: %s (%d cases)\n", rep.Suite, rep.Total)
	for _, c := range rep.Cases {
		status := "PASS"
		if !c.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(&buf, "  %s  %s  %q\n", status, c.Name, c.Expr)
		for _, f := range c.Failures {
			fmt.Fprintf(&buf, "        %s\n", f)
		}
	}
	fmt.Fprintf(&buf, "\nPassed: %d  Failed: %d  Total: %d\n", rep.Passed, rep.Failed, rep.Total)

	_, err := io.WriteString(w, buf.String())
	return err
}

// RunWithGolden runs a suite and compares its report against
// testdata/golden/{suite.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, suite *Suite) *Report {
	t.Helper()

	rep := NewRunner().Run(suite)
	AssertGolden(t, suite.Name, rep)
	return rep
}

// AssertGolden compares an existing report against a golden file.
func AssertGolden(t *testing.T, name string, rep *Report) {
	t.Helper()

	var buf strings.Builder
	if err := WriteReport(&buf, rep); err != nil {
		t.Fatalf("writing report: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(buf.String()))
}
