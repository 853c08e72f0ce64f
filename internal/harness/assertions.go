package harness

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/truthtable/internal/logic"
	"github.com/roach88/truthtable/internal/table"
)

// Check names, used to categorize AssertionError.
const (
	CheckCase       = "case"
	CheckError      = "error"
	CheckVars       = "vars"
	CheckRows       = "rows"
	CheckColumn     = "column"
	CheckWhere      = "where"
	CheckEquivalent = "equivalent_to"
)

// AssertionError is returned when a case expectation fails.
type AssertionError struct {
	Check    string // which expectation failed
	Expected string // human-readable expected outcome
	Actual   string // human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Check, e.Expected, e.Actual)
}

// evaluateCase runs one case and returns the table (nil on parse error)
// and every failed expectation.
//
// Cases that did not come through LoadSuite are validated here first.
func evaluateCase(c Case, opts []logic.Option) (*table.Result, []*AssertionError) {
	if err := validateCase(&c); err != nil {
		return nil, []*AssertionError{{
			Check:    CheckCase,
			Expected: "a valid case",
			Actual:   err.Error(),
		}}
	}

	res, err := table.Evaluate(c.Expr, opts...)

	if c.Error != "" {
		return res, assertError(c.Error, err)
	}
	if err != nil {
		return nil, []*AssertionError{{
			Check:    CheckError,
			Expected: "no error",
			Actual:   err.Error(),
		}}
	}

	var failures []*AssertionError
	if c.Vars != nil {
		failures = appendIf(failures, assertVars(c.Vars, res))
	}
	if c.Rows != nil {
		failures = appendIf(failures, assertRows(c.Rows, res))
	}
	if c.Column != nil {
		failures = appendIf(failures, assertColumn(c.Column, res))
	}
	if c.Where != nil {
		failures = appendIf(failures, assertWhere(c.Where, *c.Expect, res))
	}
	if c.EquivalentTo != "" {
		failures = appendIf(failures, assertEquivalent(c.EquivalentTo, res, opts))
	}
	return res, failures
}

func appendIf(failures []*AssertionError, err *AssertionError) []*AssertionError {
	if err != nil {
		return append(failures, err)
	}
	return failures
}

func assertError(want string, err error) []*AssertionError {
	if err == nil {
		return []*AssertionError{{Check: CheckError, Expected: want, Actual: "no error"}}
	}
	var pe *logic.ParseError
	if !errors.As(err, &pe) {
		return []*AssertionError{{Check: CheckError, Expected: want, Actual: err.Error()}}
	}
	if string(pe.Code) != want {
		return []*AssertionError{{Check: CheckError, Expected: want, Actual: string(pe.Code)}}
	}
	return nil
}

func assertVars(want []string, res *table.Result) *AssertionError {
	upper := make([]string, len(want))
	for i, v := range want {
		upper[i] = strings.ToUpper(v)
	}
	if strings.Join(upper, ",") == strings.Join(res.Vars, ",") {
		return nil
	}
	return &AssertionError{
		Check:    CheckVars,
		Expected: fmt.Sprintf("%v", upper),
		Actual:   fmt.Sprintf("%v", res.Vars),
	}
}

func assertRows(want [][]int, res *table.Result) *AssertionError {
	got := make([][]int, len(res.Rows))
	for i, row := range res.Rows {
		got[i] = bitsToInts(row)
	}
	if fmt.Sprint(want) == fmt.Sprint(got) {
		return nil
	}
	return &AssertionError{
		Check:    CheckRows,
		Expected: fmt.Sprint(want),
		Actual:   fmt.Sprint(got),
	}
}

func assertColumn(want []int, res *table.Result) *AssertionError {
	got := bitsToInts(res.Column())
	if fmt.Sprint(want) == fmt.Sprint(got) {
		return nil
	}
	return &AssertionError{
		Check:    CheckColumn,
		Expected: fmt.Sprint(want),
		Actual:   fmt.Sprint(got),
	}
}

func assertWhere(where map[string]int, expect int, res *table.Result) *AssertionError {
	assignment := make(map[string]bool, len(where))
	for name, v := range where {
		assignment[name] = v == 1
	}

	got, ok := res.Lookup(assignment)
	if !ok {
		return &AssertionError{
			Check:    CheckWhere,
			Expected: fmt.Sprintf("assignment for %v", res.Vars),
			Actual:   formatWhere(where),
		}
	}
	if int(got) != expect {
		return &AssertionError{
			Check:    CheckWhere,
			Expected: fmt.Sprintf("%d at %s", expect, formatWhere(where)),
			Actual:   fmt.Sprintf("%d", got),
		}
	}
	return nil
}

func assertEquivalent(other string, res *table.Result, opts []logic.Option) *AssertionError {
	otherRes, err := table.Evaluate(other, opts...)
	if err != nil {
		return &AssertionError{
			Check:    CheckEquivalent,
			Expected: fmt.Sprintf("table of %q", other),
			Actual:   err.Error(),
		}
	}
	if res.MustFingerprint() == otherRes.MustFingerprint() {
		return nil
	}
	return &AssertionError{
		Check:    CheckEquivalent,
		Expected: fmt.Sprintf("%v %v", otherRes.Vars, bitsToInts(otherRes.Column())),
		Actual:   fmt.Sprintf("%v %v", res.Vars, bitsToInts(res.Column())),
	}
}

func bitsToInts(bits []table.Bit) []int {
	out := make([]int, len(bits))
	for i, b := range bits {
		out[i] = int(b)
	}
	return out
}

// formatWhere renders an assignment with sorted keys: {a=1 b=0}.
func formatWhere(where map[string]int) string {
	keys := make([]string, 0, len(where))
	for k := range where {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, where[k])
	}
	return "{" + strings.Join(parts, " ") + "}"
}
