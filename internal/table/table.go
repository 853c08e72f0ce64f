package table

import (
	"fmt"
	"strings"

	"github.com/roach88/truthtable/internal/logic"
)

// MaxVars is the number of distinct variables an expression can reference.
const MaxVars = 4

// Bit is a single truth value in a row: 0 or 1.
type Bit int

// Row holds the variable bits in Result.Vars order followed by the result bit.
type Row []Bit

// Result is the complete truth table for one expression.
type Result struct {
	// Expr is the expression text as submitted, surrounding whitespace trimmed.
	Expr string `json:"expr"`

	// Vars are the referenced variables, uppercase, sorted.
	Vars []string `json:"vars"`

	// Rows has 2^len(Vars) entries, each len(Vars)+1 long.
	Rows []Row `json:"rows"`
}

// Evaluate normalizes and compiles text, then enumerates every assignment
// of its variables.
//
// Errors are always *logic.ParseError; no Result accompanies an error.
func Evaluate(text string, opts ...logic.Option) (*Result, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, logic.EmptyInputError()
	}

	expr, err := logic.Compile(logic.Normalize(trimmed), opts...)
	if err != nil {
		return nil, err
	}

	return Build(trimmed, expr)
}

// Build enumerates expr and wraps the rows in a Result labelled with text.
// Trees from Compile always succeed; hand-built trees referencing names
// outside a-d are rejected.
func Build(text string, expr *logic.Expr) (*Result, error) {
	vars := logic.Vars(expr)
	rows, err := Enumerate(expr, vars)
	if err != nil {
		return nil, err
	}

	upper := make([]string, len(vars))
	for i, v := range vars {
		upper[i] = strings.ToUpper(v)
	}

	return &Result{
		Expr: text,
		Vars: upper,
		Rows: rows,
	}, nil
}

// Enumerate evaluates expr under every assignment of vars.
//
// For mask 0..2^n-1, variable i takes bit (n-1-i) of mask. With no
// variables the expression is evaluated once against an empty assignment.
// vars must be at most MaxVars distinct names from a-d.
func Enumerate(expr *logic.Expr, vars []string) ([]Row, error) {
	if err := checkVars(vars); err != nil {
		return nil, err
	}

	n := len(vars)
	if n == 0 {
		return []Row{{bitOf(logic.Eval(expr, logic.Assignment{}))}}, nil
	}

	total := 1 << n
	rows := make([]Row, 0, total)
	for mask := 0; mask < total; mask++ {
		env := make(logic.Assignment, n)
		row := make(Row, n+1)
		for i, name := range vars {
			v := (mask>>(n-1-i))&1 == 1
			env[name] = v
			row[i] = bitOf(v)
		}
		row[n] = bitOf(logic.Eval(expr, env))
		rows = append(rows, row)
	}
	return rows, nil
}

// checkVars rejects variable lists Enumerate cannot tabulate.
func checkVars(vars []string) error {
	if len(vars) > MaxVars {
		return fmt.Errorf("table: %d variables referenced, at most %d supported", len(vars), MaxVars)
	}
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if !logic.IsVariableName(v) {
			return fmt.Errorf("table: invalid variable %q, use a-d", v)
		}
		if seen[v] {
			return fmt.Errorf("table: duplicate variable %q", v)
		}
		seen[v] = true
	}
	return nil
}

// Column returns the result bit of every row.
func (r *Result) Column() []Bit {
	col := make([]Bit, len(r.Rows))
	for i, row := range r.Rows {
		col[i] = row[len(row)-1]
	}
	return col
}

// Lookup returns the result bit for the row matching assignment.
// Keys are variable names in either case; variables absent from the
// table are ignored. Returns false if a table variable is unassigned.
func (r *Result) Lookup(assignment map[string]bool) (Bit, bool) {
	values := make(map[string]bool, len(assignment))
	for k, v := range assignment {
		values[strings.ToUpper(k)] = v
	}

	mask := 0
	for _, name := range r.Vars {
		v, ok := values[name]
		if !ok {
			return 0, false
		}
		mask <<= 1
		if v {
			mask |= 1
		}
	}

	row := r.Rows[mask]
	return row[len(row)-1], true
}

// IsTautology reports whether every row evaluates to 1.
func (r *Result) IsTautology() bool {
	for _, b := range r.Column() {
		if b != 1 {
			return false
		}
	}
	return true
}

// IsContradiction reports whether every row evaluates to 0.
func (r *Result) IsContradiction() bool {
	for _, b := range r.Column() {
		if b != 0 {
			return false
		}
	}
	return true
}

// Classification names the kind of formula: "tautology",
// "contradiction" or "contingent".
func (r *Result) Classification() string {
	switch {
	case r.IsTautology():
		return "tautology"
	case r.IsContradiction():
		return "contradiction"
	default:
		return "contingent"
	}
}

func bitOf(v bool) Bit {
	if v {
		return 1
	}
	return 0
}
