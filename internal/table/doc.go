// Package table builds complete truth tables from expression text.
//
// Evaluate is the single entry point used by callers:
//
//	res, err := table.Evaluate("a -> b")
//	// res.Vars == ["A", "B"]
//	// res.Rows == [[0 0 1] [0 1 1] [1 0 0] [1 1 1]]
//
// Rows appear in ascending order of the binary number formed by the
// variable bits, first variable most significant. An expression with no
// variables yields a single row holding only the result.
//
// A Result is built once per call and never shared between calls.
package table
