// Package harness checks expressions against expected truth tables.
//
// # Suite Format
//
// Suites are YAML files with the following structure:
//
//	name: operators
//	description: "Binary operator semantics"
//	cases:
//	  - name: conjunction
//	    expr: "a & b"
//	    vars: [A, B]
//	    rows: [[0,0,0], [0,1,0], [1,0,0], [1,1,1]]
//	  - name: precedence
//	    expr: "a | b & c"
//	    where: { a: 0, b: 1, c: 0 }
//	    expect: 0
//	  - name: dangling operator
//	    expr: "a &"
//	    error: UNEXPECTED_END
//	  - name: de morgan
//	    expr: "!(a & b)"
//	    equivalent_to: "!a | !b"
//
// The same structure may be written in CUE under a top-level "suite" field:
//
//	suite: {
//		name: "operators"
//		description: "Binary operator semantics"
//		cases: [{name: "conjunction", expr: "a & b", column: [0, 0, 0, 1]}]
//	}
//
// # Expectations
//
// A case may combine any of:
//
//   - vars: expected uppercase variable names, in order
//   - rows: the complete expected table
//   - column: the expected result bits only
//   - where + expect: the result bit for one assignment
//   - equivalent_to: another expression with the same truth table
//
// or state a single expected parse error code with error.
//
// # Golden Reports
//
// RunWithGolden renders the suite report and compares it against
// testdata/golden/{suite.Name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness
