// Package logic parses and evaluates propositional formulas over the
// variables a, b, c and d.
//
// Input goes through three stages:
//
//	raw text -> Normalize -> canonical ASCII string
//	canonical string -> Compile -> *Expr (immutable tree)
//	*Expr + Assignment -> Eval -> bool
//
// Operator precedence, weakest first:
//
//	<->   biconditional
//	->    implication
//	|     disjunction
//	&     conjunction
//	!     negation
//
// Every binary level folds to the left, so "a -> b -> c" is
// "(a -> b) -> c".
//
// This package imports nothing internal. A compiled *Expr holds no state
// and may be evaluated concurrently against independent assignments.
package logic
