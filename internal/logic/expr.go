package logic

import (
	"fmt"
	"sort"
)

// Kind discriminates the node types of an Expr.
type Kind int

const (
	KindVar     Kind = iota // variable reference
	KindConst               // true or false
	KindNot                 // negation
	KindAnd                 // conjunction
	KindOr                  // disjunction
	KindImplies             // material implication
	KindIff                 // biconditional
)

// String returns the operator symbol or node name.
func (k Kind) String() string {
	switch k {
	case KindVar:
		return "var"
	case KindConst:
		return "const"
	case KindNot:
		return "!"
	case KindAnd:
		return "&"
	case KindOr:
		return "|"
	case KindImplies:
		return "->"
	case KindIff:
		return "<->"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Expr is a node of a compiled formula.
//
// Fields used per kind:
//   - KindVar: Name
//   - KindConst: Value
//   - KindNot: Left
//   - binary kinds: Left, Right
//
// An Expr is never mutated after Compile returns it.
type Expr struct {
	Kind  Kind
	Name  string
	Value bool
	Left  *Expr
	Right *Expr
}

// Assignment maps variable names to truth values for one row.
// Variables missing from the map evaluate to false.
type Assignment map[string]bool

// Var returns a reference to the lower-case variable name.
func Var(name string) *Expr { return &Expr{Kind: KindVar, Name: name} }

// Const returns the literal v.
func Const(v bool) *Expr { return &Expr{Kind: KindConst, Value: v} }

// Not returns !x.
func Not(x *Expr) *Expr { return &Expr{Kind: KindNot, Left: x} }

// And returns l & r.
func And(l, r *Expr) *Expr { return &Expr{Kind: KindAnd, Left: l, Right: r} }

// Or returns l | r.
func Or(l, r *Expr) *Expr { return &Expr{Kind: KindOr, Left: l, Right: r} }

// Implies returns l -> r.
func Implies(l, r *Expr) *Expr { return &Expr{Kind: KindImplies, Left: l, Right: r} }

// Iff returns l <-> r.
func Iff(l, r *Expr) *Expr { return &Expr{Kind: KindIff, Left: l, Right: r} }

func binary(k Kind, l, r *Expr) *Expr { return &Expr{Kind: k, Left: l, Right: r} }

// Eval computes the truth value of e under env.
func Eval(e *Expr, env Assignment) bool {
	switch e.Kind {
	case KindVar:
		return env[e.Name]
	case KindConst:
		return e.Value
	case KindNot:
		return !Eval(e.Left, env)
	case KindAnd:
		return Eval(e.Left, env) && Eval(e.Right, env)
	case KindOr:
		return Eval(e.Left, env) || Eval(e.Right, env)
	case KindImplies:
		return !Eval(e.Left, env) || Eval(e.Right, env)
	case KindIff:
		return Eval(e.Left, env) == Eval(e.Right, env)
	default:
		panic(fmt.Sprintf("logic: unknown expression kind %d", int(e.Kind)))
	}
}

// Vars returns the distinct variable names referenced by e, sorted.
func Vars(e *Expr) []string {
	seen := make(map[string]bool)
	collectVars(e, seen)

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVars(e *Expr, seen map[string]bool) {
	if e == nil {
		return
	}
	if e.Kind == KindVar {
		seen[e.Name] = true
		return
	}
	collectVars(e.Left, seen)
	collectVars(e.Right, seen)
}

// String renders e fully parenthesized in canonical ASCII syntax.
// Parse of the output yields an equal tree.
func (e *Expr) String() string {
	switch e.Kind {
	case KindVar:
		return e.Name
	case KindConst:
		if e.Value {
			return "true"
		}
		return "false"
	case KindNot:
		return "!" + e.Left.String()
	default:
		return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Kind, e.Right.String())
	}
}

// Equal reports whether e and other are structurally identical.
func (e *Expr) Equal(other *Expr) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Kind != other.Kind || e.Name != other.Name || e.Value != other.Value {
		return false
	}
	return e.Left.Equal(other.Left) && e.Right.Equal(other.Right)
}
