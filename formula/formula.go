// Package formula holds the parsed representation of a cell's input (a
// Formula) and the expression tree (Expr) a formula may wrap, along with
// the evaluator that walks that tree against a sheet Context.
package formula

import (
	"github.com/foldwave/sheetcalc/address"
	"github.com/foldwave/sheetcalc/value"
)

// Context is the read-only view of a sheet an expression evaluates
// against: resolving references to other cells' current values, and
// dispatching named calls to registered functions.
type Context interface {
	// Value returns the current value of the cell at addr, or Empty if no
	// cell exists there.
	Value(addr address.Cell) value.Value
	// Call invokes the function registered under name with args already
	// evaluated left-to-right. It returns Error(Undefined) if no function
	// is registered under that name.
	Call(name string, args []value.Value) value.Value
}

// Formula is the parsed representation of a cell's input: either a bare
// literal value (plain, non-formula input) or an expression tree (a "="
// formula).
type Formula interface {
	// Evaluate computes the formula's value against ctx.
	Evaluate(ctx Context) value.Value
	// Walk visits every cell address referenced in this formula, including
	// references nested in call arguments; it does not follow references
	// into the referenced cells' own formulas.
	Walk(visit func(address.Cell))
}

// Literal is a Formula holding a bare value with no expression tree, the
// result of plain (non-"=") cell input.
type Literal struct {
	Value value.Value
}

func (f Literal) Evaluate(Context) value.Value { return f.Value }

func (f Literal) Walk(func(address.Cell)) {}

// Expression is a Formula wrapping an expression tree, the result of "="
// cell input.
type Expression struct {
	Expr Expr
}

func (f Expression) Evaluate(ctx Context) value.Value { return f.Expr.Eval(ctx) }

func (f Expression) Walk(visit func(address.Cell)) { f.Expr.Walk(visit) }

// Empty is the formula of a cell that has never been assigned: a literal
// Empty value with no dependencies.
func Empty() Formula { return Literal{Value: value.Empty()} }

// Dependencies returns every cell address f directly references, in
// the order Walk visits them (duplicates are possible; callers that need a
// set should dedupe).
func Dependencies(f Formula) []address.Cell {
	var deps []address.Cell
	f.Walk(func(a address.Cell) { deps = append(deps, a) })
	return deps
}
