package formula

import (
	"strings"

	"github.com/foldwave/sheetcalc/address"
	"github.com/foldwave/sheetcalc/value"
)

// Expr is a node of a parsed expression tree: a literal, a reference to
// another cell, or a call to a registered function.
type Expr interface {
	// Eval computes the node's value against ctx.
	Eval(ctx Context) value.Value
	// Walk visits every Reference address in the subtree rooted at this
	// node; Call nodes recurse into their arguments, Literal nodes visit
	// nothing.
	Walk(visit func(address.Cell))
	// String renders the node back to formula text, without the leading
	// "=" (useful for debugging and for FormulaTable-style deduplication
	// keys).
	String() string
}

// ExprLiteral is a literal value embedded directly in an expression, e.g.
// the "1" in "=1" or the "2" in "=sum(1,2)".
type ExprLiteral struct {
	Value value.Value
}

func (n ExprLiteral) Eval(Context) value.Value { return n.Value }

func (n ExprLiteral) Walk(func(address.Cell)) {}

func (n ExprLiteral) String() string { return n.Value.String() }

// Reference is a dependency on another cell's current value.
type Reference struct {
	Addr address.Cell
}

func (n Reference) Eval(ctx Context) value.Value { return ctx.Value(n.Addr) }

func (n Reference) Walk(visit func(address.Cell)) { visit(n.Addr) }

func (n Reference) String() string { return n.Addr.String() }

// Call is a function invocation: evaluate every argument left-to-right,
// then dispatch by name.
type Call struct {
	Name string
	Args []Expr
}

func (n Call) Eval(ctx Context) value.Value {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.Eval(ctx)
	}
	return ctx.Call(n.Name, args)
}

func (n Call) Walk(visit func(address.Cell)) {
	for _, a := range n.Args {
		a.Walk(visit)
	}
}

func (n Call) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	var b strings.Builder
	b.WriteString(n.Name)
	b.WriteByte('(')
	b.WriteString(strings.Join(parts, ","))
	b.WriteByte(')')
	return b.String()
}
