// Package functions provides a handful of example callables a host can
// register with sheet.SetFunction to exercise the core: arithmetic
// (Sum, Avg, Max, Min, Abs), logic (If, And, Or, Not), and text
// (Concat, Upper, Lower). This is deliberately small — spec.md's
// Non-goals exclude "a built-in function library beyond what is needed
// to exercise the core" — but wide enough to drive every Value kind
// through a call.
package functions

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/foldwave/sheetcalc/sheet"
	"github.com/foldwave/sheetcalc/value"
)

// Sum adds as_number(arg) over every argument, propagating the first
// coercion error unchanged, grounded on the Rust source's own sum().
func Sum(args []value.Value) value.Value {
	total := decimal.Zero
	for _, arg := range args {
		d, err := arg.AsNumber()
		if err != nil {
			return errorValue(err)
		}
		total = total.Add(d)
	}
	return value.NewNumber(total)
}

// Avg is Sum divided by the argument count; zero arguments yields
// Error(Type), since there is no numeric value to divide by zero into.
func Avg(args []value.Value) value.Value {
	if len(args) == 0 {
		return value.NewError(value.Type)
	}
	sum := Sum(args)
	d, ok := sum.Number()
	if !ok {
		return sum
	}
	return value.NewNumber(d.Div(decimal.NewFromInt(int64(len(args)))))
}

// Max returns the largest as_number(arg) over every argument, propagating
// the first coercion error; zero arguments yields Error(Type).
func Max(args []value.Value) value.Value {
	return extremum(args, func(a, b decimal.Decimal) bool { return a.GreaterThan(b) })
}

// Min returns the smallest as_number(arg) over every argument, propagating
// the first coercion error; zero arguments yields Error(Type).
func Min(args []value.Value) value.Value {
	return extremum(args, func(a, b decimal.Decimal) bool { return a.LessThan(b) })
}

func extremum(args []value.Value, better func(a, b decimal.Decimal) bool) value.Value {
	if len(args) == 0 {
		return value.NewError(value.Type)
	}
	best, err := args[0].AsNumber()
	if err != nil {
		return errorValue(err)
	}
	for _, arg := range args[1:] {
		d, err := arg.AsNumber()
		if err != nil {
			return errorValue(err)
		}
		if better(d, best) {
			best = d
		}
	}
	return value.NewNumber(best)
}

// Abs requires exactly one argument and returns its absolute value.
func Abs(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.NewError(value.Type)
	}
	d, err := args[0].AsNumber()
	if err != nil {
		return errorValue(err)
	}
	return value.NewNumber(d.Abs())
}

// If selects its second argument when the first is truthy, else its
// third (or Empty if there is no third). Arguments are already evaluated
// by the time a call reaches a function, so this never short-circuits
// side effects — only which already-computed value is returned.
func If(args []value.Value) value.Value {
	if len(args) != 2 && len(args) != 3 {
		return value.NewError(value.Type)
	}
	if _, ok := args[0].ErrKind(); ok {
		return args[0]
	}
	if isTruthy(args[0]) {
		return args[1]
	}
	if len(args) == 3 {
		return args[2]
	}
	return value.Empty()
}

// And reports whether every argument is truthy, propagating the first
// error argument unchanged.
func And(args []value.Value) value.Value {
	for _, arg := range args {
		if _, ok := arg.ErrKind(); ok {
			return arg
		}
	}
	for _, arg := range args {
		if !isTruthy(arg) {
			return value.NewNumber(decimal.Zero)
		}
	}
	return value.NewNumber(decimal.NewFromInt(1))
}

// Or reports whether any argument is truthy, propagating the first error
// argument unchanged.
func Or(args []value.Value) value.Value {
	for _, arg := range args {
		if _, ok := arg.ErrKind(); ok {
			return arg
		}
	}
	for _, arg := range args {
		if isTruthy(arg) {
			return value.NewNumber(decimal.NewFromInt(1))
		}
	}
	return value.NewNumber(decimal.Zero)
}

// Not requires exactly one argument and inverts its truthiness.
func Not(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.NewError(value.Type)
	}
	if _, ok := args[0].ErrKind(); ok {
		return args[0]
	}
	if isTruthy(args[0]) {
		return value.NewNumber(decimal.Zero)
	}
	return value.NewNumber(decimal.NewFromInt(1))
}

// isTruthy treats a nonzero number or a nonempty string as true; Empty
// is always false.
func isTruthy(v value.Value) bool {
	if d, ok := v.Number(); ok {
		return !d.IsZero()
	}
	if s, ok := v.Str(); ok {
		return s != ""
	}
	return false
}

// Concat joins as_string(arg) over every argument, propagating the first
// coercion error unchanged.
func Concat(args []value.Value) value.Value {
	var b strings.Builder
	for _, arg := range args {
		s, err := arg.AsString()
		if err != nil {
			return errorValue(err)
		}
		b.WriteString(s)
	}
	return value.NewString(b.String())
}

// Upper requires exactly one string argument and returns its uppercase form.
func Upper(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.NewError(value.Type)
	}
	s, err := args[0].AsString()
	if err != nil {
		return errorValue(err)
	}
	return value.NewString(strings.ToUpper(s))
}

// Lower requires exactly one string argument and returns its lowercase form.
func Lower(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.NewError(value.Type)
	}
	s, err := args[0].AsString()
	if err != nil {
		return errorValue(err)
	}
	return value.NewString(strings.ToLower(s))
}

// errorValue recovers the ErrorKind wrapped by a *value.CoercionError.
func errorValue(err error) value.Value {
	ce, ok := err.(*value.CoercionError)
	if !ok {
		return value.NewError(value.Type)
	}
	return value.NewError(ce.Kind)
}

// RegisterAll registers every function in this package under its
// lowercase name. Convenience for hosts that want the whole set.
func RegisterAll(s *sheet.Sheet) {
	s.SetFunction("sum", sheet.Function(Sum))
	s.SetFunction("avg", sheet.Function(Avg))
	s.SetFunction("max", sheet.Function(Max))
	s.SetFunction("min", sheet.Function(Min))
	s.SetFunction("abs", sheet.Function(Abs))
	s.SetFunction("if", sheet.Function(If))
	s.SetFunction("and", sheet.Function(And))
	s.SetFunction("or", sheet.Function(Or))
	s.SetFunction("not", sheet.Function(Not))
	s.SetFunction("concat", sheet.Function(Concat))
	s.SetFunction("upper", sheet.Function(Upper))
	s.SetFunction("lower", sheet.Function(Lower))
}
