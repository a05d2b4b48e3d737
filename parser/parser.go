// Package parser implements the combinator-style recognizer that turns
// cell input text into a formula.Formula: either a bare literal (plain
// input) or an expression tree (input beginning with "=").
package parser

import (
	"strings"

	"github.com/foldwave/sheetcalc/address"
	"github.com/foldwave/sheetcalc/formula"
	"github.com/foldwave/sheetcalc/value"
)

// Parse recognizes cell input text and returns the Formula it denotes, per
// the grammar in spec.md §4.1. On failure it returns an *Error carrying the
// byte offset parsing stopped at; the sheet is left untouched by the
// caller in that case.
func Parse(input string) (formula.Formula, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return formula.Empty(), nil
	}
	if trimmed[0] == '=' {
		return parseFormula(trimmed)
	}
	return parsePlainValue(trimmed)
}

// parseFormula parses the expression following a leading "=".
func parseFormula(trimmed string) (formula.Formula, error) {
	lx := newLexer(trimmed)
	lx.pos = 1 // skip the leading "=", keeping token offsets relative to trimmed
	tokens, err := lx.tokenize()
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, input: trimmed}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		return nil, invalid(trimmed, p.currentPos())
	}
	return formula.Expression{Expr: expr}, nil
}

// parsePlainValue parses non-formula input: a number literal tried first,
// then a quoted string; anything else is a parse error.
func parsePlainValue(trimmed string) (formula.Formula, error) {
	tokens, err := newLexer(trimmed).tokenize()
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, input: trimmed}

	switch p.peek().typ {
	case tokNumber, tokString:
		v, err := p.parseLiteralValue()
		if err != nil {
			return nil, err
		}
		if !p.atEOF() {
			return nil, invalid(trimmed, p.currentPos())
		}
		return formula.Literal{Value: v}, nil
	default:
		return nil, invalid(trimmed, 0)
	}
}

// parser consumes the token stream produced by the lexer, one expression
// at a time.
type parser struct {
	tokens []token
	pos    int
	input  string
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) advance() token {
	t := p.tokens[p.pos]
	if t.typ != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) atEOF() bool { return p.peek().typ == tokEOF }

func (p *parser) currentPos() int { return p.peek().pos }

// parseExpression parses a reference, literal, or call: the grammar has no
// operators, so there is exactly one precedence level.
func (p *parser) parseExpression() (formula.Expr, error) {
	switch p.peek().typ {
	case tokNumber, tokString:
		v, err := p.parseLiteralValue()
		if err != nil {
			return nil, err
		}
		return formula.ExprLiteral{Value: v}, nil
	case tokWord:
		return p.parseWordExpr()
	default:
		return nil, invalid(p.input, p.currentPos())
	}
}

// parseLiteralValue parses a number or string token into a Value.
func (p *parser) parseLiteralValue() (value.Value, error) {
	t := p.advance()
	switch t.typ {
	case tokNumber:
		d, ok := decodeNumber(t.val)
		if !ok {
			return value.Value{}, invalid(p.input, t.pos)
		}
		return value.NewNumber(d), nil
	case tokString:
		return value.NewString(t.val), nil
	default:
		return value.Value{}, invalid(p.input, t.pos)
	}
}

// parseWordExpr disambiguates an identifier-shaped token into a call (when
// followed immediately by "(") or a cell reference (when its own text
// parses as a column-letters/row-digits address); anything else is a
// parse error, since this grammar has no bare-identifier expressions.
func (p *parser) parseWordExpr() (formula.Expr, error) {
	t := p.advance()
	if p.peek().typ == tokLParen {
		return p.parseCall(t)
	}
	if addr, err := address.ParseCell(t.val); err == nil {
		return formula.Reference{Addr: addr}, nil
	}
	return nil, invalid(p.input, t.pos)
}

// parseCall parses the "(" arg_list ")" following a function name already
// consumed into name.
func (p *parser) parseCall(name token) (formula.Expr, error) {
	p.advance() // "("

	var args []formula.Expr
	if p.peek().typ != tokRParen {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.peek().typ != tokComma {
				break
			}
			p.advance() // ","
			if p.peek().typ == tokRParen {
				break // trailing comma
			}
		}
	}

	if p.peek().typ != tokRParen {
		return nil, invalid(p.input, p.currentPos())
	}
	p.advance() // ")"

	return formula.Call{Name: name.val, Args: args}, nil
}
