package cellmodel

import "strings"

// BoolExpression selects how a Boolean cell's textual representation is spelled out
// when it is not using the ZeroOne fast path.
type BoolExpression int

const (
	TrueFalse BoolExpression = iota
	TF
	ZeroOne
	YesNo
	Custom
)

// CaseStrategy controls the letter case applied to a textual boolean representation.
type CaseStrategy int

const (
	Upper CaseStrategy = iota
	Lower
	FirstLetterUpper
)

// Boolean is the Boolean(bool?, expression, case) cell kind. See: the
// ZeroOne expression always takes the t="b" inline fast path and never touches the
// shared-string pool; every other expression always routes its textual form through
// the shared-string register, regardless of string length (Open Question #1,
// resolved per the spec's own test suite rather than its ambiguous prose).
type Boolean struct {
	Value *bool
	Expression BoolExpression
	Case CaseStrategy
	// TrueText/FalseText are only read when Expression == Custom.
	TrueText, FalseText string
}

// NewBoolean builds a non-null Boolean cell value with the package defaults
// (ZeroOne + Upper) unless overridden on the returned value.
func NewBoolean(v bool) Boolean {
	return Boolean{Value: &v, Expression: ZeroOne, Case: Upper}
}

func NullBoolean(expr BoolExpression, cs CaseStrategy) Boolean {
	return Boolean{Expression: expr, Case: cs}
}

func (b Boolean) text() (trueText, falseText string) {
	switch b.Expression {
	case TrueFalse:
		trueText, falseText = "True", "False"
	case TF:
		trueText, falseText = "T", "F"
	case YesNo:
		trueText, falseText = "Yes", "No"
	case Custom:
		trueText, falseText = b.TrueText, b.FalseText
	default:
		trueText, falseText = "True", "False"
	}
	return applyCase(trueText, b.Case), applyCase(falseText, b.Case)
}

func applyCase(s string, cs CaseStrategy) string {
	switch cs {
	case Upper:
		return strings.ToUpper(s)
	case Lower:
		return strings.ToLower(s)
	case FirstLetterUpper:
		if s == "" {
			return s
		}
		r := []rune(s)
		return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	default:
		return s
	}
}

func (b Boolean) Render(in Interner) Rendered {
	if b.Value == nil {
		return Rendered{}
	}
	if b.Expression == ZeroOne {
		v := "0"
		if *b.Value {
			v = "1"
		}
		return Rendered{TypeAttr: "b", Value: v}
	}
	trueText, falseText := b.text()
	text := falseText
	if *b.Value {
		text = trueText
	}
	idx := in.Intern(text)
	return Rendered{TypeAttr: "s", Value: formatUint(idx)}
}

func (b Boolean) NumberFormat() NumberFormat { return NumberFormat{Class: NumFmtNone} }
