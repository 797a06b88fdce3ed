// Package column implements the typed, type-erased Column model described in
// and §9: Column[Record, Input, Output] factory functions, the
// ColumnCapability-shaped type erasure (here, direct interface satisfaction by the
// generic struct itself rather than a wrapper — Go's structural typing lets
// *Column[R, I, O] satisfy AnyColumn[R] without boxing), and the seven to…
// transform families.
package column

import (
	"net/url"
	"time"

	"github.com/turgutahmet/xlsxstream/cellmodel"
)

// Value is the closed set of seven typed column outputs, one per CellKind, each able
// to report its own nullity (for nil-policy application) and render itself as a
// cellmodel.Kind.
type Value interface {
	IsNull() bool
	ToKind() cellmodel.Kind
}

// TextValue is the column.Value backing cellmodel.Text.
type TextValue struct{ S *string }

func Text(s string) TextValue { return TextValue{S: &s} }
func NullText() TextValue { return TextValue{} }
func (v TextValue) IsNull() bool { return v.S == nil }
func (v TextValue) ToKind() cellmodel.Kind {
	if v.S == nil {
		return cellmodel.NullText()
	}
	return cellmodel.NewText(*v.S)
}

// IntValue is the column.Value backing cellmodel.Integer.
type IntValue struct{ N *int64 }

func Int(n int64) IntValue { return IntValue{N: &n} }
func NullInt() IntValue { return IntValue{} }
func (v IntValue) IsNull() bool { return v.N == nil }
func (v IntValue) ToKind() cellmodel.Kind {
	if v.N == nil {
		return cellmodel.NullInteger()
	}
	return cellmodel.NewInteger(*v.N)
}

// NumberValue is the column.Value backing cellmodel.Number.
type NumberValue struct{ N *float64 }

func Number(n float64) NumberValue { return NumberValue{N: &n} }
func NullNumber() NumberValue { return NumberValue{} }
func (v NumberValue) IsNull() bool { return v.N == nil }
func (v NumberValue) ToKind() cellmodel.Kind {
	if v.N == nil {
		return cellmodel.NullNumber()
	}
	return cellmodel.NewNumber(*v.N)
}

// PercentValue is the column.Value backing cellmodel.Percentage. N is the ratio
// (0.25 = 25%),.
type PercentValue struct {
	N *float64
	Precision uint8
}

func Percent(n float64, precision uint8) PercentValue {
	return PercentValue{N: &n, Precision: precision}
}
func NullPercent(precision uint8) PercentValue { return PercentValue{Precision: precision} }
func (v PercentValue) IsNull() bool { return v.N == nil }
func (v PercentValue) ToKind() cellmodel.Kind {
	if v.N == nil {
		return cellmodel.NullPercentage(v.Precision)
	}
	return cellmodel.NewPercentage(*v.N, v.Precision)
}

// DateValue is the column.Value backing cellmodel.Date.
type DateValue struct {
	T *time.Time
	Zone *time.Location
}

func Date(t time.Time, zone *time.Location) DateValue { return DateValue{T: &t, Zone: zone} }
func NullDate(zone *time.Location) DateValue { return DateValue{Zone: zone} }
func (v DateValue) IsNull() bool { return v.T == nil }
func (v DateValue) ToKind() cellmodel.Kind {
	if v.T == nil {
		return cellmodel.NullDate(v.Zone)
	}
	return cellmodel.NewDate(*v.T, v.Zone)
}

// BoolValue is the column.Value backing cellmodel.Boolean. Defaults to ZeroOne+Upper
// unless overridden.
type BoolValue struct {
	B *bool
	Expression cellmodel.BoolExpression
	Case cellmodel.CaseStrategy
	TrueText, FalseText string
}

func Bool(b bool) BoolValue {
	return BoolValue{B: &b, Expression: cellmodel.ZeroOne, Case: cellmodel.Upper}
}
func NullBool(expr cellmodel.BoolExpression, cs cellmodel.CaseStrategy) BoolValue {
	return BoolValue{Expression: expr, Case: cs}
}
func (v BoolValue) IsNull() bool { return v.B == nil }
func (v BoolValue) ToKind() cellmodel.Kind {
	return cellmodel.Boolean{
		Value: v.B,
		Expression: v.Expression,
		Case: v.Case,
		TrueText: v.TrueText,
		FalseText: v.FalseText,
	}
}

// URLValue is the column.Value backing cellmodel.URL.
type URLValue struct{ U *url.URL }

func URL(u *url.URL) URLValue { return URLValue{U: u} }
func NullURL() URLValue { return URLValue{} }
func (v URLValue) IsNull() bool { return v.U == nil }
func (v URLValue) ToKind() cellmodel.Kind {
	return cellmodel.URL{Value: v.U}
}
