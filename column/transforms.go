package column

import (
	"net/url"
	"strconv"
	"time"
)

// The to... family lets a caller retarget an already-built column to a different
// cell kind without re-deriving Input from Record: each transform closes over the
// source column's full projection -> mapping -> conditional -> nil-policy
// resolution (c.value) and treats its resolved Output as its own Input.
//
// describes this as a closure taking either a guaranteed-non-null Output
// or a nullable one depending on the source column's own nil policy. Go generics
// can't usefully distinguish those two shapes without a redundant wrapper type that
// buys no real safety here, so every transform below takes a single
// func(O) TargetValue signature and applies it uniformly; a transform fn that wants
// to special-case nulls inspects O.IsNull itself.

// ToString retargets a column to TextValue.
func (c *Column[R, I, O]) ToString(fn func(O) TextValue) *Column[R, O, TextValue] {
	return &Column[R, O, TextValue]{
		name: c.name,
		projection: c.value,
		mapping: fn,
		nilPolicy: NilPolicy[TextValue]{Kind: KeepEmpty},
	}
}

// ToInt retargets a column to IntValue.
func (c *Column[R, I, O]) ToInt(fn func(O) IntValue) *Column[R, O, IntValue] {
	return &Column[R, O, IntValue]{
		name: c.name,
		projection: c.value,
		mapping: fn,
		nilPolicy: NilPolicy[IntValue]{Kind: KeepEmpty},
	}
}

// ToDouble retargets a column to NumberValue.
func (c *Column[R, I, O]) ToDouble(fn func(O) NumberValue) *Column[R, O, NumberValue] {
	return &Column[R, O, NumberValue]{
		name: c.name,
		projection: c.value,
		mapping: fn,
		nilPolicy: NilPolicy[NumberValue]{Kind: KeepEmpty},
	}
}

// ToPercentage retargets a column to PercentValue.
func (c *Column[R, I, O]) ToPercentage(fn func(O) PercentValue) *Column[R, O, PercentValue] {
	return &Column[R, O, PercentValue]{
		name: c.name,
		projection: c.value,
		mapping: fn,
		nilPolicy: NilPolicy[PercentValue]{Kind: KeepEmpty},
	}
}

// ToBool retargets a column to BoolValue.
func (c *Column[R, I, O]) ToBool(fn func(O) BoolValue) *Column[R, O, BoolValue] {
	return &Column[R, O, BoolValue]{
		name: c.name,
		projection: c.value,
		mapping: fn,
		nilPolicy: NilPolicy[BoolValue]{Kind: KeepEmpty},
	}
}

// ToDate retargets a column to DateValue.
func (c *Column[R, I, O]) ToDate(fn func(O) DateValue) *Column[R, O, DateValue] {
	return &Column[R, O, DateValue]{
		name: c.name,
		projection: c.value,
		mapping: fn,
		nilPolicy: NilPolicy[DateValue]{Kind: KeepEmpty},
	}
}

// ToURL retargets a column to URLValue.
func (c *Column[R, I, O]) ToURL(fn func(O) URLValue) *Column[R, O, URLValue] {
	return &Column[R, O, URLValue]{
		name: c.name,
		projection: c.value,
		mapping: fn,
		nilPolicy: NilPolicy[URLValue]{Kind: KeepEmpty},
	}
}

// Convenience transform fns for the common conversions.

// IntToString renders a non-null int with strconv, passing nulls through.
func IntToString(v IntValue) TextValue {
	if v.N == nil {
		return NullText()
	}
	return Text(strconv.FormatInt(*v.N, 10))
}

// NumberToString renders a non-null float with strconv, passing nulls through.
func NumberToString(v NumberValue) TextValue {
	if v.N == nil {
		return NullText()
	}
	return Text(strconv.FormatFloat(*v.N, 'g', -1, 64))
}

// DateToString formats a non-null date with the given layout, passing nulls through.
func DateToString(layout string) func(DateValue) TextValue {
	return func(v DateValue) TextValue {
		if v.T == nil {
			return NullText()
		}
		return Text(v.T.Format(layout))
	}
}

// StringToURL parses a non-null string as a URL, treating a parse failure as null.
func StringToURL(v TextValue) URLValue {
	if v.S == nil {
		return NullURL()
	}
	u, err := url.Parse(*v.S)
	if err != nil {
		return NullURL()
	}
	return URL(u)
}

// RatioToPercentage wraps a NumberValue as a PercentValue at the given precision.
func RatioToPercentage(precision uint8) func(NumberValue) PercentValue {
	return func(v NumberValue) PercentValue {
		if v.N == nil {
			return NullPercent(precision)
		}
		return Percent(*v.N, precision)
	}
}

// TimeAtZone re-anchors a DateValue's zone without changing the instant.
func TimeAtZone(zone *time.Location) func(DateValue) DateValue {
	return func(v DateValue) DateValue {
		if v.T == nil {
			return NullDate(zone)
		}
		return Date(*v.T, zone)
	}
}
