package column

// The Kind-named factories below are the common case: project
// straight from Record into the target Value, with no intermediate Input type. Each
// is a thin call into New with I fixed to O.

func TextColumn[R any](name string, proj func(R) TextValue) *Column[R, TextValue, TextValue] {
	return New(name, proj, identity[TextValue])
}

func IntColumn[R any](name string, proj func(R) IntValue) *Column[R, IntValue, IntValue] {
	return New(name, proj, identity[IntValue])
}

func NumberColumn[R any](name string, proj func(R) NumberValue) *Column[R, NumberValue, NumberValue] {
	return New(name, proj, identity[NumberValue])
}

func PercentColumn[R any](name string, proj func(R) PercentValue) *Column[R, PercentValue, PercentValue] {
	return New(name, proj, identity[PercentValue])
}

func DateColumn[R any](name string, proj func(R) DateValue) *Column[R, DateValue, DateValue] {
	return New(name, proj, identity[DateValue])
}

func BoolColumn[R any](name string, proj func(R) BoolValue) *Column[R, BoolValue, BoolValue] {
	return New(name, proj, identity[BoolValue])
}

func URLColumn[R any](name string, proj func(R) URLValue) *Column[R, URLValue, URLValue] {
	return New(name, proj, identity[URLValue])
}

func identity[V Value](v V) V { return v }
