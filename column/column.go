package column

import "github.com/turgutahmet/xlsxstream/cellmodel"

// NilPolicyKind selects how a Column post-processes a null Output,.
type NilPolicyKind int

const (
	KeepEmpty NilPolicyKind = iota
	DefaultValue
)

// NilPolicy pairs a policy kind with the default to substitute when it's
// DefaultValue. KeepEmpty policies ignore Default.
type NilPolicy[O Value] struct {
	Kind NilPolicyKind
	Default O
}

// Conditional is the optional (pred, then, else) triple: evaluated
// at cell-generation time, orthogonal to Visibility and NilPolicy.
type Conditional[R any, I any, O Value] struct {
	Pred func(R) bool
	Then func(I) O
	Else func(I) O
}

// Column is a typed projection Record -> CellValue: Record R through Input I to
// Output O, carrying presentation and policy metadata. *Column[R, I, O] satisfies
// AnyColumn[R] directly (see anycolumn.go) — this is the type erasure
// calls for, achieved through Go's structural interfaces rather than a boxed wrapper.
type Column[R any, I any, O Value] struct {
	name string
	width *uint32
	bodyStyle *CellStyleOverride
	headerStyle *CellStyleOverride
	projection func(R) I
	mapping func(I) O
	nilPolicy NilPolicy[O]
	conditional *Conditional[R, I, O]
	visibility func(R) bool
}

// CellStyleOverride is an opaque style payload; column does not depend on stylesheet
// directly to avoid a needless import for the common case of style-less columns. It
// is populated and read by the sheet package, which does own that dependency.
type CellStyleOverride struct {
	Value any
}

// New builds a Column from its three defining pieces. Kind-specific constructors
// (TextColumn, IntColumn,...) are thin wrappers that fix I == O for the common case
// of "project straight into the target kind, no extra mapping step".
func New[R any, I any, O Value](name string, projection func(R) I, mapping func(I) O) *Column[R, I, O] {
	return &Column[R, I, O]{
		name: name,
		projection: projection,
		mapping: mapping,
		nilPolicy: NilPolicy[O]{Kind: KeepEmpty},
	}
}

// clone returns a shallow copy so builder methods never mutate a shared Column.
func (c *Column[R, I, O]) clone() *Column[R, I, O] {
	cp := *c
	return &cp
}

func (c *Column[R, I, O]) WithWidth(w uint32) *Column[R, I, O] {
	cp := c.clone()
	cp.width = &w
	return cp
}

func (c *Column[R, I, O]) WithBodyStyle(style any) *Column[R, I, O] {
	cp := c.clone()
	cp.bodyStyle = &CellStyleOverride{Value: style}
	return cp
}

func (c *Column[R, I, O]) WithHeaderStyle(style any) *Column[R, I, O] {
	cp := c.clone()
	cp.headerStyle = &CellStyleOverride{Value: style}
	return cp
}

func (c *Column[R, I, O]) WithNilPolicy(p NilPolicy[O]) *Column[R, I, O] {
	cp := c.clone()
	cp.nilPolicy = p
	return cp
}

// When sets the visibility predicate : false suppresses generation for
// that record but the column still occupies a grid position.
func (c *Column[R, I, O]) When(visible func(R) bool) *Column[R, I, O] {
	cp := c.clone()
	cp.visibility = visible
	return cp
}

// If attaches a conditional mapping, orthogonal to nil-policy and visibility.
func (c *Column[R, I, O]) If(pred func(R) bool, then, els func(I) O) *Column[R, I, O] {
	cp := c.clone()
	cp.conditional = &Conditional[R, I, O]{Pred: pred, Then: then, Else: els}
	return cp
}

// value evaluates projection -> conditional/mapping -> nil-policy for one record,
// returning the Output regardless of visibility. Shared by Emit and by the to...
// transform factories (which treat a source column's resolved Output as their own
// Input).
func (c *Column[R, I, O]) value(r R) O {
	input := c.projection(r)
	var out O
	if c.conditional != nil {
		if c.conditional.Pred(r) {
			out = c.conditional.Then(input)
		} else {
			out = c.conditional.Else(input)
		}
	} else {
		out = c.mapping(input)
	}
	if c.nilPolicy.Kind == DefaultValue && out.IsNull() {
		out = c.nilPolicy.Default
	}
	return out
}

// Name implements AnyColumn.
func (c *Column[R, I, O]) Name() string { return c.name }

// Width implements AnyColumn.
func (c *Column[R, I, O]) Width() (uint32, bool) {
	if c.width == nil {
		return 0, false
	}
	return *c.width, true
}

// BodyStyle implements AnyColumn.
func (c *Column[R, I, O]) BodyStyle() *CellStyleOverride { return c.bodyStyle }

// HeaderStyle implements AnyColumn.
func (c *Column[R, I, O]) HeaderStyle() *CellStyleOverride { return c.headerStyle }

// ShouldEmit implements AnyColumn: the visibility predicate, defaulting to always
// visible.
func (c *Column[R, I, O]) ShouldEmit(r R) bool {
	if c.visibility == nil {
		return true
	}
	return c.visibility(r)
}

// Emit implements AnyColumn: fully applies projection -> mapping -> conditional ->
// nil-policy -> cellmodel packaging. Total — never aborts,.
func (c *Column[R, I, O]) Emit(r R, row, col uint32) cellmodel.Cell {
	out := c.value(r)
	return cellmodel.Cell{Row: row, Col: col, Value: out.ToKind()}
}
