package cellmodel

// NumFmtClass classifies the number-format a Kind requires: Percentage needs a
// custom precision-dependent code, Date needs the built-in datetime format,
// everything else needs none.
type NumFmtClass int

const (
	NumFmtNone NumFmtClass = iota
	NumFmtDate
	NumFmtPercentage
)

// NumberFormat is what a Kind reports about the number format its cell requires.
// Precision is only meaningful when Class == NumFmtPercentage.
type NumberFormat struct {
	Class NumFmtClass
	Precision uint8
}

// Interner registers a string in the shared-string pool and returns its index. It is
// the seam between cellmodel (which knows which values need sharing) and
// sharedstrings.SharedStrings (which owns the pool) without cellmodel depending on
// that package.
type Interner interface {
	Intern(s string) uint32
}

// Rendered is the fully resolved content of a <c> element's value payload.
type Rendered struct {
	// Value is either the <v> text, or (when Inline is true) the inline string text.
	Value string
	// TypeAttr is the cell's "t" attribute: "", "inlineStr", "s", or "b".
	TypeAttr string
	// Inline is true when Value belongs inside <is><t>...</t></is> rather than <v>.
	Inline bool
}

// Kind is the tagged-union interface every cell value variant implements.
type Kind interface {
	// Render produces the cell's value payload, interning shared text as needed.
	Render(in Interner) Rendered
	// NumberFormat reports the number format this kind's cells require.
	NumberFormat() NumberFormat
}

// Cell is one worksheet cell: its 1-based coordinates, its typed value, and the ids
// assigned to it by the style and shared-string registries during emission.
type Cell struct {
	Row uint32
	Col uint32
	Value Kind
	StyleID *uint32
	SharedStringID *uint32
}

// Address returns this cell's Excel reference, e.g. "B2".
func (c Cell) Address() string {
	return Address(c.Row, c.Col)
}
