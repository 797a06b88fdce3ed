package cellmodel

// Text is the Text(String?) cell kind: inline or shared-string encoded, XML-escaped
// on emit.
type Text struct {
	Value *string
}

// NewText builds a non-null Text cell value.
func NewText(s string) Text { return Text{Value: &s} }

// NullText builds a null Text cell value.
func NullText() Text { return Text{} }

func (t Text) Render(in Interner) Rendered {
	if t.Value == nil {
		return Rendered{TypeAttr: "inlineStr", Inline: true, Value: ""}
	}
	idx := in.Intern(*t.Value)
	return Rendered{TypeAttr: "s", Value: formatUint(idx)}
}

func (t Text) NumberFormat() NumberFormat { return NumberFormat{Class: NumFmtNone} }

// EscapeXML is exported for use by packages that must XML-escape cell/shared-string
// text (sharedstrings, ooxmlpkg) using the exact same five-entity rule as cell
// rendering.
func EscapeXML(s string) string { return escapeXML(s) }
