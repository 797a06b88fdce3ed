package cellmodel

import "net/url"

// URL is the Url(Uri?) cell kind: rendered as the absolute form, XML-escaped, and
// always routed through the shared-string register when present.
type URL struct {
	Value *url.URL
}

func NewURL(u *url.URL) URL { return URL{Value: u} }
func NullURL() URL { return URL{} }

func (u URL) Render(in Interner) Rendered {
	if u.Value == nil {
		return Rendered{TypeAttr: "inlineStr", Inline: true, Value: ""}
	}
	idx := in.Intern(u.Value.String())
	return Rendered{TypeAttr: "s", Value: formatUint(idx)}
}

func (u URL) NumberFormat() NumberFormat { return NumberFormat{Class: NumFmtNone} }
