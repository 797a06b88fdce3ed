package cellmodel

import "strings"

// escapeXML escapes the five predefined XML entities. Hand-rolled instead of calling
// encoding/xml.EscapeText because only these five entities, in this mapping, are
// wanted (no numeric character reference substitution for control characters) —
// matching xlsx.go's escapeXML, itself a thin wrapper over xml.EscapeText for the
// same five entities.
func escapeXML(s string) string {
	if !strings.ContainsAny(s, "&<>\"'") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
