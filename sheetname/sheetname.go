// Package sheetname implements the sheet-name sanitizer: strip a
// leading/trailing apostrophe, apply a forbidden-character strategy, fall back to a
// default name when empty, then truncate to Excel's real 31 UTF-16 code unit limit.
//
// Grounded on turgutahmet-kolayxlsxstream/xlsx.go's inline sheet-name handling
// (which just truncates to 31 runes with no forbidden-character or quote handling),
// generalized into a standalone, strategy-driven sanitizer.
package sheetname

import (
	"strings"
	"unicode/utf16"
)

const maxUTF16Units = 31

var forbidden = map[rune]bool{
	'/': true, '\\': true, '[': true, ']': true, '*': true, '?': true, ':': true,
}

// Strategy decides how a sanitizer handles Excel's forbidden characters.
type Strategy interface {
	apply(s string) string
}

// Remove strips every forbidden character outright.
type Remove struct{}

func (Remove) apply(s string) string {
	var b strings.Builder
	for _, r := range s {
		if forbidden[r] {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Replace substitutes each rune present in Map before stripping whatever forbidden
// character survives the substitution.
type Replace struct {
	Map map[rune]string
}

func (r Replace) apply(s string) string {
	var b strings.Builder
	for _, c := range s {
		if repl, ok := r.Map[c]; ok {
			b.WriteString(repl)
			continue
		}
		if forbidden[c] {
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Sanitizer turns an arbitrary proposed sheet name into one Excel will accept.
type Sanitizer struct {
	Strategy Strategy
	DefaultName string
}

// New returns a Sanitizer defaulting to Remove and "Sheet" when unset.
func New(strategy Strategy, defaultName string) Sanitizer {
	if strategy == nil {
		strategy = Remove{}
	}
	if defaultName == "" {
		defaultName = "Sheet"
	}
	return Sanitizer{Strategy: strategy, DefaultName: defaultName}
}

// Sanitize applies the order: strip a leading/trailing single
// quote, run the strategy, fall back to DefaultName if the result is empty, then
// truncate to 31 UTF-16 code units (not runes, so a non-BMP rune never silently
// overruns the real limit).
func (s Sanitizer) Sanitize(name string) string {
	name = strings.TrimPrefix(name, "'")
	name = strings.TrimSuffix(name, "'")

	name = s.Strategy.apply(name)
	if name == "" {
		name = s.DefaultName
	}

	units := utf16.Encode([]rune(name))
	if len(units) <= maxUTF16Units {
		return name
	}
	return string(utf16.Decode(units[:maxUTF16Units]))
}
