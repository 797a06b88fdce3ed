// Package stylesheet implements the Style Register: five
// deduplicated pools (fonts, fills, borders, alignments, number formats) composed into
// a sixth pool of resolved <xf> records, plus styles.xml emission.
//
// Grounded on the static stylesXML template in
// turgutahmet-kolayxlsxstream/xlsx.go (which hardcodes a single default font/fill/
// border/cellXfs entry) generalized into a real dedup registry.
package stylesheet

import (
	"fmt"
	"strings"

	"github.com/turgutahmet/xlsxstream/cellmodel"
	"github.com/turgutahmet/xlsxstream/registry"
)

// Font, Fill, Border, and Alignment are plain comparable value types so that
// registry.Registry can dedup them by structural equality,
// "identity-by-value contract".
type Font struct {
	Set bool
	Name string
	Size float64
	Bold bool
	Italic bool
	Underline bool
	ColorARGB string
}

type Fill struct {
	Set bool
	PatternType string // "solid", "none",...
	FgColorARGB string
	BgColorARGB string
}

type BorderLine struct {
	Style string // "thin", "medium",...
	ColorARGB string
}

type Border struct {
	Set bool
	Left, Right, Top, Bottom, Diagonal BorderLine
}

type Alignment struct {
	Set bool
	Horizontal string // "left", "center", "right",...
	Vertical string // "top", "center", "bottom"
	WrapText bool
	TextRotation int
	Indent int
}

// CellStyle is the CellStyle: four optional (Set-flagged) sub-records.
type CellStyle struct {
	Font Font
	Fill Fill
	Alignment Alignment
	Border Border
}

// Merge folds override over base: a Set sub-record in override replaces base's,
// an unset one preserves base's value. This is the explicit left-to-right fold
// calls for, used by callers to chain
// Merge(Merge(Merge(sheetDefault, columnOverride), cellOverride)).
func Merge(base, override CellStyle) CellStyle {
	out := base
	if override.Font.Set {
		out.Font = override.Font
	}
	if override.Fill.Set {
		out.Fill = override.Fill
	}
	if override.Alignment.Set {
		out.Alignment = override.Alignment
	}
	if override.Border.Set {
		out.Border = override.Border
	}
	return out
}

type resolvedXf struct {
	FontID, FillID, BorderID, AlignID, NumFmtID uint32
	HasAlignment bool
}

// StyleSheet is the global style register for one workbook build.
type StyleSheet struct {
	fonts *registry.Registry[Font]
	fills *registry.Registry[Fill]
	borders *registry.Registry[Border]
	alignments *registry.Registry[Alignment]
	numFmts *registry.Registry[string] // custom format codes, id = 164+index
	resolved *registry.Registry[resolvedXf]
}

const firstCustomNumFmtID = 164
const builtinDateNumFmtID = 22

// New returns a StyleSheet with every pool's default (index 0) entry already
// present, "default entry is always present even when the caller
// registered none".
func New() *StyleSheet {
	s := &StyleSheet{
		fonts: registry.New[Font](),
		fills: registry.New[Fill](),
		borders: registry.New[Border](),
		alignments: registry.New[Alignment](),
		numFmts: registry.New[string](),
		resolved: registry.New[resolvedXf](),
	}
	s.fonts.Append(Font{})
	s.fills.Append(Fill{})
	s.borders.Append(Border{})
	s.alignments.Append(Alignment{})
	s.resolved.Append(resolvedXf{})
	return s
}

// numFmtID resolves pure function of CellKind to a numFmtId.
func (s *StyleSheet) numFmtID(kind cellmodel.Kind) uint32 {
	if kind == nil {
		return 0
	}
	nf := kind.NumberFormat()
	switch nf.Class {
	case cellmodel.NumFmtDate:
		return builtinDateNumFmtID
	case cellmodel.NumFmtPercentage:
		code := "0." + strings.Repeat("0", int(nf.Precision)+2) + "%"
		idx, _ := s.numFmts.Append(code)
		return firstCustomNumFmtID + idx
	default:
		return 0
	}
}

// Register composes style with the number format kind implies and returns the
// resulting cellXfs index.
func (s *StyleSheet) Register(style CellStyle, kind cellmodel.Kind) uint32 {
	fontID, _ := s.fonts.Append(style.Font)
	fillID, _ := s.fills.Append(style.Fill)
	borderID, _ := s.borders.Append(style.Border)
	alignID, _ := s.alignments.Append(style.Alignment)
	rec := resolvedXf{
		FontID: fontID,
		FillID: fillID,
		BorderID: borderID,
		AlignID: alignID,
		NumFmtID: s.numFmtID(kind),
		HasAlignment: style.Alignment.Set,
	}
	idx, _ := s.resolved.Append(rec)
	return idx
}

// WriteXML emits styles.xml with the seven sections in the mandated order.
func (s *StyleSheet) WriteXML() []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<styleSheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">` + "\n")

	customFmts := s.numFmts.All()
	fmt.Fprintf(&b, `<numFmts count="%d">`, len(customFmts))
	for i, code := range customFmts {
		fmt.Fprintf(&b, `<numFmt numFmtId="%d" formatCode="%s"/>`, firstCustomNumFmtID+i, cellmodel.EscapeXML(code))
	}
	b.WriteString("</numFmts>\n")

	fonts := s.fonts.All()
	fmt.Fprintf(&b, `<fonts count="%d">`, len(fonts))
	for _, f := range fonts {
		writeFontXML(&b, f)
	}
	b.WriteString("</fonts>\n")

	fills := s.fills.All()
	fmt.Fprintf(&b, `<fills count="%d">`, len(fills))
	for _, f := range fills {
		writeFillXML(&b, f)
	}
	b.WriteString("</fills>\n")

	borders := s.borders.All()
	fmt.Fprintf(&b, `<borders count="%d">`, len(borders))
	for _, br := range borders {
		writeBorderXML(&b, br)
	}
	b.WriteString("</borders>\n")

	b.WriteString(`<cellStyleXfs count="1"><xf numFmtId="0" fontId="0" fillId="0" borderId="0"/></cellStyleXfs>` + "\n")

	resolved := s.resolved.All()
	fmt.Fprintf(&b, `<cellXfs count="%d">`, len(resolved))
	for _, r := range resolved {
		align := s.alignments.At(r.AlignID)
		applyAlign := ""
		alignEl := ""
		if align.Set {
			applyAlign = ` applyAlignment="1"`
			alignEl = fmt.Sprintf(`<alignment horizontal="%s" vertical="%s" wrapText="%s" textRotation="%d" indent="%d"/>`,
				align.Horizontal, align.Vertical, boolAttr(align.WrapText), align.TextRotation, align.Indent)
		}
		applyFmt := ""
		if r.NumFmtID != 0 {
			applyFmt = ` applyNumberFormat="1"`
		}
		if alignEl == "" {
			fmt.Fprintf(&b, `<xf numFmtId="%d" fontId="%d" fillId="%d" borderId="%d" xfId="0"%s%s/>`,
				r.NumFmtID, r.FontID, r.FillID, r.BorderID, applyFmt, applyAlign)
		} else {
			fmt.Fprintf(&b, `<xf numFmtId="%d" fontId="%d" fillId="%d" borderId="%d" xfId="0"%s%s>%s</xf>`,
				r.NumFmtID, r.FontID, r.FillID, r.BorderID, applyFmt, applyAlign, alignEl)
		}
	}
	b.WriteString("</cellXfs>\n")

	b.WriteString(`<cellStyles count="1"><cellStyle name="Normal" xfId="0" builtinId="0"/></cellStyles>` + "\n")
	b.WriteString("</styleSheet>")
	return []byte(b.String())
}

func boolAttr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func writeFontXML(b *strings.Builder, f Font) {
	b.WriteString("<font>")
	size := f.Size
	if size == 0 {
		size = 11
	}
	fmt.Fprintf(b, `<sz val="%g"/>`, size)
	if f.ColorARGB != "" {
		fmt.Fprintf(b, `<color rgb="%s"/>`, f.ColorARGB)
	}
	name := f.Name
	if name == "" {
		name = "Calibri"
	}
	fmt.Fprintf(b, `<name val="%s"/>`, cellmodel.EscapeXML(name))
	if f.Bold {
		b.WriteString("<b/>")
	}
	if f.Italic {
		b.WriteString("<i/>")
	}
	if f.Underline {
		b.WriteString("<u/>")
	}
	b.WriteString("</font>")
}

func writeFillXML(b *strings.Builder, f Fill) {
	pattern := f.PatternType
	if pattern == "" {
		pattern = "none"
	}
	b.WriteString("<fill><patternFill patternType=\"" + pattern + "\"")
	if f.FgColorARGB == "" && f.BgColorARGB == "" {
		b.WriteString("/></fill>")
		return
	}
	b.WriteString(">")
	if f.FgColorARGB != "" {
		fmt.Fprintf(b, `<fgColor rgb="%s"/>`, f.FgColorARGB)
	}
	if f.BgColorARGB != "" {
		fmt.Fprintf(b, `<bgColor rgb="%s"/>`, f.BgColorARGB)
	}
	b.WriteString("</patternFill></fill>")
}

func writeBorderXML(b *strings.Builder, br Border) {
	b.WriteString("<border>")
	writeBorderLine(b, "left", br.Left)
	writeBorderLine(b, "right", br.Right)
	writeBorderLine(b, "top", br.Top)
	writeBorderLine(b, "bottom", br.Bottom)
	writeBorderLine(b, "diagonal", br.Diagonal)
	b.WriteString("</border>")
}

func writeBorderLine(b *strings.Builder, name string, line BorderLine) {
	if line.Style == "" {
		fmt.Fprintf(b, "<%s/>", name)
		return
	}
	fmt.Fprintf(b, `<%s style="%s">`, name, line.Style)
	if line.ColorARGB != "" {
		fmt.Fprintf(b, `<color rgb="%s"/>`, line.ColorARGB)
	}
	fmt.Fprintf(b, "</%s>", name)
}
