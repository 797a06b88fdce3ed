package sheet

import (
	"fmt"
	"strings"

	"github.com/turgutahmet/xlsxstream/cellmodel"
	"github.com/turgutahmet/xlsxstream/column"
	"github.com/turgutahmet/xlsxstream/sharedstrings"
	"github.com/turgutahmet/xlsxstream/stylesheet"
)

func cellStyleOf(o *column.CellStyleOverride) stylesheet.CellStyle {
	if o == nil {
		return stylesheet.CellStyle{}
	}
	if cs, ok := o.Value.(stylesheet.CellStyle); ok {
		return cs
	}
	return stylesheet.CellStyle{}
}

// Build runs the sheet assembler algorithm: resolve active
// columns, emit the header row (if any) and every data row, registering text and
// styles into the shared global pools, propagate column widths, and serialize
// sheetN.xml. Requires LoadData to have already run.
func (s *Sheet[R]) Build(sheetID uint32, relID string, ss *stylesheet.StyleSheet, strs *sharedstrings.SharedStrings) ([]byte, Meta, error) {
	active := s.resolveActiveColumns()

	var sheetData strings.Builder
	var dataRange *DataRange
	row := uint32(1)

	touch := func(r, c uint32) {
		if dataRange == nil {
			dataRange = &DataRange{StartRow: r, StartCol: c, EndRow: r, EndCol: c}
			return
		}
		if r < dataRange.StartRow {
			dataRange.StartRow = r
		}
		if c < dataRange.StartCol {
			dataRange.StartCol = c
		}
		if r > dataRange.EndRow {
			dataRange.EndRow = r
		}
		if c > dataRange.EndCol {
			dataRange.EndCol = c
		}
	}

	if s.HasHeader {
		writeRowOpen(&sheetData, row, s.Style.RowHeights[int(row)])
		for pos, colIdx := range active {
			col := s.Columns[colIdx]
			style := stylesheet.Merge(s.Style.ColumnHeaderStyle, cellStyleOf(col.HeaderStyle()))
			c := uint32(pos + 1)
			cell := cellmodel.Cell{Row: row, Col: c, Value: cellmodel.NewText(col.Name())}
			styleID := ss.Register(style, cell.Value)
			cell.StyleID = &styleID
			writeCellXML(&sheetData, cell, strs)
			touch(row, c)
		}
		sheetData.WriteString("</row>\n")
		row++
	}

	for _, record := range s.loaded {
		writeRowOpen(&sheetData, row, s.Style.RowHeights[int(row)])
		for pos, colIdx := range active {
			col := s.Columns[colIdx]
			style := stylesheet.Merge(s.Style.ColumnBodyStyle, cellStyleOf(col.BodyStyle()))
			c := uint32(pos + 1)
			cell := col.Emit(record, row, c)
			styleID := ss.Register(style, cell.Value)
			cell.StyleID = &styleID
			writeCellXML(&sheetData, cell, strs)
			touch(row, c)
		}
		sheetData.WriteString("</row>\n")
		row++
	}

	// Column-width propagation: a column's own width only takes effect over an
	// emitted (active) column position, and only when the sheet style has not
	// already pinned an explicit width there (step 6).
	for pos, colIdx := range active {
		w, ok := s.Columns[colIdx].Width()
		if !ok {
			continue
		}
		idx := pos + 1
		if existing, present := s.Style.ColumnWidths[idx]; present && existing.IsCustom {
			continue
		}
		s.Style.ColumnWidths[idx] = ColumnWidth{Width: float64(w), IsCustom: true}
	}

	body := buildSheetXML(s, active, sheetData.String(), dataRange)

	meta := Meta{
		Name: s.Name,
		SheetID: sheetID,
		RelationshipID: relID,
		HasHeader: s.HasHeader,
		DataRowCount: len(s.loaded),
		ActiveColumnCount: len(active),
		DataRange: dataRange,
		TabColor: s.Style.TabColor,
		FilePath: fmt.Sprintf("xl/worksheets/sheet%d.xml", sheetID),
	}
	return body, meta, nil
}

func writeRowOpen(b *strings.Builder, row uint32, height float64) {
	if height > 0 {
		fmt.Fprintf(b, `<row r="%d" ht="%g" customHeight="1">`, row, height)
		return
	}
	fmt.Fprintf(b, `<row r="%d">`, row)
}

func writeCellXML(b *strings.Builder, cell cellmodel.Cell, in cellmodel.Interner) {
	rendered := cell.Value.Render(in)
	addr := cell.Address()

	styleAttr := ""
	if cell.StyleID != nil && *cell.StyleID != 0 {
		styleAttr = fmt.Sprintf(` s="%d"`, *cell.StyleID)
	}

	if rendered.Value == "" {
		fmt.Fprintf(b, `<c r="%s"%s/>`, addr, styleAttr)
		return
	}
	if rendered.Inline {
		fmt.Fprintf(b, `<c r="%s"%s t="inlineStr"><is><t xml:space="preserve">%s</t></is></c>`,
			addr, styleAttr, cellmodel.EscapeXML(rendered.Value))
		return
	}
	typeAttr := ""
	if rendered.TypeAttr != "" {
		typeAttr = fmt.Sprintf(` t="%s"`, rendered.TypeAttr)
	}
	fmt.Fprintf(b, `<c r="%s"%s%s><v>%s</v></c>`, addr, styleAttr, typeAttr, rendered.Value)
}

func buildSheetXML[R any](s *Sheet[R], active []int, sheetData string, dr *DataRange) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">` + "\n")

	dim := "A1"
	if dr != nil {
		dim = cellmodel.Address(dr.StartRow, dr.StartCol) + ":" + cellmodel.Address(dr.EndRow, dr.EndCol)
	}
	fmt.Fprintf(&b, `<dimension ref="%s"/>`, dim)
	b.WriteString("\n")

	b.WriteString(`<sheetViews><sheetView`)
	if !s.Style.ShowGridlines {
		b.WriteString(` showGridLines="0"`)
	}
	if !s.Style.ShowHeadings {
		b.WriteString(` showRowColHeaders="0"`)
	}
	if s.Style.Zoom != 0 && s.Style.Zoom != 100 {
		fmt.Fprintf(&b, ` zoomScale="%d"`, s.Style.Zoom)
	}
	b.WriteString(` workbookViewId="0">`)
	if s.Style.FrozenRows > 0 || s.Style.FrozenCols > 0 {
		fmt.Fprintf(&b, `<pane xSplit="%d" ySplit="%d" topLeftCell="%s" activePane="bottomRight" state="frozen"/>`,
			s.Style.FrozenCols, s.Style.FrozenRows,
			cellmodel.Address(uint32(s.Style.FrozenRows+1), uint32(s.Style.FrozenCols+1)))
	}
	b.WriteString(`</sheetView></sheetViews>` + "\n")

	fmt.Fprintf(&b, `<sheetFormatPr defaultRowHeight="%g" defaultColWidth="%g"/>`,
		s.Style.DefaultRowHeight, s.Style.DefaultColWidth)
	b.WriteString("\n")

	if len(s.Style.ColumnWidths) > 0 {
		b.WriteString("<cols>")
		for _, idx := range sortedWidthKeys(s.Style.ColumnWidths) {
			cw := s.Style.ColumnWidths[idx]
			if !cw.IsCustom {
				continue
			}
			fmt.Fprintf(&b, `<col min="%d" max="%d" width="%g" customWidth="1"/>`, idx, idx, cw.Width)
		}
		b.WriteString("</cols>\n")
	}

	b.WriteString("<sheetData>\n")
	b.WriteString(sheetData)
	b.WriteString("</sheetData>\n")

	if s.Style.TabColor != "" {
		fmt.Fprintf(&b, `<sheetPr><tabColor rgb="%s"/></sheetPr>`, s.Style.TabColor)
		b.WriteString("\n")
	}

	b.WriteString("</worksheet>")
	return []byte(b.String())
}

func sortedWidthKeys(m map[int]ColumnWidth) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
