package sheet

import "github.com/turgutahmet/xlsxstream/stylesheet"

// ColumnWidth is one entry of SheetStyle.ColumnWidths: a 1-based column index maps
// to a width and whether it is a custom width. Only custom entries are emitted as
// <col> elements. Build stores a Column's own WithWidth as a custom entry, but never
// over an entry that is already custom, so a width the caller pinned on the sheet
// style wins over the column's.
type ColumnWidth struct {
	Width float64
	IsCustom bool
}

// SheetStyle is the per-sheet presentation record: default
// dimensions, per-column/per-row overrides, visibility flags, and the two style
// bases that every column/cell override folds under.
type SheetStyle struct {
	DefaultColWidth float64
	DefaultRowHeight float64
	ColumnWidths map[int]ColumnWidth // 1-based column index
	RowHeights map[int]float64 // 1-based row index
	TabColor string
	FrozenRows int
	FrozenCols int
	Zoom int
	ShowGridlines bool
	ShowHeadings bool
	ShowFormulas bool
	ShowZeros bool
	ColumnHeaderStyle stylesheet.CellStyle
	ColumnBodyStyle stylesheet.CellStyle
}

// DefaultSheetStyle matches Excel's own defaults for a freshly inserted sheet.
func DefaultSheetStyle() SheetStyle {
	return SheetStyle{
		DefaultColWidth: 8.43,
		DefaultRowHeight: 15,
		ColumnWidths: map[int]ColumnWidth{},
		RowHeights: map[int]float64{},
		Zoom: 100,
		ShowGridlines: true,
		ShowHeadings: true,
		ShowFormulas: false,
		ShowZeros: true,
	}
}

// DataRange is the A1-style occupied range computed at build time; nil when the
// sheet emitted no cells (a header row with no active columns has none).
type DataRange struct {
	StartRow, StartCol, EndRow, EndCol uint32
}

// Meta is produced once per sheet by Build and consumed by the package assembler —
// SheetMeta.
type Meta struct {
	Name string
	SheetID uint32
	RelationshipID string
	HasHeader bool
	DataRowCount int
	ActiveColumnCount int
	DataRange *DataRange
	TabColor string
	FilePath string
}
