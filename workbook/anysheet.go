package workbook

import (
	"context"

	"github.com/turgutahmet/xlsxstream/sharedstrings"
	"github.com/turgutahmet/xlsxstream/sheet"
	"github.com/turgutahmet/xlsxstream/stylesheet"
)

// AnySheet is the type-erased view of a sheet.Sheet[R] a Workbook holds, needed
// because a single workbook can mix sheets over different record types. A method
// cannot itself carry the type parameter R, so erasure happens through a small
// adapter instead of a wrapper generic over the Workbook.
type AnySheet interface {
	Name() string
	SetName(name string)
	LoadData(ctx context.Context) error
	Build(sheetID uint32, relID string, ss *stylesheet.StyleSheet, strs *sharedstrings.SharedStrings) ([]byte, sheet.Meta, error)
}

type sheetAdapter[R any] struct {
	sheet *sheet.Sheet[R]
}

func (a sheetAdapter[R]) Name() string { return a.sheet.Name }

func (a sheetAdapter[R]) SetName(name string) { a.sheet.Name = name }

func (a sheetAdapter[R]) LoadData(ctx context.Context) error { return a.sheet.LoadData(ctx) }

func (a sheetAdapter[R]) Build(sheetID uint32, relID string, ss *stylesheet.StyleSheet, strs *sharedstrings.SharedStrings) ([]byte, sheet.Meta, error) {
	return a.sheet.Build(sheetID, relID, ss, strs)
}

// AddSheet appends s to wb in declaration order. Sheet names are not checked for
// collisions here: sanitization and uniqueness are the caller's responsibility, per
// the sheet-name sanitizer's pure-function contract — a Workbook with two sheets
// sanitizing to the same name will happily emit a package with a duplicate
// <sheet name=...> entry.
//
// AddSheet is a free function, not a method, because Go methods cannot introduce
// their own type parameters.
func AddSheet[R any](wb *Workbook, s *sheet.Sheet[R]) *Workbook {
	wb.sheets = append(wb.sheets, sheetAdapter[R]{sheet: s})
	return wb
}
