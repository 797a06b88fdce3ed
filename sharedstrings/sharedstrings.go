// Package sharedstrings implements the shared-string pool:
// a deduplicated set of every string appearing in a cell whose encoding benefits from
// indirection, plus sharedStrings.xml emission.
//
// Grounded on turgutahmet-kolayxlsxstream/xlsx.go's worksheetHeader/Footer string
// constants and the dedup-map pattern in other_examples/8a29c8b4_psmithuk-xlsx__xlsx.go.go's
// Sheet.AppendRow, generalized into a standalone registry.Registry[string]-backed type.
package sharedstrings

import (
	"fmt"
	"io"
	"strings"

	"github.com/turgutahmet/xlsxstream/cellmodel"
	"github.com/turgutahmet/xlsxstream/registry"
)

// SharedStrings is the global shared-string pool for one workbook build. It
// implements cellmodel.Interner.
type SharedStrings struct {
	pool *registry.Registry[string]
	totalRefs uint64
}

// New returns an empty pool.
func New() *SharedStrings {
	return &SharedStrings{pool: registry.New[string]()}
}

// Intern registers s (regardless of whether it was already present) and returns its
// index. Every call increments the total-reference counter used for sharedStrings.xml's
// count attribute,.
func (s *SharedStrings) Intern(str string) uint32 {
	idx, _ := s.pool.Append(str)
	s.totalRefs++
	return idx
}

// Count is the total number of references across all cells, duplicates included.
func (s *SharedStrings) Count() uint64 { return s.totalRefs }

// UniqueCount is the number of distinct strings in the pool.
func (s *SharedStrings) UniqueCount() int { return s.pool.Len() }

// WriteXML emits sharedStrings.xml.
func (s *SharedStrings) WriteXML(w io.Writer) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	fmt.Fprintf(&b, `<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="%d" uniqueCount="%d">`+"\n",
		s.totalRefs, s.pool.Len())
	for _, v := range s.pool.All() {
		b.WriteString("<si><t xml:space=\"preserve\">")
		b.WriteString(cellmodel.EscapeXML(v))
		b.WriteString("</t></si>\n")
	}
	b.WriteString("</sst>")
	_, err := w.Write([]byte(b.String()))
	return err
}
