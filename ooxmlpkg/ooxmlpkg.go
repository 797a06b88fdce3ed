// Package ooxmlpkg implements the Package Assembler: the parts
// every xlsx package needs outside the worksheets themselves, and the
// relationship-id allocation rule that wires them together.
//
// Grounded on turgutahmet-kolayxlsxstream/xlsx.go's contentTypesXML/relsXML/
// workbookXMLHeader+Footer/workbookRelsXMLHeader+Footer constant templates,
// generalized from sheetCount-only parameters into the full metadata the spec
// requires (tab colors, document properties, stable rId allocation).
package ooxmlpkg

import (
	"fmt"
	"strings"
	"time"

	"github.com/turgutahmet/xlsxstream/cellmodel"
	"github.com/turgutahmet/xlsxstream/sheet"
)

// Metadata carries the document-property fields docProps parts need.
type Metadata struct {
	Title string
	Subject string
	Creator string
	Company string
	Created time.Time
}

// BuildContentTypes emits [Content_Types].xml: one worksheet override per sheet plus
// the fixed styles/sharedStrings overrides.
func BuildContentTypes(metas []sheet.Meta) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` + "\n")
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` + "\n")
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>` + "\n")
	b.WriteString(`<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>` + "\n")
	b.WriteString(`<Override PartName="/xl/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"/>` + "\n")
	b.WriteString(`<Override PartName="/xl/sharedStrings.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"/>` + "\n")
	for _, m := range metas {
		fmt.Fprintf(&b, `<Override PartName="/%s" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>`, m.FilePath)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, `<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` + "\n")
	fmt.Fprintf(&b, `<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` + "\n")
	b.WriteString(`</Types>`)
	return []byte(b.String())
}

// BuildRootRels emits _rels/.rels: the three fixed relationships.
func BuildRootRels() []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>
</Relationships>`)
}

// BuildWorkbookXML emits xl/workbook.xml: one <sheet> per sheet, carrying its rId
// and, when set, its tabColor.
func BuildWorkbookXML(metas []sheet.Meta) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` + "\n")
	b.WriteString("<sheets>\n")
	for _, m := range metas {
		if m.TabColor != "" {
			fmt.Fprintf(&b, `<sheet name="%s" sheetId="%d" r:id="%s" tabColor="%s"/>`,
				cellmodel.EscapeXML(m.Name), m.SheetID, m.RelationshipID, m.TabColor)
		} else {
			fmt.Fprintf(&b, `<sheet name="%s" sheetId="%d" r:id="%s"/>`, cellmodel.EscapeXML(m.Name), m.SheetID, m.RelationshipID)
		}
		b.WriteString("\n")
	}
	b.WriteString("</sheets>\n")
	b.WriteString("</workbook>")
	return []byte(b.String())
}

// BuildWorkbookRels emits xl/_rels/workbook.xml.rels following the rId allocation
// rule: sheets occupy rId1..rIdS, styles is rId{S+1}, sharedStrings is rId{S+2}.
func BuildWorkbookRels(sheetCount int) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` + "\n")
	for i := 1; i <= sheetCount; i++ {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet%d.xml"/>`, i, i)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`, sheetCount+1)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings" Target="sharedStrings.xml"/>`, sheetCount+2)
	b.WriteString("\n")
	b.WriteString(`</Relationships>`)
	return []byte(b.String())
}

// SheetRelationshipID returns the rId for the i'th (1-based) sheet, matching
// BuildWorkbookRels's allocation.
func SheetRelationshipID(i int) string { return fmt.Sprintf("rId%d", i) }

// BuildCoreProps emits docProps/core.xml.
func BuildCoreProps(meta Metadata) []byte {
	created := meta.Created
	if created.IsZero() {
		created = time.Unix(0, 0).UTC()
	}
	stamp := created.UTC().Format("2006-01-02T15:04:05Z")
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` + "\n")
	fmt.Fprintf(&b, `<dc:title>%s</dc:title>`, cellmodel.EscapeXML(meta.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, `<dc:subject>%s</dc:subject>`, cellmodel.EscapeXML(meta.Subject))
	b.WriteString("\n")
	fmt.Fprintf(&b, `<dc:creator>%s</dc:creator>`, cellmodel.EscapeXML(meta.Creator))
	b.WriteString("\n")
	fmt.Fprintf(&b, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, stamp)
	b.WriteString("\n")
	b.WriteString(`</cp:coreProperties>`)
	return []byte(b.String())
}

// BuildAppProps emits docProps/app.xml.
func BuildAppProps(meta Metadata, sheetNames []string) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">` + "\n")
	fmt.Fprintf(&b, `<Company>%s</Company>`, cellmodel.EscapeXML(meta.Company))
	b.WriteString("\n")
	fmt.Fprintf(&b, `<HeadingPairs><vt:vector size="2" baseType="variant"><vt:variant><vt:lpstr>Worksheets</vt:lpstr></vt:variant><vt:variant><vt:i4>%d</vt:i4></vt:variant></vt:vector></HeadingPairs>`, len(sheetNames))
	b.WriteString("\n")
	b.WriteString(`<TitlesOfParts><vt:vector size="` + fmt.Sprint(len(sheetNames)) + `" baseType="lpstr">`)
	for _, name := range sheetNames {
		fmt.Fprintf(&b, `<vt:lpstr>%s</vt:lpstr>`, cellmodel.EscapeXML(name))
	}
	b.WriteString(`</vt:vector></TitlesOfParts>` + "\n")
	b.WriteString(`</Properties>`)
	return []byte(b.String())
}
