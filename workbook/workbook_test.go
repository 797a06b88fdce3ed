package workbook

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/turgutahmet/xlsxstream/column"
	"github.com/turgutahmet/xlsxstream/progress"
	"github.com/turgutahmet/xlsxstream/sheet"
)

type person struct {
	Name string
	Age int64
}

func buildDemoWorkbook(t *testing.T, outputPath string) *Workbook {
	t.Helper()
	wb := New(outputPath)

	s := sheet.New[person]("People")
	s.AddColumn(column.TextColumn[person]("Name", func(p person) column.TextValue {
				return column.Text(p.Name)
			}))
	s.AddColumn(column.IntColumn[person]("Age", func(p person) column.IntValue {
				return column.Int(p.Age)
			}))
	s.SetData([]person{{Name: "Ada", Age: 36}, {Name: "Grace", Age: 85}})
	AddSheet(wb, s)
	return wb
}

func TestBuildProducesValidZipWithExpectedParts(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report")
	wb := buildDemoWorkbook(t, out)

	finalPath, err := wb.Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "report.xlsx"), finalPath)

	_, statErr := os.Stat(tempDirFor(finalPath))
	require.True(t, os.IsNotExist(statErr), "temp directory must be removed after a successful build")

	zr, err := zip.OpenReader(finalPath)
	require.NoError(t, err)
	defer zr.Close()

	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"[Content_Types].xml", "_rels/.rels", "xl/workbook.xml",
		"xl/_rels/workbook.xml.rels", "xl/styles.xml", "xl/sharedStrings.xml",
		"xl/worksheets/sheet1.xml", "docProps/core.xml", "docProps/app.xml",
	} {
		require.True(t, names[want], "missing part %s", want)
	}
}

func TestBuildEmitsMonotoneProgressSequence(t *testing.T) {
	dir := t.TempDir()
	wb := buildDemoWorkbook(t, filepath.Join(dir, "out"))

	_, err := wb.Build(context.Background())
	require.NoError(t, err)

	ctx := context.Background()
	last := -0.01
	sawCompleted := false
	for {
		ev, ok := wb.Progress.Next(ctx)
		if !ok {
			break
		}
		require.GreaterOrEqual(t, ev.Fraction, last)
		last = ev.Fraction
		if ev.Phase == progress.Completed {
			sawCompleted = true
		}
	}
	require.True(t, sawCompleted)
}

func TestBuildWithZeroSheetsFailsBeforeTouchingDisk(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "empty")
	wb := New(out)

	_, err := wb.Build(context.Background())
	require.Error(t, err)

	var be *BuildError
	require.ErrorAs(t, err, &be)
	require.Equal(t, EmptyWorkbook, be.Kind)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	require.Empty(t, entries)
}

func TestBuildAppendsExtensionWhenMissing(t *testing.T) {
	dir := t.TempDir()
	wb := buildDemoWorkbook(t, filepath.Join(dir, "noext"))

	finalPath, err := wb.Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "noext.xlsx"), finalPath)
}

func TestBuildReplacesWrongExtension(t *testing.T) {
	dir := t.TempDir()
	wb := buildDemoWorkbook(t, filepath.Join(dir, "report.csv"))

	finalPath, err := wb.Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "report.xlsx"), finalPath)
}

func TestBuildSanitizesSheetNames(t *testing.T) {
	dir := t.TempDir()
	wb := New(filepath.Join(dir, "out"))
	s := sheet.New[person]("Q1/Q2 Report")
	s.SetData(nil)
	AddSheet(wb, s)

	finalPath, err := wb.Build(context.Background())
	require.NoError(t, err)

	zr, err := zip.OpenReader(finalPath)
	require.NoError(t, err)
	defer zr.Close()
	f, err := zr.Open("xl/workbook.xml")
	require.NoError(t, err)
	defer f.Close()
	buf := make([]byte, 4096)
	n, _ := f.Read(buf)
	require.NotContains(t, string(buf[:n]), "Q1/Q2")
	require.Contains(t, string(buf[:n]), "Q1Q2 Report")
}
