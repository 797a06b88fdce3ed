// Package workbook implements the top-level Workbook Build: the
// ten-step orchestration that drives every sheet through the sheet assembler, emits
// the eight global package parts, and hands the finished tree to the ZIP writer.
//
// Grounded on turgutahmet-kolayxlsxstream/writer.go's Writer (StartFile/WriteRow/
// FinishFile phase machine), generalized from one flat sheet into the full
// multi-sheet, multi-phase state machine and §4.10 describe.
package workbook

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/turgutahmet/xlsxstream/ooxmlpkg"
	"github.com/turgutahmet/xlsxstream/pkgio"
	"github.com/turgutahmet/xlsxstream/progress"
	"github.com/turgutahmet/xlsxstream/sharedstrings"
	"github.com/turgutahmet/xlsxstream/sheet"
	"github.com/turgutahmet/xlsxstream/sheetname"
	"github.com/turgutahmet/xlsxstream/stylesheet"
	"github.com/turgutahmet/xlsxstream/xlsxlog"
	"github.com/turgutahmet/xlsxstream/zipwriter"
)

// Progress fractions table. Named constants instead of magic
// literals at each call site.
const (
	fracStarted = 0.00
	fracCreatingDirectory = 0.05
	fracProcessingSheetsStart = 0.10
	fracProcessingSheetsEnd = 0.30
	fracGeneratingGlobalFiles = 0.35
	fracContentTypes = 0.40
	fracRootRelationships = 0.45
	fracWorkbook = 0.50
	fracWorkbookRelationships = 0.55
	fracStyles = 0.60
	fracSharedStrings = 0.65
	fracCoreProperties = 0.70
	fracAppProperties = 0.75
	fracPreparingPackage = 0.85
	fracCleaningUp = 0.95
	fracCompleted = 1.00
)

// SinkFactory opens the destination a finished package is streamed into, given the
// normalized final path. The default targets the local filesystem via pkgio.FileSink;
// callers wanting S3 output (s3out.New) supply their own factory.
type SinkFactory func(finalPath string) (pkgio.Sink, error)

// Workbook is the top-level build unit: an ordered set of type-erased sheets, the
// two registries every sheet shares, a logger, and a progress emitter.
type Workbook struct {
	OutputPath string
	Metadata ooxmlpkg.Metadata
	Logger xlsxlog.Logger
	Progress *progress.Queue
	NameSanitizer sheetname.Sanitizer
	Sink SinkFactory

	sheets []AnySheet
	styles *stylesheet.StyleSheet
	strs *sharedstrings.SharedStrings
}

// New returns an empty Workbook targeting outputPath. Defaults: a no-op logger, a
// fresh progress queue, the Remove sheet-name sanitizer, and local-file output.
func New(outputPath string) *Workbook {
	return &Workbook{
		OutputPath: outputPath,
		Logger: xlsxlog.NoopLogger{},
		Progress: progress.NewQueue(),
		NameSanitizer: sheetname.New(nil, "Sheet"),
		Sink: func(finalPath string) (pkgio.Sink, error) {
			return pkgio.NewFileSink(finalPath)
		},
		styles: stylesheet.New(),
		strs: sharedstrings.New(),
	}
}

func normalizeOutputPath(p string) string {
	ext := filepath.Ext(p)
	switch ext {
	case ".xlsx":
		return p
	case "":
		return p + ".xlsx"
	default:
		return strings.TrimSuffix(p, ext) + ".xlsx"
	}
}

func tempDirFor(finalPath string) string {
	ext := filepath.Ext(finalPath)
	return strings.TrimSuffix(finalPath, ext) + ".temp"
}

// Build runs the ten-step build sequence, pushing a
// progress.Event after every step onto wb.Progress, and returns the final,
// normalized output path. The progress queue is closed after the terminal
// Completed or Failed event.
func (wb *Workbook) Build(ctx context.Context) (string, error) {
	defer wb.Progress.Close()

	if len(wb.sheets) == 0 {
		err := newBuildError(EmptyWorkbook, nil)
		wb.fail(err)
		return "", err
	}

	wb.Progress.Push(progress.Event{Phase: progress.Started, Fraction: fracStarted})

	finalPath := normalizeOutputPath(wb.OutputPath)
	tempDir := tempDirFor(finalPath)

	if dir := filepath.Dir(finalPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			be := newBuildError(FileWriteError, err)
			wb.fail(be)
			return "", be
		}
	}

	wb.Progress.Push(progress.Event{Phase: progress.CreatingDirectory, Fraction: fracCreatingDirectory})
	if err := wb.makeSkeleton(tempDir); err != nil {
		be := newBuildError(FileWriteError, err)
		wb.fail(be)
		return "", be
	}

	metas, err := wb.buildSheets(ctx, tempDir)
	if err != nil {
		wb.fail(err)
		return "", err
	}

	if err := wb.writeGlobalParts(tempDir, metas); err != nil {
		wb.fail(err)
		return "", err
	}

	wb.Progress.Push(progress.Event{Phase: progress.PreparingPackage, Fraction: fracPreparingPackage})
	if err := wb.packageAndPublish(tempDir, finalPath); err != nil {
		wb.fail(err)
		return "", err
	}

	wb.Progress.Push(progress.Event{Phase: progress.CleaningUp, Fraction: fracCleaningUp})
	os.RemoveAll(tempDir)
	wb.Progress.Push(progress.Event{Phase: progress.Completed, Fraction: fracCompleted})
	return finalPath, nil
}

func (wb *Workbook) fail(err error) {
	wb.Logger.Error("workbook build failed", xlsxlog.F("error", err))
	wb.Progress.Push(progress.Event{Phase: progress.Failed, Fraction: 0, Err: err})
}

func (wb *Workbook) makeSkeleton(tempDir string) error {
	dirs := []string{
		tempDir,
		filepath.Join(tempDir, "_rels"),
		filepath.Join(tempDir, "xl"),
		filepath.Join(tempDir, "xl", "_rels"),
		filepath.Join(tempDir, "xl", "worksheets"),
		filepath.Join(tempDir, "docProps"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("workbook: mkdir %s: %w", d, err)
		}
	}
	return nil
}

func (wb *Workbook) buildSheets(ctx context.Context, tempDir string) ([]sheet.Meta, error) {
	total := len(wb.sheets)
	wb.Progress.Push(progress.Event{Phase: progress.ProcessingSheets, Fraction: fracProcessingSheetsStart, SheetTotal: total})

	metas := make([]sheet.Meta, 0, total)
	for i, s := range wb.sheets {
		s.SetName(wb.NameSanitizer.Sanitize(s.Name()))

		if err := s.LoadData(ctx); err != nil {
			return nil, newBuildError(FileWriteError, err)
		}

		sheetID := uint32(i + 1)
		relID := ooxmlpkg.SheetRelationshipID(i + 1)

		frac := fracProcessingSheetsStart
		if total > 1 {
			frac = fracProcessingSheetsStart + (fracProcessingSheetsEnd-fracProcessingSheetsStart)*float64(i)/float64(total-1)
		}
		wb.Progress.Push(progress.Event{
				Phase: progress.ProcessingSheet, Fraction: frac,
				SheetIndex: i + 1, SheetTotal: total, SheetName: s.Name(),
			})

		body, meta, err := s.Build(sheetID, relID, wb.styles, wb.strs)
		if err != nil {
			return nil, newBuildError(EncodingError, err)
		}
		if meta.Name == "" {
			return nil, newBuildError(InvalidSheetName, nil)
		}

		path := filepath.Join(tempDir, filepath.FromSlash(meta.FilePath))
		if err := os.WriteFile(path, body, 0o644); err != nil {
			return nil, newBuildError(FileWriteError, err)
		}
		metas = append(metas, meta)
	}

	wb.Progress.Push(progress.Event{Phase: progress.SheetsCompleted, Fraction: fracProcessingSheetsEnd, SheetTotal: total})
	return metas, nil
}

func (wb *Workbook) writeGlobalParts(tempDir string, metas []sheet.Meta) error {
	wb.Progress.Push(progress.Event{Phase: progress.GeneratingGlobalFiles, Fraction: fracGeneratingGlobalFiles})

	names := make([]string, len(metas))
	for i, m := range metas {
		names[i] = m.Name
	}

	var sharedStringsBuf bytes.Buffer
	if err := wb.strs.WriteXML(&sharedStringsBuf); err != nil {
		return newBuildError(FileWriteError, err)
	}

	parts := []struct {
		phase progress.Phase
		fraction float64
		relPath string
		data []byte
	}{
		{progress.GeneratingContentTypes, fracContentTypes, "[Content_Types].xml", ooxmlpkg.BuildContentTypes(metas)},
		{progress.GeneratingRootRelationships, fracRootRelationships, filepath.Join("_rels", ".rels"), ooxmlpkg.BuildRootRels()},
		{progress.GeneratingWorkbook, fracWorkbook, filepath.Join("xl", "workbook.xml"), ooxmlpkg.BuildWorkbookXML(metas)},
		{progress.GeneratingWorkbookRelationships, fracWorkbookRelationships, filepath.Join("xl", "_rels", "workbook.xml.rels"), ooxmlpkg.BuildWorkbookRels(len(metas))},
		{progress.GeneratingStyles, fracStyles, filepath.Join("xl", "styles.xml"), wb.styles.WriteXML()},
		{progress.GeneratingSharedStrings, fracSharedStrings, filepath.Join("xl", "sharedStrings.xml"), sharedStringsBuf.Bytes()},
		{progress.GeneratingCoreProperties, fracCoreProperties, filepath.Join("docProps", "core.xml"), ooxmlpkg.BuildCoreProps(wb.Metadata)},
		{progress.GeneratingAppProperties, fracAppProperties, filepath.Join("docProps", "app.xml"), ooxmlpkg.BuildAppProps(wb.Metadata, names)},
	}

	for _, p := range parts {
		wb.Progress.Push(progress.Event{Phase: p.phase, Fraction: p.fraction, SheetName: p.relPath})
		if err := os.WriteFile(filepath.Join(tempDir, p.relPath), p.data, 0o644); err != nil {
			return newBuildError(FileWriteError, err)
		}
	}
	return nil
}

func (wb *Workbook) packageAndPublish(tempDir, finalPath string) error {
	sink, err := wb.Sink(finalPath)
	if err != nil {
		return newBuildError(FileWriteError, err)
	}

	// discard drops the unfinished package: a sink that can abort (pkgio.FileSink,
	// s3out.Sink) does so instead of publishing partial output on Close.
	discard := func() {
		if a, ok := sink.(interface{ Abort() error }); ok {
			_ = a.Abort()
			return
		}
		_ = sink.Close()
	}

	zw := zipwriter.NewWriter(sink)
	walkErr := filepath.WalkDir(tempDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return newBuildError(FileWriteError, err)
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(tempDir, path)
			if err != nil {
				return newBuildError(FileWriteError, err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return newBuildError(FileWriteError, err)
			}
			if err := zw.WriteEntry(filepath.ToSlash(rel), time.Now(), data); err != nil {
				return newBuildError(InvalidPath, err)
			}
			return nil
		})
	if walkErr != nil {
		discard()
		if be, ok := walkErr.(*BuildError); ok {
			return be
		}
		return newBuildError(CompressionError, walkErr)
	}

	if err := zw.Close(); err != nil {
		discard()
		return newBuildError(CompressionError, err)
	}
	if err := sink.Close(); err != nil {
		return newBuildError(FileWriteError, err)
	}
	return nil
}
