// Package zipwriter is a hand-rolled streaming ZIP container writer, used instead of
// archive/zip — the one deliberate departure from writer.go's literal approach,
// building the container format from scratch rather than delegating to a stdlib
// package that already does it.
//
// Grounded structurally on turgutahmet-kolayxlsxstream/writer.go's writeZipFile
// pattern (build the part fully, then hand it to the zip layer) but reimplements
// the container format itself rather than delegating to archive/zip, with DEFLATE
// supplied by klauspost/compress/flate.
package zipwriter

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"io"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"
)

const (
	localFileHeaderSig = 0x04034b50
	centralDirSig = 0x02014b50
	eocdSig = 0x06054b50
	versionNeeded = 20
	methodDeflate = 8
)

type centralDirEntry struct {
	name string
	crc32 uint32
	compressedSize uint32
	rawSize uint32
	offset uint32
	modTime time.Time
}

// Writer assembles a ZIP archive onto an underlying io.Writer one entry at a time.
type Writer struct {
	w io.Writer
	offset uint64
	entries []centralDirEntry
	closed bool
}

// NewWriter wraps w. The caller owns w's lifecycle; Close never closes it.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// validatePath rejects a leading slash, an empty name, or any ".." path component —
// surfaced by callers as workbook.BuildError{Kind: InvalidPath}.
func validatePath(name string) error {
	if name == "" {
		return errors.New("zipwriter: empty entry name")
	}
	if strings.HasPrefix(name, "/") {
		return errors.New("zipwriter: entry name must not start with '/'")
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return errors.New("zipwriter: entry name must not contain '..'")
		}
	}
	return nil
}

// WriteEntry compresses data with DEFLATE, writes a local file header (sizes and
// CRC known up front, no trailing data descriptor) immediately followed by the
// compressed bytes, and records a central directory entry for it.
func (w *Writer) WriteEntry(name string, modTime time.Time, data []byte) error {
	if w.closed {
		return errors.New("zipwriter: write on closed writer")
	}
	if err := validatePath(name); err != nil {
		return err
	}

	crc := crc32.ChecksumIEEE(data)

	var compressed bytes.Buffer
	fw, err := flate.NewWriter(&compressed, flate.DefaultCompression)
	if err != nil {
		return err
	}
	if _, err := fw.Write(data); err != nil {
		return err
	}
	if err := fw.Close(); err != nil {
		return err
	}

	offset := w.offset
	if err := w.writeLocalHeader(name, modTime, crc, uint32(compressed.Len()), uint32(len(data))); err != nil {
		return err
	}
	n, err := w.w.Write(compressed.Bytes())
	w.offset += uint64(n)
	if err != nil {
		return err
	}

	w.entries = append(w.entries, centralDirEntry{
		name:           name,
		crc32:          crc,
		compressedSize: uint32(compressed.Len()),
		rawSize:        uint32(len(data)),
		offset:         uint32(offset),
		modTime:        modTime,
	})
	return nil
}

func (w *Writer) writeLocalHeader(name string, modTime time.Time, crc, compressedSize, rawSize uint32) error {
	dosTime, dosDate := dosDateTime(modTime)
	buf := make([]byte, 30+len(name))
	binary.LittleEndian.PutUint32(buf[0:4], localFileHeaderSig)
	binary.LittleEndian.PutUint16(buf[4:6], versionNeeded)
	binary.LittleEndian.PutUint16(buf[6:8], 0)
	binary.LittleEndian.PutUint16(buf[8:10], methodDeflate)
	binary.LittleEndian.PutUint16(buf[10:12], dosTime)
	binary.LittleEndian.PutUint16(buf[12:14], dosDate)
	binary.LittleEndian.PutUint32(buf[14:18], crc)
	binary.LittleEndian.PutUint32(buf[18:22], compressedSize)
	binary.LittleEndian.PutUint32(buf[22:26], rawSize)
	binary.LittleEndian.PutUint16(buf[26:28], uint16(len(name)))
	binary.LittleEndian.PutUint16(buf[28:30], 0)
	copy(buf[30:], name)

	n, err := w.w.Write(buf)
	w.offset += uint64(n)
	return err
}

// Close writes every central directory record followed by the end-of-central-
// directory record, with correct offsets and counts.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	cdStart := w.offset
	for _, e := range w.entries {
		if err := w.writeCentralDirEntry(e); err != nil {
			return err
		}
	}
	cdSize := w.offset - cdStart

	buf := make([]byte, 22)
	binary.LittleEndian.PutUint32(buf[0:4], eocdSig)
	binary.LittleEndian.PutUint16(buf[4:6], 0)
	binary.LittleEndian.PutUint16(buf[6:8], 0)
	binary.LittleEndian.PutUint16(buf[8:10], uint16(len(w.entries)))
	binary.LittleEndian.PutUint16(buf[10:12], uint16(len(w.entries)))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(cdSize))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(cdStart))
	binary.LittleEndian.PutUint16(buf[20:22], 0)

	n, err := w.w.Write(buf)
	w.offset += uint64(n)
	return err
}

func (w *Writer) writeCentralDirEntry(e centralDirEntry) error {
	dosTime, dosDate := dosDateTime(e.modTime)
	buf := make([]byte, 46+len(e.name))
	binary.LittleEndian.PutUint32(buf[0:4], centralDirSig)
	binary.LittleEndian.PutUint16(buf[4:6], versionNeeded)
	binary.LittleEndian.PutUint16(buf[6:8], versionNeeded)
	binary.LittleEndian.PutUint16(buf[8:10], 0)
	binary.LittleEndian.PutUint16(buf[10:12], methodDeflate)
	binary.LittleEndian.PutUint16(buf[12:14], dosTime)
	binary.LittleEndian.PutUint16(buf[14:16], dosDate)
	binary.LittleEndian.PutUint32(buf[16:20], e.crc32)
	binary.LittleEndian.PutUint32(buf[20:24], e.compressedSize)
	binary.LittleEndian.PutUint32(buf[24:28], e.rawSize)
	binary.LittleEndian.PutUint16(buf[28:30], uint16(len(e.name)))
	binary.LittleEndian.PutUint16(buf[30:32], 0)
	binary.LittleEndian.PutUint16(buf[32:34], 0)
	binary.LittleEndian.PutUint16(buf[34:36], 0)
	binary.LittleEndian.PutUint16(buf[36:38], 0)
	binary.LittleEndian.PutUint32(buf[38:42], 0)
	binary.LittleEndian.PutUint32(buf[42:46], e.offset)
	copy(buf[46:], e.name)

	n, err := w.w.Write(buf)
	w.offset += uint64(n)
	return err
}
