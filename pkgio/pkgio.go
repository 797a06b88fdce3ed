// Package pkgio defines the Sink capability (: io.Writer + io.Closer) and
// the local-file placement that publishes a build atomically: a partially written
// file never appears at its final path.
//
// Grounded on turgutahmet-kolayxlsxstream/sink.go's Sink interface and
// filesink.go's FileSink, generalized with the mkdir-temp/write/rename discipline
// requires ("no partial file at the final path").
package pkgio

import "io"

// Sink is the write destination a Workbook streams its finished package into.
type Sink interface {
	io.Writer
	io.Closer
}
