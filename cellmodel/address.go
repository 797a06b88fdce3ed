// Package cellmodel implements the tagged-union cell value model shared by every
// worksheet: seven value kinds, each with a nullable variant, and the Excel-compatible
// rendering rules for turning a kind into the content of a <c> element.
package cellmodel

import "fmt"

// ColumnLetters converts a 1-based column index into its Excel letter address
// (1 => "A", 26 => "Z", 27 => "AA",...).
func ColumnLetters(col uint32) string {
	if col == 0 {
		return ""
	}
	var letters []byte
	for col > 0 {
		col--
		letters = append([]byte{byte('A' + col%26)}, letters...)
		col /= 26
	}
	return string(letters)
}

// Address returns the Excel cell reference for a 1-based row/col pair, e.g. (1,1) =>
// "A1", (2,28) => "AB2".
func Address(row, col uint32) string {
	return fmt.Sprintf("%s%d", ColumnLetters(col), row)
}
