// Command xlsxdemo is an illustrative CLI wrapping the workbook package: it is not
// part of the engine itself, just a thin wiring of a CSV or SQLite input into a
// Workbook build, printing the resulting progress stream.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use: "xlsxdemo",
		Short: "Build a demo XLSX workbook from CSV or SQLite input",
	}
	root.AddCommand(newBuildCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
