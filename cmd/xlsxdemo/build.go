package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"github.com/turgutahmet/xlsxstream/column"
	"github.com/turgutahmet/xlsxstream/progress"
	"github.com/turgutahmet/xlsxstream/sheet"
	"github.com/turgutahmet/xlsxstream/sqlrecords"
	"github.com/turgutahmet/xlsxstream/workbook"
)

// row is a generic record: a CSV line or a flattened SQL row, addressed by column
// index rather than a struct field, so one sheet implementation serves both inputs.
type row []string

func newBuildCommand() *cobra.Command {
	var (
		inputPath string
		output string
		sqliteDB string
		query string
		sheetName string
	)

	cmd := &cobra.Command{
		Use: "build",
		Short: "Build a workbook from a CSV file or a SQLite query",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				header []string
				records []row
				err error
			)
			switch {
			case sqliteDB != "":
				header, records, err = loadFromSQLite(sqliteDB, query)
			case inputPath != "":
				header, records, err = loadFromCSV(inputPath)
			default:
				return fmt.Errorf("xlsxdemo: one of --input or --sqlite is required")
			}
			if err != nil {
				return err
			}

			wb := workbook.New(output)
			s := sheet.New[row](sheetName)
			for i, col := range header {
				idx := i
				s.AddColumn(column.TextColumn[row](col, func(r row) column.TextValue {
							if idx >= len(r) {
								return column.NullText()
							}
							return column.Text(r[idx])
						}))
			}
			s.SetData(records)
			workbook.AddSheet(wb, s)

			go printProgress(wb.Progress)

			finalPath, err := wb.Build(context.Background())
			if err != nil {
				return fmt.Errorf("xlsxdemo: build: %w", err)
			}
			fmt.Printf("wrote %s (%d rows)\n", finalPath, len(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "CSV file to read")
	cmd.Flags().StringVar(&output, "output", "demo.xlsx", "output xlsx path")
	cmd.Flags().StringVar(&sqliteDB, "sqlite", "", "SQLite database file to read instead of a CSV")
	cmd.Flags().StringVar(&query, "query", "SELECT * FROM data", "query to run against --sqlite")
	cmd.Flags().StringVar(&sheetName, "sheet", "Sheet1", "worksheet name")
	return cmd
}

func loadFromCSV(path string) ([]string, []row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("xlsxdemo: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("xlsxdemo: read csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}

	records := make([]row, len(all)-1)
	for i, line := range all[1:] {
		records[i] = row(line)
	}
	return all[0], records, nil
}

func loadFromSQLite(path, query string) ([]string, []row, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, nil, fmt.Errorf("xlsxdemo: open sqlite %s: %w", path, err)
	}
	defer db.Close()

	var header []string
	provider := sqlrecords.New(db, query, func(rows *sql.Rows) (row, error) {
			if header == nil {
				header, err = rows.Columns()
				if err != nil {
					return nil, err
				}
			}
			raw := make([]any, len(header))
			ptrs := make([]any, len(header))
			for i := range raw {
				ptrs[i] = &raw[i]
			}
			if err := rows.Scan(ptrs...); err != nil {
				return nil, err
			}
			out := make(row, len(raw))
			for i, v := range raw {
				out[i] = fmt.Sprint(v)
			}
			return out, nil
		})

	records, err := provider.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("xlsxdemo: query sqlite: %w", err)
	}
	return header, records, nil
}

func printProgress(q *progress.Queue) {
	ctx := context.Background()
	for {
		ev, ok := q.Next(ctx)
		if !ok {
			return
		}
		if ev.SheetName != "" {
			fmt.Printf("[%3.0f%%] %s (%s)\n", ev.Fraction*100, ev.Phase, ev.SheetName)
		} else {
			fmt.Printf("[%3.0f%%] %s\n", ev.Fraction*100, ev.Phase)
		}
	}
}
