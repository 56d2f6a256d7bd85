// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/ndview/explorer"
)

var errUnknownFormat = errors.New("unknown export format")

const (
	formatXLSX = "xlsx"
	formatCSV  = "csv"

	dataSheet    = "Sheet1"
	summarySheet = "summary"
)

// export writes the projected array of v to path as a table. format is
// "xlsx" or "csv"; empty means "take it from the file extension".
func export(v *explorer.View, path, format string) error {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	rows := table(v)
	switch strings.ToLower(format) {
	case formatXLSX:
		return writeXLSX(rows, v.Summary(), path)
	case formatCSV:
		return writeCSV(rows, path)
	default:
		return fmt.Errorf("%q: %w", format, errUnknownFormat)
	}
}

// table lays the projected array out as a header row followed by data rows.
//
// Behavior highlights:
//   - rank 0: a single "value" column.
//   - rank 1: index, value and, when present, error columns.
//   - rank ≥ 2: one row per combination of the leading indices, one column
//     per element of the last dimension.
func table(v *explorer.View) [][]any {
	vals := v.Array.Values()
	shape := v.Array.Shape()

	switch len(shape) {
	case 0:
		return [][]any{{"value"}, {vals[0]}}
	case 1:
		header := []any{v.Layout[0].String(), "value"}
		var errs []float64
		if v.ErrorBars != nil {
			errs = v.ErrorBars.Values()
			header = append(header, "error")
		}
		rows := make([][]any, 0, len(vals)+1)
		rows = append(rows, header)
		for i, x := range vals {
			row := []any{i, x}
			if errs != nil {
				row = append(row, errs[i])
			}
			rows = append(rows, row)
		}

		return rows
	}

	lead, last := shape[:len(shape)-1], shape[len(shape)-1]
	header := make([]any, 0, len(lead)+last)
	for _, e := range v.Layout[:len(lead)] {
		header = append(header, e.String())
	}
	name := v.Layout[len(lead)].String()
	for j := 0; j < last; j++ {
		header = append(header, name+"="+strconv.Itoa(j))
	}

	rows := [][]any{header}
	idx := make([]int, len(lead))
	for off := 0; off < len(vals); off += last {
		row := make([]any, 0, len(header))
		for _, i := range idx {
			row = append(row, i)
		}
		for _, x := range vals[off : off+last] {
			row = append(row, x)
		}
		rows = append(rows, row)

		for k := len(idx) - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < lead[k] {
				break
			}
			idx[k] = 0
		}
	}

	return rows
}

func writeXLSX(rows [][]any, summary, path string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		// Spreadsheets have no NaN or Inf; leave those cells empty.
		for i, x := range row {
			if fl, ok := x.(float64); ok && (math.IsNaN(fl) || math.IsInf(fl, 0)) {
				row[i] = nil
			}
		}
		if err = f.SetSheetRow(dataSheet, cell, &row); err != nil {
			return err
		}
	}

	if _, err = f.NewSheet(summarySheet); err != nil {
		return err
	}
	for r, line := range strings.Split(strings.TrimRight(summary, "\n"), "\n") {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(summarySheet, cell, line); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeCSV(rows [][]any, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	for _, row := range rows {
		rec := make([]string, len(row))
		for i, x := range row {
			rec[i] = formatCell(x)
		}
		if err = w.Write(rec); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func formatCell(x any) string {
	switch x := x.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
