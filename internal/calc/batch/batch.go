// Package batch evaluates many load cases at once, from JSON or from an xlsx sheet.
package batch

import (
	"Steelcheck/internal/calc/loads"
	"Steelcheck/internal/validate"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

type Row struct {
	Row    int           `json:"row"`
	Result *loads.Result `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

type Result struct {
	Count  int   `json:"count"`
	Failed int   `json:"failed"`
	Rows   []Row `json:"rows"`
}

// Columns of the import sheet, after a header row.
var Columns = []string{"combination", "dead_load", "live_load", "wind_load", "seismic_load"}

// FromRaw validates and evaluates every item. Failures are reported per row
// and do not stop the batch.
func FromRaw(items []validate.Raw) (Result, error) {
	if len(items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Rows: make([]Row, 0, len(items))}
	for i, item := range items {
		in, err := validate.LoadInputs(item)
		out.add(i+1, in, err)
	}
	return out, nil
}

func (out *Result) add(n int, in loads.Input, err error) {
	row := Row{Row: n}
	if err == nil {
		var res loads.Result
		res, err = loads.Calculate(in)
		if err == nil {
			row.Result = &res
		}
	}
	if err != nil {
		row.Error = err.Error()
		out.Failed++
	}
	out.Count++
	out.Rows = append(out.Rows, row)
}

// ReadXLSX reads load cases from the first sheet. Row numbers in the result
// match the spreadsheet, so the header is row 1.
func ReadXLSX(r io.Reader) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Result{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return Result{}, fmt.Errorf("empty sheet")
	}

	var out Result
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		in, err := validate.LoadInputs(parseRow(rows[i]))
		out.add(i+1, in, err)
	}
	return out, nil
}

func parseRow(row []string) validate.Raw {
	raw := validate.Raw{}
	for i, col := range Columns {
		if i < len(row) && row[i] != "" {
			raw[col] = row[i]
		}
	}
	return raw
}

func blank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

// Template builds an empty import workbook with the header row filled in.
func Template(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, col := range Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}
	return f.Write(w)
}
