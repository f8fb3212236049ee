// Package ioimages converts spreadsheets of species images into a JSON
// object keyed by scientific name.
package ioimages

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/conslaw/internal/iofs"
	"github.com/gnames/conslaw/pkg/images"
	"github.com/xuri/excelize/v2"
)

// Indent of the output JSON.
const Indent = 4

// Result describes one conversion.
type Result struct {
	Rows    int
	Species int
	Skipped int
}

// Convert reads a .csv or .xlsx image sheet and writes the JSON object to
// output. When output is empty the JSON goes to w.
func Convert(input, output string, w io.Writer) (Result, error) {
	var res Result
	rows, err := ReadRows(input)
	if err != nil {
		return res, err
	}

	data, skipped := images.Group(rows)
	res = Result{Rows: len(rows), Species: len(data), Skipped: skipped}
	if skipped > 0 {
		slog.Warn("Rows without scientific name were skipped",
			"path", input, "rows", skipped)
	}

	if output != "" {
		if err = iofs.WriteJSON(output, data, Indent); err != nil {
			return res, err
		}
		return res, nil
	}

	out, err := iofs.EncodeJSON(data, Indent)
	if err != nil {
		return res, err
	}
	if _, err = w.Write(out); err != nil {
		return res, err
	}
	return res, nil
}

// ReadRows reads rows of an image sheet. Files with .xlsx extension are
// read from their first worksheet, anything else is read as CSV.
func ReadRows(path string) ([]images.Row, error) {
	var records [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		records, err = readXLSX(path)
	default:
		records, err = readCSV(path)
	}
	if err != nil {
		return nil, ReadError(path, err)
	}
	if len(records) == 0 {
		return nil, ReadError(path, errors.New("file is empty"))
	}

	idx, missing := images.ColumnIndex(records[0])
	if len(missing) > 0 {
		return nil, ColumnError(path, missing)
	}

	res := make([]images.Row, 0, len(records)-1)
	for _, v := range records[1:] {
		if isBlank(v) {
			continue
		}
		res = append(res, images.NewRow(idx, v))
	}
	return res, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheet)
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
