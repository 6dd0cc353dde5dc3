// Package ingest turns uploaded CSV/XLSX datasets into the typed records
// the planning services consume. Column names are matched after trimming
// and lowercasing; missing required columns surface as validation errors.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/freshbites/planner/backend-go/internal/domain"
)

// Table is a parsed dataset: a normalized header index over raw rows.
type Table struct {
	columns map[string]int
	rows    [][]string
}

// ReadTable parses CSV or XLSX content, chosen by file extension
// (default CSV).
func ReadTable(r io.Reader, filename string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return readXLSX(r)
	default:
		return readCSV(r)
	}
}

func readCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return newTable(records)
}

func readXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx file has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return newTable(records)
}

func newTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return &Table{columns: map[string]int{}}, nil
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[normalize(name)] = i
	}
	return &Table{columns: columns, rows: records[1:]}, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Require reports the named columns missing from the table, as a
// validation error for the given dataset.
func (t *Table) Require(dataset string, columns ...string) error {
	var missing []string
	for _, name := range columns {
		if _, ok := t.columns[normalize(name)]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return domain.NewMissingColumnsError(dataset, missing)
	}
	return nil
}

// Has reports whether an optional column is present.
func (t *Table) Has(column string) bool {
	_, ok := t.columns[normalize(column)]
	return ok
}

// Len is the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) cell(row int, column string) string {
	i, ok := t.columns[normalize(column)]
	if !ok || i >= len(t.rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.rows[row][i])
}

// String returns the trimmed cell value.
func (t *Table) String(row int, column string) string {
	return t.cell(row, column)
}

// Int parses the cell as an integer; empty cells yield 0.
func (t *Table) Int(row int, column string) (int, error) {
	raw := t.cell(row, column)
	if raw == "" {
		return 0, nil
	}
	// Tolerate "12.0" style exports.
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f), nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.ValidationError{
			Dataset: column,
			Reason:  fmt.Sprintf("row %d: %q is not a number", row+1, raw),
		}
	}
	return v, nil
}

// Float parses the cell as a float; empty cells yield 0.
func (t *Table) Float(row int, column string) (float64, error) {
	raw := t.cell(row, column)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Dataset: column,
			Reason:  fmt.Sprintf("row %d: %q is not a number", row+1, raw),
		}
	}
	return v, nil
}
