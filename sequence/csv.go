package sequence

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Column    string // Column name for values (default: "y")
	HasHeader bool   // Whether CSV has a header row (default: true)
	Delimiter rune   // Field delimiter (default: ',')
	SkipRows  int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Column:    "y",
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads a sequence from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Sequence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a sequence from an io.Reader. Every cell in
// the value column must parse as a finite real number; a malformed or
// empty cell fails with ErrNonNumeric rather than being skipped. An
// input with no data rows fails with ErrNoData.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Sequence, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx := 0
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		valueIdx = -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			if h == opts.Column || (opts.Column == "" && (h == "y" || h == "value" || h == "Value")) {
				valueIdx = i
				break
			}
		}
		if valueIdx == -1 {
			// Default to the last column when no header matches.
			valueIdx = len(header) - 1
		}
	}

	var values []float64
	row := opts.SkipRows
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++
		if valueIdx >= len(record) {
			return nil, fmt.Errorf("row %d has no column %d: %w", row, valueIdx, ErrNonNumeric)
		}
		cell := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d value %q: %w", row, cell, ErrNonNumeric)
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no data rows in CSV: %w", ErrNoData)
	}
	return New(values)
}
