// =============================================================================
// EventAlytics - XLSX Reader Module
// =============================================================================
//
// Some organizers download the registration export as a workbook instead of
// CSV. This module reads the first sheet of such a workbook into the same
// Document shape the CSV parser produces, so the rest of the pipeline does
// not care which format the input arrived in.
//
// Cell values arrive from excelize already unquoted, so only the positional
// zip and blank-row handling apply here.
//
// =============================================================================

package xlsxreader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/eventalytics/eventalytics/internal/csvparser"
)

// ReadWorkbook reads an order export workbook. The first row of the first
// sheet is the header row; every following row becomes one record, with
// missing trailing cells defaulting to the empty string. Fully blank rows
// are kept as empty records and filtered later by the mapper's id check,
// matching the CSV path.
func ReadWorkbook(path string) (*csvparser.Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook is empty")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Columna_%d", i+1)
		}
		headers[i] = h
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				rec[header] = strings.TrimSpace(row[i])
			} else {
				rec[header] = ""
			}
		}
		records = append(records, rec)
	}

	return &csvparser.Document{
		Headers:     headers,
		Rows:        records,
		RowCount:    len(records),
		ColumnCount: len(headers),
	}, nil
}
