// =============================================================================
// EventAlytics - CSV Parser Module
// =============================================================================
//
// This module parses the registration platform's CSV export into header-keyed
// records. The export is not RFC 4180: double quotes toggle a quoted span but
// never escape (there is no doubled-quote escaping), single quotes may also
// wrap a field, and data rows routinely carry fewer or more values than the
// header row. The standard library csv reader rejects or rewrites such input
// even in lazy mode, so the line scanner is implemented by hand.
//
// PARSING RULES:
//   - A double quote flips the in-quote state; it is never part of a field.
//   - A comma outside a quoted span ends the current field.
//   - Fields are trimmed of surrounding whitespace.
//   - After splitting, one wrapping pair of "..." or '...' is stripped.
//   - An unterminated quote is tolerated: the line is flushed as-is and the
//     quote state never carries over to the next line.
//   - Embedded newlines inside quoted fields are not supported; each
//     physical line is parsed independently.
//
// =============================================================================

package csvparser

import (
	"fmt"
	"strings"
)

// =============================================================================
// DOCUMENT STRUCTURE
// =============================================================================

// Document represents a parsed export.
type Document struct {
	// Headers contains the column labels from the first line.
	Headers []string

	// Rows contains the data rows as maps of header -> value. A value
	// missing at a header's position defaults to the empty string.
	Rows []map[string]string

	// RowCount is the number of data rows (excluding the header line).
	RowCount int

	// ColumnCount is the number of header columns.
	ColumnCount int
}

// =============================================================================
// LINE PARSING
// =============================================================================

// ParseLine splits one raw line into an ordered sequence of field values,
// honoring commas inside quoted spans. An empty line yields a single
// empty-string field.
func ParseLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuote := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuote = !inQuote
		case ch == ',' && !inQuote:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	// Flush the last field. An unterminated quote leaves inQuote set, but
	// the field is still emitted; quote state never spans lines.
	result = append(result, strings.TrimSpace(current.String()))

	for i, val := range result {
		result[i] = stripWrappingQuotes(val)
	}
	return result
}

// stripWrappingQuotes removes exactly one matching pair of wrapping double
// or single quotes. Values without a wrapping pair are returned unchanged.
func stripWrappingQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// =============================================================================
// DOCUMENT PARSING
// =============================================================================

// ParseDocument parses full CSV text. The first line is the header row; every
// following line becomes one record, zipped positionally against the headers.
// Mismatched lengths never fail: missing values default to the empty string
// and extra values are dropped. Blank or malformed rows survive as records
// with empty fields; filtering them is the mapper's concern.
func ParseDocument(text string) *Document {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	headers := ParseLine(strings.TrimSuffix(lines[0], "\r"))
	cleanHeaders(headers)

	rows := make([]map[string]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := ParseLine(strings.TrimSuffix(line, "\r"))
		rows = append(rows, zip(headers, values))
	}

	return &Document{
		Headers:     headers,
		Rows:        rows,
		RowCount:    len(rows),
		ColumnCount: len(headers),
	}
}

// zip pairs header labels with row values by position.
func zip(headers, values []string) map[string]string {
	row := make(map[string]string, len(headers))
	for i, header := range headers {
		if i < len(values) {
			row[header] = values[i]
		} else {
			row[header] = ""
		}
	}
	return row
}

// cleanHeaders replaces empty header labels with a positional placeholder so
// every column stays addressable in the record maps.
func cleanHeaders(headers []string) {
	for i, h := range headers {
		if h == "" {
			headers[i] = placeholderHeader(i)
		}
	}
}

func placeholderHeader(i int) string {
	return fmt.Sprintf("Columna_%d", i+1)
}
