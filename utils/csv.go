package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// CSVContentType is the MIME type used for CSV downloads.
const CSVContentType = "text/csv;charset=utf-8"

// Cell is one column of an export row.
type Cell struct {
	Key   string
	Value interface{}
}

// Row is an ordered sequence of cells. The column order of a whole export follows
// the first row.
type Row []Cell

// ToCSV renders rows as CSV text. The header line comes from the keys of the first
// row; string values are always wrapped in double quotes and other values are
// emitted bare. Embedded quote characters inside string values are not escaped;
// ParseCSV strips quotes wholesale on the way back in. Empty input yields an
// empty string.
func ToCSV(rows []Row) string {
	if len(rows) == 0 {
		return ""
	}

	headers := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		headers[i] = cell.Key
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, row := range rows {
		fields := make([]string, len(row))
		for i, cell := range row {
			if s, ok := cell.Value.(string); ok {
				fields[i] = `"` + s + `"`
			} else {
				fields[i] = fmt.Sprintf("%v", cell.Value)
			}
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}

// CSVFilename builds the download filename for an entity export, for example
// patients_2026-08-28.csv.
func CSVFilename(entity string) string {
	return fmt.Sprintf("%s_%s.csv", entity, time.Now().UTC().Format("2006-01-02"))
}

// ParseCSV splits raw CSV text into header-keyed rows. Values are trimmed and
// stripped of double quotes; short rows are padded with empty strings.
func ParseCSV(text string) ([]map[string]string, error) {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, errors.New("file must contain a header and at least one data line")
	}

	headers := splitCSVLine(lines[0])
	rows := make([]map[string]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitCSVLine(line)
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(values) {
				row[header] = values[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func splitCSVLine(line string) []string {
	parts := strings.Split(line, ",")
	for i, part := range parts {
		parts[i] = strings.ReplaceAll(strings.TrimSpace(part), `"`, "")
	}
	return parts
}
