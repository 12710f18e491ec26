// Package csvparse implements the CSV ingestion pipeline: a line-based
// parser with a quote-aware field splitter, strict header validation against
// a mapper's declared columns, and row-to-entity mapping.
package csvparse

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	errs "github.com/amirhossein-jamali/transaction-manager/internal/domain/error"
)

// Mapper declares the columns a CSV file must carry and turns one parsed row
// into an entity.
type Mapper[T any] interface {
	// Columns is the required header row, in order.
	Columns() []string
	// MapRow constructs an entity from a header-name → field-value mapping.
	MapRow(row map[string]string) (T, error)
}

// Parse reads an in-memory CSV file and maps every data line through the
// mapper. The first line must exactly equal the mapper's declared columns,
// by order and spelling. Parsing is fail-fast: the first bad row aborts the
// whole file.
func Parse[T any](file []byte, filename string, mapper Mapper[T]) ([]T, error) {
	if len(file) == 0 {
		return nil, errs.ErrEmptyFile
	}
	// The extension check is case-sensitive; only a lowercase .csv passes.
	if filepath.Ext(filename) != ".csv" {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidFileFormat, filename)
	}

	scanner := bufio.NewScanner(bytes.NewReader(file))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrRowRead, err)
		}
		return nil, errs.ErrEmptyFile
	}

	header := strings.Split(trimLine(scanner.Text()), ",")
	columns := mapper.Columns()
	if err := validateHeader(header, columns); err != nil {
		return nil, err
	}

	var result []T
	line := 1
	for scanner.Scan() {
		line++
		values := splitLine(trimLine(scanner.Text()))
		if len(values) != len(columns) {
			return nil, &errs.RowError{Line: line, Err: fmt.Errorf("%w: expected %d fields, got %d", errs.ErrRowRead, len(columns), len(values))}
		}

		row := make(map[string]string, len(columns))
		for i, name := range header {
			row[name] = values[i]
		}

		item, err := mapper.MapRow(row)
		if err != nil {
			return nil, &errs.RowError{Line: line, Err: err}
		}
		result = append(result, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrRowRead, err)
	}

	return result, nil
}

func validateHeader(header, columns []string) error {
	if len(header) != len(columns) {
		return fmt.Errorf("%w: expected %v, got %v", errs.ErrSchemaMismatch, columns, header)
	}
	for i, name := range columns {
		if header[i] != name {
			return fmt.Errorf("%w: expected column %d to be %q, got %q", errs.ErrSchemaMismatch, i+1, name, header[i])
		}
	}
	return nil
}

// splitLine splits one CSV line on unquoted commas. A double quote toggles
// the quoted state unless it is preceded by a backslash; quote characters
// that toggle state are dropped from the field value. Quoted state never
// carries over between lines.
func splitLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"' && (i == 0 || line[i-1] != '\\'):
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			result = append(result, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	result = append(result, current.String())

	return result
}

func trimLine(line string) string {
	return strings.TrimSuffix(line, "\r")
}
