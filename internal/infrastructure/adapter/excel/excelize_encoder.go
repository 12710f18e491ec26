// Package excel encodes flat record lists as xlsx workbooks behind the
// TabularEncoder port.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	coreport "github.com/amirhossein-jamali/transaction-manager/internal/domain/port/core"
)

// Encoder implements the TabularEncoder port using excelize.
type Encoder struct{}

// NewEncoder creates a new xlsx encoder.
func NewEncoder() coreport.TabularEncoder {
	return &Encoder{}
}

// Encode writes the headers and rows into a single worksheet and returns the
// workbook bytes. Columns follow the declared header order.
func (e *Encoder) Encode(sheet string, headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
