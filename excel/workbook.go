package excel

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
)

// Workbook implements attendance.Workbook for a local .xlsx file. The file is opened for
// each operation so that changes made by other applications are picked up.
type Workbook struct {
	path string
	mu   sync.Mutex
}

func NewWorkbook(path string) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("unable to open workbook %v (%w)", path, err)
	}

	return &Workbook{
		path: path,
	}, nil
}

// Sheet is the name and (optional) header row of a worksheet in a new workbook.
type Sheet struct {
	Name   string
	Header []string
}

// Create creates a new workbook with the worksheets in the order listed.
func Create(path string, sheets ...Sheet) (*Workbook, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 && sheet.Name != "Sheet1" {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return nil, err
			}
		} else if i > 0 {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return nil, err
			}
		}

		if len(sheet.Header) > 0 {
			if err := f.SetSheetRow(sheet.Name, "A1", toRow(sheet.Header)); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("error creating workbook %v (%w)", path, err)
	}

	return &Workbook{
		path: path,
	}, nil
}

func (w *Workbook) Rows(ctx context.Context, sheet string) ([][]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}

	defer f.Close()

	if index, err := f.GetSheetIndex(sheet); err != nil || index < 0 {
		return nil, fmt.Errorf("unknown worksheet '%s'", sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sheet, err)
	}

	return rows, nil
}

func (w *Workbook) Update(ctx context.Context, sheet string, row int, column int, values ...string) error {
	cell, err := excelize.CoordinatesToCellName(column, row)
	if err != nil {
		return err
	}

	return w.update(sheet, func(f *excelize.File) error {
		return f.SetSheetRow(sheet, cell, toRow(values))
	})
}

func (w *Workbook) Append(ctx context.Context, sheet string, values ...string) error {
	return w.update(sheet, func(f *excelize.File) error {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return err
		}

		cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
		if err != nil {
			return err
		}

		return f.SetSheetRow(sheet, cell, toRow(values))
	})
}

func (w *Workbook) update(sheet string, f func(*excelize.File) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	xlsx, err := excelize.OpenFile(w.path)
	if err != nil {
		return fmt.Errorf("failed to open Excel file: %w", err)
	}

	defer xlsx.Close()

	if index, err := xlsx.GetSheetIndex(sheet); err != nil || index < 0 {
		return fmt.Errorf("unknown worksheet '%s'", sheet)
	}

	if err := f(xlsx); err != nil {
		return fmt.Errorf("error updating worksheet %v (%w)", sheet, err)
	}

	return xlsx.Save()
}

func toRow(values []string) *[]any {
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}

	return &row
}
