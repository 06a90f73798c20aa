package attendance

import (
	"context"
	"fmt"
	"sync"
)

// MemoryWorkbook is an in-memory Workbook, for tests and demos. Updates past the end of a
// worksheet extend it with empty cells, matching the behaviour of a spreadsheet.
type MemoryWorkbook struct {
	sheets map[string][][]string
	mu     sync.RWMutex
}

// NewMemoryWorkbook creates a workbook with the (empty) named worksheets.
func NewMemoryWorkbook(sheets ...string) *MemoryWorkbook {
	w := MemoryWorkbook{
		sheets: map[string][][]string{},
	}

	for _, sheet := range sheets {
		w.sheets[sheet] = [][]string{}
	}

	return &w
}

// Load replaces the contents of a worksheet, creating it if necessary.
func (w *MemoryWorkbook) Load(sheet string, rows [][]string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.sheets[sheet] = clone(rows)
}

func (w *MemoryWorkbook) Rows(ctx context.Context, sheet string) ([][]string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	rows, ok := w.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("unknown worksheet '%s'", sheet)
	}

	return clone(rows), nil
}

func (w *MemoryWorkbook) Update(ctx context.Context, sheet string, row int, column int, values ...string) error {
	if row < 1 || column < 1 {
		return fmt.Errorf("invalid cell (%v,%v)", row, column)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	rows, ok := w.sheets[sheet]
	if !ok {
		return fmt.Errorf("unknown worksheet '%s'", sheet)
	}

	for len(rows) < row {
		rows = append(rows, []string{})
	}

	record := rows[row-1]
	for len(record) < column-1+len(values) {
		record = append(record, "")
	}

	copy(record[column-1:], values)

	rows[row-1] = record
	w.sheets[sheet] = rows

	return nil
}

func (w *MemoryWorkbook) Append(ctx context.Context, sheet string, values ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	rows, ok := w.sheets[sheet]
	if !ok {
		return fmt.Errorf("unknown worksheet '%s'", sheet)
	}

	w.sheets[sheet] = append(rows, append([]string{}, values...))

	return nil
}

func clone(rows [][]string) [][]string {
	c := make([][]string, len(rows))
	for i, row := range rows {
		c[i] = append([]string{}, row...)
	}

	return c
}
