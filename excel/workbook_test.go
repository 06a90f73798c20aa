package excel

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhppoted/uhppoted-app-attendance/attendance"
)

func create(t *testing.T) *Workbook {
	path := filepath.Join(t.TempDir(), "attendance.xlsx")

	workbook, err := Create(path,
		Sheet{Name: "Sheet1", Header: []string{"ID", "Name", "Date", "Status"}},
		Sheet{Name: "Person_Master", Header: []string{"Created", "Name", "Date", "Status"}})

	require.NoError(t, err)

	return workbook
}

func TestWorkbookImplementsWorkbook(t *testing.T) {
	var _ attendance.Workbook = &Workbook{}
}

func TestNewWorkbookWithMissingFile(t *testing.T) {
	_, err := NewWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"))

	assert.Error(t, err)
}

func TestRows(t *testing.T) {
	workbook := create(t)

	rows, err := workbook.Rows(context.Background(), "Sheet1")

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"ID", "Name", "Date", "Status"}}, rows)
}

func TestRowsWithUnknownSheet(t *testing.T) {
	workbook := create(t)

	_, err := workbook.Rows(context.Background(), "Sheet2")

	assert.Error(t, err)
}

func TestUpdate(t *testing.T) {
	workbook := create(t)

	require.NoError(t, workbook.Update(context.Background(), "Sheet1", 2, 1, "1", "Alice", "2023-03-15", "Present"))

	reopened, err := NewWorkbook(workbook.path)
	require.NoError(t, err)

	rows, err := reopened.Rows(context.Background(), "Sheet1")

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "Alice", "2023-03-15", "Present"}, rows[1])
}

func TestAppend(t *testing.T) {
	workbook := create(t)

	require.NoError(t, workbook.Append(context.Background(), "Person_Master", "2023-03-15 09:30:45", "Alice", "2023-03-15", "Present"))
	require.NoError(t, workbook.Append(context.Background(), "Person_Master", "2023-03-15 09:31:00", "Bob", "2023-03-15", "Absent"))

	rows, err := workbook.Rows(context.Background(), "Person_Master")

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"2023-03-15 09:30:45", "Alice", "2023-03-15", "Present"}, rows[1])
	assert.Equal(t, []string{"2023-03-15 09:31:00", "Bob", "2023-03-15", "Absent"}, rows[2])
}

func TestStoreWithExcelWorkbook(t *testing.T) {
	workbook := create(t)
	ctx := context.Background()

	require.NoError(t, workbook.Update(ctx, "Sheet1", 2, 1, "1", "Alice"))
	require.NoError(t, workbook.Update(ctx, "Sheet1", 3, 1, "2", "Bob"))

	clock := func() time.Time {
		return time.Date(2023, time.March, 15, 9, 30, 45, 0, time.Local)
	}

	store := attendance.NewStore(workbook, attendance.WithClock(clock))

	require.NoError(t, store.MarkAttended(ctx, 2, "2023-03-15"))

	records, err := store.Search(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []attendance.Record{{ID: 2, Name: "Bob", Date: "2023-03-15", Status: "Present"}}, records)

	reply, err := store.AddPerson(ctx, "Carol", "2023-03-15", "Present")
	require.NoError(t, err)
	assert.Equal(t, attendance.Added, reply)

	rows, err := workbook.Rows(ctx, "Person_Master")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2023-03-15 09:30:45", "Carol", "2023-03-15", "Present"}, rows[1])
}
