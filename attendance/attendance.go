package attendance

import (
	"time"
)

// Record is a single row of the attendance worksheet. The ID is the 1-based row index
// after the header row i.e. record N is stored in worksheet row N+1.
type Record struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

// Person is an entry in the append-only 'Person_Master' worksheet.
type Person struct {
	Created time.Time
	Name    string
	Date    string
	Status  string
}

type Status string

const (
	Present Status = "Present"
	Absent  Status = "Absent"
)

// Attendance worksheet columns (1-based). Column A holds the ID, which is ignored
// in favour of the row index.
const (
	NameColumn   = 2
	DateColumn   = 3
	StatusColumn = 4
)

const TimestampFormat = "2006-01-02 15:04:05"

const Added = "New person added!"

func (s Status) String() string {
	return string(s)
}

func (p Person) row() []string {
	return []string{
		p.Created.Format(TimestampFormat),
		p.Name,
		p.Date,
		p.Status,
	}
}

// makeRecords converts the worksheet rows (including the header row) to attendance
// records. Short rows are padded with empty cells.
func makeRecords(rows [][]string) []Record {
	records := []Record{}

	for i := 1; i < len(rows); i++ {
		row := rows[i]

		records = append(records, Record{
			ID:     i,
			Name:   cell(row, NameColumn),
			Date:   cell(row, DateColumn),
			Status: cell(row, StatusColumn),
		})
	}

	return records
}

func cell(row []string, column int) string {
	if column > 0 && column <= len(row) {
		return row[column-1]
	}

	return ""
}
