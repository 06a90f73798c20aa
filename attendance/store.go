package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Workbook is the tabular data source backing the attendance store. Rows and columns
// are 1-based worksheet coordinates.
type Workbook interface {
	Rows(ctx context.Context, sheet string) ([][]string, error)
	Update(ctx context.Context, sheet string, row int, column int, values ...string) error
	Append(ctx context.Context, sheet string, values ...string) error
}

var ErrInvalidRow = errors.New("invalid attendance record ID")

type Store struct {
	workbook   Workbook
	attendance string
	people     string
	now        func() time.Time
	mu         sync.RWMutex
}

type Option func(*Store)

// WithSheets sets the names of the attendance and person master worksheets.
func WithSheets(attendance, people string) Option {
	return func(s *Store) {
		if attendance != "" {
			s.attendance = attendance
		}

		if people != "" {
			s.people = people
		}
	}
}

// WithClock replaces the clock used to timestamp new 'Person_Master' entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(workbook Workbook, options ...Option) *Store {
	s := Store{
		workbook:   workbook,
		attendance: "Sheet1",
		people:     "Person_Master",
		now:        time.Now,
	}

	for _, option := range options {
		option(&s)
	}

	return &s
}

// Search returns the attendance records with a name containing the query, ignoring
// case and preserving the worksheet order. An empty query matches everything.
func (s *Store) Search(ctx context.Context, query string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.workbook.Rows(ctx, s.attendance)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet %v (%w)", s.attendance, err)
	}

	q := strings.ToLower(query)
	matched := []Record{}

	for _, record := range makeRecords(rows) {
		if strings.Contains(strings.ToLower(record.Name), q) {
			matched = append(matched, record)
		}
	}

	return matched, nil
}

// MarkAttended sets the date and marks the attendance record as 'Present'. IDs past the
// end of the worksheet are not range checked and extend the worksheet, but IDs less than
// 1 (which would overwrite the header row) are rejected with ErrInvalidRow.
func (s *Store) MarkAttended(ctx context.Context, id int, date string) error {
	if id < 1 {
		return fmt.Errorf("%w (%v)", ErrInvalidRow, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.workbook.Update(ctx, s.attendance, id+1, DateColumn, date, Present.String()); err != nil {
		return fmt.Errorf("error updating attendance record %v (%w)", id, err)
	}

	return nil
}

// AddPerson appends a new timestamped entry to the person master worksheet.
func (s *Store) AddPerson(ctx context.Context, name, date, status string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	person := Person{
		Created: s.now(),
		Name:    name,
		Date:    date,
		Status:  status,
	}

	if err := s.workbook.Append(ctx, s.people, person.row()...); err != nil {
		return "", fmt.Errorf("error adding person to sheet %v (%w)", s.people, err)
	}

	return Added, nil
}
