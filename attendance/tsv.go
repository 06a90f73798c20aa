package attendance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// MakeTSV writes the attendance records as a tab separated file with an 'ID Name Date Status' header.
func MakeTSV(f io.Writer, records []Record) error {
	header := []string{"ID", "Name", "Date", "Status"}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		record := []string{
			fmt.Sprintf("%v", r.ID),
			clean(r.Name),
			clean(r.Date),
			clean(r.Status),
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

func clean(v string) string {
	return strings.TrimSpace(v)
}
