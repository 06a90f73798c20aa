package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var ErrInvalidURL = errors.New("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")

// Workbook implements attendance.Workbook for a Google Sheets spreadsheet.
type Workbook struct {
	google        *sheets.Service
	spreadsheetID string
}

// SpreadsheetID extracts the spreadsheet ID from a Google Sheets URL.
func SpreadsheetID(url string) (string, error) {
	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(strings.TrimSpace(url))
	if len(match) < 2 || match[1] == "" {
		return "", ErrInvalidURL
	}

	return match[1], nil
}

func NewWorkbook(ctx context.Context, client *http.Client, url string, opts ...option.ClientOption) (*Workbook, error) {
	id, err := SpreadsheetID(url)
	if err != nil {
		return nil, err
	}

	opts = append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)

	google, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	return &Workbook{
		google:        google,
		spreadsheetID: id,
	}, nil
}

func (w *Workbook) Rows(ctx context.Context, sheet string) ([][]string, error) {
	response, err := w.google.Spreadsheets.Values.Get(w.spreadsheetID, quote(sheet)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%w)", err)
	}

	rows := make([][]string, len(response.Values))
	for i, row := range response.Values {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = fmt.Sprintf("%v", v)
		}
	}

	return rows, nil
}

func (w *Workbook) Update(ctx context.Context, sheet string, row int, column int, values ...string) error {
	area, err := span(sheet, row, column, len(values))
	if err != nil {
		return err
	}

	rq := sheets.ValueRange{
		Range:  area,
		Values: [][]any{toRow(values)},
	}

	if _, err := w.google.Spreadsheets.Values.Update(w.spreadsheetID, area, &rq).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("error updating Google Sheets range %v (%w)", area, err)
	}

	return nil
}

func (w *Workbook) Append(ctx context.Context, sheet string, values ...string) error {
	rq := sheets.ValueRange{
		Values: [][]any{toRow(values)},
	}

	if _, err := w.google.Spreadsheets.Values.Append(w.spreadsheetID, quote(sheet), &rq).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("error appending to Google Sheets worksheet %v (%w)", sheet, err)
	}

	return nil
}

func toRow(values []string) []any {
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}

	return row
}

// span returns the A1 notation for a single row range e.g. 'Sheet1'!C3:D3
func span(sheet string, row, column, N int) (string, error) {
	if row < 1 || column < 1 || N < 1 {
		return "", fmt.Errorf("invalid range (row:%v column:%v width:%v)", row, column, N)
	}

	left := columnName(column)
	right := columnName(column + N - 1)

	return fmt.Sprintf("%s!%s%v:%s%v", quote(sheet), left, row, right, row), nil
}

// columnName converts a 1-based column number to the spreadsheet column letters e.g. 1 => A, 28 => AB.
func columnName(column int) string {
	name := ""
	for column > 0 {
		column--
		name = string(rune('A'+column%26)) + name
		column /= 26
	}

	return name
}

func quote(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}
