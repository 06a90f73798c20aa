package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/uhppoted/uhppoted-app-attendance/attendance"
)

const URL = "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0"

type request struct {
	method string
	path   string
	query  map[string]string
	body   map[string]any
}

func fake(t *testing.T, reply string) (*Workbook, *[]request) {
	requests := []request{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq := request{
			method: r.Method,
			path:   r.URL.Path,
			query:  map[string]string{},
		}

		for k := range r.URL.Query() {
			rq.query[k] = r.URL.Query().Get(k)
		}

		if b, err := io.ReadAll(r.Body); err == nil && len(b) > 0 {
			json.Unmarshal(b, &rq.body)
		}

		requests = append(requests, rq)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reply))
	}))

	t.Cleanup(srv.Close)

	workbook, err := NewWorkbook(context.Background(), srv.Client(), URL, option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	return workbook, &requests
}

func TestWorkbookImplementsWorkbook(t *testing.T) {
	var _ attendance.Workbook = &Workbook{}
}

func TestSpreadsheetID(t *testing.T) {
	id, err := SpreadsheetID(URL)

	require.NoError(t, err)
	assert.Equal(t, "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", id)
}

func TestSpreadsheetIDWithInvalidURL(t *testing.T) {
	for _, url := range []string{"", "https://example.com/spreadsheets/d/12345", "https://docs.google.com/spreadsheets/d/"} {
		_, err := SpreadsheetID(url)

		assert.ErrorIs(t, err, ErrInvalidURL, "url:%v", url)
	}
}

func TestColumnName(t *testing.T) {
	tests := map[int]string{
		1:   "A",
		3:   "C",
		26:  "Z",
		27:  "AA",
		28:  "AB",
		52:  "AZ",
		703: "AAA",
	}

	for column, expected := range tests {
		assert.Equal(t, expected, columnName(column), "column:%v", column)
	}
}

func TestSpan(t *testing.T) {
	area, err := span("Sheet1", 3, 3, 2)

	require.NoError(t, err)
	assert.Equal(t, "'Sheet1'!C3:D3", area)
}

func TestSpanWithQuotedSheetName(t *testing.T) {
	area, err := span("Bob's Sheet", 2, 1, 1)

	require.NoError(t, err)
	assert.Equal(t, "'Bob''s Sheet'!A2:A2", area)
}

func TestSpanWithInvalidRange(t *testing.T) {
	_, err := span("Sheet1", 0, 3, 2)

	assert.Error(t, err)
}

func TestRows(t *testing.T) {
	workbook, requests := fake(t, `{
	  "range": "Sheet1!A1:D3",
	  "majorDimension": "ROWS",
	  "values": [ ["ID","Name","Date","Status"], ["1","Alice","2023-03-15","Present"], ["2","Bob"] ]
	}`)

	rows, err := workbook.Rows(context.Background(), "Sheet1")

	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ID", "Name", "Date", "Status"},
		{"1", "Alice", "2023-03-15", "Present"},
		{"2", "Bob"},
	}, rows)

	require.Len(t, *requests, 1)
	assert.Equal(t, http.MethodGet, (*requests)[0].method)
	assert.Equal(t, "/v4/spreadsheets/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/values/'Sheet1'", (*requests)[0].path)
}

func TestUpdate(t *testing.T) {
	workbook, requests := fake(t, `{}`)

	err := workbook.Update(context.Background(), "Sheet1", 3, 3, "2023-03-15", "Present")

	require.NoError(t, err)
	require.Len(t, *requests, 1)

	rq := (*requests)[0]

	assert.Equal(t, http.MethodPut, rq.method)
	assert.Equal(t, "/v4/spreadsheets/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/values/'Sheet1'!C3:D3", rq.path)
	assert.Equal(t, "USER_ENTERED", rq.query["valueInputOption"])
	assert.Equal(t, []any{[]any{"2023-03-15", "Present"}}, rq.body["values"])
}

func TestAppend(t *testing.T) {
	workbook, requests := fake(t, `{}`)

	err := workbook.Append(context.Background(), "Person_Master", "2023-03-15 09:30:45", "Alice", "2023-03-15", "Present")

	require.NoError(t, err)
	require.Len(t, *requests, 1)

	rq := (*requests)[0]

	assert.Equal(t, http.MethodPost, rq.method)
	assert.Equal(t, "/v4/spreadsheets/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/values/'Person_Master':append", rq.path)
	assert.Equal(t, "USER_ENTERED", rq.query["valueInputOption"])
	assert.Equal(t, "INSERT_ROWS", rq.query["insertDataOption"])
	assert.Equal(t, []any{[]any{"2023-03-15 09:30:45", "Alice", "2023-03-15", "Present"}}, rq.body["values"])
}

func TestStoreWithGoogleWorkbook(t *testing.T) {
	workbook, _ := fake(t, `{
	  "values": [ ["ID","Name","Date","Status"], ["1","Alice","",""], ["2","Bob","",""] ]
	}`)

	store := attendance.NewStore(workbook)

	records, err := store.Search(context.Background(), "BOB")

	require.NoError(t, err)
	assert.Equal(t, []attendance.Record{{ID: 2, Name: "Bob"}}, records)
}
