package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestInfof(t *testing.T) {
	var b bytes.Buffer

	SetOutput(&b)
	SetDebug(false)

	Infof("search", "found %v records", 3)

	var entry map[string]any
	if err := json.Unmarshal(b.Bytes(), &entry); err != nil {
		t.Fatalf("Error decoding log entry (%v)", err)
	}

	if entry["level"] != "info" {
		t.Errorf("Incorrect log level - expected:%v, got:%v", "info", entry["level"])
	}

	if entry["tag"] != "search" {
		t.Errorf("Incorrect log tag - expected:%v, got:%v", "search", entry["tag"])
	}

	if entry["message"] != "found 3 records" {
		t.Errorf("Incorrect log message - expected:%v, got:%v", "found 3 records", entry["message"])
	}
}

func TestDebugfWithDebugDisabled(t *testing.T) {
	var b bytes.Buffer

	SetOutput(&b)
	SetDebug(false)

	Debugf("search", "not logged")

	if b.Len() != 0 {
		t.Errorf("Unexpected debug output with debug disabled: %s", b.String())
	}
}

func TestDebugfWithDebugEnabled(t *testing.T) {
	var b bytes.Buffer

	SetOutput(&b)
	SetDebug(true)
	defer SetDebug(false)

	Debugf("search", "query:%v", "ali")

	if !strings.Contains(b.String(), `"level":"debug"`) {
		t.Errorf("Expected debug entry, got: %s", b.String())
	}
}

func TestErrorf(t *testing.T) {
	var b bytes.Buffer

	SetOutput(&b)
	SetDebug(false)

	Errorf("httpd", "search '%v' failed (%v)", "ali", "broken")

	var entry map[string]any
	if err := json.Unmarshal(b.Bytes(), &entry); err != nil {
		t.Fatalf("Error decoding log entry (%v)", err)
	}

	if entry["level"] != "error" {
		t.Errorf("Incorrect log level - expected:%v, got:%v", "error", entry["level"])
	}

	if entry["message"] != "search 'ali' failed (broken)" {
		t.Errorf("Incorrect log message - expected:%v, got:%v", "search 'ali' failed (broken)", entry["message"])
	}
}
