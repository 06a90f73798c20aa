package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the defaults for the command line options. Values are taken from the
// ATTENDANCE_* environment variables, optionally seeded from a .env file.
type Config struct {
	Workdir        string
	Credentials    string
	Tokens         string
	URL            string
	Workbook       string
	Sheet          string
	People         string
	Bind           string
	MaxConnections int
}

const (
	WORKDIR         = "ATTENDANCE_WORKDIR"
	CREDENTIALS     = "ATTENDANCE_CREDENTIALS"
	TOKENS          = "ATTENDANCE_TOKENS"
	URL             = "ATTENDANCE_URL"
	WORKBOOK        = "ATTENDANCE_WORKBOOK"
	SHEET           = "ATTENDANCE_SHEET"
	PEOPLE          = "ATTENDANCE_PEOPLE"
	BIND            = "ATTENDANCE_BIND"
	MAX_CONNECTIONS = "ATTENDANCE_MAX_CONNECTIONS"
)

// NewConfig returns a Config initialised with the built-in defaults.
func NewConfig() *Config {
	return &Config{
		Sheet:          "Sheet1",
		People:         "Person_Master",
		Bind:           "0.0.0.0:8080",
		MaxConnections: 32,
	}
}

// Load reads the (optional) .env file and then overlays any ATTENDANCE_* environment
// variables. A missing file is not an error. Existing environment variables take
// precedence over the file.
func (c *Config) Load(file string) error {
	if strings.TrimSpace(file) != "" {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error loading configuration from %v (%w)", file, err)
		}
	}

	lookup(WORKDIR, &c.Workdir)
	lookup(CREDENTIALS, &c.Credentials)
	lookup(TOKENS, &c.Tokens)
	lookup(URL, &c.URL)
	lookup(WORKBOOK, &c.Workbook)
	lookup(SHEET, &c.Sheet)
	lookup(PEOPLE, &c.People)
	lookup(BIND, &c.Bind)

	if v, ok := os.LookupEnv(MAX_CONNECTIONS); ok {
		if N, err := strconv.Atoi(strings.TrimSpace(v)); err != nil || N < 1 {
			return fmt.Errorf("invalid %v '%v'", MAX_CONNECTIONS, v)
		} else {
			c.MaxConnections = N
		}
	}

	return nil
}

func lookup(key string, v *string) {
	if s, ok := os.LookupEnv(key); ok && strings.TrimSpace(s) != "" {
		*v = strings.TrimSpace(s)
	}
}
