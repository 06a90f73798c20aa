package commands

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/uhppoted/uhppoted-app-attendance/attendance"
	"github.com/uhppoted/uhppoted-app-attendance/config"
	"github.com/uhppoted/uhppoted-app-attendance/excel"
	"github.com/uhppoted/uhppoted-app-attendance/google"
	"github.com/uhppoted/uhppoted-app-attendance/log"
)

const APP = "uhppoted-app-attendance"

type Options struct {
	Config string
	Debug  bool
}

type command struct {
	workdir     string
	credentials string
	tokens      string
	url         string
	workbook    string
	sheet       string
	people      string
	debug       bool
}

func newCommand() command {
	return command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		workbook:    "",
		sheet:       "Sheet1",
		people:      "Person_Master",
		debug:       false,
	}
}

// Configure replaces the command line defaults with the values from the configuration.
func Configure(cfg *config.Config) {
	commands := []*command{
		&AuthoriseCmd.command,
		&SearchCmd.command,
		&MarkCmd.command,
		&AddCmd.command,
		&ServeCmd.command,
	}

	for _, c := range commands {
		c.configure(cfg)
	}

	if cfg.Bind != "" {
		ServeCmd.bind = cfg.Bind
	}

	if cfg.MaxConnections > 0 {
		ServeCmd.maxConnections = cfg.MaxConnections
	}
}

func (c *command) configure(cfg *config.Config) {
	set := func(v *string, s string) {
		if s != "" {
			*v = s
		}
	}

	set(&c.workdir, cfg.Workdir)
	set(&c.credentials, cfg.Credentials)
	set(&c.tokens, cfg.Tokens)
	set(&c.url, cfg.URL)
	set(&c.workbook, cfg.Workbook)
	set(&c.sheet, cfg.Sheet)
	set(&c.people, cfg.People)
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&c.tokens, "tokens", c.tokens, "Directory for the authorisation tokens. Defaults to <workdir>/.google")
	flagset.StringVar(&c.url, "url", c.url, "Google Sheets spreadsheet URL")
	flagset.StringVar(&c.workbook, "workbook", c.workbook, "Excel workbook (.xlsx) file, as an alternative to a Google Sheets spreadsheet")
	flagset.StringVar(&c.sheet, "sheet", c.sheet, "Attendance worksheet name")
	flagset.StringVar(&c.people, "people", c.people, "Person master worksheet name")

	return flagset
}

func (c *command) tokensDir() string {
	if c.tokens != "" {
		return c.tokens
	}

	return filepath.Join(c.workdir, ".google")
}

// store opens the attendance store for either the --workbook file or the --url spreadsheet.
func (c *command) store(ctx context.Context) (*attendance.Store, error) {
	var workbook attendance.Workbook

	url := strings.TrimSpace(c.url)
	file := strings.TrimSpace(c.workbook)

	switch {
	case url != "" && file != "":
		return nil, fmt.Errorf("--url and --workbook are mutually exclusive")

	case file != "":
		if c.debug {
			debugf("Workbook - file:%s  sheet:%s  people:%s", file, c.sheet, c.people)
		}

		if w, err := excel.NewWorkbook(file); err != nil {
			return nil, err
		} else {
			workbook = w
		}

	case url != "":
		if strings.TrimSpace(c.credentials) == "" {
			return nil, fmt.Errorf("--credentials is a required option")
		}

		if c.debug {
			debugf("Spreadsheet - URL:%s  sheet:%s  people:%s", url, c.sheet, c.people)
		}

		client, err := google.Authorize(c.credentials, google.SHEETS, c.tokensDir())
		if err != nil {
			return nil, fmt.Errorf("authentication/authorization error (%v)", err)
		}

		if w, err := google.NewWorkbook(ctx, client, url); err != nil {
			return nil, err
		} else {
			workbook = w
		}

	default:
		return nil, fmt.Errorf("--url or --workbook is a required option")
	}

	return attendance.NewStore(workbook, attendance.WithSheets(c.sheet, c.people)), nil
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	fmt.Println()

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-16s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("    --debug            Displays internal information for diagnosing errors")
}

func options(args []any) *Options {
	if len(args) > 0 {
		if options, ok := args[0].(*Options); ok && options != nil {
			return options
		}
	}

	return &Options{}
}

func debugf(format string, args ...any) {
	log.Debugf(APP, format, args...)
}

func infof(format string, args ...any) {
	log.Infof(APP, format, args...)
}

func warnf(format string, args ...any) {
	log.Warnf(APP, format, args...)
}
