package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"
)

var MarkCmd = Mark{
	command: newCommand(),

	id:   0,
	date: time.Now().Format("2006-01-02"),
}

type Mark struct {
	command
	id   int
	date string
}

func (c *Mark) FlagSet() *flag.FlagSet {
	flagset := c.flagset("mark")

	flagset.IntVar(&c.id, "id", c.id, "Attendance record ID (as returned by 'search')")
	flagset.StringVar(&c.date, "date", c.date, "Attendance date. Defaults to today")

	return flagset
}

func (c *Mark) Execute(args ...any) error {
	options := options(args)

	c.debug = options.Debug

	if c.id < 1 {
		return fmt.Errorf("--id is a required option")
	}

	if strings.TrimSpace(c.date) == "" {
		return fmt.Errorf("--date is a required option")
	}

	ctx := context.Background()
	store, err := c.store(ctx)
	if err != nil {
		return err
	}

	if err := store.MarkAttended(ctx, c.id, c.date); err != nil {
		return err
	}

	infof("Marked attendance record %v as present on %v", c.id, c.date)

	return nil
}

func (c *Mark) Name() string {
	return "mark"
}

func (c *Mark) Description() string {
	return "Marks an attendance record as 'Present'"
}

func (c *Mark) Usage() string {
	return "--url <url> | --workbook <file> --id <id> [--date <date>]"
}

func (c *Mark) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] mark [options] --url <URL> --id <id> [--date <date>]\n", APP)
	fmt.Println()
	fmt.Println("  Sets the date and marks the attendance record as 'Present'. The record ID is the row number")
	fmt.Println("  after the header row, as returned by 'search'")
	fmt.Println()

	helpOptions(c.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println()
	fmt.Println(`    uhppoted-app-attendance --debug mark --credentials "credentials.json" \`)
	fmt.Println(`                                         --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                         --id 17 --date 2023-03-15`)
	fmt.Println()
}
