package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/uhppoted/uhppoted-app-attendance/attendance"
)

var AddCmd = Add{
	command: newCommand(),

	name:   "",
	date:   time.Now().Format("2006-01-02"),
	status: attendance.Absent.String(),
}

type Add struct {
	command
	name   string
	date   string
	status string
}

func (c *Add) FlagSet() *flag.FlagSet {
	flagset := c.flagset("add")

	flagset.StringVar(&c.name, "name", c.name, "Person name")
	flagset.StringVar(&c.date, "date", c.date, "Date. Defaults to today")
	flagset.StringVar(&c.status, "status", c.status, "Status e.g. 'Present'. Defaults to 'Absent'")

	return flagset
}

func (c *Add) Execute(args ...any) error {
	options := options(args)

	c.debug = options.Debug

	if strings.TrimSpace(c.name) == "" {
		return fmt.Errorf("--name is a required option")
	}

	ctx := context.Background()
	store, err := c.store(ctx)
	if err != nil {
		return err
	}

	reply, err := store.AddPerson(ctx, c.name, c.date, c.status)
	if err != nil {
		return err
	}

	fmt.Println(reply)

	return nil
}

func (c *Add) Name() string {
	return "add"
}

func (c *Add) Description() string {
	return "Adds a new person to the 'Person_Master' worksheet"
}

func (c *Add) Usage() string {
	return "--url <url> | --workbook <file> --name <name> [--date <date>] [--status <status>]"
}

func (c *Add) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] add [options] --url <URL> --name <name> [--date <date>] [--status <status>]\n", APP)
	fmt.Println()
	fmt.Println("  Appends a new timestamped entry to the 'Person_Master' worksheet")
	fmt.Println()

	helpOptions(c.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println()
	fmt.Println(`    uhppoted-app-attendance add --workbook "attendance.xlsx" --name "Alice" --date 2023-03-15 --status Present`)
	fmt.Println()
}
