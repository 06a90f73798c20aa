package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/uhppoted/uhppoted-app-attendance/attendance"
)

var SearchCmd = Search{
	command: newCommand(),

	name: "",
	file: "",
}

type Search struct {
	command
	name string
	file string
}

func (cmd *Search) Name() string {
	return "search"
}

func (cmd *Search) Description() string {
	return "Retrieves the attendance records with names matching a (partial) name"
}

func (cmd *Search) Usage() string {
	return "--url <url> | --workbook <file> --name <name> [--file <file>]"
}

func (cmd *Search) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] search [options] --url <URL> --name <name> [--file <file>]\n", APP)
	fmt.Println()
	fmt.Println("  Searches the attendance worksheet for records with a name containing the (case insensitive)")
	fmt.Println("  search string. The matching records are printed as JSON or, if --file is specified, written")
	fmt.Println("  to a TSV file. Omitting --name (or an empty --name) matches all the records, unlike the HTTP")
	fmt.Println("  endpoint which requires the 'name' query parameter.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-attendance --debug search --credentials "credentials.json" \`)
	fmt.Println(`                                           --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                           --name "ali"`)
	fmt.Println()
	fmt.Println(`    uhppoted-app-attendance search --workbook "attendance.xlsx" --name "ali" --file "ali.tsv"`)
	fmt.Println()
}

func (cmd *Search) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("search")

	flagset.StringVar(&cmd.name, "name", cmd.name, "(Partial) name to search for. An empty name matches all records")
	flagset.StringVar(&cmd.file, "file", cmd.file, "Optional TSV file for the matching records")

	return flagset
}

func (cmd *Search) Execute(args ...any) error {
	options := options(args)

	cmd.debug = options.Debug

	ctx := context.Background()
	store, err := cmd.store(ctx)
	if err != nil {
		return err
	}

	records, err := store.Search(ctx, cmd.name)
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("search '%v' matched %v records", cmd.name, len(records))
	}

	if cmd.file == "" {
		if b, err := json.MarshalIndent(records, "", "  "); err != nil {
			return err
		} else {
			fmt.Printf("%s\n", string(b))
		}

		return nil
	}

	return cmd.write(records)
}

func (cmd *Search) write(records []attendance.Record) error {
	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".attendance-*.tsv")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := attendance.MakeTSV(tmp, records); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Retrieved %v attendance records to file %s", len(records), cmd.file)

	return nil
}
