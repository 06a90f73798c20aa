package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/uhppoted/uhppoted-app-attendance/google"
)

var AuthoriseCmd = Authorise{
	command: newCommand(),
}

type Authorise struct {
	command
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises uhppoted-app-attendance to access a Google Sheets spreadsheet"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options] --credentials <file>\n", APP)
	fmt.Println()
	fmt.Println("  Authorises uhppoted-app-attendance to access a Google Sheets spreadsheet. Displays the Google")
	fmt.Println("  consent page URL and waits for the authorisation code, which is exchanged for an OAuth2 token")
	fmt.Println("  and cached in the tokens directory.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-attendance authorise --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("authorise", flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&cmd.tokens, "tokens", cmd.tokens, "Directory for the authorisation tokens. Defaults to <workdir>/.google")

	return flagset
}

func (cmd *Authorise) Execute(args ...any) error {
	options := options(args)

	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	file, err := google.Authenticate(context.Background(), cmd.credentials, google.SHEETS, cmd.tokensDir(), os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("authorisation error (%v)", err)
	}

	infof("Saved OAuth2 token to %v", file)

	return nil
}
