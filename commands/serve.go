package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/net/netutil"

	"github.com/uhppoted/uhppoted-app-attendance/httpd"
)

var ServeCmd = Serve{
	command: newCommand(),

	bind:           "0.0.0.0:8080",
	maxConnections: 32,
}

type Serve struct {
	command
	bind           string
	maxConnections int
}

func (cmd *Serve) Name() string {
	return "serve"
}

func (cmd *Serve) Description() string {
	return "Runs an HTTP server that returns the attendance records matching a name as JSON"
}

func (cmd *Serve) Usage() string {
	return "--url <url> | --workbook <file> [--bind <address:port>]"
}

func (cmd *Serve) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] serve [options] --url <URL> [--bind <address:port>]\n", APP)
	fmt.Println()
	fmt.Println("  Runs an HTTP server with a single GET endpoint that returns the attendance records with names")
	fmt.Println("  matching the 'name' query parameter as a JSON array e.g.")
	fmt.Println()
	fmt.Println("    curl 'http://127.0.0.1:8080/?name=ali'")
	fmt.Println(`    [{"id":1,"name":"Alice","date":"2023-03-15","status":"Present"}]`)
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-attendance serve --credentials "credentials.json" \`)
	fmt.Println(`                                  --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                  --bind 0.0.0.0:8080`)
	fmt.Println()
}

func (cmd *Serve) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("serve")

	flagset.StringVar(&cmd.bind, "bind", cmd.bind, "HTTP server bind address")
	flagset.IntVar(&cmd.maxConnections, "max-connections", cmd.maxConnections, "Maximum number of concurrent HTTP connections")

	return flagset
}

func (cmd *Serve) Execute(args ...any) error {
	options := options(args)

	cmd.debug = options.Debug

	if cmd.maxConnections < 1 {
		return fmt.Errorf("invalid --max-connections (%v)", cmd.maxConnections)
	}

	store, err := cmd.store(context.Background())
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", cmd.bind)
	if err != nil {
		return err
	}

	// ... wait for CTRL-C or SIGTERM
	interrupt := make(chan os.Signal, 1)
	stop := make(chan struct{})

	signal.Notify(interrupt, signals()...)
	defer signal.Stop(interrupt)

	go func() {
		<-interrupt
		close(stop)
	}()

	return serve(listener, store, cmd.maxConnections, stop)
}

// serve runs the HTTP server on the listener until either the server fails or the stop
// channel is closed, after which it is shut down gracefully.
func serve(listener net.Listener, store httpd.Searcher, maxConnections int, stop <-chan struct{}) error {
	srv := &http.Server{
		Handler:           httpd.NewRouter(store),
		ReadHeaderTimeout: 15 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		if err := srv.Serve(netutil.LimitListener(listener, maxConnections)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	infof("HTTP server listening on %v", listener.Addr())

	select {
	case <-stop:
		infof("... shutting down")

	case err := <-errs:
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		warnf("%v", err)
	}

	return nil
}
