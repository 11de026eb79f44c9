package main

import (
	"fmt"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"io"
	"os"
)

var log = logging.MustGetLogger("main")

var stderrLogFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

// Options - Options shared by all commands
type Options struct {
	LogLevel string `short:"l" long:"loglevel" default:"info" env:"HASHSWEEP_LOGLEVEL" description:"set the logging level [debug, info, notice, warning, error, critical]"`
}

func main() {
	envErr := godotenv.Load()

	parser, opts, err := newParser(os.Stdout)
	if err != nil {
		log.Critical(err)
		os.Exit(1)
	}

	parser.CommandHandler = func(command flags.Commander, args []string) error {
		err := setupLogging(opts.LogLevel)
		if err != nil {
			return err
		}
		if envErr != nil {
			log.Debugf("no .env file loaded: %s", envErr)
		}
		if command == nil {
			return nil
		}

		return command.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}

// newParser - Returns the command line parser with every command writing its results to out.
// An error is returned if any command can not be registered, for instance because of clashing option names.
func newParser(out io.Writer) (parser *flags.Parser, opts *Options, err error) {
	opts = &Options{}
	parser = flags.NewParser(opts, flags.Default)

	commands := []struct {
		name             string
		shortDescription string
		longDescription  string
		data             interface{}
	}{
		{
			name:             "run",
			shortDescription: "run one experiment",
			longDescription:  "The run command inserts the keys of a single load factor into a new table and prints the statistics",
			data:             &RunCommand{out: out},
		},
		{
			name:             "sweep",
			shortDescription: "run a load factor sweep",
			longDescription:  "The sweep command runs one experiment per load factor and prints the resulting curve as text, json or html",
			data:             &SweepCommand{out: out},
		},
		{
			name:             "serve",
			shortDescription: "serve sweeps over http",
			longDescription:  "The serve command exposes /sweep, /run and /metrics over http until interrupted",
			data:             &ServeCommand{},
		},
	}

	for _, c := range commands {
		_, err = parser.AddCommand(c.name, c.shortDescription, c.longDescription, c.data)
		if err != nil {
			err = fmt.Errorf("error while registering command %s: %w", c.name, err)
			return
		}
	}

	return
}

// setupLogging - Sends all log output to stderr, keeping stdout for results
func setupLogging(logLevel string) (err error) {
	level, err := logging.LogLevel(logLevel)
	if err != nil {
		return
	}

	backendStderr := logging.NewLogBackend(os.Stderr, "", 0)
	logging.SetBackend(logging.NewBackendFormatter(backendStderr, stderrLogFormat))
	logging.SetLevel(level, "")

	return
}
