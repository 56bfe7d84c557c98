// Package cmd implements the CLI application to manage a personal
// investment tracker.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/investmind/investmind"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sessionCmd{}, "account")
	c.Register(&signupCmd{}, "account")
	c.Register(&summaryCmd{}, "account")

	c.Register(&investCmd{}, "investments")
	c.Register(&listCmd{}, "investments")
	c.Register(&investmentsCmd{}, "investments")

	c.Register(&topicCmd{}, "resources")
}

// CommandNames lists every registered subcommand, for shell completion.
func CommandNames() []string {
	return []string{"session", "signup", "summary", "invest", "list", "investments", "topic"}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "", `Path to the folder holding the user store (default $INVESTMIND_DATA_DIR or ".")`)
var logFile = flag.String("log-file", "", `Path to the operational log file (default $INVESTMIND_LOG_FILE or "investminds.log")`)

// dataDirPath resolves the data folder from the flag, the environment, or
// the working directory, in that order.
func dataDirPath() string {
	if *dataDir != "" {
		return *dataDir
	}
	if v := os.Getenv("INVESTMIND_DATA_DIR"); v != "" {
		return v
	}
	return "."
}

func logFilePath() string {
	if *logFile != "" {
		return *logFile
	}
	if v := os.Getenv("INVESTMIND_LOG_FILE"); v != "" {
		return v
	}
	return "investminds.log"
}

func storePath() string {
	return filepath.Join(dataDirPath(), investmind.StoreFilename)
}

// OpenRegistry is the central function to load the user store. A missing
// store is the first-run case and yields an empty registry; a store that
// cannot be parsed is fatal.
func OpenRegistry() (*investmind.Registry, error) {
	return investmind.LoadRegistry(storePath())
}

// SaveRegistry rewrites the whole user store.
func SaveRegistry(r *investmind.Registry) error {
	return investmind.SaveRegistry(storePath(), r)
}

// authenticate loads the user store and authenticates the given
// credentials, printing any failure to stderr. It is the common entry
// point of the non-interactive commands.
func authenticate(username, password string) (*investmind.Registry, *investmind.User, subcommands.ExitStatus) {
	reg, err := OpenRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, subcommands.ExitFailure
	}
	user, err := reg.Authenticate(username, password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, subcommands.ExitUsageError
	}
	return reg, user, subcommands.ExitSuccess
}

// openLogger opens the append-only operational log. Every command emits
// its events through the returned logger and closes the closer when done.
func openLogger() (zerolog.Logger, io.Closer, error) {
	f, err := os.OpenFile(logFilePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return zerolog.New(f).With().Timestamp().Logger(), f, nil
}
