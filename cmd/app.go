// Package cmd implements the CLI application to keep cookie cost calculations.
package cmd

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/etnz/cookiecost"
	"github.com/google/subcommands"
)

// groups lists the subcommands, by group.
var groups = []struct {
	name     string
	commands []subcommands.Command
}{
	{"calculations", []subcommands.Command{
		&listCmd{},
		&recentCmd{},
		&showCmd{},
		&editCmd{},
		&deleteCmd{},
	}},
	{"data", []subcommands.Command{
		&exportCmd{},
		&importCmd{},
	}},
	{"sharing", []subcommands.Command{
		&shareCmd{},
		&openCmd{},
	}},
	{"settings", []subcommands.Command{
		&langCmd{},
		&topicCmd{},
	}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// Known reports whether 'name' is a builtin subcommand.
func Known(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, g := range groups {
		for _, cmd := range g.commands {
			if cmd.Name() == name {
				return true
			}
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dataDir  = flag.String("data-dir", "", "Path to the folder holding saved calculations (default "+defaultDataDir+", env "+EnvDataDir+")")
	currency = flag.String("currency", "", "Currency used to display costs (default "+cookiecost.DefaultCurrency+", env "+EnvCurrency+")")
	origin   = flag.String("origin", "", "Address of the web calculator, used in share links (default "+defaultOrigin+", env "+EnvOrigin+")")
	// Verbose enables logging.
	Verbose = flag.Bool("v", false, "Verbose output")
)

const (
	defaultDataDir = ".cookiecost"
	defaultOrigin  = "http://localhost:8080"
)

// setting returns the flag value if set, or the environment value, or 'def'.
func setting(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// DataDir returns the folder holding saved calculations.
func DataDir() string { return setting(*dataDir, EnvDataDir, defaultDataDir) }

// Currency returns the display currency.
func Currency() string { return setting(*currency, EnvCurrency, cookiecost.DefaultCurrency) }

// Origin returns the base address of share links.
func Origin() string { return setting(*origin, EnvOrigin, defaultOrigin) }

// SetupLogging discards log output unless verbose is on, from the flag or the environment.
func SetupLogging() {
	if *Verbose || os.Getenv(EnvVerbose) == "true" {
		*Verbose = true
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// OpenStore opens the store in the app data folder.
func OpenStore() *cookiecost.Store {
	return cookiecost.NewStore(cookiecost.NewFileBackend(DataDir()))
}
