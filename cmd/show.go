package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cookiecost/renderer"
	"github.com/google/subcommands"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show a saved calculation and its cost breakdown" }
func (*showCmd) Usage() string {
	return `ccc show <name|id>

  Shows a saved calculation, found by ID or else by name.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: show requires exactly one name or id")
		return subcommands.ExitUsageError
	}
	store := OpenStore()
	calc, err := store.Find(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CalculationMarkdown(calc, Currency(), store.Language()))
	return subcommands.ExitSuccess
}

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a saved calculation" }
func (*deleteCmd) Usage() string {
	return `ccc delete <name|id>

  Deletes a saved calculation, found by ID or else by name.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: delete requires exactly one name or id")
		return subcommands.ExitUsageError
	}
	store := OpenStore()
	calc, err := store.Find(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Delete(calc.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Deleted %q (%s)\n", calc.Name, calc.ID)
	return subcommands.ExitSuccess
}
