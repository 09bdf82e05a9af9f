package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/etnz/cookiecost"
	"github.com/etnz/cookiecost/renderer"
	"github.com/google/subcommands"
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

type shareCmd struct {
	copy bool
}

func (*shareCmd) Name() string     { return "share" }
func (*shareCmd) Synopsis() string { return "print a link to share a saved calculation" }
func (*shareCmd) Usage() string {
	return `ccc share [-copy] <name|id>

  Prints a link that carries the calculation itself. Anyone opening it, in
  the web calculator or with 'ccc open', gets a copy of the calculation.
`
}

func (c *shareCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.copy, "copy", false, "Also copy the link to the clipboard")
}

func (c *shareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: share requires exactly one name or id")
		return subcommands.ExitUsageError
	}
	calc, err := OpenStore().Find(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	link := cookiecost.ShareLink(Origin(), calc)
	fmt.Println(link)
	if c.copy {
		if err := writeClipboard(link); err != nil {
			fmt.Fprintf(os.Stderr, "Error copying to the clipboard: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(os.Stderr, "Link copied to the clipboard.")
	}
	return subcommands.ExitSuccess
}

type openCmd struct {
	save bool
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "show a shared calculation" }
func (*openCmd) Usage() string {
	return `ccc open [-save] <link|token>

  Shows the calculation carried by a share link, or by its token alone.
  With -save, it is also saved as a new calculation.
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.save, "save", false, "Save the shared calculation")
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: open requires exactly one link or token")
		return subcommands.ExitUsageError
	}
	calc, err := cookiecost.DecodeShare(tokenOf(f.Arg(0)), time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store := OpenStore()
	printMarkdown(renderer.CalculationMarkdown(calc, Currency(), store.Language()))
	if c.save {
		if err := store.Save(calc); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "%s: %q (%s)\n", renderer.T(renderer.Saved, store.Language()), calc.Name, calc.ID)
	}
	return subcommands.ExitSuccess
}

// tokenOf returns the token of a share link, or 'arg' itself when it is not a link.
func tokenOf(arg string) string {
	if token, ok := cookiecost.ShareToken(arg); ok {
		return token
	}
	return arg
}
