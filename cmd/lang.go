package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cookiecost"
	"github.com/etnz/cookiecost/renderer"
	"github.com/google/subcommands"
)

type langCmd struct{}

func (*langCmd) Name() string     { return "lang" }
func (*langCmd) Synopsis() string { return "show or set the display language" }
func (*langCmd) Usage() string {
	return `ccc lang [en|es]

  Without argument, prints the display language. Otherwise sets it.
`
}

func (c *langCmd) SetFlags(f *flag.FlagSet) {}

func (c *langCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	switch f.NArg() {
	case 0:
		fmt.Println(languageName(store.Language()))
		return subcommands.ExitSuccess
	case 1:
	default:
		fmt.Fprintln(os.Stderr, "Error: lang accepts at most one language")
		return subcommands.ExitUsageError
	}

	lang, err := cookiecost.ParseLanguage(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := store.SetLanguage(lang); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(languageName(lang))
	return subcommands.ExitSuccess
}

// languageName returns the name of 'l' in its own language, followed by its code.
func languageName(l cookiecost.Language) string {
	label := renderer.English
	if l == cookiecost.Spanish {
		label = renderer.Spanish
	}
	return fmt.Sprintf("%s (%s)", renderer.T(label, l), l)
}
