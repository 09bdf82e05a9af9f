package cmd

import (
	"context"
	"flag"

	"github.com/etnz/cookiecost"
	"github.com/etnz/cookiecost/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list every saved calculation" }
func (*listCmd) Usage() string {
	return `ccc list

  Lists every saved calculation, in the order they were first saved.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	printMarkdown(renderer.RecentMarkdown(store.List(), Currency(), store.Language()))
	return subcommands.ExitSuccess
}

type recentCmd struct {
	limit int
}

func (*recentCmd) Name() string     { return "recent" }
func (*recentCmd) Synopsis() string { return "list the most recently updated calculations" }
func (*recentCmd) Usage() string {
	return `ccc recent [-n <count>]

  Lists the most recently updated calculations first.
  Use -n -1 to list them all.
`
}

func (c *recentCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", cookiecost.DefaultRecentLimit, "Maximum number of calculations to list")
}

func (c *recentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	printMarkdown(renderer.RecentMarkdown(store.Recent(c.limit), Currency(), store.Language()))
	return subcommands.ExitSuccess
}
