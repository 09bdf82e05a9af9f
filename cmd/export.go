package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/cookiecost"
	"github.com/etnz/cookiecost/renderer"
	"github.com/google/subcommands"
	"github.com/pmezard/go-difflib/difflib"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export every saved calculation as JSON" }
func (*exportCmd) Usage() string {
	return `ccc export [-o <file>]

  Writes the saved calculations, exactly as they are stored, to the standard
  output or to a file. The web calculator names this file ` + cookiecost.ExportFilename + `.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, the standard output by default")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	if c.output == "" {
		if err := store.Export(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	var buf bytes.Buffer
	if err := store.Export(&buf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", renderer.T(renderer.ExportSuccess, store.Language()), c.output)
	return subcommands.ExitSuccess
}

type importCmd struct {
	diff bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace every saved calculation with a JSON export" }
func (*importCmd) Usage() string {
	return `ccc import [-diff] <file|->

  Replaces all saved calculations with the content of an export file, or the
  standard input for '-'. Nothing changes if the file is invalid.

  With -diff, prints what the import would change, and changes nothing.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.diff, "diff", false, "Print the changes instead of importing")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import requires exactly one file, or '-'")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	data, err := readInput(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	store := OpenStore()
	lang := store.Language()
	if c.diff {
		incoming, err := cookiecost.ParseImport(bytes.NewReader(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", renderer.T(renderer.InvalidImport, lang), err)
			return subcommands.ExitFailure
		}
		patch, err := importDiff(store.List(), incoming, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Print(patch)
		return subcommands.ExitSuccess
	}

	if err := store.Import(bytes.NewReader(data)); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", renderer.T(renderer.InvalidImport, lang), err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(os.Stderr, renderer.T(renderer.ImportSuccess, lang))
	return subcommands.ExitSuccess
}

// readInput reads a file, or the standard input for "-".
func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// importDiff returns the unified diff between the saved calculations and the incoming ones.
// Both sides are indented so that changes show field by field. It is "" when they are equal.
func importDiff(saved, incoming []*cookiecost.Calculation, name string) (string, error) {
	a, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(incoming, "", "  ")
	if err != nil {
		return "", err
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: "saved",
		ToFile:   name,
		Context:  3,
	})
}
