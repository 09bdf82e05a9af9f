package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/cookiecost"
	"github.com/etnz/cookiecost/renderer"
	"github.com/google/subcommands"
)

type editCmd struct {
	// in and out default to the standard input and output.
	in  io.Reader
	out io.Writer
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit calculations interactively" }
func (*editCmd) Usage() string {
	return `ccc edit [<name|id>]

  Starts an interactive session on a saved calculation, or on a new one.
  Changes are kept in memory until 'save' or 'saveas'. Type 'help' for the
  list of commands. See also 'ccc topic edit'.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, out := c.in, c.out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: edit accepts at most one name or id")
		return subcommands.ExitUsageError
	}

	store := OpenStore()
	e := &editor{
		session:  cookiecost.NewSession(store),
		store:    store,
		lang:     store.Language(),
		currency: Currency(),
		origin:   Origin(),
		in:       bufio.NewScanner(in),
		out:      out,
	}
	if f.NArg() == 1 {
		calc, err := store.Find(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		e.session.Load(calc)
	}
	e.run()
	return subcommands.ExitSuccess
}

// editor runs the interactive session, one command per line.
type editor struct {
	session  *cookiecost.Session
	store    *cookiecost.Store
	lang     cookiecost.Language
	currency string
	origin   string
	in       *bufio.Scanner
	out      io.Writer
}

const editHelp = `Commands:
  show                          show the calculation and its cost breakdown
  name <name>                   rename the calculation
  batch <count>                 set the number of cookies in the batch
  time <minutes>                set the cooking time
  add [name [qty [unit [price]]]]  add an ingredient
  set <#|id> <field> <value>    change an ingredient: name, qty, unit, price or conv
  rm <#|id>                     remove an ingredient
  calc                          compute the cost per unit
  save                          save the calculation
  saveas [name]                 save a copy under a new name
  new                           start a new calculation
  load <name|id>                load a saved calculation
  recent                        list the recent calculations
  open <link|token>             load a shared calculation
  share                         print the share link
  help                          print this help
  quit                          leave, unsaved changes are lost
`

// run executes commands until the input ends or 'quit'.
func (e *editor) run() {
	for {
		fmt.Fprint(e.out, "> ")
		line, ok := e.readLine()
		if !ok {
			fmt.Fprintln(e.out)
			return
		}
		if !e.exec(line) {
			return
		}
	}
}

func (e *editor) readLine() (string, bool) {
	if !e.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(e.in.Text()), true
}

// prompt asks a question and returns the answer.
func (e *editor) prompt(question string) string {
	fmt.Fprintf(e.out, "%s: ", question)
	answer, _ := e.readLine()
	return answer
}

// exec executes one command line, it returns false to stop the session.
func (e *editor) exec(line string) bool {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	switch verb {
	case "":
	case "quit", "exit", "q":
		return false
	case "help", "?":
		fmt.Fprint(e.out, editHelp)
	case "show":
		fprintMarkdown(e.out, renderer.CalculationMarkdown(e.session.Current(), e.currency, e.lang))
	case "name":
		e.session.SetName(rest)
	case "batch":
		e.session.SetBatchSize(rest)
	case "time":
		e.session.SetCookingTime(rest)
	case "add":
		e.add(args)
	case "set":
		e.set(args)
	case "rm":
		e.remove(args)
	case "calc":
		cost := e.session.Recompute()
		fmt.Fprintf(e.out, "%s: %s\n", renderer.T(renderer.CostPerUnit, e.lang), cost.Money(e.currency))
	case "save":
		e.save()
	case "saveas":
		e.saveAs(rest)
	case "new":
		e.session.New()
	case "load":
		e.load(rest)
	case "recent":
		e.session.RefreshRecent()
		fprintMarkdown(e.out, renderer.RecentMarkdown(e.session.Recent(), e.currency, e.lang))
	case "open":
		if err := e.session.LoadShared(tokenOf(rest)); err != nil {
			fmt.Fprintf(e.out, "Error: %v\n", err)
			return true
		}
		fmt.Fprintf(e.out, "%q\n", e.session.Current().Name)
	case "share":
		fmt.Fprintln(e.out, e.session.ShareLink(e.origin))
	default:
		fmt.Fprintf(e.out, "unknown command %q, type 'help' for the list of commands\n", verb)
	}
	return true
}

// add appends an ingredient, using the optional name, quantity, unit and price.
func (e *editor) add(args []string) {
	ing := e.session.AddIngredient()
	if len(args) > 0 {
		ing.Name = args[0]
	}
	if len(args) > 1 {
		ing.Quantity = cookiecost.ParseQuantity(args[1])
	}
	if len(args) > 2 {
		ing.Unit = args[2]
	}
	if len(args) > 3 {
		ing.PricePerUnit = cookiecost.ParseQuantity(args[3])
	}
	e.session.UpdateIngredient(ing)
	fmt.Fprintf(e.out, "#%d %s\n", len(e.session.Current().Ingredients), ing.ID)
}

// ingredient finds an ingredient by 1-based position or by ID.
func (e *editor) ingredient(ref string) (cookiecost.Ingredient, bool) {
	c := e.session.Current()
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(c.Ingredients) {
			return cookiecost.Ingredient{}, false
		}
		return c.Ingredients[n-1], true
	}
	if i := c.IndexOf(ref); i >= 0 {
		return c.Ingredients[i], true
	}
	return cookiecost.Ingredient{}, false
}

func (e *editor) set(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(e.out, "usage: set <#|id> <field> <value>")
		return
	}
	ing, ok := e.ingredient(args[0])
	if !ok {
		fmt.Fprintf(e.out, "no ingredient %q\n", args[0])
		return
	}
	value := strings.Join(args[2:], " ")
	switch args[1] {
	case "name":
		ing.Name = value
	case "qty", "quantity":
		ing.Quantity = cookiecost.ParseQuantity(value)
	case "unit":
		ing.Unit = value
	case "price":
		ing.PricePerUnit = cookiecost.ParseQuantity(value)
	case "conv":
		if value == "" {
			ing.UnitConversion = nil
			break
		}
		conv := cookiecost.ParseQuantity(value)
		ing.UnitConversion = &conv
	default:
		fmt.Fprintf(e.out, "unknown field %q, use name, qty, unit, price or conv\n", args[1])
		return
	}
	e.session.UpdateIngredient(ing)
}

func (e *editor) remove(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(e.out, "usage: rm <#|id>")
		return
	}
	ing, ok := e.ingredient(args[0])
	if !ok || !e.session.RemoveIngredient(ing.ID) {
		fmt.Fprintf(e.out, "no ingredient %q\n", args[0])
	}
}

// save saves the calculation, asking for a name if it has none.
func (e *editor) save() {
	err := e.session.Save()
	if errors.Is(err, cookiecost.ErrNameRequired) {
		fmt.Fprintln(e.out, renderer.T(renderer.NameRequired, e.lang))
		e.saveAs("")
		return
	}
	if err != nil {
		fmt.Fprintf(e.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(e.out, renderer.T(renderer.Saved, e.lang))
}

// saveAs saves a copy named 'name', asking for it if blank. A blank answer cancels.
func (e *editor) saveAs(name string) {
	if name == "" {
		name = e.prompt(renderer.T(renderer.EnterName, e.lang))
	}
	if err := e.session.SaveAs(name); err != nil {
		if !errors.Is(err, cookiecost.ErrNameRequired) {
			fmt.Fprintf(e.out, "Error: %v\n", err)
		}
		return
	}
	fmt.Fprintln(e.out, renderer.T(renderer.Saved, e.lang))
}

// load replaces the calculation with a saved one, once confirmed.
func (e *editor) load(key string) {
	calc, err := e.store.Find(key)
	if err != nil {
		fmt.Fprintf(e.out, "Error: %v\n", err)
		return
	}
	switch strings.ToLower(e.prompt(renderer.T(renderer.ConfirmLoad, e.lang) + " [y/N]")) {
	case "y", "yes", "s", "si", "sí":
		e.session.Load(calc)
	}
}
