package cmd

import (
	"bufio"
	"strings"
	"testing"

	"github.com/etnz/cookiecost"
)

// newEditor returns an editor on an in-memory store, reading 'input'.
func newEditor(input string) (*editor, *strings.Builder) {
	store := cookiecost.NewStore(new(cookiecost.MemoryBackend))
	var out strings.Builder
	return &editor{
		session:  cookiecost.NewSession(store),
		store:    store,
		lang:     cookiecost.English,
		currency: "USD",
		origin:   "http://localhost:8080",
		in:       bufio.NewScanner(strings.NewReader(input)),
		out:      &out,
	}, &out
}

func TestEditorSession(t *testing.T) {
	e, out := newEditor(`name Oat cookies
batch 12 cookies
time 14
add oats 300 g 0.002
add eggs 2 pc
set 2 price 0.25
add tmp
rm 3
calc
save
quit
show
`)
	e.run()

	c := e.session.Current()
	if c.Name != "Oat cookies" || c.NumCookiesInBatch != 12 || c.CookingTime != 14 {
		t.Errorf("Current() = %+v", c)
	}
	if len(c.Ingredients) != 2 {
		t.Fatalf("got %d ingredients, want 2", len(c.Ingredients))
	}
	if eggs := c.Ingredients[1]; eggs.Name != "eggs" || eggs.Unit != "pc" || !eggs.PricePerUnit.Equal(cookiecost.Q(0.25)) {
		t.Errorf("eggs = %+v", eggs)
	}
	// (300 × 0.002 + 2 × 0.25) / 12
	if !strings.Contains(out.String(), "Cost per Unit: $0.09") {
		t.Errorf("calc output:\n%s", out.String())
	}
	saved, err := e.store.Find("oat cookies")
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if saved.ID != c.ID {
		t.Errorf("saved ID = %q, want %q", saved.ID, c.ID)
	}
	if strings.Contains(out.String(), "# Oat cookies") {
		t.Errorf("a command after quit was executed")
	}
}

func TestEditorSaveAsksForName(t *testing.T) {
	e, out := newEditor("save\nMy batch\n")
	e.run()

	if !strings.Contains(out.String(), "Please provide a name") {
		t.Errorf("save without name did not ask for one:\n%s", out.String())
	}
	if _, err := e.store.Find("My batch"); err != nil {
		t.Errorf("Find() error: %v", err)
	}

	e, _ = newEditor("save\n\n")
	e.run()
	if got := e.store.List(); len(got) != 0 {
		t.Errorf("a blank name saved %d calculations", len(got))
	}
}

func TestEditorSaveAs(t *testing.T) {
	e, _ := newEditor("name A\nsave\nsaveas B\n")
	e.run()
	if got := e.store.List(); len(got) != 2 {
		t.Fatalf("got %d saved calculations, want 2", len(got))
	}
	if e.session.Current().Name != "B" {
		t.Errorf("Current().Name = %q, want B", e.session.Current().Name)
	}
}

func TestEditorLoadConfirms(t *testing.T) {
	e, _ := newEditor("name A\nsave\nnew\nload A\nno\n")
	e.run()
	if e.session.Current().Name != "" {
		t.Errorf("load was not cancelled, Current().Name = %q", e.session.Current().Name)
	}

	e, _ = newEditor("name A\nsave\nnew\nload A\ny\n")
	e.run()
	if e.session.Current().Name != "A" {
		t.Errorf("Current().Name = %q, want A", e.session.Current().Name)
	}
}

func TestEditorShare(t *testing.T) {
	e, out := newEditor("name Shared\nadd flour 250 g 0.004\nshare\n")
	e.run()

	var link string
	for _, line := range strings.Split(out.String(), "\n") {
		if i := strings.Index(line, "http://"); i >= 0 {
			link = line[i:]
		}
	}
	other, out := newEditor("open " + link + "\n")
	other.run()
	if got := other.session.Current(); got.Name != "Shared" || len(got.Ingredients) != 1 {
		t.Errorf("opened = %+v\n%s", got, out.String())
	}
	if len(other.store.List()) != 0 {
		t.Errorf("open saved the calculation")
	}
}

func TestEditorErrors(t *testing.T) {
	e, out := newEditor("frobnicate\nset 9 name x\nrm\nset 1\nopen garbage!!\nload nothing\n")
	e.run()
	for _, want := range []string{
		`unknown command "frobnicate"`,
		`no ingredient "9"`,
		"usage: rm",
		"usage: set",
		"invalid share token",
		"calculation not found",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, out.String())
		}
	}
}
