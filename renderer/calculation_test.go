package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/cookiecost"
)

func sample() *cookiecost.Calculation {
	at := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	return &cookiecost.Calculation{
		ID:                "c1",
		Name:              "Choc",
		NumCookiesInBatch: 8,
		CookingTime:       12,
		Ingredients: []cookiecost.Ingredient{
			{ID: "i1", Name: "flour", Quantity: cookiecost.Q(250), Unit: "g", PricePerUnit: cookiecost.Q(0.004)},
			{ID: "i2", Name: "butter", Quantity: cookiecost.Q(100), Unit: "g", PricePerUnit: cookiecost.Q(0.03)},
		},
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestCalculationMarkdown(t *testing.T) {
	got := CalculationMarkdown(sample(), "USD", cookiecost.English)

	// total is 1 + 3, so 0.50 per cookie.
	for _, want := range []string{
		"# Choc",
		"$0.50",
		"$4.00",
		"12 minutes",
		"## Ingredients",
		"flour",
		"butter",
		"0.004",
		"$3.00",
		"25.0%",
		"75.0%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("CalculationMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestCalculationMarkdownEmpty(t *testing.T) {
	c := cookiecost.NewCalculation(time.Now())
	got := CalculationMarkdown(c, "USD", cookiecost.Spanish)
	for _, want := range []string{"# Sin Nombre", "Aún no hay ingredientes.", "$0.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("CalculationMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestRecentMarkdown(t *testing.T) {
	c := sample()
	c.CostPerUnit = cookiecost.CostPerUnit(c)
	got := RecentMarkdown([]*cookiecost.Calculation{c}, "USD", cookiecost.English)
	for _, want := range []string{"# Recent Calculations", "Choc", "$0.50", "`c1`"} {
		if !strings.Contains(got, want) {
			t.Errorf("RecentMarkdown() does not contain %q:\n%s", want, got)
		}
	}

	got = RecentMarkdown(nil, "USD", cookiecost.Spanish)
	if !strings.Contains(got, "No hay cálculos guardados") {
		t.Errorf("RecentMarkdown(nil) = %q", got)
	}
}

func TestLabels(t *testing.T) {
	for l, texts := range labels {
		if texts[0] == "" || texts[1] == "" {
			t.Errorf("label %q is missing a translation", l)
		}
	}
	if got := T(CostPerUnit, cookiecost.Spanish); got != "Costo por Unidad" {
		t.Errorf("T(CostPerUnit, es) = %q", got)
	}
	if got := T(CostPerUnit, cookiecost.Language("fr")); got != "Cost per Unit" {
		t.Errorf("T(CostPerUnit, fr) = %q, want the English text", got)
	}
	if got := T(Label("nope"), cookiecost.English); got != "nope" {
		t.Errorf("T(nope) = %q, want the key", got)
	}
}
