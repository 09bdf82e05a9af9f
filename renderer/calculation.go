package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cookiecost"
	md "github.com/nao1215/markdown"
)

// CalculationMarkdown renders a calculation with its cost breakdown.
//
// The cost per unit is computed from the ingredients, not read from
// c.CostPerUnit which may be stale.
func CalculationMarkdown(c *cookiecost.Calculation, currency string, lang cookiecost.Language) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title(c, lang))

	total := cookiecost.TotalCost(c)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold(T(CostPerUnit, lang)),
			md.Bold(cookiecost.CostPerUnit(c).Money(currency).String()),
		},
		Rows: [][]string{
			{T(TotalCost, lang), total.Money(currency).String()},
			{T(BatchSize, lang), fmt.Sprint(c.NumCookiesInBatch)},
			{T(CookingTime, lang), fmt.Sprintf("%d %s", c.CookingTime, T(Minutes, lang))},
		},
	})

	doc.H2(T(Ingredients, lang))
	if len(c.Ingredients) == 0 {
		doc.PlainText(T(NoIngredients, lang))
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			T(IngredientName, lang),
			T(IngredientQuantity, lang),
			T(Unit, lang),
			T(PricePerUnit, lang),
			T(Cost, lang),
			T(Share, lang),
		},
	}
	for _, line := range cookiecost.Breakdown(c) {
		table.Rows = append(table.Rows, []string{
			line.Ingredient.Name,
			line.Ingredient.Quantity.String(),
			line.Ingredient.Unit,
			line.Ingredient.PricePerUnit.String(),
			line.Cost.Money(currency).String(),
			cookiecost.PercentOf(line.Share).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

func title(c *cookiecost.Calculation, lang cookiecost.Language) string {
	if c.Name == "" {
		return T(Untitled, lang)
	}
	return c.Name
}
