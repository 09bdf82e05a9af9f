package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cookiecost"
	md "github.com/nao1215/markdown"
)

// RecentMarkdown renders a list of saved calculations, in the given order.
func RecentMarkdown(list []*cookiecost.Calculation, currency string, lang cookiecost.Language) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(T(RecentCalculations, lang))
	if len(list) == 0 {
		doc.PlainText(T(NoSaved, lang))
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{
			T(Name, lang),
			T(BatchSize, lang),
			T(CostPerUnit, lang),
			T(LastUpdate, lang),
			"ID",
		},
	}
	for _, c := range list {
		table.Rows = append(table.Rows, []string{
			title(c, lang),
			fmt.Sprint(c.NumCookiesInBatch),
			c.CostPerUnit.Money(currency).String(),
			c.UpdatedAt.Local().Format("2006-01-02 15:04"),
			"`" + c.ID + "`",
		})
	}
	doc.Table(table)

	return doc.String()
}
