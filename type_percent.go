package cookiecost

import "fmt"

// Percent is a percentage for display, 25 is 25%.
type Percent float64

// PercentOf returns a ratio, like IngredientCost.Share, as a Percent.
func PercentOf(ratio Quantity) Percent { return Percent(ratio.Float64() * 100) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}
