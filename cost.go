package cookiecost

// TotalCost returns the cost of the whole batch: the sum of every ingredient's quantity × price per unit.
func TotalCost(c *Calculation) Quantity {
	var total Quantity
	for _, ing := range c.Ingredients {
		total = total.Add(ing.Cost())
	}
	return total
}

// CostPerUnit returns TotalCost divided by the batch size, or 0 when the batch is empty.
//
// No rounding is applied. It does not update c.CostPerUnit, see Session.Recompute.
func CostPerUnit(c *Calculation) Quantity {
	if c.NumCookiesInBatch <= 0 {
		return Quantity{}
	}
	return TotalCost(c).Div(Q(c.NumCookiesInBatch))
}

// IngredientCost is an ingredient's contribution to the batch cost.
type IngredientCost struct {
	Ingredient Ingredient
	// Cost is quantity × price per unit.
	Cost Quantity
	// Share of the total cost, between 0 and 1. 0 when the total is 0.
	Share Quantity
}

// Breakdown returns the cost of each ingredient, in ingredient order.
func Breakdown(c *Calculation) []IngredientCost {
	total := TotalCost(c)
	out := make([]IngredientCost, 0, len(c.Ingredients))
	for _, ing := range c.Ingredients {
		line := IngredientCost{Ingredient: ing, Cost: ing.Cost()}
		if total.IsPositive() {
			line.Share = line.Cost.Div(total)
		}
		out = append(out, line)
	}
	return out
}
