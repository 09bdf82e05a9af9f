package cookiecost

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultBatchSize is the number of cookies in a new calculation.
	DefaultBatchSize = 16
	// DefaultUnit is the unit label of a new ingredient.
	DefaultUnit = "g"
	// SharedName names a shared calculation that came without a name.
	SharedName = "Shared Calculation"
)

// timeLayout is how timestamps are persisted: ISO-8601, UTC, millisecond precision.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Ingredient is one line of a calculation.
type Ingredient struct {
	// ID is assigned at creation and never reassigned.
	ID string
	// Name may be empty.
	Name string
	// Quantity used in the batch, in Unit.
	Quantity Quantity
	// Unit is a free label, "g", "ml", "pc"...
	Unit string
	// PricePerUnit is the price of one Unit.
	PricePerUnit Quantity
	// UnitConversion is stored and shared with the file, but plays no part in the cost.
	UnitConversion *Quantity
}

// NewIngredient returns an empty ingredient with a fresh ID.
func NewIngredient() Ingredient {
	return Ingredient{
		ID:   newID(),
		Unit: DefaultUnit,
	}
}

// Cost returns Quantity × PricePerUnit.
func (i Ingredient) Cost() Quantity { return i.Quantity.Mul(i.PricePerUnit) }

func (i Ingredient) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", i.ID)
	w.Append("name", i.Name)
	w.Append("quantity", i.Quantity)
	w.Append("unit", i.Unit)
	w.Append("pricePerUnit", i.PricePerUnit)
	w.Optional("unitConversion", i.UnitConversion)
	return w.MarshalJSON()
}

// Calculation is the cost model of one batch.
//
// A Calculation owns its ingredients. The session works on a detached copy
// (see Clone) that only reaches the Store on an explicit save.
type Calculation struct {
	ID                string
	Name              string
	NumCookiesInBatch int
	// CookingTime in minutes, informational.
	CookingTime int
	// Ingredients in insertion order.
	Ingredients []Ingredient
	// CostPerUnit is derived, and stale until recomputed (see CostPerUnit).
	CostPerUnit Quantity
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCalculation returns an unnamed calculation with default batch size and no ingredients.
func NewCalculation(now time.Time) *Calculation {
	return &Calculation{
		ID:                newID(),
		NumCookiesInBatch: DefaultBatchSize,
		Ingredients:       []Ingredient{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Clone returns a deep copy of c.
func (c *Calculation) Clone() *Calculation {
	cp := *c
	cp.Ingredients = make([]Ingredient, len(c.Ingredients))
	for i, ing := range c.Ingredients {
		if ing.UnitConversion != nil {
			conv := *ing.UnitConversion
			ing.UnitConversion = &conv
		}
		cp.Ingredients[i] = ing
	}
	return &cp
}

// IndexOf returns the index of the ingredient with 'id', or -1.
func (c *Calculation) IndexOf(id string) int {
	for i, ing := range c.Ingredients {
		if ing.ID == id {
			return i
		}
	}
	return -1
}

func (c Calculation) MarshalJSON() ([]byte, error) {
	ingredients := c.Ingredients
	if ingredients == nil {
		ingredients = []Ingredient{}
	}
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	w.Append("numCookiesInBatch", c.NumCookiesInBatch)
	w.Append("cookingTime", c.CookingTime)
	w.Append("ingredients", ingredients)
	w.Append("costPerUnit", c.CostPerUnit)
	w.Append("createdAt", formatTime(c.CreatedAt))
	w.Append("updatedAt", formatTime(c.UpdatedAt))
	return w.MarshalJSON()
}

// UnmarshalJSON reads a stored calculation leniently, see normalize.
func (c *Calculation) UnmarshalJSON(data []byte) error {
	jobj, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("cannot read calculation: %w", err)
	}
	*c = *normalize(jobj, fromStore, time.Time{})
	return nil
}

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

// newID returns a random identifier.
func newID() string { return uuid.NewString() }

// marshalCollection returns the persisted text of a collection.
func marshalCollection(list []*Calculation) ([]byte, error) {
	if list == nil {
		list = []*Calculation{}
	}
	return json.Marshal(list)
}
