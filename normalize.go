package cookiecost

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Text from outside (the persisted blob, an import file, a share token) is
// never trusted to have the Calculation shape. It is decoded into generic
// JSON values and turned into a Calculation here, and only here, so that the
// defaulting policy lives in one place.

// source tells normalize where a record comes from.
type source int

const (
	// fromStore keeps identity and timestamps: the record is ours.
	fromStore source = iota
	// fromShare assigns a fresh identity and falls back to defaults for every falsy field.
	fromShare
)

// decodeJSON parses data keeping numbers exact.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after the JSON value")
	}
	return v, nil
}

// decodeObject parses data that must be a single JSON object.
func decodeObject(data []byte) (map[string]any, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	jobj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("not a JSON object")
	}
	return jobj, nil
}

// normalize builds a Calculation out of a generic JSON object.
//
// Numbers that cannot be read, are negative or out of range, become 0. Strings that are
// not strings become "". For a shared record, ids are always fresh, both
// timestamps are 'now', and falsy values take their default. The unit
// conversion is only kept for stored records, shares never carry it.
func normalize(jobj map[string]any, src source, now time.Time) *Calculation {
	c := &Calculation{
		ID:                jstring(jobj, "id"),
		Name:              jstring(jobj, "name"),
		NumCookiesInBatch: jcount(jobj, "numCookiesInBatch"),
		CookingTime:       jcount(jobj, "cookingTime"),
		CostPerUnit:       jquantity(jobj, "costPerUnit"),
		CreatedAt:         jtime(jobj, "createdAt"),
		UpdatedAt:         jtime(jobj, "updatedAt"),
	}

	jingredients, _ := jobj["ingredients"].([]any)
	c.Ingredients = make([]Ingredient, 0, len(jingredients))
	for _, v := range jingredients {
		jing, _ := v.(map[string]any) // anything else reads as an empty ingredient.
		ing := Ingredient{
			ID:           jstring(jing, "id"),
			Name:         jstring(jing, "name"),
			Quantity:     jquantity(jing, "quantity"),
			Unit:         jstring(jing, "unit"),
			PricePerUnit: jquantity(jing, "pricePerUnit"),
		}
		switch src {
		case fromShare:
			ing.ID = newID()
			if ing.Unit == "" {
				ing.Unit = DefaultUnit
			}
		default:
			if ing.ID == "" {
				ing.ID = newID()
			}
			if conv, ok := jnumber(jing, "unitConversion"); ok {
				q := Quantity{value: conv}.nonNegative()
				ing.UnitConversion = &q
			}
		}
		c.Ingredients = append(c.Ingredients, ing)
	}

	switch src {
	case fromShare:
		c.ID = newID()
		if c.Name == "" {
			c.Name = SharedName
		}
		if c.NumCookiesInBatch == 0 {
			c.NumCookiesInBatch = DefaultBatchSize
		}
		c.CreatedAt, c.UpdatedAt = now, now
	default:
		if c.ID == "" {
			c.ID = newID()
		}
	}
	return c
}

func jstring(jobj map[string]any, key string) string {
	s, _ := jobj[key].(string)
	return s
}

// jnumber reads a JSON number, or a string holding one, if it is in range
// (see Quantity.bounded).
func jnumber(jobj map[string]any, key string) (decimal.Decimal, bool) {
	var d decimal.Decimal
	switch v := jobj[key].(type) {
	case json.Number:
		var err error
		if d, err = decimal.NewFromString(v.String()); err != nil {
			return decimal.Decimal{}, false
		}
	case float64:
		d = decimal.NewFromFloat(v)
	case string:
		var err error
		if d, err = decimal.NewFromString(strings.TrimSpace(v)); err != nil {
			return decimal.Decimal{}, false
		}
	default:
		return decimal.Decimal{}, false
	}
	q, ok := Quantity{value: d}.bounded()
	return q.value, ok
}

func jquantity(jobj map[string]any, key string) Quantity {
	d, _ := jnumber(jobj, key)
	return Quantity{value: d}.nonNegative()
}

// jcount reads a whole number, truncating any fraction. Counts above
// math.MaxInt32 read as 0.
func jcount(jobj map[string]any, key string) int {
	d, ok := jnumber(jobj, key)
	if !ok || d.IsNegative() || d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0
	}
	return int(d.IntPart())
}

// jtime reads an ISO-8601 timestamp, the zero time if it cannot.
func jtime(jobj map[string]any, key string) time.Time {
	s := jstring(jobj, key)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
