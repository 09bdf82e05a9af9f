package cookiecost

import (
	"encoding/base64"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"
)

// legacyToken was produced by the web calculator for a calculation named
// "Galletas de avena" with oats and eggs.
const legacyToken = "JTdCJTIybmFtZSUyMiUzQSUyMkdhbGxldGFzJTIwZGUlMjBhdmVuYSUyMiUyQyUyMm51bUNvb2tpZXNJbkJhdGNoJTIyJTNBMTIlMkMlMjJjb29raW5nVGltZSUyMiUzQTE0JTJDJTIyaW5ncmVkaWVudHMlMjIlM0ElNUIlN0IlMjJuYW1lJTIyJTNBJTIyb2F0cyUyMiUyQyUyMnF1YW50aXR5JTIyJTNBMzAwJTJDJTIydW5pdCUyMiUzQSUyMmclMjIlMkMlMjJwcmljZVBlclVuaXQlMjIlM0EwLjAwMiU3RCUyQyU3QiUyMm5hbWUlMjIlM0ElMjJlZ2dzJTIyJTJDJTIycXVhbnRpdHklMjIlM0EyJTJDJTIydW5pdCUyMiUzQSUyMnBjJTIyJTJDJTIycHJpY2VQZXJVbml0JTIyJTNBMC4yNSU3RCU1RCUyQyUyMmNvc3RQZXJVbml0JTIyJTNBMC4wOTE2NjY2JTdE"

func TestEncodeShare(t *testing.T) {
	c := &Calculation{
		ID:                "c1",
		Name:              "Choc",
		NumCookiesInBatch: 16,
		CookingTime:       12,
		Ingredients: []Ingredient{
			{ID: "i1", Name: "flour", Quantity: Q(250), Unit: "g", PricePerUnit: Q(0.004)},
		},
		CostPerUnit: Q(0.0625),
		CreatedAt:   day,
		UpdatedAt:   day,
	}
	want := "JTdCJTIybmFtZSUyMiUzQSUyMkNob2MlMjIlMkMlMjJudW1Db29raWVzSW5CYXRjaCUyMiUzQTE2JTJDJTIyY29va2luZ1RpbWUlMjIlM0ExMiUyQyUyMmluZ3JlZGllbnRzJTIyJTNBJTVCJTdCJTIybmFtZSUyMiUzQSUyMmZsb3VyJTIyJTJDJTIycXVhbnRpdHklMjIlM0EyNTAlMkMlMjJ1bml0JTIyJTNBJTIyZyUyMiUyQyUyMnByaWNlUGVyVW5pdCUyMiUzQTAuMDA0JTdEJTVEJTJDJTIyY29zdFBlclVuaXQlMjIlM0EwLjA2MjUlN0Q="
	if got := EncodeShare(c); got != want {
		t.Errorf("EncodeShare() =\n%s\nwant\n%s", got, want)
	}
}

func TestShareRoundTrip(t *testing.T) {
	c := sample()
	later := day.Add(48 * time.Hour)
	got, err := DecodeShare(EncodeShare(c), later)
	if err != nil {
		t.Fatalf("DecodeShare() error: %v", err)
	}
	if got.ID == c.ID || got.ID == "" {
		t.Errorf("decoded ID = %q, want a fresh one", got.ID)
	}
	if got.Name != c.Name || got.NumCookiesInBatch != c.NumCookiesInBatch || got.CookingTime != c.CookingTime {
		t.Errorf("decoded = %+v, want the fields of %+v", got, c)
	}
	if !got.CostPerUnit.Equal(c.CostPerUnit) {
		t.Errorf("decoded CostPerUnit = %v, want %v", got.CostPerUnit, c.CostPerUnit)
	}
	if !got.CreatedAt.Equal(later) || !got.UpdatedAt.Equal(later) {
		t.Errorf("decoded timestamps = %v, %v, want %v", got.CreatedAt, got.UpdatedAt, later)
	}
	if len(got.Ingredients) != len(c.Ingredients) {
		t.Fatalf("decoded %d ingredients, want %d", len(got.Ingredients), len(c.Ingredients))
	}
	for i, ing := range got.Ingredients {
		want := c.Ingredients[i]
		if ing.ID == want.ID || ing.ID == "" {
			t.Errorf("ingredient %d ID = %q, want a fresh one", i, ing.ID)
		}
		if ing.Name != want.Name || ing.Unit != want.Unit || !ing.Quantity.Equal(want.Quantity) || !ing.PricePerUnit.Equal(want.PricePerUnit) {
			t.Errorf("ingredient %d = %+v, want %+v", i, ing, want)
		}
		if ing.UnitConversion != nil {
			t.Errorf("ingredient %d has a unit conversion, shares never carry it", i)
		}
	}
}

func TestDecodeLegacyToken(t *testing.T) {
	c, err := DecodeShare(legacyToken, day)
	if err != nil {
		t.Fatalf("DecodeShare() error: %v", err)
	}
	if c.Name != "Galletas de avena" || c.NumCookiesInBatch != 12 || c.CookingTime != 14 {
		t.Errorf("DecodeShare() = %+v", c)
	}
	if len(c.Ingredients) != 2 || c.Ingredients[0].Name != "oats" || !c.Ingredients[1].PricePerUnit.Equal(Q(0.25)) {
		t.Errorf("DecodeShare() ingredients = %+v", c.Ingredients)
	}
	if !c.CostPerUnit.Equal(Q(0.0916666)) {
		t.Errorf("DecodeShare() CostPerUnit = %v, want 0.0916666", c.CostPerUnit)
	}
}

func TestDecodeShareDefaults(t *testing.T) {
	// {"ingredients":[{"name":"x","quantity":-3}]}
	token := "JTdCJTIyaW5ncmVkaWVudHMlMjIlM0ElNUIlN0IlMjJuYW1lJTIyJTNBJTIyeCUyMiUyQyUyMnF1YW50aXR5JTIyJTNBLTMlN0QlNUQlN0Q="
	c, err := DecodeShare(token, day)
	if err != nil {
		t.Fatalf("DecodeShare() error: %v", err)
	}
	if c.Name != SharedName {
		t.Errorf("Name = %q, want %q", c.Name, SharedName)
	}
	if c.NumCookiesInBatch != DefaultBatchSize {
		t.Errorf("NumCookiesInBatch = %d, want %d", c.NumCookiesInBatch, DefaultBatchSize)
	}
	if c.CookingTime != 0 || !c.CostPerUnit.IsZero() {
		t.Errorf("CookingTime, CostPerUnit = %d, %v, want 0, 0", c.CookingTime, c.CostPerUnit)
	}
	if len(c.Ingredients) != 1 {
		t.Fatalf("got %d ingredients, want 1", len(c.Ingredients))
	}
	if ing := c.Ingredients[0]; ing.Unit != DefaultUnit || !ing.Quantity.IsZero() || !ing.PricePerUnit.IsZero() {
		t.Errorf("ingredient = %+v, want unit %q and zero quantity and price", ing, DefaultUnit)
	}
}

func TestDecodeShareOutOfRange(t *testing.T) {
	for _, n := range []string{"1e19", "18446744073709551615", "1e30000000"} {
		text := `{"name":"big","numCookiesInBatch":` + n + `,"cookingTime":` + n + `,
			"ingredients":[{"name":"x","quantity":` + n + `,"pricePerUnit":1}]}`
		token := base64.StdEncoding.EncodeToString([]byte(escapeComponent(text)))
		c, err := DecodeShare(token, day)
		if err != nil {
			t.Fatalf("DecodeShare(%s) error: %v", n, err)
		}
		// an unreadable batch size takes the default, like a missing one.
		if c.NumCookiesInBatch != DefaultBatchSize || c.CookingTime != 0 {
			t.Errorf("DecodeShare(%s): NumCookiesInBatch, CookingTime = %d, %d, want %d, 0", n, c.NumCookiesInBatch, c.CookingTime, DefaultBatchSize)
		}
		if !c.Ingredients[0].Quantity.IsZero() {
			t.Errorf("DecodeShare(%s): Quantity = %v, want 0", n, c.Ingredients[0].Quantity)
		}
	}
}

func TestDecodeShareInvalid(t *testing.T) {
	for _, token := range []string{
		"",
		"not-base64!!",
		"WzFd", // [1]
		"JTdC", // %7B, an unterminated object
		"JQ==", // a lone '%'
	} {
		c, err := DecodeShare(token, day)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("DecodeShare(%q) = %v, %v, want ErrInvalidToken", token, c, err)
		}
	}
}

func TestDecodeShareDamagedLink(t *testing.T) {
	// A '+' turned into a space, and the padding dropped.
	c := sample()
	c.Name = "Cookies ~ ¿de avena?"
	token := EncodeShare(c)
	damaged := strings.TrimRight(strings.ReplaceAll(token, "+", " "), "=")
	got, err := DecodeShare(damaged, day)
	if err != nil {
		t.Fatalf("DecodeShare(%q) error: %v", damaged, err)
	}
	if got.Name != c.Name {
		t.Errorf("Name = %q, want %q", got.Name, c.Name)
	}
}

func TestShareLink(t *testing.T) {
	c := sample()
	link := ShareLink("https://cookies.example.com/", c)
	if !strings.HasPrefix(link, "https://cookies.example.com/?share=") {
		t.Errorf("ShareLink() = %q", link)
	}
	token, ok := ShareToken(link)
	if !ok {
		t.Fatalf("ShareToken(%q) found no token", link)
	}
	if token != EncodeShare(c) {
		t.Errorf("ShareToken() = %q, want %q", token, EncodeShare(c))
	}

	if _, ok := ShareToken("https://cookies.example.com/"); ok {
		t.Errorf("ShareToken() found a token in a link without one")
	}
}

func TestShareLinkEscapesToken(t *testing.T) {
	c := sample()
	token := EncodeShare(c)
	link := ShareLink("https://cookies.example.com", c)
	if want := "https://cookies.example.com/?share=" + url.QueryEscape(token); link != want {
		t.Errorf("ShareLink() = %q, want %q", link, want)
	}
}

func TestEscapeComponent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Mom's (best) cookies!", "Mom's%20(best)%20cookies!"},
		{"*new* a+b ~x", "*new*%20a%2Bb%20~x"},
		{`{"name":"ñ"}`, "%7B%22name%22%3A%22%C3%B1%22%7D"},
	}
	for _, tc := range tests {
		if got := escapeComponent(tc.in); got != tc.want {
			t.Errorf("escapeComponent(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
