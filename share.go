package cookiecost

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"
)

// ShareParam is the query parameter holding a share token in a link.
const ShareParam = "share"

// A share token carries a calculation inside a link, without any server.
//
// It holds a reduced projection of the calculation: no identifiers, so that
// two shared links never collide in the receiver's store, and no unit
// conversion or timestamps, to keep links short. The projection is JSON,
// percent-encoded like javascript's encodeURIComponent, then base64 encoded
// with the standard alphabet. This is the format of the web calculator, so
// links work both ways.

// jshare is the shared projection of a Calculation.
type jshare struct {
	Name              string             `json:"name"`
	NumCookiesInBatch int                `json:"numCookiesInBatch"`
	CookingTime       int                `json:"cookingTime"`
	Ingredients       []jshareIngredient `json:"ingredients"`
	CostPerUnit       Quantity           `json:"costPerUnit"`
}

type jshareIngredient struct {
	Name         string   `json:"name"`
	Quantity     Quantity `json:"quantity"`
	Unit         string   `json:"unit"`
	PricePerUnit Quantity `json:"pricePerUnit"`
}

// EncodeShare returns the share token of 'c', or "" if it cannot be encoded.
func EncodeShare(c *Calculation) string {
	js := jshare{
		Name:              c.Name,
		NumCookiesInBatch: c.NumCookiesInBatch,
		CookingTime:       c.CookingTime,
		Ingredients:       make([]jshareIngredient, 0, len(c.Ingredients)),
		CostPerUnit:       c.CostPerUnit,
	}
	for _, ing := range c.Ingredients {
		js.Ingredients = append(js.Ingredients, jshareIngredient{
			Name:         ing.Name,
			Quantity:     ing.Quantity,
			Unit:         ing.Unit,
			PricePerUnit: ing.PricePerUnit,
		})
	}
	data, err := json.Marshal(js)
	if err != nil {
		log.Printf("cannot encode calculation %q for sharing: %v", c.Name, err)
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(escapeComponent(string(data))))
}

// DecodeShare rebuilds a calculation from a share token.
//
// The result is a new calculation: it gets fresh identifiers, both its
// timestamps are 'now', and missing values take their defaults (see
// normalize). Any malformed token returns an error wrapping ErrInvalidToken.
func DecodeShare(token string, now time.Time) (*Calculation, error) {
	raw, err := decodeBase64(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	text, err := url.PathUnescape(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	jobj, err := decodeObject([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return normalize(jobj, fromShare, now), nil
}

// ShareLink returns the link to 'c' for an application served at 'origin'.
//
// The token is query escaped in the link ('+' is %2B, '=' is %3D), so that it
// survives being pasted in places that read '+' as a space. ShareToken
// unescapes it.
func ShareLink(origin string, c *Calculation) string {
	return strings.TrimRight(origin, "/") + "/?" + ShareParam + "=" + url.QueryEscape(EncodeShare(c))
}

// ShareToken returns the share token in 'link', if any.
func ShareToken(link string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", false
	}
	token := u.Query().Get(ShareParam)
	return token, token != ""
}

// componentUnescaper undoes what url.QueryEscape does and encodeURIComponent does not.
var componentUnescaper = strings.NewReplacer("+", "%20", "%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")

// escapeComponent percent-encodes s the way encodeURIComponent does.
func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// decodeBase64 accepts both base64 alphabets, with or without padding.
// Links pasted from a chat often lost their '+' to a space.
func decodeBase64(token string) ([]byte, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("empty token")
	}
	token = strings.ReplaceAll(token, " ", "+")
	token = strings.TrimRight(token, "=")
	enc := base64.RawStdEncoding
	if strings.ContainsAny(token, "-_") {
		enc = base64.RawURLEncoding
	}
	return enc.DecodeString(token)
}
