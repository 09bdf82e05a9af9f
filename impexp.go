package cookiecost

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to handle the import/export format.
//
// The format is the persisted collection itself: a single JSON array of
// calculations, so an export can be imported back as is, and a file written
// by the web version of the calculator can be imported here.

// ExportFilename is the suggested name of an export file.
const ExportFilename = "delacasa_cookie_calculations.json"

// Export writes the persisted collection to 'w', verbatim.
func (s *Store) Export(w io.Writer) error {
	data, err := s.blob()
	if err != nil {
		return fmt.Errorf("cannot export calculations: %w", err)
	}
	if strings.TrimSpace(data) == "" {
		data = "[]"
	}
	if _, err := io.WriteString(w, data); err != nil {
		return fmt.Errorf("cannot export calculations: %w", err)
	}
	return nil
}

// Import replaces the whole collection with the calculations read from 'r'.
//
// It is all or nothing: if the text is not a JSON array of calculation-like
// objects (see ParseImport), the error wraps ErrInvalidImport and the store
// is left untouched. A valid text is stored as is, fields this version does
// not know included.
func (s *Store) Import(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("cannot read import data: %w", err)
	}
	if _, err := parseImport(data); err != nil {
		return err
	}
	if err := s.backend.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("cannot import calculations: %w", err)
	}
	return nil
}

// ParseImport reads an import file without touching any store.
//
// Every element must have at least a string 'id', a string 'name', a numeric
// 'numCookiesInBatch' and an array of 'ingredients'. Anything else is read
// leniently.
func ParseImport(r io.Reader) ([]*Calculation, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read import data: %w", err)
	}
	return parseImport(data)
}

func parseImport(data []byte) ([]*Calculation, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: not a valid JSON: %v", ErrInvalidImport, err)
	}
	jlist, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: not a JSON array", ErrInvalidImport)
	}

	list := make([]*Calculation, 0, len(jlist))
	for i, jv := range jlist {
		jobj, ok := jv.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: element #%d is not a JSON object", ErrInvalidImport, i)
		}
		if err := checkShape(jobj); err != nil {
			return nil, fmt.Errorf("%w: element #%d: %v", ErrInvalidImport, i, err)
		}
		list = append(list, normalize(jobj, fromStore, time.Time{}))
	}
	return list, nil
}

// shapeRules lists the properties a calculation must have, and the JSON type they must have.
var shapeRules = []struct {
	path string
	kind string
}{
	{"$.id", "string"},
	{"$.name", "string"},
	{"$.numCookiesInBatch", "number"},
	{"$.ingredients", "array"},
}

// checkShape verifies that jobj looks like a calculation.
func checkShape(jobj map[string]any) error {
	for _, rule := range shapeRules {
		jval, err := jsonpath.Get(rule.path, jobj)
		if err != nil {
			return fmt.Errorf("missing property %q", strings.TrimPrefix(rule.path, "$."))
		}
		if got := kindOf(jval); got != rule.kind {
			return fmt.Errorf("property %q must be of type %q, not %q", strings.TrimPrefix(rule.path, "$."), rule.kind, got)
		}
	}
	return nil
}

// kindOf returns the JSON type name of a decoded value.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
