package cookiecost

import (
	"fmt"
	"log"
	"slices"
	"strings"
	"time"
)

const (
	// StorageKey is the backend key of the calculations collection.
	StorageKey = "delacasa_cookie_calculations"
	// DefaultRecentLimit is the usual length of the recent list.
	DefaultRecentLimit = 5
)

// Store is the local collection of saved calculations, kept as a single JSON
// array under StorageKey.
//
// Every call reads or writes the whole collection through the backend, there
// is no cache. A Store is not safe for concurrent use.
type Store struct {
	backend Backend
}

// NewStore returns a Store persisted in 'backend'.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// blob returns the persisted collection text, "" if there is none.
func (s *Store) blob() (string, error) {
	v, ok, err := s.backend.Get(StorageKey)
	if err != nil || !ok {
		return "", err
	}
	return v, nil
}

// List returns every saved calculation, in collection order.
//
// It never fails: an absent collection is empty, and an unreadable one is
// logged and read as empty too.
func (s *Store) List() []*Calculation {
	data, err := s.blob()
	if err != nil {
		log.Printf("cannot read saved calculations: %v", err)
		return []*Calculation{}
	}
	if strings.TrimSpace(data) == "" {
		return []*Calculation{}
	}
	list, err := parseCollection([]byte(data))
	if err != nil {
		log.Printf("saved calculations are corrupted, ignoring them: %v", err)
		return []*Calculation{}
	}
	return list
}

// parseCollection reads a JSON array of calculations leniently.
func parseCollection(data []byte) ([]*Calculation, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	jlist, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("not a JSON array")
	}
	list := make([]*Calculation, 0, len(jlist))
	for i, jv := range jlist {
		jobj, ok := jv.(map[string]any)
		if !ok {
			log.Printf("skipping saved calculation #%d: not a JSON object", i)
			continue
		}
		list = append(list, normalize(jobj, fromStore, time.Time{}))
	}
	return list, nil
}

func (s *Store) write(list []*Calculation) error {
	data, err := marshalCollection(list)
	if err != nil {
		return fmt.Errorf("cannot encode calculations: %w", err)
	}
	if err := s.backend.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("cannot save calculations: %w", err)
	}
	return nil
}

// Save inserts 'c', or replaces in place the saved calculation with the same ID.
// The rest of the collection keeps its order.
func (s *Store) Save(c *Calculation) error {
	list := s.List()
	saved := c.Clone()
	if i := slices.IndexFunc(list, func(x *Calculation) bool { return x.ID == c.ID }); i >= 0 {
		list[i] = saved
	} else {
		list = append(list, saved)
	}
	return s.write(list)
}

// Delete removes the calculation with 'id'.
func (s *Store) Delete(id string) error {
	list := s.List()
	i := slices.IndexFunc(list, func(x *Calculation) bool { return x.ID == id })
	if i < 0 {
		return fmt.Errorf("cannot delete %q: %w", id, ErrNotFound)
	}
	return s.write(slices.Delete(list, i, i+1))
}

// Get returns the calculation with 'id'.
func (s *Store) Get(id string) (*Calculation, error) {
	for _, c := range s.List() {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
}

// Find returns the calculation whose ID is 'key', or else the most recently
// updated one named 'key'. Names are compared case-insensitively.
func (s *Store) Find(key string) (*Calculation, error) {
	if c, err := s.Get(key); err == nil {
		return c, nil
	}
	for _, c := range s.Recent(-1) {
		if strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(key)) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", key, ErrNotFound)
}

// Recent returns at most 'limit' calculations, most recently updated first.
// Ties keep collection order. A negative limit returns them all.
func (s *Store) Recent(limit int) []*Calculation {
	list := s.List()
	slices.SortStableFunc(list, func(a, b *Calculation) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	if limit >= 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}
