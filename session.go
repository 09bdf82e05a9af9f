package cookiecost

import (
	"strings"
	"time"
)

// Session holds the calculation being edited and the recent list, and
// exposes the commands of the calculator screen.
//
// The working calculation is detached from the store: commands only change
// it in memory, and nothing is persisted until Save or SaveAs. A Session is
// not safe for concurrent use.
type Session struct {
	store   *Store
	now     func() time.Time
	current *Calculation
	recent  []*Calculation
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock sets the clock used to stamp calculations.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// NewSession starts a session on a new calculation, with the recent list loaded from 'store'.
func NewSession(store *Store, opts ...SessionOption) *Session {
	s := &Session{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.current = NewCalculation(s.now())
	s.RefreshRecent()
	return s
}

// Current returns the working calculation. Callers must use the commands to change it.
func (s *Session) Current() *Calculation { return s.current }

// Recent returns the recent list as of the last refresh.
func (s *Session) Recent() []*Calculation { return s.recent }

// RefreshRecent reloads the recent list from the store.
func (s *Session) RefreshRecent() {
	s.recent = s.store.Recent(DefaultRecentLimit)
}

func (s *Session) SetName(name string) { s.current.Name = name }

// SetBatchSize sets the number of cookies from user input, invalid input reads as 0.
func (s *Session) SetBatchSize(text string) { s.current.NumCookiesInBatch = ParseCount(text) }

// SetCookingTime sets the cooking time in minutes from user input, invalid input reads as 0.
func (s *Session) SetCookingTime(text string) { s.current.CookingTime = ParseCount(text) }

// AddIngredient appends an empty ingredient and returns it.
func (s *Session) AddIngredient() Ingredient {
	ing := NewIngredient()
	s.current.Ingredients = append(s.current.Ingredients, ing)
	return ing
}

// RemoveIngredient removes the ingredient with 'id', and reports whether there was one.
func (s *Session) RemoveIngredient(id string) bool {
	i := s.current.IndexOf(id)
	if i < 0 {
		return false
	}
	s.current.Ingredients = append(s.current.Ingredients[:i:i], s.current.Ingredients[i+1:]...)
	return true
}

// UpdateIngredient replaces the ingredient with the same ID, and reports whether there was one.
// Negative quantity or price are clamped to 0.
func (s *Session) UpdateIngredient(ing Ingredient) bool {
	i := s.current.IndexOf(ing.ID)
	if i < 0 {
		return false
	}
	ing.Quantity = ing.Quantity.nonNegative()
	ing.PricePerUnit = ing.PricePerUnit.nonNegative()
	s.current.Ingredients[i] = ing
	return true
}

// Recompute updates the cost per unit of the working calculation, and returns it.
func (s *Session) Recompute() Quantity {
	s.current.CostPerUnit = CostPerUnit(s.current)
	s.current.UpdatedAt = s.now()
	return s.current.CostPerUnit
}

// Save saves the working calculation, replacing any saved version of it.
// It returns ErrNameRequired when the calculation has no name yet.
func (s *Session) Save() error {
	if strings.TrimSpace(s.current.Name) == "" {
		return ErrNameRequired
	}
	s.current.UpdatedAt = s.now()
	if err := s.store.Save(s.current); err != nil {
		return err
	}
	s.RefreshRecent()
	return nil
}

// SaveAs saves the working calculation as a new one named 'name', leaving
// any previously saved version untouched. The working calculation becomes
// the new one.
func (s *Session) SaveAs(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	fork := s.current.Clone()
	fork.ID = newID()
	fork.Name = name
	fork.UpdatedAt = s.now()
	if err := s.store.Save(fork); err != nil {
		return err
	}
	s.current = fork
	s.RefreshRecent()
	return nil
}

// New discards the working calculation for a new one.
func (s *Session) New() { s.current = NewCalculation(s.now()) }

// Load replaces the working calculation with a copy of 'c'.
func (s *Session) Load(c *Calculation) { s.current = c.Clone() }

// LoadShared replaces the working calculation with the one in a share token.
// On error the working calculation is unchanged.
func (s *Session) LoadShared(token string) error {
	c, err := DecodeShare(token, s.now())
	if err != nil {
		return err
	}
	s.current = c
	return nil
}

// ShareLink returns the share link of the working calculation.
func (s *Session) ShareLink(origin string) string { return ShareLink(origin, s.current) }
