package cookiecost

import (
	"fmt"
	"strings"
)

// LanguageKey is the backend key of the language preference.
const LanguageKey = "delacasa_language"

// Language is the display language preference.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// ParseLanguage reads "en" or "es", in any case.
func ParseLanguage(s string) (Language, error) {
	switch l := Language(strings.ToLower(strings.TrimSpace(s))); l {
	case English, Spanish:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q, use %q or %q", ErrInvalidLanguage, s, English, Spanish)
}

// Language returns the saved language preference, English if there is none.
func (s *Store) Language() Language {
	v, ok, err := s.backend.Get(LanguageKey)
	if err != nil || !ok {
		return English
	}
	l, err := ParseLanguage(v)
	if err != nil {
		return English
	}
	return l
}

// SetLanguage saves the language preference.
func (s *Store) SetLanguage(l Language) error {
	if _, err := ParseLanguage(string(l)); err != nil {
		return err
	}
	if err := s.backend.Set(LanguageKey, string(l)); err != nil {
		return fmt.Errorf("cannot save language: %w", err)
	}
	return nil
}
