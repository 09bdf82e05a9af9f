package cookiecost

import (
	"errors"
	"testing"
)

func TestLanguage(t *testing.T) {
	b := new(MemoryBackend)
	s := NewStore(b)
	if got := s.Language(); got != English {
		t.Errorf("Language() on an empty store = %q, want %q", got, English)
	}
	if err := s.SetLanguage(Spanish); err != nil {
		t.Fatalf("SetLanguage() error: %v", err)
	}
	if got := s.Language(); got != Spanish {
		t.Errorf("Language() = %q, want %q", got, Spanish)
	}
	if err := s.SetLanguage("fr"); !errors.Is(err, ErrInvalidLanguage) {
		t.Errorf("SetLanguage(fr) = %v, want ErrInvalidLanguage", err)
	}

	// The language lives in its own slot.
	if _, ok, _ := b.Get(StorageKey); ok {
		t.Errorf("SetLanguage() wrote the calculations slot")
	}

	b.Set(LanguageKey, "klingon")
	if got := s.Language(); got != English {
		t.Errorf("Language() with a bad value = %q, want %q", got, English)
	}
}

func TestParseLanguage(t *testing.T) {
	if l, err := ParseLanguage(" ES "); err != nil || l != Spanish {
		t.Errorf("ParseLanguage(ES) = %q, %v", l, err)
	}
	if _, err := ParseLanguage(""); err == nil {
		t.Errorf("ParseLanguage(\"\") succeeded")
	}
}
