package cookiecost

import "errors"

// Sentinel errors returned by the store, the codecs and the session.
var (
	ErrNotFound        = errors.New("calculation not found")
	ErrNameRequired    = errors.New("a name is required to save a calculation")
	ErrInvalidImport   = errors.New("invalid import data")
	ErrInvalidToken    = errors.New("invalid share token")
	ErrInvalidLanguage = errors.New("invalid language")
)
