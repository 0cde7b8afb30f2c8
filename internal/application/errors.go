package application

import "errors"

var (
	// ErrLocaleNotFound is returned when no catalog is loaded for a tag
	ErrLocaleNotFound = errors.New("locale not found")
)
