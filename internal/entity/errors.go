package entity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrVenueNotFound  = fmt.Errorf("venue %w", ErrNotFound)
	ErrArtistNotFound = fmt.Errorf("artist %w", ErrNotFound)
	ErrShowNotFound   = fmt.Errorf("show %w", ErrNotFound)

	ErrValidation    = errors.New("validation failed")
	ErrPersistence   = errors.New("persistence failure")
	ErrVenueHasShows = errors.New("venue has scheduled shows")
)

// ValidationError lists every rejected field of a submission.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = message
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
