package service

import (
	"fmt"
	"fsdine_restaurant/model"
	"sort"
	"strings"
)

// ErrDuplicateOrder means an order with the same number was already placed
// from the same source.
var ErrDuplicateOrder = model.ErrDuplicateOrder

// ValidationError carries per-field messages keyed by dotted json path.
type ValidationError struct {
	Errors map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Errors[field], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// PersistenceError wraps a storage failure. The transaction it happened in
// has been rolled back.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
