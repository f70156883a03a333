package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound matches, via errors.Is, every lookup of a permit id that does not exist.
var ErrNotFound = errors.New("permit application not found")

// NotFoundError names the id that was looked up.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Permit application with ID %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError is returned before any write when the request body is invalid.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}
