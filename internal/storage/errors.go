// Package storage saves and loads resume documents, the local persistence collaborator.
package storage

import (
	"fmt"

	"github.com/google/uuid"
)

// LoadError represents an error reading or decoding a stored document
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NotFoundError indicates no document is stored under the ID
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no saved document found: %s", e.ID)
}
