// Package server provides the HTTP API for keyword extraction, scoring, and saved documents.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/storage"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrWritesDisabled indicates document writes were requested but no JWT secret is configured
type ErrWritesDisabled struct{}

func (e *ErrWritesDisabled) Error() string {
	return "document writes are disabled: JWT_SECRET is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *schemas.ValidationError, validator.ValidationErrors:
		return http.StatusBadRequest
	case *storage.NotFoundError:
		return http.StatusNotFound
	case *ErrWritesDisabled:
		return http.StatusServiceUnavailable
	}

	var notFound *storage.NotFoundError
	switch {
	case errors.Is(err, ats.ErrNoInput):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
