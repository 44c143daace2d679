// Package server provides the HTTP REST API for the resume matcher.
package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnreadableDocument indicates the uploaded résumé could not be decoded
type ErrUnreadableDocument struct {
	ContentType string
	Cause       error
}

func (e *ErrUnreadableDocument) Error() string {
	return fmt.Sprintf("unreadable document (%s): %v", e.ContentType, e.Cause)
}

func (e *ErrUnreadableDocument) Unwrap() error {
	return e.Cause
}

// ErrCorpusUnavailable indicates the job corpus could not be loaded
type ErrCorpusUnavailable struct {
	Cause error
}

func (e *ErrCorpusUnavailable) Error() string {
	return fmt.Sprintf("job corpus unavailable: %v", e.Cause)
}

func (e *ErrCorpusUnavailable) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *ErrUnreadableDocument:
		return http.StatusBadRequest
	case *ErrCorpusUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
