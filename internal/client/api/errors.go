package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// User-facing messages for known status codes. The wording is part of the
// console's contract with its users and matches the server team's guidance.
var (
	ErrInvalidCredentials   = errors.New("Invalid email or password. Please try again.")
	ErrUserExists           = errors.New("User already exists. Please use a different email.")
	ErrInstructorHasCourses = errors.New("Cannot delete this instructor because courses are associated with them. Please delete the courses first.")
	ErrPDFNotFound          = errors.New("PDF not found. The file may have been deleted or moved.")
	ErrPDFUnauthorized      = errors.New("Authentication error. Please log in again.")
	ErrNotPDF               = errors.New("Only PDF files are allowed.")
)

// StatusError is a non-2xx response from the server. Message is the body's
// "error" field when present, otherwise empty; callers pick their own
// fallback wording.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned %d %s", e.Status, http.StatusText(e.Status))
}

// newStatusError drains the response body looking for an {"error": "..."}
// payload.
func newStatusError(resp *http.Response) *StatusError {
	se := &StatusError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return se
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		se.Message = body.Error
	}
	return se
}

// HasStatus reports whether err is a *StatusError with the given code.
func HasStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}

// messageOr returns the server-supplied message from err when it carries one,
// otherwise fallback. Non-status (transport) errors are returned unchanged by
// the callers, so this is only consulted for *StatusError values.
func messageOr(err error, fallback string) error {
	var se *StatusError
	if errors.As(err, &se) {
		if se.Message != "" {
			return errors.New(se.Message)
		}
		return errors.New(fallback)
	}
	return err
}
