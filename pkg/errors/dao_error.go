package errors

import (
	"fmt"
)

type DaoError struct {
	Err           error
	Message       string
	NotFound      bool
	BadValidation bool
	TooLarge      bool // Payload exceeded a configured size ceiling
	Upstream      bool // Blob store or other external collaborator failed
}

func (e *DaoError) Error() string {
	if e.Err == nil {
		return e.Message
	} else {
		return fmt.Sprintf("%v: %v", e.Message, e.Err.Error())
	}
}

func (e *DaoError) Unwrap() error {
	return e.Err
}

func (e *DaoError) Wrap(err error) {
	e.Err = err
}

// NewValidationError returns a DaoError that maps to a 400 response
func NewValidationError(message string) *DaoError {
	return &DaoError{Message: message, BadValidation: true}
}

// NewNotFoundError returns a DaoError that maps to a 404 response
func NewNotFoundError(message string) *DaoError {
	return &DaoError{Message: message, NotFound: true}
}
