package errors

import (
	stderrors "errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeParse           ErrorType = "PARSE"
	ErrTypeMalformedRecord ErrorType = "MALFORMED_RECORD"
	ErrTypeInvalidFile     ErrorType = "INVALID_FILE"
	ErrTypeNotFound        ErrorType = "NOT_FOUND"
	ErrTypeInvalidInput    ErrorType = "INVALID_INPUT"
)

// DomainError is the error returned by every package in this module
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func Parse(message string, err error) *DomainError {
	return New(ErrTypeParse, message, err)
}

func MalformedRecord(message string, err error) *DomainError {
	return New(ErrTypeMalformedRecord, message, err)
}

func InvalidFile(message string, err error) *DomainError {
	return New(ErrTypeInvalidFile, message, err)
}

func NotFound(message string, err error) *DomainError {
	return New(ErrTypeNotFound, message, err)
}

func InvalidInput(message string, err error) *DomainError {
	return New(ErrTypeInvalidInput, message, err)
}

// TypeOf returns the type of the first DomainError in err's chain, or "" if there is none
func TypeOf(err error) ErrorType {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de.Type
	}
	return ""
}

// IsType reports whether err carries a DomainError of the given type
func IsType(err error, errType ErrorType) bool {
	return err != nil && TypeOf(err) == errType
}
