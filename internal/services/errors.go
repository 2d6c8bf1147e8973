package services

import (
	"fmt"
	"sort"
	"strings"

	"toko-core/internal/validation"
)

// Kind classifies a domain error so the HTTP layer can pick a status code.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInvalidArgument
)

// Error is a domain error raised where the problem is detected.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works
// regardless of the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	// ErrNotFound matches every NotFound error.
	ErrNotFound = &Error{Kind: KindNotFound, Message: "not found"}
	// ErrInvalidArgument matches every InvalidArgument error.
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument, Message: "invalid argument"}
)

func notFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func invalidArgument(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// ValidationError reports every field constraint a payload failed.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validateRequest runs the declared constraints of req and converts failures
// into a *ValidationError.
func validateRequest(req interface{}, messages validation.Messages) error {
	fields, err := validation.Struct(req, messages)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func requirePositiveID(resource string, id int64) error {
	if id <= 0 {
		return invalidArgument("%s ID must be a positive number", resource)
	}
	return nil
}
