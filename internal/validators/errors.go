// Package validators checks inbound request payloads before they reach the
// service layer and reports failures as field-keyed messages, so the HTTP
// boundary can return precise 400 responses.
//
// Validators are pure functions over the request models; they never touch
// storage. Business-rule failures that need data (card availability, claim
// state) stay in the services.
package validators

import (
	"fmt"
	"sort"
	"strings"
)

// Error is a validation failure carrying one message per offending field.
// A nil *Error means the input passed.
type Error struct {
	Fields map[string]string
}

func newError() *Error {
	return &Error{Fields: make(map[string]string)}
}

// add records a failure message for field, keeping the first message when a
// field fails more than one rule.
func (e *Error) add(field, message string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// orNil collapses an empty collector to nil so callers can return the result
// directly.
func (e *Error) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Error implements the error interface, listing fields in stable order.
func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
