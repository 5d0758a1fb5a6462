// internal/validate/errors.go
package validate

import "strings"

// FieldError describes one rejected value. Path is dotted, with list
// indexes as segments, e.g. "team.members.2.email".
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// Error is returned when a document fails validation. It always lists
// every violation found, not just the first.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 1 {
		return "invalid document: " + e.Fields[0].String()
	}
	return "invalid document: " + e.All()
}

// First returns the first violation message, or "".
func (e *Error) First() string {
	if len(e.Fields) == 0 {
		return ""
	}
	return e.Fields[0].String()
}

// All joins every violation with "; ".
func (e *Error) All() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.String()
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether a violation was recorded for path.
func (e *Error) Has(path string) bool {
	for _, f := range e.Fields {
		if f.Path == path {
			return true
		}
	}
	return false
}

type collector struct {
	fields []FieldError
}

func (c *collector) add(path, msg string) {
	c.fields = append(c.fields, FieldError{Path: path, Message: msg})
}

func (c *collector) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &Error{Fields: c.fields}
}
