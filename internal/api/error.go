package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/hay-kot/criterio"
)

// fallbackMessage is used when no better message can be derived.
const fallbackMessage = "An error occurred"

// Error is the single normalized error shape for every failed call:
// transport failures, HTTP error statuses, and soft failures where the
// envelope reports success=false on a 2xx response.
type Error struct {
	Message string
	Errors  criterio.FieldErrors
	Status  int
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

// Unwrap exposes validation field errors so the printer can render them.
func (e *Error) Unwrap() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e.Errors
}

// IsAuthError reports whether err is a normalized 401.
func IsAuthError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == 401
}

// fieldErrors converts the envelope's validation errors payload into
// criterio field errors. The backend sends a field->message map; anything
// else is ignored.
func fieldErrors(raw json.RawMessage) criterio.FieldErrors {
	if len(raw) == 0 {
		return nil
	}

	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil || len(m) == 0 {
		return nil
	}

	fields := make([]string, 0, len(m))
	for f := range m {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	out := make(criterio.FieldErrors, 0, len(fields))
	for _, f := range fields {
		out = append(out, criterio.FieldError{Field: f, Err: errors.New(m[f])})
	}
	return out
}
