package errors

import (
	"fmt"
	"net/http"
)

// Error carries the namespace of the failing call chain, an i18n message
// key rendered to the client and the raw underlying error kept for logs.
type Error struct {
	namespace string
	key       string
	raw       error
	code      int
}

func New(namespace, messageKey string, raw error) *Error {
	return &Error{
		namespace: namespace,
		key:       messageKey,
		raw:       raw,
		code:      http.StatusInternalServerError,
	}
}

// Code overrides the default 500 http status.
func (e *Error) Code(code int) *Error {
	e.code = code
	return e
}

func (e *Error) Error() string {
	if e.raw == nil {
		return fmt.Sprintf("%s: %s", e.namespace, e.key)
	}
	return fmt.Sprintf("%s: %s: %s", e.namespace, e.key, e.raw.Error())
}

func (e *Error) Unwrap() error {
	return e.raw
}

// Trace prepends namespace to an already structured error so the full call
// chain shows up in logs. Unstructured errors are wrapped as internal.
func Trace(namespace string, err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		e.namespace = namespace + "." + e.namespace
		return e
	}
	return New(namespace, "error.internal", err)
}

// HTTPCode resolves the response status for err, 500 when unstructured.
func HTTPCode(err error) int {
	if e, ok := err.(*Error); ok {
		return e.code
	}
	return http.StatusInternalServerError
}

// MessageKey resolves the i18n key for err, error.internal when unstructured.
func MessageKey(err error) string {
	if e, ok := err.(*Error); ok {
		return e.key
	}
	return "error.internal"
}
