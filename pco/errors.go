package pco

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound       = errors.New("pco: not found")
	ErrUnauthorized   = errors.New("pco: unauthorized")
	ErrForbidden      = errors.New("pco: forbidden")
	ErrRateLimited    = errors.New("pco: rate limited")
	ErrInvalidRequest = errors.New("pco: invalid request")
	ErrServer         = errors.New("pco: server error")

	// ErrEmptyResponse is returned when a single resource was expected but
	// the response carried no data.
	ErrEmptyResponse = errors.New("pco: response contained no data")

	// ErrForeignLink is returned when a pagination link points at a host
	// other than the configured API.
	ErrForeignLink = errors.New("pco: pagination link points at a foreign host")
)

// ErrorObject is a JSON:API error object.
type ErrorObject struct {
	ID     string         `json:"id,omitempty"`
	Status string         `json:"status,omitempty"`
	Code   string         `json:"code,omitempty"`
	Title  string         `json:"title,omitempty"`
	Detail string         `json:"detail,omitempty"`
	Source *ErrorSource   `json:"source,omitempty"`
	Meta   map[string]any `json:"meta,omitempty"`
}

// ErrorSource points at the part of the request that caused an error.
type ErrorSource struct {
	Pointer   string `json:"pointer,omitempty"`
	Parameter string `json:"parameter,omitempty"`
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Errors     []ErrorObject
	RetryAfter time.Duration
	Body       []byte
}

func (e *APIError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "pco: %s %s: HTTP %d", e.Method, e.URL, e.StatusCode)
	for _, obj := range e.Errors {
		sb.WriteString(": ")
		sb.WriteString(obj.Title)
		if obj.Detail != "" {
			sb.WriteString(" (" + obj.Detail + ")")
		}
	}
	if len(e.Errors) == 0 && len(e.Body) > 0 {
		sb.WriteString(": " + truncate(string(e.Body), 200))
	}
	return sb.String()
}

// Is maps the status code onto the package's sentinel errors.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrInvalidRequest:
		return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
	case ErrServer:
		return e.StatusCode >= 500
	}
	return false
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		return time.Until(t)
	}
	return 0
}

// MissingParentError is returned by operations on a nested endpoint that was
// scoped without a parent id.
type MissingParentError struct {
	Parent string
	Child  string
}

func (e *MissingParentError) Error() string {
	return fmt.Sprintf("pco: must provide ID for %s endpoint (scope it with an id before using %s)", e.Parent, e.Child)
}

// KindError is returned when a relationship points at an unexpected type.
type KindError struct {
	Want string
	Got  string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("pco: expected type %q but got %q", e.Want, e.Got)
}

// ValidationError reports options or attributes that failed validation.
type ValidationError struct {
	Fields map[string]string
	err    error
}

func newValidationError(err error) error {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}
	fields := make(map[string]string, len(valErrs))
	for _, ve := range valErrs {
		fields[ve.Namespace()] = formatValidationError(ve)
	}
	return &ValidationError{Fields: fields, err: err}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, len(keys))
	for i, k := range keys {
		msgs[i] = k + ": " + e.Fields[k]
	}
	return "pco: invalid options: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return e.err }

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
