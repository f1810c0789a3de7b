package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// Kind is the closed set of failure categories the API can report.
// Every error leaving a handler is normalized to one of these before
// it is serialized.
type Kind int

const (
	Validation Kind = iota // malformed or missing input
	Duplicate              // unique-constraint violation
	Unauthorized
	NotFound
	UpstreamTimeout // external model exceeded its deadline
	UpstreamSafety  // external model refused on safety grounds
	Upstream        // any other provider or network failure
	Internal
)

func (k Kind) StatusCode() int {
	switch k {
	case Validation, Duplicate, UpstreamSafety:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error with the given kind and client-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap keeps the underlying cause for logging while presenting message
// to the client.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Normalize maps any error to an *Error. Database and binding errors are
// translated here so handlers never inspect driver-specific types.
func Normalize(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if mongo.IsDuplicateKeyError(err) {
		return Wrap(Duplicate, duplicateKeyMessage(err), err)
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return Wrap(Validation, validationMessage(vErrs), err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) {
		return Wrap(Validation, "Invalid request body", err)
	}

	return Wrap(Internal, "Server Error", err)
}

// duplicateKeyMessage recovers the offending field from the driver's
// write error, which embeds the index name as "index: <field>_1".
func duplicateKeyMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, "index: "); i >= 0 {
		rest := msg[i+len("index: "):]
		if j := strings.IndexAny(rest, "_ "); j > 0 {
			return fmt.Sprintf("%s is already registered", rest[:j])
		}
	}
	return "Duplicate field value entered"
}

func validationMessage(vErrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("Please provide a %s", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("Please provide a valid %s", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters long",
				capitalize(field), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("Invalid %s", field))
		}
	}
	return strings.Join(msgs, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
