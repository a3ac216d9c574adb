package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var WidgetSessionExpired = &Failure{Code: http.StatusNotFound, Message: "widget session expired or not found"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Validation is a Failure carrying structured per-field errors, the shape the
// remote rental API uses for rejected bookings. Errors not tied to a single
// field go under the FieldGeneral key.
type Validation struct {
	Failure
	Fields map[string][]string `json:"fields"`
}

const FieldGeneral = "_form"

// Unwrap exposes the embedded Failure so GetCode resolves the right status.
func (v *Validation) Unwrap() error {
	return &v.Failure
}

// ValidationFailure builds a Validation failure from per-field messages.
func ValidationFailure(fields map[string][]string) error {
	return &Validation{
		Failure: Failure{
			Code:    http.StatusBadRequest,
			Message: "validation failed",
		},
		Fields: fields,
	}
}

// FieldErrors extracts the per-field error map from an error, if it carries one.
func FieldErrors(err error) (map[string][]string, bool) {
	var v *Validation
	if errors.As(err, &v) {
		return v.Fields, true
	}

	return nil, false
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
