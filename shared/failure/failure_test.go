package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/alexfurtado22/djangobnb/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "BadRequestFromString",
			err:  failure.BadRequestFromString("incomplete date range"),
			code: http.StatusBadRequest,
		},
		{
			name: "Unauthorized",
			err:  failure.Unauthorized("log in to reserve"),
			code: http.StatusUnauthorized,
		},
		{
			name: "NotFound",
			err:  failure.NotFound("property not found"),
			code: http.StatusNotFound,
		},
		{
			name: "Conflict",
			err:  failure.Conflict("a reservation is already in flight"),
			code: http.StatusConflict,
		},
		{
			name: "InternalError",
			err:  failure.InternalError(errors.New("boom")),
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}
		})
	}
}

func TestValidationFailure(t *testing.T) {
	err := failure.ValidationFailure(map[string][]string{
		"startDate":          {"Please select a start date."},
		failure.FieldGeneral: {"Failed to create booking. Please try again."},
	})

	fields, ok := failure.FieldErrors(err)
	if !ok {
		t.Fatal("expected field errors to be extractable")
	}

	if len(fields["startDate"]) != 1 {
		t.Errorf("expected one startDate error, got %d", len(fields["startDate"]))
	}

	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected validation failure to map to 400, got %d", failure.GetCode(err))
	}

	if _, ok := failure.FieldErrors(errors.New("plain")); ok {
		t.Error("expected plain errors to carry no field map")
	}
}
