package validator

import (
	"errors"
	"strings"

	"github.com/alexfurtado22/djangobnb/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"isodate":  "{field} must be a date in YYYY-MM-DD format",
	}
)

func render(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			return render(valErr)
		}

		return valErrors.Error()
	}

	return err.Error()
}

// fields groups rendered messages per wire field name. Fields removed from
// serialization (json:"-") land in the general bucket.
func fields(err error) map[string][]string {
	var valErrors val.ValidationErrors

	out := map[string][]string{}

	if !errors.As(err, &valErrors) {
		out[failure.FieldGeneral] = []string{err.Error()}

		return out
	}

	for _, valErr := range valErrors {
		field := valErr.Field()
		if field == "" {
			field = failure.FieldGeneral
		}

		out[field] = append(out[field], render(valErr))
	}

	return out
}
