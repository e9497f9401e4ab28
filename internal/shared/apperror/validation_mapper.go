package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// work_quality_score -> Work Quality Score
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]

		// Field() is the json name, see registerRules.
		humanReadableField := formatFieldName(e.Field())

		details := map[string]string{"field": e.Field()}

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField).WithDetails(details)
		case HalfStepTag:
			return New(
				CodeValidationError,
				humanReadableField+" must be between 0 and 5 in steps of 0.5",
				http.StatusBadRequest,
			).WithDetails(details)
		default:
			return InvalidField(humanReadableField).WithDetails(details)
		}
	}

	return New(
		CodeValidationError,
		"Invalid input",
		http.StatusBadRequest,
	)
}

// FromBinding converts a gin bind error into a 400 AppError. Validator
// failures keep their field specific message.
func FromBinding(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return MapValidationError(err)
	}
	return New(CodeValidationError, "Invalid request payload", http.StatusBadRequest).WithDetails(err.Error())
}
