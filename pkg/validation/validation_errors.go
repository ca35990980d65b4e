package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// Auth fields
	"Email":     "Email",
	"Password":  "Password",
	"Role":      "Role",
	"FirstName": "First name",
	"LastName":  "Last name",
	"Company":   "Company",

	// Job fields
	"Title":       "Title",
	"Description": "Description",
	"CompanyName": "Company name",
	"Location":    "Location",
	"JobType":     "Job type",
	"SalaryMin":   "Minimum salary",
	"SalaryMax":   "Maximum salary",
	"Skills":      "Skills",
	"JobStatus":   "Job status",

	// Application fields
	"CoverLetter": "Cover letter",
	"Resume":      "Resume",
	"Status":      "Status",
}

// FormatValidationErrors converts validator.ValidationErrors to one message
// per violated rule, so a single response enumerates every failure.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error (e.g. malformed JSON), return as-is
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "email":
		return fmt.Sprintf("%s: must be a valid email address", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s: must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s: must be at most %s", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s: must be one of [%s]", label, e.Param())
	case "gtefield":
		return fmt.Sprintf("%s: must be greater than or equal to %s", label, getFieldLabel(e.Param()))
	case "gte":
		return fmt.Sprintf("%s: must be greater than or equal to %s", label, e.Param())
	default:
		return fmt.Sprintf("%s: failed %s validation", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
