package scheduling

import (
	"regexp"
	"strconv"
	"strings"

	"lawflow/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateSubmission checks a booking submission against the profile's
// required and custom field schema. Returns nil when the submission is
// acceptable; otherwise a ValidationError carrying every violation at once.
func ValidateSubmission(profile *models.AvailabilityProfile, sub *models.BookingSubmission) *ValidationError {
	verr := &ValidationError{}

	checkRequired(verr, "clientName", profile.RequiredFields.Name, sub.ClientName)
	checkRequired(verr, "clientEmail", profile.RequiredFields.Email, sub.ClientEmail)
	checkRequired(verr, "clientPhone", profile.RequiredFields.Phone, sub.ClientPhone)
	checkRequired(verr, "notes", profile.RequiredFields.Notes, sub.Notes)
	checkRequired(verr, "clientCompany", profile.RequiredFields.Company, sub.ClientCompany)
	checkRequired(verr, "clientAddress", profile.RequiredFields.Address, sub.ClientAddress)

	if strings.TrimSpace(sub.ClientEmail) != "" && !emailPattern.MatchString(sub.ClientEmail) {
		verr.InvalidFields = append(verr.InvalidFields, FieldViolation{
			Field:  "clientEmail",
			Reason: "not a valid email address",
		})
	}

	for _, field := range profile.CustomFields {
		validateCustomField(verr, field, sub)
	}

	if verr.HasViolations() {
		return verr
	}
	return nil
}

func checkRequired(verr *ValidationError, field string, required bool, value string) {
	if required && strings.TrimSpace(value) == "" {
		verr.MissingFields = append(verr.MissingFields, field)
	}
}

func validateCustomField(verr *ValidationError, field models.CustomField, sub *models.BookingSubmission) {
	value, present := sub.CustomValue(field.Name)
	if !present || isEmptyValue(value) {
		if field.Required {
			verr.MissingFields = append(verr.MissingFields, field.Name)
		}
		return
	}

	switch field.Type {
	case models.FieldTypeText:
		if _, ok := value.(string); !ok {
			verr.InvalidFields = append(verr.InvalidFields, FieldViolation{Field: field.Name, Reason: "expected text"})
		}
	case models.FieldTypeNumber:
		if !isNumeric(value) {
			verr.InvalidFields = append(verr.InvalidFields, FieldViolation{Field: field.Name, Reason: "expected a number"})
		}
	case models.FieldTypeSelect:
		s, ok := value.(string)
		if !ok || !containsOption(field.Options, s) {
			verr.InvalidFields = append(verr.InvalidFields, FieldViolation{Field: field.Name, Reason: "value is not one of the allowed options"})
		}
	case models.FieldTypeCheckbox:
		if _, ok := value.(bool); !ok {
			verr.InvalidFields = append(verr.InvalidFields, FieldViolation{Field: field.Name, Reason: "expected true or false"})
		}
	}
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// isNumeric accepts JSON numbers and numeric strings.
func isNumeric(v any) bool {
	switch n := v.(type) {
	case float64, float32, int, int32, int64:
		return true
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return err == nil
	default:
		return false
	}
}

func containsOption(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
