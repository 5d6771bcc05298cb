package scheduling

import (
	"testing"

	"lawflow/models"
)

func schemaProfile() *models.AvailabilityProfile {
	return &models.AvailabilityProfile{
		RequiredFields: models.RequiredFields{Name: true, Email: true},
		CustomFields: []models.CustomField{
			{Name: "matter_type", Type: models.FieldTypeSelect, Required: true, Options: []string{"civil", "criminal"}},
			{Name: "party_count", Type: models.FieldTypeNumber},
			{Name: "first_consult", Type: models.FieldTypeCheckbox},
			{Name: "case_summary", Type: models.FieldTypeText, Required: true},
		},
	}
}

func TestValidateSubmissionOK(t *testing.T) {
	sub := &models.BookingSubmission{
		ClientName:  "Ana Rios",
		ClientEmail: "ana@example.com",
		CustomFieldValues: []models.CustomFieldValue{
			{Name: "matter_type", Value: "civil"},
			{Name: "party_count", Value: float64(2)},
			{Name: "first_consult", Value: true},
			{Name: "case_summary", Value: "contract dispute"},
		},
	}
	if verr := ValidateSubmission(schemaProfile(), sub); verr != nil {
		t.Fatalf("expected valid submission, got %v", verr)
	}
}

func TestValidateSubmissionCollectsAllViolations(t *testing.T) {
	sub := &models.BookingSubmission{
		ClientEmail: "not-an-email",
		CustomFieldValues: []models.CustomFieldValue{
			{Name: "matter_type", Value: "family"},
			{Name: "party_count", Value: "many"},
			{Name: "first_consult", Value: "yes"},
		},
	}

	verr := ValidateSubmission(schemaProfile(), sub)
	if verr == nil {
		t.Fatal("expected a validation error")
	}

	wantMissing := map[string]bool{"clientName": true, "case_summary": true}
	if len(verr.MissingFields) != len(wantMissing) {
		t.Fatalf("expected missing %v, got %v", wantMissing, verr.MissingFields)
	}
	for _, f := range verr.MissingFields {
		if !wantMissing[f] {
			t.Errorf("unexpected missing field %q", f)
		}
	}

	wantInvalid := map[string]bool{
		"clientEmail":   true,
		"matter_type":   true,
		"party_count":   true,
		"first_consult": true,
	}
	if len(verr.InvalidFields) != len(wantInvalid) {
		t.Fatalf("expected invalid %v, got %v", wantInvalid, verr.InvalidFields)
	}
	for _, v := range verr.InvalidFields {
		if !wantInvalid[v.Field] {
			t.Errorf("unexpected invalid field %q (%s)", v.Field, v.Reason)
		}
	}
}

func TestValidateSubmissionNumericString(t *testing.T) {
	profile := &models.AvailabilityProfile{
		CustomFields: []models.CustomField{{Name: "party_count", Type: models.FieldTypeNumber, Required: true}},
	}
	sub := &models.BookingSubmission{
		CustomFieldValues: []models.CustomFieldValue{{Name: "party_count", Value: "3"}},
	}
	if verr := ValidateSubmission(profile, sub); verr != nil {
		t.Fatalf("numeric strings should parse as numbers, got %v", verr)
	}
}

func TestValidateSubmissionOptionalFieldsSkipped(t *testing.T) {
	profile := &models.AvailabilityProfile{
		CustomFields: []models.CustomField{{Name: "party_count", Type: models.FieldTypeNumber}},
	}
	sub := &models.BookingSubmission{}
	if verr := ValidateSubmission(profile, sub); verr != nil {
		t.Fatalf("absent optional fields must pass, got %v", verr)
	}
}
