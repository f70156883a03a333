package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name   string `json:"applicant_name" validate:"required"`
	Email  string `json:"applicant_email" validate:"required,email"`
	Status string `json:"application_status,omitempty" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.Nil(t, ValidateStruct(sample{Name: "A", Email: "a@example.com"}))
	assert.Nil(t, ValidateStruct(sample{Name: "A", Email: "a@example.com", Status: "APPROVED"}))
}

func TestValidateStruct_ReportsJSONFieldNames(t *testing.T) {
	msgs := ValidateStruct(sample{Email: "not-an-email", Status: "DONE"})

	assert.ElementsMatch(t, []string{
		"applicant_name should not be empty",
		"applicant_email must be an email",
		"application_status must be one of the following values: PENDING, APPROVED, REJECTED",
	}, msgs)
}

func TestValidateField(t *testing.T) {
	assert.Nil(t, ValidateField("permit_type", "Building Permit", "required"))
	assert.Equal(t, []string{"permit_type should not be empty"}, ValidateField("permit_type", "", "required"))
	assert.Equal(t, []string{"applicant_email must be an email"}, ValidateField("applicant_email", "nope", "required,email"))
}
