package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPermitStatus(t *testing.T) {
	assert.True(t, IsValidPermitStatus(PERMIT_STATUS_PENDING))
	assert.True(t, IsValidPermitStatus(PERMIT_STATUS_APPROVED))
	assert.True(t, IsValidPermitStatus(PERMIT_STATUS_REJECTED))
	assert.False(t, IsValidPermitStatus("pending"))
	assert.False(t, IsValidPermitStatus(""))
	assert.False(t, IsValidPermitStatus("CANCELLED"))
}

func TestUpdatePermitRequest_ChangesOnlySuppliedFields(t *testing.T) {
	assert.Empty(t, UpdatePermitRequest{}.Changes())

	name := "New Name"
	assert.Equal(t, map[string]interface{}{"applicant_name": "New Name"},
		UpdatePermitRequest{ApplicantName: &name}.Changes())

	email, permitType, status := "new@example.com", "Event Permit", PERMIT_STATUS_APPROVED
	assert.Equal(t, map[string]interface{}{
		"applicant_name":     "New Name",
		"applicant_email":    "new@example.com",
		"permit_type":        "Event Permit",
		"application_status": PERMIT_STATUS_APPROVED,
	}, UpdatePermitRequest{
		ApplicantName:     &name,
		ApplicantEmail:    &email,
		PermitType:        &permitType,
		ApplicationStatus: &status,
	}.Changes())
}
