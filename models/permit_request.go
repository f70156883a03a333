package models

// CreatePermitRequest is the body accepted by POST /permits.
type CreatePermitRequest struct {
	ApplicantName     string `json:"applicant_name" validate:"required"`
	ApplicantEmail    string `json:"applicant_email" validate:"required,email"`
	PermitType        string `json:"permit_type" validate:"required"`
	ApplicationStatus string `json:"application_status,omitempty" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

// UpdatePermitRequest is the body accepted by PATCH /permits/:id.
// A nil field was not sent and must be left untouched.
type UpdatePermitRequest struct {
	ApplicantName     *string `json:"applicant_name,omitempty"`
	ApplicantEmail    *string `json:"applicant_email,omitempty"`
	PermitType        *string `json:"permit_type,omitempty"`
	ApplicationStatus *string `json:"application_status,omitempty"`
}

// Changes maps the supplied fields to their column names. An empty map means
// nothing was sent.
func (r UpdatePermitRequest) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if r.ApplicantName != nil {
		changes["applicant_name"] = *r.ApplicantName
	}
	if r.ApplicantEmail != nil {
		changes["applicant_email"] = *r.ApplicantEmail
	}
	if r.PermitType != nil {
		changes["permit_type"] = *r.PermitType
	}
	if r.ApplicationStatus != nil {
		changes["application_status"] = *r.ApplicationStatus
	}
	return changes
}
