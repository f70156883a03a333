package models

import "time"

/************************************************
/**** MARK: PERMIT APPLICATION STATUS ****/
/************************************************/
const PERMIT_STATUS_PENDING = "PENDING"
const PERMIT_STATUS_APPROVED = "APPROVED"
const PERMIT_STATUS_REJECTED = "REJECTED"

// PermitStatuses lists every value application_status may hold.
var PermitStatuses = []string{
	PERMIT_STATUS_PENDING,
	PERMIT_STATUS_APPROVED,
	PERMIT_STATUS_REJECTED,
}

// PermitApplication is a citizen's submitted request for a permit.
// SubmittedAt is written once on insert and is the listing sort key.
type PermitApplication struct {
	ID                int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ApplicantName     string    `gorm:"not null" json:"applicant_name"`
	ApplicantEmail    string    `gorm:"not null" json:"applicant_email"`
	PermitType        string    `gorm:"not null" json:"permit_type"`
	ApplicationStatus string    `gorm:"not null;default:'PENDING'" json:"application_status"`
	SubmittedAt       time.Time `gorm:"not null;index" json:"submitted_at"`
}

// IsValidPermitStatus reports whether s is one of PermitStatuses.
func IsValidPermitStatus(s string) bool {
	for _, status := range PermitStatuses {
		if s == status {
			return true
		}
	}
	return false
}
