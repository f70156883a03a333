package services

import (
	"fmt"
	"time"

	"permitportal/models"
	"permitportal/tools"

	"github.com/jinzhu/gorm"
)

// PermitService owns reads and writes of models.PermitApplication.
type PermitService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewPermitService(db *gorm.DB) *PermitService {
	return &PermitService{db: db, now: time.Now}
}

// WithClock replaces the time source used for submitted_at.
func (s *PermitService) WithClock(now func() time.Time) *PermitService {
	s.now = now
	return s
}

// Create validates req and stores a new application, defaulting its status to PENDING.
func (s *PermitService) Create(req models.CreatePermitRequest) (*models.PermitApplication, error) {
	if msgs := tools.ValidateStruct(req); msgs != nil {
		return nil, &ValidationError{Details: msgs}
	}

	status := req.ApplicationStatus
	if status == "" {
		status = models.PERMIT_STATUS_PENDING
	}

	permit := models.PermitApplication{
		ApplicantName:     req.ApplicantName,
		ApplicantEmail:    req.ApplicantEmail,
		PermitType:        req.PermitType,
		ApplicationStatus: status,
		// postgres keeps microseconds; truncate so the returned value matches a later read
		SubmittedAt: s.now().UTC().Truncate(time.Microsecond),
	}

	if err := s.db.Create(&permit).Error; err != nil {
		return nil, fmt.Errorf("create permit: %w", err)
	}
	return &permit, nil
}

// FindAll returns every application, newest submission first.
func (s *PermitService) FindAll() ([]models.PermitApplication, error) {
	permits := make([]models.PermitApplication, 0)
	if err := s.db.Order("submitted_at desc").Order("id desc").Find(&permits).Error; err != nil {
		return nil, fmt.Errorf("list permits: %w", err)
	}
	return permits, nil
}

// FindOne returns the application with id or a *NotFoundError.
func (s *PermitService) FindOne(id int64) (*models.PermitApplication, error) {
	var permit models.PermitApplication
	if err := s.db.First(&permit, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("find permit %d: %w", id, err)
	}
	return &permit, nil
}

// Update merges the supplied fields of req into the stored application.
func (s *PermitService) Update(id int64, req models.UpdatePermitRequest) (*models.PermitApplication, error) {
	if msgs := validateUpdate(req); msgs != nil {
		return nil, &ValidationError{Details: msgs}
	}

	permit, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	changes := req.Changes()
	if len(changes) == 0 {
		return permit, nil
	}

	// only the sent columns are written so concurrent edits to the others survive
	if err := s.db.Model(permit).Updates(changes).Error; err != nil {
		return nil, fmt.Errorf("update permit %d: %w", id, err)
	}
	return s.FindOne(id)
}

// Remove hard-deletes the application with id.
func (s *PermitService) Remove(id int64) error {
	permit, err := s.FindOne(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(permit).Error; err != nil {
		return fmt.Errorf("delete permit %d: %w", id, err)
	}
	return nil
}

func validateUpdate(req models.UpdatePermitRequest) []string {
	var msgs []string
	if req.ApplicantName != nil {
		msgs = append(msgs, tools.ValidateField("applicant_name", *req.ApplicantName, "required")...)
	}
	if req.ApplicantEmail != nil {
		msgs = append(msgs, tools.ValidateField("applicant_email", *req.ApplicantEmail, "required,email")...)
	}
	if req.PermitType != nil {
		msgs = append(msgs, tools.ValidateField("permit_type", *req.PermitType, "required")...)
	}
	if req.ApplicationStatus != nil {
		msgs = append(msgs, tools.ValidateField("application_status", *req.ApplicationStatus, "oneof=PENDING APPROVED REJECTED")...)
	}
	return msgs
}
