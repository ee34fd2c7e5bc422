package services

import (
	"context"
	"fmt"

	"github.com/campusplacement/portal/internal/app/models"
	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/app/repositories"
	"github.com/campusplacement/portal/internal/pkg/apperrors"
	"github.com/campusplacement/portal/internal/pkg/helpers"
)

// ApplicationService defines the interface for application operations
type ApplicationService interface {
	Apply(ctx context.Context, studentID, opportunityID int64) (*models.Application, error)
	GetApplicationByID(ctx context.Context, id int64) (*models.Application, error)
	ListApplications(ctx context.Context, status *models.ApplicationStatus, page, size int) ([]*models.Application, dto.PaginationInfo, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error)
	Withdraw(ctx context.Context, id int64, studentID *int64) (*models.Application, error)
	DeleteApplication(ctx context.Context, id int64) error
	AuditTrail(ctx context.Context, id int64) ([]*models.ApplicationAudit, error)
}

// applicationServiceImpl implements the ApplicationService interface
type applicationServiceImpl struct {
	applicationRepo *repositories.ApplicationRepository
}

// NewApplicationService creates a new application service instance
func NewApplicationService(applicationRepo *repositories.ApplicationRepository) ApplicationService {
	return &applicationServiceImpl{
		applicationRepo: applicationRepo,
	}
}

// Apply submits an application on behalf of a student. Eligibility,
// the deadline and the one-application rule are enforced by the
// sp_create_application procedure.
func (s *applicationServiceImpl) Apply(ctx context.Context, studentID, opportunityID int64) (*models.Application, error) {
	applicationID, err := s.applicationRepo.CreateViaProcedure(ctx, studentID, opportunityID)
	if err != nil {
		return nil, err
	}

	return s.applicationRepo.GetByID(ctx, applicationID)
}

// GetApplicationByID retrieves an application by ID
func (s *applicationServiceImpl) GetApplicationByID(ctx context.Context, id int64) (*models.Application, error) {
	return s.applicationRepo.GetByID(ctx, id)
}

// ListApplications retrieves a page of applications, optionally filtered
// by status.
func (s *applicationServiceImpl) ListApplications(ctx context.Context, status *models.ApplicationStatus, page, size int) ([]*models.Application, dto.PaginationInfo, error) {
	if status != nil && !status.Valid() {
		return nil, dto.PaginationInfo{}, fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidStatus, *status)
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)

	applications, err := s.applicationRepo.List(ctx, status, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	total, err := s.applicationRepo.Count(ctx, status)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return applications, helpers.NewPaginationInfo(total, page, size), nil
}

// ListByStudent retrieves all of a student's applications
func (s *applicationServiceImpl) ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	return s.applicationRepo.ListByStudent(ctx, studentID)
}

// UpdateStatus transitions an application's status. The change and its
// old value are captured in the audit trail.
func (s *applicationServiceImpl) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidStatus, status)
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, status, nil); err != nil {
		return nil, err
	}

	return s.applicationRepo.GetByID(ctx, id)
}

// Withdraw moves an application to WITHDRAWN. A non-nil studentID
// restricts the operation to that student's own applications; admins
// pass nil.
func (s *applicationServiceImpl) Withdraw(ctx context.Context, id int64, studentID *int64) (*models.Application, error) {
	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if studentID != nil && application.StudentID != *studentID {
		return nil, apperrors.ErrPermissionDenied
	}

	if application.Status == models.StatusWithdrawn {
		return nil, fmt.Errorf("%w: application is already withdrawn", apperrors.ErrInvalidStatus)
	}

	if err := s.applicationRepo.Withdraw(ctx, id); err != nil {
		return nil, err
	}

	return s.applicationRepo.GetByID(ctx, id)
}

// DeleteApplication removes an application
func (s *applicationServiceImpl) DeleteApplication(ctx context.Context, id int64) error {
	return s.applicationRepo.Delete(ctx, id)
}

// AuditTrail retrieves an application's audit history
func (s *applicationServiceImpl) AuditTrail(ctx context.Context, id int64) ([]*models.ApplicationAudit, error) {
	if _, err := s.applicationRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.applicationRepo.AuditTrail(ctx, id)
}
