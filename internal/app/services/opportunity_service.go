package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusplacement/portal/internal/app/models"
	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/app/repositories"
	"github.com/campusplacement/portal/internal/pkg/apperrors"
	"github.com/campusplacement/portal/internal/pkg/helpers"
)

// OpportunityService defines the interface for opportunity operations
type OpportunityService interface {
	CreateOpportunity(ctx context.Context, req *dto.CreateOpportunityRequest) (*models.Opportunity, error)
	GetOpportunityByID(ctx context.Context, id int64) (*models.Opportunity, error)
	ListOpportunities(ctx context.Context, page, size int) ([]*models.Opportunity, dto.PaginationInfo, error)
	ListForStudent(ctx context.Context, student *models.Student, page, size int) ([]dto.OpportunityResponse, dto.PaginationInfo, error)
	UpdateOpportunity(ctx context.Context, id int64, req *dto.UpdateOpportunityRequest) (*models.Opportunity, error)
	DeleteOpportunity(ctx context.Context, id int64) error
}

// opportunityServiceImpl implements the OpportunityService interface
type opportunityServiceImpl struct {
	opportunityRepo *repositories.OpportunityRepository
	officeRepo      *repositories.OfficeRepository
}

// NewOpportunityService creates a new opportunity service instance
func NewOpportunityService(
	opportunityRepo *repositories.OpportunityRepository,
	officeRepo *repositories.OfficeRepository,
) OpportunityService {
	return &opportunityServiceImpl{
		opportunityRepo: opportunityRepo,
		officeRepo:      officeRepo,
	}
}

func (s *opportunityServiceImpl) buildOpportunity(id int64, officeID int64, title, company string, description *string, vacancy int, minCGPA float64, deadline *string) (*models.Opportunity, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(company) == "" {
		return nil, fmt.Errorf("%w: title and company cannot be empty", apperrors.ErrValidationFailed)
	}

	deadlineDate, err := helpers.ParseOptionalDate(deadline)
	if err != nil {
		return nil, fmt.Errorf("%w: application deadline must be a YYYY-MM-DD date", apperrors.ErrValidationFailed)
	}

	return &models.Opportunity{
		ID:                  id,
		OfficeID:            officeID,
		Title:               strings.TrimSpace(title),
		Company:             strings.TrimSpace(company),
		Description:         description,
		Vacancy:             vacancy,
		MinCGPA:             minCGPA,
		ApplicationDeadline: deadlineDate,
	}, nil
}

// CreateOpportunity posts a new opportunity
func (s *opportunityServiceImpl) CreateOpportunity(ctx context.Context, req *dto.CreateOpportunityRequest) (*models.Opportunity, error) {
	opportunity, err := s.buildOpportunity(0, req.OfficeID, req.Title, req.Company, req.Description, req.Vacancy, req.MinCGPA, req.ApplicationDeadline)
	if err != nil {
		return nil, err
	}

	if _, err := s.officeRepo.GetByID(ctx, req.OfficeID); err != nil {
		return nil, err
	}

	if err := s.opportunityRepo.Create(ctx, opportunity); err != nil {
		return nil, err
	}

	// Re-read to pick up the computed days-left value
	return s.opportunityRepo.GetByID(ctx, opportunity.ID)
}

// GetOpportunityByID retrieves an opportunity by ID
func (s *opportunityServiceImpl) GetOpportunityByID(ctx context.Context, id int64) (*models.Opportunity, error) {
	return s.opportunityRepo.GetByID(ctx, id)
}

// ListOpportunities retrieves a page of opportunities newest-first
func (s *opportunityServiceImpl) ListOpportunities(ctx context.Context, page, size int) ([]*models.Opportunity, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	opportunities, err := s.opportunityRepo.List(ctx, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	total, err := s.opportunityRepo.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return opportunities, helpers.NewPaginationInfo(total, page, size), nil
}

// ListForStudent retrieves opportunities annotated with the student's
// applied and eligible flags.
func (s *opportunityServiceImpl) ListForStudent(ctx context.Context, student *models.Student, page, size int) ([]dto.OpportunityResponse, dto.PaginationInfo, error) {
	opportunities, pagination, err := s.ListOpportunities(ctx, page, size)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	applied, err := s.opportunityRepo.AppliedOpportunityIDs(ctx, student.ID)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	responses := make([]dto.OpportunityResponse, 0, len(opportunities))
	for _, o := range opportunities {
		resp := dto.FromOpportunity(o)

		hasApplied := applied[o.ID]
		resp.Applied = &hasApplied

		// Eligible when the CGPA bar is met and the deadline has not passed
		eligible := student.CGPA >= o.MinCGPA && (o.DaysLeft == nil || *o.DaysLeft >= 0)
		resp.Eligible = &eligible

		responses = append(responses, resp)
	}

	return responses, pagination, nil
}

// UpdateOpportunity modifies an existing opportunity
func (s *opportunityServiceImpl) UpdateOpportunity(ctx context.Context, id int64, req *dto.UpdateOpportunityRequest) (*models.Opportunity, error) {
	opportunity, err := s.buildOpportunity(id, req.OfficeID, req.Title, req.Company, req.Description, req.Vacancy, req.MinCGPA, req.ApplicationDeadline)
	if err != nil {
		return nil, err
	}

	if err := s.opportunityRepo.Update(ctx, opportunity); err != nil {
		return nil, err
	}

	return s.opportunityRepo.GetByID(ctx, id)
}

// DeleteOpportunity removes an opportunity
func (s *opportunityServiceImpl) DeleteOpportunity(ctx context.Context, id int64) error {
	return s.opportunityRepo.Delete(ctx, id)
}
