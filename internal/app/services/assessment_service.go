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

// AssessmentService defines the interface for assessment operations
type AssessmentService interface {
	CreateAssessment(ctx context.Context, req *dto.CreateAssessmentRequest) (*models.Assessment, error)
	GetAssessmentByID(ctx context.Context, id int64) (*models.Assessment, error)
	ListAssessments(ctx context.Context, page, size int) ([]*models.Assessment, dto.PaginationInfo, error)
	DeleteAssessment(ctx context.Context, id int64) error
}

// assessmentServiceImpl implements the AssessmentService interface
type assessmentServiceImpl struct {
	assessmentRepo *repositories.AssessmentRepository
}

// NewAssessmentService creates a new assessment service instance
func NewAssessmentService(assessmentRepo *repositories.AssessmentRepository) AssessmentService {
	return &assessmentServiceImpl{
		assessmentRepo: assessmentRepo,
	}
}

// CreateAssessment creates an assessment for an opportunity. Duration
// only applies to ONLINE assessments and is discarded otherwise.
func (s *assessmentServiceImpl) CreateAssessment(ctx context.Context, req *dto.CreateAssessmentRequest) (*models.Assessment, error) {
	if !req.Mode.Valid() {
		return nil, fmt.Errorf("%w: mode must be ONLINE or OFFLINE", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	duration := req.DurationMinutes
	if req.Mode != models.ModeOnline {
		duration = nil
	} else if duration != nil && *duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", apperrors.ErrValidationFailed)
	}

	assessment := &models.Assessment{
		OpportunityID:   req.OpportunityID,
		Title:           strings.TrimSpace(req.Title),
		MaxMarks:        req.MaxMarks,
		DateScheduled:   req.DateScheduled,
		Mode:            req.Mode,
		DurationMinutes: duration,
		Description:     req.Description,
	}

	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		return nil, err
	}

	return s.assessmentRepo.GetByID(ctx, assessment.ID)
}

// GetAssessmentByID retrieves an assessment by ID
func (s *assessmentServiceImpl) GetAssessmentByID(ctx context.Context, id int64) (*models.Assessment, error) {
	return s.assessmentRepo.GetByID(ctx, id)
}

// ListAssessments retrieves a page of assessments, soonest first
func (s *assessmentServiceImpl) ListAssessments(ctx context.Context, page, size int) ([]*models.Assessment, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	assessments, err := s.assessmentRepo.List(ctx, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	total, err := s.assessmentRepo.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return assessments, helpers.NewPaginationInfo(total, page, size), nil
}

// DeleteAssessment removes an assessment
func (s *assessmentServiceImpl) DeleteAssessment(ctx context.Context, id int64) error {
	return s.assessmentRepo.Delete(ctx, id)
}
