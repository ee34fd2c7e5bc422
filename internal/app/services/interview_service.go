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

// InterviewService defines the interface for interview operations
type InterviewService interface {
	ScheduleInterview(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error)
	GetInterviewByID(ctx context.Context, id int64) (*models.Interview, error)
	ListInterviews(ctx context.Context, page, size int) ([]*models.Interview, dto.PaginationInfo, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Interview, error)
	UpdateResult(ctx context.Context, id int64, result models.InterviewResult) (*models.Interview, error)
	DeleteInterview(ctx context.Context, id int64) error
}

// interviewServiceImpl implements the InterviewService interface
type interviewServiceImpl struct {
	interviewRepo *repositories.InterviewRepository
}

// NewInterviewService creates a new interview service instance
func NewInterviewService(interviewRepo *repositories.InterviewRepository) InterviewService {
	return &interviewServiceImpl{
		interviewRepo: interviewRepo,
	}
}

// ScheduleInterview schedules an interview through sp_schedule_interview,
// which also advances the application to INTERVIEW_SCHEDULED.
func (s *interviewServiceImpl) ScheduleInterview(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error) {
	if !req.Mode.Valid() {
		return nil, fmt.Errorf("%w: mode must be ONLINE or OFFLINE", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(req.Venue) == "" {
		return nil, fmt.Errorf("%w: venue cannot be empty", apperrors.ErrValidationFailed)
	}

	interviewID, err := s.interviewRepo.ScheduleViaProcedure(ctx, req.ApplicationID, req.ScheduleTime, req.Mode, req.Venue, req.Panel)
	if err != nil {
		return nil, err
	}

	return s.interviewRepo.GetByID(ctx, interviewID)
}

// GetInterviewByID retrieves an interview by ID
func (s *interviewServiceImpl) GetInterviewByID(ctx context.Context, id int64) (*models.Interview, error) {
	return s.interviewRepo.GetByID(ctx, id)
}

// ListInterviews retrieves a page of interviews, soonest first
func (s *interviewServiceImpl) ListInterviews(ctx context.Context, page, size int) ([]*models.Interview, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	interviews, err := s.interviewRepo.List(ctx, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	total, err := s.interviewRepo.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return interviews, helpers.NewPaginationInfo(total, page, size), nil
}

// ListByStudent retrieves all of a student's interviews, newest first
func (s *interviewServiceImpl) ListByStudent(ctx context.Context, studentID int64) ([]*models.Interview, error) {
	return s.interviewRepo.ListByStudent(ctx, studentID)
}

// UpdateResult records an interview outcome
func (s *interviewServiceImpl) UpdateResult(ctx context.Context, id int64, result models.InterviewResult) (*models.Interview, error) {
	if !result.Valid() {
		return nil, fmt.Errorf("%w: unknown result %q", apperrors.ErrInvalidResult, result)
	}

	if err := s.interviewRepo.UpdateResult(ctx, id, result); err != nil {
		return nil, err
	}

	return s.interviewRepo.GetByID(ctx, id)
}

// DeleteInterview removes an interview
func (s *interviewServiceImpl) DeleteInterview(ctx context.Context, id int64) error {
	return s.interviewRepo.Delete(ctx, id)
}
