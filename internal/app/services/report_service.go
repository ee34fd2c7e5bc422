package services

import (
	"context"

	"github.com/campusplacement/portal/internal/app/models"
	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/app/repositories"
)

// ReportService serves the reporting views and scalar helper functions
type ReportService struct {
	reportRepo      *repositories.ReportRepository
	opportunityRepo *repositories.OpportunityRepository
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo *repositories.ReportRepository, opportunityRepo *repositories.OpportunityRepository) *ReportService {
	return &ReportService{
		reportRepo:      reportRepo,
		opportunityRepo: opportunityRepo,
	}
}

// OpportunityStats reports per-posting application volume and average
// applicant CGPA.
func (s *ReportService) OpportunityStats(ctx context.Context) ([]*models.OpportunityStats, error) {
	return s.reportRepo.OpportunityStats(ctx)
}

// StudentAppCounts reports per-student application totals
func (s *ReportService) StudentAppCounts(ctx context.Context) ([]*models.StudentAppCount, error) {
	return s.reportRepo.StudentAppCounts(ctx)
}

// AboveAverageApplicants reports students applying more than the campus
// average.
func (s *ReportService) AboveAverageApplicants(ctx context.Context) ([]*models.AboveAverageApplicant, error) {
	return s.reportRepo.AboveAverageApplicants(ctx)
}

// StudentFullname evaluates fn_get_student_fullname for one student
func (s *ReportService) StudentFullname(ctx context.Context, studentID int64) (*dto.StudentFullnameResponse, error) {
	fullName, err := s.reportRepo.StudentFullname(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentFullnameResponse{
		StudentID: studentID,
		FullName:  fullName,
	}, nil
}

// DaysLeft evaluates fn_days_left_for_opportunity and wraps the value
// in its deadline badge.
func (s *ReportService) DaysLeft(ctx context.Context, opportunityID int64) (*dto.DaysLeftResponse, error) {
	daysLeft, err := s.opportunityRepo.DaysLeft(ctx, opportunityID)
	if err != nil {
		return nil, err
	}

	label, color := models.DeadlineBadge(daysLeft)
	return &dto.DaysLeftResponse{
		OpportunityID: opportunityID,
		DaysLeft:      daysLeft,
		DeadlineBadge: dto.Badge{Label: label, Color: color},
	}, nil
}
