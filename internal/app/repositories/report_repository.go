package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusplacement/portal/internal/app/models"
	"github.com/campusplacement/portal/internal/pkg/apperrors"
	"github.com/campusplacement/portal/internal/pkg/logger"
)

// ReportRepository reads the reporting views and scalar functions
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// OpportunityStats reads vw_opportunity_stats: per-posting application
// volume and average applicant CGPA, busiest postings first.
func (r *ReportRepository) OpportunityStats(ctx context.Context) ([]*models.OpportunityStats, error) {
	sql, args, err := r.sb.Select("opportunity_id", "title", "company", "total_applications", "avg_applicant_cgpa").
		From("vw_opportunity_stats").
		OrderBy("total_applications DESC", "opportunity_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build opportunity stats query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing opportunity stats query")
		return nil, fmt.Errorf("error reading opportunity stats: %w", err)
	}
	defer rows.Close()

	var stats []*models.OpportunityStats
	for rows.Next() {
		var s models.OpportunityStats
		if err := rows.Scan(&s.OpportunityID, &s.Title, &s.Company, &s.TotalApplications, &s.AvgApplicantCGPA); err != nil {
			return nil, fmt.Errorf("error scanning opportunity stats row: %w", err)
		}
		stats = append(stats, &s)
	}

	return stats, rows.Err()
}

// StudentAppCounts reads vw_student_app_counts: per-student application
// totals including students with none.
func (r *ReportRepository) StudentAppCounts(ctx context.Context) ([]*models.StudentAppCount, error) {
	sql, args, err := r.sb.Select("student_id", "student_name", "department", "batch", "app_count").
		From("vw_student_app_counts").
		OrderBy("app_count DESC", "student_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student app counts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing student app counts query")
		return nil, fmt.Errorf("error reading student app counts: %w", err)
	}
	defer rows.Close()

	var counts []*models.StudentAppCount
	for rows.Next() {
		var c models.StudentAppCount
		if err := rows.Scan(&c.StudentID, &c.StudentName, &c.Department, &c.Batch, &c.AppCount); err != nil {
			return nil, fmt.Errorf("error scanning student app count row: %w", err)
		}
		counts = append(counts, &c)
	}

	return counts, rows.Err()
}

// AboveAverageApplicants reads vw_above_average_applicants: students
// whose application count beats the campus average.
func (r *ReportRepository) AboveAverageApplicants(ctx context.Context) ([]*models.AboveAverageApplicant, error) {
	sql, args, err := r.sb.Select("student_id", "student_name", "app_count").
		From("vw_above_average_applicants").
		OrderBy("app_count DESC", "student_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build above average applicants query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing above average applicants query")
		return nil, fmt.Errorf("error reading above average applicants: %w", err)
	}
	defer rows.Close()

	var applicants []*models.AboveAverageApplicant
	for rows.Next() {
		var a models.AboveAverageApplicant
		if err := rows.Scan(&a.StudentID, &a.StudentName, &a.AppCount); err != nil {
			return nil, fmt.Errorf("error scanning above average applicant row: %w", err)
		}
		applicants = append(applicants, &a)
	}

	return applicants, rows.Err()
}

// StudentFullname evaluates fn_get_student_fullname for one student
func (r *ReportRepository) StudentFullname(ctx context.Context, studentID int64) (string, error) {
	var fullname *string
	err := r.db.QueryRow(ctx, "SELECT fn_get_student_fullname($1)", studentID).Scan(&fullname)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error evaluating student fullname function")
		return "", fmt.Errorf("error computing student fullname: %w", err)
	}
	if fullname == nil {
		return "", apperrors.ErrStudentNotFound
	}

	return *fullname, nil
}
