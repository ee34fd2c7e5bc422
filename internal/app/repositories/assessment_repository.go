package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusplacement/portal/internal/app/models"
	"github.com/campusplacement/portal/internal/pkg/apperrors"
	"github.com/campusplacement/portal/internal/pkg/dberrors"
	"github.com/campusplacement/portal/internal/pkg/logger"
)

var assessmentColumns = []string{
	"ast.assessment_id",
	"ast.opportunity_id",
	"ast.title",
	"ast.max_marks",
	"ast.date_scheduled",
	"ast.mode",
	"ast.duration_minutes",
	"ast.description",
	"o.title AS opportunity_title",
	"o.company",
}

// AssessmentRepository handles assessment database operations
type AssessmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAssessmentRepository creates a new AssessmentRepository
func NewAssessmentRepository(db *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanAssessment(row pgx.Row) (*models.Assessment, error) {
	var a models.Assessment
	err := row.Scan(
		&a.ID,
		&a.OpportunityID,
		&a.Title,
		&a.MaxMarks,
		&a.DateScheduled,
		&a.Mode,
		&a.DurationMinutes,
		&a.Description,
		&a.OpportunityTitle,
		&a.Company,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssessmentRepository) joined() squirrel.SelectBuilder {
	return r.sb.Select(assessmentColumns...).
		From("assessment ast").
		Join("opportunity o ON o.opportunity_id = ast.opportunity_id")
}

// Create persists a new assessment and fills in its generated ID
func (r *AssessmentRepository) Create(ctx context.Context, a *models.Assessment) error {
	sql, args, err := r.sb.Insert("assessment").
		Columns("opportunity_id", "title", "max_marks", "date_scheduled", "mode", "duration_minutes", "description").
		Values(a.OpportunityID, a.Title, a.MaxMarks, a.DateScheduled, a.Mode, a.DurationMinutes, a.Description).
		Suffix("RETURNING assessment_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create assessment query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrOpportunityNotFound
		}
		logger.Error().Err(err).Str("title", a.Title).Msg("Error executing create assessment query")
		return fmt.Errorf("error creating assessment: %w", err)
	}

	return nil
}

// GetByID retrieves an assessment with its posting context
func (r *AssessmentRepository) GetByID(ctx context.Context, id int64) (*models.Assessment, error) {
	sql, args, err := r.joined().
		Where(squirrel.Eq{"ast.assessment_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get assessment query: %w", err)
	}

	a, err := scanAssessment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssessmentNotFound
		}
		logger.Error().Err(err).Int64("assessmentID", id).Msg("Error scanning assessment row")
		return nil, fmt.Errorf("error retrieving assessment: %w", err)
	}

	return a, nil
}

// List retrieves assessments ordered by scheduled date, soonest first
func (r *AssessmentRepository) List(ctx context.Context, offset, limit int) ([]*models.Assessment, error) {
	sql, args, err := r.joined().
		OrderBy("ast.date_scheduled ASC", "ast.assessment_id ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list assessments query: %w", err)
	}

	return r.queryAssessments(ctx, sql, args)
}

// Count returns the total number of assessments
func (r *AssessmentRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("assessment").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count assessments query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting assessments: %w", err)
	}

	return count, nil
}

// UpcomingForStudent retrieves upcoming assessments on the postings the
// student has active applications for.
func (r *AssessmentRepository) UpcomingForStudent(ctx context.Context, studentID int64) ([]*models.Assessment, error) {
	sql, args, err := r.joined().
		Join("application ap ON ap.opportunity_id = ast.opportunity_id").
		Where(squirrel.Eq{"ap.student_id": studentID}).
		Where(squirrel.NotEq{"ap.status": models.StatusWithdrawn}).
		Where(squirrel.GtOrEq{"ast.date_scheduled": time.Now()}).
		OrderBy("ast.date_scheduled ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build upcoming assessments query: %w", err)
	}

	return r.queryAssessments(ctx, sql, args)
}

func (r *AssessmentRepository) queryAssessments(ctx context.Context, sql string, args []interface{}) ([]*models.Assessment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing assessments query")
		return nil, fmt.Errorf("error listing assessments: %w", err)
	}
	defer rows.Close()

	var assessments []*models.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning assessment row: %w", err)
		}
		assessments = append(assessments, a)
	}

	return assessments, rows.Err()
}

// Delete removes an assessment
func (r *AssessmentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("assessment").
		Where(squirrel.Eq{"assessment_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete assessment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assessmentID", id).Msg("Error executing delete assessment query")
		return fmt.Errorf("error deleting assessment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssessmentNotFound
	}

	return nil
}
