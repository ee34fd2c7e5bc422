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
	"github.com/campusplacement/portal/internal/pkg/dberrors"
	"github.com/campusplacement/portal/internal/pkg/logger"
)

// opportunityColumns is the standard read column set. days_left is
// computed server-side so list and detail reads agree with the
// deadline badge everywhere.
var opportunityColumns = []string{
	"o.opportunity_id",
	"o.office_id",
	"o.title",
	"o.company",
	"o.description",
	"o.vacancy",
	"o.min_cgpa",
	"o.posted_on",
	"o.application_deadline",
	"fn_days_left_for_opportunity(o.opportunity_id) AS days_left",
}

// OpportunityRepository handles opportunity database operations
type OpportunityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOpportunityRepository creates a new OpportunityRepository
func NewOpportunityRepository(db *pgxpool.Pool) *OpportunityRepository {
	return &OpportunityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanOpportunity(row pgx.Row) (*models.Opportunity, error) {
	var o models.Opportunity
	err := row.Scan(
		&o.ID,
		&o.OfficeID,
		&o.Title,
		&o.Company,
		&o.Description,
		&o.Vacancy,
		&o.MinCGPA,
		&o.PostedOn,
		&o.ApplicationDeadline,
		&o.DaysLeft,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persists a new opportunity and fills in its generated ID
// and posted-on timestamp.
func (r *OpportunityRepository) Create(ctx context.Context, o *models.Opportunity) error {
	sql, args, err := r.sb.Insert("opportunity").
		Columns("office_id", "title", "company", "description", "vacancy", "min_cgpa", "application_deadline").
		Values(o.OfficeID, o.Title, o.Company, o.Description, o.Vacancy, o.MinCGPA, o.ApplicationDeadline).
		Suffix("RETURNING opportunity_id, posted_on").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create opportunity query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&o.ID, &o.PostedOn); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrOfficeNotFound
		}
		if dberrors.IsCheckViolation(err) {
			return fmt.Errorf("%w: opportunity values are out of range", apperrors.ErrValidationFailed)
		}
		logger.Error().Err(err).Str("title", o.Title).Msg("Error executing create opportunity query")
		return fmt.Errorf("error creating opportunity: %w", err)
	}

	return nil
}

// GetByID retrieves an opportunity by its ID
func (r *OpportunityRepository) GetByID(ctx context.Context, id int64) (*models.Opportunity, error) {
	sql, args, err := r.sb.Select(opportunityColumns...).
		From("opportunity o").
		Where(squirrel.Eq{"o.opportunity_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get opportunity query: %w", err)
	}

	o, err := scanOpportunity(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		logger.Error().Err(err).Int64("opportunityID", id).Msg("Error scanning opportunity row")
		return nil, fmt.Errorf("error retrieving opportunity: %w", err)
	}

	return o, nil
}

// List retrieves opportunities ordered newest-first with pagination
func (r *OpportunityRepository) List(ctx context.Context, offset, limit int) ([]*models.Opportunity, error) {
	sql, args, err := r.sb.Select(opportunityColumns...).
		From("opportunity o").
		OrderBy("o.posted_on DESC", "o.opportunity_id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list opportunities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list opportunities query")
		return nil, fmt.Errorf("error listing opportunities: %w", err)
	}
	defer rows.Close()

	var opportunities []*models.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning opportunity row: %w", err)
		}
		opportunities = append(opportunities, o)
	}

	return opportunities, rows.Err()
}

// Count returns the total number of opportunities
func (r *OpportunityRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("opportunity").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count opportunities query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting opportunities: %w", err)
	}

	return count, nil
}

// Update modifies an existing opportunity
func (r *OpportunityRepository) Update(ctx context.Context, o *models.Opportunity) error {
	sql, args, err := r.sb.Update("opportunity").
		Set("office_id", o.OfficeID).
		Set("title", o.Title).
		Set("company", o.Company).
		Set("description", o.Description).
		Set("vacancy", o.Vacancy).
		Set("min_cgpa", o.MinCGPA).
		Set("application_deadline", o.ApplicationDeadline).
		Where(squirrel.Eq{"opportunity_id": o.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update opportunity query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrOfficeNotFound
		}
		if dberrors.IsCheckViolation(err) {
			return fmt.Errorf("%w: opportunity values are out of range", apperrors.ErrValidationFailed)
		}
		logger.Error().Err(err).Int64("opportunityID", o.ID).Msg("Error executing update opportunity query")
		return fmt.Errorf("error updating opportunity: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOpportunityNotFound
	}

	return nil
}

// Delete removes an opportunity. Postings that already have applications
// or assessments are protected by foreign keys and cannot be removed.
func (r *OpportunityRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("opportunity").
		Where(squirrel.Eq{"opportunity_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete opportunity query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("opportunity has applications or assessments and cannot be deleted")
		}
		logger.Error().Err(err).Int64("opportunityID", id).Msg("Error executing delete opportunity query")
		return fmt.Errorf("error deleting opportunity: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOpportunityNotFound
	}

	return nil
}

// AppliedOpportunityIDs returns the set of opportunity IDs the student
// has an application for, regardless of status.
func (r *OpportunityRepository) AppliedOpportunityIDs(ctx context.Context, studentID int64) (map[int64]bool, error) {
	sql, args, err := r.sb.Select("opportunity_id").
		From("application").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build applied opportunities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing applied opportunities query")
		return nil, fmt.Errorf("error listing applied opportunities: %w", err)
	}
	defer rows.Close()

	applied := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning applied opportunity row: %w", err)
		}
		applied[id] = true
	}

	return applied, rows.Err()
}

// DaysLeft evaluates fn_days_left_for_opportunity for a single posting.
// Returns nil when the posting has no deadline.
func (r *OpportunityRepository) DaysLeft(ctx context.Context, id int64) (*int, error) {
	var exists bool
	if err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM opportunity WHERE opportunity_id = $1)", id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("error checking opportunity existence: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrOpportunityNotFound
	}

	var daysLeft *int
	if err := r.db.QueryRow(ctx,
		"SELECT fn_days_left_for_opportunity($1)", id).Scan(&daysLeft); err != nil {
		logger.Error().Err(err).Int64("opportunityID", id).Msg("Error evaluating days-left function")
		return nil, fmt.Errorf("error computing days left: %w", err)
	}

	return daysLeft, nil
}
