package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusplacement/portal/internal/app/models"
	"github.com/campusplacement/portal/internal/pkg/apperrors"
	"github.com/campusplacement/portal/internal/pkg/dberrors"
	"github.com/campusplacement/portal/internal/pkg/logger"
)

// applicationColumns is the joined read column set used by every
// application query so list rows and detail rows carry the same
// student and posting context.
var applicationColumns = []string{
	"a.application_id",
	"a.student_id",
	"a.opportunity_id",
	"a.applied_on",
	"a.status",
	"a.remarks",
	"s.first_name || ' ' || s.last_name AS student_name",
	"o.title",
	"o.company",
}

// ApplicationRepository handles application database operations,
// including the audit trail written alongside every mutation.
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(
		&a.ID,
		&a.StudentID,
		&a.OpportunityID,
		&a.AppliedOn,
		&a.Status,
		&a.Remarks,
		&a.StudentName,
		&a.Title,
		&a.Company,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepository) joined() squirrel.SelectBuilder {
	return r.sb.Select(applicationColumns...).
		From("application a").
		Join("student s ON s.student_id = a.student_id").
		Join("opportunity o ON o.opportunity_id = a.opportunity_id")
}

// CreateViaProcedure submits an application through sp_create_application,
// which enforces the deadline, minimum-CGPA and one-application-per-posting
// rules inside the database. Returns the new application ID.
func (r *ApplicationRepository) CreateViaProcedure(ctx context.Context, studentID, opportunityID int64) (int64, error) {
	var applicationID int64
	err := r.db.QueryRow(ctx,
		"CALL sp_create_application($1, $2, NULL)", studentID, opportunityID).Scan(&applicationID)
	if err != nil {
		if msg, ok := dberrors.RaisedMessage(err); ok {
			return 0, mapApplicationRaise(msg)
		}
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrAlreadyApplied
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrOpportunityNotFound
		}
		logger.Error().Err(err).
			Int64("studentID", studentID).
			Int64("opportunityID", opportunityID).
			Msg("Error calling sp_create_application")
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	return applicationID, nil
}

// mapApplicationRaise translates RAISE EXCEPTION messages from
// sp_create_application into domain errors.
func mapApplicationRaise(msg string) error {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "already applied"):
		return apperrors.ErrAlreadyApplied
	case strings.Contains(lower, "deadline"):
		return apperrors.ErrDeadlinePassed
	case strings.Contains(lower, "cgpa"):
		return apperrors.ErrCGPABelowMinimum
	case strings.Contains(lower, "student"):
		return apperrors.ErrStudentNotFound
	case strings.Contains(lower, "opportunity"):
		return apperrors.ErrOpportunityNotFound
	default:
		return apperrors.NewCustomError(apperrors.ErrBadRequest, msg)
	}
}

// GetByID retrieves an application with its student and posting context
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	sql, args, err := r.joined().
		Where(squirrel.Eq{"a.application_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	a, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error scanning application row")
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return a, nil
}

// List retrieves applications newest-first, optionally filtered by status
func (r *ApplicationRepository) List(ctx context.Context, status *models.ApplicationStatus, offset, limit int) ([]*models.Application, error) {
	query := r.joined().
		OrderBy("a.applied_on DESC", "a.application_id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit))
	if status != nil {
		query = query.Where(squirrel.Eq{"a.status": *status})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	return r.queryApplications(ctx, sql, args)
}

// Count returns the number of applications, optionally filtered by status
func (r *ApplicationRepository) Count(ctx context.Context, status *models.ApplicationStatus) (int64, error) {
	query := r.sb.Select("COUNT(*)").From("application")
	if status != nil {
		query = query.Where(squirrel.Eq{"status": *status})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count applications query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}

	return count, nil
}

// ListByStudent retrieves a student's applications newest-first
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	sql, args, err := r.joined().
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("a.applied_on DESC", "a.application_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list student applications query: %w", err)
	}

	return r.queryApplications(ctx, sql, args)
}

func (r *ApplicationRepository) queryApplications(ctx context.Context, sql string, args []interface{}) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing applications query")
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		applications = append(applications, a)
	}

	return applications, rows.Err()
}

// UpdateStatus transitions an application to a new status and records
// the "OLD -> NEW" change in the audit trail within one transaction.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus, remarks *string) error {
	return r.transitionStatus(ctx, id, status, remarks, models.AuditActionStatusChange)
}

// Withdraw moves a student's own application to WITHDRAWN with a
// dedicated audit action.
func (r *ApplicationRepository) Withdraw(ctx context.Context, id int64) error {
	return r.transitionStatus(ctx, id, models.StatusWithdrawn, nil, models.AuditActionWithdraw)
}

func (r *ApplicationRepository) transitionStatus(ctx context.Context, id int64, status models.ApplicationStatus, remarks *string, action string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var oldStatus models.ApplicationStatus
	err = tx.QueryRow(ctx,
		"SELECT status FROM application WHERE application_id = $1 FOR UPDATE", id).Scan(&oldStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrApplicationNotFound
		}
		return fmt.Errorf("error locking application row: %w", err)
	}

	updateSQL, updateArgs, err := r.sb.Update("application").
		Set("status", status).
		Set("remarks", squirrel.Expr("COALESCE(?, remarks)", remarks)).
		Where(squirrel.Eq{"application_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update status query: %w", err)
	}

	if _, err := tx.Exec(ctx, updateSQL, updateArgs...); err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error executing update status query")
		return fmt.Errorf("error updating application status: %w", err)
	}

	details := fmt.Sprintf("%s -> %s", oldStatus, status)
	if err := insertAudit(ctx, tx, id, action, &details); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing status transition: %w", err)
	}

	return nil
}

func insertAudit(ctx context.Context, tx pgx.Tx, applicationID int64, action string, details *string) error {
	_, err := tx.Exec(ctx,
		"INSERT INTO application_audit (application_id, action, details) VALUES ($1, $2, $3)",
		applicationID, action, details)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", applicationID).Msg("Error writing application audit row")
		return fmt.Errorf("error writing audit row: %w", err)
	}
	return nil
}

// Delete removes an application. Its audit rows are kept with the
// application reference nulled out by the schema's delete trigger.
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("application").
		Where(squirrel.Eq{"application_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete application query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("application has interviews and cannot be deleted")
		}
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error executing delete application query")
		return fmt.Errorf("error deleting application: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// AuditTrail retrieves the audit rows for an application, oldest first
func (r *ApplicationRepository) AuditTrail(ctx context.Context, applicationID int64) ([]*models.ApplicationAudit, error) {
	sql, args, err := r.sb.Select("audit_id", "application_id", "action", "details", "created_at").
		From("application_audit").
		Where(squirrel.Eq{"application_id": applicationID}).
		OrderBy("created_at ASC", "audit_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build audit trail query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", applicationID).Msg("Error executing audit trail query")
		return nil, fmt.Errorf("error listing audit rows: %w", err)
	}
	defer rows.Close()

	var trail []*models.ApplicationAudit
	for rows.Next() {
		var entry models.ApplicationAudit
		if err := rows.Scan(&entry.ID, &entry.ApplicationID, &entry.Action, &entry.Details, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning audit row: %w", err)
		}
		trail = append(trail, &entry)
	}

	return trail, rows.Err()
}
