package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusplacement/portal/internal/app/models"
	"github.com/campusplacement/portal/internal/pkg/apperrors"
	"github.com/campusplacement/portal/internal/pkg/dberrors"
	"github.com/campusplacement/portal/internal/pkg/logger"
)

var interviewColumns = []string{
	"i.interview_id",
	"i.application_id",
	"i.schedule_time",
	"i.mode",
	"i.venue",
	"i.panel",
	"i.result",
	"s.first_name || ' ' || s.last_name AS student_name",
	"o.title",
	"o.company",
}

// InterviewRepository handles interview database operations
type InterviewRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInterviewRepository creates a new InterviewRepository
func NewInterviewRepository(db *pgxpool.Pool) *InterviewRepository {
	return &InterviewRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanInterview(row pgx.Row) (*models.Interview, error) {
	var i models.Interview
	err := row.Scan(
		&i.ID,
		&i.ApplicationID,
		&i.ScheduleTime,
		&i.Mode,
		&i.Venue,
		&i.Panel,
		&i.Result,
		&i.StudentName,
		&i.Title,
		&i.Company,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InterviewRepository) joined() squirrel.SelectBuilder {
	return r.sb.Select(interviewColumns...).
		From("interview i").
		Join("application a ON a.application_id = i.application_id").
		Join("student s ON s.student_id = a.student_id").
		Join("opportunity o ON o.opportunity_id = a.opportunity_id")
}

// ScheduleViaProcedure schedules an interview through sp_schedule_interview,
// which also moves the application to INTERVIEW_SCHEDULED and writes the
// audit row in the same database transaction. Returns the new interview ID.
func (r *InterviewRepository) ScheduleViaProcedure(ctx context.Context, applicationID int64, scheduleTime time.Time, mode models.DeliveryMode, venue, panel string) (int64, error) {
	var interviewID int64
	err := r.db.QueryRow(ctx,
		"CALL sp_schedule_interview($1, $2, $3, $4, $5, NULL)",
		applicationID, scheduleTime, mode, venue, panel).Scan(&interviewID)
	if err != nil {
		if msg, ok := dberrors.RaisedMessage(err); ok {
			return 0, mapInterviewRaise(msg)
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).
			Int64("applicationID", applicationID).
			Msg("Error calling sp_schedule_interview")
		return 0, fmt.Errorf("error scheduling interview: %w", err)
	}

	return interviewID, nil
}

func mapInterviewRaise(msg string) error {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "application"):
		return apperrors.ErrApplicationNotFound
	case strings.Contains(lower, "withdrawn") || strings.Contains(lower, "rejected"):
		return apperrors.ErrInvalidStatus
	default:
		return apperrors.NewCustomError(apperrors.ErrBadRequest, msg)
	}
}

// GetByID retrieves an interview with its student and posting context
func (r *InterviewRepository) GetByID(ctx context.Context, id int64) (*models.Interview, error) {
	sql, args, err := r.joined().
		Where(squirrel.Eq{"i.interview_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get interview query: %w", err)
	}

	i, err := scanInterview(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInterviewNotFound
		}
		logger.Error().Err(err).Int64("interviewID", id).Msg("Error scanning interview row")
		return nil, fmt.Errorf("error retrieving interview: %w", err)
	}

	return i, nil
}

// List retrieves interviews ordered by schedule time, soonest first
func (r *InterviewRepository) List(ctx context.Context, offset, limit int) ([]*models.Interview, error) {
	sql, args, err := r.joined().
		OrderBy("i.schedule_time ASC", "i.interview_id ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list interviews query: %w", err)
	}

	return r.queryInterviews(ctx, sql, args)
}

// Count returns the total number of interviews
func (r *InterviewRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("interview").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count interviews query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting interviews: %w", err)
	}

	return count, nil
}

// upcomingForStudentQuery bounds by schedule time only. Results that
// were marked early (or rescheduled) still belong on the dashboard with
// their result badge.
func (r *InterviewRepository) upcomingForStudentQuery(studentID int64, from time.Time) (string, []interface{}, error) {
	return r.joined().
		Where(squirrel.Eq{"a.student_id": studentID}).
		Where(squirrel.GtOrEq{"i.schedule_time": from}).
		OrderBy("i.schedule_time ASC").
		ToSql()
}

// UpcomingForStudent retrieves a student's interviews scheduled from now
// onward, soonest first, regardless of result.
func (r *InterviewRepository) UpcomingForStudent(ctx context.Context, studentID int64) ([]*models.Interview, error) {
	sql, args, err := r.upcomingForStudentQuery(studentID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to build upcoming interviews query: %w", err)
	}

	return r.queryInterviews(ctx, sql, args)
}

// ListByStudent retrieves all interviews for a student, newest first
func (r *InterviewRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Interview, error) {
	sql, args, err := r.joined().
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("i.schedule_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student interviews query: %w", err)
	}

	return r.queryInterviews(ctx, sql, args)
}

func (r *InterviewRepository) queryInterviews(ctx context.Context, sql string, args []interface{}) ([]*models.Interview, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing interviews query")
		return nil, fmt.Errorf("error listing interviews: %w", err)
	}
	defer rows.Close()

	var interviews []*models.Interview
	for rows.Next() {
		i, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning interview row: %w", err)
		}
		interviews = append(interviews, i)
	}

	return interviews, rows.Err()
}

// UpdateResult records the outcome of an interview
func (r *InterviewRepository) UpdateResult(ctx context.Context, id int64, result models.InterviewResult) error {
	sql, args, err := r.sb.Update("interview").
		Set("result", result).
		Where(squirrel.Eq{"interview_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update result query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("interviewID", id).Msg("Error executing update result query")
		return fmt.Errorf("error updating interview result: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInterviewNotFound
	}

	return nil
}

// Delete removes an interview
func (r *InterviewRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("interview").
		Where(squirrel.Eq{"interview_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete interview query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("interviewID", id).Msg("Error executing delete interview query")
		return fmt.Errorf("error deleting interview: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInterviewNotFound
	}

	return nil
}
