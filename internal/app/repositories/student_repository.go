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

var studentColumns = []string{
	"student_id", "roll_no", "first_name", "last_name", "email", "phone",
	"department", "batch", "cgpa", "resume_path", "created_at",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.RollNo, &s.FirstName, &s.LastName, &s.Email, &s.Phone,
		&s.Department, &s.Batch, &s.CGPA, &s.ResumePath, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("student").
		Columns("roll_no", "first_name", "last_name", "email", "phone", "department", "batch", "cgpa").
		Values(student.RollNo, student.FirstName, student.LastName, student.Email,
			student.Phone, student.Department, student.Batch, student.CGPA).
		Suffix("RETURNING student_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrRollNoAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("student").
		Where(squirrel.Eq{"student_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return student, nil
}

// List retrieves a page of students sorted by student ID.
func (r *StudentRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("student").
		OrderBy("student_id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Count returns the total number of students.
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("student").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}

// Update updates every admin-editable field of a student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("student").
		SetMap(map[string]interface{}{
			"roll_no":    student.RollNo,
			"first_name": student.FirstName,
			"last_name":  student.LastName,
			"email":      student.Email,
			"phone":      student.Phone,
			"department": student.Department,
			"batch":      student.Batch,
			"cgpa":       student.CGPA,
		}).
		Where(squirrel.Eq{"student_id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRollNoAlreadyExists
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateContact updates the student-editable contact fields only.
func (r *StudentRepository) UpdateContact(ctx context.Context, id int64, email string, phone *string) error {
	sql, args, err := r.sb.Update("student").
		Set("email", email).
		Set("phone", phone).
		Where(squirrel.Eq{"student_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update contact query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing update contact query")
		return fmt.Errorf("error updating student contact info: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// SetResumePath records (or clears, with nil) the stored resume path.
func (r *StudentRepository) SetResumePath(ctx context.Context, id int64, path *string) error {
	sql, args, err := r.sb.Update("student").
		Set("resume_path", path).
		Where(squirrel.Eq{"student_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set resume path query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing set resume path query")
		return fmt.Errorf("error setting resume path: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student. Students with applications are refused so the
// application audit trail stays intact.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	checkSql, checkArgs, err := r.sb.Select("1").
		From("application").
		Where(squirrel.Eq{"student_id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build check applications query: %w", err)
	}

	var hasApplications bool
	if err := r.db.QueryRow(ctx, checkSql, checkArgs...).Scan(&hasApplications); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error checking student applications")
		return fmt.Errorf("error checking student applications: %w", err)
	}

	if hasApplications {
		return apperrors.ErrStudentHasApplications
	}

	sql, args, err := r.sb.Delete("student").
		Where(squirrel.Eq{"student_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentHasApplications
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
