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

// OfficeRepository handles placement office database operations
type OfficeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOfficeRepository creates a new OfficeRepository
func NewOfficeRepository(db *pgxpool.Pool) *OfficeRepository {
	return &OfficeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new placement office
func (r *OfficeRepository) Create(ctx context.Context, office *models.PlacementOffice) (int64, error) {
	sql, args, err := r.sb.Insert("placement_office").
		Columns("name", "location", "contact_email").
		Values(office.Name, office.Location, office.ContactEmail).
		Suffix("RETURNING office_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create office query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create office query")
		return 0, fmt.Errorf("error creating placement office: %w", err)
	}

	return id, nil
}

// GetByID retrieves a placement office by ID
func (r *OfficeRepository) GetByID(ctx context.Context, id int64) (*models.PlacementOffice, error) {
	sql, args, err := r.sb.Select("office_id", "name", "location", "contact_email").
		From("placement_office").
		Where(squirrel.Eq{"office_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get office query: %w", err)
	}

	office := &models.PlacementOffice{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&office.ID, &office.Name, &office.Location, &office.ContactEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOfficeNotFound
		}
		logger.Error().Err(err).Int64("officeID", id).Msg("Error scanning office row")
		return nil, fmt.Errorf("error getting placement office: %w", err)
	}

	return office, nil
}

// GetAll retrieves all placement offices ordered by ID
func (r *OfficeRepository) GetAll(ctx context.Context) ([]*models.PlacementOffice, error) {
	sql, args, err := r.sb.Select("office_id", "name", "location", "contact_email").
		From("placement_office").
		OrderBy("office_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all offices query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all offices query")
		return nil, fmt.Errorf("error querying placement offices: %w", err)
	}
	defer rows.Close()

	offices := []*models.PlacementOffice{}
	for rows.Next() {
		office := &models.PlacementOffice{}
		if err := rows.Scan(&office.ID, &office.Name, &office.Location, &office.ContactEmail); err != nil {
			return nil, fmt.Errorf("error scanning office row: %w", err)
		}
		offices = append(offices, office)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating office rows: %w", err)
	}

	return offices, nil
}

// Update updates an existing placement office
func (r *OfficeRepository) Update(ctx context.Context, office *models.PlacementOffice) error {
	sql, args, err := r.sb.Update("placement_office").
		SetMap(map[string]interface{}{
			"name":          office.Name,
			"location":      office.Location,
			"contact_email": office.ContactEmail,
		}).
		Where(squirrel.Eq{"office_id": office.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update office query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("officeID", office.ID).Msg("Error executing update office query")
		return fmt.Errorf("error updating placement office: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOfficeNotFound
	}

	return nil
}

// Delete deletes a placement office. Offices that still own opportunities
// are refused.
func (r *OfficeRepository) Delete(ctx context.Context, id int64) error {
	checkSql, checkArgs, err := r.sb.Select("1").
		From("opportunity").
		Where(squirrel.Eq{"office_id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build check opportunities query: %w", err)
	}

	var hasPostings bool
	if err := r.db.QueryRow(ctx, checkSql, checkArgs...).Scan(&hasPostings); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("officeID", id).Msg("Error checking office opportunities")
		return fmt.Errorf("error checking office opportunities: %w", err)
	}

	if hasPostings {
		return apperrors.ErrOfficeHasPostings
	}

	sql, args, err := r.sb.Delete("placement_office").
		Where(squirrel.Eq{"office_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete office query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrOfficeHasPostings
		}
		logger.Error().Err(err).Int64("officeID", id).Msg("Error executing delete office query")
		return fmt.Errorf("error deleting placement office: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOfficeNotFound
	}

	return nil
}
