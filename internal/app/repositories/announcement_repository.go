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

var announcementColumns = []string{
	"an.announcement_id",
	"an.office_id",
	"an.title",
	"an.content",
	"an.post_date",
	"an.valid_until",
	"COALESCE(po.name, '') AS office_name",
}

// AnnouncementRepository handles announcement database operations
type AnnouncementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(
		&a.ID,
		&a.OfficeID,
		&a.Title,
		&a.Content,
		&a.PostDate,
		&a.ValidUntil,
		&a.OfficeName,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AnnouncementRepository) joined() squirrel.SelectBuilder {
	return r.sb.Select(announcementColumns...).
		From("announcement an").
		LeftJoin("placement_office po ON po.office_id = an.office_id")
}

// Create persists a new announcement and fills in its generated ID
// and post date.
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	sql, args, err := r.sb.Insert("announcement").
		Columns("office_id", "title", "content", "valid_until").
		Values(a.OfficeID, a.Title, a.Content, a.ValidUntil).
		Suffix("RETURNING announcement_id, post_date").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create announcement query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.PostDate); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrOfficeNotFound
		}
		logger.Error().Err(err).Str("title", a.Title).Msg("Error executing create announcement query")
		return fmt.Errorf("error creating announcement: %w", err)
	}

	return nil
}

// GetByID retrieves an announcement by its ID
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	sql, args, err := r.joined().
		Where(squirrel.Eq{"an.announcement_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get announcement query: %w", err)
	}

	a, err := scanAnnouncement(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		logger.Error().Err(err).Int64("announcementID", id).Msg("Error scanning announcement row")
		return nil, fmt.Errorf("error retrieving announcement: %w", err)
	}

	return a, nil
}

// List retrieves announcements newest-first. When activeOnly is set,
// expired announcements are filtered out.
func (r *AnnouncementRepository) List(ctx context.Context, activeOnly bool, offset, limit int) ([]*models.Announcement, error) {
	query := r.joined().
		OrderBy("an.post_date DESC", "an.announcement_id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit))
	if activeOnly {
		query = query.Where("(an.valid_until IS NULL OR an.valid_until >= CURRENT_DATE)")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list announcements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list announcements query")
		return nil, fmt.Errorf("error listing announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning announcement row: %w", err)
		}
		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}

// Count returns the number of announcements, honoring the active filter
func (r *AnnouncementRepository) Count(ctx context.Context, activeOnly bool) (int64, error) {
	query := r.sb.Select("COUNT(*)").From("announcement")
	if activeOnly {
		query = query.Where("(valid_until IS NULL OR valid_until >= CURRENT_DATE)")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count announcements query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting announcements: %w", err)
	}

	return count, nil
}

// Delete removes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("announcement").
		Where(squirrel.Eq{"announcement_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete announcement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("announcementID", id).Msg("Error executing delete announcement query")
		return fmt.Errorf("error deleting announcement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}

	return nil
}
