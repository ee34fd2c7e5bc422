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

// AnnouncementPublisher pushes a freshly posted announcement to live
// subscribers. Satisfied by the websocket hub.
type AnnouncementPublisher interface {
	PublishAnnouncement(a *models.Announcement)
}

// AnnouncementService defines the interface for announcement operations
type AnnouncementService interface {
	CreateAnnouncement(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error)
	GetAnnouncementByID(ctx context.Context, id int64) (*models.Announcement, error)
	ListAnnouncements(ctx context.Context, activeOnly bool, page, size int) ([]*models.Announcement, dto.PaginationInfo, error)
	DeleteAnnouncement(ctx context.Context, id int64) error
}

// announcementServiceImpl implements the AnnouncementService interface
type announcementServiceImpl struct {
	announcementRepo *repositories.AnnouncementRepository
	officeRepo       *repositories.OfficeRepository
	publisher        AnnouncementPublisher
}

// NewAnnouncementService creates a new announcement service instance
func NewAnnouncementService(
	announcementRepo *repositories.AnnouncementRepository,
	officeRepo *repositories.OfficeRepository,
	publisher AnnouncementPublisher,
) AnnouncementService {
	return &announcementServiceImpl{
		announcementRepo: announcementRepo,
		officeRepo:       officeRepo,
		publisher:        publisher,
	}
}

// CreateAnnouncement posts an announcement and pushes it to connected
// subscribers. A nil office makes the announcement global.
func (s *announcementServiceImpl) CreateAnnouncement(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: title and content cannot be empty", apperrors.ErrValidationFailed)
	}

	validUntil, err := helpers.ParseOptionalDate(req.ValidUntil)
	if err != nil {
		return nil, fmt.Errorf("%w: validUntil must be a YYYY-MM-DD date", apperrors.ErrValidationFailed)
	}

	if req.OfficeID != nil {
		if _, err := s.officeRepo.GetByID(ctx, *req.OfficeID); err != nil {
			return nil, err
		}
	}

	announcement := &models.Announcement{
		OfficeID:   req.OfficeID,
		Title:      strings.TrimSpace(req.Title),
		Content:    req.Content,
		ValidUntil: validUntil,
	}

	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	// Re-read for the joined office name before broadcasting
	created, err := s.announcementRepo.GetByID(ctx, announcement.ID)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		s.publisher.PublishAnnouncement(created)
	}

	return created, nil
}

// GetAnnouncementByID retrieves an announcement by ID
func (s *announcementServiceImpl) GetAnnouncementByID(ctx context.Context, id int64) (*models.Announcement, error) {
	return s.announcementRepo.GetByID(ctx, id)
}

// ListAnnouncements retrieves a page of announcements, newest first
func (s *announcementServiceImpl) ListAnnouncements(ctx context.Context, activeOnly bool, page, size int) ([]*models.Announcement, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	announcements, err := s.announcementRepo.List(ctx, activeOnly, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	total, err := s.announcementRepo.Count(ctx, activeOnly)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return announcements, helpers.NewPaginationInfo(total, page, size), nil
}

// DeleteAnnouncement removes an announcement
func (s *announcementServiceImpl) DeleteAnnouncement(ctx context.Context, id int64) error {
	return s.announcementRepo.Delete(ctx, id)
}
