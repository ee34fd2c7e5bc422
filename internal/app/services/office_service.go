package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusplacement/portal/internal/app/models"
	"github.com/campusplacement/portal/internal/app/repositories"
	"github.com/campusplacement/portal/internal/pkg/apperrors"
)

// OfficeService handles placement office operations
type OfficeService struct {
	officeRepo *repositories.OfficeRepository
}

// NewOfficeService creates a new OfficeService
func NewOfficeService(officeRepo *repositories.OfficeRepository) *OfficeService {
	return &OfficeService{
		officeRepo: officeRepo,
	}
}

func validateOffice(office *models.PlacementOffice) error {
	if office == nil {
		return fmt.Errorf("%w: office is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(office.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateOffice creates a new placement office
func (s *OfficeService) CreateOffice(ctx context.Context, office *models.PlacementOffice) (int64, error) {
	if err := validateOffice(office); err != nil {
		return 0, err
	}
	return s.officeRepo.Create(ctx, office)
}

// GetOfficeByID retrieves a placement office by ID
func (s *OfficeService) GetOfficeByID(ctx context.Context, id int64) (*models.PlacementOffice, error) {
	return s.officeRepo.GetByID(ctx, id)
}

// GetAllOffices retrieves all placement offices
func (s *OfficeService) GetAllOffices(ctx context.Context) ([]*models.PlacementOffice, error) {
	return s.officeRepo.GetAll(ctx)
}

// UpdateOffice updates a placement office
func (s *OfficeService) UpdateOffice(ctx context.Context, office *models.PlacementOffice) error {
	if err := validateOffice(office); err != nil {
		return err
	}
	return s.officeRepo.Update(ctx, office)
}

// DeleteOffice deletes a placement office. Offices with postings are
// protected.
func (s *OfficeService) DeleteOffice(ctx context.Context, id int64) error {
	return s.officeRepo.Delete(ctx, id)
}
