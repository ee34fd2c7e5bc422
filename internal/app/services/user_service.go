package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusplacement/portal/internal/app/models"
	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/app/repositories"
	"github.com/campusplacement/portal/internal/pkg/apperrors"
	"github.com/campusplacement/portal/internal/pkg/auth"
)

// protectedUsername is the built-in administrator account that must
// always exist.
const protectedUsername = "admin"

// UserService handles application user management
type UserService struct {
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, studentRepo *repositories.StudentRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
	}
}

// CreateUser creates a login account. STUDENT accounts must link to an
// existing student record; ADMIN accounts must not.
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}

	switch req.Role {
	case models.RoleStudent:
		if req.StudentID == nil {
			return nil, fmt.Errorf("%w: student accounts require a studentId", apperrors.ErrValidationFailed)
		}
		if _, err := s.studentRepo.GetByID(ctx, *req.StudentID); err != nil {
			return nil, err
		}
	case models.RoleAdmin:
		if req.StudentID != nil {
			return nil, fmt.Errorf("%w: admin accounts cannot link to a student", apperrors.ErrValidationFailed)
		}
	default:
		return nil, fmt.Errorf("%w: role must be ADMIN or STUDENT", apperrors.ErrValidationFailed)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         req.Role,
		StudentID:    req.StudentID,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, id)
}

// GetAllUsers retrieves all login accounts
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// DeleteUser deletes a login account. The built-in admin account is
// protected.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Username == protectedUsername {
		return apperrors.ErrProtectedUser
	}

	return s.userRepo.Delete(ctx, id)
}
