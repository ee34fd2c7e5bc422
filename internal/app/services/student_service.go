package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/campusplacement/portal/internal/app/models"
	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/app/repositories"
	"github.com/campusplacement/portal/internal/pkg/apperrors"
	"github.com/campusplacement/portal/internal/pkg/filestorage"
	"github.com/campusplacement/portal/internal/pkg/helpers"
	"github.com/campusplacement/portal/internal/pkg/logger"
)

// maxResumeSize caps resume uploads at 5 MiB.
const maxResumeSize = 5 << 20

// StudentService defines the interface for student operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	ListStudents(ctx context.Context, page, size int) ([]*models.Student, dto.PaginationInfo, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	UpdateContact(ctx context.Context, id int64, email string, phone *string) error
	DeleteStudent(ctx context.Context, id int64) error
	SaveResume(ctx context.Context, studentID int64, fileHeader *multipart.FileHeader) (string, error)
	DeleteResume(ctx context.Context, studentID int64) error
	Dashboard(ctx context.Context, studentID int64) (*dto.DashboardResponse, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo    *repositories.StudentRepository
	interviewRepo  *repositories.InterviewRepository
	assessmentRepo *repositories.AssessmentRepository
	storage        *filestorage.LocalStorage
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	interviewRepo *repositories.InterviewRepository,
	assessmentRepo *repositories.AssessmentRepository,
	storage *filestorage.LocalStorage,
) StudentService {
	return &studentServiceImpl{
		studentRepo:    studentRepo,
		interviewRepo:  interviewRepo,
		assessmentRepo: assessmentRepo,
		storage:        storage,
	}
}

// validateStudent validates student data before database operations
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.RollNo) == "" {
		return fmt.Errorf("%w: roll number cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.FirstName) == "" || strings.TrimSpace(student.LastName) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if student.Batch < 1000 || student.Batch > 9999 {
		return fmt.Errorf("%w: batch must be a 4-digit year", apperrors.ErrValidationFailed)
	}

	if student.CGPA < 0 || student.CGPA > 10 {
		return fmt.Errorf("%w: CGPA must be between 0 and 10", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateStudent creates a new student record
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	if err := s.validateStudent(student); err != nil {
		return 0, err
	}
	return s.studentRepo.Create(ctx, student)
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// ListStudents retrieves a page of students with pagination metadata
func (s *studentServiceImpl) ListStudents(ctx context.Context, page, size int) ([]*models.Student, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, err := s.studentRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	total, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return students, helpers.NewPaginationInfo(total, page, size), nil
}

// UpdateStudent updates a student record
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}
	return s.studentRepo.Update(ctx, student)
}

// UpdateContact updates the student-owned contact fields only
func (s *studentServiceImpl) UpdateContact(ctx context.Context, id int64, email string, phone *string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.studentRepo.UpdateContact(ctx, id, email, phone)
}

// DeleteStudent deletes a student record. Students with applications
// are protected.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if student.ResumePath != nil {
		if err := s.storage.DeleteFile(*student.ResumePath); err != nil {
			logger.Warn().Err(err).Int64("studentID", id).Msg("Failed to remove resume file for deleted student")
		}
	}

	return nil
}

// SaveResume stores an uploaded resume and records its path. Only PDF
// files are accepted; a previous resume is replaced.
func (s *studentServiceImpl) SaveResume(ctx context.Context, studentID int64, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("%w: no file provided", apperrors.ErrValidationFailed)
	}

	if fileHeader.Size > maxResumeSize {
		return "", fmt.Errorf("%w: resume exceeds the 5 MB limit", apperrors.ErrValidationFailed)
	}

	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".pdf" {
		return "", fmt.Errorf("%w: resume must be a PDF file", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return "", err
	}

	relPath, err := s.storage.SaveFile(fileHeader, "resumes")
	if err != nil {
		return "", fmt.Errorf("error storing resume: %w", err)
	}

	if err := s.studentRepo.SetResumePath(ctx, studentID, &relPath); err != nil {
		// Roll back the orphaned file
		if delErr := s.storage.DeleteFile(relPath); delErr != nil {
			logger.Warn().Err(delErr).Str("path", relPath).Msg("Failed to remove orphaned resume file")
		}
		return "", err
	}

	if student.ResumePath != nil {
		if err := s.storage.DeleteFile(*student.ResumePath); err != nil {
			logger.Warn().Err(err).Int64("studentID", studentID).Msg("Failed to remove replaced resume file")
		}
	}

	return s.storage.FileURL(relPath), nil
}

// DeleteResume removes a student's stored resume
func (s *studentServiceImpl) DeleteResume(ctx context.Context, studentID int64) error {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	if student.ResumePath == nil {
		return apperrors.NewResourceNotFoundError("no resume on file")
	}

	if err := s.studentRepo.SetResumePath(ctx, studentID, nil); err != nil {
		return err
	}

	if err := s.storage.DeleteFile(*student.ResumePath); err != nil {
		logger.Warn().Err(err).Int64("studentID", studentID).Msg("Failed to remove resume file")
	}

	return nil
}

// Dashboard assembles the student landing payload: upcoming interviews
// and assessments on the student's applications.
func (s *studentServiceImpl) Dashboard(ctx context.Context, studentID int64) (*dto.DashboardResponse, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	interviews, err := s.interviewRepo.UpcomingForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	assessments, err := s.assessmentRepo.UpcomingForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if assessments == nil {
		assessments = []*models.Assessment{}
	}

	return &dto.DashboardResponse{
		UpcomingInterviews:  dto.FromInterviews(interviews),
		UpcomingAssessments: assessments,
	}, nil
}
