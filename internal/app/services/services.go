package services

import (
	"github.com/rs/zerolog"

	"github.com/campusplacement/portal/internal/app/repositories"
	"github.com/campusplacement/portal/internal/pkg/auth"
	"github.com/campusplacement/portal/internal/pkg/filestorage"
)

// Services bundles every service for dependency injection.
type Services struct {
	AuthService         *AuthService
	StudentService      StudentService
	OpportunityService  OpportunityService
	ApplicationService  ApplicationService
	InterviewService    InterviewService
	AssessmentService   AssessmentService
	AnnouncementService AnnouncementService
	OfficeService       *OfficeService
	UserService         *UserService
	ReportService       *ReportService
}

// NewServices wires every service over the shared repositories.
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	storage *filestorage.LocalStorage,
	publisher AnnouncementPublisher,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService, logger),
		StudentService: NewStudentService(
			repos.StudentRepository,
			repos.InterviewRepository,
			repos.AssessmentRepository,
			storage,
		),
		OpportunityService:  NewOpportunityService(repos.OpportunityRepository, repos.OfficeRepository),
		ApplicationService:  NewApplicationService(repos.ApplicationRepository),
		InterviewService:    NewInterviewService(repos.InterviewRepository),
		AssessmentService:   NewAssessmentService(repos.AssessmentRepository),
		AnnouncementService: NewAnnouncementService(repos.AnnouncementRepository, repos.OfficeRepository, publisher),
		OfficeService:       NewOfficeService(repos.OfficeRepository),
		UserService:         NewUserService(repos.UserRepository, repos.StudentRepository),
		ReportService:       NewReportService(repos.ReportRepository, repos.OpportunityRepository),
	}
}
