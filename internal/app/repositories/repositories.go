package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository for dependency injection.
type Repositories struct {
	OfficeRepository       *OfficeRepository
	StudentRepository      *StudentRepository
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	OpportunityRepository  *OpportunityRepository
	ApplicationRepository  *ApplicationRepository
	InterviewRepository    *InterviewRepository
	AssessmentRepository   *AssessmentRepository
	AnnouncementRepository *AnnouncementRepository
	ReportRepository       *ReportRepository
}

// NewRepositories creates all repositories over a shared pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		OfficeRepository:       NewOfficeRepository(db),
		StudentRepository:      NewStudentRepository(db),
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		OpportunityRepository:  NewOpportunityRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		InterviewRepository:    NewInterviewRepository(db),
		AssessmentRepository:   NewAssessmentRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		ReportRepository:       NewReportRepository(db),
	}
}
