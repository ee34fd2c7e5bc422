package dto

import (
	"time"

	"github.com/campusplacement/portal/internal/app/models"
)

// CreateAssessmentRequest represents assessment creation data.
// DurationMinutes only applies when mode is ONLINE; it is dropped otherwise.
type CreateAssessmentRequest struct {
	OpportunityID   int64               `json:"opportunityId" binding:"required,min=1"`
	Title           string              `json:"title" binding:"required,max=200"`
	MaxMarks        int                 `json:"maxMarks" binding:"required,min=1"`
	DateScheduled   time.Time           `json:"dateScheduled" binding:"required"`
	Mode            models.DeliveryMode `json:"mode" binding:"required" example:"ONLINE"`
	DurationMinutes *int                `json:"durationMinutes,omitempty" binding:"omitempty,min=1"`
	Description     *string             `json:"description,omitempty"`
}

// DashboardResponse is the student landing payload: upcoming interviews for
// the student's applications and upcoming assessments for opportunities the
// student applied to.
type DashboardResponse struct {
	UpcomingInterviews  []InterviewResponse  `json:"upcomingInterviews"`
	UpcomingAssessments []*models.Assessment `json:"upcomingAssessments"`
}
