package dto

import (
	"time"

	"github.com/campusplacement/portal/internal/app/models"
)

// ScheduleInterviewRequest schedules an interview for an application via
// the sp_schedule_interview database procedure.
type ScheduleInterviewRequest struct {
	ApplicationID int64               `json:"applicationId" binding:"required,min=1"`
	ScheduleTime  time.Time           `json:"scheduleTime" binding:"required"`
	Mode          models.DeliveryMode `json:"mode" binding:"required" example:"ONLINE"`
	Venue         string              `json:"venue" binding:"required,max=200"`
	Panel         string              `json:"panel" binding:"required"`
}

// UpdateInterviewResultRequest records the outcome of an interview.
type UpdateInterviewResultRequest struct {
	Result models.InterviewResult `json:"result" binding:"required" example:"PASS"`
}

// InterviewResponse represents an interview with its result badge.
type InterviewResponse struct {
	models.Interview
	ResultBadge Badge `json:"resultBadge"`
}

// FromInterview converts a model row into a response with its badge.
func FromInterview(i *models.Interview) InterviewResponse {
	return InterviewResponse{
		Interview:   *i,
		ResultBadge: Badge{Label: string(i.Result), Color: i.Result.Color()},
	}
}

// FromInterviews converts a slice of model rows.
func FromInterviews(interviews []*models.Interview) []InterviewResponse {
	out := make([]InterviewResponse, 0, len(interviews))
	for _, i := range interviews {
		out = append(out, FromInterview(i))
	}
	return out
}
