package dto

import "github.com/campusplacement/portal/internal/app/models"

// UpdateApplicationStatusRequest changes an application's pipeline status.
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required" example:"SHORTLISTED"`
}

// ApplicationResponse represents an application with its status badge.
type ApplicationResponse struct {
	models.Application
	StatusBadge Badge `json:"statusBadge"`
}

// FromApplication converts a model row into a response with its badge.
func FromApplication(a *models.Application) ApplicationResponse {
	return ApplicationResponse{
		Application: *a,
		StatusBadge: Badge{Label: string(a.Status), Color: a.Status.Color()},
	}
}

// FromApplications converts a slice of model rows.
func FromApplications(apps []*models.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, FromApplication(a))
	}
	return out
}
