package dto

import "github.com/campusplacement/portal/internal/app/models"

// Badge is a display badge with its color convention.
type Badge struct {
	Label string `json:"label" example:"5 days left"`
	Color string `json:"color" example:"#2563eb"`
}

// CreateOpportunityRequest represents opportunity creation data.
// ApplicationDeadline is an optional YYYY-MM-DD date.
type CreateOpportunityRequest struct {
	OfficeID            int64   `json:"officeId" binding:"required,min=1"`
	Title               string  `json:"title" binding:"required,max=200"`
	Company             string  `json:"company" binding:"required,max=200"`
	Description         *string `json:"description,omitempty"`
	Vacancy             int     `json:"vacancy" binding:"min=0"`
	MinCGPA             float64 `json:"minCgpa" binding:"min=0,max=10"`
	ApplicationDeadline *string `json:"applicationDeadline,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateOpportunityRequest represents opportunity update data.
type UpdateOpportunityRequest struct {
	OfficeID            int64   `json:"officeId" binding:"required,min=1"`
	Title               string  `json:"title" binding:"required,max=200"`
	Company             string  `json:"company" binding:"required,max=200"`
	Description         *string `json:"description,omitempty"`
	Vacancy             int     `json:"vacancy" binding:"min=0"`
	MinCGPA             float64 `json:"minCgpa" binding:"min=0,max=10"`
	ApplicationDeadline *string `json:"applicationDeadline,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// OpportunityResponse represents an opportunity with its deadline badge and,
// for student callers, personalized hints.
type OpportunityResponse struct {
	models.Opportunity
	DeadlineBadge Badge `json:"deadlineBadge"`
	Applied       *bool `json:"applied,omitempty"`
	Eligible      *bool `json:"eligible,omitempty"`
}

// FromOpportunity converts a model row into a response with its badge.
func FromOpportunity(o *models.Opportunity) OpportunityResponse {
	label, color := models.DeadlineBadge(o.DaysLeft)
	return OpportunityResponse{
		Opportunity:   *o,
		DeadlineBadge: Badge{Label: label, Color: color},
	}
}
