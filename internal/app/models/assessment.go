package models

import "time"

// Assessment defines the assessment model based on the 'assessment' table.
// DurationMinutes only applies to ONLINE assessments.
type Assessment struct {
	ID              int64        `json:"id" db:"assessment_id" example:"1"`
	OpportunityID   int64        `json:"opportunityId" db:"opportunity_id" example:"1"`
	Title           string       `json:"title" db:"title" example:"Online Coding Round"`
	MaxMarks        int          `json:"maxMarks" db:"max_marks" example:"100"`
	DateScheduled   time.Time    `json:"dateScheduled" db:"date_scheduled"`
	Mode            DeliveryMode `json:"mode" db:"mode" example:"ONLINE"`
	DurationMinutes *int         `json:"durationMinutes,omitempty" db:"duration_minutes"`
	Description     *string      `json:"description,omitempty" db:"description"`

	// Relations, populated on joined reads
	OpportunityTitle string `json:"opportunityTitle,omitempty"`
	Company          string `json:"company,omitempty"`
}
