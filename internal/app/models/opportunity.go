package models

import "time"

// Opportunity defines a job or internship posting based on the
// 'opportunity' table
type Opportunity struct {
	ID                  int64      `json:"id" db:"opportunity_id" example:"1"`
	OfficeID            int64      `json:"officeId" db:"office_id" example:"1"`
	Title               string     `json:"title" db:"title" example:"Backend Engineer Intern"`
	Company             string     `json:"company" db:"company" example:"Acme Corp"`
	Description         *string    `json:"description,omitempty" db:"description"`
	Vacancy             int        `json:"vacancy" db:"vacancy" example:"3"`
	MinCGPA             float64    `json:"minCgpa" db:"min_cgpa" example:"7.0"`
	PostedOn            time.Time  `json:"postedOn" db:"posted_on"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty" db:"application_deadline"`

	// DaysLeft is computed by fn_days_left_for_opportunity on reads;
	// nil when the posting has no deadline.
	DaysLeft *int `json:"daysLeft,omitempty"`
}
