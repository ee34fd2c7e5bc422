package models

import "time"

// Interview defines the interview model based on the 'interview' table
type Interview struct {
	ID            int64           `json:"id" db:"interview_id" example:"1"`
	ApplicationID int64           `json:"applicationId" db:"application_id" example:"1"`
	ScheduleTime  time.Time       `json:"scheduleTime" db:"schedule_time"`
	Mode          DeliveryMode    `json:"mode" db:"mode" example:"ONLINE"`
	Venue         string          `json:"venue" db:"venue" example:"Google Meet"`
	Panel         string          `json:"panel" db:"panel" example:"HR; Tech Lead"`
	Result        InterviewResult `json:"result" db:"result" example:"PENDING"`

	// Relations, populated on joined reads
	StudentName string `json:"studentName,omitempty"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
}
