package models

import "time"

// Application defines the application model based on the 'application' table
type Application struct {
	ID            int64             `json:"id" db:"application_id" example:"1"`
	StudentID     int64             `json:"studentId" db:"student_id" example:"1"`
	OpportunityID int64             `json:"opportunityId" db:"opportunity_id" example:"1"`
	AppliedOn     time.Time         `json:"appliedOn" db:"applied_on"`
	Status        ApplicationStatus `json:"status" db:"status" example:"APPLIED"`
	Remarks       *string           `json:"remarks,omitempty" db:"remarks"`

	// Relations, populated on joined reads
	StudentName string `json:"studentName,omitempty"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
}

// Audit actions recorded in application_audit.
const (
	AuditActionStatusChange = "STATUS_CHANGE"
	AuditActionWithdraw     = "WITHDRAW"
	AuditActionCreate       = "CREATE"
	AuditActionDelete       = "DELETE"
)

// ApplicationAudit defines a row of the 'application_audit' trail
type ApplicationAudit struct {
	ID            int64     `json:"id" db:"audit_id"`
	ApplicationID int64     `json:"applicationId" db:"application_id"`
	Action        string    `json:"action" db:"action"`
	Details       *string   `json:"details,omitempty" db:"details"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
