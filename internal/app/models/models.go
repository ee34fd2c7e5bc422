package models

import "fmt"

// Role defines the application user role
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStudent Role = "STUDENT"
)

// ApplicationStatus tracks an application through the placement pipeline
type ApplicationStatus string

const (
	StatusApplied            ApplicationStatus = "APPLIED"
	StatusShortlisted        ApplicationStatus = "SHORTLISTED"
	StatusInterviewScheduled ApplicationStatus = "INTERVIEW_SCHEDULED"
	StatusOffered            ApplicationStatus = "OFFERED"
	StatusRejected           ApplicationStatus = "REJECTED"
	StatusWithdrawn          ApplicationStatus = "WITHDRAWN"
)

// statusColors maps each application status to its display badge color.
var statusColors = map[ApplicationStatus]string{
	StatusApplied:            "#2563eb",
	StatusShortlisted:        "#f59e0b",
	StatusInterviewScheduled: "#f97316",
	StatusOffered:            "#22c55e",
	StatusRejected:           "#6b7280",
	StatusWithdrawn:          "#9ca3af",
}

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	_, ok := statusColors[s]
	return ok
}

// Color returns the display badge color for the status.
// Unknown statuses get a neutral gray.
func (s ApplicationStatus) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return "#999999"
}

// InterviewResult is the outcome of an interview round
type InterviewResult string

const (
	ResultPending     InterviewResult = "PENDING"
	ResultPass        InterviewResult = "PASS"
	ResultFail        InterviewResult = "FAIL"
	ResultRescheduled InterviewResult = "RESCHEDULED"
)

var resultColors = map[InterviewResult]string{
	ResultPending:     "#6b7280",
	ResultPass:        "#16a34a",
	ResultFail:        "#ef4444",
	ResultRescheduled: "#f59e0b",
}

// Valid reports whether r is a known interview result.
func (r InterviewResult) Valid() bool {
	_, ok := resultColors[r]
	return ok
}

// Color returns the display badge color for the result.
func (r InterviewResult) Color() string {
	if c, ok := resultColors[r]; ok {
		return c
	}
	return "#666666"
}

// DeliveryMode is how an interview or assessment is conducted
type DeliveryMode string

const (
	ModeOnline  DeliveryMode = "ONLINE"
	ModeOffline DeliveryMode = "OFFLINE"
)

// Valid reports whether m is a known delivery mode.
func (m DeliveryMode) Valid() bool {
	return m == ModeOnline || m == ModeOffline
}

// Deadline badge colors. Expired deadlines are red, open ones blue and
// opportunities without a deadline keep a neutral gray.
const (
	DeadlineColorExpired = "#ef4444"
	DeadlineColorOpen    = "#2563eb"
	DeadlineColorNone    = "#6b7280"
)

// DeadlineBadge renders the days-left badge convention for an opportunity.
// daysLeft follows fn_days_left_for_opportunity: nil means no deadline,
// negative means expired; zero is due today and is still open.
func DeadlineBadge(daysLeft *int) (label, color string) {
	switch {
	case daysLeft == nil:
		return "No Deadline", DeadlineColorNone
	case *daysLeft < 0:
		return "EXPIRED", DeadlineColorExpired
	default:
		return fmt.Sprintf("%d days left", *daysLeft), DeadlineColorOpen
	}
}
