package dto

// StudentFullnameResponse is the fn_get_student_fullname demo payload.
type StudentFullnameResponse struct {
	StudentID int64  `json:"studentId"`
	FullName  string `json:"fullName"`
}

// DaysLeftResponse is the fn_days_left_for_opportunity demo payload.
type DaysLeftResponse struct {
	OpportunityID int64 `json:"opportunityId"`
	DaysLeft      *int  `json:"daysLeft"`
	DeadlineBadge Badge `json:"deadlineBadge"`
}
