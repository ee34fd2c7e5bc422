package models

// OpportunityStats is a row of vw_opportunity_stats: per-opportunity
// application volume and average applicant CGPA.
type OpportunityStats struct {
	OpportunityID     int64    `json:"opportunityId" db:"opportunity_id"`
	Title             string   `json:"title" db:"title"`
	Company           string   `json:"company" db:"company"`
	TotalApplications int64    `json:"totalApplications" db:"total_applications"`
	AvgApplicantCGPA  *float64 `json:"avgApplicantCgpa,omitempty" db:"avg_applicant_cgpa"`
}

// StudentAppCount is a row of vw_student_app_counts.
type StudentAppCount struct {
	StudentID   int64  `json:"studentId" db:"student_id"`
	StudentName string `json:"studentName" db:"student_name"`
	Department  string `json:"department" db:"department"`
	Batch       int    `json:"batch" db:"batch"`
	AppCount    int64  `json:"appCount" db:"app_count"`
}

// AboveAverageApplicant is a row of vw_above_average_applicants: students
// whose application count exceeds the global average.
type AboveAverageApplicant struct {
	StudentID   int64  `json:"studentId" db:"student_id"`
	StudentName string `json:"studentName" db:"student_name"`
	AppCount    int64  `json:"appCount" db:"app_count"`
}
