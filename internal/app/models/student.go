package models

import "time"

// Student defines the student model based on the 'student' table
type Student struct {
	ID         int64     `json:"id" db:"student_id" example:"1"`
	RollNo     string    `json:"rollNo" db:"roll_no" example:"21CS101"`
	FirstName  string    `json:"firstName" db:"first_name" example:"Aarav"`
	LastName   string    `json:"lastName" db:"last_name" example:"Sharma"`
	Email      string    `json:"email" db:"email" example:"aarav@example.com"`
	Phone      *string   `json:"phone,omitempty" db:"phone" example:"9876543210"`
	Department string    `json:"department" db:"department" example:"CSE"`
	Batch      int       `json:"batch" db:"batch" example:"2027"` // Graduation year, 4 digits
	CGPA       float64   `json:"cgpa" db:"cgpa" example:"8.5"`
	ResumePath *string   `json:"resumePath,omitempty" db:"resume_path"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
