package dto

// CreateStudentRequest represents student creation data.
// Batch is the graduation year and must be a 4-digit year.
type CreateStudentRequest struct {
	RollNo     string  `json:"rollNo" binding:"required,max=32"`
	FirstName  string  `json:"firstName" binding:"required,max=100"`
	LastName   string  `json:"lastName" binding:"required,max=100"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      *string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Department string  `json:"department" binding:"required,max=100"`
	Batch      int     `json:"batch" binding:"required,min=1000,max=9999"`
	CGPA       float64 `json:"cgpa" binding:"min=0,max=10"`
}

// UpdateStudentRequest represents a full student update by an admin.
type UpdateStudentRequest struct {
	RollNo     string  `json:"rollNo" binding:"required,max=32"`
	FirstName  string  `json:"firstName" binding:"required,max=100"`
	LastName   string  `json:"lastName" binding:"required,max=100"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      *string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Department string  `json:"department" binding:"required,max=100"`
	Batch      int     `json:"batch" binding:"required,min=1000,max=9999"`
	CGPA       float64 `json:"cgpa" binding:"min=0,max=10"`
}

// UpdateContactRequest is the student self-service profile update.
// Identity and academic fields stay admin-owned.
type UpdateContactRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone,omitempty" binding:"omitempty,max=20"`
}
