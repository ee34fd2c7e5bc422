package models

import "time"

// User defines the application user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"user_id" example:"1"`
	Username     string    `json:"username" db:"username" example:"admin"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role" example:"ADMIN"`
	StudentID    *int64    `json:"studentId,omitempty" db:"student_id"` // Linked student record for STUDENT users
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Relation, populated on joined reads
	StudentName string `json:"studentName,omitempty"`
}
