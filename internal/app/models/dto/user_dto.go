package dto

import "github.com/campusplacement/portal/internal/app/models"

// CreateUserRequest creates an application user. STUDENT users may link to
// an existing student record through studentId.
type CreateUserRequest struct {
	Username  string      `json:"username" binding:"required,max=100"`
	Password  string      `json:"password" binding:"required,min=6"`
	Role      models.Role `json:"role" binding:"required,oneof=ADMIN STUDENT"`
	StudentID *int64      `json:"studentId,omitempty" binding:"omitempty,min=1"`
}
