package dto

// CreateOfficeRequest represents placement office creation data.
type CreateOfficeRequest struct {
	Name         string  `json:"name" binding:"required,max=200"`
	Location     *string `json:"location,omitempty" binding:"omitempty,max=200"`
	ContactEmail *string `json:"contactEmail,omitempty" binding:"omitempty,email"`
}

// UpdateOfficeRequest represents placement office update data.
type UpdateOfficeRequest struct {
	Name         string  `json:"name" binding:"required,max=200"`
	Location     *string `json:"location,omitempty" binding:"omitempty,max=200"`
	ContactEmail *string `json:"contactEmail,omitempty" binding:"omitempty,email"`
}
