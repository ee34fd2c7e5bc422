package dto

// CreateAnnouncementRequest posts an announcement. A nil officeId makes the
// announcement global; ValidUntil is an optional YYYY-MM-DD date.
type CreateAnnouncementRequest struct {
	OfficeID   *int64  `json:"officeId,omitempty" binding:"omitempty,min=1"`
	Title      string  `json:"title" binding:"required,max=200"`
	Content    string  `json:"content" binding:"required"`
	ValidUntil *string `json:"validUntil,omitempty" binding:"omitempty,datetime=2006-01-02"`
}
