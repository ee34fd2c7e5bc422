package models

import "time"

// Announcement defines the announcement model based on the 'announcement'
// table. A nil OfficeID means the announcement is global.
type Announcement struct {
	ID         int64      `json:"id" db:"announcement_id" example:"1"`
	OfficeID   *int64     `json:"officeId,omitempty" db:"office_id"`
	Title      string     `json:"title" db:"title" example:"Placement drive next week"`
	Content    string     `json:"content" db:"content"`
	PostDate   time.Time  `json:"postDate" db:"post_date"`
	ValidUntil *time.Time `json:"validUntil,omitempty" db:"valid_until"`

	// Relation, populated on joined reads; empty for global announcements
	OfficeName string `json:"officeName,omitempty"`
}
