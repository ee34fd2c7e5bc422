package models

// PlacementOffice defines the placement office model based on the
// 'placement_office' table
type PlacementOffice struct {
	ID           int64   `json:"id" db:"office_id" example:"1"`
	Name         string  `json:"name" db:"name" example:"Central Placement Cell"`
	Location     *string `json:"location,omitempty" db:"location"`
	ContactEmail *string `json:"contactEmail,omitempty" db:"contact_email"`
}
