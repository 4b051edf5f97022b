package models

import (
	"github.com/lib/pq"
)

// Job represents a job posting
type Job struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Company   string         `gorm:"not null" json:"company"`
	Logo      string         `gorm:"not null" json:"logo"`
	Position  string         `gorm:"not null" json:"position"`
	Role      string         `gorm:"not null" json:"role"`
	Level     string         `gorm:"not null" json:"level"`
	PostedAt  string         `gorm:"column:posted_at;not null" json:"postedAt"`
	Contract  string         `gorm:"not null" json:"contract"`
	Location  string         `gorm:"not null" json:"location"`
	Languages pq.StringArray `gorm:"type:text[];default:'{}'" json:"languages"`
	Tools     pq.StringArray `gorm:"type:text[];default:'{}'" json:"tools"`

	// Relationships
	SavedByUsers []User `gorm:"many2many:saved_jobs;constraint:OnDelete:CASCADE" json:"savedByUsers,omitempty"`
}

// TableName overrides the table name
func (Job) TableName() string {
	return "jobs"
}
