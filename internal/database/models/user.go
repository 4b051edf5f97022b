package models

// User represents a job board account
type User struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"password"` // bcrypt hash, never plaintext

	// Relationships
	SavedJobs []Job `gorm:"many2many:saved_jobs;constraint:OnDelete:CASCADE" json:"savedJobs,omitempty"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
