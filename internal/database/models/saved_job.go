package models

// SavedJob is a row of the users <-> jobs join table
type SavedJob struct {
	UserID uint `gorm:"primaryKey;not null" json:"userId"`
	JobID  uint `gorm:"primaryKey;not null" json:"jobId"`
}

// TableName overrides the table name
func (SavedJob) TableName() string {
	return "saved_jobs"
}
