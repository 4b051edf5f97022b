package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/models"
)

// NewTestDB creates a new in-memory SQLite database with the job board schema
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to :memory: would be a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))

	return db
}

// SeedJob inserts a job with the required fields filled in
func SeedJob(t *testing.T, db *gorm.DB, company string) *models.Job {
	t.Helper()

	job := NewJob(company)
	require.NoError(t, db.Create(job).Error)
	return job
}

// SavedJobIDs collects the ids of the user's loaded saved jobs
func SavedJobIDs(user *models.User) []uint {
	ids := make([]uint, 0, len(user.SavedJobs))
	for _, job := range user.SavedJobs {
		ids = append(ids, job.ID)
	}
	return ids
}

// NewJob returns an unsaved job with every required field set
func NewJob(company string) *models.Job {
	return &models.Job{
		Company:   company,
		Logo:      "./images/" + company + ".svg",
		Position:  "Senior Frontend Developer",
		Role:      "Frontend",
		Level:     "Senior",
		PostedAt:  "1d ago",
		Contract:  "Full Time",
		Location:  "USA Only",
		Languages: []string{"HTML", "CSS", "JavaScript"},
		Tools:     []string{"React"},
	}
}
