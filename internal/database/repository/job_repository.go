package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/models"
)

// JobRepository defines the interface for job posting data operations
type JobRepository interface {
	Create(job *models.Job) error
	FindAll() ([]models.Job, error)
	Delete(id uint) (*models.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository instance
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) FindAll() ([]models.Job, error) {
	jobs := []models.Job{}
	if err := r.db.Order("id").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Delete removes the job and detaches it from every user's saved jobs
func (r *jobRepository) Delete(id uint) (*models.Job, error) {
	var deleted *models.Job
	err := r.db.Transaction(func(tx *gorm.DB) error {
		job, err := findJob(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Where("job_id = ?", id).Delete(&models.SavedJob{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(job).Error; err != nil {
			return err
		}

		deleted = job
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func findJob(db *gorm.DB, id uint) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}
