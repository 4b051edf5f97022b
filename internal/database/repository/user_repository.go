package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(user *models.User) error
	FindAll() ([]models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindWithSavedJobs(id uint) (*models.User, error)
	Delete(id uint) (*models.User, error)

	// Saved jobs relation
	SaveJob(userID, jobID uint) (*models.User, error)
	UnsaveJob(userID, jobID uint) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindAll() ([]models.User, error) {
	users := []models.User{}
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindWithSavedJobs(id uint) (*models.User, error) {
	return findUserWithSavedJobs(r.db, id)
}

// Delete removes the user and its saved_jobs rows, returning the deleted record
func (r *userRepository) Delete(id uint) (*models.User, error) {
	var deleted *models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		user, err := findUser(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.SavedJob{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(user).Error; err != nil {
			return err
		}

		deleted = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// SaveJob connects jobID to the user's saved jobs. Saving twice is a no-op.
func (r *userRepository) SaveJob(userID, jobID uint) (*models.User, error) {
	var updated *models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findUser(tx, userID); err != nil {
			return err
		}

		if err := tx.First(&models.Job{}, jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrJobNotFound
			}
			return err
		}

		row := &models.SavedJob{UserID: userID, JobID: jobID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error; err != nil {
			return err
		}

		user, err := findUserWithSavedJobs(tx, userID)
		if err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UnsaveJob disconnects jobID from the user's saved jobs if present
func (r *userRepository) UnsaveJob(userID, jobID uint) (*models.User, error) {
	var updated *models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findUser(tx, userID); err != nil {
			return err
		}

		if err := tx.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&models.SavedJob{}).Error; err != nil {
			return err
		}

		user, err := findUserWithSavedJobs(tx, userID)
		if err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func findUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func findUserWithSavedJobs(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.Preload("SavedJobs", func(db *gorm.DB) *gorm.DB {
		return db.Order("jobs.id")
	}).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.SavedJobs == nil {
		user.SavedJobs = []models.Job{}
	}
	return &user, nil
}

// Repository errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrJobNotFound  = errors.New("job not found")
)
